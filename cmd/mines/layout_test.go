package main

import (
	"bytes"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-mines/internal/engine"
)

func TestPrintLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printLayout(&buf, 42, "", "reveal"))

	want := engine.New(rand.New(rand.NewSource(42))).Layout().String()
	assert.Equal(t, "seed 42, 10 mines\n"+want+"\n", buf.String())
}

func TestPrintLayoutAppliesCommand(t *testing.T) {
	layout := engine.New(rand.New(rand.NewSource(42))).Layout()
	mine := layout.MineCoords()[0]

	var buf bytes.Buffer
	at := strings.Join([]string{strconv.Itoa(mine.Row), strconv.Itoa(mine.Col)}, ",")
	require.NoError(t, printLayout(&buf, 42, at, "flag"))

	out := buf.String()
	assert.Contains(t, out, "flag "+at+": playing, 9 flags left")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	field := lines[len(lines)-engine.Dimension:]
	assert.Equal(t, byte('F'), field[mine.Row][mine.Col])
	assert.Equal(t, engine.Cells-1, strings.Count(strings.Join(field, ""), "#"))

	buf.Reset()
	require.NoError(t, printLayout(&buf, 42, at, "reveal"))
	assert.Contains(t, buf.String(), "reveal "+at+": lost")
}

func TestPrintLayoutErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, printLayout(&buf, 1, "0,0", "dig"))
	assert.Error(t, printLayout(&buf, 1, "9,9", "reveal"))
	assert.Error(t, printLayout(&buf, 1, "nope", "reveal"))
}
