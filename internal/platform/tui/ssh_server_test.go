package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
)

func TestNewSSHServerConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Address = "127.0.0.1:2222"
	cfg.Server.HostKey = "/tmp/key"
	cfg.Server.IdleTimeout = 5 * time.Minute

	got := NewSSHServerConfig(cfg)
	assert.Equal(t, "127.0.0.1:2222", got.Address)
	assert.Equal(t, "/tmp/key", got.HostKeyPath)
	assert.Equal(t, 5*time.Minute, got.IdleTimeout)
	assert.Equal(t, cfg.TickRate, got.TickRate)
	assert.Equal(t, core.ActionFlag, got.Keys.Action(runeKey('f')))
}

func TestNewSSHServer(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys", "host_key")
	cfg := SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: keyPath,
		TickRate:    20,
		Keys:        DefaultKeyMap(),
	}
	logger := log.New(io.Discard)

	_, err := NewSSHServer(cfg, nil, logger)
	assert.Error(t, err, "a game factory is required")

	srv, err := NewSSHServer(cfg, func() Game { return nil }, logger)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())

	info, err := os.Stat(filepath.Dir(keyPath))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolveHostKeyPath(t *testing.T) {
	path, err := resolveHostKeyPath("/srv/mines/key")
	require.NoError(t, err)
	assert.Equal(t, "/srv/mines/key", path)

	path, err = resolveHostKeyPath("")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join(".mines", "host_key")), path)
}
