package engine

import "math/rand"

// Session is one game owned by one player: the engine with its hidden layout
// plus the current masked field. Front-ends hold a Session instead of
// threading the field themselves.
type Session struct {
	engine *Engine
	field  Field
}

// NewSession starts a game with layouts drawn from rng. The first game
// plays on the engine's initial layout, the first one drawn from rng.
func NewSession(rng *rand.Rand) *Session {
	return &Session{engine: New(rng)}
}

// NewSessionWithLayout starts a game on a fixed layout.
func NewSessionWithLayout(l Layout) *Session {
	s := &Session{engine: NewWithLayout(l)}
	s.field = s.engine.GenerateField()
	return s
}

// Restart discards the current game and generates a new one.
func (s *Session) Restart() {
	s.field = s.engine.GenerateField()
}

// Apply runs cmd at index and returns the new field.
// Commands are ignored once the game is won or lost.
func (s *Session) Apply(index int, cmd Command) Field {
	if !s.InProgress() {
		return s.field
	}
	s.field = s.engine.HandleCommand(s.field, index, cmd)
	return s.field
}

// Field returns a snapshot of the masked field.
func (s *Session) Field() Field {
	return s.field
}

// Layout returns a copy of the hidden layout.
func (s *Session) Layout() Layout {
	return s.engine.Layout()
}

// Won reports whether the game is won.
func (s *Session) Won() bool {
	return s.engine.IsWin(s.field)
}

// Lost reports whether the game is lost.
func (s *Session) Lost() bool {
	return s.engine.IsLost(s.field)
}

// InProgress reports whether the game still accepts commands.
func (s *Session) InProgress() bool {
	return s.engine.GameInProgress(s.field)
}

// Unwinnable reports whether the game can no longer be won.
func (s *Session) Unwinnable() bool {
	return s.InProgress() && s.engine.IsUnwinnable(s.field)
}

// Flags returns the number of flags placed.
func (s *Session) Flags() int {
	return s.field.CountFlags()
}

// FlagsLeft returns Mines minus the flags placed. It goes negative when the
// player over-flags.
func (s *Session) FlagsLeft() int {
	return Mines - s.Flags()
}
