package game

import (
	"encoding"
	"fmt"
)

// Score is the user's verdict on a revealed card.
type Score int

const (
	Hit  Score = iota + 1 // Recalled the back correctly.
	Miss                  // Failed to recall the back.
)

var (
	scoreNames = [...]string{Hit: "hit", Miss: "miss"}

	scoreByName = map[string]Score{
		"hit":  Hit,
		"miss": Miss,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Score(0)
	_ encoding.TextMarshaler   = Score(0)
	_ encoding.TextUnmarshaler = (*Score)(nil)
)

// IsValid reports whether s is Hit or Miss.
func (s Score) IsValid() bool {
	return s == Hit || s == Miss
}

// String returns "hit" or "miss". For invalid values it returns "Score(n)".
func (s Score) String() string {
	if s.IsValid() {
		return scoreNames[s]
	}
	return fmt.Sprintf("Score(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Score) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScore, int(s))
	}
	return []byte(scoreNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Score) UnmarshalText(text []byte) error {
	v, ok := scoreByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidScore, text)
	}
	*s = v
	return nil
}
