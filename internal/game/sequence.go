package game

import (
	"fmt"
	"math/rand"
)

// Sequencer produces the cards of one session, one at a time. A sequencer is
// single-use: Next returns false once the sequence is exhausted and every
// later call returns false too. Exhaustion is a normal terminal condition,
// not a failure.
type Sequencer[C any] interface {
	// Next returns the next card and true, or the zero value and false when
	// the sequence is exhausted.
	Next() (C, bool)
}

// Strategy names a card presentation order.
type Strategy string

const (
	// Linear presents cards in deck order.
	Linear Strategy = "linear"
	// Shuffle presents cards in a uniform random order.
	Shuffle Strategy = "shuffle"
)

// ParseStrategy resolves a strategy name. Unknown names return
// ErrUnknownStrategy.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case Linear, Shuffle:
		return Strategy(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Sequence builds a sequencer over cards for the named strategy. The input
// slice is copied; the sequencer owns its copy. An empty input produces an
// immediately exhausted sequence.
func Sequence[C any](strategy Strategy, cards []C) (Sequencer[C], error) {
	owned := make([]C, len(cards))
	copy(owned, cards)

	switch strategy {
	case Linear:
		return &sliceSequencer[C]{cards: owned}, nil
	case Shuffle:
		rand.Shuffle(len(owned), func(i, j int) {
			owned[i], owned[j] = owned[j], owned[i]
		})
		return &sliceSequencer[C]{cards: owned}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// sliceSequencer yields a prepared card slice front to back. Both built-in
// strategies reduce to it; they differ only in how the slice is prepared.
type sliceSequencer[C any] struct {
	cards []C
	next  int
}

func (s *sliceSequencer[C]) Next() (C, bool) {
	if s.next >= len(s.cards) {
		var zero C
		return zero, false
	}
	c := s.cards[s.next]
	s.next++
	return c, true
}
