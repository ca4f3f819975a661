package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Session runs one pass over a deck. It owns the flip state of the current
// card and the rules tying reveal, scoring, and advancement together:
//
//   - a card always enters showing its front;
//   - Reveal flips it to the back and is idempotent;
//   - Score is legal only while the back is shown, records the outcome
//     exactly once, and advances to the next card;
//   - when the sequencer is exhausted the session is finished.
//
// The deck is retained so a finished session can restart with a fresh
// sequencer.
type Session[F, B any] struct {
	id       uuid.UUID
	deck     Deck[F, B]
	strategy Strategy
	seq      Sequencer[Card[F, B]]
	current  *Progress[Card[F, B]]
	revealed bool
	history  []Progress[Card[F, B]]
}

// NewSession starts a session over deck using the named strategy. An empty
// deck produces a session that is finished from the start.
func NewSession[F, B any](deck Deck[F, B], strategy Strategy) (*Session[F, B], error) {
	s := &Session[F, B]{
		id:       uuid.New(),
		deck:     deck,
		strategy: strategy,
	}
	if err := s.start(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session[F, B]) start() error {
	seq, err := Sequence(s.strategy, s.deck.Cards)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	s.seq = seq
	s.history = s.history[:0]
	s.advance()
	return nil
}

// advance makes the next sequenced card current with its front shown, or
// marks the session finished on exhaustion.
func (s *Session[F, B]) advance() {
	s.revealed = false
	card, ok := s.seq.Next()
	if !ok {
		s.current = nil
		return
	}
	p := NewProgress(card)
	s.current = &p
}

// ID identifies the session, for log correlation.
func (s *Session[F, B]) ID() uuid.UUID { return s.id }

// Deck returns the deck the session runs over.
func (s *Session[F, B]) Deck() Deck[F, B] { return s.deck }

// Finished reports whether every card has been scored.
func (s *Session[F, B]) Finished() bool { return s.current == nil }

// Current returns the card being studied. ok is false once the session is
// finished.
func (s *Session[F, B]) Current() (Card[F, B], bool) {
	if s.current == nil {
		var zero Card[F, B]
		return zero, false
	}
	return s.current.Item(), true
}

// Revealed reports whether the current card shows its back.
func (s *Session[F, B]) Revealed() bool { return s.revealed }

// Reveal flips the current card to its back. Revealing an already revealed
// card is a no-op, as is revealing after the session finished.
func (s *Session[F, B]) Reveal() {
	if s.current == nil {
		return
	}
	s.revealed = true
}

// Score records the outcome for the current card and advances. It fails with
// ErrNotRevealed while the front is still shown: the answer must be visible
// before it can be judged. It fails with ErrSessionFinished when there is no
// current card, and with ErrInvalidScore for values outside {Hit, Miss}. On
// failure the session state is unchanged.
func (s *Session[F, B]) Score(score Score) error {
	if !score.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidScore, int(score))
	}
	if s.current == nil {
		return ErrSessionFinished
	}
	if !s.revealed {
		return ErrNotRevealed
	}

	s.current.record(score)
	s.history = append(s.history, *s.current)
	s.advance()
	return nil
}

// Restart begins a new pass over the retained deck with a fresh sequencer,
// discarding the recorded history. It is only legal once the session has
// finished.
func (s *Session[F, B]) Restart() error {
	if !s.Finished() {
		return ErrSessionInProgress
	}
	return s.start()
}

// History returns the progress values recorded so far, in scoring order.
func (s *Session[F, B]) History() []Progress[Card[F, B]] {
	out := make([]Progress[Card[F, B]], len(s.history))
	copy(out, s.history)
	return out
}

// Summary aggregates the recorded outcomes.
func (s *Session[F, B]) Summary() Summary {
	var sum Summary
	for _, p := range s.history {
		score, ok := p.Score()
		if !ok {
			continue
		}
		switch score {
		case Hit:
			sum.Hits++
		case Miss:
			sum.Misses++
		}
	}
	return sum
}

// Summary is the tally of outcomes over one session. It is derived from the
// recorded progress values, never stored on its own.
type Summary struct {
	Hits   int
	Misses int
}

// Total returns the number of scored cards.
func (s Summary) Total() int { return s.Hits + s.Misses }
