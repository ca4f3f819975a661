package game

import "fmt"

// Flashcard is the capability every card representation must provide to be
// driven by the session engine and the renderer. Front and Back return the
// typed content; the Display forms are the string renditions shown on screen.
type Flashcard[F, B any] interface {
	Front() F
	Back() B
	DisplayFront() string
	DisplayBack() string
}

// Card is an immutable front/back content pair. Two cards with equal content
// are the same card; there is no further identity.
type Card[F, B any] struct {
	front F
	back  B
}

// NewCard creates a card from its front and back content.
func NewCard[F, B any](front F, back B) Card[F, B] {
	return Card[F, B]{front: front, back: back}
}

// Front returns the front content.
func (c Card[F, B]) Front() F { return c.front }

// Back returns the back content.
func (c Card[F, B]) Back() B { return c.back }

// DisplayFront returns the front content as text.
func (c Card[F, B]) DisplayFront() string { return display(c.front) }

// DisplayBack returns the back content as text.
func (c Card[F, B]) DisplayBack() string { return display(c.back) }

func display(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// Deck is a named, ordered collection of cards. It is immutable after
// construction; the session retains it so a finished session can restart.
type Deck[F, B any] struct {
	Title string
	Cards []Card[F, B]
}

// NewDeck creates a deck with the given title and cards. The card slice is
// copied so later mutation by the caller cannot reach the deck.
func NewDeck[F, B any](title string, cards []Card[F, B]) Deck[F, B] {
	owned := make([]Card[F, B], len(cards))
	copy(owned, cards)
	return Deck[F, B]{Title: title, Cards: owned}
}

// Size returns the number of cards in the deck.
func (d Deck[F, B]) Size() int { return len(d.Cards) }
