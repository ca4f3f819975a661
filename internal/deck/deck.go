// Package deck loads deck documents and hands them to the engine as typed
// decks. A deck document is JSON: a title and an ordered list of
// {front, back} string pairs.
package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/flipdeck/flip/internal/game"
)

// Deck and Card fix the engine's content types to plain strings, the only
// content a deck document can carry.
type (
	Deck = game.Deck[string, string]
	Card = game.Card[string, string]
)

// ErrInvalidDeck is returned when a deck document parses but fails
// validation (missing title, no cards, a card without both sides).
var ErrInvalidDeck = errors.New("deck: invalid deck")

type document struct {
	Title string         `json:"title" validate:"required"`
	Cards []cardDocument `json:"cards" validate:"required,min=1,dive"`
}

type cardDocument struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back" validate:"required"`
}

var validate = validator.New()

// Load reads and parses the deck document at path.
func Load(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read deck %s: %w", path, err)
	}

	d, err := Parse(data)
	if err != nil {
		return Deck{}, fmt.Errorf("parse deck %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes and validates a deck document.
func Parse(data []byte) (Deck, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Deck{}, fmt.Errorf("%w: %v", ErrInvalidDeck, err)
	}

	if err := validate.Struct(doc); err != nil {
		return Deck{}, fmt.Errorf("%w: %v", ErrInvalidDeck, err)
	}

	cards := make([]Card, 0, len(doc.Cards))
	for _, c := range doc.Cards {
		cards = append(cards, game.NewCard(c.Front, c.Back))
	}
	return game.NewDeck(doc.Title, cards), nil
}

// Default returns the built-in deck used when no deck path is given.
func Default() Deck {
	return game.NewDeck("Foobar Deck", []Card{
		game.NewCard("Foo", "Bar"),
		game.NewCard("Bizz", "bazz"),
	})
}
