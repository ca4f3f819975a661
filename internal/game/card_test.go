package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardAccessors(t *testing.T) {
	c := NewCard("Foo", "Bar")
	assert.Equal(t, "Foo", c.Front())
	assert.Equal(t, "Bar", c.Back())
	assert.Equal(t, "Foo", c.DisplayFront())
	assert.Equal(t, "Bar", c.DisplayBack())
}

func TestCardDisplayNonString(t *testing.T) {
	c := NewCard(7, 42)
	assert.Equal(t, "7", c.DisplayFront())
	assert.Equal(t, "42", c.DisplayBack())
}

func TestCardEqualityIsContentEquality(t *testing.T) {
	assert.Equal(t, NewCard("a", "b"), NewCard("a", "b"))
	assert.NotEqual(t, NewCard("a", "b"), NewCard("a", "c"))
}

func TestDeckOwnsItsCards(t *testing.T) {
	cards := []Card[string, string]{NewCard("a", "b")}
	d := NewDeck("Deck", cards)

	cards[0] = NewCard("x", "y")
	assert.Equal(t, "a", d.Cards[0].Front())
	assert.Equal(t, 1, d.Size())
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "hit", Hit.String())
	assert.Equal(t, "miss", Miss.String())
	assert.Equal(t, "Score(3)", Score(3).String())
}

func TestScoreIsValid(t *testing.T) {
	assert.True(t, Hit.IsValid())
	assert.True(t, Miss.IsValid())
	assert.False(t, Score(0).IsValid())
	assert.False(t, Score(3).IsValid())
}

func TestScoreText(t *testing.T) {
	b, err := Hit.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "hit", string(b))

	_, err = Score(0).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidScore)

	var s Score
	assert.NoError(t, s.UnmarshalText([]byte("miss")))
	assert.Equal(t, Miss, s)
	assert.ErrorIs(t, s.UnmarshalText([]byte("meh")), ErrInvalidScore)
}

func TestProgressStartsUnscored(t *testing.T) {
	p := NewProgress(NewCard("a", "b"))

	assert.False(t, p.HasScore())
	_, ok := p.Score()
	assert.False(t, ok)
	assert.Equal(t, "a", p.Item().Front())
}
