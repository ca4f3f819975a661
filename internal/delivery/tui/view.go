package tui

import (
	"fmt"

	"github.com/flipdeck/flip/internal/game"
	"github.com/flipdeck/flip/internal/ui"
)

// CardSide binds one side of the current card, the flip state, and the deck
// title into a renderable unit. It holds no state of its own and is rebuilt
// from the session on every frame.
type CardSide struct {
	front    string
	back     string
	title    string
	revealed bool
}

// NewCardSide builds the view for card. With revealed unset the front is
// shown, otherwise the back.
func NewCardSide(card game.Flashcard[string, string], revealed bool) CardSide {
	return CardSide{
		front:    card.DisplayFront(),
		back:     card.DisplayBack(),
		revealed: revealed,
	}
}

// WithTitle decorates the card border with a deck title.
func (s CardSide) WithTitle(title string) CardSide {
	s.title = title
	return s
}

// Render implements ui.Widget: the displayed side centered inside a frame
// spanning the whole area.
func (s CardSide) Render(area ui.Rect) string {
	content := s.front
	if s.revealed {
		content = s.back
	}
	return ui.NewText(content, ui.TextOptions{
		Centered:    true,
		Bordered:    true,
		BorderTitle: s.title,
	}).Render(area)
}

// summaryView lays out the end-of-session screen: the tally framed under the
// deck title, with the outcome counts and the follow-up actions beneath it.
func summaryView(title string, sum game.Summary) *ui.Container[ui.Widget] {
	col := ui.NewContainer[ui.Widget](ui.Vertical)
	col.Push(ui.NewText(
		fmt.Sprintf("%d cards studied", sum.Total()),
		ui.TextOptions{Centered: true, Bordered: true, BorderTitle: title},
	))
	col.Push(ui.NewText(
		fmt.Sprintf("%s %d / %s %d", game.Hit, sum.Hits, game.Miss, sum.Misses),
		ui.TextOptions{Centered: true},
	))
	col.Push(ui.NewText("r to study again, q to quit", ui.TextOptions{Centered: true}))
	return col
}
