package game

// Progress wraps an item, typically a card, with the outcome recorded for it
// this session. It is a passive value: the score moves from unset to set at
// most once, and the session controller is the one enforcing that rule.
type Progress[T any] struct {
	item  T
	score *Score
}

// NewProgress wraps item with no score recorded yet.
func NewProgress[T any](item T) Progress[T] {
	return Progress[T]{item: item}
}

// Item returns the wrapped item.
func (p Progress[T]) Item() T { return p.item }

// HasScore reports whether an outcome has been recorded.
func (p Progress[T]) HasScore() bool { return p.score != nil }

// Score returns the recorded outcome, if any.
func (p Progress[T]) Score() (Score, bool) {
	if p.score == nil {
		return 0, false
	}
	return *p.score, true
}

// record sets the outcome. Callers must not record twice; see Session.Score.
func (p *Progress[T]) record(s Score) {
	p.score = &s
}
