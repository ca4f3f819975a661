package game

import "errors"

// Sentinel errors for the game package. Check with errors.Is.
var (
	// ErrInvalidScore is returned when a score value is neither Hit nor Miss.
	ErrInvalidScore = errors.New("game: invalid score")

	// ErrNotRevealed is returned when a score is recorded while the current
	// card still shows its front. The controller absorbs it; the session
	// state does not change.
	ErrNotRevealed = errors.New("game: card not revealed")

	// ErrSessionFinished is returned for actions that need a current card
	// after the sequencer is exhausted.
	ErrSessionFinished = errors.New("game: session finished")

	// ErrSessionInProgress is returned when restart is requested before the
	// session has finished.
	ErrSessionInProgress = errors.New("game: session in progress")

	// ErrUnknownStrategy is returned when a sequencing strategy name does
	// not resolve to an implementation.
	ErrUnknownStrategy = errors.New("game: unknown strategy")
)
