package state

import "errors"

var (
	ErrTooSmall  = errors.New("circle is too small")
	ErrNotClosed = errors.New("circle is not closed")
)

// Outcome is how a session ended.
type Outcome int

const (
	// NotEnded is returned by End when no session was active.
	NotEnded Outcome = iota
	Accepted
	TooSmall
	NotClosed
)

func (o Outcome) String() string {
	switch o {
	case NotEnded:
		return "not-ended"
	case Accepted:
		return "accepted"
	case TooSmall:
		return "too-small"
	case NotClosed:
		return "not-closed"
	}
	return "unknown"
}

// Err maps a rejection onto its sentinel error, nil otherwise.
func (o Outcome) Err() error {
	switch o {
	case TooSmall:
		return ErrTooSmall
	case NotClosed:
		return ErrNotClosed
	}
	return nil
}

// Result describes the end of one session.
type Result struct {
	Outcome       Outcome
	AverageRadius float64
	Accuracy      float64 // zero unless Accepted
	NewBest       bool
}
