package state

import (
	"time"

	"PerfectCircle/internal/geom"
)

// Stroke is the ordered list of points sampled during one drawing session.
type Stroke []geom.Point

// Clone returns a copy that does not share the backing array.
func (s Stroke) Clone() Stroke {
	if s == nil {
		return nil
	}
	out := make(Stroke, len(s))
	copy(out, s)
	return out
}

// Closed reports whether the first and last points are less than threshold
// apart. An empty stroke is never closed.
func (s Stroke) Closed(threshold float64) bool {
	if len(s) == 0 {
		return false
	}
	return geom.Distance(s[0], s[len(s)-1]) < threshold
}

// Attempt is a finalized, accepted stroke.
type Attempt struct {
	ID       string    `json:"id"`
	Seq      uint64    `json:"seq"`
	Points   Stroke    `json:"points"`
	Accuracy float64   `json:"accuracy"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Time     time.Time `json:"time"`
}

// Center is the surface center the attempt was scored against.
func (a Attempt) Center() geom.Point {
	return geom.Center(a.Width, a.Height)
}

// Phase is the session state.
type Phase int

const (
	Idle Phase = iota
	Active
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Active:
		return "active"
	}
	return "unknown"
}

// Stats counts finalized sessions.
type Stats struct {
	Attempts  int
	Accepted  int
	TooSmall  int
	NotClosed int
}
