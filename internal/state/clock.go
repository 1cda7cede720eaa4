package state

import (
	"time"

	"github.com/google/uuid"
)

// Clock stamps accepted attempts with an ID, a sequence number and a time.
type Clock struct {
	seq uint64
	now func() time.Time
}

func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Stamp fills in the identity fields of a.
func (c *Clock) Stamp(a *Attempt) {
	c.seq++
	a.Seq = c.seq
	a.ID = uuid.NewString()
	a.Time = c.now()
}
