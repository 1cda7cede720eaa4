// Package state owns the drawing session: the stroke being traced, the
// Idle/Active phase and the best accepted attempt.
package state

import (
	"PerfectCircle/internal/geom"
	"PerfectCircle/internal/logging"
	"PerfectCircle/internal/palette"
	"PerfectCircle/internal/render"
	"PerfectCircle/internal/score"
)

// Options tune attempt validation.
type Options struct {
	// MinRadius is the smallest accepted average radius.
	MinRadius float64
	// CloseEnough is the largest allowed gap between the first and last
	// point, exclusive.
	CloseEnough float64
	// Ramp colors live and final accuracy.
	Ramp palette.Ramp
	// Clock stamps accepted attempts. Nil uses the wall clock.
	Clock *Clock
}

// DefaultOptions uses a 70 unit minimum radius and a 60 unit closing gap.
func DefaultOptions() Options {
	return Options{
		MinRadius:   70,
		CloseEnough: 60,
		Ramp:        palette.Default,
	}
}

// Controller is the session state machine. All methods are expected to be
// called from the UI event goroutine; it does no locking of its own.
type Controller struct {
	renderer *render.Renderer
	feedback Feedback
	opts     Options

	phase   Phase
	stroke  Stroke
	best    Attempt
	hasBest bool
	stats   Stats
}

// NewController draws the empty board and resets the accuracy label.
func NewController(r *render.Renderer, fb Feedback, opts Options) *Controller {
	if opts.Ramp == nil {
		opts.Ramp = palette.Default
	}
	if opts.Clock == nil {
		opts.Clock = NewClock(nil)
	}
	c := &Controller{renderer: r, feedback: fb, opts: opts}
	c.renderer.Reset()
	c.feedback.Accuracy(FormatAccuracy(0), palette.Neutral)
	return c
}

// Start begins a new session at p. Starting while Active discards the
// current stroke.
func (c *Controller) Start(p geom.Point) {
	c.stroke = Stroke{p}
	c.phase = Active
	c.renderer.Reset()
	logging.Logger().Debug("session started", "x", p.X, "y", p.Y)
}

// Extend appends p to the active stroke, draws the new segment in the color
// of the live accuracy and updates the label. It does nothing while Idle.
func (c *Controller) Extend(p geom.Point) {
	if c.phase != Active {
		return
	}
	c.stroke = append(c.stroke, p)

	live := score.Score(c.stroke, c.renderer.Center())
	col := c.opts.Ramp.At(live)
	if n := len(c.stroke); n >= 2 {
		c.renderer.Segment(c.stroke[n-2], c.stroke[n-1], col)
	}
	c.feedback.Accuracy(FormatAccuracy(live), col)
}

// End finalizes the active session. Calling it while Idle returns a Result
// with Outcome NotEnded and changes nothing.
func (c *Controller) End() Result {
	if c.phase != Active {
		return Result{Outcome: NotEnded}
	}
	c.phase = Idle
	c.stats.Attempts++

	res := Evaluate(c.stroke, c.renderer.Center(), c.opts)
	switch res.Outcome {
	case TooSmall:
		c.stats.TooSmall++
		c.feedback.Notice(tooSmallTitle, tooSmallMessage)
		c.feedback.Accuracy(FormatAccuracy(0), palette.Neutral)

	case NotClosed:
		c.stats.NotClosed++
		c.feedback.Accuracy(FormatAccuracy(0), palette.Neutral)

	case Accepted:
		c.stats.Accepted++
		c.feedback.Accuracy(FormatAccuracy(res.Accuracy), c.opts.Ramp.At(res.Accuracy))
		c.renderer.IdealCircle(res.AverageRadius, palette.Guide)
		res.NewBest = c.offerBest(res.Accuracy)
	}

	logging.Logger().Info("session ended",
		"outcome", res.Outcome,
		"points", len(c.stroke),
		"avg_radius", res.AverageRadius,
		"accuracy", res.Accuracy,
		"new_best", res.NewBest)
	return res
}

// Evaluate validates and scores a finished stroke. Empty strokes and strokes
// whose average radius is under MinRadius are TooSmall; strokes whose ends
// are CloseEnough or more apart are NotClosed.
func Evaluate(s Stroke, center geom.Point, opts Options) Result {
	res := Result{AverageRadius: geom.AverageRadius(s, center)}
	switch {
	case len(s) == 0 || res.AverageRadius < opts.MinRadius:
		res.Outcome = TooSmall
	case !s.Closed(opts.CloseEnough):
		res.Outcome = NotClosed
	default:
		res.Outcome = Accepted
		res.Accuracy = score.Score(s, center)
	}
	return res
}

// offerBest replaces the best attempt when accuracy strictly beats it.
func (c *Controller) offerBest(accuracy float64) bool {
	if accuracy <= c.best.Accuracy {
		return false
	}
	w, h := c.renderer.Dimensions()
	a := Attempt{
		Points:   c.stroke.Clone(),
		Accuracy: accuracy,
		Width:    w,
		Height:   h,
	}
	c.opts.Clock.Stamp(&a)
	c.best = a
	c.hasBest = true
	c.feedback.Best(FormatBest(accuracy))
	return true
}

// ReplayBest redraws the board with the best attempt as a single neutral
// polyline. With no accepted attempt yet only the empty board is drawn and
// false is returned.
func (c *Controller) ReplayBest() bool {
	c.renderer.Reset()
	if !c.hasBest {
		c.feedback.Status(noBestStatus)
		return false
	}
	c.renderer.Path(c.best.Points, palette.Neutral)
	logging.Logger().Debug("replayed best attempt", "id", c.best.ID, "accuracy", c.best.Accuracy)
	return true
}

// Resize redraws the empty board after the surface changed size. The
// stroke, phase and best attempt are kept.
func (c *Controller) Resize() {
	c.renderer.Reset()
	w, h := c.renderer.Dimensions()
	logging.Logger().Debug("surface resized", "width", w, "height", h)
}

// Phase reports whether a stroke is in progress.
func (c *Controller) Phase() Phase { return c.phase }

// Stroke returns a copy of the current stroke.
func (c *Controller) Stroke() Stroke { return c.stroke.Clone() }

// Best returns the best accepted attempt, if any.
func (c *Controller) Best() (Attempt, bool) {
	if !c.hasBest {
		return Attempt{}, false
	}
	a := c.best
	a.Points = a.Points.Clone()
	return a, true
}

// Stats returns the attempt counters for this process.
func (c *Controller) Stats() Stats { return c.stats }
