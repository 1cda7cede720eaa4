package export

import (
	"fmt"
	"io"
	"math"

	"PerfectCircle/internal/render"
	"PerfectCircle/internal/state"
)

// PNG renders attempt at its recorded surface size.
func PNG(w io.Writer, a state.Attempt, style render.Style) error {
	if err := checkSurface(a.Width, a.Height); err != nil {
		return err
	}
	s := render.NewRaster(int(math.Ceil(a.Width)), int(math.Ceil(a.Height)))
	drawAttempt(render.New(s, style), a)
	if err := s.EncodePNG(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
