package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"PerfectCircle/internal/state"
)

// MaxSurface is the largest surface side, in units, an attempt may carry.
const MaxSurface = 16384

// ErrSurfaceSize is returned for attempts whose surface cannot be rendered.
var ErrSurfaceSize = errors.New("invalid surface size")

func checkSurface(w, h float64) error {
	for _, v := range []float64{w, h} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > MaxSurface {
			return fmt.Errorf("%w: %vx%v (each side must be in (0, %d])", ErrSurfaceSize, w, h, MaxSurface)
		}
	}
	return nil
}

// JSON writes attempt as indented JSON.
func JSON(w io.Writer, a state.Attempt) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal attempt: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write attempt: %w", err)
	}
	return nil
}

// ReadJSON decodes an attempt written by JSON.
func ReadJSON(r io.Reader) (state.Attempt, error) {
	var a state.Attempt
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return state.Attempt{}, fmt.Errorf("decode attempt: %w", err)
	}
	if err := checkSurface(a.Width, a.Height); err != nil {
		return state.Attempt{}, fmt.Errorf("decode attempt: %w", err)
	}
	return a, nil
}
