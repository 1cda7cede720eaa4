// Package score rates how circular a stroke is around a center.
//
// The ideal radius is the stroke's own average distance from the center, so
// a consistent radius scores well whatever its size. The penalty adds the
// mean absolute deviation to the population standard deviation of the radii.
package score

import (
	"math"

	"PerfectCircle/internal/geom"
)

// Max is the score of a stroke whose every point sits on the ideal radius.
const Max = 100.0

// Stats is a breakdown of one scoring pass.
type Stats struct {
	Ideal            float64 // average radius
	MeanAbsDeviation float64
	StdDeviation     float64
	Accuracy         float64
}

// Measure scores points against center. An empty slice yields zero Stats.
func Measure(points []geom.Point, center geom.Point) Stats {
	if len(points) == 0 {
		return Stats{}
	}

	radii := geom.Radii(points, center)
	ideal := geom.AverageRadius(points, center)

	var absSum, sqSum float64
	for _, r := range radii {
		d := r - ideal
		absSum += math.Abs(d)
		sqSum += d * d
	}
	n := float64(len(radii))

	st := Stats{
		Ideal:            ideal,
		MeanAbsDeviation: absSum / n,
		StdDeviation:     math.Sqrt(sqSum / n),
	}
	st.Accuracy = math.Max(0, Max-(st.MeanAbsDeviation+st.StdDeviation))
	return st
}

// Score returns the accuracy of points around center, in [0, 100].
func Score(points []geom.Point, center geom.Point) float64 {
	return Measure(points, center).Accuracy
}
