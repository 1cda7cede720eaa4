// Package geom holds the plane geometry shared by scoring, rendering and export.
package geom

import "math"

// Point is a position in surface-local units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Center returns the geometric center of a surface of the given size.
func Center(width, height float64) Point {
	return Point{X: width / 2, Y: height / 2}
}

// RadiusOf returns how far p lies from center.
func RadiusOf(p, center Point) float64 {
	return Distance(p, center)
}

// AverageRadius is the mean of RadiusOf over points. It returns 0 for an
// empty slice; callers that need to tell "no points" apart check len first.
func AverageRadius(points []Point, center Point) float64 {
	if len(points) == 0 {
		return 0
	}
	var total float64
	for _, p := range points {
		total += RadiusOf(p, center)
	}
	return total / float64(len(points))
}

// Radii returns RadiusOf for every point, in order.
func Radii(points []Point, center Point) []float64 {
	radii := make([]float64, len(points))
	for i, p := range points {
		radii[i] = RadiusOf(p, center)
	}
	return radii
}
