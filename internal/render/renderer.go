// Package render draws the game's visuals onto a Surface.
package render

import (
	"image/color"

	"PerfectCircle/internal/geom"
	"PerfectCircle/internal/palette"
)

// Surface is a drawing target. Coordinates are surface-local units with the
// origin at the top left.
type Surface interface {
	Clear()
	Dimensions() (width, height float64)
	FillCircle(center geom.Point, radius float64, c color.Color)
	StrokeCircle(center geom.Point, radius, width float64, c color.Color)
	Line(from, to geom.Point, width float64, c color.Color)
	Polyline(points []geom.Point, width float64, c color.Color)
}

// Style holds the fixed visual constants.
type Style struct {
	LineWidth    float64
	MarkerRadius float64
}

// DefaultStyle draws 2-unit lines and a 2-unit center marker.
var DefaultStyle = Style{LineWidth: 2, MarkerRadius: 2}

// Renderer is stateless apart from its target and style.
type Renderer struct {
	surface Surface
	style   Style
}

func New(s Surface, style Style) *Renderer {
	return &Renderer{surface: s, style: style}
}

// Dimensions is the current surface size.
func (r *Renderer) Dimensions() (width, height float64) {
	return r.surface.Dimensions()
}

// Center is the center of the surface at its current size.
func (r *Renderer) Center() geom.Point {
	return geom.Center(r.surface.Dimensions())
}

// Reset clears the surface and draws the center marker.
func (r *Renderer) Reset() {
	r.surface.Clear()
	r.surface.FillCircle(r.Center(), r.style.MarkerRadius, palette.Neutral)
}

// Segment draws one live stroke segment.
func (r *Renderer) Segment(from, to geom.Point, c color.Color) {
	r.surface.Line(from, to, r.style.LineWidth, c)
}

// Path draws points as one connected polyline. Fewer than two points draw
// nothing.
func (r *Renderer) Path(points []geom.Point, c color.Color) {
	if len(points) < 2 {
		return
	}
	r.surface.Polyline(points, r.style.LineWidth, c)
}

// IdealCircle outlines the circle of the given radius around the center.
func (r *Renderer) IdealCircle(radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	r.surface.StrokeCircle(r.Center(), radius, r.style.LineWidth/2, c)
}
