package geom

// Bounds is an axis-aligned rectangle.
type Bounds struct {
	Min, Max Point
}

// Width of the rectangle.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height of the rectangle.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Empty reports whether the rectangle has no area.
func (b Bounds) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// BoundsOf returns the bounding box of points. The zero Bounds is returned
// for an empty slice.
func BoundsOf(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
	}
	return b
}

// Contains reports whether p lies inside or on the edge of b.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
