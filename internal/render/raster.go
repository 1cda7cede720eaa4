package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"PerfectCircle/internal/geom"
	"PerfectCircle/internal/palette"
)

// circleSegments is how many edges approximate a full circle.
const circleSegments = 96

// Raster is an in-memory Surface backed by an NRGBA image. Shapes are
// anti-aliased by the x/image vector rasterizer.
type Raster struct {
	img        *image.NRGBA
	z          *vector.Rasterizer
	Background color.Color
}

var _ Surface = (*Raster)(nil)

// NewRaster allocates a width x height surface cleared to the board color.
func NewRaster(width, height int) *Raster {
	r := &Raster{Background: palette.Background}
	r.Resize(width, height)
	return r
}

// Resize reallocates the backing image. Previous content is lost, like a
// resized canvas.
func (r *Raster) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	r.img = image.NewNRGBA(image.Rect(0, 0, width, height))
	r.z = vector.NewRasterizer(width, height)
	r.Clear()
}

// Image returns the backing image. It is not copied.
func (r *Raster) Image() *image.NRGBA { return r.img }

// EncodePNG writes the current image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
}

func (r *Raster) Dimensions() (float64, float64) {
	b := r.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (r *Raster) FillCircle(center geom.Point, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	r.begin()
	r.circle(center, radius, false)
	r.paint(c)
}

func (r *Raster) StrokeCircle(center geom.Point, radius, width float64, c color.Color) {
	outer := radius + width/2
	inner := radius - width/2
	if outer <= 0 {
		return
	}
	r.begin()
	r.circle(center, outer, false)
	if inner > 0 {
		r.circle(center, inner, true)
	}
	r.paint(c)
}

func (r *Raster) Line(from, to geom.Point, width float64, c color.Color) {
	r.segment(from, to, width, c)
	// Round caps keep consecutive live segments joined.
	r.FillCircle(from, width/2, c)
	r.FillCircle(to, width/2, c)
}

func (r *Raster) Polyline(points []geom.Point, width float64, c color.Color) {
	for i := 1; i < len(points); i++ {
		r.segment(points[i-1], points[i], width, c)
	}
	for _, p := range points {
		r.FillCircle(p, width/2, c)
	}
}

func (r *Raster) segment(from, to geom.Point, width float64, c color.Color) {
	length := geom.Distance(from, to)
	if length == 0 || width <= 0 {
		return
	}
	hw := width / 2
	nx := -(to.Y - from.Y) / length * hw
	ny := (to.X - from.X) / length * hw

	r.begin()
	r.z.MoveTo(float32(from.X+nx), float32(from.Y+ny))
	r.z.LineTo(float32(to.X+nx), float32(to.Y+ny))
	r.z.LineTo(float32(to.X-nx), float32(to.Y-ny))
	r.z.LineTo(float32(from.X-nx), float32(from.Y-ny))
	r.z.ClosePath()
	r.paint(c)
}

func (r *Raster) circle(center geom.Point, radius float64, reverse bool) {
	step := 2 * math.Pi / circleSegments
	if reverse {
		step = -step
	}
	r.z.MoveTo(float32(center.X+radius), float32(center.Y))
	for i := 1; i < circleSegments; i++ {
		a := step * float64(i)
		r.z.LineTo(float32(center.X+radius*math.Cos(a)), float32(center.Y+radius*math.Sin(a)))
	}
	r.z.ClosePath()
}

func (r *Raster) begin() {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
}

func (r *Raster) paint(c color.Color) {
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}
