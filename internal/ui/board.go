package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"PerfectCircle/internal/geom"
	"PerfectCircle/internal/palette"
	"PerfectCircle/internal/render"
)

// Board is the drawing surface. It turns pointer events into the On*
// callbacks and keeps the canvas objects drawn through render.Surface.
type Board struct {
	widget.BaseWidget

	mu       sync.RWMutex
	objects  []fyne.CanvasObject
	lastSize fyne.Size

	OnPointerDown func(p geom.Point)
	OnPointerMove func(p geom.Point)
	OnPointerUp   func()
	OnResize      func()
}

var _ fyne.Widget = (*Board)(nil)
var _ fyne.Draggable = (*Board)(nil)
var _ desktop.Mouseable = (*Board)(nil)
var _ desktop.Hoverable = (*Board)(nil)
var _ render.Surface = (*Board)(nil)

func NewBoard() *Board {
	b := &Board{}
	b.ExtendBaseWidget(b)
	return b
}

func toPoint(pos fyne.Position) geom.Point {
	return geom.Pt(float64(pos.X), float64(pos.Y))
}

func toPos(p geom.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func (b *Board) add(objs ...fyne.CanvasObject) {
	b.mu.Lock()
	b.objects = append(b.objects, objs...)
	b.mu.Unlock()
	b.Refresh()
}

// ObjectCount is the number of shapes currently drawn.
func (b *Board) ObjectCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.objects)
}

func (b *Board) Clear() {
	b.mu.Lock()
	b.objects = nil
	b.mu.Unlock()
	b.Refresh()
}

func (b *Board) Dimensions() (float64, float64) {
	s := b.BaseWidget.Size()
	return float64(s.Width), float64(s.Height)
}

func (b *Board) FillCircle(center geom.Point, radius float64, c color.Color) {
	dot := canvas.NewCircle(c)
	dot.Position1 = toPos(geom.Pt(center.X-radius, center.Y-radius))
	dot.Position2 = toPos(geom.Pt(center.X+radius, center.Y+radius))
	b.add(dot)
}

func (b *Board) StrokeCircle(center geom.Point, radius, width float64, c color.Color) {
	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = c
	ring.StrokeWidth = float32(width)
	ring.Position1 = toPos(geom.Pt(center.X-radius, center.Y-radius))
	ring.Position2 = toPos(geom.Pt(center.X+radius, center.Y+radius))
	b.add(ring)
}

func (b *Board) Line(from, to geom.Point, width float64, c color.Color) {
	b.add(newSegment(from, to, width, c))
}

func (b *Board) Polyline(points []geom.Point, width float64, c color.Color) {
	if len(points) < 2 {
		return
	}
	segments := make([]fyne.CanvasObject, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		segments = append(segments, newSegment(points[i-1], points[i], width, c))
	}
	b.add(segments...)
}

func newSegment(from, to geom.Point, width float64, c color.Color) *canvas.Line {
	line := canvas.NewLine(c)
	line.StrokeWidth = float32(width)
	line.Position1 = toPos(from)
	line.Position2 = toPos(to)
	return line
}

func (b *Board) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || b.OnPointerDown == nil {
		return
	}
	b.OnPointerDown(toPoint(e.Position))
}

func (b *Board) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pointerUp()
	}
}

func (b *Board) Dragged(e *fyne.DragEvent) {
	if b.OnPointerMove != nil {
		b.OnPointerMove(toPoint(e.Position))
	}
}

func (b *Board) DragEnd() { b.pointerUp() }

// MouseOut ends the stroke like a release does.
func (b *Board) MouseOut() { b.pointerUp() }

func (b *Board) MouseIn(*desktop.MouseEvent)    {}
func (b *Board) MouseMoved(*desktop.MouseEvent) {}

func (b *Board) pointerUp() {
	if b.OnPointerUp != nil {
		b.OnPointerUp()
	}
}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(palette.Background)
	return r
}

type boardRenderer struct {
	board      *Board
	background *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	r.board.mu.RLock()
	defer r.board.mu.RUnlock()

	objects := make([]fyne.CanvasObject, 0, len(r.board.objects)+1)
	objects = append(objects, r.background)
	return append(objects, r.board.objects...)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	if size == r.board.lastSize {
		return
	}
	r.board.lastSize = size
	if r.board.OnResize != nil {
		r.board.OnResize()
	}
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}
