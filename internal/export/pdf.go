// Package export writes attempts out as PDF, PNG or JSON. Exports never feed
// back into the running game.
package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"PerfectCircle/internal/geom"
	"PerfectCircle/internal/palette"
	"PerfectCircle/internal/render"
	"PerfectCircle/internal/state"
)

// PDFSurface draws onto a single gofpdf page in points, one unit per
// surface unit.
type PDFSurface struct {
	pdf        *gofpdf.Fpdf
	w, h       float64
	Background color.Color
}

var _ render.Surface = (*PDFSurface)(nil)

// NewPDFSurface starts a document with one page of the given size.
func NewPDFSurface(width, height float64) *PDFSurface {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	p.AddPage()
	return &PDFSurface{pdf: p, w: width, h: height, Background: palette.Background}
}

func (s *PDFSurface) Clear() {
	s.setFill(s.Background)
	s.pdf.Rect(0, 0, s.w, s.h, "F")
}

func (s *PDFSurface) Dimensions() (float64, float64) { return s.w, s.h }

func (s *PDFSurface) FillCircle(center geom.Point, radius float64, c color.Color) {
	s.setFill(c)
	s.pdf.Circle(center.X, center.Y, radius, "F")
}

func (s *PDFSurface) StrokeCircle(center geom.Point, radius, width float64, c color.Color) {
	s.setDraw(c, width)
	s.pdf.Circle(center.X, center.Y, radius, "D")
	s.pdf.SetAlpha(1, "Normal")
}

func (s *PDFSurface) Line(from, to geom.Point, width float64, c color.Color) {
	s.setDraw(c, width)
	s.pdf.Line(from.X, from.Y, to.X, to.Y)
	s.pdf.SetAlpha(1, "Normal")
}

func (s *PDFSurface) Polyline(points []geom.Point, width float64, c color.Color) {
	if len(points) < 2 {
		return
	}
	s.setDraw(c, width)
	s.pdf.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.pdf.LineTo(p.X, p.Y)
	}
	s.pdf.DrawPath("D")
	s.pdf.SetAlpha(1, "Normal")
}

// Caption writes text at the top left of the page.
func (s *PDFSurface) Caption(text string) {
	s.pdf.SetFont("Helvetica", "", 12)
	s.pdf.SetTextColor(255, 255, 255)
	s.pdf.Text(12, 20, text)
}

// Write finishes the document.
func (s *PDFSurface) Write(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (s *PDFSurface) setFill(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.pdf.SetFillColor(int(n.R), int(n.G), int(n.B))
}

func (s *PDFSurface) setDraw(c color.Color, width float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.pdf.SetDrawColor(int(n.R), int(n.G), int(n.B))
	s.pdf.SetLineWidth(width)
	if n.A < 255 {
		s.pdf.SetAlpha(float64(n.A)/255, "Normal")
	}
}

// PDF renders attempt on a page the size of the surface it was drawn on:
// the center marker, the ideal circle, the stroke and an accuracy caption.
func PDF(w io.Writer, a state.Attempt, style render.Style) error {
	if err := checkSurface(a.Width, a.Height); err != nil {
		return err
	}
	s := NewPDFSurface(a.Width, a.Height)
	drawAttempt(render.New(s, style), a)
	s.Caption(fmt.Sprintf("Accuracy %s  #%d  %s", state.FormatAccuracy(a.Accuracy), a.Seq, a.Time.Format("2006-01-02 15:04:05")))
	return s.Write(w)
}

func drawAttempt(r *render.Renderer, a state.Attempt) {
	r.Reset()
	r.IdealCircle(geom.AverageRadius(a.Points, r.Center()), palette.Guide)
	r.Path(a.Points, palette.Neutral)
}
