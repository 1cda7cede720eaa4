package ui

import (
	"errors"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"PerfectCircle/internal/export"
	"PerfectCircle/internal/logging"
)

type exportFormat int

const (
	formatPDF exportFormat = iota
	formatPNG
	formatJSON
)

func (f exportFormat) ext() string {
	switch f {
	case formatPNG:
		return ".png"
	case formatJSON:
		return ".json"
	}
	return ".pdf"
}

// writeBest writes the best attempt in format f.
func (g *Game) writeBest(w io.Writer, f exportFormat) error {
	best, ok := g.ctrl.Best()
	if !ok {
		return errors.New("no best attempt yet")
	}
	switch f {
	case formatPNG:
		return export.PNG(w, best, g.style)
	case formatJSON:
		return export.JSON(w, best)
	}
	return export.PDF(w, best, g.style)
}

// saveBest asks for a destination and exports the best attempt there.
func (g *Game) saveBest(f exportFormat) {
	best, ok := g.ctrl.Best()
	if !ok {
		g.feedback.Status("No best attempt to export")
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer func() {
			if err := writer.Close(); err != nil {
				logging.Logger().Error("close export", "uri", writer.URI().String(), "err", err)
			}
		}()

		if err := g.writeBest(writer, f); err != nil {
			logging.Logger().Error("export failed", "uri", writer.URI().String(), "err", err)
			dialog.ShowError(err, g.window)
			return
		}
		logging.Logger().Info("exported best attempt", "uri", writer.URI().String(), "id", best.ID)
		g.feedback.Status("Saved " + writer.URI().Name())
	}, g.window)
	d.SetFileName(fmt.Sprintf("best-attempt-%d%s", best.Seq, f.ext()))
	d.Show()
}

