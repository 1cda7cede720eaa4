package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"PerfectCircle/internal/config"
	"PerfectCircle/internal/render"
	"PerfectCircle/internal/state"
)

// Game wires the board, the feedback bar and the session controller.
type Game struct {
	window   fyne.Window
	board    *Board
	feedback *feedbackBar
	ctrl     *state.Controller
	style    render.Style
	content  fyne.CanvasObject
}

// NewGame builds the game UI for w. Pointer handlers on the board map one to
// one onto controller operations.
func NewGame(w fyne.Window, cfg config.Config) *Game {
	g := &Game{
		window:   w,
		board:    NewBoard(),
		feedback: newFeedbackBar(w),
		style: render.Style{
			LineWidth:    cfg.Render.LineWidth,
			MarkerRadius: cfg.Render.MarkerRadius,
		},
	}

	opts := state.DefaultOptions()
	opts.MinRadius = cfg.Game.MinRadius
	opts.CloseEnough = cfg.Game.CloseEnough
	g.ctrl = state.NewController(render.New(g.board, g.style), g.feedback, opts)

	g.board.OnPointerDown = g.ctrl.Start
	g.board.OnPointerMove = g.ctrl.Extend
	g.board.OnPointerUp = func() { g.ctrl.End() }
	g.board.OnResize = g.ctrl.Resize

	g.content = container.NewBorder(newToolbar(g), g.feedback.content(), nil, nil, g.board)
	return g
}

// Content is the root canvas object for the window.
func (g *Game) Content() fyne.CanvasObject { return g.content }

func (g *Game) Board() *Board { return g.board }

func (g *Game) Controller() *state.Controller { return g.ctrl }

// ReplayBest is the "See Best Attempt" action.
func (g *Game) ReplayBest() { g.ctrl.ReplayBest() }

// RunApp opens the game window and blocks until it is closed.
func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Perfect Circle")
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	game := NewGame(myWindow, cfg)

	myWindow.SetContent(game.Content())
	myWindow.ShowAndRun()
}
