package state

import (
	"fmt"
	"image/color"
)

// Feedback receives the text the player sees outside the drawing surface.
type Feedback interface {
	// Accuracy shows the live or final accuracy label.
	Accuracy(text string, c color.Color)
	// Best shows the best-attempt summary.
	Best(text string)
	// Notice raises a user-facing alert the player must dismiss.
	Notice(title, message string)
	// Status shows a transient, non-blocking hint.
	Status(text string)
}

// FormatAccuracy renders an accuracy with one decimal and a percent sign.
func FormatAccuracy(a float64) string {
	return fmt.Sprintf("%.1f%%", a)
}

// FormatBest renders the best-attempt summary.
func FormatBest(a float64) string {
	return "Best: " + FormatAccuracy(a)
}

const (
	tooSmallTitle   = "Invalid attempt"
	tooSmallMessage = "The circle is too small. Please draw a larger circle."
	noBestStatus    = "No best attempt yet"
)
