package paint

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status line texts. Each canvas event replaces the previous line.
const (
	statusReady   = "Ready to draw.."
	statusCleared = "Canvas is now cleared. Ready to draw.."
	statusNew     = "New Canvas created. Ready to draw.."
)

// kindTitle returns the display name of a shape kind, e.g. "Ellipse".
// A Caser keeps state, so each call builds its own.
func kindTitle(k Kind) string {
	return cases.Title(language.English).String(k.String())
}

func statusBegin(at Point) string {
	return at.String()
}

func statusDrag(start Point) string {
	return fmt.Sprintf("Endpoint: %d,%d  Release the mouse to draw the shape..", start.X, start.Y)
}

func statusCreated(s Shape) string {
	w := s.Style().Width
	if s.Kind() == KindLine {
		return fmt.Sprintf("%s is created at %v to %v with %d px thickness. %s",
			kindTitle(s.Kind()), s.Start(), s.Far(), w, statusReady)
	}
	return fmt.Sprintf("%s is created within the range of %v to %v with %d px thickness. %s",
		kindTitle(s.Kind()), s.Start(), s.Far(), w, statusReady)
}

func statusUndo(ok bool, remaining int) string {
	if !ok {
		return "Nothing to undo. " + statusReady
	}
	return fmt.Sprintf("Last drawable removed, %d left. %s", remaining, statusReady)
}

func statusRedo(ok bool, count int) string {
	if !ok {
		return "Nothing to redo. " + statusReady
	}
	return fmt.Sprintf("Drawable restored, %d on canvas. %s", count, statusReady)
}

func statusThickness(width int) string {
	return fmt.Sprintf("Drawable thickness is now set to %d px. %s", width, statusReady)
}

func statusFootprint(k FootprintKind) string {
	name := "Square"
	if k == FootprintRound {
		name = "Circle"
	}
	return fmt.Sprintf("%s footprint is selected. %s", name, statusReady)
}
