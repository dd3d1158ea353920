package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last status message, shape count and theme
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	shapesLabel *widget.Label
	themeLabel  *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.shapesLabel = widget.NewLabel(shapesText(0))
	sb.themeLabel = widget.NewLabel("Light mode")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.shapesLabel,
		widget.NewSeparator(),
		sb.themeLabel,
	)
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetShapeCount(n int) {
	sb.shapesLabel.SetText(shapesText(n))
}

func (sb *StatusBar) ShapeCountText() string {
	return sb.shapesLabel.Text
}

func (sb *StatusBar) SetThemeName(name string) {
	sb.themeLabel.SetText(name + " mode")
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func shapesText(n int) string {
	if n == 1 {
		return "1 shape"
	}
	return fmt.Sprintf("%d shapes", n)
}
