package components

import (
	"shapepad/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ShapeToolbar holds one button per shape tool plus the dark mode toggle
type ShapeToolbar struct {
	container    *fyne.Container
	toolButtons  map[models.ShapeTool]*widget.Button
	toggleButton *widget.Button
	toolLabel    *widget.Label

	// Event handlers
	toolHandler   func(models.ShapeTool)
	toggleHandler func()

	currentTool models.ShapeTool
}

func NewShapeToolbar() *ShapeToolbar {
	t := &ShapeToolbar{
		toolButtons: make(map[models.ShapeTool]*widget.Button, len(models.ShapeTools)),
		currentTool: models.ToolClear,
	}
	t.createComponents()
	t.buildLayout()
	return t
}

func (t *ShapeToolbar) createComponents() {
	for _, tool := range models.ShapeTools {
		tool := tool
		b := widget.NewButton(string(tool), func() {
			if t.toolHandler != nil {
				t.toolHandler(tool)
			}
		})
		b.Importance = widget.HighImportance
		t.toolButtons[tool] = b
	}

	t.toggleButton = widget.NewButton("Toggle Dark Mode", func() {
		if t.toggleHandler != nil {
			t.toggleHandler()
		}
	})

	t.toolLabel = widget.NewLabel(toolText(t.currentTool))
}

func (t *ShapeToolbar) buildLayout() {
	buttons := make([]fyne.CanvasObject, 0, len(models.ShapeTools))
	for _, tool := range models.ShapeTools {
		buttons = append(buttons, t.toolButtons[tool])
	}

	t.container = container.NewVBox(
		container.NewGridWithColumns(3, buttons...),
		container.NewHBox(t.toggleButton, widget.NewSeparator(), t.toolLabel),
	)
}

func (t *ShapeToolbar) SetToolHandler(handler func(models.ShapeTool)) {
	t.toolHandler = handler
}

func (t *ShapeToolbar) SetToggleHandler(handler func()) {
	t.toggleHandler = handler
}

// SetCurrentTool marks tool as active
func (t *ShapeToolbar) SetCurrentTool(tool models.ShapeTool) {
	t.currentTool = tool
	for name, b := range t.toolButtons {
		if name == tool {
			b.Importance = widget.HighImportance
		} else {
			b.Importance = widget.MediumImportance
		}
		b.Refresh()
	}
	t.toolLabel.SetText(toolText(tool))
}

func (t *ShapeToolbar) CurrentTool() models.ShapeTool {
	return t.currentTool
}

// Button returns the palette button for tool, used by tests to tap it
func (t *ShapeToolbar) Button(tool models.ShapeTool) *widget.Button {
	return t.toolButtons[tool]
}

func (t *ShapeToolbar) ToggleButton() *widget.Button {
	return t.toggleButton
}

func (t *ShapeToolbar) GetContainer() *fyne.Container {
	return t.container
}

func toolText(tool models.ShapeTool) string {
	if tool == models.ToolClear {
		return "Tool: none"
	}
	return "Tool: " + string(tool)
}
