package views

import (
	"errors"
	"image/color"
	"testing"

	"shapepad/internal/config"
	"shapepad/internal/controllers"
	"shapepad/internal/logger"
	"shapepad/internal/models"
	"shapepad/internal/services"
	"shapepad/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T) (*MainView, *controllers.MainController) {
	t.Helper()
	test.NewTempApp(t)

	cfg := config.Default()
	log := logger.NewNop()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	view := NewMainView(window, cfg)
	controller := controllers.NewMainController(
		services.NewTextFileService(cfg.Editor.DefaultExtension, log),
		services.NewDrawingService(cfg.Canvas.StrokeWidth, cfg.Canvas.OvalSegments, log),
		models.NewThemeState(cfg.Theme.StartDark),
		log,
		cfg.Window.Title,
	)
	controller.SetMainView(view)
	view.SetActions(controller)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	return view, controller
}

func TestEditorThemeColours(t *testing.T) {
	light := NewEditorTheme(models.LightPalette())
	assert.Equal(t, models.LightPalette().EditorBackground, light.Color(theme.ColorNameInputBackground, theme.VariantLight))
	assert.Equal(t, models.LightPalette().ShapeButton, light.Color(theme.ColorNamePrimary, theme.VariantLight))

	dark := NewEditorTheme(models.DarkPalette())
	assert.Equal(t, models.DarkPalette().PanelBackground, dark.Color(theme.ColorNameBackground, theme.VariantLight))

	red := color.NRGBA{R: 255, A: 255}
	assert.Equal(t, red, light.Color(components.ColorName(red), theme.VariantLight))
	assert.Equal(t, float32(18), light.Size(components.SizeName(18)))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNamePadding), light.Size(theme.SizeNamePadding))
}

func TestShapeButtonsDrawAndClear(t *testing.T) {
	view, controller := newTestView(t)

	test.Tap(view.Toolbar().Button(models.ToolRectangle))
	assert.Equal(t, models.ToolRectangle, controller.Tool())
	assert.Equal(t, models.ToolRectangle, view.Toolbar().CurrentTool())
	assert.Equal(t, "Tool: Rectangle", view.StatusBar().GetStatus())

	c := view.Canvas()
	c.MouseDown(mouseAt(10, 10))
	c.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 40)}})
	c.MouseUp(mouseAt(50, 40))

	require.Equal(t, 1, controller.Shapes().Len())
	assert.Len(t, test.WidgetRenderer(c).Objects(), 5)

	test.Tap(view.Toolbar().Button(models.ToolClear))
	assert.Zero(t, controller.Shapes().Len())
	assert.Len(t, test.WidgetRenderer(c).Objects(), 1)
	assert.Equal(t, "0 shapes", view.StatusBar().ShapeCountText())
	assert.Equal(t, "Canvas cleared", view.StatusBar().GetStatus())
}

func TestToggleDarkModeButton(t *testing.T) {
	view, _ := newTestView(t)
	toggle := view.Toolbar().ToggleButton()

	test.Tap(toggle)
	current := fyne.CurrentApp().Settings().Theme()
	assert.Equal(t, models.DarkPalette().EditorBackground, current.Color(theme.ColorNameInputBackground, theme.VariantDark))

	test.Tap(toggle)
	current = fyne.CurrentApp().Settings().Theme()
	assert.Equal(t, models.LightPalette().EditorBackground, current.Color(theme.ColorNameInputBackground, theme.VariantLight))
}

func TestTypingReachesDocument(t *testing.T) {
	view, controller := newTestView(t)

	view.Editor().Entry().SetText("hello")
	assert.Equal(t, "hello", controller.Document().Text())
	assert.Contains(t, view.GetWindow().Title(), "Text Editor with Shapes")
}

func TestReplacementIsSelectedInEditor(t *testing.T) {
	view, controller := newTestView(t)
	entry := view.Editor().Entry()

	entry.SetText("foo bar")
	_, found := controller.Document().ReplaceFirst("bar", "BAZ")
	require.True(t, found)
	view.SetDocument(controller.Document())

	assert.Equal(t, "BAZ", entry.SelectedText())

	controller.Cut()
	assert.Equal(t, "BAZ", controller.Clipboard().Get())
	assert.Equal(t, "foo ", controller.Document().Text())
	assert.Equal(t, "foo ", entry.Text)
	assert.Equal(t, "3 characters on clipboard", view.StatusBar().GetStatus())
}

func TestShowErrorUsesTitle(t *testing.T) {
	view, _ := newTestView(t)

	view.ShowError("File Save Error", errors.New("disk full"))

	top := view.GetWindow().Canvas().Overlays().Top()
	require.NotNil(t, top)
	texts := canvasTexts(top)
	assert.Contains(t, texts, "File Save Error")
	assert.Contains(t, texts, "Disk full")
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "No text selected", errorMessage(errors.New("no text selected")))
	assert.Equal(t, "Élan", errorMessage(errors.New("élan")))
	assert.Empty(t, errorMessage(errors.New("")))
}

// canvasTexts collects the text of every label and text object under o
func canvasTexts(o fyne.CanvasObject) []string {
	switch v := o.(type) {
	case *widget.Label:
		return []string{v.Text}
	case *canvas.Text:
		return []string{v.Text}
	case *fyne.Container:
		var texts []string
		for _, child := range v.Objects {
			texts = append(texts, canvasTexts(child)...)
		}
		return texts
	case fyne.Widget:
		var texts []string
		for _, child := range test.WidgetRenderer(v).Objects() {
			texts = append(texts, canvasTexts(child)...)
		}
		return texts
	}
	return nil
}

func mouseAt(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}
