package components

import (
	"testing"

	"shapepad/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mouseAt(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func dragTo(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func newTestCanvas(t *testing.T) *DrawingCanvas {
	t.Helper()
	test.NewTempApp(t)
	dc := NewDrawingCanvas(200, 150, 1.5, models.DefaultOvalSegments)
	dc.Resize(fyne.NewSize(200, 150))
	return dc
}

func TestDrawingCanvasRectangleThenClear(t *testing.T) {
	dc := newTestCanvas(t)
	dc.SetTool(models.ToolRectangle)

	var drawn []models.Shape
	dc.OnShapeDrawn = func(s models.Shape) {
		drawn = append(drawn, s)
		dc.SetShapes(drawn)
	}

	dc.MouseDown(mouseAt(10, 10))
	dc.Dragged(dragTo(50, 40))
	dc.MouseUp(mouseAt(50, 40))

	require.Len(t, drawn, 1)
	assert.Equal(t, models.ShapeRectangle, drawn[0].Kind())
	assert.Equal(t, models.Pt(10, 10), drawn[0].Start())
	assert.Equal(t, models.Pt(50, 40), drawn[0].End())

	r := test.WidgetRenderer(dc)
	assert.Len(t, r.Objects(), 5, "background plus four edges")

	dc.SetTool(models.ToolClear)
	dc.SetShapes(nil)

	objects := r.Objects()
	require.Len(t, objects, 1)
	bg, ok := objects[0].(*canvas.Rectangle)
	require.True(t, ok)
	assert.Equal(t, models.LightPalette().CanvasBackground, bg.FillColor)
}

func TestDrawingCanvasPreviewWhileDragging(t *testing.T) {
	dc := newTestCanvas(t)
	dc.SetTool(models.ToolLine)
	r := test.WidgetRenderer(dc)

	dc.MouseDown(mouseAt(5, 5))
	dc.Dragged(dragTo(30, 20))

	objects := r.Objects()
	require.Len(t, objects, 2)
	line, ok := objects[1].(*canvas.Line)
	require.True(t, ok)
	assert.Equal(t, models.LightPalette().ShapePreview, line.StrokeColor)
	assert.Equal(t, fyne.NewPos(30, 20), line.Position2)
	assert.Empty(t, dc.Shapes(), "preview is not stored")
}

func TestDrawingCanvasClearToolDrawsNothing(t *testing.T) {
	dc := newTestCanvas(t)
	called := false
	dc.OnShapeDrawn = func(models.Shape) { called = true }

	dc.MouseDown(mouseAt(1, 1))
	dc.Dragged(dragTo(20, 20))
	dc.MouseUp(mouseAt(20, 20))

	assert.False(t, called)
	assert.Len(t, test.WidgetRenderer(dc).Objects(), 1)
}

func TestDrawingCanvasDragEndCommits(t *testing.T) {
	dc := newTestCanvas(t)
	dc.SetTool(models.ToolTriangle)

	dc.MouseDown(mouseAt(0, 0))
	dc.Dragged(dragTo(40, 40))
	dc.DragEnd()
	dc.MouseUp(mouseAt(40, 40))

	shapes := dc.Shapes()
	require.Len(t, shapes, 1, "MouseUp after DragEnd must not add a second shape")
	assert.Equal(t, models.ShapeTriangle, shapes[0].Kind())
}

func TestDrawingCanvasPalette(t *testing.T) {
	dc := newTestCanvas(t)
	dc.SetShapes([]models.Shape{models.NewShape(models.ShapeLine, models.Pt(0, 0), models.Pt(9, 9))})
	dc.SetPalette(models.DarkPalette())

	objects := test.WidgetRenderer(dc).Objects()
	require.Len(t, objects, 2)
	assert.Equal(t, models.DarkPalette().CanvasBackground, objects[0].(*canvas.Rectangle).FillColor)
	assert.Equal(t, models.DarkPalette().ShapeStroke, objects[1].(*canvas.Line).StrokeColor)
}
