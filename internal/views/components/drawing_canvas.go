package components

import (
	"image/color"

	"shapepad/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// DrawingCanvas is the shape surface. A press records the start point, a drag
// updates the preview and the release hands a finished shape to OnShapeDrawn.
type DrawingCanvas struct {
	widget.BaseWidget

	OnShapeDrawn func(models.Shape)

	shapes       []models.Shape
	tool         models.ShapeTool
	palette      models.Palette
	strokeWidth  float32
	ovalSegments int
	minSize      fyne.Size

	pressed bool
	press   models.Point
	current models.Point
}

func NewDrawingCanvas(width, height, strokeWidth float32, ovalSegments int) *DrawingCanvas {
	dc := &DrawingCanvas{
		tool:         models.ToolClear,
		palette:      models.LightPalette(),
		strokeWidth:  strokeWidth,
		ovalSegments: ovalSegments,
		minSize:      fyne.NewSize(width, height),
	}
	dc.ExtendBaseWidget(dc)
	return dc
}

// SetShapes replaces the displayed sequence and repaints
func (dc *DrawingCanvas) SetShapes(shapes []models.Shape) {
	dc.shapes = append([]models.Shape(nil), shapes...)
	dc.Refresh()
}

func (dc *DrawingCanvas) Shapes() []models.Shape {
	return append([]models.Shape(nil), dc.shapes...)
}

func (dc *DrawingCanvas) SetTool(tool models.ShapeTool) {
	dc.tool = tool
	dc.pressed = false
	dc.Refresh()
}

func (dc *DrawingCanvas) SetPalette(p models.Palette) {
	dc.palette = p
	dc.Refresh()
}

// MouseDown implements desktop.Mouseable
func (dc *DrawingCanvas) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	dc.pressed = true
	dc.press = pointOf(e.Position)
	dc.current = dc.press
}

// MouseUp implements desktop.Mouseable
func (dc *DrawingCanvas) MouseUp(e *desktop.MouseEvent) {
	if !dc.pressed || e.Button != desktop.MouseButtonPrimary {
		return
	}
	dc.current = pointOf(e.Position)
	dc.commit()
}

// Dragged implements fyne.Draggable
func (dc *DrawingCanvas) Dragged(e *fyne.DragEvent) {
	if !dc.pressed {
		return
	}
	dc.current = pointOf(e.Position)
	dc.Refresh()
}

// DragEnd commits when no MouseUp arrives, which is the case for touch input
func (dc *DrawingCanvas) DragEnd() {
	if dc.pressed {
		dc.commit()
	}
}

func (dc *DrawingCanvas) commit() {
	dc.pressed = false
	kind, ok := dc.tool.Kind()
	if !ok {
		dc.Refresh()
		return
	}

	shape := models.NewShape(kind, dc.press, dc.current)
	if dc.OnShapeDrawn != nil {
		dc.OnShapeDrawn(shape)
	} else {
		dc.shapes = append(dc.shapes, shape)
	}
	dc.Refresh()
}

// preview returns the in-progress shape while the button is held
func (dc *DrawingCanvas) preview() (models.Shape, bool) {
	if !dc.pressed {
		return models.Shape{}, false
	}
	kind, ok := dc.tool.Kind()
	if !ok {
		return models.Shape{}, false
	}
	return models.NewShape(kind, dc.press, dc.current), true
}

func (dc *DrawingCanvas) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(dc.palette.CanvasBackground)
	r := &drawingCanvasRenderer{dc: dc, bg: bg}
	r.rebuild()
	return r
}

func pointOf(p fyne.Position) models.Point {
	return models.Pt(p.X, p.Y)
}

type drawingCanvasRenderer struct {
	dc      *DrawingCanvas
	bg      *canvas.Rectangle
	lines   []*canvas.Line
	objects []fyne.CanvasObject
}

func (r *drawingCanvasRenderer) Destroy()                     {}
func (r *drawingCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *drawingCanvasRenderer) MinSize() fyne.Size           { return r.dc.minSize }

func (r *drawingCanvasRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
}

func (r *drawingCanvasRenderer) Refresh() {
	r.rebuild()
	r.Layout(r.dc.Size())
	canvas.Refresh(r.dc)
}

// rebuild recreates one line object per stroke segment, stored shapes first
func (r *drawingCanvasRenderer) rebuild() {
	r.bg.FillColor = r.dc.palette.CanvasBackground
	r.lines = r.lines[:0]

	for _, s := range r.dc.shapes {
		r.addShape(s, r.dc.palette.ShapeStroke)
	}
	if s, ok := r.dc.preview(); ok {
		r.addShape(s, r.dc.palette.ShapePreview)
	}

	r.objects = make([]fyne.CanvasObject, 0, len(r.lines)+1)
	r.objects = append(r.objects, r.bg)
	for _, l := range r.lines {
		r.objects = append(r.objects, l)
	}
}

func (r *drawingCanvasRenderer) addShape(s models.Shape, c color.Color) {
	for _, seg := range s.Segments(r.dc.ovalSegments) {
		line := canvas.NewLine(c)
		line.StrokeWidth = r.dc.strokeWidth
		line.Position1 = fyne.NewPos(seg.From.X, seg.From.Y)
		line.Position2 = fyne.NewPos(seg.To.X, seg.To.Y)
		r.lines = append(r.lines, line)
	}
}
