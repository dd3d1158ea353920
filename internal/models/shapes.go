package models

import (
	"math"
	"sync"
)

// DefaultOvalSegments is the number of chords used to outline an ellipse
const DefaultOvalSegments = 48

type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota
	ShapeOval
	ShapeLine
	ShapeTriangle
	ShapePentagon
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "Rectangle"
	case ShapeOval:
		return "Oval"
	case ShapeLine:
		return "Line"
	case ShapeTriangle:
		return "Triangle"
	case ShapePentagon:
		return "Pentagon"
	default:
		return "Unknown"
	}
}

// ShapeTool is a palette button: one per shape kind plus Clear
type ShapeTool string

const (
	ToolRectangle ShapeTool = "Rectangle"
	ToolOval      ShapeTool = "Oval"
	ToolLine      ShapeTool = "Line"
	ToolTriangle  ShapeTool = "Triangle"
	ToolPentagon  ShapeTool = "Pentagon"
	ToolClear     ShapeTool = "CLEAR"
)

// ShapeTools lists the palette in button order
var ShapeTools = []ShapeTool{ToolRectangle, ToolOval, ToolLine, ToolTriangle, ToolPentagon, ToolClear}

// Kind maps a drawing tool onto its shape; Clear draws nothing
func (t ShapeTool) Kind() (ShapeKind, bool) {
	switch t {
	case ToolRectangle:
		return ShapeRectangle, true
	case ToolOval:
		return ShapeOval, true
	case ToolLine:
		return ShapeLine, true
	case ToolTriangle:
		return ShapeTriangle, true
	case ToolPentagon:
		return ShapePentagon, true
	default:
		return 0, false
	}
}

type Point struct {
	X, Y float32
}

func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

type Segment struct {
	From, To Point
}

// Shape is an immutable primitive defined by the press and release points
// of the drag that created it
type Shape struct {
	kind  ShapeKind
	start Point
	end   Point
}

func NewShape(kind ShapeKind, start, end Point) Shape {
	return Shape{kind: kind, start: start, end: end}
}

func (s Shape) Kind() ShapeKind { return s.kind }
func (s Shape) Start() Point    { return s.start }
func (s Shape) End() Point      { return s.end }

// Bounds returns the top-left corner and size of the box spanned by the two points
func (s Shape) Bounds() (Point, float32, float32) {
	minPt := Pt(min(s.start.X, s.end.X), min(s.start.Y, s.end.Y))
	w := float32(math.Abs(float64(s.start.X - s.end.X)))
	h := float32(math.Abs(float64(s.start.Y - s.end.Y)))
	return minPt, w, h
}

// Outline returns the vertices of the shape and whether the path is closed
func (s Shape) Outline(ovalSegments int) ([]Point, bool) {
	x1, y1 := s.start.X, s.start.Y
	x2, y2 := s.end.X, s.end.Y
	origin, w, h := s.Bounds()

	switch s.kind {
	case ShapeRectangle:
		return []Point{
			origin,
			Pt(origin.X+w, origin.Y),
			Pt(origin.X+w, origin.Y+h),
			Pt(origin.X, origin.Y+h),
		}, true
	case ShapeOval:
		if ovalSegments < 3 {
			ovalSegments = DefaultOvalSegments
		}
		cx, cy := origin.X+w/2, origin.Y+h/2
		pts := make([]Point, ovalSegments)
		for i := range pts {
			theta := 2 * math.Pi * float64(i) / float64(ovalSegments)
			pts[i] = Pt(
				cx+w/2*float32(math.Cos(theta)),
				cy+h/2*float32(math.Sin(theta)),
			)
		}
		return pts, true
	case ShapeLine:
		return []Point{s.start, s.end}, false
	case ShapeTriangle:
		midX := (x1 + x2) / 2
		return []Point{Pt(midX, y1), Pt(x1, y2), Pt(x2, y2)}, true
	case ShapePentagon:
		midX := (x1 + x2) / 2
		return []Point{
			Pt(midX, y1),
			Pt(x1, y1+h/3),
			Pt(x1+w/4, y2),
			Pt(x2-w/4, y2),
			Pt(x2, y1+h/3),
		}, true
	default:
		return nil, false
	}
}

// Segments returns the stroke of the shape as straight segments
func (s Shape) Segments(ovalSegments int) []Segment {
	pts, closed := s.Outline(ovalSegments)
	if len(pts) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(pts))
	for i := 0; i+1 < len(pts); i++ {
		segs = append(segs, Segment{From: pts[i], To: pts[i+1]})
	}
	if closed {
		segs = append(segs, Segment{From: pts[len(pts)-1], To: pts[0]})
	}
	return segs
}

// ShapeSequence is the append-ordered list of drawn shapes backing the canvas
type ShapeSequence struct {
	mu     sync.RWMutex
	shapes []Shape
}

func NewShapeSequence() *ShapeSequence {
	return &ShapeSequence{}
}

func (q *ShapeSequence) Append(s Shape) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.shapes = append(q.shapes, s)
}

// All returns a copy in drawing order
func (q *ShapeSequence) All() []Shape {
	q.mu.RLock()
	defer q.mu.RUnlock()
	out := make([]Shape, len(q.shapes))
	copy(out, q.shapes)
	return out
}

func (q *ShapeSequence) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.shapes)
}

// Clear drops every shape
func (q *ShapeSequence) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.shapes = nil
}
