package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"shapepad/internal/logger"
	"shapepad/internal/models"

	"golang.org/x/image/vector"
)

// DrawingService renders the shape sequence off-screen for export
type DrawingService struct {
	strokeWidth  float32
	ovalSegments int
	logger       logger.Logger
}

func NewDrawingService(strokeWidth float32, ovalSegments int, log logger.Logger) *DrawingService {
	return &DrawingService{
		strokeWidth:  strokeWidth,
		ovalSegments: ovalSegments,
		logger:       log,
	}
}

// Rasterize paints shapes over the palette's canvas background
func (ds *DrawingService) Rasterize(shapes []models.Shape, width, height int, palette models.Palette) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(palette.CanvasBackground), image.Point{}, draw.Src)

	ink := image.NewUniform(palette.ShapeStroke)
	z := vector.NewRasterizer(width, height)
	for _, shape := range shapes {
		for _, seg := range shape.Segments(ds.ovalSegments) {
			// one path per segment: overlapping quads of opposite winding would cancel
			z.Reset(width, height)
			z.DrawOp = draw.Over
			ds.strokePath(z, seg)
			z.Draw(dst, dst.Bounds(), ink, image.Point{})
		}
	}
	return dst
}

// strokePath outlines seg as a quad of the stroke width with square caps
func (ds *DrawingService) strokePath(z *vector.Rasterizer, seg models.Segment) {
	dx := float64(seg.To.X - seg.From.X)
	dy := float64(seg.To.Y - seg.From.Y)
	length := math.Hypot(dx, dy)
	half := float64(ds.strokeWidth) / 2

	var ux, uy float64
	if length == 0 {
		ux, uy = 1, 0
	} else {
		ux, uy = dx/length, dy/length
	}
	nx, ny := -uy*half, ux*half

	x0 := float64(seg.From.X) - ux*half
	y0 := float64(seg.From.Y) - uy*half
	x1 := float64(seg.To.X) + ux*half
	y1 := float64(seg.To.Y) + uy*half

	z.MoveTo(float32(x0+nx), float32(y0+ny))
	z.LineTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.LineTo(float32(x0-nx), float32(y0-ny))
	z.ClosePath()
}

// ExportPNG rasterises shapes and encodes the result as PNG
func (ds *DrawingService) ExportPNG(ctx context.Context, w io.Writer, shapes []models.Shape, width, height int, palette models.Palette) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid drawing size %dx%d", width, height)
	}

	img := ds.Rasterize(shapes, width, height, palette)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode drawing: %w", err)
	}

	ds.logger.Info("DrawingService", "drawing exported", map[string]interface{}{
		"shapes": len(shapes),
		"width":  width,
		"height": height,
	})
	return nil
}
