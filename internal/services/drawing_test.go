package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"shapepad/internal/logger"
	"shapepad/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestRasterizeRectangle(t *testing.T) {
	ds := NewDrawingService(2, models.DefaultOvalSegments, logger.NewNop())
	palette := models.LightPalette()
	rect := models.NewShape(models.ShapeRectangle, models.Pt(10, 10), models.Pt(50, 40))

	img := ds.Rasterize([]models.Shape{rect}, 100, 100, palette)

	assert.Equal(t, palette.ShapeStroke, colorAt(img, 10, 25), "left edge")
	assert.Equal(t, palette.ShapeStroke, colorAt(img, 30, 39), "bottom edge")
	assert.Equal(t, palette.CanvasBackground, colorAt(img, 30, 25), "interior")
	assert.Equal(t, palette.CanvasBackground, colorAt(img, 80, 80), "outside")
}

func TestRasterizeEmptySequence(t *testing.T) {
	ds := NewDrawingService(2, models.DefaultOvalSegments, logger.NewNop())
	palette := models.DarkPalette()

	img := ds.Rasterize(nil, 20, 20, palette)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			require.Equal(t, palette.CanvasBackground, colorAt(img, x, y))
		}
	}
}

func TestExportPNG(t *testing.T) {
	ds := NewDrawingService(2, 16, logger.NewNop())
	shapes := []models.Shape{
		models.NewShape(models.ShapeOval, models.Pt(5, 5), models.Pt(35, 25)),
		models.NewShape(models.ShapeLine, models.Pt(0, 0), models.Pt(39, 29)),
	}

	var buf bytes.Buffer
	require.NoError(t, ds.ExportPNG(context.Background(), &buf, shapes, 40, 30, models.LightPalette()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())

	assert.Error(t, ds.ExportPNG(context.Background(), &buf, shapes, 0, 30, models.LightPalette()))
}
