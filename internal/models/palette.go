package models

import "image/color"

// Palette is one of the two fixed colour schemes applied to every widget
type Palette struct {
	Name string

	EditorBackground color.NRGBA
	EditorForeground color.NRGBA
	Caret            color.NRGBA

	CanvasBackground color.NRGBA
	ShapeStroke      color.NRGBA
	ShapePreview     color.NRGBA

	MenuBarBackground  color.NRGBA
	MenuBarForeground  color.NRGBA
	MenuItemBackground color.NRGBA
	MenuItemForeground color.NRGBA

	PanelBackground color.NRGBA
	PanelForeground color.NRGBA

	ShapeButton      color.NRGBA
	ShapeButtonHover color.NRGBA
	ShapeButtonText  color.NRGBA
}

var (
	white     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black     = color.NRGBA{A: 255}
	lightGray = color.NRGBA{R: 192, G: 192, B: 192, A: 255}
	gray      = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	darkGray  = color.NRGBA{R: 64, G: 64, B: 64, A: 255}
)

func LightPalette() Palette {
	return Palette{
		Name:               "Light",
		EditorBackground:   white,
		EditorForeground:   black,
		Caret:              black,
		CanvasBackground:   white,
		ShapeStroke:        black,
		ShapePreview:       gray,
		MenuBarBackground:  white,
		MenuBarForeground:  black,
		MenuItemBackground: white,
		MenuItemForeground: black,
		PanelBackground:    lightGray,
		PanelForeground:    black,
		ShapeButton:        color.NRGBA{R: 83, G: 90, B: 218, A: 255},
		ShapeButtonHover:   color.NRGBA{R: 115, G: 118, B: 200, A: 255},
		ShapeButtonText:    white,
	}
}

func DarkPalette() Palette {
	return Palette{
		Name:               "Dark",
		EditorBackground:   darkGray,
		EditorForeground:   white,
		Caret:              white,
		CanvasBackground:   darkGray,
		ShapeStroke:        white,
		ShapePreview:       gray,
		MenuBarBackground:  black,
		MenuBarForeground:  white,
		MenuItemBackground: darkGray,
		MenuItemForeground: white,
		PanelBackground:    black,
		PanelForeground:    white,
		ShapeButton:        color.NRGBA{R: 83, G: 90, B: 218, A: 255},
		ShapeButtonHover:   color.NRGBA{R: 115, G: 118, B: 200, A: 255},
		ShapeButtonText:    white,
	}
}

// ThemeState is the dark-mode flag
type ThemeState struct {
	dark bool
}

func NewThemeState(dark bool) *ThemeState {
	return &ThemeState{dark: dark}
}

func (t *ThemeState) Dark() bool {
	return t.dark
}

// Toggle flips the flag and returns the palette now in effect
func (t *ThemeState) Toggle() Palette {
	t.dark = !t.dark
	return t.Palette()
}

func (t *ThemeState) Palette() Palette {
	if t.dark {
		return DarkPalette()
	}
	return LightPalette()
}
