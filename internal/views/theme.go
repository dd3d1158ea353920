package views

import (
	"image/color"

	"shapepad/internal/models"
	"shapepad/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// EditorTheme maps the active palette onto fyne's colour names and resolves
// the per-run colour and size names used by the formatted view
type EditorTheme struct {
	palette models.Palette
	variant fyne.ThemeVariant
	base    fyne.Theme
}

var _ fyne.Theme = (*EditorTheme)(nil)

func NewEditorTheme(p models.Palette) *EditorTheme {
	variant := theme.VariantLight
	if p == models.DarkPalette() {
		variant = theme.VariantDark
	}
	return &EditorTheme{palette: p, variant: variant, base: theme.DefaultTheme()}
}

func (t *EditorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if c, ok := components.ParseColorName(name); ok {
		return c
	}

	p := t.palette
	switch name {
	case theme.ColorNameBackground:
		return p.PanelBackground
	case theme.ColorNameForeground:
		return p.PanelForeground
	case theme.ColorNameInputBackground:
		return p.EditorBackground
	case theme.ColorNamePrimary:
		return p.ShapeButton
	case theme.ColorNameHover:
		return p.ShapeButtonHover
	case theme.ColorNameForegroundOnPrimary:
		return p.ShapeButtonText
	case theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return p.MenuItemBackground
	}
	return t.base.Color(name, t.variant)
}

func (t *EditorTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := components.ParseSizeName(name); ok {
		return size
	}
	return t.base.Size(name)
}

func (t *EditorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *EditorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}
