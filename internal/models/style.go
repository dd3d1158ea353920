package models

import (
	"fmt"
	"image/color"
)

// FontStyle is the weight/slant choice offered by the Format menu
type FontStyle string

const (
	FontStylePlain  FontStyle = "Plain"
	FontStyleBold   FontStyle = "Bold"
	FontStyleItalic FontStyle = "Italic"
)

// FontStyles lists the choices in menu order
var FontStyles = []FontStyle{FontStylePlain, FontStyleBold, FontStyleItalic}

// Style holds the attributes of a styled run. Zero Family, Size or a
// transparent Color mean the theme default applies.
type Style struct {
	Family string
	Size   float32
	Bold   bool
	Italic bool
	Color  color.NRGBA
}

// HasColor reports whether the run overrides the theme foreground
func (s Style) HasColor() bool {
	return s.Color.A != 0
}

// StylePatch carries the attributes a formatting command changes; nil fields are left alone
type StylePatch struct {
	Family *string
	Size   *float32
	Bold   *bool
	Italic *bool
	Color  *color.NRGBA
}

func (p StylePatch) apply(s Style) Style {
	if p.Family != nil {
		s.Family = *p.Family
	}
	if p.Size != nil {
		s.Size = *p.Size
	}
	if p.Bold != nil {
		s.Bold = *p.Bold
	}
	if p.Italic != nil {
		s.Italic = *p.Italic
	}
	if p.Color != nil {
		s.Color = *p.Color
	}
	return s
}

// FamilyPatch sets the font family
func FamilyPatch(family string) StylePatch {
	return StylePatch{Family: &family}
}

// SizePatch sets the font size in points
func SizePatch(size float32) StylePatch {
	return StylePatch{Size: &size}
}

// FontStylePatch sets both weight and slant, so Plain clears them
func FontStylePatch(fs FontStyle) StylePatch {
	bold := fs == FontStyleBold
	italic := fs == FontStyleItalic
	return StylePatch{Bold: &bold, Italic: &italic}
}

// ColorPatch sets the foreground colour
func ColorPatch(c color.Color) StylePatch {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return StylePatch{Color: &nrgba}
}

// StyleRun is a span of the document carrying uniform formatting
type StyleRun struct {
	Len   int
	Style Style
}

// Range is a half-open span of rune offsets
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
