package components

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"shapepad/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	FamilySans      = "Sans"
	FamilyMonospace = "Monospace"

	colorNamePrefix = "shapepad-rgba-"
	sizeNamePrefix  = "shapepad-size-"
)

// FontFamilies are the families the toolkit can render
var FontFamilies = []string{FamilySans, FamilyMonospace}

// ColorName encodes an explicit run colour as a theme colour name
func ColorName(c color.NRGBA) fyne.ThemeColorName {
	return fyne.ThemeColorName(fmt.Sprintf("%s%02x%02x%02x%02x", colorNamePrefix, c.R, c.G, c.B, c.A))
}

// ParseColorName reverses ColorName
func ParseColorName(name fyne.ThemeColorName) (color.NRGBA, bool) {
	hex, ok := strings.CutPrefix(string(name), colorNamePrefix)
	if !ok || len(hex) != 8 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

// SizeName encodes an explicit point size as a theme size name
func SizeName(size float32) fyne.ThemeSizeName {
	return fyne.ThemeSizeName(sizeNamePrefix + strconv.FormatFloat(float64(size), 'f', -1, 32))
}

// ParseSizeName reverses SizeName
func ParseSizeName(name fyne.ThemeSizeName) (float32, bool) {
	v, ok := strings.CutPrefix(string(name), sizeNamePrefix)
	if !ok {
		return 0, false
	}
	size, err := strconv.ParseFloat(v, 32)
	if err != nil || size <= 0 {
		return 0, false
	}
	return float32(size), true
}

// Segments renders styled runs as rich text segments
func Segments(doc *models.Document) []widget.RichTextSegment {
	runes := []rune(doc.Text())
	segments := make([]widget.RichTextSegment, 0, len(doc.Runs()))

	pos := 0
	for _, run := range doc.Runs() {
		segments = append(segments, &widget.TextSegment{
			Text:  string(runes[pos : pos+run.Len]),
			Style: segmentStyle(run.Style),
		})
		pos += run.Len
	}
	return segments
}

func segmentStyle(s models.Style) widget.RichTextStyle {
	style := widget.RichTextStyle{
		Inline:    true,
		ColorName: theme.ColorNameForeground,
		SizeName:  theme.SizeNameText,
		TextStyle: fyne.TextStyle{
			Bold:      s.Bold,
			Italic:    s.Italic,
			Monospace: s.Family == FamilyMonospace,
		},
	}
	if s.HasColor() {
		style.ColorName = ColorName(s.Color)
	}
	if s.Size > 0 {
		style.SizeName = SizeName(s.Size)
	}
	return style
}

// SelectionEntry is a multi-line entry that remembers where its selection
// was anchored. fyne only exposes the caret and the selected text, which is
// ambiguous when the same text occurs on both sides of the caret.
type SelectionEntry struct {
	widget.Entry

	anchor int
}

func NewSelectionEntry() *SelectionEntry {
	e := &SelectionEntry{}
	e.MultiLine = true
	// Row and column must map onto logical lines for Selection
	e.Wrapping = fyne.TextWrapOff
	e.ExtendBaseWidget(e)
	return e
}

// KeyDown records the anchor before shift starts a keyboard selection
func (e *SelectionEntry) KeyDown(key *fyne.KeyEvent) {
	e.markAnchor()
	e.Entry.KeyDown(key)
}

// TypedKey records the anchor before the caret moves
func (e *SelectionEntry) TypedKey(key *fyne.KeyEvent) {
	e.markAnchor()
	e.Entry.TypedKey(key)
}

// MouseDown places the anchor where a mouse selection starts
func (e *SelectionEntry) MouseDown(m *desktop.MouseEvent) {
	e.Entry.MouseDown(m)
	e.markAnchor()
}

func (e *SelectionEntry) markAnchor() {
	if e.SelectedText() == "" {
		e.anchor = e.caret()
	}
}

func (e *SelectionEntry) caret() int {
	return caretOffset([]rune(e.Text), e.CursorRow, e.CursorColumn)
}

// Selection returns the rune offsets of the selection; start equals end at
// the caret when nothing is selected
func (e *SelectionEntry) Selection() (int, int) {
	return selectionOffsets(e.Text, e.SelectedText(), e.anchor, e.CursorRow, e.CursorColumn)
}

// Select highlights [start, end) the way a shift+arrow selection would
func (e *SelectionEntry) Select(start, end int) {
	runes := []rune(e.Text)
	start, end = clampOffset(start, len(runes)), clampOffset(end, len(runes))
	if end < start {
		start, end = end, start
	}
	if s, t := e.Selection(); s == start && t == end {
		return
	}

	if e.SelectedText() != "" {
		// an unshifted arrow collapses the current selection
		e.Entry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	}
	e.moveCaret(runes, start)
	e.anchor = start
	if end == start {
		e.Refresh()
		return
	}

	shift := &fyne.KeyEvent{Name: desktop.KeyShiftLeft}
	right := &fyne.KeyEvent{Name: fyne.KeyRight}
	e.Entry.KeyDown(shift)
	for i := start; i < end; i++ {
		e.Entry.TypedKey(right)
	}
	e.Entry.KeyUp(shift)
}

func (e *SelectionEntry) moveCaret(runes []rune, offset int) {
	e.CursorRow, e.CursorColumn = rowColumn(runes, offset)
}

// TextEditor pairs a plain entry for typing with a formatted view of the
// styled runs
type TextEditor struct {
	container *container.Split
	entry     *SelectionEntry
	preview   *widget.RichText

	OnTextChanged func(string)

	updating bool
}

func NewTextEditor(wrap bool) *TextEditor {
	te := &TextEditor{}
	te.createComponents(wrap)
	te.buildLayout()
	return te
}

func (te *TextEditor) createComponents(wrap bool) {
	te.entry = NewSelectionEntry()
	te.entry.OnChanged = func(text string) {
		if te.updating || te.OnTextChanged == nil {
			return
		}
		te.OnTextChanged(text)
	}

	te.preview = widget.NewRichText()
	if wrap {
		te.preview.Wrapping = fyne.TextWrapWord
	}
}

func (te *TextEditor) buildLayout() {
	te.container = container.NewVSplit(
		te.entry,
		container.NewBorder(
			widget.NewLabelWithStyle("Formatted", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			nil, nil, nil,
			container.NewScroll(te.preview),
		),
	)
	te.container.SetOffset(0.6)
}

// SetDocument shows doc in both views. A selection in the model, such as a
// replacement or a case conversion, is highlighted in the entry; otherwise
// the caret follows the model when the text changed.
func (te *TextEditor) SetDocument(doc *models.Document) {
	text := doc.Text()
	changed := te.entry.Text != text
	if changed {
		te.updating = true
		te.entry.SetText(text)
		te.updating = false
	}

	if r, ok := doc.Selection(); ok {
		te.entry.Select(r.Start, r.End)
	} else if changed {
		te.entry.Select(doc.Caret(), doc.Caret())
	}

	te.preview.Segments = Segments(doc)
	te.preview.Refresh()
}

// Selection returns the rune offsets of the entry's selection
func (te *TextEditor) Selection() (int, int) {
	return te.entry.Selection()
}

// selectionOffsets resolves the selection from its anchor and the caret. When
// the anchor is stale, as after select-all or a double tap, selected is
// located next to the caret instead.
func selectionOffsets(text, selected string, anchor, row, col int) (int, int) {
	runes := []rune(text)
	caret := caretOffset(runes, row, col)

	n := len([]rune(selected))
	if n == 0 {
		return caret, caret
	}

	lo, hi := min(anchor, caret), max(anchor, caret)
	if lo >= 0 && hi <= len(runes) && hi-lo == n && string(runes[lo:hi]) == selected {
		return lo, hi
	}
	if caret-n >= 0 && string(runes[caret-n:caret]) == selected {
		return caret - n, caret
	}
	if caret+n <= len(runes) && string(runes[caret:caret+n]) == selected {
		return caret, caret + n
	}
	return caret, caret
}

func caretOffset(runes []rune, row, col int) int {
	offset := 0
	for r := 0; r < row && offset < len(runes); offset++ {
		if runes[offset] == '\n' {
			r++
		}
	}
	for c := 0; c < col && offset < len(runes) && runes[offset] != '\n'; c++ {
		offset++
	}
	return offset
}

func rowColumn(runes []rune, offset int) (int, int) {
	row, col := 0, 0
	for i := 0; i < offset && i < len(runes); i++ {
		if runes[i] == '\n' {
			row++
			col = 0
		} else {
			col++
		}
	}
	return row, col
}

func clampOffset(offset, n int) int {
	return max(0, min(offset, n))
}

func (te *TextEditor) Entry() *SelectionEntry {
	return te.entry
}

func (te *TextEditor) Preview() *widget.RichText {
	return te.preview
}

func (te *TextEditor) GetContainer() fyne.CanvasObject {
	return te.container
}
