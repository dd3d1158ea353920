package models

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseMode selects the case conversion applied by ConvertCase
type CaseMode string

const (
	CaseUpper CaseMode = "Uppercase"
	CaseLower CaseMode = "Lowercase"
)

// CaseModes lists the choices in menu order
var CaseModes = []CaseMode{CaseUpper, CaseLower}

// Document is the editor's text buffer: runes, styled runs covering every
// rune, and the current selection. There is no undo history. A Document is
// owned by the UI goroutine and is not safe for concurrent use.
type Document struct {
	text     []rune
	runs     []StyleRun
	sel      Range
	modified bool
}

// NewDocument creates a document holding text with default formatting
func NewDocument(text string) *Document {
	d := &Document{}
	d.SetText(text)
	d.modified = false
	return d
}

// SetText replaces the whole buffer and drops all formatting
func (d *Document) SetText(text string) {
	d.text = []rune(text)
	d.runs = nil
	if len(d.text) > 0 {
		d.runs = []StyleRun{{Len: len(d.text)}}
	}
	d.sel = Range{}
	d.modified = true
}

func (d *Document) Text() string {
	return string(d.text)
}

// Len returns the length in runes
func (d *Document) Len() int {
	return len(d.text)
}

// Runs returns a copy of the styled runs in document order
func (d *Document) Runs() []StyleRun {
	out := make([]StyleRun, len(d.runs))
	copy(out, d.runs)
	return out
}

// Modified reports whether the buffer changed since creation or the last MarkSaved
func (d *Document) Modified() bool {
	return d.modified
}

func (d *Document) MarkSaved() {
	d.modified = false
}

// Select sets the selection; offsets are clamped and may be given in either order
func (d *Document) Select(start, end int) {
	start, end = d.clamp(start), d.clamp(end)
	if end < start {
		start, end = end, start
	}
	d.sel = Range{Start: start, End: end}
}

// SetCaret collapses the selection to pos
func (d *Document) SetCaret(pos int) {
	pos = d.clamp(pos)
	d.sel = Range{Start: pos, End: pos}
}

// Caret is the insertion point, the end of the selection
func (d *Document) Caret() int {
	return d.sel.End
}

// Selection returns the selected range, false when nothing is selected
func (d *Document) Selection() (Range, bool) {
	if d.sel.IsEmpty() {
		return Range{}, false
	}
	return d.sel, true
}

func (d *Document) SelectedText() string {
	return d.Slice(d.sel)
}

// Slice returns the text of r, clamped to the buffer
func (d *Document) Slice(r Range) string {
	start, end := d.clamp(r.Start), d.clamp(r.End)
	if end <= start {
		return ""
	}
	return string(d.text[start:end])
}

// StyleAt returns the style of the rune at pos; past the end it is the last rune's style
func (d *Document) StyleAt(pos int) Style {
	if len(d.runs) == 0 {
		return Style{}
	}
	offset := 0
	for _, run := range d.runs {
		if pos < offset+run.Len {
			return run.Style
		}
		offset += run.Len
	}
	return d.runs[len(d.runs)-1].Style
}

// insertionStyle is what typed text at pos inherits: the rune before it, or
// the first rune when inserting at the start
func (d *Document) insertionStyle(pos int) Style {
	if pos > 0 {
		return d.StyleAt(pos - 1)
	}
	return d.StyleAt(0)
}

// ReplaceSelection replaces the selected text, or inserts at the caret when
// nothing is selected. The caret ends after the inserted text.
func (d *Document) ReplaceSelection(text string) {
	r := d.sel
	style := d.insertionStyle(r.Start)
	if !r.IsEmpty() {
		style = d.StyleAt(r.Start)
	}
	ins := []rune(text)
	d.splice(r.Start, r.End, ins, style)
	d.SetCaret(r.Start + len(ins))
}

// Reconcile adopts text produced by the editing widget. Only the span between
// the common prefix and suffix is treated as edited, so formatting outside it
// survives. It reports whether anything changed.
func (d *Document) Reconcile(text string) bool {
	next := []rune(text)
	prefix := 0
	for prefix < len(d.text) && prefix < len(next) && d.text[prefix] == next[prefix] {
		prefix++
	}
	if prefix == len(d.text) && prefix == len(next) {
		return false
	}
	suffix := 0
	for suffix < len(d.text)-prefix && suffix < len(next)-prefix &&
		d.text[len(d.text)-1-suffix] == next[len(next)-1-suffix] {
		suffix++
	}

	ins := next[prefix : len(next)-suffix]
	d.splice(prefix, len(d.text)-suffix, ins, d.insertionStyle(prefix))
	d.SetCaret(prefix + len(ins))
	return true
}

// ApplyStyle merges patch over every run intersecting r
func (d *Document) ApplyStyle(r Range, patch StylePatch) bool {
	r = Range{Start: d.clamp(r.Start), End: d.clamp(r.End)}
	if r.IsEmpty() {
		return false
	}

	runs := make([]StyleRun, 0, len(d.runs)+2)
	offset := 0
	for _, run := range d.runs {
		a, b := offset, offset+run.Len
		lo, hi := max(a, r.Start), min(b, r.End)
		if lo >= hi {
			runs = append(runs, run)
		} else {
			runs = append(runs,
				StyleRun{Len: lo - a, Style: run.Style},
				StyleRun{Len: hi - lo, Style: patch.apply(run.Style)},
				StyleRun{Len: b - hi, Style: run.Style},
			)
		}
		offset = b
	}
	d.runs = normalizeRuns(runs)
	d.modified = true
	return true
}

// ReplaceFirst replaces the first occurrence of find and selects the
// replacement. It reports false, leaving the buffer alone, when find is absent.
func (d *Document) ReplaceFirst(find, replacement string) (Range, bool) {
	if find == "" {
		return Range{}, false
	}
	text := string(d.text)
	idx := strings.Index(text, find)
	if idx < 0 {
		return Range{}, false
	}
	start := utf8.RuneCountInString(text[:idx])
	end := start + utf8.RuneCountInString(find)
	ins := []rune(replacement)
	d.splice(start, end, ins, d.StyleAt(start))

	replaced := Range{Start: start, End: start + len(ins)}
	d.sel = replaced
	return replaced, true
}

// ReplaceAll replaces every non-overlapping occurrence of find, scanning left
// to right, and returns the number of replacements. The resulting text is
// that of strings.ReplaceAll; each replacement keeps the style of the text it
// replaced.
func (d *Document) ReplaceAll(find, replacement string) int {
	if find == "" {
		return 0
	}
	text := string(d.text)
	findLen := utf8.RuneCountInString(find)

	var starts []int
	runeOffset, byteOffset := 0, 0
	for {
		idx := strings.Index(text[byteOffset:], find)
		if idx < 0 {
			break
		}
		runeOffset += utf8.RuneCountInString(text[byteOffset : byteOffset+idx])
		starts = append(starts, runeOffset)
		runeOffset += findLen
		byteOffset += idx + len(find)
	}
	if len(starts) == 0 {
		return 0
	}

	ins := []rune(replacement)
	for i := len(starts) - 1; i >= 0; i-- {
		start := starts[i]
		d.splice(start, start+findLen, ins, d.StyleAt(start))
	}
	d.SetCaret(len(d.text))
	return len(starts)
}

// ConvertCase rewrites the text of r in the given case and selects the
// result, which may differ in length (for example "ß" becomes "SS").
func (d *Document) ConvertCase(r Range, mode CaseMode) (Range, bool) {
	r = Range{Start: d.clamp(r.Start), End: d.clamp(r.End)}
	if r.IsEmpty() {
		return Range{}, false
	}

	var caser cases.Caser
	switch mode {
	case CaseUpper:
		caser = cases.Upper(language.Und)
	case CaseLower:
		caser = cases.Lower(language.Und)
	default:
		return Range{}, false
	}

	converted := []rune(caser.String(string(d.text[r.Start:r.End])))
	if len(converted) == r.Len() {
		copy(d.text[r.Start:r.End], converted)
		d.modified = true
	} else {
		d.splice(r.Start, r.End, converted, d.StyleAt(r.Start))
	}

	out := Range{Start: r.Start, End: r.Start + len(converted)}
	d.sel = out
	return out, true
}

// splice replaces text[start:end] with ins, styling the inserted runes with style
func (d *Document) splice(start, end int, ins []rune, style Style) {
	oldLen := len(d.text)

	text := make([]rune, 0, oldLen-(end-start)+len(ins))
	text = append(text, d.text[:start]...)
	text = append(text, ins...)
	text = append(text, d.text[end:]...)

	runs := make([]StyleRun, 0, len(d.runs)+2)
	runs = append(runs, sliceRuns(d.runs, 0, start)...)
	runs = append(runs, StyleRun{Len: len(ins), Style: style})
	runs = append(runs, sliceRuns(d.runs, end, oldLen)...)

	d.text = text
	d.runs = normalizeRuns(runs)
	d.modified = true
}

func (d *Document) clamp(pos int) int {
	return max(0, min(pos, len(d.text)))
}

// sliceRuns returns the runs covering [from, to), clipped to that span
func sliceRuns(runs []StyleRun, from, to int) []StyleRun {
	var out []StyleRun
	offset := 0
	for _, run := range runs {
		a, b := offset, offset+run.Len
		offset = b
		lo, hi := max(a, from), min(b, to)
		if lo < hi {
			out = append(out, StyleRun{Len: hi - lo, Style: run.Style})
		}
	}
	return out
}

// normalizeRuns drops empty runs and merges neighbours with equal styles
func normalizeRuns(runs []StyleRun) []StyleRun {
	out := runs[:0:0]
	for _, run := range runs {
		if run.Len <= 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == run.Style {
			out[n-1].Len += run.Len
			continue
		}
		out = append(out, run)
	}
	return out
}

// WordCount counts whitespace-separated words; blank text has none
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CharCount counts user-perceived characters, spaces included
func CharCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
