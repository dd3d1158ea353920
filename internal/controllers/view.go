package controllers

import (
	"image/color"
	"io"

	"shapepad/internal/models"
)

// SaveChoice is the answer to the save-before-new prompt
type SaveChoice int

const (
	SaveChoiceCancel SaveChoice = iota
	SaveChoiceYes
	SaveChoiceNo
)

// View is what the controller needs from the window. Dialog methods are
// asynchronous: callbacks run on the UI goroutine once the user answers.
type View interface {
	SetDocument(doc *models.Document)
	// EditorSelection returns the rune offsets of the editing widget's selection
	EditorSelection() (start, end int)
	FontFamilies() []string

	SetShapes(shapes []models.Shape)
	SetShapeTool(tool models.ShapeTool)
	CanvasSize() (width, height int)

	ApplyPalette(palette models.Palette)
	UpdateStatus(status string)
	SetWindowTitle(title string)
	SetClipboardContent(text string)

	ShowError(title string, err error)
	ShowInfo(title, message string)
	AskSaveDiscardCancel(title, message string, callback func(SaveChoice))
	PromptText(title, label string, callback func(text string, ok bool))
	PromptChoice(title, label string, options []string, selected string, callback func(choice string, ok bool))
	PromptColor(title string, callback func(c color.Color))
	// ShowOpenDialog yields nil reader and error when the user cancels
	ShowOpenDialog(callback func(r io.ReadCloser, path string, err error))
	// ShowSaveDialog yields an empty path when the user cancels
	ShowSaveDialog(suggested string, callback func(path string, err error))
	ShowExportDialog(callback func(w io.WriteCloser, err error))
}
