package controllers

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"shapepad/internal/logger"
	"shapepad/internal/models"
	"shapepad/internal/services"
)

const fileOperationTimeout = 30 * time.Second

// MainController handles every menu, button and canvas event. All methods run
// on the UI goroutine and complete before the next event is dispatched.
type MainController struct {
	// Models
	document  *models.Document
	clipboard *models.Clipboard
	shapes    *models.ShapeSequence
	theme     *models.ThemeState
	tool      models.ShapeTool

	// Services
	textFiles *services.TextFileService
	drawing   *services.DrawingService

	logger   logger.Logger
	view     View
	title    string
	filePath string
}

// NewMainController creates a controller with an empty document and the Clear tool selected
func NewMainController(
	textFiles *services.TextFileService,
	drawing *services.DrawingService,
	theme *models.ThemeState,
	log logger.Logger,
	title string,
) *MainController {
	return &MainController{
		document:  models.NewDocument(""),
		clipboard: models.NewClipboard(),
		shapes:    models.NewShapeSequence(),
		theme:     theme,
		tool:      models.ToolClear,
		textFiles: textFiles,
		drawing:   drawing,
		logger:    log,
		title:     title,
	}
}

// SetMainView associates the view and pushes the initial state into it
func (mc *MainController) SetMainView(view View) {
	mc.view = view
	view.ApplyPalette(mc.theme.Palette())
	view.SetDocument(mc.document)
	view.SetShapeTool(mc.tool)
	view.SetShapes(mc.shapes.All())
	view.SetWindowTitle(mc.windowTitle())
}

func (mc *MainController) Document() *models.Document { return mc.document }
func (mc *MainController) Clipboard() *models.Clipboard { return mc.clipboard }
func (mc *MainController) Shapes() *models.ShapeSequence { return mc.shapes }
func (mc *MainController) Tool() models.ShapeTool { return mc.tool }

// File menu

// NewDocument asks whether to save first, then clears the buffer
func (mc *MainController) NewDocument() {
	mc.view.AskSaveDiscardCancel(
		"Save File",
		"Do you want to save the current file before opening a new one?",
		func(choice SaveChoice) {
			switch choice {
			case SaveChoiceYes:
				mc.saveDocument(mc.clearDocument)
			case SaveChoiceNo:
				mc.clearDocument()
			}
		},
	)
}

func (mc *MainController) clearDocument() {
	mc.document.SetText("")
	mc.document.MarkSaved()
	mc.filePath = ""
	mc.view.SetDocument(mc.document)
	mc.view.SetWindowTitle(mc.windowTitle())
	mc.view.UpdateStatus("New document")
	mc.logger.Info("MainController", "document cleared", nil)
}

// OpenDocument reads a file chosen by the user into the buffer
func (mc *MainController) OpenDocument() {
	mc.view.ShowOpenDialog(func(r io.ReadCloser, path string, err error) {
		if err != nil {
			mc.handleError("File Open Error", err)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()

		ctx, cancel := context.WithTimeout(context.Background(), fileOperationTimeout)
		defer cancel()

		text, err := mc.textFiles.ReadText(ctx, r)
		if err != nil {
			mc.handleError("File Open Error", fmt.Errorf("error reading file: %w", err))
			return
		}
		mc.loaded(path, text)
	})
}

// OpenPath loads a file named on the command line
func (mc *MainController) OpenPath(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), fileOperationTimeout)
	defer cancel()

	text, err := mc.textFiles.LoadFile(ctx, path)
	if err != nil {
		mc.handleError("File Open Error", err)
		return
	}
	mc.loaded(path, text)
}

func (mc *MainController) loaded(path, text string) {
	mc.document.SetText(text)
	mc.document.MarkSaved()
	mc.filePath = path
	mc.view.SetDocument(mc.document)
	mc.view.SetWindowTitle(mc.windowTitle())
	mc.view.UpdateStatus(fmt.Sprintf("Opened %s", filepath.Base(path)))

	mc.logger.Info("MainController", "document opened", map[string]interface{}{
		"path":  path,
		"runes": mc.document.Len(),
	})
}

// SaveDocument writes the buffer to a file chosen by the user
func (mc *MainController) SaveDocument() {
	mc.saveDocument(nil)
}

// saveDocument runs then after a successful save only
func (mc *MainController) saveDocument(then func()) {
	suggested := "Untitled.txt"
	if mc.filePath != "" {
		suggested = filepath.Base(mc.filePath)
	}

	mc.view.ShowSaveDialog(suggested, func(path string, err error) {
		if err != nil {
			mc.handleError("File Save Error", err)
			return
		}
		if path == "" {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), fileOperationTimeout)
		defer cancel()

		final, err := mc.textFiles.SaveFile(ctx, path, mc.document.Text())
		if err != nil {
			mc.handleError("File Save Error", fmt.Errorf("error saving file: %w", err))
			return
		}

		mc.document.MarkSaved()
		mc.filePath = final
		mc.view.SetWindowTitle(mc.windowTitle())
		mc.view.UpdateStatus(fmt.Sprintf("Saved %s", filepath.Base(final)))
		mc.view.ShowInfo("Save Successful", "File saved successfully!")

		if then != nil {
			then()
		}
	})
}

// ExportDrawing writes the canvas shapes to a PNG chosen by the user
func (mc *MainController) ExportDrawing() {
	mc.view.ShowExportDialog(func(w io.WriteCloser, err error) {
		if err != nil {
			mc.handleError("Export Error", err)
			return
		}
		if w == nil {
			return
		}
		defer w.Close()

		ctx, cancel := context.WithTimeout(context.Background(), fileOperationTimeout)
		defer cancel()

		width, height := mc.view.CanvasSize()
		if err := mc.drawing.ExportPNG(ctx, w, mc.shapes.All(), width, height, mc.theme.Palette()); err != nil {
			mc.handleError("Export Error", err)
			return
		}
		mc.view.UpdateStatus("Drawing exported")
	})
}

// Edit menu

// Cut moves the selection to the clipboard
func (mc *MainController) Cut() {
	mc.syncSelection()
	text := mc.document.SelectedText()
	if text == "" {
		mc.handleError("Error", ErrNoSelection)
		return
	}

	mc.setClipboard(text)
	mc.document.ReplaceSelection("")
	mc.documentChanged()
}

// Copy puts the selection on the clipboard
func (mc *MainController) Copy() {
	mc.syncSelection()
	text := mc.document.SelectedText()
	if text == "" {
		mc.handleError("Error", ErrNoSelection)
		return
	}
	mc.setClipboard(text)
}

// Paste replaces the selection, or inserts at the caret, with the clipboard
func (mc *MainController) Paste() {
	if mc.clipboard.Empty() {
		mc.handleError("Error", ErrEmptyClipboard)
		return
	}

	mc.syncSelection()
	mc.document.ReplaceSelection(mc.clipboard.Get())
	mc.documentChanged()
}

func (mc *MainController) setClipboard(text string) {
	mc.clipboard.Set(text)
	mc.view.SetClipboardContent(text)
	mc.view.UpdateStatus(fmt.Sprintf("%d characters on clipboard", models.CharCount(text)))
}

// FindReplaceFirst replaces the first occurrence and selects the replacement
func (mc *MainController) FindReplaceFirst() {
	mc.view.PromptText("Find & Replace First", "Enter text to find:", func(find string, ok bool) {
		if !ok || find == "" {
			mc.handleError("Error", ErrEmptyFind)
			return
		}

		mc.view.PromptText("Find & Replace First", "Enter text to replace with:", func(replacement string, ok bool) {
			if !ok {
				mc.handleError("Error", ErrNoReplacement)
				return
			}

			if _, found := mc.document.ReplaceFirst(find, replacement); !found {
				mc.view.ShowInfo("Result", fmt.Sprintf("%q not found.", find))
				return
			}
			mc.documentChanged()
		})
	})
}

// FindReplaceAll replaces every occurrence
func (mc *MainController) FindReplaceAll() {
	mc.view.PromptText("Find & Replace All", "Find:", func(find string, ok bool) {
		if !ok {
			return
		}

		mc.view.PromptText("Find & Replace All", "Replace with:", func(replacement string, ok bool) {
			if !ok {
				return
			}
			if find == "" {
				mc.handleError("Error", ErrEmptyFind)
				return
			}

			n := mc.document.ReplaceAll(find, replacement)
			if n == 0 {
				mc.view.ShowInfo("Info", "Text not found.")
				return
			}
			mc.documentChanged()
			mc.view.UpdateStatus(fmt.Sprintf("Replaced %d occurrence(s)", n))
		})
	})
}

// WordCount reports the number of words in the selection
func (mc *MainController) WordCount() {
	mc.syncSelection()
	if _, ok := mc.document.Selection(); !ok {
		mc.handleError("Info", ErrNoSelection)
		return
	}
	n := models.WordCount(mc.document.SelectedText())
	mc.view.ShowInfo("Word Count", fmt.Sprintf("No. of Words: %d", n))
}

// CharCount reports the number of characters in the selection
func (mc *MainController) CharCount() {
	mc.syncSelection()
	if _, ok := mc.document.Selection(); !ok {
		mc.handleError("Info", ErrNoSelection)
		return
	}
	n := models.CharCount(mc.document.SelectedText())
	mc.view.ShowInfo("Character Count", fmt.Sprintf("No. of Characters: %d", n))
}

// Format menu

// ChangeFont sets the font family of the selection
func (mc *MainController) ChangeFont() {
	r := mc.captureRange()
	families := mc.view.FontFamilies()
	current := mc.document.StyleAt(r.Start).Family
	if current == "" && len(families) > 0 {
		current = families[0]
	}

	mc.view.PromptChoice("Font Name", "Choose Font:", families, current, func(family string, ok bool) {
		if ok {
			mc.applyStyle(r, models.FamilyPatch(family))
		}
	})
}

// ChangeFontSize sets the point size of the selection
func (mc *MainController) ChangeFontSize() {
	r := mc.captureRange()
	mc.view.PromptText("Font Size", "Enter Font Size:", func(input string, ok bool) {
		if !ok {
			return
		}
		size, err := ParseFontSize(input)
		if err != nil {
			mc.handleError("Error", err)
			return
		}
		mc.applyStyle(r, models.SizePatch(size))
	})
}

// ParseFontSize accepts a positive integer point size
func ParseFontSize(input string) (float32, error) {
	size, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFontSize, input)
	}
	if size <= 0 {
		return 0, ErrNonPositiveFontSize
	}
	return float32(size), nil
}

// ChangeFontStyle sets Plain, Bold or Italic on the selection
func (mc *MainController) ChangeFontStyle() {
	r := mc.captureRange()
	options := make([]string, len(models.FontStyles))
	for i, fs := range models.FontStyles {
		options[i] = string(fs)
	}

	mc.view.PromptChoice("Font Style", "Choose Font Style:", options, options[0], func(choice string, ok bool) {
		if ok {
			mc.applyStyle(r, models.FontStylePatch(models.FontStyle(choice)))
		}
	})
}

// ChangeFontColor sets the foreground colour of the selection
func (mc *MainController) ChangeFontColor() {
	r := mc.captureRange()
	mc.view.PromptColor("Choose Font Colour", func(c color.Color) {
		if c != nil {
			mc.applyStyle(r, models.ColorPatch(c))
		}
	})
}

// ChangeCase converts the selection to upper or lower case
func (mc *MainController) ChangeCase() {
	mc.syncSelection()
	r, ok := mc.document.Selection()
	if !ok {
		mc.handleError("Info", ErrNoSelection)
		return
	}

	options := make([]string, len(models.CaseModes))
	for i, m := range models.CaseModes {
		options[i] = string(m)
	}

	mc.view.PromptChoice("Change Text Case", "Choose case transformation:", options, options[0], func(choice string, ok bool) {
		if !ok {
			return
		}
		if _, converted := mc.document.ConvertCase(r, models.CaseMode(choice)); converted {
			mc.documentChanged()
		}
	})
}

// captureRange records the selection before a dialog takes focus from the editor
func (mc *MainController) captureRange() models.Range {
	mc.syncSelection()
	r, _ := mc.document.Selection()
	return r
}

func (mc *MainController) applyStyle(r models.Range, patch models.StylePatch) {
	if !mc.document.ApplyStyle(r, patch) {
		mc.view.UpdateStatus("No text selected")
		return
	}
	mc.documentChanged()
}

// TextEdited adopts text typed into the editing widget
func (mc *MainController) TextEdited(text string) {
	if mc.document.Reconcile(text) {
		mc.documentChanged()
	}
}

func (mc *MainController) syncSelection() {
	start, end := mc.view.EditorSelection()
	mc.document.Select(start, end)
}

func (mc *MainController) documentChanged() {
	mc.view.SetDocument(mc.document)
	mc.view.SetWindowTitle(mc.windowTitle())
}

// Canvas

// SelectShapeTool activates a palette button; Clear also empties the canvas
func (mc *MainController) SelectShapeTool(tool models.ShapeTool) {
	mc.tool = tool
	mc.view.SetShapeTool(tool)

	if tool == models.ToolClear {
		mc.shapes.Clear()
		mc.view.SetShapes(nil)
		mc.view.UpdateStatus("Canvas cleared")
	} else {
		mc.view.UpdateStatus(fmt.Sprintf("Tool: %s", tool))
	}

	mc.logger.Debug("MainController", "shape tool selected", map[string]interface{}{
		"tool": string(tool),
	})
}

// ShapeDrawn appends a shape completed on the canvas
func (mc *MainController) ShapeDrawn(shape models.Shape) {
	if _, ok := mc.tool.Kind(); !ok {
		return
	}
	mc.shapes.Append(shape)
	mc.view.SetShapes(mc.shapes.All())

	mc.logger.Debug("MainController", "shape drawn", map[string]interface{}{
		"kind":  shape.Kind().String(),
		"count": mc.shapes.Len(),
	})
}

// ToggleDarkMode flips the theme flag and repaints every widget
func (mc *MainController) ToggleDarkMode() {
	palette := mc.theme.Toggle()
	mc.view.ApplyPalette(palette)
	mc.view.UpdateStatus(fmt.Sprintf("%s mode", palette.Name))
}

func (mc *MainController) windowTitle() string {
	if mc.filePath == "" {
		return mc.title
	}
	name := filepath.Base(mc.filePath)
	if mc.document.Modified() {
		name += " *"
	}
	return fmt.Sprintf("%s - %s", name, mc.title)
}

// handleError logs err and reports it in a modal dialog; the editor stays usable
func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{
		"title": title,
	})
	mc.view.ShowError(title, err)
}

// Shutdown is called by the shutdown manager after the event loop has stopped
func (mc *MainController) Shutdown() {
	mc.logger.Info("MainController", "shutdown", map[string]interface{}{
		"unsaved_changes": mc.document.Modified(),
		"shapes":          mc.shapes.Len(),
	})
}
