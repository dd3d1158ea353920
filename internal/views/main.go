package views

import (
	"image/color"
	"io"
	"unicode"
	"unicode/utf8"

	"shapepad/internal/config"
	"shapepad/internal/controllers"
	"shapepad/internal/models"
	"shapepad/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Actions are the handlers behind menus, buttons and the canvas
type Actions interface {
	NewDocument()
	OpenDocument()
	SaveDocument()
	ExportDrawing()

	Cut()
	Copy()
	Paste()
	FindReplaceFirst()
	FindReplaceAll()
	WordCount()
	CharCount()

	ChangeFont()
	ChangeFontSize()
	ChangeFontStyle()
	ChangeFontColor()
	ChangeCase()

	TextEdited(text string)
	SelectShapeTool(tool models.ShapeTool)
	ShapeDrawn(shape models.Shape)
	ToggleDarkMode()
}

var _ controllers.View = (*MainView)(nil)

// MainView is the window content: the editor on the left, the canvas and its
// toolbar on the right, menus on top and the status bar below
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	split         *container.Split

	editor    *components.TextEditor
	canvas    *components.DrawingCanvas
	toolbar   *components.ShapeToolbar
	statusBar *components.StatusBar

	actions Actions
	cfg     config.Config
}

func NewMainView(window fyne.Window, cfg config.Config) *MainView {
	view := &MainView{
		window: window,
		cfg:    cfg,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.editor = components.NewTextEditor(mv.cfg.Editor.WordWrap)
	mv.canvas = components.NewDrawingCanvas(
		mv.cfg.Canvas.Width, mv.cfg.Canvas.Height,
		mv.cfg.Canvas.StrokeWidth, mv.cfg.Canvas.OvalSegments,
	)
	mv.toolbar = components.NewShapeToolbar()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	drawingArea := container.NewBorder(nil, mv.toolbar.GetContainer(), nil, nil, mv.canvas)

	mv.split = container.NewHSplit(mv.editor.GetContainer(), drawingArea)
	mv.split.SetOffset(mv.cfg.Window.SplitOffset)

	mv.mainContainer = container.NewBorder(nil, mv.statusBar.GetContainer(), nil, nil, mv.split)
	mv.window.SetContent(mv.mainContainer)
	mv.window.SetMainMenu(mv.buildMenu())
}

func (mv *MainView) buildMenu() *fyne.MainMenu {
	item := func(label string, action func(Actions)) *fyne.MenuItem {
		return fyne.NewMenuItem(label, func() {
			if mv.actions != nil {
				action(mv.actions)
			}
		})
	}

	file := fyne.NewMenu("File",
		item("New", Actions.NewDocument),
		item("Open", Actions.OpenDocument),
		item("Save", Actions.SaveDocument),
		fyne.NewMenuItemSeparator(),
		item("Export Drawing…", Actions.ExportDrawing),
	)
	edit := fyne.NewMenu("Edit",
		item("Cut", Actions.Cut),
		item("Copy", Actions.Copy),
		item("Paste", Actions.Paste),
		fyne.NewMenuItemSeparator(),
		item("Find & Replace First", Actions.FindReplaceFirst),
		item("Find & Replace All", Actions.FindReplaceAll),
		fyne.NewMenuItemSeparator(),
		item("Word Count", Actions.WordCount),
		item("Character Count", Actions.CharCount),
	)
	format := fyne.NewMenu("Format",
		item("Font", Actions.ChangeFont),
		item("Font Size", Actions.ChangeFontSize),
		item("Font Style", Actions.ChangeFontStyle),
		item("Font Colour", Actions.ChangeFontColor),
		item("Text Case", Actions.ChangeCase),
	)
	return fyne.NewMainMenu(file, edit, format)
}

func (mv *MainView) setupEventHandlers() {
	mv.editor.OnTextChanged = func(text string) {
		if mv.actions != nil {
			mv.actions.TextEdited(text)
		}
	}
	mv.canvas.OnShapeDrawn = func(s models.Shape) {
		if mv.actions != nil {
			mv.actions.ShapeDrawn(s)
		}
	}
	mv.toolbar.SetToolHandler(func(tool models.ShapeTool) {
		if mv.actions != nil {
			mv.actions.SelectShapeTool(tool)
		}
	})
	mv.toolbar.SetToggleHandler(func() {
		if mv.actions != nil {
			mv.actions.ToggleDarkMode()
		}
	})
}

// SetActions connects the controller
func (mv *MainView) SetActions(actions Actions) {
	mv.actions = actions
}

// Editor

func (mv *MainView) SetDocument(doc *models.Document) {
	mv.editor.SetDocument(doc)
}

func (mv *MainView) EditorSelection() (int, int) {
	return mv.editor.Selection()
}

func (mv *MainView) FontFamilies() []string {
	return append([]string(nil), components.FontFamilies...)
}

// Canvas

func (mv *MainView) SetShapes(shapes []models.Shape) {
	mv.canvas.SetShapes(shapes)
	mv.statusBar.SetShapeCount(len(shapes))
}

func (mv *MainView) SetShapeTool(tool models.ShapeTool) {
	mv.canvas.SetTool(tool)
	mv.toolbar.SetCurrentTool(tool)
}

func (mv *MainView) CanvasSize() (int, int) {
	size := mv.canvas.Size()
	if size.Width < 1 || size.Height < 1 {
		return int(mv.cfg.Canvas.Width), int(mv.cfg.Canvas.Height)
	}
	return int(size.Width), int(size.Height)
}

// Window

// ApplyPalette installs the palette as the application theme and repaints
func (mv *MainView) ApplyPalette(p models.Palette) {
	if app := fyne.CurrentApp(); app != nil {
		app.Settings().SetTheme(NewEditorTheme(p))
	}
	mv.canvas.SetPalette(p)
	mv.statusBar.SetThemeName(p.Name)
	mv.mainContainer.Refresh()
}

func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) SetWindowTitle(title string) {
	mv.window.SetTitle(title)
}

func (mv *MainView) SetClipboardContent(text string) {
	if cb := mv.window.Clipboard(); cb != nil {
		cb.SetContent(text)
	}
}

// Dialogs

// ShowError shows err in a modal dialog headed by title
func (mv *MainView) ShowError(title string, err error) {
	newErrorDialog(title, err, mv.window).Show()
}

func newErrorDialog(title string, err error, parent fyne.Window) dialog.Dialog {
	message := widget.NewLabel(errorMessage(err))
	content := container.NewBorder(nil, nil, widget.NewIcon(theme.ErrorIcon()), nil, message)
	return dialog.NewCustom(title, "OK", content, parent)
}

// errorMessage capitalises err's text for display
func errorMessage(err error) string {
	text := err.Error()
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}

func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// AskSaveDiscardCancel offers Yes, No and Cancel; closing the dialog counts as Cancel
func (mv *MainView) AskSaveDiscardCancel(title, message string, callback func(controllers.SaveChoice)) {
	d := dialog.NewCustomWithoutButtons(title, widget.NewLabel(message), mv.window)

	answered := false
	answer := func(choice controllers.SaveChoice) func() {
		return func() {
			answered = true
			d.Hide()
			callback(choice)
		}
	}
	yes := widget.NewButton("Yes", answer(controllers.SaveChoiceYes))
	yes.Importance = widget.HighImportance
	d.SetButtons([]fyne.CanvasObject{
		yes,
		widget.NewButton("No", answer(controllers.SaveChoiceNo)),
		widget.NewButton("Cancel", answer(controllers.SaveChoiceCancel)),
	})
	d.SetOnClosed(func() {
		if !answered {
			answered = true
			callback(controllers.SaveChoiceCancel)
		}
	})
	d.Show()
}

func (mv *MainView) PromptText(title, label string, callback func(string, bool)) {
	entry := widget.NewEntry()
	d := dialog.NewForm(title, "OK", "Cancel",
		[]*widget.FormItem{widget.NewFormItem(label, entry)},
		func(ok bool) { callback(entry.Text, ok) },
		mv.window,
	)
	d.Show()
	mv.window.Canvas().Focus(entry)
}

func (mv *MainView) PromptChoice(title, label string, options []string, selected string, callback func(string, bool)) {
	sel := widget.NewSelect(options, nil)
	if selected != "" {
		sel.SetSelected(selected)
	}
	dialog.ShowForm(title, "OK", "Cancel",
		[]*widget.FormItem{widget.NewFormItem(label, sel)},
		func(ok bool) { callback(sel.Selected, ok && sel.Selected != "") },
		mv.window,
	)
}

func (mv *MainView) PromptColor(title string, callback func(color.Color)) {
	picker := dialog.NewColorPicker(title, "Pick a text colour", callback, mv.window)
	picker.Advanced = true
	picker.Show()
}

func (mv *MainView) ShowOpenDialog(callback func(io.ReadCloser, string, error)) {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			callback(nil, "", err)
			return
		}
		callback(r, r.URI().Path(), nil)
	}, mv.window)
	d.Show()
}

// ShowSaveDialog closes the file the dialog creates and hands back its path
func (mv *MainView) ShowSaveDialog(suggested string, callback func(string, error)) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil || w == nil {
			callback("", err)
			return
		}
		path := w.URI().Path()
		if err := w.Close(); err != nil {
			callback("", err)
			return
		}
		callback(path, nil)
	}, mv.window)
	d.SetFileName(suggested)
	d.Show()
}

func (mv *MainView) ShowExportDialog(callback func(io.WriteCloser, error)) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil || w == nil {
			callback(nil, err)
			return
		}
		callback(w, nil)
	}, mv.window)
	d.SetFileName("drawing.png")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.Show()
}

// Accessors

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

func (mv *MainView) Editor() *components.TextEditor {
	return mv.editor
}

func (mv *MainView) Canvas() *components.DrawingCanvas {
	return mv.canvas
}

func (mv *MainView) Toolbar() *components.ShapeToolbar {
	return mv.toolbar
}

func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}

func (mv *MainView) Show() {
	mv.window.Show()
}
