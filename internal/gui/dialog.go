package gui

import (
	"image-viewer/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// FileFilter restricts the file picker to a set of extensions; no
// extensions means every file is shown.
type FileFilter struct {
	Name       string
	Extensions []string
}

var (
	ImageFilter    = FileFilter{Name: "Images", Extensions: []string{".png", ".xpm", ".jpg", ".bmp"}}
	AllFilesFilter = FileFilter{Name: "All Files"}
)

// Dialog is the file-selection capability. callback receives a nil reader
// when the user cancels; otherwise the callee owns the reader and must close it.
type Dialog interface {
	SelectFile(filter FileFilter, initialDir string, callback func(reader fyne.URIReadCloser))
}

const (
	fileDialogWidth  = 760
	fileDialogHeight = 520
)

// FyneDialog implements Dialog with Fyne's built-in file picker.
type FyneDialog struct {
	window fyne.Window
	logger logger.Logger
}

func NewFyneDialog(window fyne.Window, log logger.Logger) *FyneDialog {
	return &FyneDialog{window: window, logger: log}
}

func (d *FyneDialog) SelectFile(filter FileFilter, initialDir string, callback func(reader fyne.URIReadCloser)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			d.logger.Error("FileDialog", err, nil)
			callback(nil)
			return
		}
		callback(reader)
	}, d.window)

	if len(filter.Extensions) > 0 {
		fd.SetFilter(storage.NewExtensionFileFilter(filter.Extensions))
	}

	if initialDir != "" {
		lister, err := storage.ListerForURI(storage.NewFileURI(initialDir))
		if err != nil {
			d.logger.Debug("FileDialog", "initial directory unavailable", map[string]interface{}{
				"dir":   initialDir,
				"error": err.Error(),
			})
		} else {
			fd.SetLocation(lister)
		}
	}

	fd.Resize(fyne.NewSize(fileDialogWidth, fileDialogHeight))
	fd.Show()
}
