package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

var (
	ShortcutOpen      = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}
	ShortcutZoomIn    = &desktop.CustomShortcut{KeyName: fyne.KeyEqual, Modifier: fyne.KeyModifierControl}
	ShortcutZoomOut   = &desktop.CustomShortcut{KeyName: fyne.KeyMinus, Modifier: fyne.KeyModifierControl}
	ShortcutResetZoom = &desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}
)

func (v *View) setupMenus() {
	openItem := fyne.NewMenuItem("Open", v.controller.OpenFile)
	openItem.Shortcut = ShortcutOpen

	quitItem := fyne.NewMenuItem("Quit", v.Close)
	quitItem.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		openItem,
		fyne.NewMenuItem("Open Any File...", v.controller.OpenAnyFile),
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	zoomInItem := fyne.NewMenuItem("Zoom In", v.controller.ZoomIn)
	zoomInItem.Shortcut = ShortcutZoomIn

	zoomOutItem := fyne.NewMenuItem("Zoom Out", v.controller.ZoomOut)
	zoomOutItem.Shortcut = ShortcutZoomOut

	resetItem := fyne.NewMenuItem("Reset Zoom", v.controller.ResetZoom)
	resetItem.Shortcut = ShortcutResetZoom

	viewMenu := fyne.NewMenu("View", zoomInItem, zoomOutItem, resetItem)

	v.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu))
}

// setupShortcuts binds the accelerators on the window canvas as well, so
// they work regardless of how the driver presents the menu.
func (v *View) setupShortcuts() {
	c := v.window.Canvas()

	c.AddShortcut(ShortcutOpen, func(fyne.Shortcut) { v.controller.OpenFile() })
	c.AddShortcut(ShortcutZoomIn, func(fyne.Shortcut) { v.controller.ZoomIn() })
	c.AddShortcut(ShortcutZoomOut, func(fyne.Shortcut) { v.controller.ZoomOut() })
	c.AddShortcut(ShortcutResetZoom, func(fyne.Shortcut) { v.controller.ResetZoom() })

	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			v.logger.Debug("View", "escape pressed, closing window", nil)
			v.Close()
		}
	})
}
