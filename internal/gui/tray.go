package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// TrayManager handles system tray functionality
type TrayManager struct {
	app fyne.App
	gui *MainGUI
}

// NewTrayManager sets up the tray menu when the driver supports one.
// Closing the window still quits the app; the tray is only a shortcut.
func NewTrayManager(app fyne.App, gui *MainGUI) *TrayManager {
	tm := &TrayManager{
		app: app,
		gui: gui,
	}

	tm.setupTray()
	return tm
}

// setupTray initializes the system tray
func (tm *TrayManager) setupTray() {
	desk, ok := tm.app.(desktop.App)
	if !ok {
		return
	}
	// fyne appends its own Quit item
	desk.SetSystemTrayMenu(tm.menu())
}

func (tm *TrayManager) menu() *fyne.Menu {
	return fyne.NewMenu("Ethereum Wallet Demo",
		fyne.NewMenuItem("Show", func() {
			tm.gui.window.Show()
			tm.gui.window.RequestFocus()
		}),
		fyne.NewMenuItem("Reset Demo Balance", func() {
			tm.gui.resetBalance()
		}),
		fyne.NewMenuItem("Reconnect", func() {
			tm.gui.connect()
		}),
	)
}
