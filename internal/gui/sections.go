package gui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// createNetworkSection shows the connection state and a manual reconnect.
func (g *MainGUI) createNetworkSection() fyne.CanvasObject {
	g.networkLabel = widget.NewLabel("Connecting...")
	g.reconnectButton = widget.NewButtonWithIcon("Reconnect", theme.ViewRefreshIcon(), func() {
		g.connect()
	})

	return widget.NewCard("Network", "", container.NewBorder(nil, nil, nil, g.reconnectButton, g.networkLabel))
}

// createAddressSection holds the address input with load and generate actions.
func (g *MainGUI) createAddressSection() fyne.CanvasObject {
	g.addressEntry = widget.NewEntry()
	g.addressEntry.SetText(g.manager.Config.DefaultAddress)
	g.addressEntry.SetPlaceHolder("0x...")

	loadButton := widget.NewButtonWithIcon("Load Address", theme.DownloadIcon(), func() {
		g.loadAddress()
	})
	newButton := widget.NewButtonWithIcon("New Wallet", theme.ContentAddIcon(), func() {
		g.generateDemoWallet()
	})

	form := container.NewBorder(nil, nil, widget.NewLabel("Address:"), loadButton, g.addressEntry)
	return widget.NewCard("Wallet Address", "", container.NewVBox(form, container.NewHBox(newButton)))
}

func (g *MainGUI) createWalletInfoSection() fyne.CanvasObject {
	g.addressLabel = widget.NewLabel("Address: Not loaded")
	g.balanceLabel = widget.NewLabel("Balance: 0 ETH")
	g.realBalanceLabel = widget.NewLabel("Real: -")

	return widget.NewCard("Wallet Info", "", container.NewVBox(g.addressLabel, g.balanceLabel, g.realBalanceLabel))
}

// createBalanceSection has the simulated balance controls.
func (g *MainGUI) createBalanceSection() fyne.CanvasObject {
	step := g.manager.Config.AdjustStep

	checkRealButton := widget.NewButton("💰 Check Real", func() {
		g.checkRealBalance()
	})
	addButton := widget.NewButton("➕ Add "+FormatStep(step), func() {
		g.adjustBalance(step)
	})
	removeButton := widget.NewButton("➖ Remove "+FormatStep(step), func() {
		g.adjustBalance(-step)
	})
	resetButton := widget.NewButton("🔄 Reset", func() {
		g.resetBalance()
	})

	return widget.NewCard("Balance Demo", "", container.NewHBox(checkRealButton, addButton, removeButton, resetButton))
}

// createConsoleSection is the scrolling event log.
func (g *MainGUI) createConsoleSection() fyne.CanvasObject {
	g.console = widget.NewLabel("")
	g.console.Wrapping = fyne.TextWrapWord
	g.console.TextStyle = fyne.TextStyle{Monospace: true}

	g.consoleScroll = container.NewVScroll(g.console)
	g.consoleScroll.SetMinSize(fyne.NewSize(0, 160))

	return widget.NewCard("Console", "", g.consoleScroll)
}

/* handlers */

func (g *MainGUI) loadAddress() {
	addr, err := g.manager.LoadAddress(g.addressEntry.Text)
	if err != nil {
		showValidationError(err, g.window)
		return
	}
	g.addressLabel.SetText("✅ " + addr)
	g.checkRealBalance()
}

func (g *MainGUI) generateDemoWallet() {
	addr, err := g.manager.GenerateDemoAddress()
	if err != nil {
		showError("failed to generate wallet", err, g.window)
		return
	}
	g.addressEntry.SetText(addr)
}

func (g *MainGUI) adjustBalance(delta float64) {
	if _, err := g.manager.Adjust(delta); err != nil {
		return
	}
	g.refreshBalance()
}

func (g *MainGUI) resetBalance() {
	g.manager.Reset()
	g.refreshBalance()
}

func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}
