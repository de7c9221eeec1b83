package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SendFields holds references to the send form fields
type SendFields struct {
	RecipientEntry *widget.Entry
	AmountEntry    *widget.Entry
}

// createSendSection creates the simulated send form
func (g *MainGUI) createSendSection() fyne.CanvasObject {
	recipientEntry := widget.NewEntry()
	recipientEntry.SetText(g.manager.Config.DefaultAddress)
	recipientEntry.SetPlaceHolder("Recipient address")

	amountEntry := widget.NewEntry()
	amountEntry.SetText(FormatAmountInput(g.manager.Config.SendAmount))
	amountEntry.SetPlaceHolder("Amount in ETH")

	g.sendFields = &SendFields{
		RecipientEntry: recipientEntry,
		AmountEntry:    amountEntry,
	}

	sendButton := widget.NewButtonWithIcon("Send Demo", theme.MailSendIcon(), func() {
		g.sendDemo(recipientEntry.Text, amountEntry.Text)
	})

	form := widget.NewForm(
		widget.NewFormItem("To", recipientEntry),
		widget.NewFormItem("ETH", amountEntry),
	)

	return widget.NewCard("Send Demo", "", container.NewVBox(form, container.NewHBox(sendButton)))
}

// sendDemo only moves the simulated balance; nothing is signed or broadcast.
// Parse failures are written to the console by the manager.
func (g *MainGUI) sendDemo(recipient, amountStr string) {
	if _, err := g.manager.Send(recipient, amountStr); err != nil {
		return
	}
	g.refreshBalance()
}
