package gui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/setavenger/ethwallet-demo/internal/address"
	"github.com/setavenger/ethwallet-demo/internal/logging"
)

// validationMessage maps address validation errors to the text shown in the dialog.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, address.ErrInvalidPrefix):
		return "Address must start with 0x"
	case errors.Is(err, address.ErrInvalidLength):
		return "Address must be 42 characters (0x + 40)"
	default:
		return err.Error()
	}
}

// showValidationError blocks with an error dialog for a rejected address
func showValidationError(err error, window fyne.Window) {
	logging.L.Debug().Err(err).Msg("address rejected")
	dialog.ShowError(errors.New(validationMessage(err)), window)
}

// showError logs err and shows it with some context
func showError(msg string, err error, window fyne.Window) {
	logging.L.Err(err).Msg(msg)
	dialog.ShowError(fmt.Errorf("%s: %v", msg, err), window)
}
