// Package ledger keeps the simulated, local only demo balance.
package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Ledger is a float accumulator with no relation to any on-chain state.
// It is not safe for concurrent use; controller.Manager serialises access.
type Ledger struct {
	balance float64
}

func New() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Balance() float64 {
	return l.balance
}

// Adjust adds delta to the balance and returns the new balance.
func (l *Ledger) Adjust(delta float64) float64 {
	l.balance += delta
	return l.balance
}

func (l *Ledger) Reset() {
	l.balance = 0
}

// Send subtracts amount from the balance. There is no sufficiency check and
// negative amounts are accepted, so the balance can go below zero.
func (l *Ledger) Send(amount float64) float64 {
	l.balance -= amount
	return l.balance
}

// ParseAmount parses the send form input. An empty input means zero.
func ParseAmount(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	amount, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}
	return amount, nil
}
