// Package controller is the interface between GUI and underlying data types handled outside
package controller

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/setavenger/ethwallet-demo/internal/address"
	"github.com/setavenger/ethwallet-demo/internal/configs"
	"github.com/setavenger/ethwallet-demo/internal/eventlog"
	"github.com/setavenger/ethwallet-demo/internal/ledger"
	"github.com/setavenger/ethwallet-demo/internal/logging"
	"github.com/setavenger/ethwallet-demo/internal/network"
)

var (
	ErrNoAddress    = errors.New("no address loaded")
	ErrNotConnected = errors.New("not connected")
)

// Manager owns all application state. GUI handlers call into it and never keep
// balance, address or connection state of their own. Safe for concurrent use.
type Manager struct {
	mu sync.Mutex

	Config *configs.Config
	Log    *eventlog.Log

	connector     *network.Connector
	handle        *network.Handle
	address       string
	ledger        *ledger.Ledger
	balanceCancel context.CancelFunc

	logger zerolog.Logger
}

type Option func(*Manager)

// WithConnector replaces the connector built from the config.
func WithConnector(c *network.Connector) Option {
	return func(m *Manager) { m.connector = c }
}

func WithEventLog(l *eventlog.Log) Option {
	return func(m *Manager) { m.Log = l }
}

func NewManager(cfg *configs.Config, opts ...Option) *Manager {
	if cfg == nil {
		cfg = configs.Default()
	}
	logger := logging.Component("controller")
	m := &Manager{
		Config: cfg,
		ledger: ledger.New(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.Log == nil {
		m.Log = eventlog.New(eventlog.WithLogger(logging.Component("console")))
	}
	if m.connector == nil {
		m.connector = network.NewConnector(
			cfg.Endpoints,
			network.WithAttemptTimeout(cfg.ConnectTimeout),
			network.WithExpectedChainID(cfg.ExpectedChainID),
			network.WithLogger(logging.Component("network")),
		)
	}
	return m
}

/* Network */

// Connect runs the endpoint fallback and replaces any previous handle.
// Failed attempts are written to the console with their cause.
func (m *Manager) Connect(ctx context.Context) (network.Result, error) {
	res, err := m.connector.Connect(ctx)
	for _, a := range res.Attempts {
		m.Log.Logf("⚠️ %s unavailable: %v", a.Endpoint, a.Err)
	}
	if err != nil {
		m.logger.Err(err).Msg("connection unavailable")
		if errors.Is(err, network.ErrExhaustedAllEndpoints) {
			m.Log.Log("❌ No endpoint available")
		}
		return res, err
	}

	m.mu.Lock()
	old := m.handle
	m.handle = res.Handle
	m.mu.Unlock()
	old.Close()

	m.Log.Log("✅ Connected!")
	return res, nil
}

func (m *Manager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handle != nil
}

// Endpoint returns the URL of the connected endpoint, or "".
func (m *Manager) Endpoint() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.handle == nil {
		return ""
	}
	return m.handle.Endpoint
}

/* Address */

// LoadAddress validates input and makes it the current address.
// Validation errors are returned for the caller to show; nothing is logged for them.
func (m *Manager) LoadAddress(input string) (string, error) {
	addr := strings.TrimSpace(input)
	if err := address.Validate(addr); err != nil {
		return "", err
	}

	m.mu.Lock()
	m.address = addr
	m.mu.Unlock()

	m.Log.Logf("✅ LOADED: %s", addr)
	if !address.IsHex(addr) {
		m.Log.Log("ℹ️ Address is not hex, real balance lookups will fail")
	}
	return addr, nil
}

// Address returns the loaded address, or "" when none is loaded.
func (m *Manager) Address() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.address
}

// GenerateDemoAddress creates a throwaway address. It does not load it.
func (m *Manager) GenerateDemoAddress() (string, error) {
	w, err := NewDemoWallet()
	if err != nil {
		m.logger.Err(err).Msg("failed to generate demo wallet")
		return "", err
	}
	m.Log.Logf("🆕 New: %s", w.Address)
	return w.Address, nil
}

/* Real balance */

// CheckRealBalance queries the connected endpoint for the loaded address.
// A newer call cancels one still in flight. Cancelled calls log nothing.
func (m *Manager) CheckRealBalance(ctx context.Context) (decimal.Decimal, error) {
	m.mu.Lock()
	addr, h := m.address, m.handle
	if addr == "" || h == nil {
		m.mu.Unlock()
		m.Log.Log("⚠️ Load address first")
		if addr == "" {
			return decimal.Zero, ErrNoAddress
		}
		return decimal.Zero, ErrNotConnected
	}
	if m.balanceCancel != nil {
		m.balanceCancel()
	}
	ctx, cancel := context.WithTimeout(ctx, m.Config.BalanceTimeout)
	m.balanceCancel = cancel
	m.mu.Unlock()
	defer cancel()

	bal, err := network.FetchBalance(ctx, h, addr)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return decimal.Zero, err
		}
		m.logger.Debug().Err(err).Str("address", addr).Str("endpoint", h.Endpoint).Msg("balance query failed")
		m.Log.Log("ℹ️ Real balance unavailable")
		return decimal.Zero, err
	}

	m.Log.Logf("🌐 REAL: %s ETH", bal.StringFixed(6))
	return bal, nil
}

/* Simulated ledger */

func (m *Manager) Balance() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ledger.Balance()
}

// Adjust changes the simulated balance by delta. Requires a loaded address.
func (m *Manager) Adjust(delta float64) (float64, error) {
	m.mu.Lock()
	if m.address == "" {
		m.mu.Unlock()
		m.Log.Log("⚠️ Load address first")
		return m.Balance(), ErrNoAddress
	}
	total := m.ledger.Adjust(delta)
	m.mu.Unlock()

	sign := ""
	if delta > 0 {
		sign = "+"
	}
	m.Log.Logf("💰 %s%.3f ETH | Total: %.4f", sign, delta, total)
	return total, nil
}

// Reset zeroes the simulated balance. It works without a loaded address.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.ledger.Reset()
	m.mu.Unlock()
	m.Log.Log("🔄 Reset to 0")
}

// Send subtracts the parsed amount from the simulated balance. Nothing is
// signed or broadcast and the recipient is not checked.
func (m *Manager) Send(to, amountInput string) (float64, error) {
	m.mu.Lock()
	if m.address == "" {
		m.mu.Unlock()
		m.Log.Log("⚠️ Load address first")
		return m.Balance(), ErrNoAddress
	}

	amount, err := ledger.ParseAmount(amountInput)
	if err != nil {
		balance := m.ledger.Balance()
		m.mu.Unlock()
		m.Log.Log("❌ Invalid amount")
		return balance, err
	}
	total := m.ledger.Send(amount)
	m.mu.Unlock()

	m.logger.Debug().Str("from", m.Address()).Str("to", to).Float64("amount", amount).Msg("simulated send")
	m.Log.Logf("📤 SENT %s ETH | New: %.4f ETH", formatAmount(amount), total)
	return total, nil
}

// Close cancels a pending balance query and releases the connection.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.balanceCancel != nil {
		m.balanceCancel()
	}
	h := m.handle
	m.handle = nil
	m.mu.Unlock()
	h.Close()
}

// formatAmount renders the shortest exact form, keeping ".0" on whole
// amounts ("1.0", "0.01").
func formatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
