package gui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/setavenger/ethwallet-demo/internal/controller"
	"github.com/setavenger/ethwallet-demo/internal/eventlog"
	"github.com/setavenger/ethwallet-demo/internal/logging"
)

// MainGUI represents the main GUI application
type MainGUI struct {
	app     fyne.App
	window  fyne.Window
	manager *controller.Manager
	content *fyne.Container

	// ctx is cancelled when the window closes, aborting pending network calls.
	ctx    context.Context
	cancel context.CancelFunc

	networkLabel     *widget.Label
	reconnectButton  *widget.Button
	addressEntry     *widget.Entry
	addressLabel     *widget.Label
	balanceLabel     *widget.Label
	realBalanceLabel *widget.Label
	sendFields       *SendFields
	console          *widget.Label
	consoleScroll    *container.Scroll

	// mu guards the console text and the connecting flag.
	mu         sync.Mutex
	connecting bool
}

// NewMainGUI creates a new main GUI instance
func NewMainGUI(app fyne.App, window fyne.Window, manager *controller.Manager) *MainGUI {
	ctx, cancel := context.WithCancel(context.Background())
	g := &MainGUI{
		app:     app,
		window:  window,
		manager: manager,
		ctx:     ctx,
		cancel:  cancel,
	}
	g.createContent()
	manager.Log.Subscribe(g.appendConsole)
	return g
}

// GetContent returns the main content container
func (g *MainGUI) GetContent() *fyne.Container {
	return g.content
}

// Cleanup cancels pending calls and closes the connection.
func (g *MainGUI) Cleanup() {
	g.cancel()
	g.manager.Close()
}

// createContent creates the main GUI content
func (g *MainGUI) createContent() {
	sections := container.NewVBox(
		g.createNetworkSection(),
		g.createAddressSection(),
		g.createWalletInfoSection(),
		g.createBalanceSection(),
		g.createSendSection(),
	)
	g.content = container.NewBorder(sections, nil, nil, nil, g.createConsoleSection())
}

// Start kicks off the initial connection without blocking the UI.
func (g *MainGUI) Start() {
	g.connect()
}

// connect runs the endpoint fallback in the background. The network label
// shows a pending state until it finishes.
// A call while one is still running does nothing.
func (g *MainGUI) connect() {
	g.mu.Lock()
	if g.connecting {
		g.mu.Unlock()
		return
	}
	g.connecting = true
	g.mu.Unlock()

	g.networkLabel.SetText("Connecting...")
	g.reconnectButton.Disable()

	go func() {
		defer func() {
			g.mu.Lock()
			g.connecting = false
			g.mu.Unlock()
			g.reconnectButton.Enable()
		}()

		res, err := g.manager.Connect(g.ctx)
		if err != nil {
			if g.ctx.Err() != nil {
				return
			}
			logging.L.Warn().Err(err).Int("attempts", len(res.Attempts)).Msg("no endpoint available")
			g.networkLabel.SetText("❌ Not connected")
			return
		}
		g.networkLabel.SetText(fmt.Sprintf("✅ Connected: %s", g.manager.Config.NetworkName))
	}()
}

// checkRealBalance fetches the on-chain balance in the background. A second
// click while one is pending supersedes it.
func (g *MainGUI) checkRealBalance() {
	g.realBalanceLabel.SetText("Real: checking...")

	go func() {
		bal, err := g.manager.CheckRealBalance(g.ctx)
		if err != nil {
			if g.ctx.Err() != nil || isCancelled(err) {
				return
			}
			if errors.Is(err, controller.ErrNoAddress) || errors.Is(err, controller.ErrNotConnected) {
				g.realBalanceLabel.SetText("Real: -")
				return
			}
			g.realBalanceLabel.SetText("Real: unavailable")
			return
		}
		g.realBalanceLabel.SetText("Real: " + FormatEtherDecimal(bal))
	}()
}

// refreshBalance redraws the simulated balance label.
func (g *MainGUI) refreshBalance() {
	g.balanceLabel.SetText(FormatDemoBalance(g.manager.Balance()))
}

// appendConsole is called from the event log's subscribers, which may run on
// any goroutine.
func (g *MainGUI) appendConsole(e eventlog.Entry) {
	g.mu.Lock()
	g.console.SetText(g.console.Text + e.String() + "\n")
	g.mu.Unlock()
	g.consoleScroll.ScrollToBottom()
}
