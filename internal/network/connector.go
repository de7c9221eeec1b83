// Package network connects to a public JSON-RPC endpoint and reads balances from it.
package network

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

var ErrExhaustedAllEndpoints = errors.New("no endpoint responded")

// Client is the subset of *ethclient.Client the wallet needs.
type Client interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	Close()
}

// Dialer opens a client for an endpoint URL. Dialing an HTTP endpoint does not
// touch the network, the liveness check does.
type Dialer func(ctx context.Context, endpoint string) (Client, error)

// DialEth dials with go-ethereum's ethclient.
func DialEth(ctx context.Context, endpoint string) (Client, error) {
	c, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Handle is a live client bound to the endpoint that answered first.
type Handle struct {
	Endpoint string
	ChainID  *big.Int
	client   Client
}

func (h *Handle) Close() {
	if h != nil && h.client != nil {
		h.client.Close()
	}
}

// Attempt records a failed endpoint and why it failed.
type Attempt struct {
	Endpoint string
	Err      error
}

// Result is either Connected (Handle set) or exhausted (Handle nil).
type Result struct {
	Handle   *Handle
	Attempts []Attempt
}

func (r Result) Connected() bool {
	return r.Handle != nil
}

type Connector struct {
	endpoints       []string
	dial            Dialer
	timeout         time.Duration
	expectedChainID uint64
	logger          zerolog.Logger
}

type ConnectorOption func(*Connector)

func WithDialer(d Dialer) ConnectorOption {
	return func(c *Connector) { c.dial = d }
}

// WithAttemptTimeout bounds each endpoint's dial plus liveness check.
func WithAttemptTimeout(d time.Duration) ConnectorOption {
	return func(c *Connector) { c.timeout = d }
}

// WithExpectedChainID rejects endpoints serving another chain. Zero disables the check.
func WithExpectedChainID(id uint64) ConnectorOption {
	return func(c *Connector) { c.expectedChainID = id }
}

func WithLogger(l zerolog.Logger) ConnectorOption {
	return func(c *Connector) { c.logger = l }
}

func NewConnector(endpoints []string, opts ...ConnectorOption) *Connector {
	c := &Connector{
		endpoints: append([]string(nil), endpoints...),
		dial:      DialEth,
		timeout:   10 * time.Second,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Connector) Endpoints() []string {
	return append([]string(nil), c.endpoints...)
}

// Connect tries the endpoints in order and returns the first that passes the
// liveness check. Clients of failed endpoints are closed before moving on.
// There is no retry; the caller decides whether to call Connect again.
func (c *Connector) Connect(ctx context.Context) (Result, error) {
	var res Result
	for _, endpoint := range c.endpoints {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		h, err := c.try(ctx, endpoint)
		if err != nil {
			c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("endpoint unavailable")
			res.Attempts = append(res.Attempts, Attempt{Endpoint: endpoint, Err: err})
			continue
		}

		c.logger.Info().
			Str("endpoint", endpoint).
			Str("chain_id", h.ChainID.String()).
			Int("failed_attempts", len(res.Attempts)).
			Msg("connected")
		res.Handle = h
		return res, nil
	}

	return res, fmt.Errorf("%w: tried %d endpoints", ErrExhaustedAllEndpoints, len(c.endpoints))
}

func (c *Connector) try(ctx context.Context, endpoint string) (*Handle, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := c.dial(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	id, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("liveness check: %w", err)
	}

	if c.expectedChainID != 0 && (!id.IsUint64() || id.Uint64() != c.expectedChainID) {
		client.Close()
		return nil, fmt.Errorf("chain id %s, expected %d", id, c.expectedChainID)
	}

	return &Handle{Endpoint: endpoint, ChainID: id, client: client}, nil
}
