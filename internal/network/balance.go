package network

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/setavenger/ethwallet-demo/internal/address"
)

var ErrBalanceUnavailable = errors.New("balance unavailable")

// EtherDecimals is the fixed scale between wei and ether.
const EtherDecimals = 18

// WeiToEther converts a wei amount into ether without losing precision.
func WeiToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -EtherDecimals)
}

// FetchBalance reads the latest balance of addr in ether. Every failure is
// wrapped in ErrBalanceUnavailable; the cause is kept for logging only.
func FetchBalance(ctx context.Context, h *Handle, addr string) (decimal.Decimal, error) {
	if h == nil || h.client == nil {
		return decimal.Zero, fmt.Errorf("%w: not connected", ErrBalanceUnavailable)
	}
	if !address.IsHex(addr) {
		return decimal.Zero, fmt.Errorf("%w: malformed address %q", ErrBalanceUnavailable, addr)
	}

	wei, err := h.client.BalanceAt(ctx, common.HexToAddress(addr), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrBalanceUnavailable, err)
	}
	return WeiToEther(wei), nil
}
