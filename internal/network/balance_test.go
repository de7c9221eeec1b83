package network

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoAddress = "0x742d35Cc6634C0532925a3b8D7c9fa368F067E6b"

func TestWeiToEther(t *testing.T) {
	oneEther, _ := new(big.Int).SetString("1000000000000000000", 10)
	tests := []struct {
		wei  *big.Int
		want string
	}{
		{nil, "0.000000"},
		{big.NewInt(0), "0.000000"},
		{oneEther, "1.000000"},
		{big.NewInt(1_500_000_000_000_000), "0.001500"},
		{big.NewInt(1), "0.000000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WeiToEther(tt.wei).StringFixed(6))
	}

	assert.Equal(t, "0.000000000000000001", WeiToEther(big.NewInt(1)).String())
}

func TestFetchBalance_FakeClient(t *testing.T) {
	h := &Handle{Endpoint: "e", client: &fakeClient{balance: big.NewInt(2_500_000_000_000_000)}}

	bal, err := FetchBalance(context.Background(), h, demoAddress)
	require.NoError(t, err)
	assert.Equal(t, "0.002500", bal.StringFixed(6))
}

func TestFetchBalance_Unavailable(t *testing.T) {
	ok := &Handle{client: &fakeClient{balance: big.NewInt(1)}}
	failing := &Handle{client: &fakeClient{balanceErr: errors.New("rate limited")}}

	tests := []struct {
		name string
		h    *Handle
		addr string
	}{
		{"nil handle", nil, demoAddress},
		{"handle without client", &Handle{}, demoAddress},
		{"non hex address", ok, "0x" + strings.Repeat("z", 40)},
		{"short address", ok, "0x1234"},
		{"endpoint error", failing, demoAddress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FetchBalance(context.Background(), tt.h, tt.addr)
			assert.ErrorIs(t, err, ErrBalanceUnavailable)
		})
	}
}

func TestFetchBalance_EthclientAgainstFakeNode(t *testing.T) {
	srv := newFakeNode(t, fakeNode{
		chainID: "0xaa36a7",
		balances: map[string]string{
			strings.ToLower(demoAddress): "0xde0b6b3a7640000", // 1 ether
		},
	})

	res, err := NewConnector([]string{srv.URL}).Connect(context.Background())
	require.NoError(t, err)
	defer res.Handle.Close()

	bal, err := FetchBalance(context.Background(), res.Handle, demoAddress)
	require.NoError(t, err)
	assert.Equal(t, "1.000000", bal.StringFixed(6))

	other, err := FetchBalance(context.Background(), res.Handle, "0x"+strings.Repeat("1", 40))
	require.NoError(t, err)
	assert.True(t, other.IsZero())
}
