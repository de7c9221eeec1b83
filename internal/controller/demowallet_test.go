package controller

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
)

func TestDemoWalletFromMnemonic_KnownVector(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	w, err := DemoWalletFromMnemonic(mnemonic)
	require.NoError(t, err)
	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", w.Address)
	assert.Equal(t, mnemonic, w.Mnemonic)
}

func TestDemoWalletFromMnemonic_Invalid(t *testing.T) {
	_, err := DemoWalletFromMnemonic("not a real mnemonic")
	assert.ErrorContains(t, err, "invalid mnemonic")
}

func TestNewDemoWallet(t *testing.T) {
	a, err := NewDemoWallet()
	require.NoError(t, err)
	b, err := NewDemoWallet()
	require.NoError(t, err)

	assert.True(t, bip39.IsMnemonicValid(a.Mnemonic))
	assert.Len(t, strings.Fields(a.Mnemonic), 12)
	assert.Len(t, a.Address, 42)
	assert.True(t, strings.HasPrefix(a.Address, "0x"))
	assert.NotEqual(t, a.Address, b.Address)
}

func TestPrivateKeyBytes(t *testing.T) {
	key := make([]byte, 32)
	key[31] = 7

	assert.Equal(t, key, privateKeyBytes(key))
	assert.Equal(t, key, privateKeyBytes(append([]byte{0}, key...)))
	assert.Equal(t, key, privateKeyBytes([]byte{7}))
}
