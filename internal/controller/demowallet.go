package controller

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
)

// BIP-44 path m/44'/60'/0'/0/0, the first Ethereum receive address.
const (
	purposeBIP44  = bip32.FirstHardenedChild + 44
	coinTypeEther = bip32.FirstHardenedChild + 60
	accountZero   = bip32.FirstHardenedChild + 0

	mnemonicEntropyBits = 128
)

// DemoWallet is a freshly generated address and the mnemonic it came from.
// The private key is never kept.
type DemoWallet struct {
	Mnemonic string
	Address  string
}

// NewDemoWallet generates a 12 word mnemonic and derives its first address.
func NewDemoWallet() (DemoWallet, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return DemoWallet{}, fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return DemoWallet{}, fmt.Errorf("generate mnemonic: %w", err)
	}
	return DemoWalletFromMnemonic(mnemonic)
}

// DemoWalletFromMnemonic derives the EIP-55 address at m/44'/60'/0'/0/0.
func DemoWalletFromMnemonic(mnemonic string) (DemoWallet, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return DemoWallet{}, fmt.Errorf("invalid mnemonic: %w", err)
	}

	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return DemoWallet{}, fmt.Errorf("create master key: %w", err)
	}
	for _, idx := range []uint32{purposeBIP44, coinTypeEther, accountZero, 0, 0} {
		key, err = key.NewChildKey(idx)
		if err != nil {
			return DemoWallet{}, fmt.Errorf("derive child %d: %w", idx, err)
		}
	}

	priv, err := crypto.ToECDSA(privateKeyBytes(key.Key))
	if err != nil {
		return DemoWallet{}, fmt.Errorf("load private key: %w", err)
	}

	return DemoWallet{
		Mnemonic: mnemonic,
		Address:  crypto.PubkeyToAddress(priv.PublicKey).Hex(),
	}, nil
}

// privateKeyBytes normalises a bip32 private key to exactly 32 bytes.
func privateKeyBytes(raw []byte) []byte {
	if len(raw) == 33 && raw[0] == 0 {
		return raw[1:]
	}
	if len(raw) < 32 {
		padded := make([]byte, 32)
		copy(padded[32-len(raw):], raw)
		return padded
	}
	return raw
}
