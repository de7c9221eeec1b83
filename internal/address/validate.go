// Package address checks user supplied Ethereum style addresses.
package address

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	Prefix = "0x"
	// Length is the total length including the prefix (0x + 40 hex chars).
	Length = 42
)

var (
	ErrInvalidPrefix = errors.New("address must start with 0x")
	ErrInvalidLength = errors.New("address must be 42 characters (0x + 40)")
)

// Validate only checks the prefix and the length. The body is not required to be hex.
func Validate(address string) error {
	if !strings.HasPrefix(address, Prefix) {
		return ErrInvalidPrefix
	}
	if len(address) != Length {
		return ErrInvalidLength
	}
	return nil
}

// IsHex reports whether the address is 0x followed by 40 hex characters.
func IsHex(address string) bool {
	return strings.HasPrefix(address, Prefix) && common.IsHexAddress(address)
}

// IsChecksummed reports whether the address matches its EIP-55 mixed case form.
// All lower or all upper case bodies carry no checksum and report false.
func IsChecksummed(address string) bool {
	if !IsHex(address) {
		return false
	}
	body := address[len(Prefix):]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return false
	}
	return common.HexToAddress(address).Hex() == address
}
