package persist

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Address represents a wallet or contract address on the ledger
type Address string

func (a Address) String() string {
	return normalizeAddress(strings.ToLower(string(a)))
}

// Address returns the ethereum address byte representation of the address
func (a Address) Address() common.Address {
	return common.HexToAddress(a.String())
}

// Equal compares two addresses case-insensitively. Checksummed and
// lowercased forms of the same address are equal.
func (a Address) Equal(other Address) bool {
	return strings.EqualFold(string(a), string(other))
}

// IsZero returns true for empty and all-zero addresses
func (a Address) IsZero() bool {
	return a == "" || a.Address() == (common.Address{})
}

func normalizeAddress(address string) string {
	withoutPrefix := strings.TrimPrefix(address, "0x")
	if len(withoutPrefix) < 40 {
		return ""
	}

	return "0x" + withoutPrefix[len(withoutPrefix)-40:]
}
