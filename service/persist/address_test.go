package persist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressNormalization(t *testing.T) {
	checksummed := Address("0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B")

	assert.Equal(t, "0xab5801a7d398351b8be11c439e05c5b3259aec9b", checksummed.String())
	assert.Equal(t, checksummed.String(), Address("ab5801a7d398351b8be11c439e05c5b3259aec9b").String())
}

func TestAddressEqualIgnoresCase(t *testing.T) {
	a := Address("0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B")
	b := Address("0xab5801a7d398351b8be11c439e05c5b3259aec9b")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(Address("0x00000000219ab540356cBB839Cbe05303d7705Fa")))
}

func TestAddressIsZero(t *testing.T) {
	assert.True(t, Address("").IsZero())
	assert.True(t, Address("0x0000000000000000000000000000000000000000").IsZero())
	assert.False(t, Address("0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B").IsZero())
}
