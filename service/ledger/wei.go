package ledger

import "math/big"

var weiPerEther = new(big.Float).SetInt(big.NewInt(1e18))

// EtherToWei converts a native-currency amount to wei. Amounts cross the
// HTTP surface in ether; the contract only speaks wei.
func EtherToWei(amount float64) *big.Int {
	wei, _ := new(big.Float).Mul(big.NewFloat(amount), weiPerEther).Int(nil)
	return wei
}

// WeiToEther converts a wei amount to ether. Precision loss past float64 is
// acceptable here: the value is display/comparison data, not a transfer.
func WeiToEther(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	ether, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), weiPerEther).Float64()
	return ether
}
