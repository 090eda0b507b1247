package auction

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/auctionhaus/go-auctionhaus/service/persist"
)

var (
	// ErrAuctionEnded rejects a mutation on an auction past its end.
	ErrAuctionEnded = errors.New("auction has already ended")

	// ErrAuctionNotEnded rejects end/claim actions before the deadline.
	ErrAuctionNotEnded = errors.New("auction has not ended yet")

	// ErrSellerBid rejects a seller bidding on their own auction.
	ErrSellerBid = errors.New("seller cannot bid on their own auction")

	// ErrNotSeller rejects a seller-only action from anyone else.
	ErrNotSeller = errors.New("only the seller can perform this action")

	// ErrNotWinner rejects an item claim from anyone but the highest bidder.
	ErrNotWinner = errors.New("only the winning bidder can claim the item")

	// ErrNoWinningBid rejects a funds claim on an auction nobody bid on.
	ErrNoWinningBid = errors.New("auction ended with no winning bid")

	// ErrNotOnLedger rejects ledger actions on a metadata-only record that
	// never got a contract address.
	ErrNotOnLedger = errors.New("auction is not bound to a ledger contract")
)

// ErrBidTooLow rejects a bid at or below the current price.
type ErrBidTooLow struct {
	Amount  float64
	Minimum float64
}

func (e ErrBidTooLow) Error() string {
	return fmt.Sprintf("bid of %g must exceed current bid of %g", e.Amount, e.Minimum)
}

// ErrOwnershipTransferMismatch means an item claim settled but the contract
// reports an unexpected owner afterwards. The ledger state is the truth; the
// caller's view of the claim is wrong.
type ErrOwnershipTransferMismatch struct {
	Auction  persist.Address
	Expected persist.Address
	Actual   persist.Address
}

func (e ErrOwnershipTransferMismatch) Error() string {
	return fmt.Sprintf("ownership of %s did not transfer to %s (owner is %s)", e.Auction, e.Expected, e.Actual)
}

// ErrConfirmationTimeout means a broadcast transaction was not observed to
// settle within the polling window. It is not a failure: the transaction may
// confirm later, and callers can re-resolve the auction to find out.
type ErrConfirmationTimeout struct {
	TxHash string
}

func (e ErrConfirmationTimeout) Error() string {
	return fmt.Sprintf("transaction %s not confirmed in time", e.TxHash)
}
