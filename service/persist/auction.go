package persist

import (
	"fmt"
	"time"
)

// AuctionStatus is the lifecycle state of an auction. Transitions are
// monotonic: active -> ended -> {funds-claimed | item-claimed}. The two
// claimed states are independent terminal sub-states of ended.
type AuctionStatus string

const (
	AuctionStatusActive       AuctionStatus = "active"
	AuctionStatusEnded        AuctionStatus = "ended"
	AuctionStatusFundsClaimed AuctionStatus = "funds-claimed"
	AuctionStatusItemClaimed  AuctionStatus = "item-claimed"
)

func (s AuctionStatus) String() string {
	return string(s)
}

// IsTerminal returns true once no further bids can ever be accepted.
func (s AuctionStatus) IsTerminal() bool {
	return s != AuctionStatusActive
}

// Bid is a single recorded bid. Amounts are in native currency units
// (ether, not wei) and timestamps are ISO-8601, matching the pinned
// metadata schema.
type Bid struct {
	Amount    float64 `json:"amount"`
	Bidder    Address `json:"bidder"`
	Timestamp string  `json:"timestamp"`
}

// Auction is the canonical reconciled view of one auction, merged from the
// ledger and the metadata store. The ledger is authoritative for
// CurrentBid, HighestBidder, Status and Owner; the metadata store is
// authoritative for the descriptive fields and acts as a fallback cache
// for the numeric ones when the ledger is unreachable.
type Auction struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Category        string        `json:"category"`
	StartingBid     float64       `json:"startingBid"`
	CurrentBid      float64       `json:"currentBid"`
	SellerAddress   Address       `json:"sellerAddress"`
	SellerName      string        `json:"sellerName,omitempty"`
	SellerVerified  bool          `json:"sellerVerified,omitempty"`
	CreatedAt       string        `json:"createdAt"`
	EndTime         time.Time     `json:"endTime"`
	ImageURL        string        `json:"imageUrl"`
	Status          AuctionStatus `json:"status"`
	HighestBidder   Address       `json:"highestBidder,omitempty"`
	Owner           Address       `json:"owner,omitempty"`
	Bids            []Bid         `json:"bids"`
	AuctionAddress  Address       `json:"auctionAddress,omitempty"`
	TransactionHash string        `json:"transactionHash,omitempty"`
	Degraded        bool          `json:"degraded,omitempty"`
}

// AuctionMetadata is the record pinned to the content-addressed store.
// Everything in it is untrusted input: optional fields default at the
// aggregator boundary and endTime is validated before use.
type AuctionMetadata struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Attributes  AuctionAttributes `json:"attributes"`
}

type AuctionAttributes struct {
	Category        string   `json:"category"`
	StartingBid     float64  `json:"startingBid"`
	CurrentBid      *float64 `json:"currentBid,omitempty"`
	EndTime         string   `json:"endTime"`
	Created         string   `json:"created"`
	SellerAddress   Address  `json:"sellerAddress"`
	SellerName      string   `json:"sellerName,omitempty"`
	SellerVerified  bool     `json:"sellerVerified,omitempty"`
	Bids            []Bid    `json:"bids,omitempty"`
	AuctionAddress  Address  `json:"auctionAddress,omitempty"`
	TransactionHash string   `json:"transactionHash,omitempty"`
}

// ParsedEndTime validates and parses the metadata endTime. Callers treat a
// parse failure as "entry excluded," never as a crash.
func (a AuctionAttributes) ParsedEndTime() (time.Time, error) {
	if a.EndTime == "" {
		return time.Time{}, fmt.Errorf("metadata has no endTime")
	}
	t, err := time.Parse(time.RFC3339, a.EndTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid endTime %q: %w", a.EndTime, err)
	}
	return t, nil
}

// Transaction is one recorded bid joined with the auction it was placed on,
// as shown in a bidder's history.
type Transaction struct {
	AuctionID    string        `json:"auctionId"`
	AuctionTitle string        `json:"auctionTitle"`
	Amount       float64       `json:"amount"`
	Timestamp    string        `json:"timestamp"`
	Status       AuctionStatus `json:"status"`
}

// ErrAuctionNotFoundByID is returned when an auction cannot be resolved at
// all, i.e. its metadata record is missing from the store.
type ErrAuctionNotFoundByID struct {
	ID string
}

func (e ErrAuctionNotFoundByID) Error() string {
	return fmt.Sprintf("auction not found by ID: %s", e.ID)
}
