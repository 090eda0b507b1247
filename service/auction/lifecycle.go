package auction

import (
	"context"
	"io"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/auctionhaus/go-auctionhaus/service/ledger"
	"github.com/auctionhaus/go-auctionhaus/service/logger"
	"github.com/auctionhaus/go-auctionhaus/service/metadata"
	"github.com/auctionhaus/go-auctionhaus/service/persist"
	"github.com/auctionhaus/go-auctionhaus/util"
)

// Events published by the engine after a state transition settles.
const (
	EventNewBid        = "new-bid"
	EventAuctionUpdate = "auction-update"
)

// Publisher delivers an event to everyone watching one auction. Delivery is
// fire-and-forget; the engine never blocks a transition on a listener.
type Publisher interface {
	Publish(auctionID, event string, payload any)
}

// NopPublisher drops every event. Useful where no realtime surface exists.
type NopPublisher struct{}

func (NopPublisher) Publish(string, string, any) {}

// BidEvent is the payload of an EventNewBid publication.
type BidEvent struct {
	Amount    float64         `json:"amount"`
	Bidder    persist.Address `json:"bidder"`
	Timestamp string          `json:"timestamp"`
}

type ledgerWriter interface {
	GetDetails(ctx context.Context, auction persist.Address) (ledger.Details, error)
	Owner(ctx context.Context, auction persist.Address) (persist.Address, error)
	PlaceBid(ctx context.Context, auction persist.Address, amountWei *big.Int) (common.Hash, error)
	EndAuction(ctx context.Context, auction persist.Address) (common.Hash, error)
	ClaimFunds(ctx context.Context, auction persist.Address) (common.Hash, error)
	ClaimItem(ctx context.Context, auction persist.Address) (common.Hash, error)
	SetMetadata(ctx context.Context, auction persist.Address, cid string) (common.Hash, error)
	CreateAuction(ctx context.Context, title, imageHash string, startingBidWei *big.Int, duration time.Duration) (common.Hash, error)
	ParseCreatedAddress(receipt *types.Receipt) (persist.Address, error)
	AwaitReceipt(ctx context.Context, txHash common.Hash) ledger.Confirmation
}

type pinner interface {
	PinJSON(ctx context.Context, name string, keyvalues map[string]string, content any) (string, error)
	PinFile(ctx context.Context, name string, r io.Reader) (string, error)
}

type resolver interface {
	Resolve(ctx context.Context, id string) (persist.Auction, error)
}

// Engine drives auction state transitions. Every mutation follows the same
// shape: guard against the current reconciled view, submit to the ledger,
// wait for settlement, then re-resolve and publish. Guards here are a
// courtesy for fast feedback; the contract re-checks every one of them.
type Engine struct {
	ledger    ledgerWriter
	pins      pinner
	auctions  resolver
	publisher Publisher

	now func() time.Time
}

func NewEngine(ledgerClient *ledger.Client, store *metadata.Client, aggregator *Aggregator, publisher Publisher) *Engine {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Engine{
		ledger:    ledgerClient,
		pins:      store,
		auctions:  aggregator,
		publisher: publisher,
	}
}

// PlaceBid submits a bid and waits for it to settle. On success the returned
// view reflects the new price; watchers of the auction receive both the bid
// and the refreshed view.
func (e *Engine) PlaceBid(ctx context.Context, id string, bidder persist.Address, amount float64) (persist.Auction, error) {
	current, err := e.auctions.Resolve(ctx, id)
	if err != nil {
		return persist.Auction{}, err
	}
	if current.AuctionAddress == "" {
		return persist.Auction{}, ErrNotOnLedger
	}
	// bidding closes at the deadline instant itself, not one tick after
	if current.Status.IsTerminal() || (!current.EndTime.IsZero() && !e.clock().Before(current.EndTime)) {
		return persist.Auction{}, ErrAuctionEnded
	}
	if bidder.Equal(current.SellerAddress) {
		return persist.Auction{}, ErrSellerBid
	}
	if amount <= current.CurrentBid {
		return persist.Auction{}, ErrBidTooLow{Amount: amount, Minimum: current.CurrentBid}
	}

	txHash, err := e.ledger.PlaceBid(ctx, current.AuctionAddress, ledger.EtherToWei(amount))
	if err != nil {
		return persist.Auction{}, err
	}
	if _, err := e.confirm(ctx, txHash); err != nil {
		return persist.Auction{}, err
	}

	updated := e.refresh(ctx, id, current)
	e.publisher.Publish(id, EventNewBid, BidEvent{
		Amount:    amount,
		Bidder:    bidder,
		Timestamp: e.clock().UTC().Format(time.RFC3339),
	})
	e.publisher.Publish(id, EventAuctionUpdate, updated)
	return updated, nil
}

// End closes an auction whose deadline has passed. Seller only.
func (e *Engine) End(ctx context.Context, id string, caller persist.Address) (persist.Auction, error) {
	current, err := e.auctions.Resolve(ctx, id)
	if err != nil {
		return persist.Auction{}, err
	}
	if current.AuctionAddress == "" {
		return persist.Auction{}, ErrNotOnLedger
	}
	if !caller.Equal(current.SellerAddress) {
		return persist.Auction{}, ErrNotSeller
	}
	if current.Status.IsTerminal() {
		return persist.Auction{}, ErrAuctionEnded
	}
	if !current.EndTime.IsZero() && e.clock().Before(current.EndTime) {
		return persist.Auction{}, ErrAuctionNotEnded
	}

	txHash, err := e.ledger.EndAuction(ctx, current.AuctionAddress)
	if err != nil {
		return persist.Auction{}, err
	}
	if _, err := e.confirm(ctx, txHash); err != nil {
		return persist.Auction{}, err
	}

	updated := e.refresh(ctx, id, current)
	e.publisher.Publish(id, EventAuctionUpdate, updated)
	return updated, nil
}

// ClaimFunds releases the winning bid to the seller. The guards re-read the
// ledger rather than trusting a possibly degraded cached view, because money
// moves here.
func (e *Engine) ClaimFunds(ctx context.Context, id string, caller persist.Address) (persist.Auction, error) {
	current, err := e.auctions.Resolve(ctx, id)
	if err != nil {
		return persist.Auction{}, err
	}
	if current.AuctionAddress == "" {
		return persist.Auction{}, ErrNotOnLedger
	}

	details, err := e.ledger.GetDetails(ctx, current.AuctionAddress)
	if err != nil {
		return persist.Auction{}, err
	}
	if !caller.Equal(details.Seller) {
		return persist.Auction{}, ErrNotSeller
	}
	if !details.Ended {
		return persist.Auction{}, ErrAuctionNotEnded
	}
	if details.HighestBid <= 0 || details.HighestBidder.IsZero() {
		return persist.Auction{}, ErrNoWinningBid
	}

	txHash, err := e.ledger.ClaimFunds(ctx, current.AuctionAddress)
	if err != nil {
		return persist.Auction{}, err
	}
	if _, err := e.confirm(ctx, txHash); err != nil {
		return persist.Auction{}, err
	}

	updated := e.refresh(ctx, id, current)
	// the contract does not expose a funds-claimed flag; this transition is
	// only observable as the result of the claim itself
	updated.Status = persist.AuctionStatusFundsClaimed
	e.publisher.Publish(id, EventAuctionUpdate, updated)
	return updated, nil
}

// ClaimItem transfers ownership of the item to the winning bidder, then
// verifies against the contract that the transfer actually landed.
func (e *Engine) ClaimItem(ctx context.Context, id string, caller persist.Address) (persist.Auction, error) {
	current, err := e.auctions.Resolve(ctx, id)
	if err != nil {
		return persist.Auction{}, err
	}
	if current.AuctionAddress == "" {
		return persist.Auction{}, ErrNotOnLedger
	}

	details, err := e.ledger.GetDetails(ctx, current.AuctionAddress)
	if err != nil {
		return persist.Auction{}, err
	}
	if !details.Ended {
		return persist.Auction{}, ErrAuctionNotEnded
	}
	if !caller.Equal(details.HighestBidder) {
		return persist.Auction{}, ErrNotWinner
	}

	txHash, err := e.ledger.ClaimItem(ctx, current.AuctionAddress)
	if err != nil {
		return persist.Auction{}, err
	}
	if _, err := e.confirm(ctx, txHash); err != nil {
		return persist.Auction{}, err
	}

	owner, err := e.ledger.Owner(ctx, current.AuctionAddress)
	if err != nil {
		return persist.Auction{}, err
	}
	if !owner.Equal(caller) {
		return persist.Auction{}, ErrOwnershipTransferMismatch{
			Auction:  current.AuctionAddress,
			Expected: caller,
			Actual:   owner,
		}
	}

	updated := e.refresh(ctx, id, current)
	updated.Status = persist.AuctionStatusItemClaimed
	updated.Owner = owner
	e.publisher.Publish(id, EventAuctionUpdate, updated)
	return updated, nil
}

// CreateInput is everything needed to list a new auction.
type CreateInput struct {
	Title       string
	Description string
	Category    string
	StartingBid float64
	Duration    time.Duration
	Seller      persist.Address
	SellerName  string
	Image       io.Reader
	ImageName   string
}

func (in CreateInput) validate() error {
	if in.Title == "" {
		return util.ErrInvalidInput{Reason: "title is required"}
	}
	if in.StartingBid <= 0 {
		return util.ErrInvalidInput{Reason: "starting bid must be positive"}
	}
	if in.Duration <= 0 {
		return util.ErrInvalidInput{Reason: "duration must be positive"}
	}
	if in.Seller == "" {
		return util.ErrInvalidInput{Reason: "seller address is required"}
	}
	return nil
}

// Create lists a new auction: pin the image, deploy the contract through the
// factory, pin the metadata record keyed to the new address, and record the
// metadata id back on chain best-effort. The returned view is built locally
// because a pin this fresh may not be readable through the gateways yet.
func (e *Engine) Create(ctx context.Context, input CreateInput) (persist.Auction, error) {
	if err := input.validate(); err != nil {
		return persist.Auction{}, err
	}

	imageCID := ""
	if input.Image != nil {
		cid, err := e.pins.PinFile(ctx, input.ImageName, input.Image)
		if err != nil {
			return persist.Auction{}, err
		}
		imageCID = cid
	}

	txHash, err := e.ledger.CreateAuction(ctx, input.Title, imageCID, ledger.EtherToWei(input.StartingBid), input.Duration)
	if err != nil {
		return persist.Auction{}, err
	}
	receipt, err := e.confirm(ctx, txHash)
	if err != nil {
		return persist.Auction{}, err
	}
	address, err := e.ledger.ParseCreatedAddress(receipt)
	if err != nil {
		return persist.Auction{}, err
	}

	now := e.clock().UTC()
	endTime := now.Add(input.Duration)
	category := input.Category
	if category == "" {
		category = defaultCategory
	}

	meta := persist.AuctionMetadata{
		Name:        input.Title,
		Description: input.Description,
		Image:       imageCID,
		Attributes: persist.AuctionAttributes{
			Category:        category,
			StartingBid:     input.StartingBid,
			EndTime:         endTime.Format(time.RFC3339),
			Created:         now.Format(time.RFC3339),
			SellerAddress:   input.Seller,
			SellerName:      input.SellerName,
			AuctionAddress:  address,
			TransactionHash: txHash.Hex(),
		},
	}

	id, err := e.pins.PinJSON(ctx, input.Title, map[string]string{"type": pinType}, meta)
	if err != nil {
		return persist.Auction{}, err
	}

	if _, err := e.ledger.SetMetadata(ctx, address, id); err != nil {
		logger.For(ctx).Warnf("recording metadata id %s on %s failed: %s", id, address, err)
	}

	created := persist.Auction{
		ID:              id,
		Title:           input.Title,
		Description:     input.Description,
		Category:        category,
		StartingBid:     input.StartingBid,
		CurrentBid:      input.StartingBid,
		SellerAddress:   input.Seller,
		SellerName:      input.SellerName,
		CreatedAt:       now.Format(time.RFC3339),
		EndTime:         endTime,
		Status:          persist.AuctionStatusActive,
		Bids:            []persist.Bid{},
		AuctionAddress:  address,
		TransactionHash: txHash.Hex(),
	}
	return created, nil
}

func (e *Engine) clock() time.Time {
	if e.now != nil {
		return e.now()
	}
	return time.Now()
}

func (e *Engine) confirm(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	confirmation := e.ledger.AwaitReceipt(ctx, txHash)
	switch confirmation.State {
	case ledger.Confirmed:
		return confirmation.Receipt, nil
	case ledger.Failed:
		return nil, confirmation.Err
	default:
		return nil, ErrConfirmationTimeout{TxHash: txHash.Hex()}
	}
}

// refresh re-resolves after a settled write. A refresh failure is not a
// transition failure: the write landed, so serve the stale view marked
// degraded rather than reporting an error for work that succeeded.
func (e *Engine) refresh(ctx context.Context, id string, fallback persist.Auction) persist.Auction {
	updated, err := e.auctions.Resolve(ctx, id)
	if err != nil {
		logger.For(ctx).Warnf("refresh of auction %s after write failed: %s", id, err)
		fallback.Degraded = true
		return fallback
	}
	return updated
}
