package auction

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/auctionhaus/go-auctionhaus/service/ledger"
	"github.com/auctionhaus/go-auctionhaus/service/logger"
	"github.com/auctionhaus/go-auctionhaus/service/metadata"
	"github.com/auctionhaus/go-auctionhaus/service/persist"
)

const (
	defaultTitle    = "Untitled Auction"
	defaultCategory = "Uncategorized"

	// pinType is the keyvalue tag that marks a pinned record as an auction.
	pinType = "auction"
)

type ledgerReader interface {
	GetDetails(ctx context.Context, auction persist.Address) (ledger.Details, error)
	Owner(ctx context.Context, auction persist.Address) (persist.Address, error)
}

type metadataReader interface {
	GetAuctionMetadata(ctx context.Context, cid string) (persist.AuctionMetadata, error)
}

// Aggregator merges the two halves of an auction into one canonical view.
// The metadata store owns identity and the descriptive fields; the ledger
// owns price, winner and lifecycle state. When the ledger cannot be read the
// view degrades to the cached metadata numbers and says so, because a stale
// price is useful to a reader where a missing record is not.
type Aggregator struct {
	ledger  ledgerReader
	store   metadataReader
	gateway string
	workers int

	listPins func(ctx context.Context) ([]metadata.PinnedItem, error)
}

func NewAggregator(ledgerClient *ledger.Client, store *metadata.Client, gatewayBase string, workers int) *Aggregator {
	if workers <= 0 {
		workers = 8
	}
	return &Aggregator{
		ledger:  ledgerClient,
		store:   store,
		gateway: gatewayBase,
		workers: workers,
		listPins: func(ctx context.Context) ([]metadata.PinnedItem, error) {
			it := store.Pins(metadata.PinFilter{Type: pinType})
			var items []metadata.PinnedItem
			for it.Next(ctx) {
				items = append(items, it.Item())
			}
			return items, it.Err()
		},
	}
}

// Resolve builds the reconciled view of one auction. A missing metadata
// record is fatal (the id does not exist); an unreachable ledger is not, and
// yields a degraded view marked as such.
func (a *Aggregator) Resolve(ctx context.Context, id string) (persist.Auction, error) {
	meta, err := a.store.GetAuctionMetadata(ctx, id)
	if err != nil {
		var notFound metadata.ErrNotFound
		if errors.As(err, &notFound) {
			return persist.Auction{}, persist.ErrAuctionNotFoundByID{ID: id}
		}
		return persist.Auction{}, err
	}

	result := a.fromMetadata(ctx, id, meta)

	if result.AuctionAddress == "" {
		return result, nil
	}

	details, err := a.ledger.GetDetails(ctx, result.AuctionAddress)
	if err != nil {
		logger.For(ctx).Warnf("ledger read for auction %s failed, serving degraded view: %s", id, err)
		result.Degraded = true
		return result, nil
	}

	a.overlay(ctx, &result, details)
	return result, nil
}

// fromMetadata is the ledger-free half of a view: descriptive fields with
// defaults applied and a provisional status derived from the recorded
// endTime alone.
func (a *Aggregator) fromMetadata(ctx context.Context, id string, meta persist.AuctionMetadata) persist.Auction {
	attrs := meta.Attributes

	result := persist.Auction{
		ID:              id,
		Title:           meta.Name,
		Description:     meta.Description,
		Category:        attrs.Category,
		StartingBid:     attrs.StartingBid,
		CurrentBid:      attrs.StartingBid,
		SellerAddress:   attrs.SellerAddress,
		SellerName:      attrs.SellerName,
		SellerVerified:  attrs.SellerVerified,
		CreatedAt:       attrs.Created,
		ImageURL:        a.imageURL(meta.Image),
		Status:          persist.AuctionStatusActive,
		Bids:            attrs.Bids,
		AuctionAddress:  attrs.AuctionAddress,
		TransactionHash: attrs.TransactionHash,
	}
	if result.Title == "" {
		result.Title = defaultTitle
	}
	if result.Category == "" {
		result.Category = defaultCategory
	}
	if result.Bids == nil {
		result.Bids = []persist.Bid{}
	}
	if attrs.CurrentBid != nil {
		result.CurrentBid = *attrs.CurrentBid
	}

	endTime, err := attrs.ParsedEndTime()
	if err != nil {
		logger.For(ctx).Warnf("auction %s: %s", id, err)
		return result
	}
	result.EndTime = endTime
	if time.Now().After(endTime) {
		result.Status = persist.AuctionStatusEnded
	}
	return result
}

// overlay replaces the cached numbers with the authoritative on-chain state.
func (a *Aggregator) overlay(ctx context.Context, result *persist.Auction, details ledger.Details) {
	result.StartingBid = details.StartingBid
	result.CurrentBid = details.StartingBid
	if details.HighestBid > 0 {
		result.CurrentBid = details.HighestBid
	}
	result.HighestBidder = details.HighestBidder
	if details.Seller != "" {
		result.SellerAddress = details.Seller
	}
	if !details.EndTime.IsZero() {
		result.EndTime = details.EndTime
	}

	if !details.Ended {
		result.Status = persist.AuctionStatusActive
		return
	}
	result.Status = persist.AuctionStatusEnded

	owner, err := a.ledger.Owner(ctx, result.AuctionAddress)
	if err != nil {
		logger.For(ctx).Warnf("owner read for auction %s failed: %s", result.ID, err)
		return
	}
	result.Owner = owner
	if !owner.IsZero() && !owner.Equal(details.Seller) {
		result.Status = persist.AuctionStatusItemClaimed
	}
}

func (a *Aggregator) imageURL(image string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	cid := strings.TrimPrefix(image, "ipfs://")
	return fmt.Sprintf("%s/ipfs/%s", a.gateway, cid)
}

// Active lists auctions still open for bidding. Expired entries are
// excluded even when the ledger has not recorded the end yet, and entries
// whose endTime never parsed are excluded rather than surfaced broken.
func (a *Aggregator) Active(ctx context.Context) ([]persist.Auction, error) {
	all, err := a.resolveAll(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]persist.Auction, 0, len(all))
	for _, item := range all {
		if item.Status == persist.AuctionStatusActive && !item.EndTime.IsZero() && time.Now().Before(item.EndTime) {
			active = append(active, item)
		}
	}
	sortByEndTime(active)
	return active, nil
}

// BySeller lists every auction, open or settled, created by one address.
func (a *Aggregator) BySeller(ctx context.Context, seller persist.Address) ([]persist.Auction, error) {
	all, err := a.resolveAll(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]persist.Auction, 0)
	for _, item := range all {
		if item.SellerAddress.Equal(seller) {
			mine = append(mine, item)
		}
	}
	sortByEndTime(mine)
	return mine, nil
}

// Wins lists settled auctions where the address holds the highest bid.
func (a *Aggregator) Wins(ctx context.Context, bidder persist.Address) ([]persist.Auction, error) {
	all, err := a.resolveAll(ctx)
	if err != nil {
		return nil, err
	}

	won := make([]persist.Auction, 0)
	for _, item := range all {
		if item.Status.IsTerminal() && item.HighestBidder.Equal(bidder) {
			won = append(won, item)
		}
	}
	sortByEndTime(won)
	return won, nil
}

// Transactions lists every bid one address has placed across all auctions,
// newest first. The pinned bids log is best-effort display data, so this is
// a history view, never an input to guards.
func (a *Aggregator) Transactions(ctx context.Context, bidder persist.Address) ([]persist.Transaction, error) {
	all, err := a.resolveAll(ctx)
	if err != nil {
		return nil, err
	}

	history := make([]persist.Transaction, 0)
	for _, item := range all {
		for _, bid := range item.Bids {
			if bid.Bidder.Equal(bidder) {
				history = append(history, persist.Transaction{
					AuctionID:    item.ID,
					AuctionTitle: item.Title,
					Amount:       bid.Amount,
					Timestamp:    bid.Timestamp,
					Status:       item.Status,
				})
			}
		}
	}
	// RFC3339 timestamps order lexicographically
	sort.Slice(history, func(i, j int) bool {
		return history[i].Timestamp > history[j].Timestamp
	})
	return history, nil
}

// resolveAll fans out over the pin listing with bounded concurrency. One bad
// record drops that record, not the whole listing.
func (a *Aggregator) resolveAll(ctx context.Context) ([]persist.Auction, error) {
	pins, err := a.listPins(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing auction pins")
	}

	var mu sync.Mutex
	results := make([]persist.Auction, 0, len(pins))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(a.workers)
	for _, pin := range pins {
		pin := pin
		group.Go(func() error {
			resolved, err := a.Resolve(groupCtx, pin.CID)
			if err != nil {
				logger.For(groupCtx).Warnf("skipping auction %s: %s", pin.CID, err)
				return nil
			}
			if resolved.EndTime.IsZero() {
				logger.For(groupCtx).Warnf("skipping auction %s: no usable endTime", pin.CID)
				return nil
			}
			mu.Lock()
			results = append(results, resolved)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func sortByEndTime(auctions []persist.Auction) {
	sort.Slice(auctions, func(i, j int) bool {
		return auctions[i].EndTime.Before(auctions[j].EndTime)
	})
}
