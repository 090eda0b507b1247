package auction

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auctionhaus/go-auctionhaus/service/ledger"
	"github.com/auctionhaus/go-auctionhaus/service/metadata"
	"github.com/auctionhaus/go-auctionhaus/service/persist"
)

const (
	sellerAddr persist.Address = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	bidderAddr persist.Address = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	otherAddr  persist.Address = "0xcccccccccccccccccccccccccccccccccccccccc"

	contractAddr persist.Address = "0x1234567890123456789012345678901234567890"
)

type fakeLedgerReader struct {
	details    map[persist.Address]ledger.Details
	detailsErr error
	owners     map[persist.Address]persist.Address
	ownerErr   error
}

func (f *fakeLedgerReader) GetDetails(ctx context.Context, auction persist.Address) (ledger.Details, error) {
	if f.detailsErr != nil {
		return ledger.Details{}, f.detailsErr
	}
	return f.details[auction], nil
}

func (f *fakeLedgerReader) Owner(ctx context.Context, auction persist.Address) (persist.Address, error) {
	if f.ownerErr != nil {
		return "", f.ownerErr
	}
	return f.owners[auction], nil
}

type fakeMetadataReader struct {
	records map[string]persist.AuctionMetadata
	err     error
}

func (f *fakeMetadataReader) GetAuctionMetadata(ctx context.Context, cid string) (persist.AuctionMetadata, error) {
	if f.err != nil {
		return persist.AuctionMetadata{}, f.err
	}
	record, ok := f.records[cid]
	if !ok {
		return persist.AuctionMetadata{}, metadata.ErrNotFound{CID: cid}
	}
	return record, nil
}

func newTestAggregator(ledgerReader *fakeLedgerReader, store *fakeMetadataReader) *Aggregator {
	return &Aggregator{
		ledger:  ledgerReader,
		store:   store,
		gateway: "https://gateway.test",
		workers: 4,
		listPins: func(ctx context.Context) ([]metadata.PinnedItem, error) {
			var items []metadata.PinnedItem
			for cid := range store.records {
				items = append(items, metadata.PinnedItem{CID: cid})
			}
			return items, nil
		},
	}
}

func metadataRecord(seller persist.Address, contract persist.Address, endTime string) persist.AuctionMetadata {
	return persist.AuctionMetadata{
		Name:        "vintage synth",
		Description: "mono synth, serviced",
		Image:       "QmImage",
		Attributes: persist.AuctionAttributes{
			Category:       "Music",
			StartingBid:    1,
			EndTime:        endTime,
			Created:        "2026-01-01T00:00:00Z",
			SellerAddress:  seller,
			AuctionAddress: contract,
		},
	}
}

func futureTime() string {
	return time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
}

func pastTime() string {
	return time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
}

func TestResolveMissingMetadataIsNotFound(t *testing.T) {
	aggregator := newTestAggregator(&fakeLedgerReader{}, &fakeMetadataReader{})

	_, err := aggregator.Resolve(context.Background(), "QmNope")

	var notFound persist.ErrAuctionNotFoundByID
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "QmNope", notFound.ID)
}

func TestResolveAppliesDefaults(t *testing.T) {
	store := &fakeMetadataReader{records: map[string]persist.AuctionMetadata{
		"QmBare": {Attributes: persist.AuctionAttributes{EndTime: futureTime()}},
	}}
	aggregator := newTestAggregator(&fakeLedgerReader{}, store)

	resolved, err := aggregator.Resolve(context.Background(), "QmBare")
	require.NoError(t, err)

	assert.Equal(t, "Untitled Auction", resolved.Title)
	assert.Equal(t, "Uncategorized", resolved.Category)
	assert.NotNil(t, resolved.Bids)
	assert.Equal(t, persist.AuctionStatusActive, resolved.Status)
	assert.False(t, resolved.Degraded)
}

func TestResolveBuildsGatewayImageURL(t *testing.T) {
	store := &fakeMetadataReader{records: map[string]persist.AuctionMetadata{
		"QmA": metadataRecord(sellerAddr, "", futureTime()),
	}}
	aggregator := newTestAggregator(&fakeLedgerReader{}, store)

	resolved, err := aggregator.Resolve(context.Background(), "QmA")
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.test/ipfs/QmImage", resolved.ImageURL)
}

func TestResolveOverlaysLedgerState(t *testing.T) {
	endTime := time.Now().Add(30 * time.Minute).UTC().Truncate(time.Second)
	store := &fakeMetadataReader{records: map[string]persist.AuctionMetadata{
		"QmA": metadataRecord(sellerAddr, contractAddr, pastTime()),
	}}
	ledgerReader := &fakeLedgerReader{details: map[persist.Address]ledger.Details{
		contractAddr: {
			Seller:        sellerAddr,
			StartingBid:   1,
			EndTime:       endTime,
			Ended:         false,
			HighestBidder: bidderAddr,
			HighestBid:    2.5,
		},
	}}
	aggregator := newTestAggregator(ledgerReader, store)

	resolved, err := aggregator.Resolve(context.Background(), "QmA")
	require.NoError(t, err)

	// the chain says the auction is still open even though the cached
	// endTime has passed
	assert.Equal(t, persist.AuctionStatusActive, resolved.Status)
	assert.Equal(t, 2.5, resolved.CurrentBid)
	assert.True(t, resolved.HighestBidder.Equal(bidderAddr))
	assert.True(t, resolved.EndTime.Equal(endTime))
	assert.False(t, resolved.Degraded)
}

func TestResolveDegradesWhenLedgerUnreachable(t *testing.T) {
	cached := 3.25
	record := metadataRecord(sellerAddr, contractAddr, futureTime())
	record.Attributes.CurrentBid = &cached

	store := &fakeMetadataReader{records: map[string]persist.AuctionMetadata{"QmA": record}}
	ledgerReader := &fakeLedgerReader{detailsErr: ledger.ErrUnreachableLedger{Err: errors.New("connection refused")}}
	aggregator := newTestAggregator(ledgerReader, store)

	resolved, err := aggregator.Resolve(context.Background(), "QmA")
	require.NoError(t, err)

	assert.True(t, resolved.Degraded)
	assert.Equal(t, 3.25, resolved.CurrentBid)
	assert.Equal(t, persist.AuctionStatusActive, resolved.Status)
}

func TestResolveDerivesItemClaimed(t *testing.T) {
	store := &fakeMetadataReader{records: map[string]persist.AuctionMetadata{
		"QmA": metadataRecord(sellerAddr, contractAddr, pastTime()),
	}}
	ledgerReader := &fakeLedgerReader{
		details: map[persist.Address]ledger.Details{
			contractAddr: {Seller: sellerAddr, Ended: true, HighestBidder: bidderAddr, HighestBid: 2, EndTime: time.Now().Add(-time.Hour)},
		},
		owners: map[persist.Address]persist.Address{contractAddr: bidderAddr},
	}
	aggregator := newTestAggregator(ledgerReader, store)

	resolved, err := aggregator.Resolve(context.Background(), "QmA")
	require.NoError(t, err)

	assert.Equal(t, persist.AuctionStatusItemClaimed, resolved.Status)
	assert.True(t, resolved.Owner.Equal(bidderAddr))
}

func TestResolveEndedWhileSellerStillOwns(t *testing.T) {
	store := &fakeMetadataReader{records: map[string]persist.AuctionMetadata{
		"QmA": metadataRecord(sellerAddr, contractAddr, pastTime()),
	}}
	ledgerReader := &fakeLedgerReader{
		details: map[persist.Address]ledger.Details{
			contractAddr: {Seller: sellerAddr, Ended: true, EndTime: time.Now().Add(-time.Hour)},
		},
		owners: map[persist.Address]persist.Address{contractAddr: sellerAddr},
	}
	aggregator := newTestAggregator(ledgerReader, store)

	resolved, err := aggregator.Resolve(context.Background(), "QmA")
	require.NoError(t, err)
	assert.Equal(t, persist.AuctionStatusEnded, resolved.Status)
}

func TestActiveExcludesExpiredAndMalformed(t *testing.T) {
	store := &fakeMetadataReader{records: map[string]persist.AuctionMetadata{
		"QmOpen":      metadataRecord(sellerAddr, "", futureTime()),
		"QmExpired":   metadataRecord(sellerAddr, "", pastTime()),
		"QmMalformed": metadataRecord(sellerAddr, "", "next tuesday"),
	}}
	aggregator := newTestAggregator(&fakeLedgerReader{}, store)

	active, err := aggregator.Active(context.Background())
	require.NoError(t, err)

	require.Len(t, active, 1)
	assert.Equal(t, "QmOpen", active[0].ID)
}

func TestActiveExcludesExpiredAuctionTheLedgerStillCallsOpen(t *testing.T) {
	// the contract only flips ended when someone calls endAuction, so a
	// past-deadline auction can still read as open on chain; it must not be
	// listed as biddable
	store := &fakeMetadataReader{records: map[string]persist.AuctionMetadata{
		"QmStale": metadataRecord(sellerAddr, contractAddr, pastTime()),
	}}
	ledgerReader := &fakeLedgerReader{details: map[persist.Address]ledger.Details{
		contractAddr: {Seller: sellerAddr, Ended: false, EndTime: time.Now().Add(-time.Hour)},
	}}
	aggregator := newTestAggregator(ledgerReader, store)

	active, err := aggregator.Active(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestBySellerIncludesSettledAuctions(t *testing.T) {
	store := &fakeMetadataReader{records: map[string]persist.AuctionMetadata{
		"QmMineOpen":  metadataRecord(sellerAddr, "", futureTime()),
		"QmMineEnded": metadataRecord(sellerAddr, "", pastTime()),
		"QmTheirs":    metadataRecord(otherAddr, "", futureTime()),
	}}
	aggregator := newTestAggregator(&fakeLedgerReader{}, store)

	mine, err := aggregator.BySeller(context.Background(), sellerAddr)
	require.NoError(t, err)

	require.Len(t, mine, 2)
	for _, item := range mine {
		assert.True(t, item.SellerAddress.Equal(sellerAddr))
	}
}

func TestWinsRequiresTerminalStatusAndHighestBid(t *testing.T) {
	store := &fakeMetadataReader{records: map[string]persist.AuctionMetadata{
		"QmWon":     metadataRecord(sellerAddr, contractAddr, pastTime()),
		"QmStillOn": metadataRecord(sellerAddr, "", futureTime()),
	}}
	ledgerReader := &fakeLedgerReader{
		details: map[persist.Address]ledger.Details{
			contractAddr: {Seller: sellerAddr, Ended: true, HighestBidder: bidderAddr, HighestBid: 4, EndTime: time.Now().Add(-time.Hour)},
		},
		owners: map[persist.Address]persist.Address{contractAddr: sellerAddr},
	}
	aggregator := newTestAggregator(ledgerReader, store)

	won, err := aggregator.Wins(context.Background(), bidderAddr)
	require.NoError(t, err)

	require.Len(t, won, 1)
	assert.Equal(t, "QmWon", won[0].ID)

	none, err := aggregator.Wins(context.Background(), otherAddr)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTransactionsCollectBidHistoryNewestFirst(t *testing.T) {
	first := metadataRecord(sellerAddr, "", futureTime())
	first.Attributes.Bids = []persist.Bid{
		{Amount: 2, Bidder: bidderAddr, Timestamp: "2026-02-01T00:00:00Z"},
		{Amount: 3, Bidder: otherAddr, Timestamp: "2026-02-02T00:00:00Z"},
	}
	second := metadataRecord(sellerAddr, "", pastTime())
	second.Attributes.Bids = []persist.Bid{
		{Amount: 5, Bidder: bidderAddr, Timestamp: "2026-03-01T00:00:00Z"},
	}
	store := &fakeMetadataReader{records: map[string]persist.AuctionMetadata{
		"QmFirst":  first,
		"QmSecond": second,
	}}
	aggregator := newTestAggregator(&fakeLedgerReader{}, store)

	history, err := aggregator.Transactions(context.Background(), bidderAddr)
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, "QmSecond", history[0].AuctionID)
	assert.Equal(t, 5.0, history[0].Amount)
	assert.Equal(t, persist.AuctionStatusEnded, history[0].Status)
	assert.Equal(t, "QmFirst", history[1].AuctionID)
	assert.Equal(t, 2.0, history[1].Amount)
	assert.Equal(t, "vintage synth", history[1].AuctionTitle)
}

func TestTransactionsEmptyForStranger(t *testing.T) {
	record := metadataRecord(sellerAddr, "", futureTime())
	record.Attributes.Bids = []persist.Bid{
		{Amount: 2, Bidder: bidderAddr, Timestamp: "2026-02-01T00:00:00Z"},
	}
	store := &fakeMetadataReader{records: map[string]persist.AuctionMetadata{"QmA": record}}
	aggregator := newTestAggregator(&fakeLedgerReader{}, store)

	history, err := aggregator.Transactions(context.Background(), otherAddr)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestListingsSurviveOneBadRecord(t *testing.T) {
	store := &fakeMetadataReader{records: map[string]persist.AuctionMetadata{
		"QmGood": metadataRecord(sellerAddr, "", futureTime()),
	}}
	aggregator := newTestAggregator(&fakeLedgerReader{}, store)
	aggregator.listPins = func(ctx context.Context) ([]metadata.PinnedItem, error) {
		return []metadata.PinnedItem{{CID: "QmGood"}, {CID: "QmVanished"}}, nil
	}

	active, err := aggregator.Active(context.Background())
	require.NoError(t, err)

	require.Len(t, active, 1)
	assert.Equal(t, "QmGood", active[0].ID)
}
