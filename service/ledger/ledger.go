package ledger

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	"github.com/auctionhaus/go-auctionhaus/contracts"
	"github.com/auctionhaus/go-auctionhaus/service/logger"
	"github.com/auctionhaus/go-auctionhaus/service/persist"
)

const callTimeout = 10 * time.Second

// Details is a typed snapshot of one auction contract's state. Amounts are
// converted from wei to ether at this boundary.
type Details struct {
	Seller        persist.Address
	Title         string
	ImageHash     string
	MetadataCID   string
	StartingBid   float64
	EndTime       time.Time
	Ended         bool
	HighestBidder persist.Address
	HighestBid    float64
}

// rawDetails mirrors the getAuctionDetails return tuple in wei.
type rawDetails struct {
	Seller        common.Address
	Title         string
	ImageHash     string
	MetadataCID   string
	StartingBid   *big.Int
	EndTime       *big.Int
	Ended         bool
	HighestBidder common.Address
	HighestBid    *big.Int
}

// auctionBinding is the slice of the generated Auction binding the client
// uses, narrowed so tests can substitute a fake contract.
type auctionBinding interface {
	Details(opts *bind.CallOpts) (rawDetails, error)
	Owner(opts *bind.CallOpts) (common.Address, error)
	Bid(opts *bind.TransactOpts) (*types.Transaction, error)
	EndAuction(opts *bind.TransactOpts) (*types.Transaction, error)
	ClaimFunds(opts *bind.TransactOpts) (*types.Transaction, error)
	ClaimItem(opts *bind.TransactOpts) (*types.Transaction, error)
	SetMetadata(opts *bind.TransactOpts, cid string) (*types.Transaction, error)
}

type factoryBinding interface {
	CreateAuction(opts *bind.TransactOpts, title, imageHash string, startingBid, duration *big.Int) (*types.Transaction, error)
}

// receiptBackend is satisfied by *ethclient.Client.
type receiptBackend interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type boundAuction struct {
	contract *contracts.Auction
}

func (b boundAuction) Details(opts *bind.CallOpts) (rawDetails, error) {
	out, err := b.contract.GetAuctionDetails(opts)
	if err != nil {
		return rawDetails{}, err
	}
	return rawDetails(out), nil
}

func (b boundAuction) Owner(opts *bind.CallOpts) (common.Address, error) {
	return b.contract.Owner(opts)
}

func (b boundAuction) Bid(opts *bind.TransactOpts) (*types.Transaction, error) {
	return b.contract.Bid(opts)
}

func (b boundAuction) EndAuction(opts *bind.TransactOpts) (*types.Transaction, error) {
	return b.contract.EndAuction(opts)
}

func (b boundAuction) ClaimFunds(opts *bind.TransactOpts) (*types.Transaction, error) {
	return b.contract.ClaimFunds(opts)
}

func (b boundAuction) ClaimItem(opts *bind.TransactOpts) (*types.Transaction, error) {
	return b.contract.ClaimItem(opts)
}

func (b boundAuction) SetMetadata(opts *bind.TransactOpts, cid string) (*types.Transaction, error) {
	return b.contract.SetMetadata(opts, cid)
}

// Config carries everything the client needs beyond the dialed node.
type Config struct {
	ChainID        int64
	PrivateKey     string // hex, no 0x prefix; the operator key signing server-side transactions
	FactoryAddress persist.Address
	PollInterval   time.Duration
	PollAttempts   int
}

// Client provides typed read/write access to auction contracts. Writes are
// asynchronous with respect to settlement: every mutator returns the pending
// transaction hash and the caller decides whether to AwaitReceipt.
type Client struct {
	chainID      *big.Int
	key          *ecdsa.PrivateKey
	receipts     receiptBackend
	pollInterval time.Duration
	pollAttempts int

	bindAuction func(addr common.Address) (auctionBinding, error)
	factory     factoryBinding
	factoryAddr common.Address
}

func New(ethClient *ethclient.Client, cfg Config) (*Client, error) {
	key, err := crypto.HexToECDSA(cfg.PrivateKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid operator key")
	}

	factoryAddr := cfg.FactoryAddress.Address()
	factory, err := contracts.NewAuctionFactory(factoryAddr, ethClient)
	if err != nil {
		return nil, errors.Wrap(err, "binding auction factory")
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.PollAttempts <= 0 {
		cfg.PollAttempts = 30
	}

	return &Client{
		chainID:      big.NewInt(cfg.ChainID),
		key:          key,
		receipts:     ethClient,
		pollInterval: cfg.PollInterval,
		pollAttempts: cfg.PollAttempts,
		bindAuction: func(addr common.Address) (auctionBinding, error) {
			contract, err := contracts.NewAuction(addr, ethClient)
			if err != nil {
				return nil, err
			}
			return boundAuction{contract: contract}, nil
		},
		factory:     factory,
		factoryAddr: factoryAddr,
	}, nil
}

// GetDetails reads the full on-chain state of one auction.
func (c *Client) GetDetails(ctx context.Context, auction persist.Address) (Details, error) {
	contract, err := c.bindAuction(auction.Address())
	if err != nil {
		return Details{}, ErrUnreachableLedger{Err: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	raw, err := contract.Details(&bind.CallOpts{Context: callCtx})
	if err != nil {
		return Details{}, asLedgerError(err)
	}

	details := Details{
		Seller:      persist.Address(raw.Seller.Hex()),
		Title:       raw.Title,
		ImageHash:   raw.ImageHash,
		MetadataCID: raw.MetadataCID,
		StartingBid: WeiToEther(raw.StartingBid),
		Ended:       raw.Ended,
		HighestBid:  WeiToEther(raw.HighestBid),
	}
	if raw.EndTime != nil {
		details.EndTime = time.Unix(raw.EndTime.Int64(), 0).UTC()
	}
	if raw.HighestBidder != (common.Address{}) {
		details.HighestBidder = persist.Address(raw.HighestBidder.Hex())
	}
	return details, nil
}

// Owner reads the current item owner of one auction.
func (c *Client) Owner(ctx context.Context, auction persist.Address) (persist.Address, error) {
	contract, err := c.bindAuction(auction.Address())
	if err != nil {
		return "", ErrUnreachableLedger{Err: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	owner, err := contract.Owner(&bind.CallOpts{Context: callCtx})
	if err != nil {
		return "", asLedgerError(err)
	}
	return persist.Address(owner.Hex()), nil
}

// PlaceBid submits a bid of amountWei to the auction and returns the pending
// transaction hash. The contract enforces amount > highestBid, !ended and
// bidder != seller; a violation comes back as ErrRejectedByLedger.
func (c *Client) PlaceBid(ctx context.Context, auction persist.Address, amountWei *big.Int) (common.Hash, error) {
	return c.transact(ctx, auction, amountWei, func(contract auctionBinding, opts *bind.TransactOpts) (*types.Transaction, error) {
		return contract.Bid(opts)
	})
}

// EndAuction closes the auction. Ledger-enforced: caller is seller, the
// deadline has passed, not already ended.
func (c *Client) EndAuction(ctx context.Context, auction persist.Address) (common.Hash, error) {
	return c.transact(ctx, auction, nil, func(contract auctionBinding, opts *bind.TransactOpts) (*types.Transaction, error) {
		return contract.EndAuction(opts)
	})
}

// ClaimFunds releases the winning bid to the seller.
func (c *Client) ClaimFunds(ctx context.Context, auction persist.Address) (common.Hash, error) {
	return c.transact(ctx, auction, nil, func(contract auctionBinding, opts *bind.TransactOpts) (*types.Transaction, error) {
		return contract.ClaimFunds(opts)
	})
}

// ClaimItem transfers item ownership to the winning bidder.
func (c *Client) ClaimItem(ctx context.Context, auction persist.Address) (common.Hash, error) {
	return c.transact(ctx, auction, nil, func(contract auctionBinding, opts *bind.TransactOpts) (*types.Transaction, error) {
		return contract.ClaimItem(opts)
	})
}

// SetMetadata records the metadata CID on the auction contract.
func (c *Client) SetMetadata(ctx context.Context, auction persist.Address, cid string) (common.Hash, error) {
	return c.transact(ctx, auction, nil, func(contract auctionBinding, opts *bind.TransactOpts) (*types.Transaction, error) {
		return contract.SetMetadata(opts, cid)
	})
}

// CreateAuction deploys a new auction through the factory, funded with the
// starting bid. The new contract's address is recovered from the creation
// receipt via ParseCreatedAddress.
func (c *Client) CreateAuction(ctx context.Context, title, imageHash string, startingBidWei *big.Int, duration time.Duration) (common.Hash, error) {
	opts, err := c.transactOpts(ctx, startingBidWei)
	if err != nil {
		return common.Hash{}, err
	}

	tx, err := c.factory.CreateAuction(opts, title, imageHash, startingBidWei, big.NewInt(int64(duration.Seconds())))
	if err != nil {
		return common.Hash{}, asLedgerError(err)
	}
	return tx.Hash(), nil
}

// ParseCreatedAddress pulls the new auction address out of a factory
// creation receipt's AuctionCreated log.
func (c *Client) ParseCreatedAddress(receipt *types.Receipt) (persist.Address, error) {
	filterer, err := contracts.NewAuctionFactoryFilterer(c.factoryAddr, nil)
	if err != nil {
		return "", err
	}
	for _, log := range receipt.Logs {
		if log == nil {
			continue
		}
		created, err := filterer.ParseAuctionCreated(*log)
		if err != nil {
			continue
		}
		return persist.Address(created.Auction.Hex()), nil
	}
	return "", errors.New("no AuctionCreated event in receipt")
}

func (c *Client) transact(ctx context.Context, auction persist.Address, value *big.Int, call func(auctionBinding, *bind.TransactOpts) (*types.Transaction, error)) (common.Hash, error) {
	contract, err := c.bindAuction(auction.Address())
	if err != nil {
		return common.Hash{}, ErrUnreachableLedger{Err: err}
	}

	opts, err := c.transactOpts(ctx, value)
	if err != nil {
		return common.Hash{}, err
	}

	tx, err := call(contract, opts)
	if err != nil {
		return common.Hash{}, asLedgerError(err)
	}
	return tx.Hash(), nil
}

func (c *Client) transactOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create authorized transactor")
	}
	opts.Context = ctx
	opts.Value = value
	return opts, nil
}

// ConfirmationState tags the outcome of waiting on a transaction receipt.
type ConfirmationState int

const (
	// Confirmed means a receipt with success status was observed.
	Confirmed ConfirmationState = iota
	// TimedOut means polling was exhausted without a receipt. The
	// transaction may still settle later; it has not failed.
	TimedOut
	// Failed means a receipt was observed with a failed execution status.
	Failed
)

// Confirmation is the tagged result of AwaitReceipt.
type Confirmation struct {
	State   ConfirmationState
	Receipt *types.Receipt
	Err     error
}

// AwaitReceipt polls for the receipt of a broadcast transaction with a fixed
// interval and a bounded attempt count. The transaction itself cannot be
// cancelled; only this polling can be abandoned via ctx.
func (c *Client) AwaitReceipt(ctx context.Context, txHash common.Hash) Confirmation {
	var lastErr error
	for i := 0; i < c.pollAttempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return Confirmation{State: TimedOut, Err: ctx.Err()}
			case <-time.After(c.pollInterval):
			}
		}

		receipt, err := c.receipts.TransactionReceipt(ctx, txHash)
		if err != nil {
			if !errors.Is(err, ethereum.NotFound) {
				logger.For(ctx).Warnf("receipt poll for %s: %s", txHash.Hex(), err)
				lastErr = err
			}
			continue
		}

		if receipt.Status == types.ReceiptStatusFailed {
			return Confirmation{State: Failed, Receipt: receipt, Err: ErrRejectedByLedger{Reason: "transaction reverted"}}
		}
		return Confirmation{State: Confirmed, Receipt: receipt}
	}
	return Confirmation{State: TimedOut, Err: lastErr}
}
