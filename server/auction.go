package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/auctionhaus/go-auctionhaus/service/auction"
	"github.com/auctionhaus/go-auctionhaus/service/ledger"
	"github.com/auctionhaus/go-auctionhaus/service/persist"
	"github.com/auctionhaus/go-auctionhaus/util"
)

type placeBidInput struct {
	BidAmount float64         `json:"bidAmount" binding:"required,gt=0"`
	Bidder    persist.Address `json:"bidder" binding:"required,eth_addr"`
}

type sellerInput struct {
	SellerAddress persist.Address `json:"sellerAddress" binding:"required,eth_addr"`
}

type winnerInput struct {
	WinnerAddress persist.Address `json:"winnerAddress" binding:"required,eth_addr"`
}

// listAuctions serves the three listing views off one route: active by
// default, a seller's auctions with ?seller, a bidder's wins with ?winner.
func listAuctions(aggregator *auction.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var results []persist.Auction
		var err error
		switch {
		case c.Query("seller") != "":
			results, err = aggregator.BySeller(ctx, persist.Address(c.Query("seller")))
		case c.Query("winner") != "":
			results, err = aggregator.Wins(ctx, persist.Address(c.Query("winner")))
		default:
			results, err = aggregator.Active(ctx)
		}
		if err != nil {
			mapError(c, err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

func getAuction(aggregator *auction.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := aggregator.Resolve(c.Request.Context(), c.Param("id"))
		if err != nil {
			mapError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func listTransactions(aggregator *auction.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		bidder := persist.Address(c.Query("bidder"))
		if bidder == "" {
			util.ErrResponse(c, http.StatusBadRequest, util.ErrInvalidInput{Reason: "bidder query parameter is required"})
			return
		}

		results, err := aggregator.Transactions(c.Request.Context(), bidder)
		if err != nil {
			mapError(c, err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

func placeBid(engine *auction.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input placeBidInput
		if err := c.ShouldBindJSON(&input); err != nil {
			util.ErrResponse(c, http.StatusBadRequest, util.ErrInvalidInput{Reason: err.Error()})
			return
		}

		updated, err := engine.PlaceBid(c.Request.Context(), c.Param("id"), input.Bidder, input.BidAmount)
		if err != nil {
			mapError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func endAuction(engine *auction.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input sellerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			util.ErrResponse(c, http.StatusBadRequest, util.ErrInvalidInput{Reason: err.Error()})
			return
		}

		updated, err := engine.End(c.Request.Context(), c.Param("id"), input.SellerAddress)
		if err != nil {
			mapError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func claimFunds(engine *auction.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input sellerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			util.ErrResponse(c, http.StatusBadRequest, util.ErrInvalidInput{Reason: err.Error()})
			return
		}

		updated, err := engine.ClaimFunds(c.Request.Context(), c.Param("id"), input.SellerAddress)
		if err != nil {
			mapError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func claimItem(engine *auction.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input winnerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			util.ErrResponse(c, http.StatusBadRequest, util.ErrInvalidInput{Reason: err.Error()})
			return
		}

		updated, err := engine.ClaimItem(c.Request.Context(), c.Param("id"), input.WinnerAddress)
		if err != nil {
			mapError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// createAuction accepts a multipart form so the item image rides along with
// the listing fields in one request.
func createAuction(engine *auction.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		startingBid, err := strconv.ParseFloat(c.PostForm("startingBid"), 64)
		if err != nil {
			util.ErrResponse(c, http.StatusBadRequest, util.ErrInvalidInput{Reason: "startingBid must be a number"})
			return
		}
		durationSecs, err := strconv.ParseInt(c.PostForm("duration"), 10, 64)
		if err != nil {
			util.ErrResponse(c, http.StatusBadRequest, util.ErrInvalidInput{Reason: "duration must be a number of seconds"})
			return
		}

		input := auction.CreateInput{
			Title:       c.PostForm("title"),
			Description: c.PostForm("description"),
			Category:    c.PostForm("category"),
			StartingBid: startingBid,
			Duration:    time.Duration(durationSecs) * time.Second,
			Seller:      persist.Address(c.PostForm("sellerAddress")),
			SellerName:  c.PostForm("sellerName"),
		}

		if fileHeader, err := c.FormFile("image"); err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				util.ErrResponse(c, http.StatusBadRequest, util.ErrInvalidInput{Reason: "image could not be read"})
				return
			}
			defer file.Close()
			input.Image = file
			input.ImageName = fileHeader.Filename
		}

		created, err := engine.Create(c.Request.Context(), input)
		if err != nil {
			mapError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// mapError translates the service error taxonomy to HTTP statuses. Guard
// failures are the caller's fault; everything else, including an unreachable
// backend and a transaction the chain has not confirmed yet, is a 500. The
// timeout error carries its own message so callers can tell "still pending"
// from "failed."
func mapError(c *gin.Context, err error) {
	var (
		notFound     persist.ErrAuctionNotFoundByID
		bidTooLow    auction.ErrBidTooLow
		invalidInput util.ErrInvalidInput
		rejected     ledger.ErrRejectedByLedger
	)

	switch {
	case errors.As(err, &notFound):
		util.ErrResponse(c, http.StatusNotFound, err)
	case errors.Is(err, auction.ErrNotSeller), errors.Is(err, auction.ErrNotWinner), errors.Is(err, auction.ErrSellerBid):
		util.ErrResponse(c, http.StatusForbidden, err)
	case errors.As(err, &bidTooLow), errors.As(err, &invalidInput), errors.As(err, &rejected),
		errors.Is(err, auction.ErrAuctionEnded), errors.Is(err, auction.ErrAuctionNotEnded),
		errors.Is(err, auction.ErrNoWinningBid), errors.Is(err, auction.ErrNotOnLedger):
		util.ErrResponse(c, http.StatusBadRequest, err)
	default:
		util.ErrResponse(c, http.StatusInternalServerError, err)
	}
}
