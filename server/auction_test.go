package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/auctionhaus/go-auctionhaus/service/auction"
	"github.com/auctionhaus/go-auctionhaus/service/ledger"
	"github.com/auctionhaus/go-auctionhaus/service/metadata"
	"github.com/auctionhaus/go-auctionhaus/service/persist"
	"github.com/auctionhaus/go-auctionhaus/service/rtc"
	"github.com/auctionhaus/go-auctionhaus/util"
)

func TestMapErrorStatuses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"auction not found", persist.ErrAuctionNotFoundByID{ID: "QmX"}, http.StatusNotFound},
		{"not seller", auction.ErrNotSeller, http.StatusForbidden},
		{"not winner", auction.ErrNotWinner, http.StatusForbidden},
		{"seller bidding", auction.ErrSellerBid, http.StatusForbidden},
		{"bid too low", auction.ErrBidTooLow{Amount: 1, Minimum: 2}, http.StatusBadRequest},
		{"already ended", auction.ErrAuctionEnded, http.StatusBadRequest},
		{"not ended yet", auction.ErrAuctionNotEnded, http.StatusBadRequest},
		{"no winning bid", auction.ErrNoWinningBid, http.StatusBadRequest},
		{"not on ledger", auction.ErrNotOnLedger, http.StatusBadRequest},
		{"invalid input", util.ErrInvalidInput{Reason: "bad"}, http.StatusBadRequest},
		{"ledger rejection", ledger.ErrRejectedByLedger{Reason: "revert"}, http.StatusBadRequest},
		{"confirmation timeout", auction.ErrConfirmationTimeout{TxHash: "0xabc"}, http.StatusInternalServerError},
		{"ownership mismatch", auction.ErrOwnershipTransferMismatch{}, http.StatusInternalServerError},
		{"ledger unreachable", ledger.ErrUnreachableLedger{Err: errors.New("down")}, http.StatusInternalServerError},
		{"store unreachable", metadata.ErrUnreachable{Err: errors.New("down")}, http.StatusInternalServerError},
		{"anything else", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			mapError(c, tc.err)

			assert.Equal(t, tc.want, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "error")
		})
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetDefaults()

	// nil services are safe here: these tests only exercise paths that
	// fail validation before any service is touched
	return handlersInit(gin.New(), nil, nil, rtc.NewHub())
}

func TestHealthcheck(t *testing.T) {
	router := newTestRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "healthy")
}

func TestPlaceBidRejectsMalformedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/auctions/QmX/bid", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPlaceBidRejectsInvalidAddress(t *testing.T) {
	router := newTestRouter()

	body := `{"bidAmount": 2, "bidder": "not-an-address"}`
	req := httptest.NewRequest(http.MethodPost, "/auctions/QmX/bid", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestEndRequiresSellerAddress(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/auctions/QmX/end", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestClaimItemRequiresWinnerAddress(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/auctions/QmX/claim-item", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "WinnerAddress")
}

func TestTransactionsRequireBidderParam(t *testing.T) {
	router := newTestRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/transactions", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "bidder")
}

func TestCreateRejectsNonNumericBid(t *testing.T) {
	router := newTestRouter()

	form := "title=thing&startingBid=abc&duration=60"
	req := httptest.NewRequest(http.MethodPost, "/auctions", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "startingBid")
}
