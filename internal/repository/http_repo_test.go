package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-sync/internal/biddingerrors"
	"auction-sync/internal/models"
	"auction-sync/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "message": "ok", "data": data})
}

// fakeBackend serves the REST contract with canned answers
func fakeBackend(t *testing.T, seen chan<- *http.Request) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if seen != nil {
			seen <- c.Request.Clone(context.Background())
		}
		c.Next()
	})

	r.GET("/api/auctions/:id", func(c *gin.Context) {
		switch c.Param("id") {
		case "a1":
			ok(c, models.AuctionSnapshot{AuctionID: "a1", CurrentPrice: 1000000, BidCount: 3})
		case "html":
			c.Data(http.StatusBadGateway, "text/html", []byte("<html>Bad Gateway</html>"))
		case "garbage":
			c.Data(http.StatusOK, "application/json", []byte("{oops"))
		case "nodata":
			c.JSON(http.StatusOK, gin.H{"status": 200, "message": "ok"})
		default:
			c.JSON(http.StatusNotFound, gin.H{"status": 404, "error": "NOT_FOUND", "message": "auction not found"})
		}
	})
	r.POST("/api/bids", func(c *gin.Context) {
		var req models.PlaceBidRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "error": "BAD_REQUEST"})
			return
		}
		if req.Amount < 1000100 {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "error": "BID_TOO_LOW", "message": "bid must be at least 1,000,100"})
			return
		}
		ok(c, models.PlaceBidResult{BidID: "b1", AuctionID: req.AuctionID, Amount: req.Amount, CurrentPrice: req.Amount, BidCount: 4})
	})
	r.GET("/api/bids/my", func(c *gin.Context) {
		ok(c, models.Page[models.MyBidEntry]{
			Content: []models.MyBidEntry{{BidID: "b1", ProductID: "a1", Status: models.BidStatusBidding}},
			Page:    0, Size: 100, TotalElements: 1,
		})
	})
	r.GET("/api/wallet", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": 404, "error": "WALLET_NOT_FOUND"})
	})
	r.POST("/api/payments/charge", func(c *gin.Context) {
		var req models.ChargeRequest
		_ = c.ShouldBindJSON(&req)
		if c.GetHeader(IdempotencyHeader) != req.IdempotencyKey {
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "idempotency key mismatch"})
			return
		}
		if req.Amount > 500 {
			c.JSON(http.StatusPaymentRequired, gin.H{"status": 402, "message": "insufficient balance"})
			return
		}
		ok(c, models.ChargeResult{TransactionID: "tx1", BidID: req.BidID, Amount: req.Amount, PaidAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)})
	})
	r.GET("/api/notifications/my", func(c *gin.Context) {
		ok(c, models.Page[models.NotificationEntry]{Content: []models.NotificationEntry{{ID: "n1", Message: "hello"}}, TotalElements: 1})
	})
	return httptest.NewServer(r)
}

func newTestRepo(t *testing.T, baseURL string) *HTTPRepo {
	t.Helper()
	sess, err := session.New("", "u1")
	require.NoError(t, err)
	return NewHTTPRepo(baseURL, sess, time.Second)
}

func TestHTTPRepo_GetAuctionSnapshot(t *testing.T) {
	srv := fakeBackend(t, nil)
	defer srv.Close()
	repo := newTestRepo(t, srv.URL)
	ctx := context.Background()

	tests := []struct {
		name          string
		auctionID     string
		wantTransport bool
		wantDomain    string
		wantErr       error
	}{
		{name: "success", auctionID: "a1"},
		{name: "not_found_envelope", auctionID: "missing", wantDomain: "auction not found", wantErr: biddingerrors.ErrAuctionNotFound},
		{name: "html_error_page", auctionID: "html", wantTransport: true},
		{name: "unparseable_success_body", auctionID: "garbage", wantTransport: true},
		{name: "success_without_data", auctionID: "nodata", wantTransport: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap, err := repo.GetAuctionSnapshot(ctx, tc.auctionID)
			switch {
			case tc.wantTransport:
				require.True(t, biddingerrors.IsTransport(err), "got %v", err)
			case tc.wantDomain != "":
				msg, isDomain := biddingerrors.DomainMessage(err)
				require.True(t, isDomain)
				require.Equal(t, tc.wantDomain, msg)
				require.ErrorIs(t, err, tc.wantErr)
			default:
				require.NoError(t, err)
				require.Equal(t, models.AuctionSnapshot{AuctionID: "a1", CurrentPrice: 1000000, BidCount: 3}, snap)
			}
		})
	}
}

func TestHTTPRepo_PlaceBid(t *testing.T) {
	srv := fakeBackend(t, nil)
	defer srv.Close()
	repo := newTestRepo(t, srv.URL)

	res, err := repo.PlaceBid(context.Background(), models.PlaceBidRequest{AuctionID: "a1", Amount: 1000100})
	require.NoError(t, err)
	require.Equal(t, "b1", res.BidID)
	require.Equal(t, 4, res.BidCount)

	_, err = repo.PlaceBid(context.Background(), models.PlaceBidRequest{AuctionID: "a1", Amount: 1})
	var de *biddingerrors.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, http.StatusBadRequest, de.Status)
	require.Equal(t, "bid must be at least 1,000,100", de.Message)
}

func TestHTTPRepo_WalletMissing(t *testing.T) {
	srv := fakeBackend(t, nil)
	defer srv.Close()
	repo := newTestRepo(t, srv.URL)

	_, err := repo.GetWalletBalance(context.Background())
	require.ErrorIs(t, err, biddingerrors.ErrWalletNotFound)
	msg, _ := biddingerrors.DomainMessage(err)
	require.Equal(t, "WALLET_NOT_FOUND", msg, "error field is used when message is absent")
}

func TestHTTPRepo_ChargeSendsIdempotencyKey(t *testing.T) {
	seen := make(chan *http.Request, 4)
	srv := fakeBackend(t, seen)
	defer srv.Close()

	sess, err := session.New("", "u1")
	require.NoError(t, err)
	repo := NewHTTPRepo(srv.URL, sess, 0)

	res, err := repo.Charge(context.Background(), models.ChargeRequest{BidID: "b1", Amount: 300, IdempotencyKey: "key-123"})
	require.NoError(t, err)
	require.Equal(t, "tx1", res.TransactionID)
	req := <-seen
	require.Equal(t, "key-123", req.Header.Get(IdempotencyHeader))

	_, err = repo.Charge(context.Background(), models.ChargeRequest{BidID: "b1", Amount: 900, IdempotencyKey: "key-456"})
	require.ErrorIs(t, err, biddingerrors.ErrInsufficientBalance)
}

func TestHTTPRepo_Lists(t *testing.T) {
	srv := fakeBackend(t, nil)
	defer srv.Close()
	repo := newTestRepo(t, srv.URL)

	bids, err := repo.GetMyBids(context.Background(), 0, MyBidsPageSize)
	require.NoError(t, err)
	require.Len(t, bids.Content, 1)
	require.Equal(t, "a1", bids.Content[0].ProductID)

	notes, err := repo.GetMyNotifications(context.Background(), 0, 20)
	require.NoError(t, err)
	require.Equal(t, "n1", notes.Content[0].ID)
}

func TestHTTPRepo_Unreachable(t *testing.T) {
	repo := newTestRepo(t, "http://127.0.0.1:1")
	_, err := repo.GetWalletBalance(context.Background())
	require.True(t, biddingerrors.IsTransport(err))
}
