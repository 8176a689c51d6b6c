package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"auction-sync/internal/biddingerrors"
	"auction-sync/internal/models"
	"auction-sync/internal/session"
	"auction-sync/utils"
)

// IdempotencyHeader carries the charge idempotency key
const IdempotencyHeader = "Idempotency-Key"

// envelope is the backend's success body: {status, message, data}
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// errorEnvelope is the backend's (or proxy's) normalized error body
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// HTTPRepo is the REST client for the marketplace backend
type HTTPRepo struct {
	baseURL string
	client  *http.Client
	session *session.Session
}

// NewHTTPRepo creates a client for baseURL acting as sess
func NewHTTPRepo(baseURL string, sess *session.Session, timeout time.Duration) *HTTPRepo {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPRepo{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		session: sess,
	}
}

func (h *HTTPRepo) do(ctx context.Context, op, method, path string, body any, header http.Header, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header[k] = v
	}
	h.session.Authorize(req)

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return &biddingerrors.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &biddingerrors.TransportError{Op: op, Err: err}
	}
	utils.Debug("backend call", map[string]any{
		"op":      op,
		"method":  method,
		"path":    path,
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyFailure(op, resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &biddingerrors.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return &biddingerrors.TransportError{Op: op, Err: errors.New("response has no data")}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &biddingerrors.TransportError{Op: op, Err: fmt.Errorf("decode data: %w", err)}
	}
	return nil
}

// classifyFailure turns a non-2xx response into a DomainError when the body is a
// JSON error envelope, and a TransportError otherwise (HTML error pages, empty bodies).
func classifyFailure(op string, status int, raw []byte) error {
	var env errorEnvelope
	if len(raw) == 0 || json.Unmarshal(raw, &env) != nil {
		return &biddingerrors.TransportError{Op: op, Err: fmt.Errorf("unexpected status %d with unparseable body", status)}
	}
	msg := env.Message
	if msg == "" {
		msg = env.Error
	}
	return &biddingerrors.DomainError{Status: status, Message: msg, Err: sentinelFor(op, status)}
}

func sentinelFor(op string, status int) error {
	switch {
	case status == http.StatusNotFound && op == opWalletBalance:
		return biddingerrors.ErrWalletNotFound
	case status == http.StatusNotFound && op == opAuctionSnapshot:
		return biddingerrors.ErrAuctionNotFound
	case status == http.StatusPaymentRequired:
		return biddingerrors.ErrInsufficientBalance
	default:
		return nil
	}
}

const (
	opAuctionSnapshot = "get auction snapshot"
	opPlaceBid        = "place bid"
	opMyBids          = "get my bids"
	opWalletBalance   = "get wallet balance"
	opCharge          = "charge"
	opNotifications   = "get my notifications"
)

func pageQuery(page, size int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q.Encode()
}

// GetAuctionSnapshot handles GET /api/auctions/:id
func (h *HTTPRepo) GetAuctionSnapshot(ctx context.Context, auctionID string) (models.AuctionSnapshot, error) {
	var snap models.AuctionSnapshot
	err := h.do(ctx, opAuctionSnapshot, http.MethodGet, "/api/auctions/"+url.PathEscape(auctionID), nil, nil, &snap)
	return snap, err
}

// PlaceBid handles POST /api/bids
func (h *HTTPRepo) PlaceBid(ctx context.Context, req models.PlaceBidRequest) (models.PlaceBidResult, error) {
	var res models.PlaceBidResult
	err := h.do(ctx, opPlaceBid, http.MethodPost, "/api/bids", req, nil, &res)
	return res, err
}

// GetMyBids handles GET /api/bids/my
func (h *HTTPRepo) GetMyBids(ctx context.Context, page, size int) (models.Page[models.MyBidEntry], error) {
	var p models.Page[models.MyBidEntry]
	err := h.do(ctx, opMyBids, http.MethodGet, "/api/bids/my?"+pageQuery(page, size), nil, nil, &p)
	return p, err
}

// GetWalletBalance handles GET /api/wallet
func (h *HTTPRepo) GetWalletBalance(ctx context.Context) (models.WalletBalance, error) {
	var w models.WalletBalance
	err := h.do(ctx, opWalletBalance, http.MethodGet, "/api/wallet", nil, nil, &w)
	return w, err
}

// Charge handles POST /api/payments/charge. The idempotency key travels both as a
// header and in the body.
func (h *HTTPRepo) Charge(ctx context.Context, req models.ChargeRequest) (models.ChargeResult, error) {
	header := http.Header{}
	header.Set(IdempotencyHeader, req.IdempotencyKey)
	var res models.ChargeResult
	err := h.do(ctx, opCharge, http.MethodPost, "/api/payments/charge", req, header, &res)
	return res, err
}

// GetMyNotifications handles GET /api/notifications/my
func (h *HTTPRepo) GetMyNotifications(ctx context.Context, page, size int) (models.Page[models.NotificationEntry], error) {
	var p models.Page[models.NotificationEntry]
	err := h.do(ctx, opNotifications, http.MethodGet, "/api/notifications/my?"+pageQuery(page, size), nil, nil, &p)
	return p, err
}
