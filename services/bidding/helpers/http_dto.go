package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"auction-sync/internal/models"
	"auction-sync/internal/settlement"
)

// AmountInput is a bid amount as typed by the user. JSON strings ("1,000,100")
// and numbers are both accepted.
type AmountInput string

func (a *AmountInput) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*a = AmountInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("amount must be a string or number: %w", err)
	}
	*a = AmountInput(n.String())
	return nil
}

// Request/Response DTOs
type MountViewRequest struct {
	InitialPrice int64 `json:"initial_price" binding:"gte=0"`
}

type PlaceBidRequest struct {
	Amount AmountInput `json:"amount" binding:"required"`
}

type PayRequest struct {
	ConfirmedAmount int64 `json:"confirmed_amount" binding:"required,gt=0"`
}

type ViewResponse struct {
	AuctionID       string `json:"auction_id"`
	CurrentPrice    int64  `json:"current_price"`
	BidCount        int    `json:"bid_count"`
	LastBidder      string `json:"last_bidder,omitempty"`
	TimeLeftSeconds *int64 `json:"time_left_seconds,omitempty"`
	IsEndingSoon    bool   `json:"is_ending_soon"`
	PriceChanged    bool   `json:"price_changed"`
	CountChanged    bool   `json:"count_changed"`
	ChannelStatus   string `json:"channel_status,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

type BidResponse struct {
	BidID        string `json:"bid_id"`
	AuctionID    string `json:"auction_id"`
	Amount       int64  `json:"amount"`
	CurrentPrice int64  `json:"current_price"`
	BidCount     int    `json:"bid_count"`
	CreatedAt    string `json:"created_at"`
}

type MyBidResponse struct {
	BidID         string `json:"bid_id"`
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	MyBidPrice    int64  `json:"my_bid_price"`
	CurrentPrice  int64  `json:"current_price"`
	BidCount      int    `json:"bid_count"`
	IsWinning     bool   `json:"is_winning"`
	IsOutbid      bool   `json:"is_outbid"`
	Status        string `json:"status"`
	ProductStatus string `json:"product_status"`
	PaidAt        string `json:"paid_at,omitempty"`
	Payable       bool   `json:"payable"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	ProductID string `json:"product_id,omitempty"`
	Timestamp string `json:"timestamp"`
	IsRead    bool   `json:"is_read"`
}

type NotificationsResponse struct {
	Items       []NotificationResponse `json:"items"`
	UnreadCount int                    `json:"unread_count"`
}

type PaymentResponse struct {
	BidID         string `json:"bid_id"`
	Amount        int64  `json:"amount"`
	TransactionID string `json:"transaction_id,omitempty"`
	PaidAt        string `json:"paid_at,omitempty"`
	RedirectURL   string `json:"redirect_url,omitempty"`
}

type HealthResponse struct {
	Connected bool   `json:"connected"`
	LastError string `json:"last_error,omitempty"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToViewResponse(v models.AuctionView) ViewResponse {
	return ViewResponse{
		AuctionID:       v.AuctionID,
		CurrentPrice:    v.CurrentPrice,
		BidCount:        v.BidCount,
		LastBidder:      v.LastBidder,
		TimeLeftSeconds: v.TimeLeftSeconds,
		IsEndingSoon:    v.IsEndingSoon,
		PriceChanged:    v.PriceChanged,
		CountChanged:    v.CountChanged,
		ChannelStatus:   v.ChannelStatus,
		UpdatedAt:       formatTime(v.UpdatedAt),
	}
}

func ToBidResponse(b models.PlaceBidResult) BidResponse {
	return BidResponse{
		BidID:        b.BidID,
		AuctionID:    b.AuctionID,
		Amount:       b.Amount,
		CurrentPrice: b.CurrentPrice,
		BidCount:     b.BidCount,
		CreatedAt:    formatTime(b.CreatedAt),
	}
}

func ToMyBidResponses(entries []models.MyBidEntry) []MyBidResponse {
	out := make([]MyBidResponse, 0, len(entries))
	for _, e := range entries {
		r := MyBidResponse{
			BidID:         e.BidID,
			ProductID:     e.ProductID,
			ProductName:   e.ProductName,
			MyBidPrice:    e.MyBidPrice,
			CurrentPrice:  e.CurrentPrice,
			BidCount:      e.BidCount,
			IsWinning:     e.IsWinning,
			IsOutbid:      e.IsOutbid,
			Status:        string(e.Status),
			ProductStatus: e.ProductStatus,
			Payable:       e.Payable(),
		}
		if e.PaidAt != nil {
			r.PaidAt = formatTime(*e.PaidAt)
		}
		out = append(out, r)
	}
	return out
}

func ToPaymentResponse(res settlement.Result) PaymentResponse {
	out := PaymentResponse{BidID: res.BidID, Amount: res.Amount, RedirectURL: res.RedirectURL}
	if res.Charge != nil {
		out.TransactionID = res.Charge.TransactionID
		out.PaidAt = formatTime(res.Charge.PaidAt)
	}
	return out
}

func ToNotificationsResponse(items []models.NotificationEntry, unread int) NotificationsResponse {
	out := NotificationsResponse{Items: make([]NotificationResponse, 0, len(items)), UnreadCount: unread}
	for _, n := range items {
		out.Items = append(out.Items, NotificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			ProductID: n.ProductID,
			Timestamp: formatTime(n.Timestamp),
			IsRead:    n.IsRead,
		})
	}
	return out
}
