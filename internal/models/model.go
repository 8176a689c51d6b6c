package models

import (
	"encoding/json"
	"time"
)

// MinimumBidIncrement is the fixed step a new bid must clear above the current price
const MinimumBidIncrement int64 = 100

// Push message types on the per-user my-bids topic
const (
	MessageBidUpdate  = "BID_UPDATE"
	MessageAuctionEnd = "AUCTION_END"
)

// PushMessage is the frame delivered on every push topic
type PushMessage struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	Content   string          `json:"content,omitempty"`
}

// AuctionSnapshot is a point-in-time REST read of an auction
type AuctionSnapshot struct {
	AuctionID    string     `json:"auctionId"`
	CurrentPrice int64      `json:"currentPrice"`
	BidCount     int        `json:"bidCount"`
	Status       string     `json:"status,omitempty"`
	EndTime      *time.Time `json:"endTime,omitempty"`
}

// PriceUpdate is the push delta on an auction's price topic
type PriceUpdate struct {
	CurrentPrice int64  `json:"currentPrice"`
	BidCount     int    `json:"bidCount"`
	LastBidder   string `json:"lastBidder,omitempty"`
}

// TimerUpdate is the push delta on an auction's timer topic
type TimerUpdate struct {
	TimeLeftSeconds int64 `json:"timeLeft"`
	IsEndingSoon    bool  `json:"isEndingSoon"`
}

// AuctionView is what one auction screen shows
type AuctionView struct {
	AuctionID       string    `json:"auctionId"`
	CurrentPrice    int64     `json:"currentPrice"`
	BidCount        int       `json:"bidCount"`
	LastBidder      string    `json:"lastBidder,omitempty"`
	TimeLeftSeconds *int64    `json:"timeLeftSeconds,omitempty"`
	IsEndingSoon    bool      `json:"isEndingSoon"`
	PriceChanged    bool      `json:"priceChanged"`
	CountChanged    bool      `json:"countChanged"`
	ChannelStatus   string    `json:"channelStatus,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TimeLeft returns the remaining time if the timer topic has reported one
func (v AuctionView) TimeLeft() (time.Duration, bool) {
	if v.TimeLeftSeconds == nil {
		return 0, false
	}
	return time.Duration(*v.TimeLeftSeconds) * time.Second, true
}

// BidStatus is the display status of one of the user's bids
type BidStatus string

const (
	BidStatusBidding    BidStatus = "BIDDING"
	BidStatusSuccessful BidStatus = "SUCCESSFUL"
	BidStatusFailed     BidStatus = "FAILED"
)

// Backend product statuses
const (
	ProductStatusOpen   = "경매중"
	ProductStatusWon    = "낙찰"
	ProductStatusClosed = "경매종료"
)

// MyBidEntry is one of the current user's bids
type MyBidEntry struct {
	BidID         string     `json:"bidId"`
	ProductID     string     `json:"productId"`
	ProductName   string     `json:"productName"`
	MyBidPrice    int64      `json:"myBidPrice"`
	CurrentPrice  int64      `json:"currentPrice"`
	BidCount      int        `json:"bidCount"`
	IsWinning     bool       `json:"isWinning"`
	IsOutbid      bool       `json:"isOutbid"`
	Status        BidStatus  `json:"status"`
	ProductStatus string     `json:"productStatus"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

// Payable reports whether the entry is a won, unpaid bid
func (e MyBidEntry) Payable() bool {
	if e.PaidAt != nil {
		return false
	}
	closed := e.ProductStatus == ProductStatusWon || e.Status == BidStatusSuccessful
	return closed && e.IsWinning
}

// BidUpdate is the BID_UPDATE payload on the my-bids topic
type BidUpdate struct {
	BidID        string `json:"bidId,omitempty"`
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName,omitempty"`
	CurrentPrice int64  `json:"currentPrice"`
	BidCount     int    `json:"bidCount"`
	MyBidPrice   int64  `json:"myBidPrice,omitempty"`
	IsWinning    bool   `json:"isWinning"`
}

// AuctionEnd is the AUCTION_END payload on the my-bids topic
type AuctionEnd struct {
	ProductID  string `json:"productId"`
	IsWon      bool   `json:"isWon"`
	FinalPrice int64  `json:"finalPrice"`
}

// NotificationType classifies a user-facing notification
type NotificationType string

const (
	NotificationBidSuccess      NotificationType = "BID_SUCCESS"
	NotificationBidFailed       NotificationType = "BID_FAILED"
	NotificationAuctionWon      NotificationType = "AUCTION_WON"
	NotificationAuctionLost     NotificationType = "AUCTION_LOST"
	NotificationAuctionEnding   NotificationType = "AUCTION_ENDING"
	NotificationPaymentReminder NotificationType = "PAYMENT_REMINDER"
	NotificationSystem          NotificationType = "SYSTEM"
)

// NotificationEntry is one item of the notification list
type NotificationEntry struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	ProductID string           `json:"productId,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	IsRead    bool             `json:"isRead"`
}

// NotificationPayload is the data part of a message on the notifications topic
type NotificationPayload struct {
	ID        string `json:"id,omitempty"`
	Type      string `json:"type,omitempty"`
	Title     string `json:"title,omitempty"`
	Message   string `json:"message,omitempty"`
	ProductID string `json:"productId,omitempty"`
}

// PlaceBidRequest is sent to the backend to register a bid
type PlaceBidRequest struct {
	AuctionID string `json:"auctionId"`
	Amount    int64  `json:"amount"`
}

// PlaceBidResult is the backend's answer to a registered bid
type PlaceBidResult struct {
	BidID        string    `json:"bidId"`
	AuctionID    string    `json:"auctionId"`
	Amount       int64     `json:"amount"`
	CurrentPrice int64     `json:"currentPrice"`
	BidCount     int       `json:"bidCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// WalletBalance is the user's spendable balance
type WalletBalance struct {
	Balance int64 `json:"balance"`
}

// ChargeRequest pays a won bid from the wallet
type ChargeRequest struct {
	BidID          string `json:"bidId"`
	Amount         int64  `json:"amount"`
	IdempotencyKey string `json:"idempotencyKey"`
}

// ChargeResult is the backend's answer to a successful charge
type ChargeResult struct {
	TransactionID string    `json:"transactionId"`
	BidID         string    `json:"bidId"`
	Amount        int64     `json:"amount"`
	PaidAt        time.Time `json:"paidAt"`
}

// Page is a page of a paginated backend list
type Page[T any] struct {
	Content       []T `json:"content"`
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
}
