package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"auction-sync/internal/biddingerrors"
	"auction-sync/internal/channel"
	"auction-sync/internal/models"
	"auction-sync/utils"

	"github.com/dustin/go-humanize"
)

// endingSoonThreshold marks the countdown as "ending soon" on the timer topic
const endingSoonThreshold = 5 * time.Minute

// Publisher receives the push messages the in-memory backend emits
type Publisher func(topic string, msg models.PushMessage)

type storedAuction struct {
	id            string
	title         string
	startingPrice int64
	currentPrice  int64
	bidCount      int
	topBidder     string
	topBidID      string
	ended         bool
}

type storedBid struct {
	models.PlaceBidResult
	UserID string
	PaidAt *time.Time
}

type outbound struct {
	topic string
	msg   models.PushMessage
}

// MemoryRepo is a concurrency-safe in-memory backend. It serves the REST contract
// for any user through Client and emits the push traffic a real backend would.
type MemoryRepo struct {
	mu            sync.RWMutex
	auctions      map[string]*storedAuction              // key: auctionID
	bids          map[string]*storedBid                  // key: bidID
	userBids      map[string][]string                    // key: userID -> bidIDs in placement order
	wallets       map[string]int64                       // key: userID; absent means no wallet
	charges       map[string]models.ChargeResult         // key: idempotency key
	notifications map[string][]models.NotificationEntry // key: userID, newest first
	publish       Publisher
	now           func() time.Time
}

// NewMemoryRepo creates a new in-memory backend
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:      make(map[string]*storedAuction),
		bids:          make(map[string]*storedBid),
		userBids:      make(map[string][]string),
		wallets:       make(map[string]int64),
		charges:       make(map[string]models.ChargeResult),
		notifications: make(map[string][]models.NotificationEntry),
		publish:       func(string, models.PushMessage) {},
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// SetPublisher routes emitted push messages to p
func (r *MemoryRepo) SetPublisher(p Publisher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p == nil {
		p = func(string, models.PushMessage) {}
	}
	r.publish = p
}

// AddAuction opens an auction at startingPrice
func (r *MemoryRepo) AddAuction(auctionID, title string, startingPrice int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[auctionID] = &storedAuction{
		id:            auctionID,
		title:         title,
		startingPrice: startingPrice,
		currentPrice:  startingPrice,
	}
}

// SetWallet creates or overwrites a user's wallet
func (r *MemoryRepo) SetWallet(userID string, balance int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets[userID] = balance
}

func domainErr(status int, message string, sentinel error) error {
	return &biddingerrors.DomainError{Status: status, Message: message, Err: sentinel}
}

func (r *MemoryRepo) flush(out []outbound) {
	r.mu.RLock()
	publish := r.publish
	r.mu.RUnlock()
	for _, o := range out {
		publish(o.topic, o.msg)
	}
}

// Snapshot returns the current REST view of an auction
func (r *MemoryRepo) Snapshot(auctionID string) (models.AuctionSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return models.AuctionSnapshot{}, domainErr(http.StatusNotFound, "auction not found", biddingerrors.ErrAuctionNotFound)
	}
	status := models.ProductStatusOpen
	if a.ended {
		status = models.ProductStatusClosed
		if a.topBidder != "" {
			status = models.ProductStatusWon
		}
	}
	return models.AuctionSnapshot{
		AuctionID:    a.id,
		CurrentPrice: a.currentPrice,
		BidCount:     a.bidCount,
		Status:       status,
	}, nil
}

// PlaceBid records a bid by userID, enforcing the minimum increment server-side
func (r *MemoryRepo) PlaceBid(userID string, req models.PlaceBidRequest) (models.PlaceBidResult, error) {
	r.mu.Lock()

	a, ok := r.auctions[req.AuctionID]
	if !ok {
		r.mu.Unlock()
		return models.PlaceBidResult{}, domainErr(http.StatusNotFound, "auction not found", biddingerrors.ErrAuctionNotFound)
	}
	if a.ended {
		r.mu.Unlock()
		return models.PlaceBidResult{}, domainErr(http.StatusConflict, "auction already ended", biddingerrors.ErrAuctionEnded)
	}
	if minimum := a.currentPrice + models.MinimumBidIncrement; req.Amount < minimum {
		r.mu.Unlock()
		return models.PlaceBidResult{}, domainErr(http.StatusBadRequest,
			fmt.Sprintf("bid must be at least %s", humanize.Comma(minimum)), biddingerrors.ErrBidTooLow)
	}

	previous := a.topBidder
	a.currentPrice = req.Amount
	a.bidCount++
	a.topBidder = userID

	bid := &storedBid{
		PlaceBidResult: models.PlaceBidResult{
			BidID:        utils.GenerateID(),
			AuctionID:    a.id,
			Amount:       req.Amount,
			CurrentPrice: a.currentPrice,
			BidCount:     a.bidCount,
			CreatedAt:    r.now(),
		},
		UserID: userID,
	}
	a.topBidID = bid.BidID
	r.bids[bid.BidID] = bid
	r.userBids[userID] = append(r.userBids[userID], bid.BidID)

	out := []outbound{
		{topic: channel.AuctionTopic(a.id), msg: pushOf("PRICE_UPDATE", models.PriceUpdate{
			CurrentPrice: a.currentPrice,
			BidCount:     a.bidCount,
			LastBidder:   userID,
		}, "", r.now())},
		{topic: channel.MyBidsTopic(userID), msg: pushOf(models.MessageBidUpdate, models.BidUpdate{
			BidID:        bid.BidID,
			ProductID:    a.id,
			ProductName:  a.title,
			CurrentPrice: a.currentPrice,
			BidCount:     a.bidCount,
			MyBidPrice:   req.Amount,
			IsWinning:    true,
		}, "", r.now())},
	}
	out = append(out, r.notifyLocked(userID, a.id, "Bid placed",
		fmt.Sprintf("Your bid of %s on %s was placed.", humanize.Comma(req.Amount), a.title))...)

	if previous != "" && previous != userID {
		out = append(out, outbound{topic: channel.MyBidsTopic(previous), msg: pushOf(models.MessageBidUpdate, models.BidUpdate{
			ProductID:    a.id,
			ProductName:  a.title,
			CurrentPrice: a.currentPrice,
			BidCount:     a.bidCount,
			MyBidPrice:   r.lastBidLocked(previous, a.id),
			IsWinning:    false,
		}, "", r.now())})
		out = append(out, r.notifyLocked(previous, a.id, "Outbid",
			fmt.Sprintf("You were outbid on %s. The current price is %s.", a.title, humanize.Comma(a.currentPrice)))...)
	}
	result := bid.PlaceBidResult
	r.mu.Unlock()

	r.flush(out)
	return result, nil
}

// EndAuction closes an auction and tells every bidder whether they won
func (r *MemoryRepo) EndAuction(auctionID string) error {
	r.mu.Lock()

	a, ok := r.auctions[auctionID]
	if !ok {
		r.mu.Unlock()
		return domainErr(http.StatusNotFound, "auction not found", biddingerrors.ErrAuctionNotFound)
	}
	if a.ended {
		r.mu.Unlock()
		return nil
	}
	a.ended = true

	var out []outbound
	for _, userID := range r.biddersLocked(auctionID) {
		won := userID == a.topBidder
		out = append(out, outbound{topic: channel.MyBidsTopic(userID), msg: pushOf(models.MessageAuctionEnd, models.AuctionEnd{
			ProductID:  a.id,
			IsWon:      won,
			FinalPrice: a.currentPrice,
		}, "", r.now())})
		if won {
			out = append(out, r.notifyLocked(userID, a.id, "Auction won",
				fmt.Sprintf("You won %s at %s. Please complete the payment.", a.title, humanize.Comma(a.currentPrice)))...)
		} else {
			out = append(out, r.notifyLocked(userID, a.id, "Auction ended",
				fmt.Sprintf("The auction for %s has ended and you lost to a higher bid.", a.title))...)
		}
	}
	r.mu.Unlock()

	r.flush(out)
	return nil
}

// Tick publishes the countdown of an auction on its timer topic
func (r *MemoryRepo) Tick(auctionID string, left time.Duration) {
	r.flush([]outbound{{topic: channel.TimerTopic(auctionID), msg: pushOf("TIMER", models.TimerUpdate{
		TimeLeftSeconds: int64(left / time.Second),
		IsEndingSoon:    left <= endingSoonThreshold,
	}, "", r.now())}})
}

// MyBids returns one entry per auction the user bid on, latest first
func (r *MemoryRepo) MyBids(userID string, page, size int) models.Page[models.MyBidEntry] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var entries []models.MyBidEntry
	ids := r.userBids[userID]
	for i := len(ids) - 1; i >= 0; i-- {
		b := r.bids[ids[i]]
		if seen[b.AuctionID] {
			continue
		}
		seen[b.AuctionID] = true
		entries = append(entries, r.entryLocked(b))
	}
	return paginate(entries, page, size)
}

func (r *MemoryRepo) entryLocked(b *storedBid) models.MyBidEntry {
	a := r.auctions[b.AuctionID]
	winning := a.topBidder == b.UserID
	e := models.MyBidEntry{
		BidID:         b.BidID,
		ProductID:     a.id,
		ProductName:   a.title,
		MyBidPrice:    b.Amount,
		CurrentPrice:  a.currentPrice,
		BidCount:      a.bidCount,
		IsWinning:     winning,
		IsOutbid:      !winning && !a.ended && a.currentPrice != b.Amount,
		Status:        models.BidStatusBidding,
		ProductStatus: models.ProductStatusOpen,
		PaidAt:        b.PaidAt,
	}
	if a.ended {
		e.Status = models.BidStatusFailed
		e.ProductStatus = models.ProductStatusClosed
		if winning {
			e.Status = models.BidStatusSuccessful
			e.ProductStatus = models.ProductStatusWon
		}
	}
	return e
}

// Balance returns the user's wallet balance
func (r *MemoryRepo) Balance(userID string) (models.WalletBalance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	balance, ok := r.wallets[userID]
	if !ok {
		return models.WalletBalance{}, domainErr(http.StatusNotFound, "wallet not found", biddingerrors.ErrWalletNotFound)
	}
	return models.WalletBalance{Balance: balance}, nil
}

// Charge pays a won bid. A repeated idempotency key returns the original result
// without debiting again.
func (r *MemoryRepo) Charge(userID string, req models.ChargeRequest) (models.ChargeResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.IdempotencyKey == "" {
		return models.ChargeResult{}, domainErr(http.StatusBadRequest, "idempotency key required", biddingerrors.ErrInvalidBid)
	}
	if prev, ok := r.charges[req.IdempotencyKey]; ok {
		return prev, nil
	}

	b, ok := r.bids[req.BidID]
	if !ok || b.UserID != userID {
		return models.ChargeResult{}, domainErr(http.StatusNotFound, "bid not found", biddingerrors.ErrBidNotFound)
	}
	a := r.auctions[b.AuctionID]
	if !a.ended || a.topBidID != b.BidID {
		return models.ChargeResult{}, domainErr(http.StatusConflict, "bid is not a winning bid", biddingerrors.ErrNotPayable)
	}
	if b.PaidAt != nil {
		return models.ChargeResult{}, domainErr(http.StatusConflict, "bid already paid", biddingerrors.ErrNotPayable)
	}
	if req.Amount != b.Amount {
		return models.ChargeResult{}, domainErr(http.StatusBadRequest, "amount does not match winning bid", biddingerrors.ErrInvalidBid)
	}
	balance, ok := r.wallets[userID]
	if !ok {
		return models.ChargeResult{}, domainErr(http.StatusNotFound, "wallet not found", biddingerrors.ErrWalletNotFound)
	}
	if balance < req.Amount {
		return models.ChargeResult{}, domainErr(http.StatusPaymentRequired, "insufficient balance", biddingerrors.ErrInsufficientBalance)
	}

	paidAt := r.now()
	r.wallets[userID] = balance - req.Amount
	b.PaidAt = &paidAt

	result := models.ChargeResult{
		TransactionID: utils.GenerateID(),
		BidID:         b.BidID,
		Amount:        req.Amount,
		PaidAt:        paidAt,
	}
	r.charges[req.IdempotencyKey] = result
	return result, nil
}

// Notifications returns the user's notification history, newest first
func (r *MemoryRepo) Notifications(userID string, page, size int) models.Page[models.NotificationEntry] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return paginate(r.notifications[userID], page, size)
}

func (r *MemoryRepo) notifyLocked(userID, auctionID, title, message string) []outbound {
	n := models.NotificationEntry{
		ID:        utils.GenerateID(),
		Title:     title,
		Message:   message,
		ProductID: auctionID,
		Timestamp: r.now(),
	}
	r.notifications[userID] = append([]models.NotificationEntry{n}, r.notifications[userID]...)
	return []outbound{{topic: channel.NotificationsTopic(userID), msg: pushOf("NOTIFICATION", models.NotificationPayload{
		ID:        n.ID,
		Title:     title,
		Message:   message,
		ProductID: auctionID,
	}, message, n.Timestamp)}}
}

func (r *MemoryRepo) lastBidLocked(userID, auctionID string) int64 {
	ids := r.userBids[userID]
	for i := len(ids) - 1; i >= 0; i-- {
		if b := r.bids[ids[i]]; b.AuctionID == auctionID {
			return b.Amount
		}
	}
	return 0
}

func (r *MemoryRepo) biddersLocked(auctionID string) []string {
	var users []string
	for userID, ids := range r.userBids {
		for _, id := range ids {
			if r.bids[id].AuctionID == auctionID {
				users = append(users, userID)
				break
			}
		}
	}
	return users
}

func pushOf(typ string, data any, content string, at time.Time) models.PushMessage {
	raw, err := json.Marshal(data)
	if err != nil {
		utils.Error("memory backend: marshal push payload", map[string]any{"type": typ, "error": err.Error()})
	}
	return models.PushMessage{Type: typ, Data: raw, Timestamp: at, Content: content}
}

func paginate[T any](items []T, page, size int) models.Page[T] {
	if size <= 0 {
		size = MyBidsPageSize
	}
	if page < 0 {
		page = 0
	}
	start := page * size
	if start > len(items) {
		start = len(items)
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return models.Page[T]{
		Content:       append([]T{}, items[start:end]...),
		Page:          page,
		Size:          size,
		TotalElements: len(items),
	}
}

// Client returns the REST contract bound to userID
func (r *MemoryRepo) Client(userID string) MarketAPI {
	return &memoryClient{repo: r, userID: userID}
}

type memoryClient struct {
	repo   *MemoryRepo
	userID string
}

func canceled(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return &biddingerrors.TransportError{Op: op, Err: err}
	}
	return nil
}

func (c *memoryClient) GetAuctionSnapshot(ctx context.Context, auctionID string) (models.AuctionSnapshot, error) {
	if err := canceled(ctx, "get auction snapshot"); err != nil {
		return models.AuctionSnapshot{}, err
	}
	return c.repo.Snapshot(auctionID)
}

func (c *memoryClient) PlaceBid(ctx context.Context, req models.PlaceBidRequest) (models.PlaceBidResult, error) {
	if err := canceled(ctx, "place bid"); err != nil {
		return models.PlaceBidResult{}, err
	}
	return c.repo.PlaceBid(c.userID, req)
}

func (c *memoryClient) GetMyBids(ctx context.Context, page, size int) (models.Page[models.MyBidEntry], error) {
	if err := canceled(ctx, "get my bids"); err != nil {
		return models.Page[models.MyBidEntry]{}, err
	}
	return c.repo.MyBids(c.userID, page, size), nil
}

func (c *memoryClient) GetWalletBalance(ctx context.Context) (models.WalletBalance, error) {
	if err := canceled(ctx, "get wallet balance"); err != nil {
		return models.WalletBalance{}, err
	}
	return c.repo.Balance(c.userID)
}

func (c *memoryClient) Charge(ctx context.Context, req models.ChargeRequest) (models.ChargeResult, error) {
	if err := canceled(ctx, "charge"); err != nil {
		return models.ChargeResult{}, err
	}
	return c.repo.Charge(c.userID, req)
}

func (c *memoryClient) GetMyNotifications(ctx context.Context, page, size int) (models.Page[models.NotificationEntry], error) {
	if err := canceled(ctx, "get my notifications"); err != nil {
		return models.Page[models.NotificationEntry]{}, err
	}
	return c.repo.Notifications(c.userID, page, size), nil
}
