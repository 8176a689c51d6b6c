// Package mybids maintains the current user's bid list from REST reads and the
// per-user push topic.
package mybids

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"auction-sync/internal/alert"
	"auction-sync/internal/biddingerrors"
	"auction-sync/internal/channel"
	"auction-sync/internal/models"
	"auction-sync/internal/repository"
	"auction-sync/utils"

	"github.com/dustin/go-humanize"
)

// Fetcher reads the user's bids
type Fetcher interface {
	GetMyBids(ctx context.Context, page, size int) (models.Page[models.MyBidEntry], error)
}

// Aggregator holds the user's bid list
type Aggregator struct {
	userID     string
	fetcher    Fetcher
	subscriber channel.Subscriber
	alerter    alert.Alerter

	mu      sync.RWMutex
	entries []models.MyBidEntry
	subID   string
}

// New creates an empty aggregator for userID
func New(userID string, fetcher Fetcher, subscriber channel.Subscriber, alerter alert.Alerter) *Aggregator {
	return &Aggregator{
		userID:     userID,
		fetcher:    fetcher,
		subscriber: subscriber,
		alerter:    alerter,
	}
}

// Subscribe starts listening on the user's my-bids topic
func (a *Aggregator) Subscribe(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.subID != "" {
		return nil
	}
	id, err := a.subscriber.Subscribe(ctx, channel.MyBidsTopic(a.userID), a.handle)
	if err != nil {
		return err
	}
	a.subID = id
	return nil
}

// Unsubscribe stops listening. Safe to call when not subscribed.
func (a *Aggregator) Unsubscribe(ctx context.Context) {
	a.mu.Lock()
	id := a.subID
	a.subID = ""
	a.mu.Unlock()
	if id != "" {
		a.subscriber.Unsubscribe(ctx, id)
	}
}

// Refresh replaces the list with the backend's first page. A paidAt known
// locally survives a snapshot that lacks it.
func (a *Aggregator) Refresh(ctx context.Context) error {
	page, err := a.fetcher.GetMyBids(ctx, 0, repository.MyBidsPageSize)
	if err != nil {
		return fmt.Errorf("refresh my bids: %w", err)
	}

	a.mu.Lock()
	a.entries = mergeSnapshot(a.entries, page.Content)
	n := len(a.entries)
	a.mu.Unlock()

	utils.Debug("my bids refreshed", map[string]any{"user_id": a.userID, "entries": n})
	return nil
}

// List returns a copy of the current entries, newest first
func (a *Aggregator) List() []models.MyBidEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]models.MyBidEntry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Get returns the entry for bidID
func (a *Aggregator) Get(bidID string) (models.MyBidEntry, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, e := range a.entries {
		if e.BidID == bidID {
			return e, nil
		}
	}
	return models.MyBidEntry{}, biddingerrors.ErrBidNotFound
}

// MarkPaid records a settlement. paidAt is only ever set, never changed or cleared.
func (a *Aggregator) MarkPaid(bidID string, paidAt time.Time) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.entries {
		if a.entries[i].BidID != bidID {
			continue
		}
		if a.entries[i].PaidAt != nil {
			return false
		}
		at := paidAt
		a.entries[i].PaidAt = &at
		return true
	}
	return false
}

func (a *Aggregator) handle(msg models.PushMessage) {
	switch msg.Type {
	case models.MessageBidUpdate:
		var u models.BidUpdate
		if err := json.Unmarshal(msg.Data, &u); err != nil || u.ProductID == "" {
			utils.Warn("my bids: malformed BID_UPDATE", map[string]any{"user_id": a.userID})
			return
		}
		a.mu.Lock()
		var entry models.MyBidEntry
		var outbid bool
		a.entries, entry, outbid = applyBidUpdate(a.entries, u)
		a.mu.Unlock()

		if outbid {
			a.alerter.Alert("Outbid", fmt.Sprintf("You were outbid on %s. Current price %s.", displayName(entry), humanize.Comma(entry.CurrentPrice)))
		}

	case models.MessageAuctionEnd:
		var e models.AuctionEnd
		if err := json.Unmarshal(msg.Data, &e); err != nil || e.ProductID == "" {
			utils.Warn("my bids: malformed AUCTION_END", map[string]any{"user_id": a.userID})
			return
		}
		a.mu.Lock()
		var entry models.MyBidEntry
		var ended bool
		a.entries, entry, ended = applyAuctionEnd(a.entries, e)
		a.mu.Unlock()

		if !ended {
			return
		}
		if e.IsWon {
			a.alerter.Alert("Auction won", fmt.Sprintf("You won %s at %s.", displayName(entry), humanize.Comma(entry.CurrentPrice)))
		} else {
			a.alerter.Alert("Auction ended", fmt.Sprintf("The auction for %s has ended.", displayName(entry)))
		}

	default:
		utils.Info("my bids: ignoring message", map[string]any{"user_id": a.userID, "type": msg.Type})
	}
}

func displayName(e models.MyBidEntry) string {
	if e.ProductName != "" {
		return e.ProductName
	}
	return e.ProductID
}
