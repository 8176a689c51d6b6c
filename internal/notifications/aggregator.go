// Package notifications keeps the user's capped, de-duplicated notification list.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"auction-sync/internal/alert"
	"auction-sync/internal/channel"
	"auction-sync/internal/models"
	"auction-sync/utils"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultCapacity is the list size when none is configured
const DefaultCapacity = 50

// seenFactor sizes the dedupe cache relative to the list capacity
const seenFactor = 4

// Lister reads the user's notification history
type Lister interface {
	GetMyNotifications(ctx context.Context, page, size int) (models.Page[models.NotificationEntry], error)
}

// Aggregator holds the notification list of one user
type Aggregator struct {
	userID     string
	lister     Lister
	subscriber channel.Subscriber
	alerter    alert.Alerter
	capacity   int
	now        func() time.Time

	mu    sync.RWMutex
	items []models.NotificationEntry
	seen  *lru.Cache
	subID string
	// ids assigned locally to pushes that arrived without one
	generated map[string]struct{}
}

// New creates an empty aggregator holding at most capacity notifications
func New(userID string, lister Lister, subscriber channel.Subscriber, alerter alert.Alerter, capacity int) (*Aggregator, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	seen, err := lru.New(capacity * seenFactor)
	if err != nil {
		return nil, fmt.Errorf("notifications: create seen cache: %w", err)
	}
	return &Aggregator{
		userID:     userID,
		lister:     lister,
		subscriber: subscriber,
		alerter:    alerter,
		capacity:   capacity,
		now:        func() time.Time { return time.Now().UTC() },
		seen:       seen,
		generated:  make(map[string]struct{}),
	}, nil
}

// Subscribe starts listening on the user's notifications topic
func (a *Aggregator) Subscribe(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.subID != "" {
		return nil
	}
	id, err := a.subscriber.Subscribe(ctx, channel.NotificationsTopic(a.userID), a.handle)
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

// Load merges the backend history into the list without alerting. The result
// stays newest first by timestamp, whatever pushes arrived before it.
func (a *Aggregator) Load(ctx context.Context) error {
	page, err := a.lister.GetMyNotifications(ctx, 0, a.capacity)
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	items := make([]models.NotificationEntry, len(a.items))
	copy(items, a.items)
	history := make([]models.NotificationEntry, 0, len(page.Content))
	for _, e := range page.Content {
		if e.ID != "" && a.seen.Contains(e.ID) {
			continue
		}
		e.Type = Classify(string(e.Type), e.Title+" "+e.Message)
		if e.ID != "" {
			a.seen.Add(e.ID, struct{}{})
			if i := a.generatedMatch(items, e); i >= 0 {
				delete(a.generated, items[i].ID)
				items[i].ID = e.ID
				continue
			}
		}
		history = append(history, e)
	}
	a.items = mergeNewestFirst(items, history, a.capacity)
	a.forgetEvicted()
	return nil
}

// generatedMatch finds a pushed entry with a local id that e is the server copy of
func (a *Aggregator) generatedMatch(items []models.NotificationEntry, e models.NotificationEntry) int {
	for i, it := range items {
		if _, ok := a.generated[it.ID]; !ok {
			continue
		}
		if it.Message == e.Message && it.ProductID == e.ProductID {
			return i
		}
	}
	return -1
}

// add prepends e unless its id was seen before. Caller must not hold mu.
func (a *Aggregator) add(e models.NotificationEntry, local bool) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.seen.Contains(e.ID) {
		return false
	}
	a.seen.Add(e.ID, struct{}{})
	if local {
		a.generated[e.ID] = struct{}{}
	}
	a.items = prepend(a.items, e, a.capacity)
	a.forgetEvicted()
	return true
}

// forgetEvicted drops local ids that fell off the list. Caller holds mu.
func (a *Aggregator) forgetEvicted() {
	if len(a.generated) == 0 {
		return
	}
	kept := make(map[string]struct{}, len(a.generated))
	for _, it := range a.items {
		if _, ok := a.generated[it.ID]; ok {
			kept[it.ID] = struct{}{}
		}
	}
	a.generated = kept
}

func (a *Aggregator) handle(msg models.PushMessage) {
	var p models.NotificationPayload
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			utils.Warn("notifications: malformed payload", map[string]any{"user_id": a.userID, "error": err.Error()})
		}
	}
	if p.Message == "" {
		p.Message = msg.Content
	}
	if p.Message == "" && p.Title == "" {
		utils.Warn("notifications: empty message ignored", map[string]any{"user_id": a.userID, "type": msg.Type})
		return
	}

	structured := p.Type
	if structured == "" {
		structured = msg.Type
	}
	e := models.NotificationEntry{
		ID:        p.ID,
		Type:      Classify(structured, strings.TrimSpace(p.Title+" "+p.Message)),
		Title:     p.Title,
		Message:   p.Message,
		ProductID: p.ProductID,
		Timestamp: msg.Timestamp,
	}
	local := e.ID == ""
	if local {
		e.ID = utils.GenerateID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = a.now()
	}
	if e.Title == "" {
		e.Title = defaultTitle(e.Type)
	}

	if !a.add(e, local) {
		utils.Debug("notifications: duplicate dropped", map[string]any{"user_id": a.userID, "id": e.ID})
		return
	}
	a.alerter.Alert(e.Title, e.Message)
}

// List returns a copy of the notifications, newest first
func (a *Aggregator) List() []models.NotificationEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]models.NotificationEntry, len(a.items))
	copy(out, a.items)
	return out
}

// UnreadCount counts unread notifications
func (a *Aggregator) UnreadCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return unreadCount(a.items)
}

// MarkAsRead marks one notification read and reports whether it exists
func (a *Aggregator) MarkAsRead(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	var found bool
	a.items, found = markRead(a.items, id)
	return found
}

// MarkAllAsRead marks every notification read
func (a *Aggregator) MarkAllAsRead() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items = markAllRead(a.items)
}

// Clear empties the list. Ids already seen stay suppressed.
func (a *Aggregator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items = nil
	a.generated = make(map[string]struct{})
}

func defaultTitle(t models.NotificationType) string {
	switch t {
	case models.NotificationBidSuccess:
		return "Bid placed"
	case models.NotificationBidFailed:
		return "Outbid"
	case models.NotificationAuctionWon:
		return "Auction won"
	case models.NotificationAuctionLost:
		return "Auction ended"
	case models.NotificationAuctionEnding:
		return "Ending soon"
	case models.NotificationPaymentReminder:
		return "Payment reminder"
	default:
		return "Notice"
	}
}
