// Package auctionview keeps one auction screen's price, bid count and countdown
// consistent across REST snapshots and push deltas.
package auctionview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"auction-sync/internal/biddingerrors"
	"auction-sync/internal/channel"
	"auction-sync/internal/metrics"
	"auction-sync/internal/models"
	"auction-sync/utils"
)

const (
	// DefaultFlagClearDelay is how long a changed flag stays raised
	DefaultFlagClearDelay = 3 * time.Second
	// DefaultJournalSize bounds the applied-event journal
	DefaultJournalSize = 64
)

// SnapshotFetcher reads the authoritative auction state
type SnapshotFetcher interface {
	GetAuctionSnapshot(ctx context.Context, auctionID string) (models.AuctionSnapshot, error)
}

// Options tune a reconciler
type Options struct {
	FlagClearDelay time.Duration
	JournalSize    int
	Now            func() time.Time
}

func (o Options) withDefaults() Options {
	if o.FlagClearDelay <= 0 {
		o.FlagClearDelay = DefaultFlagClearDelay
	}
	if o.JournalSize <= 0 {
		o.JournalSize = DefaultJournalSize
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Reconciler owns the view of one mounted auction screen
type Reconciler struct {
	auctionID  string
	fetcher    SnapshotFetcher
	subscriber channel.Subscriber
	opts       Options

	mu            sync.Mutex
	proj          Projection
	journal       []Event
	subIDs        []string
	mounted       bool
	closed        bool
	channelStatus string
	refreshErr    error

	bgCtx    context.Context
	bgCancel context.CancelFunc
	bg       sync.WaitGroup
}

// New creates an unmounted reconciler that shows initialPrice until data arrives
func New(auctionID string, initialPrice int64, fetcher SnapshotFetcher, subscriber channel.Subscriber, opts Options) *Reconciler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Reconciler{
		auctionID:  auctionID,
		fetcher:    fetcher,
		subscriber: subscriber,
		opts:       opts.withDefaults(),
		proj:       NewProjection(auctionID, initialPrice),
		bgCtx:      ctx,
		bgCancel:   cancel,
	}
}

// AuctionID returns the auction this reconciler tracks
func (r *Reconciler) AuctionID() string { return r.auctionID }

// Mount subscribes to the auction's price and timer topics and loads the first
// snapshot. A subscription failure leaves the screen in snapshot-only mode and a
// snapshot failure keeps the initial price; neither fails the mount.
func (r *Reconciler) Mount(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return biddingerrors.ErrViewClosed
	}
	if r.mounted {
		r.mu.Unlock()
		return nil
	}
	r.mounted = true
	r.mu.Unlock()

	r.subscribe(ctx)

	if err := r.Refresh(ctx); err != nil {
		utils.Warn("auction view: initial snapshot failed", map[string]any{"auction_id": r.auctionID, "error": err.Error()})
	}
	return nil
}

func (r *Reconciler) subscribe(ctx context.Context) {
	topics := []struct {
		topic   string
		handler channel.Handler
	}{
		{channel.AuctionTopic(r.auctionID), r.onPrice},
		{channel.TimerTopic(r.auctionID), r.onTimer},
	}

	ids := make([]string, 0, len(topics))
	for _, t := range topics {
		id, err := r.subscriber.Subscribe(ctx, t.topic, t.handler)
		if err != nil {
			for _, done := range ids {
				r.subscriber.Unsubscribe(ctx, done)
			}
			r.mu.Lock()
			r.channelStatus = "live updates unavailable, showing refreshed data only"
			r.mu.Unlock()
			utils.Warn("auction view: snapshot-only mode", map[string]any{"auction_id": r.auctionID, "topic": t.topic, "error": err.Error()})
			return
		}
		ids = append(ids, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		// closed while subscribing
		for _, id := range ids {
			r.subscriber.Unsubscribe(ctx, id)
		}
		return
	}
	r.subIDs = ids
	r.channelStatus = ""
}

// Refresh fetches a snapshot and overwrites price and count with it. A response
// that resolves after Close is discarded.
func (r *Reconciler) Refresh(ctx context.Context) error {
	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return biddingerrors.ErrViewClosed
	}

	snap, err := r.fetcher.GetAuctionSnapshot(ctx, r.auctionID)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return biddingerrors.ErrViewClosed
	}
	if err != nil {
		r.refreshErr = err
		return fmt.Errorf("refresh auction %s: %w", r.auctionID, err)
	}
	r.refreshErr = nil
	r.applyLocked(Event{Kind: EventSnapshot, At: r.opts.Now(), Snapshot: &snap})
	return nil
}

// applyLocked reduces e, records it and returns the outcome. Caller holds mu.
func (r *Reconciler) applyLocked(e Event) (Outcome, error) {
	next, out, err := Apply(r.proj, e)
	if err != nil {
		return out, err
	}
	r.proj = next
	r.journal = append(r.journal, e)
	if over := len(r.journal) - r.opts.JournalSize; over > 0 {
		r.journal = append(r.journal[:0:0], r.journal[over:]...)
	}
	return out, nil
}

func (r *Reconciler) onPrice(msg models.PushMessage) {
	var update models.PriceUpdate
	if err := json.Unmarshal(msg.Data, &update); err != nil {
		utils.Warn("auction view: malformed price push", map[string]any{"auction_id": r.auctionID, "type": msg.Type, "error": err.Error()})
		return
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	out, err := r.applyLocked(Event{Kind: EventPrice, At: r.opts.Now(), Price: &update})
	r.mu.Unlock()

	if errors.Is(err, biddingerrors.ErrStaleMessage) {
		metrics.StaleDropped()
		utils.Warn("auction view: stale price push dropped", map[string]any{"auction_id": r.auctionID, "error": err.Error()})
		return
	}
	if err != nil {
		utils.Warn("auction view: price push rejected", map[string]any{"auction_id": r.auctionID, "error": err.Error()})
		return
	}
	if out.NeedsRefresh() {
		r.refreshInBackground()
	}
}

func (r *Reconciler) onTimer(msg models.PushMessage) {
	var update models.TimerUpdate
	if err := json.Unmarshal(msg.Data, &update); err != nil {
		utils.Warn("auction view: malformed timer push", map[string]any{"auction_id": r.auctionID, "error": err.Error()})
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if _, err := r.applyLocked(Event{Kind: EventTimer, At: r.opts.Now(), Timer: &update}); err != nil {
		utils.Warn("auction view: timer push rejected", map[string]any{"auction_id": r.auctionID, "error": err.Error()})
	}
}

func (r *Reconciler) refreshInBackground() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.bg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.bg.Done()
		if err := r.Refresh(r.bgCtx); err != nil && !errors.Is(err, biddingerrors.ErrViewClosed) {
			utils.Warn("auction view: background refresh failed", map[string]any{"auction_id": r.auctionID, "error": err.Error()})
		}
	}()
}

// View renders the screen state at the current clock
func (r *Reconciler) View() models.AuctionView {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.proj.View(r.opts.Now(), r.opts.FlagClearDelay)
	switch {
	case r.channelStatus != "":
		v.ChannelStatus = r.channelStatus
	case len(r.subIDs) > 0 && !r.subscriber.IsConnected():
		v.ChannelStatus = "live updates paused, connection lost"
	case r.refreshErr != nil:
		v.ChannelStatus = "could not refresh, showing last known data"
	}
	return v
}

// CurrentPrice returns the price the screen currently shows
func (r *Reconciler) CurrentPrice() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	price, _ := r.proj.Current()
	return price
}

// Journal returns the most recent applied events, oldest first
func (r *Reconciler) Journal() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.journal))
	copy(out, r.journal)
	return out
}

// Close unsubscribes both topics and cancels outstanding refreshes. Safe to call twice.
func (r *Reconciler) Close(ctx context.Context) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	ids := r.subIDs
	r.subIDs = nil
	r.mu.Unlock()

	for _, id := range ids {
		r.subscriber.Unsubscribe(ctx, id)
	}
	r.bgCancel()
	utils.Debug("auction view: closed", map[string]any{"auction_id": r.auctionID})
}

// Wait blocks until background refreshes have finished
func (r *Reconciler) Wait() {
	r.bg.Wait()
}
