package auctionview

import (
	"context"
	"sync"

	"auction-sync/internal/biddingerrors"
	"auction-sync/internal/channel"
	"auction-sync/internal/models"
	"auction-sync/utils"
)

// Registry owns the reconcilers of the currently mounted auction screens
type Registry struct {
	fetcher    SnapshotFetcher
	subscriber channel.Subscriber
	opts       Options

	mu    sync.Mutex
	views map[string]*Reconciler // key: auctionID
}

// NewRegistry creates an empty registry
func NewRegistry(fetcher SnapshotFetcher, subscriber channel.Subscriber, opts Options) *Registry {
	return &Registry{
		fetcher:    fetcher,
		subscriber: subscriber,
		opts:       opts,
		views:      make(map[string]*Reconciler),
	}
}

// Open mounts the screen for auctionID, or returns the one already mounted
func (g *Registry) Open(ctx context.Context, auctionID string, initialPrice int64) (*Reconciler, error) {
	g.mu.Lock()
	if r, ok := g.views[auctionID]; ok {
		g.mu.Unlock()
		return r, nil
	}
	r := New(auctionID, initialPrice, g.fetcher, g.subscriber, g.opts)
	g.views[auctionID] = r
	g.mu.Unlock()

	if err := r.Mount(ctx); err != nil {
		g.mu.Lock()
		delete(g.views, auctionID)
		g.mu.Unlock()
		return nil, err
	}
	utils.Info("auction view mounted", map[string]any{"auction_id": auctionID})
	return r, nil
}

// Get returns the mounted reconciler for auctionID
func (g *Registry) Get(auctionID string) (*Reconciler, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.views[auctionID]
	if !ok {
		return nil, biddingerrors.ErrViewNotMounted
	}
	return r, nil
}

// Mount opens the screen for auctionID and returns what it shows
func (g *Registry) Mount(ctx context.Context, auctionID string, initialPrice int64) (models.AuctionView, error) {
	r, err := g.Open(ctx, auctionID, initialPrice)
	if err != nil {
		return models.AuctionView{}, err
	}
	return r.View(), nil
}

// View returns what the screen for auctionID shows
func (g *Registry) View(auctionID string) (models.AuctionView, error) {
	r, err := g.Get(auctionID)
	if err != nil {
		return models.AuctionView{}, err
	}
	return r.View(), nil
}

// CurrentPrice returns the displayed price of a mounted screen
func (g *Registry) CurrentPrice(auctionID string) (int64, error) {
	r, err := g.Get(auctionID)
	if err != nil {
		return 0, err
	}
	return r.CurrentPrice(), nil
}

// Refresh re-reads the snapshot of a mounted screen
func (g *Registry) Refresh(ctx context.Context, auctionID string) error {
	r, err := g.Get(auctionID)
	if err != nil {
		return err
	}
	return r.Refresh(ctx)
}

// Close unmounts the screen for auctionID. Unknown ids are ignored.
func (g *Registry) Close(ctx context.Context, auctionID string) {
	g.mu.Lock()
	r, ok := g.views[auctionID]
	delete(g.views, auctionID)
	g.mu.Unlock()
	if !ok {
		return
	}
	r.Close(ctx)
	utils.Info("auction view unmounted", map[string]any{"auction_id": auctionID})
}

// CloseAll unmounts every screen
func (g *Registry) CloseAll(ctx context.Context) {
	g.mu.Lock()
	views := g.views
	g.views = make(map[string]*Reconciler)
	g.mu.Unlock()
	for _, r := range views {
		r.Close(ctx)
		r.Wait()
	}
}
