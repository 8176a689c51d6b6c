package server

import (
	"context"
	"fmt"

	"auction-sync/internal/alert"
	"auction-sync/internal/auctionview"
	bidding "auction-sync/internal/biddingService"
	"auction-sync/internal/channel"
	"auction-sync/internal/config"
	"auction-sync/internal/mybids"
	"auction-sync/internal/notifications"
	"auction-sync/internal/repository"
	"auction-sync/internal/session"
	"auction-sync/internal/settlement"
	handler "auction-sync/services/bidding/handler"
	"auction-sync/utils"

	"github.com/gin-gonic/gin"
)

// App is the wired client core for one session
type App struct {
	Channel       *channel.Manager
	Views         *auctionview.Registry
	MyBids        *mybids.Aggregator
	Notifications *notifications.Aggregator
	Alerts        *alert.Gate
	Bidding       *bidding.BiddingService
	Settlement    *settlement.Service
	Router        *gin.Engine
}

// NewApp builds every component on top of api and transport. The transport is
// not connected here; callers bind or dial it against App.Channel afterwards.
func NewApp(cfg *config.Config, sess *session.Session, api repository.MarketAPI, transport channel.Transport) (*App, error) {
	manager := channel.NewManager(transport)

	gate := alert.NewGate(nil)
	if cfg.AlertsEnabled {
		gate.Grant()
	}

	views := auctionview.NewRegistry(api, manager, auctionview.Options{FlagClearDelay: cfg.FlagClearDelay})
	bids := mybids.New(sess.UserID(), api, manager, gate)
	notes, err := notifications.New(sess.UserID(), api, manager, gate, cfg.NotificationCap)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	app := &App{
		Channel:       manager,
		Views:         views,
		MyBids:        bids,
		Notifications: notes,
		Alerts:        gate,
		Bidding:       bidding.NewBiddingService(api, views, bids),
		Settlement:    settlement.NewService(api, bids, cfg.FundingURL, cfg.HistoryURL),
	}
	app.Router = SetupRouter(handler.Deps{
		Views:         views,
		Bidding:       app.Bidding,
		MyBids:        bids,
		Settlement:    app.Settlement,
		Notifications: notes,
		Channel:       manager,
		Alerts:        gate,
	})
	return app, nil
}

// Start subscribes the per-user aggregators and loads their initial state.
// Failures are logged: without the push channel the lists still fill from
// REST reads and later refreshes.
func (a *App) Start(ctx context.Context) {
	if err := a.MyBids.Subscribe(ctx); err != nil {
		utils.Warn("my bids live updates unavailable", map[string]any{"error": err.Error()})
	}
	if err := a.Notifications.Subscribe(ctx); err != nil {
		utils.Warn("notification live updates unavailable", map[string]any{"error": err.Error()})
	}

	if err := a.MyBids.Refresh(ctx); err != nil {
		utils.Warn("initial my bids load failed", map[string]any{"error": err.Error()})
	}
	if err := a.Notifications.Load(ctx); err != nil {
		utils.Warn("initial notifications load failed", map[string]any{"error": err.Error()})
	}
}

// Stop unmounts every auction screen and releases the per-user topics
func (a *App) Stop(ctx context.Context) {
	a.Views.CloseAll(ctx)
	a.MyBids.Unsubscribe(ctx)
	a.Notifications.Unsubscribe(ctx)
}
