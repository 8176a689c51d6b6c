package main

import (
	"context"
	"flag"
	"fmt"

	"auction-sync/internal/channel"
	"auction-sync/internal/config"
	"auction-sync/internal/repository"
	"auction-sync/internal/server"
	"auction-sync/internal/session"
	"auction-sync/utils"
)

func main() {
	configPath := flag.String("config", "", "optional config file (yaml, toml or json)")
	flag.Parse()

	cfg := config.Load(*configPath)
	utils.SetLevel(cfg.LogLevel)

	sess, err := session.New(cfg.SessionToken, cfg.DemoUserID)
	if err != nil {
		utils.Fatal("failed to build session", map[string]any{"error": err.Error()})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var app *server.App
	if cfg.BackendURL != "" {
		app = remoteApp(ctx, cfg, sess)
	} else {
		app = memoryApp(ctx, cfg, sess)
	}

	app.Start(ctx)
	defer app.Stop(context.Background())

	utils.Info(fmt.Sprintf("Starting auction client on %s", cfg.Addr()), map[string]any{
		"user_id":     sess.UserID(),
		"backend_url": cfg.BackendURL,
		"push_url":    cfg.PushURL,
	})
	if err := app.Router.Run(cfg.Addr()); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// remoteApp talks to a real backend. Without a push URL, or when the push
// endpoint cannot be reached, screens run on REST snapshots only.
func remoteApp(ctx context.Context, cfg *config.Config, sess *session.Session) *server.App {
	api := repository.NewHTTPRepo(cfg.BackendURL, sess, cfg.RequestTimeout)
	ws := channel.NewWSTransport(cfg.PushURL, sess.Header())

	app, err := server.NewApp(cfg, sess, api, ws)
	if err != nil {
		utils.Fatal("failed to build app", map[string]any{"error": err.Error()})
	}
	if cfg.PushURL == "" {
		utils.Warn("no push url configured, live updates disabled", nil)
		return app
	}
	if err := ws.Connect(ctx, app.Channel); err != nil {
		utils.Warn("push channel unavailable, continuing without live updates", map[string]any{"error": err.Error()})
	}
	return app
}

// memoryApp runs against the in-process backend with loopback pushes
func memoryApp(ctx context.Context, cfg *config.Config, sess *session.Session) *server.App {
	repo := repository.NewMemoryRepo()
	prepopulate(repo, sess.UserID())

	loopback := channel.NewLoopback()
	repo.SetPublisher(loopback.Publish)

	app, err := server.NewApp(cfg, sess, repo.Client(sess.UserID()), loopback)
	if err != nil {
		utils.Fatal("failed to build app", map[string]any{"error": err.Error()})
	}
	loopback.Bind(ctx, app.Channel)
	return app
}

// prepopulate adds sample auctions and a funded wallet to the in-memory backend
func prepopulate(repo *repository.MemoryRepo, userID string) {
	auctions := []struct {
		id    string
		title string
		price int64
	}{
		{"auction1", "Vintage camera", 1000000},
		{"auction2", "Mechanical keyboard", 150000},
		{"auction3", "Road bicycle", 500000},
	}
	for _, a := range auctions {
		repo.AddAuction(a.id, a.title, a.price)
	}
	repo.SetWallet(userID, 5000000)
}
