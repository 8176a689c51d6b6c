package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"auction-sync/internal/channel"
	"auction-sync/internal/config"
	"auction-sync/internal/repository"
	"auction-sync/internal/server"
	"auction-sync/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testUser = "user1"

// Auction seeds one auction of the in-memory backend
type Auction struct {
	ID    string
	Title string
	Price int64
}

// TestEnv is the full client core wired to the in-memory backend with loopback pushes
type TestEnv struct {
	Repo     *repository.MemoryRepo
	Loopback *channel.Loopback
	App      *server.App
	Router   *gin.Engine
}

// SetupTestEnv builds the app for testUser with the given wallet balance and auctions
func SetupTestEnv(t *testing.T, balance int64, auctions ...Auction) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, a := range auctions {
		repo.AddAuction(a.ID, a.Title, a.Price)
	}
	if balance >= 0 {
		repo.SetWallet(testUser, balance)
	}

	return startEnv(t, repo)
}

// SetupTestEnvFrom starts a second app instance on the backend of env
func SetupTestEnvFrom(t *testing.T, env *TestEnv) *TestEnv {
	t.Helper()
	return startEnv(t, env.Repo)
}

func startEnv(t *testing.T, repo *repository.MemoryRepo) *TestEnv {
	t.Helper()
	loopback := channel.NewLoopback()
	repo.SetPublisher(loopback.Publish)

	sess, err := session.New("", testUser)
	require.NoError(t, err)

	cfg := &config.Config{
		FundingURL:      "/wallet/charge",
		HistoryURL:      "/mypage/transactions",
		NotificationCap: 50,
		FlagClearDelay:  3 * time.Second,
	}
	app, err := server.NewApp(cfg, sess, repo.Client(testUser), loopback)
	require.NoError(t, err)

	ctx := context.Background()
	loopback.Bind(ctx, app.Channel)
	app.Start(ctx)
	t.Cleanup(func() { app.Stop(context.Background()) })

	return &TestEnv{Repo: repo, Loopback: loopback, App: app, Router: app.Router}
}

// ExecuteRequest executes an HTTP request without a body and returns the response recorder.
func ExecuteRequest(router *gin.Engine, method, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// data returns the "data" object of a response
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response data should be an object: %v", resp)
	return d
}

// list returns the "data" array of a response
func list(t *testing.T, resp map[string]any) []any {
	t.Helper()
	d, ok := resp["data"].([]any)
	require.True(t, ok, "response data should be an array: %v", resp)
	return d
}
