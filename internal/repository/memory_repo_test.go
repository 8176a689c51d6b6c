package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"auction-sync/internal/biddingerrors"
	"auction-sync/internal/channel"
	"auction-sync/internal/models"

	"github.com/stretchr/testify/require"
)

type published struct {
	topic string
	msg   models.PushMessage
}

// recorder captures everything the backend publishes
type recorder struct {
	mu  sync.Mutex
	out []published
}

func (r *recorder) publish(topic string, msg models.PushMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = append(r.out, published{topic: topic, msg: msg})
}

func (r *recorder) on(topic string) []models.PushMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	var msgs []models.PushMessage
	for _, p := range r.out {
		if p.topic == topic {
			msgs = append(msgs, p.msg)
		}
	}
	return msgs
}

func newRepoWithAuction(t *testing.T) (*MemoryRepo, *recorder) {
	t.Helper()
	repo := NewMemoryRepo()
	rec := &recorder{}
	repo.SetPublisher(rec.publish)
	repo.AddAuction("a1", "Vintage Camera", 1000000)
	return repo, rec
}

// Test PlaceBid
func TestMemoryRepo_PlaceBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setup     func(r *MemoryRepo)
		req       models.PlaceBidRequest
		wantErr   error
		wantPrice int64
	}{
		{name: "valid_bid", req: models.PlaceBidRequest{AuctionID: "a1", Amount: 1000100}, wantPrice: 1000100},
		{name: "auction_not_found", req: models.PlaceBidRequest{AuctionID: "zz", Amount: 1000100}, wantErr: biddingerrors.ErrAuctionNotFound},
		{name: "below_minimum_increment", req: models.PlaceBidRequest{AuctionID: "a1", Amount: 1000099}, wantErr: biddingerrors.ErrBidTooLow},
		{
			name:    "auction_ended",
			setup:   func(r *MemoryRepo) { require.NoError(t, r.EndAuction("a1")) },
			req:     models.PlaceBidRequest{AuctionID: "a1", Amount: 2000000},
			wantErr: biddingerrors.ErrAuctionEnded,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo, _ := newRepoWithAuction(t)
			if tc.setup != nil {
				tc.setup(repo)
			}

			res, err := repo.PlaceBid("u1", tc.req)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				var de *biddingerrors.DomainError
				require.True(t, errors.As(err, &de), "backend errors are domain errors")
				require.NotEmpty(t, de.Message)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, res.BidID)
			require.Equal(t, tc.wantPrice, res.CurrentPrice)
			require.Equal(t, 1, res.BidCount)
		})
	}
}

func TestMemoryRepo_PlaceBid_MessageNamesMinimum(t *testing.T) {
	repo, _ := newRepoWithAuction(t)
	_, err := repo.PlaceBid("u1", models.PlaceBidRequest{AuctionID: "a1", Amount: 999000})
	msg, ok := biddingerrors.DomainMessage(err)
	require.True(t, ok)
	require.Equal(t, "bid must be at least 1,000,100", msg)
}

func TestMemoryRepo_PlaceBid_PublishesOutbid(t *testing.T) {
	repo, rec := newRepoWithAuction(t)

	_, err := repo.PlaceBid("u1", models.PlaceBidRequest{AuctionID: "a1", Amount: 1000100})
	require.NoError(t, err)
	_, err = repo.PlaceBid("u2", models.PlaceBidRequest{AuctionID: "a1", Amount: 1100000})
	require.NoError(t, err)

	prices := rec.on(channel.AuctionTopic("a1"))
	require.Len(t, prices, 2)
	var last models.PriceUpdate
	require.NoError(t, json.Unmarshal(prices[1].Data, &last))
	require.Equal(t, models.PriceUpdate{CurrentPrice: 1100000, BidCount: 2, LastBidder: "u2"}, last)

	u1 := rec.on(channel.MyBidsTopic("u1"))
	require.Len(t, u1, 2, "own bid registered, then outbid")
	var outbid models.BidUpdate
	require.NoError(t, json.Unmarshal(u1[1].Data, &outbid))
	require.Equal(t, models.MessageBidUpdate, u1[1].Type)
	require.False(t, outbid.IsWinning)
	require.Equal(t, int64(1000100), outbid.MyBidPrice)
	require.Equal(t, int64(1100000), outbid.CurrentPrice)

	notes := rec.on(channel.NotificationsTopic("u1"))
	require.Len(t, notes, 2)
	require.Contains(t, notes[1].Content, "outbid")
}

func TestMemoryRepo_EndAuction(t *testing.T) {
	repo, rec := newRepoWithAuction(t)
	_, err := repo.PlaceBid("u1", models.PlaceBidRequest{AuctionID: "a1", Amount: 1000100})
	require.NoError(t, err)
	_, err = repo.PlaceBid("u2", models.PlaceBidRequest{AuctionID: "a1", Amount: 1200000})
	require.NoError(t, err)

	require.NoError(t, repo.EndAuction("a1"))
	require.NoError(t, repo.EndAuction("a1"), "ending twice is a no-op")
	require.ErrorIs(t, repo.EndAuction("missing"), biddingerrors.ErrAuctionNotFound)

	for user, won := range map[string]bool{"u1": false, "u2": true} {
		var end models.AuctionEnd
		var ends []models.PushMessage
		for _, m := range rec.on(channel.MyBidsTopic(user)) {
			if m.Type == models.MessageAuctionEnd {
				ends = append(ends, m)
			}
		}
		require.Len(t, ends, 1, user)
		require.NoError(t, json.Unmarshal(ends[0].Data, &end))
		require.Equal(t, won, end.IsWon, user)
		require.Equal(t, int64(1200000), end.FinalPrice)
	}

	snap, err := repo.Snapshot("a1")
	require.NoError(t, err)
	require.Equal(t, models.ProductStatusWon, snap.Status)

	page := repo.MyBids("u2", 0, 10)
	require.Len(t, page.Content, 1)
	require.Equal(t, models.BidStatusSuccessful, page.Content[0].Status)
	require.True(t, page.Content[0].Payable())

	lost := repo.MyBids("u1", 0, 10)
	require.Equal(t, models.BidStatusFailed, lost.Content[0].Status)
	require.False(t, lost.Content[0].Payable())
}

func TestMemoryRepo_MyBids_OneEntryPerAuction(t *testing.T) {
	repo, _ := newRepoWithAuction(t)
	repo.AddAuction("a2", "Desk Lamp", 10000)

	_, err := repo.PlaceBid("u1", models.PlaceBidRequest{AuctionID: "a1", Amount: 1000100})
	require.NoError(t, err)
	_, err = repo.PlaceBid("u1", models.PlaceBidRequest{AuctionID: "a2", Amount: 10100})
	require.NoError(t, err)
	last, err := repo.PlaceBid("u1", models.PlaceBidRequest{AuctionID: "a1", Amount: 1000200})
	require.NoError(t, err)

	page := repo.MyBids("u1", 0, MyBidsPageSize)
	require.Equal(t, 2, page.TotalElements)
	require.Equal(t, "a1", page.Content[0].ProductID, "latest activity first")
	require.Equal(t, last.BidID, page.Content[0].BidID)
	require.Equal(t, int64(1000200), page.Content[0].MyBidPrice)
	require.Equal(t, "a2", page.Content[1].ProductID)

	require.Empty(t, repo.MyBids("nobody", 0, 10).Content)
}

func wonBid(t *testing.T, repo *MemoryRepo, user string, amount int64) string {
	t.Helper()
	res, err := repo.PlaceBid(user, models.PlaceBidRequest{AuctionID: "a1", Amount: amount})
	require.NoError(t, err)
	require.NoError(t, repo.EndAuction("a1"))
	return res.BidID
}

// Test Charge
func TestMemoryRepo_Charge(t *testing.T) {
	t.Run("idempotent_key_debits_once", func(t *testing.T) {
		repo, _ := newRepoWithAuction(t)
		bidID := wonBid(t, repo, "u1", 1000100)
		repo.SetWallet("u1", 5000000)

		req := models.ChargeRequest{BidID: bidID, Amount: 1000100, IdempotencyKey: "k-1"}
		first, err := repo.Charge("u1", req)
		require.NoError(t, err)
		second, err := repo.Charge("u1", req)
		require.NoError(t, err)
		require.Equal(t, first, second)

		bal, err := repo.Balance("u1")
		require.NoError(t, err)
		require.Equal(t, int64(5000000-1000100), bal.Balance)

		_, err = repo.Charge("u1", models.ChargeRequest{BidID: bidID, Amount: 1000100, IdempotencyKey: "k-2"})
		require.ErrorIs(t, err, biddingerrors.ErrNotPayable, "a new key cannot pay twice")
	})

	t.Run("missing_key", func(t *testing.T) {
		repo, _ := newRepoWithAuction(t)
		_, err := repo.Charge("u1", models.ChargeRequest{BidID: "b", Amount: 1})
		require.Error(t, err)
	})

	t.Run("insufficient_balance", func(t *testing.T) {
		repo, _ := newRepoWithAuction(t)
		bidID := wonBid(t, repo, "u1", 1000100)
		repo.SetWallet("u1", 100)
		_, err := repo.Charge("u1", models.ChargeRequest{BidID: bidID, Amount: 1000100, IdempotencyKey: "k"})
		require.ErrorIs(t, err, biddingerrors.ErrInsufficientBalance)
	})

	t.Run("no_wallet", func(t *testing.T) {
		repo, _ := newRepoWithAuction(t)
		bidID := wonBid(t, repo, "u1", 1000100)
		_, err := repo.Charge("u1", models.ChargeRequest{BidID: bidID, Amount: 1000100, IdempotencyKey: "k"})
		require.ErrorIs(t, err, biddingerrors.ErrWalletNotFound)
		_, err = repo.Balance("u1")
		require.ErrorIs(t, err, biddingerrors.ErrWalletNotFound)
	})

	t.Run("not_winner", func(t *testing.T) {
		repo, _ := newRepoWithAuction(t)
		loser, err := repo.PlaceBid("u1", models.PlaceBidRequest{AuctionID: "a1", Amount: 1000100})
		require.NoError(t, err)
		wonBid(t, repo, "u2", 1100000)
		repo.SetWallet("u1", 5000000)
		_, err = repo.Charge("u1", models.ChargeRequest{BidID: loser.BidID, Amount: 1000100, IdempotencyKey: "k"})
		require.ErrorIs(t, err, biddingerrors.ErrNotPayable)
	})

	t.Run("someone_elses_bid", func(t *testing.T) {
		repo, _ := newRepoWithAuction(t)
		bidID := wonBid(t, repo, "u1", 1000100)
		repo.SetWallet("u2", 5000000)
		_, err := repo.Charge("u2", models.ChargeRequest{BidID: bidID, Amount: 1000100, IdempotencyKey: "k"})
		require.ErrorIs(t, err, biddingerrors.ErrBidNotFound)
	})
}

func TestMemoryRepo_ConcurrentBids(t *testing.T) {
	repo, _ := newRepoWithAuction(t)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.PlaceBid(fmt.Sprintf("user%d", i), models.PlaceBidRequest{AuctionID: "a1", Amount: 1000000 + int64(i)*1000})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	snap, err := repo.Snapshot("a1")
	require.NoError(t, err)
	require.Equal(t, accepted, snap.BidCount)
	require.Equal(t, int64(1050000), snap.CurrentPrice, "the highest bid is never rejected")
}

func TestMemoryClient_CanceledContext(t *testing.T) {
	repo, _ := newRepoWithAuction(t)
	client := repo.Client("u1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetAuctionSnapshot(ctx, "a1")
	require.True(t, biddingerrors.IsTransport(err))
	_, err = client.PlaceBid(ctx, models.PlaceBidRequest{AuctionID: "a1", Amount: 2000000})
	require.True(t, biddingerrors.IsTransport(err))

	snap, err := client.GetAuctionSnapshot(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, 0, snap.BidCount, "canceled bid never reached the backend")
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	tests := []struct {
		name       string
		page, size int
		want       []int
	}{
		{"first_page", 0, 2, []int{1, 2}},
		{"last_partial_page", 2, 2, []int{5}},
		{"past_end", 9, 2, []int{}},
		{"default_size", 0, 0, []int{1, 2, 3, 4, 5}},
		{"negative_page", -1, 3, []int{1, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := paginate(items, tc.page, tc.size)
			require.Equal(t, tc.want, p.Content)
			require.Equal(t, 5, p.TotalElements)
		})
	}
}
