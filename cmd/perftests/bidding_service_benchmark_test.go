package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"auction-sync/internal/auctionview"
	bidding "auction-sync/internal/biddingService"
	"auction-sync/internal/models"
	"auction-sync/internal/notifications"
)

// Benchmark 1: Reduce - pure projection over a push stream (Micro Benchmark)
func Benchmark_Reduce_PushStream(b *testing.B) {
	base := time.Now()
	events := make([]auctionview.Event, 0, 1000)
	for i := 0; i < 1000; i++ {
		at := base.Add(time.Duration(i) * time.Millisecond)
		if i%50 == 0 {
			events = append(events, auctionview.Event{Kind: auctionview.EventSnapshot, At: at, Snapshot: &models.AuctionSnapshot{CurrentPrice: int64(1000 + i*100), BidCount: i}})
			continue
		}
		events = append(events, auctionview.Event{Kind: auctionview.EventPrice, At: at, Price: &models.PriceUpdate{CurrentPrice: int64(1000 + i*100), BidCount: i}})
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := auctionview.Reduce("bench", 1000, events)
		if price, _ := p.Current(); price < 1000 {
			b.Fatalf("price went below the initial price: %d", price)
		}
	}
}

// Benchmark 2: Dispatch - pushes on one shared auction (High Contention - Concurrency Benchmark)
func Benchmark_Dispatch_ConcurrentSharedAuction(b *testing.B) {
	h := setupHarness(b, 1)

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = startingPrice
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			userID := fmt.Sprintf("rival_%d", rnd.Intn(100))
			nextBid := atomic.AddInt64(&lastBid, models.MinimumBidIncrement+int64(rnd.Intn(5)))
			_, _ = h.repo.PlaceBid(userID, models.PlaceBidRequest{AuctionID: auctionID(0), Amount: nextBid})
		}
	})
}

// Benchmark 3: View - concurrent readers of one mounted screen
func Benchmark_View_ConcurrentSharedAuction(b *testing.B) {
	h := setupHarness(b, 1)
	for j := 0; j < 50; j++ {
		_, _ = h.repo.PlaceBid(fmt.Sprintf("rival_%d", j), models.PlaceBidRequest{AuctionID: auctionID(0), Amount: startingPrice + int64(j+1)*models.MinimumBidIncrement})
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := h.app.Views.View(auctionID(0)); err != nil {
				b.Fatalf("failed to read view: %v", err)
			}
		}
	})
}

// Benchmark 4: Mixed Workload (screen readers + rival writers concurrently)
func Benchmark_MixedWorkload_SharedAuction(b *testing.B) {
	h := setupHarness(b, 1)

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = startingPrice
	var counter int64

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				// Writer: a rival bid pushed to the screen
				nextBid := atomic.AddInt64(&lastBid, models.MinimumBidIncrement)
				_, _ = h.repo.PlaceBid(fmt.Sprintf("rival_%d", rnd.Int()), models.PlaceBidRequest{AuctionID: auctionID(0), Amount: nextBid})
			default:
				// Reader: the screen's current price
				_, _ = h.app.Views.CurrentPrice(auctionID(0))
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}

// Benchmark 5: Submit - local bids through the full workflow (Low Contention)
func Benchmark_Submit_Isolated(b *testing.B) {
	h := setupHarness(b, 16)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		id := auctionID(i % 16)
		current, err := h.app.Views.CurrentPrice(id)
		if err != nil {
			b.Fatalf("failed to read price: %v", err)
		}
		raw := fmt.Sprintf("%d", bidding.MinimumBid(current))
		if _, err := h.app.Bidding.Submit(ctx, id, raw); err != nil {
			b.Fatalf("failed to submit bid: %v", err)
		}
	}
}

// Benchmark 6: ParseAmount + ValidateAmount on typed input
func Benchmark_ParseAndValidate(b *testing.B) {
	inputs := []string{"1,000,100", "1 000 100원", "2000000", "999,000", "abc"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		amount, err := bidding.ParseAmount(inputs[i%len(inputs)])
		if err != nil {
			continue
		}
		_ = bidding.ValidateAmount(amount, 1000000)
	}
}

// Benchmark 7: Classify free-text notifications
func Benchmark_Classify(b *testing.B) {
	texts := []string{
		"Outbid You were outbid on Vintage camera. The current price is 1,100,000.",
		"Auction won You won Vintage camera at 1,000,100. Please complete the payment.",
		"경매 마감 임박",
		"Maintenance tonight at 2am",
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = notifications.Classify("", texts[i%len(texts)])
	}
}
