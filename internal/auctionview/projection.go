package auctionview

import (
	"fmt"
	"time"

	"auction-sync/internal/biddingerrors"
	"auction-sync/internal/models"
)

// EventKind names the source of an event
type EventKind string

const (
	EventSnapshot EventKind = "snapshot"
	EventPrice    EventKind = "price"
	EventTimer    EventKind = "timer"
)

// Event is one input to the view projection
type Event struct {
	Kind     EventKind               `json:"kind"`
	At       time.Time               `json:"at"`
	Snapshot *models.AuctionSnapshot `json:"snapshot,omitempty"`
	Price    *models.PriceUpdate     `json:"price,omitempty"`
	Timer    *models.TimerUpdate     `json:"timer,omitempty"`
}

// Outcome is what applying an event changed
type Outcome struct {
	PriceChanged bool
	CountChanged bool
}

// NeedsRefresh reports whether a follow-up snapshot should be fetched
func (o Outcome) NeedsRefresh() bool { return o.PriceChanged || o.CountChanged }

type reading struct {
	price int64
	count int
	at    time.Time
}

// Projection is an auction view reduced from its events
type Projection struct {
	AuctionID    string
	InitialPrice int64

	snapshot *reading
	push     *reading

	LastBidder      string
	TimeLeftSeconds *int64
	IsEndingSoon    bool
	PriceChangedAt  time.Time
	CountChangedAt  time.Time
	UpdatedAt       time.Time
}

// NewProjection starts a projection showing initialPrice until something arrives
func NewProjection(auctionID string, initialPrice int64) Projection {
	return Projection{AuctionID: auctionID, InitialPrice: initialPrice}
}

// Current resolves what the screen shows: the most recent reading wins, a push beats
// a snapshot taken at the same instant, and the initial price shows until either arrives.
func (p Projection) Current() (price int64, count int) {
	switch {
	case p.push != nil && p.snapshot != nil:
		if p.snapshot.at.After(p.push.at) {
			return p.snapshot.price, p.snapshot.count
		}
		return p.push.price, p.push.count
	case p.push != nil:
		return p.push.price, p.push.count
	case p.snapshot != nil:
		return p.snapshot.price, p.snapshot.count
	default:
		return p.InitialPrice, 0
	}
}

// Apply reduces one event into the projection. A price push that would lower the
// current price returns ErrStaleMessage and leaves the projection unchanged.
func Apply(p Projection, e Event) (Projection, Outcome, error) {
	switch e.Kind {
	case EventSnapshot:
		if e.Snapshot == nil {
			return p, Outcome{}, fmt.Errorf("snapshot event: %w", biddingerrors.ErrMalformedPayload)
		}
		p.snapshot = &reading{price: e.Snapshot.CurrentPrice, count: e.Snapshot.BidCount, at: e.At}
		p.UpdatedAt = e.At
		return p, Outcome{}, nil

	case EventPrice:
		if e.Price == nil {
			return p, Outcome{}, fmt.Errorf("price event: %w", biddingerrors.ErrMalformedPayload)
		}
		price, count := p.Current()
		if e.Price.CurrentPrice < price {
			return p, Outcome{}, fmt.Errorf("price %d below current %d: %w", e.Price.CurrentPrice, price, biddingerrors.ErrStaleMessage)
		}
		out := Outcome{
			PriceChanged: e.Price.CurrentPrice != price,
			CountChanged: e.Price.BidCount != count,
		}
		p.push = &reading{price: e.Price.CurrentPrice, count: e.Price.BidCount, at: e.At}
		if e.Price.LastBidder != "" {
			p.LastBidder = e.Price.LastBidder
		}
		if out.PriceChanged {
			p.PriceChangedAt = e.At
		}
		if out.CountChanged {
			p.CountChangedAt = e.At
		}
		p.UpdatedAt = e.At
		return p, out, nil

	case EventTimer:
		if e.Timer == nil {
			return p, Outcome{}, fmt.Errorf("timer event: %w", biddingerrors.ErrMalformedPayload)
		}
		left := e.Timer.TimeLeftSeconds
		p.TimeLeftSeconds = &left
		p.IsEndingSoon = e.Timer.IsEndingSoon
		return p, Outcome{}, nil

	default:
		return p, Outcome{}, fmt.Errorf("event kind %q: %w", e.Kind, biddingerrors.ErrUnknownMessage)
	}
}

// Reduce folds events over a fresh projection, skipping rejected ones
func Reduce(auctionID string, initialPrice int64, events []Event) Projection {
	p := NewProjection(auctionID, initialPrice)
	for _, e := range events {
		if next, _, err := Apply(p, e); err == nil {
			p = next
		}
	}
	return p
}

// View renders the projection at now; changed flags last flagDelay after the change
func (p Projection) View(now time.Time, flagDelay time.Duration) models.AuctionView {
	price, count := p.Current()
	v := models.AuctionView{
		AuctionID:    p.AuctionID,
		CurrentPrice: price,
		BidCount:     count,
		LastBidder:   p.LastBidder,
		IsEndingSoon: p.IsEndingSoon,
		PriceChanged: flagActive(p.PriceChangedAt, now, flagDelay),
		CountChanged: flagActive(p.CountChangedAt, now, flagDelay),
		UpdatedAt:    p.UpdatedAt,
	}
	if p.TimeLeftSeconds != nil {
		left := *p.TimeLeftSeconds
		v.TimeLeftSeconds = &left
	}
	return v
}

func flagActive(changedAt, now time.Time, delay time.Duration) bool {
	return !changedAt.IsZero() && now.Before(changedAt.Add(delay))
}
