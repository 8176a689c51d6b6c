package bidding

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"auction-sync/internal/biddingerrors"
	"auction-sync/internal/metrics"
	"auction-sync/internal/models"
	"auction-sync/utils"

	"github.com/dustin/go-humanize"
)

//go:generate mockgen -source=bidding_service.go -destination=mock_bidding_service.go -package=bidding

// RetryMessage is shown when a bid could not reach the backend
const RetryMessage = "Could not submit your bid. Please check your connection and try again."

// Placer registers bids with the backend
type Placer interface {
	PlaceBid(ctx context.Context, req models.PlaceBidRequest) (models.PlaceBidResult, error)
}

// Views are the mounted auction screens a bid is placed from
type Views interface {
	CurrentPrice(auctionID string) (int64, error)
	Refresh(ctx context.Context, auctionID string) error
}

// BidList is the user's bid list
type BidList interface {
	Refresh(ctx context.Context) error
}

// State is the submission state of one auction screen
type State string

const (
	StateIdle       State = "IDLE"
	StateSubmitting State = "SUBMITTING"
)

// Outcome describes an accepted bid
type Outcome struct {
	Bid     models.PlaceBidResult
	Message string
}

// BiddingService defines the bid submission workflow of auction screens
type BiddingService struct {
	placer Placer
	views  Views
	myBids BidList

	mu         sync.Mutex
	submitting map[string]bool   // key: auctionID
	inputs     map[string]string // key: auctionID -> unsent bid input
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(placer Placer, views Views, myBids BidList) *BiddingService {
	return &BiddingService{
		placer:     placer,
		views:      views,
		myBids:     myBids,
		submitting: make(map[string]bool),
		inputs:     make(map[string]string),
	}
}

// ParseAmount reads a user-typed amount such as "1,000,100" or "1 000 100원"
func ParseAmount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "원")
	s = strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if s == "" {
		return 0, &biddingerrors.ValidationError{Reason: "enter a bid amount", Err: biddingerrors.ErrInvalidBid}
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, &biddingerrors.ValidationError{Reason: "bid amount must be a whole number", Err: biddingerrors.ErrInvalidBid}
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &biddingerrors.ValidationError{Reason: "bid amount is too large", Err: biddingerrors.ErrInvalidBid}
	}
	if n <= 0 {
		return 0, &biddingerrors.ValidationError{Reason: "bid amount must be positive", Err: biddingerrors.ErrInvalidBid}
	}
	return n, nil
}

// MinimumBid is the lowest acceptable bid at currentPrice
func MinimumBid(currentPrice int64) int64 {
	return currentPrice + models.MinimumBidIncrement
}

// ValidateAmount rejects amounts below the minimum increment
func ValidateAmount(amount, currentPrice int64) error {
	if minimum := MinimumBid(currentPrice); amount < minimum {
		return &biddingerrors.ValidationError{
			Reason: fmt.Sprintf("bid must be at least %s", humanize.Comma(minimum)),
			Err:    biddingerrors.ErrBidTooLow,
		}
	}
	return nil
}

// SetInput stores the unsent bid input of an auction screen
func (s *BiddingService) SetInput(auctionID, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if raw == "" {
		delete(s.inputs, auctionID)
		return
	}
	s.inputs[auctionID] = raw
}

// Input returns the unsent bid input of an auction screen
func (s *BiddingService) Input(auctionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputs[auctionID]
}

// State reports whether a bid is in flight for auctionID
func (s *BiddingService) State(auctionID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting[auctionID] {
		return StateSubmitting
	}
	return StateIdle
}

func (s *BiddingService) begin(auctionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting[auctionID] {
		return false
	}
	s.submitting[auctionID] = true
	return true
}

func (s *BiddingService) end(auctionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.submitting, auctionID)
}

// Submit validates raw against the screen's current price and places the bid.
// Invalid input never reaches the backend. On success the input is cleared and
// both the auction view and the bid list are refreshed.
func (s *BiddingService) Submit(ctx context.Context, auctionID, raw string) (Outcome, error) {
	if auctionID == "" {
		return Outcome{}, &biddingerrors.ValidationError{Reason: "missing auction", Err: biddingerrors.ErrInvalidBid}
	}
	if !s.begin(auctionID) {
		metrics.BidSubmission("in_progress")
		return Outcome{}, fmt.Errorf("service: auction %s: %w", auctionID, biddingerrors.ErrSubmissionInProgress)
	}
	defer s.end(auctionID)

	s.SetInput(auctionID, raw)

	amount, err := ParseAmount(raw)
	if err != nil {
		metrics.BidSubmission("invalid")
		return Outcome{}, err
	}
	current, err := s.views.CurrentPrice(auctionID)
	if err != nil {
		return Outcome{}, fmt.Errorf("service: current price of %s: %w", auctionID, err)
	}
	if err := ValidateAmount(amount, current); err != nil {
		metrics.BidSubmission("too_low")
		return Outcome{}, err
	}

	res, err := s.placer.PlaceBid(ctx, models.PlaceBidRequest{AuctionID: auctionID, Amount: amount})
	if err != nil {
		outcome := "rejected"
		if biddingerrors.IsTransport(err) {
			outcome = "transport"
		}
		metrics.BidSubmission(outcome)
		utils.Warn("bid submission failed", map[string]any{"auction_id": auctionID, "amount": amount, "error": err.Error()})
		return Outcome{}, fmt.Errorf("service: place bid on %s: %w", auctionID, err)
	}

	metrics.BidSubmission("accepted")
	s.SetInput(auctionID, "")

	if err := s.views.Refresh(ctx, auctionID); err != nil {
		utils.Warn("view refresh after bid failed", map[string]any{"auction_id": auctionID, "error": err.Error()})
	}
	if err := s.myBids.Refresh(ctx); err != nil {
		utils.Warn("my bids refresh after bid failed", map[string]any{"auction_id": auctionID, "error": err.Error()})
	}

	utils.Info("bid placed", map[string]any{"auction_id": auctionID, "bid_id": res.BidID, "amount": amount})
	return Outcome{Bid: res, Message: fmt.Sprintf("Your bid of %s was placed.", humanize.Comma(amount))}, nil
}

// UserMessage is the text an auction screen shows for a failed submission
func UserMessage(err error) string {
	var ve *biddingerrors.ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ve):
		return ve.Reason
	case errors.Is(err, biddingerrors.ErrSubmissionInProgress):
		return "Your previous bid is still being submitted."
	case errors.Is(err, biddingerrors.ErrViewNotMounted):
		return "Open the auction before bidding."
	case biddingerrors.IsTransport(err):
		return RetryMessage
	}
	if msg, ok := biddingerrors.DomainMessage(err); ok && msg != "" {
		return msg
	}
	return RetryMessage
}
