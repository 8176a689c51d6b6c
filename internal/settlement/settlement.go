// Package settlement pays won bids from the user's wallet.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"auction-sync/internal/biddingerrors"
	"auction-sync/internal/metrics"
	"auction-sync/internal/models"
	"auction-sync/utils"

	"github.com/dustin/go-humanize"
)

//go:generate mockgen -source=settlement.go -destination=mock_settlement.go -package=settlement

// FailureMessage is shown for payment failures unrelated to the balance
const FailureMessage = "Payment failed. Please try again later."

// Wallet is the backend side of a payment
type Wallet interface {
	GetWalletBalance(ctx context.Context) (models.WalletBalance, error)
	Charge(ctx context.Context, req models.ChargeRequest) (models.ChargeResult, error)
}

// Bids is the user's bid list
type Bids interface {
	Get(bidID string) (models.MyBidEntry, error)
	MarkPaid(bidID string, paidAt time.Time) bool
}

// Confirmer asks the user to approve the exact amount about to be charged
type Confirmer interface {
	Confirm(entry models.MyBidEntry, amount int64) bool
}

// ConfirmedAmount approves a charge only when it equals the amount the user typed back
type ConfirmedAmount int64

// Confirm implements Confirmer
func (c ConfirmedAmount) Confirm(_ models.MyBidEntry, amount int64) bool {
	return int64(c) == amount
}

// Result is what the screen does after a payment attempt
type Result struct {
	BidID       string               `json:"bidId"`
	Amount      int64                `json:"amount"`
	Paid        bool                 `json:"paid"`
	Charge      *models.ChargeResult `json:"charge,omitempty"`
	Message     string               `json:"message"`
	RedirectURL string               `json:"redirectUrl,omitempty"`
}

// Service runs the settlement workflow. One payment runs at a time.
type Service struct {
	wallet     Wallet
	bids       Bids
	fundingURL string
	historyURL string

	mu     sync.Mutex
	paying string // bid id of the payment in flight
}

// NewService creates a settlement workflow redirecting to fundingURL when the
// balance is short and to historyURL once paid
func NewService(wallet Wallet, bids Bids, fundingURL, historyURL string) *Service {
	return &Service{
		wallet:     wallet,
		bids:       bids,
		fundingURL: fundingURL,
		historyURL: historyURL,
	}
}

// ChargeAmount is what paying entry costs
func ChargeAmount(e models.MyBidEntry) int64 {
	if e.MyBidPrice > 0 {
		return e.MyBidPrice
	}
	return e.CurrentPrice
}

// Paying returns the bid id of the payment in flight, if any
func (s *Service) Paying() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paying
}

func (s *Service) acquire(bidID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paying != "" {
		return false
	}
	s.paying = bidID
	return true
}

func (s *Service) release() {
	s.mu.Lock()
	s.paying = ""
	s.mu.Unlock()
}

// Pay settles bidID. The checks run in order: the bid must be payable, a fresh
// balance must cover it (a missing wallet counts as empty), and confirm must
// approve the exact amount. Each attempt uses a new idempotency key.
func (s *Service) Pay(ctx context.Context, bidID string, confirm Confirmer) (Result, error) {
	if !s.acquire(bidID) {
		metrics.ChargeAttempt("in_progress")
		return Result{BidID: bidID, Message: "Another payment is in progress."}, biddingerrors.ErrPaymentInProgress
	}
	defer s.release()

	entry, err := s.bids.Get(bidID)
	if err != nil {
		return Result{BidID: bidID, Message: "This bid could not be found."}, fmt.Errorf("settlement: %w", err)
	}
	amount := ChargeAmount(entry)
	res := Result{BidID: bidID, Amount: amount}

	if !entry.Payable() {
		metrics.ChargeAttempt("not_payable")
		res.Message = "This bid cannot be paid."
		return res, fmt.Errorf("settlement: bid %s: %w", bidID, biddingerrors.ErrNotPayable)
	}

	balance, err := s.balance(ctx)
	if err != nil {
		metrics.ChargeAttempt("error")
		res.Message = FailureMessage
		return res, fmt.Errorf("settlement: read balance: %w", err)
	}
	if balance < amount {
		metrics.ChargeAttempt("insufficient")
		res.Message = fmt.Sprintf("Your balance is %s short. Please add funds.", humanize.Comma(amount-balance))
		res.RedirectURL = s.fundingURL
		utils.Info("payment needs funding", map[string]any{"bid_id": bidID, "amount": amount, "balance": balance})
		return res, fmt.Errorf("settlement: balance %d below %d: %w", balance, amount, biddingerrors.ErrInsufficientBalance)
	}

	if confirm == nil || !confirm.Confirm(entry, amount) {
		metrics.ChargeAttempt("cancelled")
		res.Message = "Payment cancelled."
		return res, biddingerrors.ErrPaymentCancelled
	}

	key := utils.NewIdempotencyKey()
	charge, err := s.wallet.Charge(ctx, models.ChargeRequest{BidID: bidID, Amount: amount, IdempotencyKey: key})
	if err != nil {
		utils.Warn("charge failed", map[string]any{"bid_id": bidID, "idempotency_key": key, "error": err.Error()})
		if balanceRelated(err) {
			metrics.ChargeAttempt("insufficient")
			res.Message = "Your balance is not enough for this payment. Please add funds."
			res.RedirectURL = s.fundingURL
		} else {
			metrics.ChargeAttempt("error")
			res.Message = FailureMessage
		}
		return res, fmt.Errorf("settlement: charge %s: %w", bidID, err)
	}

	s.bids.MarkPaid(bidID, charge.PaidAt)
	metrics.ChargeAttempt("paid")
	utils.Info("payment completed", map[string]any{"bid_id": bidID, "transaction_id": charge.TransactionID, "amount": charge.Amount})

	res.Paid = true
	res.Charge = &charge
	res.Message = fmt.Sprintf("Paid %s.", humanize.Comma(charge.Amount))
	res.RedirectURL = s.historyURL
	return res, nil
}

func (s *Service) balance(ctx context.Context) (int64, error) {
	w, err := s.wallet.GetWalletBalance(ctx)
	if errors.Is(err, biddingerrors.ErrWalletNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return w.Balance, nil
}

func balanceRelated(err error) bool {
	if errors.Is(err, biddingerrors.ErrInsufficientBalance) || errors.Is(err, biddingerrors.ErrWalletNotFound) {
		return true
	}
	msg, ok := biddingerrors.DomainMessage(err)
	if !ok {
		return false
	}
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "balance") || strings.Contains(msg, "잔액")
}
