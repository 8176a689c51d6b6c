package biddingerrors

import (
	"errors"
	"fmt"
)

// Backend-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrWalletNotFound  = errors.New("wallet not found")
	ErrAuctionEnded    = errors.New("auction already ended")
	ErrDuplicateCharge = errors.New("charge already processed for idempotency key")
)

// business logic errors
var (
	ErrInvalidBid           = errors.New("invalid bid")
	ErrBidTooLow            = errors.New("bid amount too low")
	ErrSubmissionInProgress = errors.New("bid submission already in progress")
	ErrNotPayable           = errors.New("bid is not payable")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrPaymentInProgress    = errors.New("payment already in progress")
	ErrPaymentCancelled     = errors.New("payment cancelled by user")
)

// channel and reconciliation errors
var (
	ErrNotConnected     = errors.New("push channel not connected")
	ErrStaleMessage     = errors.New("stale push message")
	ErrViewClosed       = errors.New("auction view closed")
	ErrViewNotMounted   = errors.New("auction view not mounted")
	ErrUnknownMessage   = errors.New("unknown push message type")
	ErrMalformedPayload = errors.New("malformed push payload")
)

// ValidationError is raised before anything reaches the network.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Unwrap() error { return e.Err }

// DomainError carries a rejection from the backend. Message is what the backend said,
// possibly empty.
type DomainError struct {
	Status  int
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend rejected request (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend rejected request (%d)", e.Status)
}

func (e *DomainError) Unwrap() error { return e.Err }

// TransportError covers unreachable backends and responses that could not be parsed.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// DomainMessage returns the backend-supplied message of a DomainError in err's chain.
func DomainMessage(err error) (string, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message, true
	}
	return "", false
}
