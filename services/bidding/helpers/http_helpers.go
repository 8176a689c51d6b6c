package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-sync/internal/biddingerrors"
	"auction-sync/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var de *biddingerrors.DomainError
	switch {
	case errors.Is(err, biddingerrors.ErrViewNotMounted):
		return http.StatusNotFound, "auction view not mounted"
	case errors.Is(err, biddingerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, biddingerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, biddingerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, biddingerrors.ErrSubmissionInProgress):
		return http.StatusConflict, "bid submission in progress"
	case errors.Is(err, biddingerrors.ErrPaymentInProgress):
		return http.StatusConflict, "payment in progress"
	case errors.Is(err, biddingerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction already ended"
	case errors.Is(err, biddingerrors.ErrNotPayable):
		return http.StatusConflict, "bid is not payable"
	case errors.Is(err, biddingerrors.ErrInsufficientBalance):
		return http.StatusPaymentRequired, "insufficient balance"
	case errors.Is(err, biddingerrors.ErrPaymentCancelled):
		return http.StatusBadRequest, "payment not confirmed"
	case biddingerrors.IsTransport(err):
		return http.StatusBadGateway, "backend unavailable"
	case errors.As(err, &de) && de.Status >= 400 && de.Status < 500:
		return de.Status, "rejected by backend"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
