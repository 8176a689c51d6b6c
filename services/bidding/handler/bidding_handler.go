package handler

import (
	"context"
	"fmt"
	"net/http"

	bidding "auction-sync/internal/biddingService"
	"auction-sync/internal/models"
	"auction-sync/internal/settlement"
	"auction-sync/services/bidding/helpers"
	"auction-sync/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_bidding_handler.go -package=handler

type AuctionViewsInterface interface {
	Mount(ctx context.Context, auctionID string, initialPrice int64) (models.AuctionView, error)
	View(auctionID string) (models.AuctionView, error)
	Refresh(ctx context.Context, auctionID string) error
	Close(ctx context.Context, auctionID string)
}

type BiddingServiceInterface interface {
	Submit(ctx context.Context, auctionID, raw string) (bidding.Outcome, error)
}

type MyBidsInterface interface {
	List() []models.MyBidEntry
	Refresh(ctx context.Context) error
}

type SettlementInterface interface {
	Pay(ctx context.Context, bidID string, confirm settlement.Confirmer) (settlement.Result, error)
}

type NotificationsInterface interface {
	List() []models.NotificationEntry
	UnreadCount() int
	MarkAsRead(id string) bool
	MarkAllAsRead()
	Clear()
}

type ChannelInterface interface {
	IsConnected() bool
	LastError() error
}

type AlertPermissionInterface interface {
	Grant()
	Revoke()
	Granted() bool
}

// Deps are the services the handlers drive
type Deps struct {
	Views         AuctionViewsInterface
	Bidding       BiddingServiceInterface
	MyBids        MyBidsInterface
	Settlement    SettlementInterface
	Notifications NotificationsInterface
	Channel       ChannelInterface
	Alerts        AlertPermissionInterface
}

type BiddingHandler struct {
	deps Deps
}

func NewBiddingHandler(deps Deps) *BiddingHandler {
	return &BiddingHandler{deps: deps}
}

func (h *BiddingHandler) fail(c *gin.Context, handlerName string, err error, message string, fields map[string]any, extra ...gin.H) {
	status, label := helpers.MapErrorToHTTP(err)
	if message == "" {
		message = label
	}
	utils.JSONError(c, status, fmt.Errorf("%s: %w", label, err), message, extra...)
	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request failed", fields)
}

// HealthHandler handles GET /health
func (h *BiddingHandler) HealthHandler(c *gin.Context) {
	resp := helpers.HealthResponse{Connected: h.deps.Channel.IsConnected()}
	if err := h.deps.Channel.LastError(); err != nil {
		resp.LastError = err.Error()
	}
	utils.JSONResponse(c, http.StatusOK, resp, "ok")
}

// MountViewHandler handles POST /auctions/:auction_id/view
func (h *BiddingHandler) MountViewHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.MountViewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, "MountViewHandler", err)
			return
		}
	}

	view, err := h.deps.Views.Mount(c.Request.Context(), auctionID, req.InitialPrice)
	if err != nil {
		h.fail(c, "MountViewHandler", err, "", map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToViewResponse(view), "auction view mounted")
	helpers.LogSuccess("MountViewHandler", "auction view mounted", map[string]any{"auction_id": auctionID})
}

// UnmountViewHandler handles DELETE /auctions/:auction_id/view
func (h *BiddingHandler) UnmountViewHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	h.deps.Views.Close(c.Request.Context(), auctionID)
	utils.JSONResponse(c, http.StatusOK, nil, "auction view unmounted")
}

// GetViewHandler handles GET /auctions/:auction_id/view
func (h *BiddingHandler) GetViewHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	view, err := h.deps.Views.View(auctionID)
	if err != nil {
		h.fail(c, "GetViewHandler", err, "", map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.ToViewResponse(view), "auction view retrieved successfully")
}

// RefreshViewHandler handles POST /auctions/:auction_id/refresh
func (h *BiddingHandler) RefreshViewHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	if err := h.deps.Views.Refresh(c.Request.Context(), auctionID); err != nil {
		h.fail(c, "RefreshViewHandler", err, "", map[string]any{"auction_id": auctionID})
		return
	}
	view, err := h.deps.Views.View(auctionID)
	if err != nil {
		h.fail(c, "RefreshViewHandler", err, "", map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.ToViewResponse(view), "auction view refreshed")
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	out, err := h.deps.Bidding.Submit(c.Request.Context(), auctionID, string(req.Amount))
	if err != nil {
		h.fail(c, "PlaceBidHandler", err, bidding.UserMessage(err), map[string]any{"auction_id": auctionID, "amount": string(req.Amount)})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(out.Bid), out.Message)
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     out.Bid.BidID,
		"auction_id": auctionID,
		"amount":     out.Bid.Amount,
	})
}

// GetMyBidsHandler handles GET /my-bids
func (h *BiddingHandler) GetMyBidsHandler(c *gin.Context) {
	entries := helpers.ToMyBidResponses(h.deps.MyBids.List())
	utils.JSONResponse(c, http.StatusOK, entries, "bids retrieved successfully")
}

// RefreshMyBidsHandler handles POST /my-bids/refresh
func (h *BiddingHandler) RefreshMyBidsHandler(c *gin.Context) {
	if err := h.deps.MyBids.Refresh(c.Request.Context()); err != nil {
		h.fail(c, "RefreshMyBidsHandler", err, "", nil)
		return
	}
	entries := helpers.ToMyBidResponses(h.deps.MyBids.List())
	utils.JSONResponse(c, http.StatusOK, entries, "bids refreshed")
	helpers.LogSuccess("RefreshMyBidsHandler", "bids refreshed", map[string]any{"count": len(entries)})
}

// PayHandler handles POST /my-bids/:bid_id/pay
func (h *BiddingHandler) PayHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	var req helpers.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PayHandler", err)
		return
	}

	res, err := h.deps.Settlement.Pay(c.Request.Context(), bidID, settlement.ConfirmedAmount(req.ConfirmedAmount))
	if err != nil {
		var extra []gin.H
		if res.RedirectURL != "" {
			extra = append(extra, gin.H{"redirect_url": res.RedirectURL})
		}
		h.fail(c, "PayHandler", err, res.Message, map[string]any{"bid_id": bidID}, extra...)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToPaymentResponse(res), res.Message)
	helpers.LogSuccess("PayHandler", "payment completed", map[string]any{"bid_id": bidID, "amount": res.Amount})
}

// GetNotificationsHandler handles GET /notifications
func (h *BiddingHandler) GetNotificationsHandler(c *gin.Context) {
	n := h.deps.Notifications
	utils.JSONResponse(c, http.StatusOK, helpers.ToNotificationsResponse(n.List(), n.UnreadCount()), "notifications retrieved successfully")
}

// MarkNotificationReadHandler handles POST /notifications/:id/read
func (h *BiddingHandler) MarkNotificationReadHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.deps.Notifications.MarkAsRead(id) {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("notification %s not found", id), "notification not found")
		return
	}
	n := h.deps.Notifications
	utils.JSONResponse(c, http.StatusOK, helpers.ToNotificationsResponse(n.List(), n.UnreadCount()), "notification marked as read")
}

// MarkAllNotificationsReadHandler handles POST /notifications/read-all
func (h *BiddingHandler) MarkAllNotificationsReadHandler(c *gin.Context) {
	n := h.deps.Notifications
	n.MarkAllAsRead()
	utils.JSONResponse(c, http.StatusOK, helpers.ToNotificationsResponse(n.List(), n.UnreadCount()), "all notifications marked as read")
}

// ClearNotificationsHandler handles DELETE /notifications
func (h *BiddingHandler) ClearNotificationsHandler(c *gin.Context) {
	h.deps.Notifications.Clear()
	utils.JSONResponse(c, http.StatusOK, helpers.ToNotificationsResponse(nil, 0), "notifications cleared")
}

// GrantAlertsHandler handles POST /alerts/permission
func (h *BiddingHandler) GrantAlertsHandler(c *gin.Context) {
	h.deps.Alerts.Grant()
	utils.JSONResponse(c, http.StatusOK, gin.H{"granted": h.deps.Alerts.Granted()}, "alerts enabled")
}

// RevokeAlertsHandler handles DELETE /alerts/permission
func (h *BiddingHandler) RevokeAlertsHandler(c *gin.Context) {
	h.deps.Alerts.Revoke()
	utils.JSONResponse(c, http.StatusOK, gin.H{"granted": h.deps.Alerts.Granted()}, "alerts disabled")
}
