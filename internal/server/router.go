package server

import (
	"auction-sync/internal/metrics"
	handler "auction-sync/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps handler.Deps) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(deps)

	router.GET("/health", biddingHandler.HealthHandler)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	auctions := router.Group("/auctions/:auction_id")
	{
		auctions.POST("/view", biddingHandler.MountViewHandler)
		auctions.GET("/view", biddingHandler.GetViewHandler)
		auctions.DELETE("/view", biddingHandler.UnmountViewHandler)
		auctions.POST("/refresh", biddingHandler.RefreshViewHandler)
		auctions.POST("/bids", biddingHandler.PlaceBidHandler)
	}

	myBids := router.Group("/my-bids")
	{
		myBids.GET("", biddingHandler.GetMyBidsHandler)
		myBids.POST("/refresh", biddingHandler.RefreshMyBidsHandler)
		myBids.POST("/:bid_id/pay", biddingHandler.PayHandler)
	}

	notifications := router.Group("/notifications")
	{
		notifications.GET("", biddingHandler.GetNotificationsHandler)
		notifications.POST("/read-all", biddingHandler.MarkAllNotificationsReadHandler)
		notifications.POST("/:id/read", biddingHandler.MarkNotificationReadHandler)
		notifications.DELETE("", biddingHandler.ClearNotificationsHandler)
	}

	alerts := router.Group("/alerts")
	{
		alerts.POST("/permission", biddingHandler.GrantAlertsHandler)
		alerts.DELETE("/permission", biddingHandler.RevokeAlertsHandler)
	}

	return router
}
