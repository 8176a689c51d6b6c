package repository

import (
	"context"

	"auction-sync/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// MyBidsPageSize approximates "all of my bids" in a single read
const MyBidsPageSize = 100

// MarketAPI is the REST backend contract the core depends on. Every call is
// made on behalf of the session the implementation was built with.
type MarketAPI interface {
	GetAuctionSnapshot(ctx context.Context, auctionID string) (models.AuctionSnapshot, error)
	PlaceBid(ctx context.Context, req models.PlaceBidRequest) (models.PlaceBidResult, error)
	GetMyBids(ctx context.Context, page, size int) (models.Page[models.MyBidEntry], error)
	GetWalletBalance(ctx context.Context) (models.WalletBalance, error)
	Charge(ctx context.Context, req models.ChargeRequest) (models.ChargeResult, error)
	GetMyNotifications(ctx context.Context, page, size int) (models.Page[models.NotificationEntry], error)
}
