package channel

import (
	"fmt"
	"strings"
)

// AuctionTopic carries price and bid-count deltas for one auction
func AuctionTopic(auctionID string) string {
	return fmt.Sprintf("/topic/auctions/%s", auctionID)
}

// TimerTopic carries the countdown for one auction
func TimerTopic(auctionID string) string {
	return fmt.Sprintf("/topic/auctions/%s/timer", auctionID)
}

// MyBidsTopic carries BID_UPDATE and AUCTION_END events for one user
func MyBidsTopic(userID string) string {
	return fmt.Sprintf("/user/%s/queue/my-bids", userID)
}

// NotificationsTopic carries free-text notifications for one user
func NotificationsTopic(userID string) string {
	return fmt.Sprintf("/user/%s/queue/notifications", userID)
}

// TopicKind labels a topic for metrics
func TopicKind(topic string) string {
	switch {
	case strings.HasPrefix(topic, "/topic/auctions/") && strings.HasSuffix(topic, "/timer"):
		return "timer"
	case strings.HasPrefix(topic, "/topic/auctions/"):
		return "price"
	case strings.HasSuffix(topic, "/queue/my-bids"):
		return "my_bids"
	case strings.HasSuffix(topic, "/queue/notifications"):
		return "notifications"
	default:
		return "other"
	}
}
