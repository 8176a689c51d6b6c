package notifications

import (
	"strings"

	"auction-sync/internal/models"
)

var knownTypes = map[models.NotificationType]bool{
	models.NotificationBidSuccess:      true,
	models.NotificationBidFailed:       true,
	models.NotificationAuctionWon:      true,
	models.NotificationAuctionLost:     true,
	models.NotificationAuctionEnding:   true,
	models.NotificationPaymentReminder: true,
	models.NotificationSystem:          true,
}

// keyword rules are checked in order; the first hit wins
var keywordRules = []struct {
	typ      models.NotificationType
	keywords []string
}{
	{models.NotificationAuctionEnding, []string{"ending soon", "ends soon", "마감 임박", "곧 종료", "종료 임박"}},
	{models.NotificationBidFailed, []string{"outbid", "입찰 실패", "상위 입찰", "추월"}},
	{models.NotificationAuctionWon, []string{"you won", "won the auction", "winning bid", "낙찰되었", "낙찰 성공", "낙찰을 축하"}},
	{models.NotificationAuctionLost, []string{"lost", "not won", "has ended", "유찰", "낙찰 실패", "경매가 종료", "경매 종료"}},
	{models.NotificationPaymentReminder, []string{"payment", "pay now", "결제"}},
	{models.NotificationBidSuccess, []string{"bid placed", "was placed", "bid accepted", "입찰 성공", "입찰이 완료", "입찰 완료"}},
}

// Classify maps a notification to its type. A recognised structured type wins;
// otherwise the text is matched against keywords, falling back to SYSTEM.
func Classify(structuredType, text string) models.NotificationType {
	if t := models.NotificationType(strings.ToUpper(strings.TrimSpace(structuredType))); knownTypes[t] {
		return t
	}
	lower := strings.ToLower(text)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.typ
			}
		}
	}
	return models.NotificationSystem
}
