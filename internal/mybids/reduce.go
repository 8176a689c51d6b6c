package mybids

import (
	"auction-sync/internal/models"
)

// outbid holds while the auction is open, the price has moved off the user's
// own bid and someone else is on top
func outbid(e models.MyBidEntry) bool {
	return e.Status == models.BidStatusBidding && !e.IsWinning && e.CurrentPrice != e.MyBidPrice
}

// applyBidUpdate upserts u by product. It reports whether the entry just became outbid.
func applyBidUpdate(entries []models.MyBidEntry, u models.BidUpdate) ([]models.MyBidEntry, models.MyBidEntry, bool) {
	for i := range entries {
		if entries[i].ProductID != u.ProductID {
			continue
		}
		e := &entries[i]
		was := e.IsOutbid
		if u.BidID != "" {
			e.BidID = u.BidID
		}
		if u.ProductName != "" {
			e.ProductName = u.ProductName
		}
		if u.MyBidPrice > 0 {
			e.MyBidPrice = u.MyBidPrice
		}
		e.CurrentPrice = u.CurrentPrice
		e.BidCount = u.BidCount
		e.IsWinning = u.IsWinning
		e.IsOutbid = outbid(*e)
		return entries, *e, !was && e.IsOutbid
	}

	e := models.MyBidEntry{
		BidID:         u.BidID,
		ProductID:     u.ProductID,
		ProductName:   u.ProductName,
		MyBidPrice:    u.MyBidPrice,
		CurrentPrice:  u.CurrentPrice,
		BidCount:      u.BidCount,
		IsWinning:     u.IsWinning,
		Status:        models.BidStatusBidding,
		ProductStatus: models.ProductStatusOpen,
	}
	e.IsOutbid = outbid(e)
	return append([]models.MyBidEntry{e}, entries...), e, e.IsOutbid
}

// applyAuctionEnd closes the entry for e's product. It reports whether the entry
// was still open, so a repeated AUCTION_END changes nothing.
func applyAuctionEnd(entries []models.MyBidEntry, e models.AuctionEnd) ([]models.MyBidEntry, models.MyBidEntry, bool) {
	for i := range entries {
		if entries[i].ProductID != e.ProductID {
			continue
		}
		entry := &entries[i]
		if entry.Status != models.BidStatusBidding {
			return entries, *entry, false
		}
		entry.IsWinning = e.IsWon
		entry.IsOutbid = false
		if e.FinalPrice > 0 {
			entry.CurrentPrice = e.FinalPrice
		}
		if e.IsWon {
			entry.Status = models.BidStatusSuccessful
			entry.ProductStatus = models.ProductStatusWon
		} else {
			entry.Status = models.BidStatusFailed
			entry.ProductStatus = models.ProductStatusClosed
		}
		return entries, *entry, true
	}
	return entries, models.MyBidEntry{}, false
}

// mergeSnapshot replaces current with fresh, carrying over paidAt values fresh lacks
func mergeSnapshot(current, fresh []models.MyBidEntry) []models.MyBidEntry {
	paid := make(map[string]models.MyBidEntry)
	for _, e := range current {
		if e.PaidAt != nil {
			paid[e.BidID] = e
		}
	}
	out := make([]models.MyBidEntry, len(fresh))
	copy(out, fresh)
	for i := range out {
		if out[i].PaidAt != nil {
			continue
		}
		if known, ok := paid[out[i].BidID]; ok {
			at := *known.PaidAt
			out[i].PaidAt = &at
		}
	}
	return out
}
