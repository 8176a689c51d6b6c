package notifications

import (
	"sort"

	"auction-sync/internal/models"
)

func prepend(items []models.NotificationEntry, e models.NotificationEntry, capacity int) []models.NotificationEntry {
	out := make([]models.NotificationEntry, 0, min(len(items)+1, capacity))
	out = append(out, e)
	for _, it := range items {
		if len(out) == capacity {
			break
		}
		out = append(out, it)
	}
	return out
}

// mergeNewestFirst combines two lists newest first by timestamp and keeps at most
// capacity entries. On equal timestamps current entries stay ahead of added ones.
func mergeNewestFirst(current, added []models.NotificationEntry, capacity int) []models.NotificationEntry {
	out := make([]models.NotificationEntry, 0, len(current)+len(added))
	out = append(out, current...)
	out = append(out, added...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > capacity {
		out = out[:capacity]
	}
	return out
}

func markRead(items []models.NotificationEntry, id string) ([]models.NotificationEntry, bool) {
	out := make([]models.NotificationEntry, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].IsRead = true
			return out, true
		}
	}
	return out, false
}

func markAllRead(items []models.NotificationEntry) []models.NotificationEntry {
	out := make([]models.NotificationEntry, len(items))
	for i, it := range items {
		it.IsRead = true
		out[i] = it
	}
	return out
}

func unreadCount(items []models.NotificationEntry) int {
	n := 0
	for _, it := range items {
		if !it.IsRead {
			n++
		}
	}
	return n
}
