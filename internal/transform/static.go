package transform

import (
	"dining_sync/internal/domain"
	"dining_sync/internal/source"
	"dining_sync/internal/source/static"
)

// SpliceFridge replaces the dining items of the fridge eatery with the
// spreadsheet rows. An empty donation list leaves the seed items in place.
// It reports whether a fridge eatery received the items.
func SpliceFridge(eateries []static.RawEatery, fridgeID int64, items []source.DiningItem) bool {
	if len(items) == 0 {
		return false
	}
	target := StaticCornellID(fridgeID)
	for i := range eateries {
		if StaticCornellID(eateries[i].ID) == target {
			eateries[i].DiningItems = items
			return true
		}
	}
	return false
}

// TransformStatic converts every seed eatery, skipping the ones that fail
// with the reason recorded.
func (t *Transformer) TransformStatic(raws []static.RawEatery) ([]domain.Eatery, []domain.SkippedEatery) {
	eateries := make([]domain.Eatery, 0, len(raws))
	var skipped []domain.SkippedEatery
	for _, raw := range raws {
		eatery, err := t.Transform(StaticRecord(raw))
		if err != nil {
			skipped = append(skipped, domain.SkippedEatery{Name: raw.Name, Reason: err.Error()})
			continue
		}
		eateries = append(eateries, eatery)
	}
	return eateries, skipped
}
