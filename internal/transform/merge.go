package transform

import (
	"sort"

	"dining_sync/internal/domain"
)

type MergeResult struct {
	Eateries  []domain.Eatery
	Overrides []domain.Override
}

// Merge combines both sources keyed by cornell id. Upstream wins on
// collision; the result is sorted by cornell id.
func Merge(static, upstream []domain.Eatery) MergeResult {
	byID := make(map[int64]domain.Eatery, len(static)+len(upstream))
	for _, e := range static {
		byID[e.CornellID] = e
	}

	var overrides []domain.Override
	for _, e := range upstream {
		if prev, ok := byID[e.CornellID]; ok {
			overrides = append(overrides, domain.Override{
				CornellID:    e.CornellID,
				StaticName:   prev.Name,
				UpstreamName: e.Name,
			})
		}
		byID[e.CornellID] = e
	}

	merged := make([]domain.Eatery, 0, len(byID))
	for _, e := range byID {
		merged = append(merged, e)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].CornellID < merged[j].CornellID })

	return MergeResult{Eateries: merged, Overrides: overrides}
}
