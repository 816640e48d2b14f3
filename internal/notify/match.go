// Package notify matches users' favorite items against what is being served
// and pushes a summary notification to their devices.
package notify

import (
	"sort"
	"time"

	"dining_sync/internal/domain"
)

// EateryItems is the distinct set of item names an eatery serves in a window.
type EateryItems struct {
	CornellID int64
	Name      string
	Items     []string
}

// ServedItems collects item names from events overlapping [from, to], one
// entry per eatery that serves anything, in eatery order.
func ServedItems(eateries []domain.Eatery, from, to time.Time) []EateryItems {
	var served []EateryItems
	for _, e := range eateries {
		seen := make(map[string]struct{})
		var items []string
		for i := range e.Events {
			ev := &e.Events[i]
			if !ev.Overlaps(from, to) {
				continue
			}
			for _, name := range ev.ItemNames() {
				if _, ok := seen[name]; ok {
					continue
				}
				seen[name] = struct{}{}
				items = append(items, name)
			}
		}
		if len(items) > 0 {
			served = append(served, EateryItems{CornellID: e.CornellID, Name: e.Name, Items: items})
		}
	}
	return served
}

// AllItems flattens served items into one distinct list.
func AllItems(served []EateryItems) []string {
	seen := make(map[string]struct{})
	var all []string
	for _, s := range served {
		for _, it := range s.Items {
			if _, ok := seen[it]; ok {
				continue
			}
			seen[it] = struct{}{}
			all = append(all, it)
		}
	}
	return all
}

// Match returns, per eatery, the favorites it serves. Names compare exactly.
func Match(served []EateryItems, favorites []string) []domain.FavoriteMatch {
	wanted := make(map[string]struct{}, len(favorites))
	for _, f := range favorites {
		wanted[f] = struct{}{}
	}

	var matches []domain.FavoriteMatch
	for _, s := range served {
		var hits []string
		for _, it := range s.Items {
			if _, ok := wanted[it]; ok {
				hits = append(hits, it)
			}
		}
		if len(hits) == 0 {
			continue
		}
		sort.Strings(hits)
		matches = append(matches, domain.FavoriteMatch{EateryID: s.CornellID, EateryName: s.Name, Items: hits})
	}
	return matches
}
