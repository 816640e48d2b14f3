package api

import (
	"errors"
	"fmt"

	"dining_sync/internal/domain"
)

// validateEateries checks the structure of a pushed eatery list before it
// replaces the served snapshot.
func validateEateries(eateries []domain.Eatery) error {
	var errs []error
	seen := make(map[int64]struct{}, len(eateries))

	for i := range eateries {
		e := &eateries[i]
		prefix := fmt.Sprintf("eateries[%d]", i)

		if e.CornellID == 0 {
			errs = append(errs, fmt.Errorf("%s: cornellId is required", prefix))
		} else if _, dup := seen[e.CornellID]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate cornellId %d", prefix, e.CornellID))
		}
		seen[e.CornellID] = struct{}{}

		if e.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		}
		if !e.CampusArea.Valid() {
			errs = append(errs, fmt.Errorf("%s: invalid campusArea %q", prefix, e.CampusArea))
		}
		for _, p := range e.PaymentMethods {
			if !p.Valid() {
				errs = append(errs, fmt.Errorf("%s: invalid payment method %q", prefix, p))
			}
		}
		for _, t := range e.EateryTypes {
			if !t.Valid() {
				errs = append(errs, fmt.Errorf("%s: invalid eatery type %q", prefix, t))
			}
		}
		for j := range e.Events {
			ev := &e.Events[j]
			if !ev.Type.Valid() {
				errs = append(errs, fmt.Errorf("%s.events[%d]: invalid type %q", prefix, j, ev.Type))
			}
			if !ev.End.After(ev.Start) {
				errs = append(errs, fmt.Errorf("%s.events[%d]: end must be after start", prefix, j))
			}
		}
	}

	return errors.Join(errs...)
}
