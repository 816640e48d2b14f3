// Package mapper translates upstream free-text descriptors into the closed
// vocabularies of the domain package. Unknown values are errors, never defaults.
package mapper

import (
	"fmt"

	"dining_sync/internal/domain"
	"dining_sync/internal/source"
)

// UnknownValueError reports a raw descriptor outside the known vocabulary.
type UnknownValueError struct {
	Kind  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Value)
}

// CampusArea maps on descrshort only.
func CampusArea(area source.Descriptor) (domain.CampusArea, error) {
	switch area.DescrShort {
	case "West":
		return domain.CampusAreaWest, nil
	case "North":
		return domain.CampusAreaNorth, nil
	case "Central":
		return domain.CampusAreaCentral, nil
	case "Collegetown":
		return domain.CampusAreaCollegetown, nil
	default:
		return "", &UnknownValueError{Kind: "campus area", Value: area.DescrShort}
	}
}

// PaymentMethod maps on descrshort only. Several raw strings fold onto one member.
func PaymentMethod(method source.Descriptor) (domain.PaymentMethod, error) {
	switch method.DescrShort {
	case "Meal Plan - Swipe":
		return domain.PaymentMealSwipe, nil
	case "Meal Plan - Debit", "Cornell Card":
		return domain.PaymentBRB, nil
	case "Major Credit Cards", "Mobile Payments":
		return domain.PaymentCard, nil
	case "Cash":
		return domain.PaymentCash, nil
	case "Free":
		return domain.PaymentFree, nil
	default:
		return "", &UnknownValueError{Kind: "payment method", Value: method.DescrShort}
	}
}

// EateryType maps on descr only.
func EateryType(t source.Descriptor) (domain.EateryType, error) {
	switch t.Descr {
	case "Dining Room":
		return domain.EateryTypeDiningRoom, nil
	case "Cafe":
		return domain.EateryTypeCafe, nil
	case "Coffee Shop":
		return domain.EateryTypeCoffeeShop, nil
	case "Food Court":
		return domain.EateryTypeFoodCourt, nil
	case "Convenience Store":
		return domain.EateryTypeConvenienceStore, nil
	case "Cart":
		return domain.EateryTypeCart, nil
	case "Food Truck":
		return domain.EateryTypeFoodTruck, nil
	case "General":
		return domain.EateryTypeGeneral, nil
	case "Community Fridge":
		return domain.EateryTypeCommunityFridge, nil
	default:
		return "", &UnknownValueError{Kind: "eatery type", Value: t.Descr}
	}
}

// EventType maps an event description. The empty string is a general,
// all-day event (e.g. a cafe serving continuously).
func EventType(descr string) (domain.EventType, error) {
	switch descr {
	case "Breakfast":
		return domain.EventTypeBreakfast, nil
	case "Brunch":
		return domain.EventTypeBrunch, nil
	case "Lunch":
		return domain.EventTypeLunch, nil
	case "Dinner":
		return domain.EventTypeDinner, nil
	case "Late Night":
		return domain.EventTypeLateNight, nil
	case "Cafe":
		return domain.EventTypeCafe, nil
	case "Pants":
		return domain.EventTypePants, nil
	case "Open":
		return domain.EventTypeOpen, nil
	case "General", "":
		return domain.EventTypeGeneral, nil
	default:
		return "", &UnknownValueError{Kind: "event type", Value: descr}
	}
}

// PaymentMethods maps every descriptor and drops duplicates, keeping first-seen order.
func PaymentMethods(raw []source.Descriptor) ([]domain.PaymentMethod, error) {
	seen := make(map[domain.PaymentMethod]struct{}, len(raw))
	methods := make([]domain.PaymentMethod, 0, len(raw))
	for _, r := range raw {
		m, err := PaymentMethod(r)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		methods = append(methods, m)
	}
	return methods, nil
}

// EateryTypes maps every descriptor, preserving order.
func EateryTypes(raw []source.Descriptor) ([]domain.EateryType, error) {
	types := make([]domain.EateryType, 0, len(raw))
	for _, r := range raw {
		t, err := EateryType(r)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
