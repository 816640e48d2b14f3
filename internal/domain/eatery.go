package domain

import "time"

// Eatery is the canonical record persisted and served for one dining location.
type Eatery struct {
	ID             int64           `json:"id" db:"id"`
	CornellID      int64           `json:"cornellId" db:"cornell_id"`
	Name           string          `json:"name" db:"name"`
	ShortName      string          `json:"shortName" db:"short_name"`
	About          string          `json:"about" db:"about"`
	ShortAbout     string          `json:"shortAbout" db:"short_about"`
	CornellDining  bool            `json:"cornellDining" db:"cornell_dining"`
	MenuSummary    string          `json:"menuSummary" db:"menu_summary"`
	ImageURL       string          `json:"imageUrl" db:"image_url"`
	CampusArea     CampusArea      `json:"campusArea" db:"campus_area"`
	OnlineOrderURL *string         `json:"onlineOrderUrl" db:"online_order_url"`
	ContactPhone   *string         `json:"contactPhone" db:"contact_phone"`
	ContactEmail   *string         `json:"contactEmail" db:"contact_email"`
	Latitude       float64         `json:"latitude" db:"latitude"`
	Longitude      float64         `json:"longitude" db:"longitude"`
	Location       string          `json:"location" db:"location"`
	PaymentMethods []PaymentMethod `json:"paymentMethods" db:"-"`
	EateryTypes    []EateryType    `json:"eateryTypes" db:"-"`
	Announcements  []string        `json:"announcements" db:"-"`
	Events         []Event         `json:"events" db:"-"`
}

// HasType reports whether t is one of the eatery's types.
func (e *Eatery) HasType(t EateryType) bool {
	for _, et := range e.EateryTypes {
		if et == t {
			return true
		}
	}
	return false
}

// Event is one serving window at an eatery. End is always after Start.
type Event struct {
	ID       int64          `json:"id" db:"id"`
	EateryID int64          `json:"eateryId" db:"eatery_id"`
	Type     EventType      `json:"type" db:"type"`
	Start    time.Time      `json:"startTimestamp" db:"start_timestamp"`
	End      time.Time      `json:"endTimestamp" db:"end_timestamp"`
	Menu     []MenuCategory `json:"menu" db:"-"`
}

// Overlaps reports whether the event intersects [from, to].
func (e *Event) Overlaps(from, to time.Time) bool {
	return !e.Start.After(to) && !e.End.Before(from)
}

type MenuCategory struct {
	ID      int64      `json:"id" db:"id"`
	EventID int64      `json:"eventId" db:"event_id"`
	Name    string     `json:"category" db:"name"`
	Items   []MenuItem `json:"items" db:"-"`
}

// MenuItem names are the favorite-matching key: compared exactly, never deduplicated.
type MenuItem struct {
	ID         int64    `json:"id" db:"id"`
	CategoryID int64    `json:"categoryId" db:"category_id"`
	Name       string   `json:"name" db:"name"`
	Healthy    bool     `json:"healthy" db:"healthy"`
	Price      *float64 `json:"price,omitempty" db:"price"`
}

// ItemNames returns every item name served across the event's menu, in menu order.
func (e *Event) ItemNames() []string {
	var names []string
	for _, c := range e.Menu {
		for _, it := range c.Items {
			names = append(names, it.Name)
		}
	}
	return names
}
