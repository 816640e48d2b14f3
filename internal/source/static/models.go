package static

import "dining_sync/internal/source"

// RawEatery is one curated eatery from the static seed file.
type RawEatery struct {
	ID             int64                 `json:"id"`
	Slug           string                `json:"slug"`
	Name           string                `json:"name"`
	NameShort      string                `json:"nameshort"`
	About          string                `json:"about"`
	AboutShort     string                `json:"aboutshort"`
	CornellDining  *bool                 `json:"cornellDining"`
	ContactPhone   *string               `json:"contactPhone"`
	ContactEmail   *string               `json:"contactEmail"`
	Latitude       float64               `json:"latitude"`
	Longitude      float64               `json:"longitude"`
	Location       string                `json:"location"`
	CampusArea     source.Descriptor     `json:"campusArea"`
	EateryTypes    []source.Descriptor   `json:"eateryTypes"`
	OnlineOrdering bool                  `json:"onlineOrdering"`
	OnlineOrderURL *string               `json:"onlineOrderUrl"`
	OperatingHours []RawOperatingHour    `json:"operatingHours"`
	PayMethods     []source.Descriptor   `json:"payMethods"`
	Announcements  []source.Announcement `json:"announcements"`
	DiningItems    []source.DiningItem   `json:"diningItems"`
}

// RawOperatingHour is a recurring weekly entry; times are local HH:MM.
type RawOperatingHour struct {
	Weekday string     `json:"weekday"`
	Events  []RawEvent `json:"events"`
}

type RawEvent struct {
	Descr string                `json:"descr"`
	Start string                `json:"start"`
	End   string                `json:"end"`
	Menu  []source.MenuCategory `json:"menu"`
}
