package dining

import "dining_sync/internal/source"

// APIResponse represents the dining API response structure.
type APIResponse struct {
	Status  string  `json:"status"`
	Data    *Data   `json:"data"`
	Message *string `json:"message"`
	Meta    Meta    `json:"meta"`
}

type Data struct {
	Eateries []RawEatery `json:"eateries"`
}

type Meta struct {
	Copyright    string `json:"copyright"`
	ResponseDttm string `json:"responseDttm"`
}

type RawEatery struct {
	ID             int64                 `json:"id"`
	Slug           string                `json:"slug"`
	Name           string                `json:"name"`
	NameShort      string                `json:"nameshort"`
	About          string                `json:"about"`
	AboutShort     string                `json:"aboutshort"`
	CornellDining  bool                  `json:"cornellDining"`
	OnlineOrdering bool                  `json:"onlineOrdering"`
	OnlineOrderURL *string               `json:"onlineOrderUrl"`
	ContactPhone   *string               `json:"contactPhone"`
	ContactEmail   *string               `json:"contactEmail"`
	CampusArea     source.Descriptor     `json:"campusArea"`
	Latitude       float64               `json:"latitude"`
	Longitude      float64               `json:"longitude"`
	Location       string                `json:"location"`
	OperatingHours []RawOperatingHour    `json:"operatingHours"`
	EateryTypes    []source.Descriptor   `json:"eateryTypes"`
	PayMethods     []source.Descriptor   `json:"payMethods"`
	DiningItems    []source.DiningItem   `json:"diningItems"`
	Announcements  []source.Announcement `json:"announcements"`
}

type RawOperatingHour struct {
	Date   string     `json:"date"`
	Status string     `json:"status"`
	Events []RawEvent `json:"events"`
}

// RawEvent timestamps are Unix seconds.
type RawEvent struct {
	Descr          string                `json:"descr"`
	StartTimestamp int64                 `json:"startTimestamp"`
	EndTimestamp   int64                 `json:"endTimestamp"`
	Start          string                `json:"start"`
	End            string                `json:"end"`
	Menu           []source.MenuCategory `json:"menu"`
	CalSummary     string                `json:"calSummary"`
}
