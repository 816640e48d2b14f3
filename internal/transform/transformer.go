package transform

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dining_sync/internal/domain"
	"dining_sync/internal/mapper"
	"dining_sync/internal/schedule"
	"dining_sync/internal/source"
)

const upstreamMenuSummary = "Cornell Eatery"

// Strategy converts one source's raw record into a domain eatery.
type Strategy interface {
	Transform(r Record) (domain.Eatery, error)
}

// Transformer dispatches records to the strategy registered for their source.
type Transformer struct {
	strategies map[Kind]Strategy
}

// NewTransformer wires the static and upstream strategies. now anchors the
// weekly materialization of static schedules; loc is the campus timezone.
func NewTransformer(now func() time.Time, loc *time.Location) *Transformer {
	if loc == nil {
		loc = time.Local
	}
	return &Transformer{
		strategies: map[Kind]Strategy{
			KindStatic:   &StaticStrategy{Now: now, Location: loc},
			KindUpstream: &UpstreamStrategy{Location: loc},
		},
	}
}

// Transform returns an error naming the offending eatery on any failure.
func (t *Transformer) Transform(r Record) (domain.Eatery, error) {
	strategy, ok := t.strategies[r.Kind]
	if !ok {
		return domain.Eatery{}, fmt.Errorf("transform eatery %q: no strategy for %s source", r.Name(), r.Kind)
	}
	eatery, err := strategy.Transform(r)
	if err != nil {
		return domain.Eatery{}, fmt.Errorf("transform eatery %q: %w", r.Name(), err)
	}
	return eatery, nil
}

// StaticStrategy handles curated seed eateries.
type StaticStrategy struct {
	Now      func() time.Time
	Location *time.Location
}

func (s *StaticStrategy) Transform(r Record) (domain.Eatery, error) {
	raw := r.Static
	if raw == nil {
		return domain.Eatery{}, errors.New("record has no static payload")
	}

	cornellID := StaticCornellID(raw.ID)
	shortAbout := raw.AboutShort
	if shortAbout == "" {
		shortAbout = raw.About
	}
	cornellDining := false
	if raw.CornellDining != nil {
		cornellDining = *raw.CornellDining
	}

	eatery, err := baseEatery(cornellID, raw.CampusArea, raw.PayMethods, raw.EateryTypes)
	if err != nil {
		return domain.Eatery{}, err
	}
	eatery.Name = raw.Name
	eatery.ShortName = raw.NameShort
	eatery.About = raw.About
	eatery.ShortAbout = shortAbout
	eatery.CornellDining = cornellDining
	eatery.MenuSummary = menuSummary(raw.DiningItems)
	eatery.OnlineOrderURL = raw.OnlineOrderURL
	eatery.ContactPhone = raw.ContactPhone
	eatery.ContactEmail = raw.ContactEmail
	eatery.Latitude = raw.Latitude
	eatery.Longitude = raw.Longitude
	eatery.Location = raw.Location
	eatery.Announcements = announcements(raw.Announcements)

	base := time.Now()
	if s.Now != nil {
		base = s.Now()
	}
	base = base.In(s.Location)

	menu := FlatMenu(raw.DiningItems)
	for _, hours := range raw.OperatingHours {
		for _, ev := range hours.Events {
			eventType, err := mapper.EventType(ev.Descr)
			if err != nil {
				return domain.Eatery{}, err
			}
			start, end := schedule.Span(hours.Weekday, ev.Start, ev.End, base)
			eventMenu := cloneMenu(menu)
			if len(ev.Menu) > 0 {
				eventMenu = EventMenu(ev.Menu)
			}
			event := domain.Event{Type: eventType, Start: start, End: end, Menu: eventMenu}
			if err := checkWindow(event); err != nil {
				return domain.Eatery{}, err
			}
			eatery.Events = append(eatery.Events, event)
		}
	}
	return eatery, nil
}

// UpstreamStrategy handles live dining API eateries.
type UpstreamStrategy struct {
	Location *time.Location
}

func (s *UpstreamStrategy) Transform(r Record) (domain.Eatery, error) {
	raw := r.Upstream
	if raw == nil {
		return domain.Eatery{}, errors.New("record has no upstream payload")
	}

	eatery, err := baseEatery(raw.ID, raw.CampusArea, raw.PayMethods, raw.EateryTypes)
	if err != nil {
		return domain.Eatery{}, err
	}
	eatery.Name = raw.Name
	eatery.ShortName = raw.NameShort
	eatery.About = raw.About
	eatery.ShortAbout = raw.AboutShort
	eatery.CornellDining = raw.CornellDining
	eatery.MenuSummary = upstreamMenuSummary
	eatery.OnlineOrderURL = raw.OnlineOrderURL
	eatery.ContactPhone = raw.ContactPhone
	eatery.ContactEmail = raw.ContactEmail
	eatery.Latitude = raw.Latitude
	eatery.Longitude = raw.Longitude
	eatery.Location = raw.Location
	eatery.Announcements = announcements(raw.Announcements)

	diningRoom := eatery.HasType(domain.EateryTypeDiningRoom)
	var shared []domain.MenuCategory
	if !diningRoom {
		shared = FlatMenu(raw.DiningItems)
	}

	for _, hours := range raw.OperatingHours {
		for _, ev := range hours.Events {
			var menu []domain.MenuCategory
			if diningRoom {
				// Dining halls always publish menus; a menu-less slot is not meaningful.
				if len(ev.Menu) == 0 {
					continue
				}
				menu = EventMenu(ev.Menu)
			} else {
				menu = cloneMenu(shared)
			}

			eventType, err := mapper.EventType(ev.Descr)
			if err != nil {
				return domain.Eatery{}, err
			}
			event := domain.Event{
				Type:  eventType,
				Start: time.Unix(ev.StartTimestamp, 0).In(s.Location),
				End:   time.Unix(ev.EndTimestamp, 0).In(s.Location),
				Menu:  menu,
			}
			if err := checkWindow(event); err != nil {
				return domain.Eatery{}, err
			}
			eatery.Events = append(eatery.Events, event)
		}
	}
	return eatery, nil
}

// StaticCornellID forces static ids into the negative id space.
func StaticCornellID(rawID int64) int64 {
	if rawID < 0 {
		return rawID
	}
	return -rawID
}

func baseEatery(cornellID int64, area source.Descriptor, pay, types []source.Descriptor) (domain.Eatery, error) {
	campusArea, err := mapper.CampusArea(area)
	if err != nil {
		return domain.Eatery{}, err
	}
	payments, err := mapper.PaymentMethods(pay)
	if err != nil {
		return domain.Eatery{}, err
	}
	eateryTypes, err := mapper.EateryTypes(types)
	if err != nil {
		return domain.Eatery{}, err
	}

	imageURL, err := mapper.ImageURL(cornellID)
	if err != nil {
		imageURL = mapper.DefaultImageURL
	}

	return domain.Eatery{
		CornellID:      cornellID,
		ImageURL:       imageURL,
		CampusArea:     campusArea,
		PaymentMethods: payments,
		EateryTypes:    eateryTypes,
		Announcements:  []string{},
	}, nil
}

func checkWindow(e domain.Event) error {
	if !e.End.After(e.Start) {
		return fmt.Errorf("%s event ends at %s, not after its start %s",
			e.Type, e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
	}
	return nil
}

// FlatMenu groups dining items by category in first-seen order.
func FlatMenu(items []source.DiningItem) []domain.MenuCategory {
	index := make(map[string]int)
	menu := make([]domain.MenuCategory, 0)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(menu)
			index[item.Category] = i
			menu = append(menu, domain.MenuCategory{Name: item.Category})
		}
		menu[i].Items = append(menu[i].Items, domain.MenuItem{Name: item.Item, Healthy: item.Healthy})
	}
	return menu
}

// EventMenu keeps the source's category and item order.
func EventMenu(categories []source.MenuCategory) []domain.MenuCategory {
	menu := make([]domain.MenuCategory, 0, len(categories))
	for _, c := range categories {
		cat := domain.MenuCategory{Name: c.Category, Items: make([]domain.MenuItem, 0, len(c.Items))}
		for _, it := range c.Items {
			cat.Items = append(cat.Items, domain.MenuItem{Name: it.Item, Healthy: it.Healthy})
		}
		menu = append(menu, cat)
	}
	return menu
}

func cloneMenu(menu []domain.MenuCategory) []domain.MenuCategory {
	out := make([]domain.MenuCategory, len(menu))
	for i, c := range menu {
		out[i] = domain.MenuCategory{Name: c.Name, Items: append([]domain.MenuItem(nil), c.Items...)}
	}
	return out
}

func menuSummary(items []source.DiningItem) string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Item)
	}
	return strings.Join(names, ", ")
}

func announcements(raw []source.Announcement) []string {
	out := make([]string, 0, len(raw))
	for _, a := range raw {
		if a.Title != "" {
			out = append(out, a.Title)
		}
	}
	return out
}
