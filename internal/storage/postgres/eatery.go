package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"dining_sync/internal/domain"
)

const eateryColumns = `id, cornell_id, name, short_name, about, short_about, cornell_dining,
	menu_summary, image_url, campus_area, online_order_url, contact_phone, contact_email,
	latitude, longitude, location, payment_methods, eatery_types, announcements`

type EateryStore struct {
	db *sqlx.DB
}

func NewEateryStore(db *sqlx.DB) *EateryStore {
	return &EateryStore{db: db}
}

type eateryRow struct {
	domain.Eatery
	Payments pq.StringArray `db:"payment_methods"`
	Types    pq.StringArray `db:"eatery_types"`
	Notices  pq.StringArray `db:"announcements"`
}

// DeleteAll removes every eatery. Events go first; their menus follow by cascade.
func (s *EateryStore) DeleteAll(ctx context.Context) (int64, error) {
	exec := GetExecutor(ctx, s.db)

	if _, err := exec.ExecContext(ctx, "DELETE FROM events"); err != nil {
		return 0, fmt.Errorf("delete events: %w", err)
	}

	res, err := exec.ExecContext(ctx, "DELETE FROM eateries")
	if err != nil {
		return 0, fmt.Errorf("delete eateries: %w", err)
	}
	return res.RowsAffected()
}

// CreateBatch inserts eateries with their nested events, categories and items.
func (s *EateryStore) CreateBatch(ctx context.Context, eateries []domain.Eatery) (int, error) {
	exec := GetExecutor(ctx, s.db)

	for i := range eateries {
		if err := s.create(ctx, exec, &eateries[i]); err != nil {
			return i, fmt.Errorf("insert eatery %d (%s): %w", eateries[i].CornellID, eateries[i].Name, err)
		}
	}
	return len(eateries), nil
}

func (s *EateryStore) create(ctx context.Context, exec sqlx.ExtContext, e *domain.Eatery) error {
	query := `
		INSERT INTO eateries (
			cornell_id, name, short_name, about, short_about, cornell_dining,
			menu_summary, image_url, campus_area, online_order_url, contact_phone,
			contact_email, latitude, longitude, location, payment_methods,
			eatery_types, announcements
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		)
		RETURNING id`

	err := exec.QueryRowxContext(ctx, query,
		e.CornellID,
		e.Name,
		e.ShortName,
		e.About,
		e.ShortAbout,
		e.CornellDining,
		e.MenuSummary,
		e.ImageURL,
		string(e.CampusArea),
		e.OnlineOrderURL,
		e.ContactPhone,
		e.ContactEmail,
		e.Latitude,
		e.Longitude,
		e.Location,
		pq.Array(paymentStrings(e.PaymentMethods)),
		pq.Array(typeStrings(e.EateryTypes)),
		pq.Array(nonNil(e.Announcements)),
	).Scan(&e.ID)
	if err != nil {
		return err
	}

	for i := range e.Events {
		ev := &e.Events[i]
		ev.EateryID = e.ID
		err := exec.QueryRowxContext(ctx,
			`INSERT INTO events (eatery_id, type, start_timestamp, end_timestamp) VALUES ($1, $2, $3, $4) RETURNING id`,
			e.ID, string(ev.Type), ev.Start, ev.End,
		).Scan(&ev.ID)
		if err != nil {
			return fmt.Errorf("insert %s event: %w", ev.Type, err)
		}

		for j := range ev.Menu {
			cat := &ev.Menu[j]
			cat.EventID = ev.ID
			err := exec.QueryRowxContext(ctx,
				`INSERT INTO menu_categories (event_id, name) VALUES ($1, $2) RETURNING id`,
				ev.ID, cat.Name,
			).Scan(&cat.ID)
			if err != nil {
				return fmt.Errorf("insert menu category %q: %w", cat.Name, err)
			}
			if err := insertItems(ctx, exec, cat.ID, cat.Items); err != nil {
				return fmt.Errorf("insert items of %q: %w", cat.Name, err)
			}
		}
	}
	return nil
}

func insertItems(ctx context.Context, exec sqlx.ExtContext, categoryID int64, items []domain.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO menu_items (category_id, name, healthy, price) VALUES ")
	args := make([]interface{}, 0, len(items)*3+1)
	args = append(args, categoryID)

	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i*3 + 2
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(n))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(n + 1))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(n + 2))
		sb.WriteString(")")
		args = append(args, item.Name, item.Healthy, item.Price)
	}

	_, err := exec.ExecContext(ctx, sb.String(), args...)
	return err
}

// ListAll reads every eatery ordered by cornell id with events ordered by start.
func (s *EateryStore) ListAll(ctx context.Context) ([]domain.Eatery, error) {
	exec := GetExecutor(ctx, s.db)

	var rows []eateryRow
	if err := sqlx.SelectContext(ctx, exec, &rows,
		"SELECT "+eateryColumns+" FROM eateries ORDER BY cornell_id"); err != nil {
		return nil, fmt.Errorf("select eateries: %w", err)
	}

	var events []domain.Event
	if err := sqlx.SelectContext(ctx, exec, &events,
		`SELECT id, eatery_id, type, start_timestamp, end_timestamp FROM events
		ORDER BY eatery_id, start_timestamp, id`); err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}

	var categories []domain.MenuCategory
	if err := sqlx.SelectContext(ctx, exec, &categories,
		"SELECT id, event_id, name FROM menu_categories ORDER BY id"); err != nil {
		return nil, fmt.Errorf("select menu categories: %w", err)
	}

	var items []domain.MenuItem
	if err := sqlx.SelectContext(ctx, exec, &items,
		"SELECT id, category_id, name, healthy, price FROM menu_items ORDER BY id"); err != nil {
		return nil, fmt.Errorf("select menu items: %w", err)
	}

	itemsByCategory := make(map[int64][]domain.MenuItem)
	for _, it := range items {
		itemsByCategory[it.CategoryID] = append(itemsByCategory[it.CategoryID], it)
	}
	menuByEvent := make(map[int64][]domain.MenuCategory)
	for _, c := range categories {
		c.Items = nonNilItems(itemsByCategory[c.ID])
		menuByEvent[c.EventID] = append(menuByEvent[c.EventID], c)
	}
	eventsByEatery := make(map[int64][]domain.Event)
	for _, ev := range events {
		ev.Menu = nonNilMenu(menuByEvent[ev.ID])
		eventsByEatery[ev.EateryID] = append(eventsByEatery[ev.EateryID], ev)
	}

	eateries := make([]domain.Eatery, 0, len(rows))
	for _, r := range rows {
		e := r.Eatery
		e.PaymentMethods = make([]domain.PaymentMethod, 0, len(r.Payments))
		for _, p := range r.Payments {
			e.PaymentMethods = append(e.PaymentMethods, domain.PaymentMethod(p))
		}
		e.EateryTypes = make([]domain.EateryType, 0, len(r.Types))
		for _, t := range r.Types {
			e.EateryTypes = append(e.EateryTypes, domain.EateryType(t))
		}
		e.Announcements = nonNil([]string(r.Notices))
		e.Events = eventsByEatery[e.ID]
		if e.Events == nil {
			e.Events = []domain.Event{}
		}
		eateries = append(eateries, e)
	}
	return eateries, nil
}

func paymentStrings(methods []domain.PaymentMethod) []string {
	out := make([]string, len(methods))
	for i, m := range methods {
		out[i] = string(m)
	}
	return out
}

func typeStrings(types []domain.EateryType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilItems(s []domain.MenuItem) []domain.MenuItem {
	if s == nil {
		return []domain.MenuItem{}
	}
	return s
}

func nonNilMenu(s []domain.MenuCategory) []domain.MenuCategory {
	if s == nil {
		return []domain.MenuCategory{}
	}
	return s
}
