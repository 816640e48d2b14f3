//go:build integration

package postgres

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"dining_sync/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "000001_create_eateries.up.sql"),
			filepath.Join(migrationsPath, "000002_create_favorites.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM events")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM eateries")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM device_tokens")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM users")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func sampleEateries() []domain.Eatery {
	start := time.Date(2025, time.January, 20, 16, 0, 0, 0, time.UTC)
	return []domain.Eatery{
		{
			CornellID:      -46,
			Name:           "Fridge",
			MenuSummary:    "Apples",
			CampusArea:     domain.CampusAreaWest,
			PaymentMethods: []domain.PaymentMethod{domain.PaymentFree},
			EateryTypes:    []domain.EateryType{domain.EateryTypeCommunityFridge},
			Announcements:  []string{},
			Events: []domain.Event{{
				Type:  domain.EventTypeGeneral,
				Start: start,
				End:   start.Add(8 * time.Hour),
				Menu: []domain.MenuCategory{{
					Name:  "Free Food",
					Items: []domain.MenuItem{{Name: "Apples"}, {Name: "Apples"}},
				}},
			}},
		},
		{
			CornellID:      3,
			Name:           "Risley",
			MenuSummary:    "Cornell Eatery",
			CampusArea:     domain.CampusAreaNorth,
			CornellDining:  true,
			PaymentMethods: []domain.PaymentMethod{domain.PaymentMealSwipe, domain.PaymentBRB},
			EateryTypes:    []domain.EateryType{domain.EateryTypeDiningRoom},
			Announcements:  []string{"Closed Friday"},
			Events: []domain.Event{
				{
					Type:  domain.EventTypeDinner,
					Start: start.Add(6 * time.Hour),
					End:   start.Add(9 * time.Hour),
					Menu: []domain.MenuCategory{
						{Name: "Entrees", Items: []domain.MenuItem{{Name: "Pasta"}, {Name: "Salad", Healthy: true}}},
						{Name: "Desserts", Items: []domain.MenuItem{{Name: "Cookie"}}},
					},
				},
				{
					Type:  domain.EventTypeLunch,
					Start: start,
					End:   start.Add(3 * time.Hour),
					Menu: []domain.MenuCategory{
						{Name: "Soups", Items: []domain.MenuItem{{Name: "Tomato"}}},
					},
				},
			},
		},
	}
}

func (s *PostgresIntegrationSuite) replace(eateries []domain.Eatery) error {
	tm := NewTransactionManager(s.db, TxOptions{MaxWait: DefaultMaxWait, Timeout: DefaultTxTimeout})
	store := NewEateryStore(s.db)
	return tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, err := store.DeleteAll(ctx); err != nil {
			return err
		}
		_, err := store.CreateBatch(ctx, eateries)
		return err
	})
}

func (s *PostgresIntegrationSuite) count(table string) int {
	var n int
	s.Require().NoError(s.db.GetContext(s.ctx, &n, "SELECT COUNT(*) FROM "+table))
	return n
}

func (s *PostgresIntegrationSuite) TestReplace_IsIdempotent() {
	s.Require().NoError(s.replace(sampleEateries()))
	s.Require().NoError(s.replace(sampleEateries()))

	s.Equal(2, s.count("eateries"))
	s.Equal(3, s.count("events"))
	s.Equal(4, s.count("menu_categories"))
	s.Equal(6, s.count("menu_items"))
}

func (s *PostgresIntegrationSuite) TestReplace_RoundTrip() {
	s.Require().NoError(s.replace(sampleEateries()))

	eateries, err := NewEateryStore(s.db).ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(eateries, 2)

	s.Equal(int64(-46), eateries[0].CornellID)
	s.Equal([]string{"Apples", "Apples"}, eateries[0].Events[0].ItemNames())

	risley := eateries[1]
	s.Equal(int64(3), risley.CornellID)
	s.Equal([]domain.PaymentMethod{domain.PaymentMealSwipe, domain.PaymentBRB}, risley.PaymentMethods)
	s.Equal([]string{"Closed Friday"}, risley.Announcements)
	s.Require().Len(risley.Events, 2)
	s.Equal(domain.EventTypeLunch, risley.Events[0].Type)
	s.Equal(domain.EventTypeDinner, risley.Events[1].Type)
	s.Equal([]string{"Pasta", "Salad", "Cookie"}, risley.Events[1].ItemNames())
	s.True(risley.Events[1].Menu[0].Items[1].Healthy)
}

func (s *PostgresIntegrationSuite) TestReplace_FailureKeepsPreviousData() {
	s.Require().NoError(s.replace(sampleEateries()))

	dup := sampleEateries()
	dup[1].CornellID = dup[0].CornellID
	err := s.replace(dup)
	s.Require().Error(err)

	eateries, err := NewEateryStore(s.db).ListAll(s.ctx)
	s.Require().NoError(err)
	s.Len(eateries, 2)
	s.Equal("Risley", eateries[1].Name)
}

func (s *PostgresIntegrationSuite) TestReplace_RejectsInvertedEvent() {
	bad := sampleEateries()
	bad[0].Events[0].End = bad[0].Events[0].Start
	s.Error(s.replace(bad))
	s.Equal(0, s.count("eateries"))
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	s.Require().NoError(s.replace(sampleEateries()))

	tm := NewTransactionManager(s.db, TxOptions{})
	store := NewEateryStore(s.db)
	sentinel := errors.New("abort")

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, err := store.DeleteAll(ctx); err != nil {
			return err
		}
		return sentinel
	})
	s.ErrorIs(err, sentinel)
	s.Equal(2, s.count("eateries"))
}

func (s *PostgresIntegrationSuite) TestFavoritesStore() {
	var alice, bob int64
	s.Require().NoError(s.db.GetContext(s.ctx, &alice,
		`INSERT INTO users (net_id, favorited_item_names) VALUES ('abc1', '{Pasta,Cookie}') RETURNING id`))
	s.Require().NoError(s.db.GetContext(s.ctx, &bob,
		`INSERT INTO users (net_id, favorited_item_names) VALUES ('xyz9', '{Sushi}') RETURNING id`))
	_, err := s.db.ExecContext(s.ctx,
		`INSERT INTO device_tokens (user_id, token) VALUES ($1, 'tok-a1'), ($1, 'tok-a2'), ($2, 'tok-b1')`, alice, bob)
	s.Require().NoError(err)

	store := NewFavoritesStore(s.db)

	users, err := store.UsersWithFavorites(s.ctx, []string{"Pasta", "Salad"})
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal(alice, users[0].ID)
	s.ElementsMatch([]string{"Pasta", "Cookie"}, users[0].FavoriteItems)
	s.Equal([]string{"tok-a1", "tok-a2"}, users[0].Tokens)

	n, err := store.DeleteTokens(s.ctx, []string{"tok-a1", "missing"})
	s.Require().NoError(err)
	s.Equal(int64(1), n)
	s.Equal(2, s.count("device_tokens"))
}
