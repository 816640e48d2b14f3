package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"dining_sync/internal/domain"
)

type FavoritesStore struct {
	db *sqlx.DB
}

func NewFavoritesStore(db *sqlx.DB) *FavoritesStore {
	return &FavoritesStore{db: db}
}

// UsersWithFavorites returns users having at least one favorite among items.
// Users without device tokens are included with an empty token list.
func (s *FavoritesStore) UsersWithFavorites(ctx context.Context, items []string) ([]domain.FavoriteUser, error) {
	if len(items) == 0 {
		return nil, nil
	}

	query := `
		SELECT u.id, u.favorited_item_names,
			COALESCE(array_agg(t.token ORDER BY t.id) FILTER (WHERE t.token IS NOT NULL), '{}') AS tokens
		FROM users u
		LEFT JOIN device_tokens t ON t.user_id = u.id
		WHERE u.favorited_item_names && $1
		GROUP BY u.id
		ORDER BY u.id`

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query, pq.Array(items))
	if err != nil {
		return nil, fmt.Errorf("query favorite users: %w", err)
	}
	defer rows.Close()

	var users []domain.FavoriteUser
	for rows.Next() {
		var (
			u         domain.FavoriteUser
			favorites pq.StringArray
			tokens    pq.StringArray
		)
		if err := rows.Scan(&u.ID, &favorites, &tokens); err != nil {
			return nil, err
		}
		u.FavoriteItems = []string(favorites)
		u.Tokens = []string(tokens)
		users = append(users, u)
	}
	return users, rows.Err()
}

// DeleteTokens removes device tokens the push provider rejected.
func (s *FavoritesStore) DeleteTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM device_tokens WHERE token = ANY($1)", pq.Array(tokens))
	if err != nil {
		return 0, fmt.Errorf("delete device tokens: %w", err)
	}
	return res.RowsAffected()
}
