package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dining_sync/internal/domain"
)

const DefaultLookahead = 7 * time.Hour

type EateryReader interface {
	ListAll(ctx context.Context) ([]domain.Eatery, error)
}

type FavoritesStore interface {
	UsersWithFavorites(ctx context.Context, items []string) ([]domain.FavoriteUser, error)
	DeleteTokens(ctx context.Context, tokens []string) (int64, error)
}

// Sink delivers one message to a user's devices.
type Sink interface {
	Send(ctx context.Context, tokens []string, msg Message) (invalid []string, err error)
}

type Result struct {
	Users         int
	Notified      int
	Failed        int
	TokensRemoved int64
}

type Notifier struct {
	eateries  EateryReader
	favorites FavoritesStore
	sink      Sink
	lookahead time.Duration
	location  *time.Location
	now       func() time.Time
	logger    *slog.Logger
}

func NewNotifier(eateries EateryReader, favorites FavoritesStore, sink Sink, lookahead time.Duration, loc *time.Location, logger *slog.Logger) *Notifier {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	if loc == nil {
		loc = time.Local
	}
	return &Notifier{
		eateries:  eateries,
		favorites: favorites,
		sink:      sink,
		lookahead: lookahead,
		location:  loc,
		now:       time.Now,
		logger:    logger.With("component", "notifier"),
	}
}

// Run notifies every user with a favorite served between now and now+lookahead.
// Per-user delivery failures are counted, not returned.
func (n *Notifier) Run(ctx context.Context) (*Result, error) {
	from := n.now().In(n.location)
	to := from.Add(n.lookahead)

	eateries, err := n.eateries.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list eateries: %w", err)
	}

	served := ServedItems(eateries, from, to)
	items := AllItems(served)
	result := &Result{}
	if len(items) == 0 {
		n.logger.Info("no items served in window", "from", from, "to", to)
		return result, nil
	}

	users, err := n.favorites.UsersWithFavorites(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var invalid []string
	for _, u := range users {
		if len(u.Tokens) == 0 {
			continue
		}
		matches := Match(served, u.FavoriteItems)
		if len(matches) == 0 {
			continue
		}
		result.Users++

		bad, err := n.sink.Send(ctx, u.Tokens, BuildMessage(matches))
		invalid = append(invalid, bad...)
		if err != nil {
			result.Failed++
			n.logger.Error("failed to notify user", "user_id", u.ID, "error", err)
			continue
		}
		result.Notified++
	}

	if len(invalid) > 0 {
		removed, err := n.favorites.DeleteTokens(ctx, invalid)
		if err != nil {
			n.logger.Error("failed to remove invalid tokens", "count", len(invalid), "error", err)
		}
		result.TokensRemoved = removed
	}

	n.logger.Info("notifications sent",
		"items", len(items),
		"users", result.Users,
		"notified", result.Notified,
		"failed", result.Failed,
		"tokens_removed", result.TokensRemoved,
	)
	return result, nil
}
