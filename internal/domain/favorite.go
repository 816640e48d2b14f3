package domain

// FavoriteUser is a user whose favorites intersect the items being served,
// with every registered device token.
type FavoriteUser struct {
	ID            int64    `json:"id"`
	FavoriteItems []string `json:"favoriteItems"`
	Tokens        []string `json:"tokens"`
}

// FavoriteMatch lists the favorite items served at one eatery.
type FavoriteMatch struct {
	EateryID   int64    `json:"eateryId"`
	EateryName string   `json:"eateryName"`
	Items      []string `json:"items"`
}
