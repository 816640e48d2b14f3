package notify

import (
	"encoding/json"
	"fmt"
	"strings"

	"dining_sync/internal/domain"
)

const Title = "Some of your favorites are being served today!"

type Message struct {
	Title string
	Body  string
	Data  map[string]string
}

// BuildMessage summarizes matches for one user. matches must not be empty.
func BuildMessage(matches []domain.FavoriteMatch) Message {
	msg := Message{Title: Title, Data: map[string]string{"matches": matchesJSON(matches)}}

	if len(matches) == 1 {
		m := matches[0]
		switch len(m.Items) {
		case 1:
			msg.Body = fmt.Sprintf("%s is being served at %s today.", m.Items[0], m.EateryName)
		case 2:
			msg.Body = fmt.Sprintf("%s and %s are at %s today.", m.Items[0], m.Items[1], m.EateryName)
		default:
			msg.Body = fmt.Sprintf("Several favorites are at %s today.", m.EateryName)
		}
		return msg
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.EateryName
	}
	msg.Body = fmt.Sprintf("Favorites found at %s today. Check the app for details!", strings.Join(names, ", "))
	return msg
}

func matchesJSON(matches []domain.FavoriteMatch) string {
	byName := make(map[string][]string, len(matches))
	for _, m := range matches {
		byName[m.EateryName] = append(byName[m.EateryName], m.Items...)
	}
	raw, err := json.Marshal(byName)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
