package static

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

const freege = `{
  "id": 46, "name": "Freege", "nameshort": "Freege",
  "campusArea": {"descr": "West Campus", "descrshort": "West"},
  "payMethods": [{"descr": "Free", "descrshort": "Free"}],
  "eateryTypes": [{"descr": "General", "descrshort": "General"}],
  "operatingHours": [{"weekday": "Monday", "events": [{"descr": "", "start": "00:00", "end": "23:59"}]}],
  "announcements": ["Bring a container", {"title": "Donations welcome"}],
  "diningItems": [{"item": "Apples", "healthy": true, "category": "Produce"}]
}`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "staticEateries.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_BareArray(t *testing.T) {
	path := writeFile(t, "["+freege+"]")

	eateries, err := NewLoader(path, discard).Load()
	require.NoError(t, err)
	require.Len(t, eateries, 1)

	e := eateries[0]
	assert.Equal(t, int64(46), e.ID)
	assert.Equal(t, "Freege", e.Name)
	assert.Equal(t, "Monday", e.OperatingHours[0].Weekday)
	require.Len(t, e.Announcements, 2)
	assert.Equal(t, "Bring a container", e.Announcements[0].Title)
	assert.Equal(t, "Donations welcome", e.Announcements[1].Title)
	assert.Nil(t, e.CornellDining)
}

func TestLoad_Envelope(t *testing.T) {
	path := writeFile(t, `{"eateries": [`+freege+`]}`)

	eateries, err := NewLoader(path, discard).Load()
	require.NoError(t, err)
	assert.Len(t, eateries, 1)
}

func TestLoad_EnvelopeWithoutEateries(t *testing.T) {
	path := writeFile(t, `{}`)

	eateries, err := NewLoader(path, discard).Load()
	require.NoError(t, err)
	assert.Empty(t, eateries)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	eateries, err := NewLoader(filepath.Join(t.TempDir(), "absent.json"), discard).Load()
	require.NoError(t, err)
	assert.NotNil(t, eateries)
	assert.Empty(t, eateries)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := writeFile(t, `[{"id": "not-a-number"}]`)

	_, err := NewLoader(path, discard).Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse static eateries")
}
