package static

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// Loader reads the curated static eatery seed from local storage.
type Loader struct {
	path   string
	logger *slog.Logger
}

func NewLoader(path string, logger *slog.Logger) *Loader {
	return &Loader{
		path:   path,
		logger: logger.With("source", "static"),
	}
}

// Load returns the seed's eateries. A missing file is not an error.
func (l *Loader) Load() ([]RawEatery, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Info("no static eateries file found, skipping", "path", l.path)
		return []RawEatery{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read static eateries: %w", err)
	}

	eateries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse static eateries %s: %w", l.path, err)
	}
	return eateries, nil
}

// Parse accepts a bare array or an {"eateries": [...]} envelope.
func Parse(data []byte) ([]RawEatery, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var eateries []RawEatery
		if err := json.Unmarshal(trimmed, &eateries); err != nil {
			return nil, err
		}
		return eateries, nil
	}

	var envelope struct {
		Eateries []RawEatery `json:"eateries"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	if envelope.Eateries == nil {
		return []RawEatery{}, nil
	}
	return envelope.Eateries, nil
}
