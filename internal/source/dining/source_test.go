package dining

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type SourceTestSuite struct {
	suite.Suite
	logger *slog.Logger
}

func (s *SourceTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSourceTestSuite(t *testing.T) {
	suite.Run(t, new(SourceTestSuite))
}

func (s *SourceTestSuite) newSource(handler http.HandlerFunc, attempts int) (*Source, *httptest.Server) {
	srv := httptest.NewServer(handler)
	s.T().Cleanup(srv.Close)
	return New(Config{
		URL:            srv.URL,
		Timeout:        2 * time.Second,
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, s.logger), srv
}

const validBody = `{
  "status": "success",
  "data": {"eateries": [
    {"id": 31, "name": "104West!", "nameshort": "104West", "campusArea": {"descr": "West Campus", "descrshort": "West"},
     "eateryTypes": [{"descr": "Dining Room", "descrshort": "Dining Room"}],
     "payMethods": [{"descr": "Meal Plan - Swipe", "descrshort": "Meal Plan - Swipe"}],
     "operatingHours": [{"date": "2025-01-13", "status": "EVENTS", "events": [
        {"descr": "Dinner", "startTimestamp": 1736809200, "endTimestamp": 1736816400,
         "menu": [{"category": "Entrees", "sortIdx": 1, "items": [{"item": "Tofu", "healthy": true, "sortIdx": 1}]}]}
     ]}]}
  ]},
  "message": null,
  "meta": {"copyright": "Cornell", "responseDttm": "2025-01-13"}
}`

func (s *SourceTestSuite) TestFetchEateries_Success() {
	src, _ := s.newSource(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(validBody))
	}, 1)

	eateries, err := src.FetchEateries(context.Background())
	s.Require().NoError(err)
	s.Require().Len(eateries, 1)

	e := eateries[0]
	s.Equal(int64(31), e.ID)
	s.Equal("West", e.CampusArea.DescrShort)
	s.Require().Len(e.OperatingHours, 1)
	s.Require().Len(e.OperatingHours[0].Events, 1)
	s.Equal(int64(1736809200), e.OperatingHours[0].Events[0].StartTimestamp)
	s.Equal("Tofu", e.OperatingHours[0].Events[0].Menu[0].Items[0].Item)
}

func (s *SourceTestSuite) TestFetchEateries_Non2xxIsFatal() {
	var calls atomic.Int32
	src, _ := s.newSource(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, 1)

	eateries, err := src.FetchEateries(context.Background())
	s.Error(err)
	s.Nil(eateries)
	s.Contains(err.Error(), "unexpected status: 502")
	s.Equal(int32(1), calls.Load())
}

func (s *SourceTestSuite) TestFetchEateries_RetriesWhenConfigured() {
	var calls atomic.Int32
	src, _ := s.newSource(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(validBody))
	}, 3)

	eateries, err := src.FetchEateries(context.Background())
	s.NoError(err)
	s.Len(eateries, 1)
	s.Equal(int32(2), calls.Load())
}

func (s *SourceTestSuite) TestFetchEateries_MissingEateries() {
	var calls atomic.Int32
	src, _ := s.newSource(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"status": "success", "data": {}}`))
	}, 3)

	_, err := src.FetchEateries(context.Background())
	s.ErrorIs(err, ErrInvalidResponse)
	s.Equal(int32(1), calls.Load(), "shape errors are not retried")
}

func (s *SourceTestSuite) TestFetchEateries_MalformedJSON() {
	src, _ := s.newSource(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [`))
	}, 1)

	_, err := src.FetchEateries(context.Background())
	s.ErrorIs(err, ErrInvalidResponse)
}

func (s *SourceTestSuite) TestFetchEateries_EmptyListIsValid() {
	src, _ := s.newSource(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"eateries": []}}`))
	}, 1)

	eateries, err := src.FetchEateries(context.Background())
	s.NoError(err)
	s.Empty(eateries)
}

func (s *SourceTestSuite) TestValidate_RejectsRecordsWithoutIdentity() {
	err := Validate(&APIResponse{Data: &Data{Eateries: []RawEatery{{ID: 0, Name: "Nameless"}}}})
	s.ErrorIs(err, ErrInvalidResponse)

	err = Validate(&APIResponse{Data: &Data{Eateries: []RawEatery{{ID: 4, Name: ""}}}})
	s.ErrorIs(err, ErrInvalidResponse)

	s.ErrorIs(Validate(nil), ErrInvalidResponse)
}

func (s *SourceTestSuite) TestFetchEateries_ContextCanceled() {
	src, _ := s.newSource(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(validBody))
	}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.FetchEateries(ctx)
	s.Error(err)
}
