package cache

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"dining_sync/internal/domain"
)

type RemoteRefresherTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
}

func (s *RemoteRefresherTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
}

func (s *RemoteRefresherTestSuite) TearDownTest() {
	s.server.Close()
}

func TestRemoteRefresherTestSuite(t *testing.T) {
	suite.Run(t, new(RemoteRefresherTestSuite))
}

func (s *RemoteRefresherTestSuite) refresher() *RemoteRefresher {
	return NewRemoteRefresher(RemoteConfig{
		ServerURL: s.server.URL + "/",
		Header:    "X-Test-Secret",
		Secret:    "hunter2",
		Timeout:   2 * time.Second,
	}, discardLogger())
}

func (s *RemoteRefresherTestSuite) TestRefresh_PostsEateriesWithSecret() {
	var got RefreshRequest
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal(RefreshPath, r.URL.Path)
		s.Equal("hunter2", r.Header.Get("X-Test-Secret"))
		s.Equal("application/json", r.Header.Get("Content-Type"))
		s.NoError(json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(RefreshResponse{OK: true, Tag: "t-1", Count: len(got.Eateries)})
	}

	err := s.refresher().Refresh(context.Background(), []domain.Eatery{{CornellID: 3, Name: "Risley"}})

	s.NoError(err)
	s.Require().Len(got.Eateries, 1)
	s.Equal("Risley", got.Eateries[0].Name)
}

func (s *RemoteRefresherTestSuite) TestRefresh_EmptyListStillSendsArray() {
	var raw map[string]json.RawMessage
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.NoError(json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusOK)
	}

	err := s.refresher().Refresh(context.Background(), []domain.Eatery{})

	s.NoError(err)
	s.JSONEq(`[]`, string(raw["eateries"]))
}

func (s *RemoteRefresherTestSuite) TestRefresh_RejectedStatus() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":"UNAUTHORIZED"}`, http.StatusUnauthorized)
	}

	err := s.refresher().Refresh(context.Background(), nil)

	s.Error(err)
	s.Contains(err.Error(), "unexpected status: 401")
}

func (s *RemoteRefresherTestSuite) TestRefresh_ServerUnreachable() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {}
	r := s.refresher()
	s.server.Close()

	s.Error(r.Refresh(context.Background(), nil))
}
