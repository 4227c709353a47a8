package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aadsleague/invitemgr/internal/models"
	"github.com/stretchr/testify/suite"
)

type SupabaseStoreTestSuite struct {
	suite.Suite
	testNow time.Time
}

func (s *SupabaseStoreTestSuite) SetupTest() {
	s.testNow = time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
}

func TestSupabaseStoreTestSuite(t *testing.T) {
	suite.Run(t, new(SupabaseStoreTestSuite))
}

func (s *SupabaseStoreTestSuite) newStore(handler http.HandlerFunc) (*SupabaseStore, *httptest.Server) {
	server := httptest.NewServer(handler)

	store, err := NewSupabase(&Config{
		BaseURL:    server.URL,
		APIKey:     "test-key",
		HTTPClient: server.Client(),
	})
	s.Require().NoError(err)

	return store, server
}

func (s *SupabaseStoreTestSuite) TestNewSupabaseRequiresCredentials() {
	_, err := NewSupabase(&Config{BaseURL: "", APIKey: ""})
	s.Require().ErrorIs(err, ErrNotConfigured)

	_, err = NewSupabase(&Config{BaseURL: "https://example.supabase.co"})
	s.Require().ErrorIs(err, ErrNotConfigured)

	_, err = NewSupabase(nil)
	s.Error(err)
}

func (s *SupabaseStoreTestSuite) TestUpsertPlayers() {
	var gotPath, gotPrefer, gotAPIKey, gotAuth string
	var gotBody []*models.Player

	store, server := s.newStore(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPrefer = r.Header.Get("Prefer")
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		s.NotEmpty(r.Header.Get("X-Request-ID"))

		err := json.NewDecoder(r.Body).Decode(&gotBody)
		s.Require().NoError(err)

		w.WriteHeader(http.StatusCreated)
	})
	defer server.Close()

	err := store.UpsertPlayers(context.Background(), &UpsertPlayersInput{
		Players: []*models.Player{
			{ID: 1, Name: "Cory Wallace", Province: models.ProvinceNB, Status: models.PlayerStatusActive, TotalEvents: 2, CreatedAt: s.testNow},
		},
	})
	s.Require().NoError(err)

	s.Equal("/rest/v1/players", gotPath)
	s.Equal("resolution=merge-duplicates", gotPrefer)
	s.Equal("test-key", gotAPIKey)
	s.Equal("Bearer test-key", gotAuth)
	s.Require().Len(gotBody, 1)
	s.Equal("Cory Wallace", gotBody[0].Name)
}

func (s *SupabaseStoreTestSuite) TestUpsertErrorStatus() {
	store, server := s.newStore(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid api key"}`))
	})
	defer server.Close()

	err := store.UpsertEvents(context.Background(), &UpsertEventsInput{
		Events: []*models.Event{{ID: 1, Name: "Event 1", EventType: models.EventTypeInvitational, Status: models.EventStatusPending}},
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "401")
	s.Contains(err.Error(), "invalid api key")
}

func (s *SupabaseStoreTestSuite) TestFetchEvents() {
	winnerID := int64(3)

	store, server := s.newStore(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/rest/v1/events", r.URL.Path)
		s.Equal("*", r.URL.Query().Get("select"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]*models.Event{
			{ID: 1, Name: "Event 1 - Invitational", EventType: models.EventTypeInvitational, Status: models.EventStatusCompleted, WinnerID: &winnerID},
			{ID: 7, Name: "Event 7 - Tournament of Champions", EventType: models.EventTypeTOC, Status: models.EventStatusPending},
		})
	})
	defer server.Close()

	out, err := store.FetchEvents(context.Background(), &FetchEventsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Events, 2)
	s.Require().NotNil(out.Events[0].WinnerID)
	s.Equal(int64(3), *out.Events[0].WinnerID)
	s.Equal(models.EventTypeTOC, out.Events[1].EventType)
}

func (s *SupabaseStoreTestSuite) TestFetchParticipationsDecodeError() {
	store, server := s.newStore(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})
	defer server.Close()

	_, err := store.FetchParticipations(context.Background(), &FetchParticipationsInput{})
	s.Require().Error(err)
	s.Contains(err.Error(), "decode")
}
