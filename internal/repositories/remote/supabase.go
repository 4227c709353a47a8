package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aadsleague/invitemgr/internal/models"
	"github.com/google/uuid"
)

const (
	// Table names in the remote store
	playersTable        = "players"
	eventsTable         = "events"
	participationsTable = "event_participants"

	restPathPrefix = "/rest/v1/"

	defaultHTTPTimeout = 10 * time.Second
)

// ErrNotConfigured is returned when the client is constructed without an
// endpoint/credential pair.
var ErrNotConfigured = errors.New("remote store not configured")

// Config controls how the Supabase client reaches the remote table API
type Config struct {
	// BaseURL is the project URL, e.g. https://xyz.supabase.co
	BaseURL string

	// APIKey is the service or anon key used for both apikey and bearer auth
	APIKey string

	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// SupabaseStore implements the Store interface against the Supabase REST
// table API (PostgREST).
type SupabaseStore struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewSupabase creates a new Supabase-backed store
func NewSupabase(cfg *Config) (*SupabaseStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BaseURL == "" || cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	httpClient := httpDoer(&http.Client{Timeout: defaultHTTPTimeout})
	if cfg.HTTPClient != nil {
		httpClient = cfg.HTTPClient
	}

	return &SupabaseStore{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// UpsertPlayers writes every player record to the remote store
func (s *SupabaseStore) UpsertPlayers(ctx context.Context, input *UpsertPlayersInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	return s.upsert(ctx, playersTable, input.Players)
}

// UpsertEvents writes every event record to the remote store
func (s *SupabaseStore) UpsertEvents(ctx context.Context, input *UpsertEventsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	return s.upsert(ctx, eventsTable, input.Events)
}

// UpsertParticipations writes every participation record to the remote store
func (s *SupabaseStore) UpsertParticipations(ctx context.Context, input *UpsertParticipationsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	return s.upsert(ctx, participationsTable, input.Participations)
}

// FetchPlayers retrieves all player records from the remote store
func (s *SupabaseStore) FetchPlayers(ctx context.Context, input *FetchPlayersInput) (*FetchPlayersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var players []*models.Player
	if err := s.fetch(ctx, playersTable, &players); err != nil {
		return nil, err
	}

	return &FetchPlayersOutput{Players: players}, nil
}

// FetchEvents retrieves all event records from the remote store
func (s *SupabaseStore) FetchEvents(ctx context.Context, input *FetchEventsInput) (*FetchEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var events []*models.Event
	if err := s.fetch(ctx, eventsTable, &events); err != nil {
		return nil, err
	}

	return &FetchEventsOutput{Events: events}, nil
}

// FetchParticipations retrieves all participation records from the remote store
func (s *SupabaseStore) FetchParticipations(ctx context.Context, input *FetchParticipationsInput) (*FetchParticipationsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var participations []*models.EventParticipation
	if err := s.fetch(ctx, participationsTable, &participations); err != nil {
		return nil, err
	}

	return &FetchParticipationsOutput{Participations: participations}, nil
}

// upsert POSTs the records to a table with merge-duplicates resolution, so
// re-pushing the same ids overwrites rather than conflicts.
func (s *SupabaseStore) upsert(ctx context.Context, table string, records any) error {
	body, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", table, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+restPathPrefix+table, bytes.NewReader(body))
	if err != nil {
		return err
	}

	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upsert %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(table, resp)
	}

	return nil
}

// fetch GETs all rows of a table into dst.
func (s *SupabaseStore) fetch(ctx context.Context, table string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+restPathPrefix+table+"?select=*", nil)
	if err != nil {
		return err
	}

	s.setHeaders(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return responseError(table, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", table, err)
	}

	return nil
}

func (s *SupabaseStore) setHeaders(req *http.Request) {
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("X-Request-ID", uuid.New().String())
}

func responseError(table string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("remote %s: unexpected status %d: %s", table, resp.StatusCode, strings.TrimSpace(string(body)))
}
