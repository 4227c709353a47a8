package series

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aadsleague/invitemgr/internal/common/clock"
	"github.com/aadsleague/invitemgr/internal/models"
	"github.com/aadsleague/invitemgr/internal/repositories/remote"
	snapshotRepo "github.com/aadsleague/invitemgr/internal/repositories/snapshot"
)

const (
	defaultRosterCapacity      = 10
	defaultChampionshipEventID = 7
)

// service implements the Service interface. It owns the three collections
// exclusively; callers only ever see copies of the records.
type service struct {
	config       *Config
	snapshotRepo snapshotRepo.Repository
	remoteStore  remote.Store
	clock        clock.Clock

	// mu serializes all access to the collections. Discord dispatches
	// handlers on its own goroutines, so the engine is the single writer.
	mu             sync.Mutex
	players        []*models.Player
	events         []*models.Event
	participations []*models.EventParticipation

	nextPlayerID        int64
	nextParticipationID int64
}

// New creates a new series service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SnapshotRepo == nil {
		return nil, ErrNilSnapshotRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	capacity := cfg.RosterCapacity
	if capacity <= 0 {
		capacity = defaultRosterCapacity
	}

	championshipID := cfg.ChampionshipEventID
	if championshipID == 0 {
		championshipID = defaultChampionshipEventID
	}

	return &service{
		config: &Config{
			SnapshotRepo:        cfg.SnapshotRepo,
			RemoteStore:         cfg.RemoteStore,
			Clock:               cfg.Clock,
			RosterCapacity:      capacity,
			ChampionshipEventID: championshipID,
		},
		snapshotRepo:        cfg.SnapshotRepo,
		remoteStore:         cfg.RemoteStore,
		clock:               cfg.Clock,
		nextPlayerID:        1,
		nextParticipationID: 1,
	}, nil
}

// AddPlayer creates a new player with a unique, case-insensitive name
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("player name cannot be empty")
	}

	if !input.Province.IsValid() {
		return nil, ErrInvalidProvince
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.players {
		if strings.EqualFold(p.Name, name) {
			return nil, ErrDuplicateName
		}
	}

	player := &models.Player{
		ID:           s.nextPlayerID,
		Name:         name,
		Province:     input.Province,
		Status:       models.PlayerStatusProspect,
		TotalEvents:  0,
		TOCQualified: false,
		CreatedAt:    s.clock.Now(),
	}
	s.nextPlayerID++
	s.players = append(s.players, player)

	if err := s.flushLocked(ctx); err != nil {
		return nil, err
	}

	return &AddPlayerOutput{Player: clonePlayer(player)}, nil
}

// GetPlayer retrieves a player by ID
func (s *service) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player := s.findPlayerLocked(input.PlayerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	return &GetPlayerOutput{Player: clonePlayer(player)}, nil
}

// ListPlayers returns players matching the conjunction of the supplied
// filters, in insertion order
func (s *service) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	if input == nil {
		input = &ListPlayersInput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(input.NameContains)

	players := make([]*models.Player, 0, len(s.players))
	for _, p := range s.players {
		if input.Province != "" && p.Province != input.Province {
			continue
		}
		if input.Status != "" && p.Status != input.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		players = append(players, clonePlayer(p))
	}

	return &ListPlayersOutput{Players: players}, nil
}

// ListInviteCandidates returns players with 1-2 participations who are not
// yet TOC qualified, ordered by total events descending
func (s *service) ListInviteCandidates(ctx context.Context, input *ListInviteCandidatesInput) (*ListInviteCandidatesOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidates := make([]*models.Player, 0)
	for _, p := range s.players {
		if p.TotalEvents > 0 && p.TotalEvents < 3 && !p.TOCQualified {
			candidates = append(candidates, clonePlayer(p))
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].TotalEvents > candidates[j].TotalEvents
	})

	return &ListInviteCandidatesOutput{Players: candidates}, nil
}

// GetPlayerHistory returns a player's participations joined with their events
func (s *service) GetPlayerHistory(ctx context.Context, input *GetPlayerHistoryInput) (*GetPlayerHistoryOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player := s.findPlayerLocked(input.PlayerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	entries := make([]*HistoryEntry, 0)
	for _, ep := range s.participations {
		if ep.PlayerID != player.ID {
			continue
		}

		event := s.findEventLocked(ep.EventID)
		if event == nil {
			continue
		}

		entries = append(entries, &HistoryEntry{
			Event:         cloneEvent(event),
			Participation: cloneParticipation(ep),
			IsWinner:      event.WinnerID != nil && *event.WinnerID == player.ID,
		})
	}

	return &GetPlayerHistoryOutput{
		Player:  clonePlayer(player),
		Entries: entries,
	}, nil
}

// ListEvents returns all events with participant counts and winner names
func (s *service) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]*EventSummary, 0, len(s.events))
	for _, e := range s.events {
		summary := &EventSummary{
			Event:            cloneEvent(e),
			ParticipantCount: len(s.rosterLocked(e.ID)),
		}

		if e.WinnerID != nil {
			if winner := s.findPlayerLocked(*e.WinnerID); winner != nil {
				summary.WinnerName = winner.Name
			}
		}

		summaries = append(summaries, summary)
	}

	return &ListEventsOutput{Events: summaries}, nil
}

// GetSummary returns the dashboard counts
func (s *service) GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &GetSummaryOutput{
		TotalPlayers: len(s.players),
	}

	for _, e := range s.events {
		if e.Status == models.EventStatusCompleted {
			out.CompletedEvents++
		}
	}

	for _, p := range s.players {
		if p.TOCQualified {
			out.TOCQualified++
		}
		if p.TotalEvents == 0 {
			out.Prospects++
		}
	}

	return out, nil
}

// GetRoster returns an event's current roster
func (s *service) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event := s.findEventLocked(input.EventID)
	if event == nil {
		return nil, ErrEventNotFound
	}

	entries := make([]*RosterEntry, 0)
	for _, ep := range s.rosterLocked(event.ID) {
		player := s.findPlayerLocked(ep.PlayerID)
		if player == nil {
			continue
		}
		entries = append(entries, &RosterEntry{
			Player:        clonePlayer(player),
			Participation: cloneParticipation(ep),
		})
	}

	return &GetRosterOutput{
		Event:    cloneEvent(event),
		Entries:  entries,
		Capacity: s.config.RosterCapacity,
	}, nil
}

// ListRosterCandidates returns players not yet on an event's roster
func (s *service) ListRosterCandidates(ctx context.Context, input *ListRosterCandidatesInput) (*ListRosterCandidatesOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event := s.findEventLocked(input.EventID)
	if event == nil {
		return nil, ErrEventNotFound
	}

	onRoster := make(map[int64]bool)
	for _, ep := range s.rosterLocked(event.ID) {
		onRoster[ep.PlayerID] = true
	}

	search := strings.ToLower(input.NameContains)

	players := make([]*models.Player, 0)
	for _, p := range s.players {
		if onRoster[p.ID] {
			continue
		}
		if input.Province != "" && p.Province != input.Province {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		players = append(players, clonePlayer(p))
	}

	return &ListRosterCandidatesOutput{Players: players}, nil
}

// AddToRoster records a player's participation in an event. The debut flag is
// computed at insertion time and never recomputed afterwards.
func (s *service) AddToRoster(ctx context.Context, input *AddToRosterInput) (*AddToRosterOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	participation, err := s.addToRosterLocked(input.EventID, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if err := s.flushLocked(ctx); err != nil {
		return nil, err
	}

	return &AddToRosterOutput{Participation: cloneParticipation(participation)}, nil
}

// addToRosterLocked applies the participation lifecycle rules. Callers must
// hold s.mu.
func (s *service) addToRosterLocked(eventID, playerID int64) (*models.EventParticipation, error) {
	event := s.findEventLocked(eventID)
	if event == nil {
		return nil, ErrEventNotFound
	}

	if event.ID == s.config.ChampionshipEventID {
		return nil, ErrChampionshipRoster
	}

	player := s.findPlayerLocked(playerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	if s.findParticipationLocked(eventID, playerID) != nil {
		return nil, ErrDuplicateParticipant
	}

	if len(s.rosterLocked(eventID)) >= s.config.RosterCapacity {
		return nil, ErrRosterFull
	}

	// Debut is decided before the increment
	isDebut := player.TotalEvents == 0

	participation := &models.EventParticipation{
		ID:        s.nextParticipationID,
		EventID:   eventID,
		PlayerID:  playerID,
		IsDebut:   isDebut,
		IsVeteran: !isDebut,
		AddedAt:   s.clock.Now(),
	}
	s.nextParticipationID++
	s.participations = append(s.participations, participation)

	player.TotalEvents++
	if player.Status == models.PlayerStatusProspect {
		player.Status = models.PlayerStatusActive
	}

	return participation, nil
}

// RemoveFromRoster deletes a player's participation in an event. Debut flags
// on other participations are never recomputed.
func (s *service) RemoveFromRoster(ctx context.Context, input *RemoveFromRosterInput) (*RemoveFromRosterOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event := s.findEventLocked(input.EventID)
	if event == nil {
		return nil, ErrEventNotFound
	}

	if event.ID == s.config.ChampionshipEventID {
		return nil, ErrChampionshipRoster
	}

	index := -1
	for i, ep := range s.participations {
		if ep.EventID == input.EventID && ep.PlayerID == input.PlayerID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrParticipationNotFound
	}

	s.participations = append(s.participations[:index], s.participations[index+1:]...)

	player := s.findPlayerLocked(input.PlayerID)
	if player != nil {
		player.TotalEvents--
		if player.TotalEvents < 0 {
			player.TotalEvents = 0
		}
		// A player whose last participation is removed reverts fully to
		// Prospect, win history included
		if player.TotalEvents == 0 {
			player.Status = models.PlayerStatusProspect
		}
	}

	if err := s.flushLocked(ctx); err != nil {
		return nil, err
	}

	out := &RemoveFromRosterOutput{}
	if player != nil {
		out.Player = clonePlayer(player)
	}
	return out, nil
}

// SetEventWinner declares an event winner, completes the event, qualifies the
// winner for the championship, and enrolls them in it exactly once
func (s *service) SetEventWinner(ctx context.Context, input *SetEventWinnerInput) (*SetEventWinnerOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event := s.findEventLocked(input.EventID)
	if event == nil {
		return nil, ErrEventNotFound
	}

	roster := s.rosterLocked(event.ID)
	if len(roster) == 0 {
		return nil, ErrInvalidWinner
	}

	onRoster := false
	for _, ep := range roster {
		if ep.PlayerID == input.WinnerID {
			onRoster = true
			break
		}
	}
	if !onRoster {
		return nil, ErrInvalidWinner
	}

	winner := s.findPlayerLocked(input.WinnerID)
	if winner == nil {
		return nil, ErrPlayerNotFound
	}

	winnerID := input.WinnerID
	event.WinnerID = &winnerID
	event.Status = models.EventStatusCompleted

	winner.Status = models.PlayerStatusWinner
	winner.TOCQualified = true

	// Enroll the winner in the championship if they are not already in it.
	// Winners never count as debuting there, and the enrollment does not
	// add to their event total.
	var championshipEntry *models.EventParticipation
	if s.findParticipationLocked(s.config.ChampionshipEventID, winner.ID) == nil {
		championshipEntry = &models.EventParticipation{
			ID:        s.nextParticipationID,
			EventID:   s.config.ChampionshipEventID,
			PlayerID:  winner.ID,
			IsDebut:   false,
			IsVeteran: true,
			AddedAt:   s.clock.Now(),
		}
		s.nextParticipationID++
		s.participations = append(s.participations, championshipEntry)
	}

	if err := s.flushLocked(ctx); err != nil {
		return nil, err
	}

	out := &SetEventWinnerOutput{
		Event:  cloneEvent(event),
		Winner: clonePlayer(winner),
	}
	if championshipEntry != nil {
		out.ChampionshipEntry = cloneParticipation(championshipEntry)
	}
	return out, nil
}

// Export produces a serializable snapshot of all three collections
func (s *service) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &ExportOutput{Snapshot: s.snapshotLocked()}, nil
}

// Import replaces the collections with a snapshot payload's contents.
// The payload is parsed and validated in full before any state changes, so a
// malformed payload leaves prior state untouched. Collections absent from the
// payload are left as they were.
func (s *service) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, ErrMalformedSnapshot
	}

	var snap models.Snapshot
	if err := json.Unmarshal(input.Data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	if err := validateSnapshot(&snap); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := &ImportOutput{}
	if snap.Players != nil {
		s.players = snap.Players
		out.PlayersReplaced = true
	}
	if snap.Events != nil {
		s.events = snap.Events
		out.EventsReplaced = true
	}
	if snap.Participations != nil {
		s.participations = snap.Participations
		out.ParticipationsReplaced = true
	}

	s.recomputeCountersLocked()

	if err := s.flushLocked(ctx); err != nil {
		return nil, err
	}

	return out, nil
}

// PushAll upserts every record to the remote store, keyed by id. There is no
// transactionality across the three tables; the first failure is returned
// after whatever portion completed.
func (s *service) PushAll(ctx context.Context, input *PushAllInput) (*PushAllOutput, error) {
	if s.remoteStore == nil {
		return nil, ErrRemoteUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.remoteStore.UpsertPlayers(ctx, &remote.UpsertPlayersInput{Players: s.players}); err != nil {
		return nil, fmt.Errorf("push players: %w", err)
	}

	if err := s.remoteStore.UpsertEvents(ctx, &remote.UpsertEventsInput{Events: s.events}); err != nil {
		return nil, fmt.Errorf("push events: %w", err)
	}

	if err := s.remoteStore.UpsertParticipations(ctx, &remote.UpsertParticipationsInput{Participations: s.participations}); err != nil {
		return nil, fmt.Errorf("push participations: %w", err)
	}

	return &PushAllOutput{
		Players:        len(s.players),
		Events:         len(s.events),
		Participations: len(s.participations),
	}, nil
}

// PullAll replaces local state with the remote store's records. Each
// collection is replaced as it arrives; a failure partway leaves the earlier
// collections replaced and is surfaced as a single error.
func (s *service) PullAll(ctx context.Context, input *PullAllInput) (*PullAllOutput, error) {
	if s.remoteStore == nil {
		return nil, ErrRemoteUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	playersOut, err := s.remoteStore.FetchPlayers(ctx, &remote.FetchPlayersInput{})
	if err != nil {
		return nil, fmt.Errorf("pull players: %w", err)
	}
	s.players = playersOut.Players

	eventsOut, err := s.remoteStore.FetchEvents(ctx, &remote.FetchEventsInput{})
	if err != nil {
		return nil, fmt.Errorf("pull events: %w", err)
	}
	s.events = eventsOut.Events

	participationsOut, err := s.remoteStore.FetchParticipations(ctx, &remote.FetchParticipationsInput{})
	if err != nil {
		return nil, fmt.Errorf("pull participations: %w", err)
	}
	s.participations = participationsOut.Participations

	s.recomputeCountersLocked()

	if err := s.flushLocked(ctx); err != nil {
		return nil, err
	}

	return &PullAllOutput{
		Players:        len(s.players),
		Events:         len(s.events),
		Participations: len(s.participations),
	}, nil
}

// Load restores the collections from the persisted snapshot, tolerating its
// absence
func (s *service) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	snap, err := s.snapshotRepo.GetSnapshot(ctx, &snapshotRepo.GetSnapshotInput{})
	if err != nil {
		if err == snapshotRepo.ErrSnapshotNotFound {
			return &LoadOutput{Restored: false}, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Players != nil {
		s.players = snap.Players
	}
	if snap.Events != nil {
		s.events = snap.Events
	}
	if snap.Participations != nil {
		s.participations = snap.Participations
	}

	s.recomputeCountersLocked()

	return &LoadOutput{Restored: true}, nil
}

// findPlayerLocked returns the live player record, or nil. Callers must hold s.mu.
func (s *service) findPlayerLocked(id int64) *models.Player {
	for _, p := range s.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// findEventLocked returns the live event record, or nil. Callers must hold s.mu.
func (s *service) findEventLocked(id int64) *models.Event {
	for _, e := range s.events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// findParticipationLocked returns the live participation for the pair, or nil.
// Callers must hold s.mu.
func (s *service) findParticipationLocked(eventID, playerID int64) *models.EventParticipation {
	for _, ep := range s.participations {
		if ep.EventID == eventID && ep.PlayerID == playerID {
			return ep
		}
	}
	return nil
}

// rosterLocked returns the live participations for an event. Callers must hold s.mu.
func (s *service) rosterLocked(eventID int64) []*models.EventParticipation {
	roster := make([]*models.EventParticipation, 0)
	for _, ep := range s.participations {
		if ep.EventID == eventID {
			roster = append(roster, ep)
		}
	}
	return roster
}

// snapshotLocked clones the collections into a snapshot. Callers must hold s.mu.
func (s *service) snapshotLocked() *models.Snapshot {
	snap := &models.Snapshot{
		Players:        make([]*models.Player, 0, len(s.players)),
		Events:         make([]*models.Event, 0, len(s.events)),
		Participations: make([]*models.EventParticipation, 0, len(s.participations)),
		ExportedAt:     s.clock.Now(),
	}

	for _, p := range s.players {
		snap.Players = append(snap.Players, clonePlayer(p))
	}
	for _, e := range s.events {
		snap.Events = append(snap.Events, cloneEvent(e))
	}
	for _, ep := range s.participations {
		snap.Participations = append(snap.Participations, cloneParticipation(ep))
	}

	return snap
}

// flushLocked persists the current collections. Callers must hold s.mu.
func (s *service) flushLocked(ctx context.Context) error {
	err := s.snapshotRepo.SaveSnapshot(ctx, &snapshotRepo.SaveSnapshotInput{
		Snapshot: s.snapshotLocked(),
	})
	if err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}

// recomputeCountersLocked resets the monotonic id counters after a wholesale
// collection replacement. Callers must hold s.mu.
func (s *service) recomputeCountersLocked() {
	s.nextPlayerID = 1
	for _, p := range s.players {
		if p.ID >= s.nextPlayerID {
			s.nextPlayerID = p.ID + 1
		}
	}

	s.nextParticipationID = 1
	for _, ep := range s.participations {
		if ep.ID >= s.nextParticipationID {
			s.nextParticipationID = ep.ID + 1
		}
	}
}

// validateSnapshot rejects payloads carrying values outside the closed enums
// before any of them reach the collections
func validateSnapshot(snap *models.Snapshot) error {
	for _, p := range snap.Players {
		if p == nil || !p.Province.IsValid() {
			return ErrMalformedSnapshot
		}
		switch p.Status {
		case models.PlayerStatusProspect, models.PlayerStatusActive, models.PlayerStatusWinner, models.PlayerStatusTOCQualified:
		default:
			return ErrMalformedSnapshot
		}
	}

	for _, e := range snap.Events {
		if e == nil {
			return ErrMalformedSnapshot
		}
		switch e.EventType {
		case models.EventTypeInvitational, models.EventTypeTOC:
		default:
			return ErrMalformedSnapshot
		}
		switch e.Status {
		case models.EventStatusPending, models.EventStatusActive, models.EventStatusCompleted:
		default:
			return ErrMalformedSnapshot
		}
	}

	for _, ep := range snap.Participations {
		if ep == nil {
			return ErrMalformedSnapshot
		}
	}

	return nil
}

func clonePlayer(p *models.Player) *models.Player {
	cp := *p
	return &cp
}

func cloneEvent(e *models.Event) *models.Event {
	ce := *e
	if e.WinnerID != nil {
		winnerID := *e.WinnerID
		ce.WinnerID = &winnerID
	}
	return &ce
}

func cloneParticipation(ep *models.EventParticipation) *models.EventParticipation {
	cp := *ep
	return &cp
}
