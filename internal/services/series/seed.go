package series

import (
	"context"
	"fmt"

	"github.com/aadsleague/invitemgr/internal/models"
)

// demoEvents is the fixed event schedule the series ships with. Events are
// seeded, not created at runtime; only status and winner change afterwards.
var demoEvents = []*models.Event{
	{ID: 1, Name: "Event 1 - Invitational", EventType: models.EventTypeInvitational, Status: models.EventStatusCompleted},
	{ID: 2, Name: "Event 2 - Invitational", EventType: models.EventTypeInvitational, Status: models.EventStatusCompleted},
	{ID: 3, Name: "Event 3 - Invitational", EventType: models.EventTypeInvitational, Status: models.EventStatusCompleted},
	{ID: 4, Name: "Event 4 - Invitational", EventType: models.EventTypeInvitational, Status: models.EventStatusCompleted},
	{ID: 5, Name: "Event 5 - Invitational", EventType: models.EventTypeInvitational, Status: models.EventStatusCompleted},
	{ID: 6, Name: "Event 6 - Invitational", EventType: models.EventTypeInvitational, Status: models.EventStatusActive},
	{ID: 7, Name: "Event 7 - Tournament of Champions", EventType: models.EventTypeTOC, Status: models.EventStatusPending},
}

type demoPlayer struct {
	name     string
	province models.Province
}

// demoPlayers is the full series roster drawn from events 1-5
var demoPlayers = []demoPlayer{
	// New Brunswick (NB)
	{"Cory Wallace", models.ProvinceNB},
	{"Dee Cormier", models.ProvinceNB},
	{"Royce Milliea", models.ProvinceNB},
	{"Miguel Velasquez", models.ProvinceNB},
	{"Gerry Johnston", models.ProvinceNB},
	{"Tyler Stewart", models.ProvinceNB},
	{"Denis Leblanc", models.ProvinceNB},
	{"Micheal Léger", models.ProvinceNB},
	{"Kyle Gray", models.ProvinceNB},
	{"Tyler Cyr", models.ProvinceNB},
	{"Pitou Pellerin", models.ProvinceNB},
	{"Wayne Chapman", models.ProvinceNB},
	{"Don Higgins", models.ProvinceNB},
	{"Zack Davis", models.ProvinceNB},
	{"Dana Moss", models.ProvinceNB},
	{"Chad Arsenault", models.ProvinceNB},
	{"Tony Solomon", models.ProvinceNB},
	// Nova Scotia (NS)
	{"Steve Rushton", models.ProvinceNS},
	{"Tom Holden", models.ProvinceNS},
	{"Corey O'Brien", models.ProvinceNS},
	{"Drake Berry", models.ProvinceNS},
	{"Jon Casey", models.ProvinceNS},
	{"Jordan Boyd", models.ProvinceNS},
	{"Colby Burke", models.ProvinceNS},
	{"Arron Gilbert", models.ProvinceNS},
	{"Scott Ferdinand", models.ProvinceNS},
	// Prince Edward Island (PEI)
	{"Ricky Chaisson", models.ProvincePEI},
	{"Mark MacEachern", models.ProvincePEI},
	{"Kevin Blanchard", models.ProvincePEI},
	{"Corey Lefort", models.ProvincePEI},
}

type demoRoster struct {
	eventID int64
	players []string
}

// demoRosters is the historical participation schedule for events 1-5, in
// true chronological order so debut flags come out right on replay
var demoRosters = []demoRoster{
	{1, []string{"Cory Wallace", "Dee Cormier", "Royce Milliea", "Miguel Velasquez", "Gerry Johnston", "Tyler Stewart", "Denis Leblanc", "Micheal Léger", "Steve Rushton", "Tom Holden"}},
	{2, []string{"Dee Cormier", "Denis Leblanc", "Kyle Gray", "Tyler Cyr", "Tyler Stewart", "Micheal Léger", "Pitou Pellerin", "Tom Holden", "Corey O'Brien", "Steve Rushton"}},
	{3, []string{"Tyler Cyr", "Kyle Gray", "Wayne Chapman", "Don Higgins", "Pitou Pellerin", "Zack Davis", "Drake Berry", "Jon Casey", "Ricky Chaisson", "Mark MacEachern"}},
	{4, []string{"Don Higgins", "Wayne Chapman", "Dana Moss", "Cory Wallace", "Dee Cormier", "Jordan Boyd", "Drake Berry", "Colby Burke", "Kevin Blanchard", "Mark MacEachern"}},
	{5, []string{"Chad Arsenault", "Denis Leblanc", "Tony Solomon", "Arron Gilbert", "Corey O'Brien", "Steve Rushton", "Jon Casey", "Scott Ferdinand", "Corey Lefort", "Ricky Chaisson"}},
}

// SeedDemoData seeds the fixed demo roster of events, players, and historical
// participations. Participations are replayed through the same roster logic
// used at runtime, in schedule order, so debut flags match the real history.
func (s *service) SeedDemoData(ctx context.Context, input *SeedDemoDataInput) (*SeedDemoDataOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make([]*models.Player, 0, len(demoPlayers))
	s.events = make([]*models.Event, 0, len(demoEvents))
	s.participations = make([]*models.EventParticipation, 0)
	s.nextPlayerID = 1
	s.nextParticipationID = 1

	now := s.clock.Now()

	for _, e := range demoEvents {
		s.events = append(s.events, cloneEvent(e))
	}

	byName := make(map[string]*models.Player, len(demoPlayers))
	for _, dp := range demoPlayers {
		player := &models.Player{
			ID:          s.nextPlayerID,
			Name:        dp.name,
			Province:    dp.province,
			Status:      models.PlayerStatusProspect,
			TotalEvents: 0,
			CreatedAt:   now,
		}
		s.nextPlayerID++
		s.players = append(s.players, player)
		byName[dp.name] = player
	}

	for _, roster := range demoRosters {
		for _, name := range roster.players {
			player, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("demo roster references unknown player %q", name)
			}
			if _, err := s.addToRosterLocked(roster.eventID, player.ID); err != nil {
				return nil, fmt.Errorf("seed event %d: %w", roster.eventID, err)
			}
		}
	}

	if err := s.flushLocked(ctx); err != nil {
		return nil, err
	}

	return &SeedDemoDataOutput{
		Players:        len(s.players),
		Events:         len(s.events),
		Participations: len(s.participations),
	}, nil
}
