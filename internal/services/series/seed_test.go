package series

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/aadsleague/invitemgr/internal/common/clock/mocks"
	"github.com/aadsleague/invitemgr/internal/models"
	snapshotMocks "github.com/aadsleague/invitemgr/internal/repositories/snapshot/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SeedTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	svc      Service
	ctx      context.Context
}

func (s *SeedTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	mockSnapRepo := snapshotMocks.NewMockRepository(s.mockCtrl)
	mockClock := clockMocks.NewMockClock(s.mockCtrl)

	mockClock.EXPECT().Now().Return(time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()
	mockSnapRepo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc, err := New(&Config{
		SnapshotRepo: mockSnapRepo,
		Clock:        mockClock,
	})
	s.Require().NoError(err)
	s.svc = svc

	s.ctx = context.Background()
}

func (s *SeedTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSeedTestSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}

func (s *SeedTestSuite) TestSeedDemoDataCounts() {
	out, err := s.svc.SeedDemoData(s.ctx, &SeedDemoDataInput{})
	s.Require().NoError(err)

	s.Equal(30, out.Players)
	s.Equal(7, out.Events)
	// Five historical events with ten participants each
	s.Equal(50, out.Participations)
}

func (s *SeedTestSuite) TestSeedDemoDataDebutFlags() {
	_, err := s.svc.SeedDemoData(s.ctx, &SeedDemoDataInput{})
	s.Require().NoError(err)

	exported, err := s.svc.Export(s.ctx, &ExportInput{})
	s.Require().NoError(err)

	debuts := 0
	for _, ep := range exported.Snapshot.Participations {
		if ep.IsDebut {
			debuts++
		}
		s.Equal(!ep.IsDebut, ep.IsVeteran)
	}

	// Every seeded player appears in events 1-5, so each debuts exactly once
	s.Equal(30, debuts)
}

func (s *SeedTestSuite) TestSeedDemoDataPlayerStats() {
	_, err := s.svc.SeedDemoData(s.ctx, &SeedDemoDataInput{})
	s.Require().NoError(err)

	// Dee Cormier played events 1, 2, and 4
	players, err := s.svc.ListPlayers(s.ctx, &ListPlayersInput{NameContains: "dee cormier"})
	s.Require().NoError(err)
	s.Require().Len(players.Players, 1)

	dee := players.Players[0]
	s.Equal(3, dee.TotalEvents)
	s.Equal(models.PlayerStatusActive, dee.Status)
	s.False(dee.TOCQualified)

	history, err := s.svc.GetPlayerHistory(s.ctx, &GetPlayerHistoryInput{PlayerID: dee.ID})
	s.Require().NoError(err)
	s.Require().Len(history.Entries, 3)
	s.True(history.Entries[0].Participation.IsDebut)
	s.False(history.Entries[1].Participation.IsDebut)
	s.False(history.Entries[2].Participation.IsDebut)
}

func (s *SeedTestSuite) TestSeedDemoDataEventSchedule() {
	_, err := s.svc.SeedDemoData(s.ctx, &SeedDemoDataInput{})
	s.Require().NoError(err)

	events, err := s.svc.ListEvents(s.ctx, &ListEventsInput{})
	s.Require().NoError(err)
	s.Require().Len(events.Events, 7)

	for _, summary := range events.Events {
		switch summary.Event.ID {
		case 6:
			s.Equal(models.EventStatusActive, summary.Event.Status)
			s.Equal(0, summary.ParticipantCount)
		case 7:
			s.Equal(models.EventTypeTOC, summary.Event.EventType)
			s.Equal(models.EventStatusPending, summary.Event.Status)
			s.Equal(0, summary.ParticipantCount)
		default:
			s.Equal(models.EventStatusCompleted, summary.Event.Status)
			s.Equal(10, summary.ParticipantCount)
		}
		s.Nil(summary.Event.WinnerID)
	}
}

func (s *SeedTestSuite) TestSeedDemoDataIsDeterministic() {
	_, err := s.svc.SeedDemoData(s.ctx, &SeedDemoDataInput{})
	s.Require().NoError(err)
	first, err := s.svc.Export(s.ctx, &ExportInput{})
	s.Require().NoError(err)

	_, err = s.svc.SeedDemoData(s.ctx, &SeedDemoDataInput{})
	s.Require().NoError(err)
	second, err := s.svc.Export(s.ctx, &ExportInput{})
	s.Require().NoError(err)

	s.Equal(first.Snapshot.Players, second.Snapshot.Players)
	s.Equal(first.Snapshot.Events, second.Snapshot.Events)
	s.Equal(first.Snapshot.Participations, second.Snapshot.Participations)
}
