package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/aadsleague/invitemgr/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSnapshot() {
	winnerID := int64(1)

	// Create a test snapshot
	snap := &models.Snapshot{
		Players: []*models.Player{
			{
				ID:           1,
				Name:         "Cory Wallace",
				Province:     models.ProvinceNB,
				Status:       models.PlayerStatusWinner,
				TotalEvents:  2,
				TOCQualified: true,
				CreatedAt:    s.testNow,
			},
		},
		Events: []*models.Event{
			{
				ID:        1,
				Name:      "Event 1 - Invitational",
				EventType: models.EventTypeInvitational,
				Status:    models.EventStatusCompleted,
				WinnerID:  &winnerID,
			},
		},
		Participations: []*models.EventParticipation{
			{
				ID:        1,
				EventID:   1,
				PlayerID:  1,
				IsDebut:   true,
				IsVeteran: false,
				AddedAt:   s.testNow,
			},
		},
		ExportedAt: s.testNow,
	}

	// Save the snapshot
	err := s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{
		Snapshot: snap,
	})
	s.Require().NoError(err)

	// Get the snapshot
	retrieved, err := s.repo.GetSnapshot(context.Background(), &GetSnapshotInput{})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	// Verify the snapshot contents
	s.Require().Len(retrieved.Players, 1)
	s.Equal("Cory Wallace", retrieved.Players[0].Name)
	s.Equal(models.ProvinceNB, retrieved.Players[0].Province)
	s.Equal(models.PlayerStatusWinner, retrieved.Players[0].Status)
	s.Equal(2, retrieved.Players[0].TotalEvents)
	s.True(retrieved.Players[0].TOCQualified)

	s.Require().Len(retrieved.Events, 1)
	s.Equal(models.EventStatusCompleted, retrieved.Events[0].Status)
	s.Require().NotNil(retrieved.Events[0].WinnerID)
	s.Equal(int64(1), *retrieved.Events[0].WinnerID)

	s.Require().Len(retrieved.Participations, 1)
	s.True(retrieved.Participations[0].IsDebut)
	s.False(retrieved.Participations[0].IsVeteran)
	s.Equal(s.testNow.Unix(), retrieved.Participations[0].AddedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetSnapshotNotFound() {
	// Get a snapshot that was never saved
	retrieved, err := s.repo.GetSnapshot(context.Background(), &GetSnapshotInput{})
	s.Require().ErrorIs(err, ErrSnapshotNotFound)
	s.Nil(retrieved)
}

func (s *RedisRepositoryTestSuite) TestSaveSnapshotOverwrites() {
	first := &models.Snapshot{
		Players:    []*models.Player{{ID: 1, Name: "Tom Holden", Province: models.ProvinceNS, Status: models.PlayerStatusProspect}},
		ExportedAt: s.testNow,
	}
	second := &models.Snapshot{
		Players:    []*models.Player{{ID: 1, Name: "Tom Holden", Province: models.ProvinceNS, Status: models.PlayerStatusActive, TotalEvents: 1}},
		ExportedAt: s.testNow.Add(time.Hour),
	}

	err := s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{Snapshot: first})
	s.Require().NoError(err)

	err = s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{Snapshot: second})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSnapshot(context.Background(), &GetSnapshotInput{})
	s.Require().NoError(err)
	s.Require().Len(retrieved.Players, 1)
	s.Equal(models.PlayerStatusActive, retrieved.Players[0].Status)
	s.Equal(1, retrieved.Players[0].TotalEvents)
}

func (s *RedisRepositoryTestSuite) TestSaveSnapshotNilInput() {
	err := s.repo.SaveSnapshot(context.Background(), nil)
	s.Error(err)

	err = s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{})
	s.Error(err)
}
