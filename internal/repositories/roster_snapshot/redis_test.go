package rostersnapshot_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/errors"
	mockclock "github.com/KirkDiggler/superstar-draft/internal/pkg/clock/mock"
	rostersnapshot "github.com/KirkDiggler/superstar-draft/internal/repositories/roster_snapshot"
	"github.com/KirkDiggler/superstar-draft/internal/testutils"
)

const testSessionID = "session_1"

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	mr        *miniredis.Miniredis
	repo      rostersnapshot.Repository
	ctx       context.Context
	now       time.Time
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := rostersnapshot.NewRedisRepository(&rostersnapshot.Config{
		Client: client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepositoryValidation() {
	_, err := rostersnapshot.NewRedisRepository(&rostersnapshot.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "client: is required")
	s.Contains(err.Error(), "clock: is required")

	_, err = rostersnapshot.NewRedisRepository(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	s.mockClock.EXPECT().Now().Return(s.now)

	snap := entities.Snapshot{
		Budget:        2300000,
		SelectedNames: []string{testutils.SethRollins, testutils.RomanReigns},
	}
	saved, err := s.repo.Save(s.ctx, rostersnapshot.SaveInput{SessionID: testSessionID, Snapshot: snap})
	s.Require().NoError(err)
	s.Equal(s.now, saved.Record.SavedAt)

	raw, err := s.mr.Get("roster_snapshot:" + testSessionID)
	s.Require().NoError(err)
	var stored map[string]interface{}
	s.Require().NoError(json.Unmarshal([]byte(raw), &stored))
	s.Equal(float64(2300000), stored["budget"])
	s.Equal([]interface{}{testutils.SethRollins, testutils.RomanReigns}, stored["draftedRosterNames"])
	s.Contains(stored, "savedAt")
	s.Zero(s.mr.TTL("roster_snapshot:" + testSessionID))

	got, err := s.repo.Get(s.ctx, rostersnapshot.GetInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Equal(testSessionID, got.Record.SessionID)
	s.Equal(snap, got.Record.Snapshot)
	s.True(s.now.Equal(got.Record.SavedAt))
}

func (s *RedisRepositoryTestSuite) TestSaveCopiesInput() {
	s.mockClock.EXPECT().Now().Return(s.now)

	names := []string{testutils.SethRollins}
	out, err := s.repo.Save(s.ctx, rostersnapshot.SaveInput{
		SessionID: testSessionID,
		Snapshot:  entities.Snapshot{Budget: 3300000, SelectedNames: names},
	})
	s.Require().NoError(err)

	names[0] = "mutated"
	s.Equal([]string{testutils.SethRollins}, out.Record.SelectedNames)
}

func (s *RedisRepositoryTestSuite) TestSaveWithTTL() {
	s.mockClock.EXPECT().Now().Return(s.now)

	_, err := s.repo.Save(s.ctx, rostersnapshot.SaveInput{
		SessionID: testSessionID,
		Snapshot:  entities.Snapshot{Budget: entities.DefaultBudget, SelectedNames: []string{}},
		TTL:       time.Hour,
	})
	s.Require().NoError(err)
	s.Equal(time.Hour, s.mr.TTL("roster_snapshot:"+testSessionID))

	s.mr.FastForward(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, rostersnapshot.GetInput{SessionID: testSessionID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, rostersnapshot.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, rostersnapshot.SaveInput{
		SessionID: testSessionID,
		Snapshot:  entities.Snapshot{Budget: -1},
	})
	s.True(errors.IsInvalidArgument(err))
	s.False(s.mr.Exists("roster_snapshot:" + testSessionID))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, rostersnapshot.GetInput{SessionID: "nobody"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, rostersnapshot.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetLegacyLayout() {
	s.Require().NoError(s.mr.Set("roster_snapshot:"+testSessionID,
		`{"budget":3650000,"draftedRosterNames":["Rey Mysterio"]}`))

	got, err := s.repo.Get(s.ctx, rostersnapshot.GetInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Equal(int64(3650000), got.Record.Budget)
	s.Equal([]string{testutils.ReyMysterio}, got.Record.SelectedNames)
	s.True(got.Record.SavedAt.IsZero())
}

func (s *RedisRepositoryTestSuite) TestGetCorruptRecord() {
	s.Require().NoError(s.mr.Set("roster_snapshot:"+testSessionID, "{not json"))

	_, err := s.repo.Get(s.ctx, rostersnapshot.GetInput{SessionID: testSessionID})
	s.True(errors.IsDataLoss(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.mockClock.EXPECT().Now().Return(s.now)
	_, err := s.repo.Save(s.ctx, rostersnapshot.SaveInput{
		SessionID: testSessionID,
		Snapshot:  entities.Snapshot{Budget: entities.DefaultBudget},
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, rostersnapshot.DeleteInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, rostersnapshot.DeleteInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.False(out.Deleted)
}

func (s *RedisRepositoryTestSuite) TestStoreUnavailable() {
	s.mr.Close()

	_, err := s.repo.Get(s.ctx, rostersnapshot.GetInput{SessionID: testSessionID})
	s.True(errors.IsUnavailable(err))
}
