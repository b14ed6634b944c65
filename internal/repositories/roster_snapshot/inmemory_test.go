package rostersnapshot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/errors"
	mockclock "github.com/KirkDiggler/superstar-draft/internal/pkg/clock/mock"
	rostersnapshot "github.com/KirkDiggler/superstar-draft/internal/repositories/roster_snapshot"
	"github.com/KirkDiggler/superstar-draft/internal/testutils"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	repo      *rostersnapshot.InMemoryRepository
	ctx       context.Context
	now       time.Time
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.repo = rostersnapshot.NewInMemory(s.mockClock)
	s.ctx = context.Background()
}

func (s *InMemoryRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InMemoryRepositoryTestSuite) TestSaveGetDelete() {
	s.mockClock.EXPECT().Now().Return(s.now)

	snap := entities.Snapshot{Budget: 3300000, SelectedNames: []string{testutils.SethRollins}}
	_, err := s.repo.Save(s.ctx, rostersnapshot.SaveInput{SessionID: testSessionID, Snapshot: snap})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, rostersnapshot.GetInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Equal(snap, got.Record.Snapshot)
	s.Equal(s.now, got.Record.SavedAt)

	got.Record.SelectedNames[0] = "mutated"
	again, err := s.repo.Get(s.ctx, rostersnapshot.GetInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Equal([]string{testutils.SethRollins}, again.Record.SelectedNames)

	out, err := s.repo.Delete(s.ctx, rostersnapshot.DeleteInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.True(out.Deleted)

	_, err = s.repo.Get(s.ctx, rostersnapshot.GetInput{SessionID: testSessionID})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestExpiry() {
	gomock.InOrder(
		s.mockClock.EXPECT().Now().Return(s.now),
		s.mockClock.EXPECT().Now().Return(s.now.Add(30*time.Minute)),
		s.mockClock.EXPECT().Now().Return(s.now.Add(time.Hour)),
	)

	_, err := s.repo.Save(s.ctx, rostersnapshot.SaveInput{
		SessionID: testSessionID,
		Snapshot:  entities.Snapshot{Budget: entities.DefaultBudget},
		TTL:       time.Hour,
	})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, rostersnapshot.GetInput{SessionID: testSessionID})
	s.NoError(err)

	_, err = s.repo.Get(s.ctx, rostersnapshot.GetInput{SessionID: testSessionID})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Save(s.ctx, rostersnapshot.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, rostersnapshot.SaveInput{
		SessionID: testSessionID,
		Snapshot:  entities.Snapshot{Budget: -5},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, rostersnapshot.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, rostersnapshot.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}
