//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"cleaning-scheduler-backend/internal/database/models"
	"cleaning-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// StoreTestSuite tests the team and crew repositories and the transactional store
type StoreTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *Store
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *StoreTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = NewStore(suite.baseTestSuite.DB)
	suite.factories = suite.baseTestSuite.Factories
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *StoreTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *StoreTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *StoreTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestTeamCreateWithCrew tests creating a team together with its crew
func (suite *StoreTestSuite) TestTeamCreateWithCrew() {
	repos := suite.store.Repositories()
	team := suite.factories.Team.WithCrew("DXB-1000", "Amal", "Bilal")

	err := repos.Teams.Create(suite.ctx, team)

	suite.NoError(err)
	suite.NotZero(team.ID)
	for _, m := range team.CrewMembers {
		suite.NotZero(m.ID)
		suite.Equal(team.ID, m.TeamID)
	}

	count, err := repos.Teams.Count(suite.ctx)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestTeamLabelIsUnique tests the unique label index
func (suite *StoreTestSuite) TestTeamLabelIsUnique() {
	repos := suite.store.Repositories()
	suite.NoError(repos.Teams.Create(suite.ctx, suite.factories.Team.WithCrew("DXB-1000")))

	err := repos.Teams.Create(suite.ctx, suite.factories.Team.WithCrew("DXB-1000"))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByLabel tests looking up a team by label
func (suite *StoreTestSuite) TestGetByLabel() {
	repos := suite.store.Repositories()
	team := suite.factories.InsertTeam(suite.T(), "DXB-2000", "Amal")

	found, err := repos.Teams.GetByLabel(suite.ctx, "DXB-2000")
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	_, err = repos.Teams.GetByLabel(suite.ctx, "DXB-9999")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllWithCrewMembersOrdering tests ID ordering of teams and crew
func (suite *StoreTestSuite) TestGetAllWithCrewMembersOrdering() {
	repos := suite.store.Repositories()
	first := suite.factories.InsertTeam(suite.T(), "DXB-2000", "Amal", "Bilal")
	second := suite.factories.InsertTeam(suite.T(), "DXB-1000", "Chen")

	teams, err := repos.Teams.GetAllWithCrewMembers(suite.ctx)

	suite.NoError(err)
	suite.Len(teams, 2)
	suite.Equal(first.ID, teams[0].ID)
	suite.Equal(second.ID, teams[1].ID)
	suite.Len(teams[0].CrewMembers, 2)
	suite.Less(teams[0].CrewMembers[0].ID, teams[0].CrewMembers[1].ID)
}

// TestLockByTeamIDs tests crew row locking for allocation decisions
func (suite *StoreTestSuite) TestLockByTeamIDs() {
	team := suite.factories.InsertTeam(suite.T(), "DXB-1000", "Amal", "Bilal")
	other := suite.factories.InsertTeam(suite.T(), "DXB-2000", "Chen")
	suite.factories.InsertTeam(suite.T(), "DXB-3000", "Dana")

	suite.T().Run("locks only the crew of the given teams", func(t *testing.T) {
		err := suite.store.WithinTransaction(suite.ctx, func(repos Repositories) error {
			locked, err := repos.CrewMembers.LockByTeamIDs(suite.ctx, []uint{team.ID, other.ID})
			suite.NoError(err)
			suite.Len(locked, 3)
			suite.Less(locked[0].ID, locked[1].ID)
			suite.Less(locked[1].ID, locked[2].ID)
			return nil
		})
		suite.NoError(err)
	})

	suite.T().Run("no teams", func(t *testing.T) {
		locked, err := suite.store.Repositories().CrewMembers.LockByTeamIDs(suite.ctx, nil)
		suite.NoError(err)
		suite.Empty(locked)
	})
}

// TestDeletingTeamKeepsCrew tests that removing a team never removes its crew
func (suite *StoreTestSuite) TestDeletingTeamKeepsCrew() {
	team := suite.factories.InsertTeam(suite.T(), "DXB-1000", "Amal", "Bilal")

	err := suite.baseTestSuite.DB.Delete(&models.Team{}, team.ID).Error

	suite.Error(err)

	var crewCount int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.CrewMember{}).Where("team_id = ?", team.ID).Count(&crewCount).Error)
	suite.Equal(int64(2), crewCount)
}

// TestWithinTransactionRollsBack tests that a failing callback leaves no rows behind
func (suite *StoreTestSuite) TestWithinTransactionRollsBack() {
	team := suite.factories.InsertTeam(suite.T(), "DXB-1000", "Amal")
	boom := errors.New("boom")

	err := suite.store.WithinTransaction(suite.ctx, func(repos Repositories) error {
		booking := suite.factories.Booking.ForCrew(thursdayAt(10, 0), 2, team, team.CrewMembers...)
		if err := repos.Bookings.Create(suite.ctx, booking); err != nil {
			return err
		}
		return boom
	})

	suite.ErrorIs(err, boom)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Booking{}).Count(&count).Error)
	suite.Zero(count)
	suite.NoError(suite.baseTestSuite.DB.Table("booking_crew_members").Count(&count).Error)
	suite.Zero(count)
}

// TestStoreTestSuite runs the test suite
func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
