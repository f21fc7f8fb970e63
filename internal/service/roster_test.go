package service

import (
	"context"
	"testing"

	apperrors "cleaning-scheduler-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRosterFixture() (*memoryDB, *RosterService) {
	db := newMemoryDB()
	return db, NewRosterService(&memoryStore{db: db}, NewValidator())
}

func TestDefaultRoster(t *testing.T) {
	roster := DefaultRoster()

	require.Len(t, roster.Teams, 5)
	assert.Equal(t, "DXB-1000", roster.Teams[0].Label)
	assert.Equal(t, "DXB-5000", roster.Teams[4].Label)
	for _, team := range roster.Teams {
		assert.Len(t, team.CrewMembers, 5)
	}
	assert.Equal(t, "Cleaner 2-3", roster.Teams[1].CrewMembers[2])
}

func TestRosterSetup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates teams with crew in request order", func(t *testing.T) {
		_, svc := newRosterFixture()

		resp, err := svc.Setup(ctx, &RosterSetupRequest{Teams: []RosterTeam{
			{Label: "DXB-1000", CrewMembers: []string{"Amal", "Bilal"}},
			{Label: "DXB-2000", CrewMembers: []string{"Chen"}},
		}})

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Created)
		require.Len(t, resp.Teams, 2)
		assert.Equal(t, "DXB-1000", resp.Teams[0].Label)
		require.Len(t, resp.Teams[0].CrewMembers, 2)
		assert.Equal(t, "Amal", resp.Teams[0].CrewMembers[0].Name)
		assert.Less(t, resp.Teams[0].ID, resp.Teams[1].ID)
	})

	t.Run("existing labels are skipped", func(t *testing.T) {
		_, svc := newRosterFixture()
		_, err := svc.Setup(ctx, &RosterSetupRequest{Teams: []RosterTeam{
			{Label: "DXB-1000", CrewMembers: []string{"Amal"}},
		}})
		require.NoError(t, err)

		resp, err := svc.Setup(ctx, &RosterSetupRequest{Teams: []RosterTeam{
			{Label: "DXB-1000", CrewMembers: []string{"Someone Else"}},
			{Label: "DXB-3000", CrewMembers: []string{"Dana"}},
		}})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Created)
		require.Len(t, resp.Teams, 2)
		require.Len(t, resp.Teams[0].CrewMembers, 1)
		assert.Equal(t, "Amal", resp.Teams[0].CrewMembers[0].Name)
	})

	t.Run("duplicate labels in one request", func(t *testing.T) {
		db, svc := newRosterFixture()

		_, err := svc.Setup(ctx, &RosterSetupRequest{Teams: []RosterTeam{
			{Label: "DXB-1000", CrewMembers: []string{"Amal"}},
			{Label: "DXB-1000", CrewMembers: []string{"Bilal"}},
		}})

		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "duplicate team label")
		assert.Empty(t, db.teams)
	})

	t.Run("malformed requests", func(t *testing.T) {
		testCases := []struct {
			name  string
			req   *RosterSetupRequest
			field string
		}{
			{"no teams", &RosterSetupRequest{}, "teams"},
			{"team without crew", &RosterSetupRequest{Teams: []RosterTeam{{Label: "DXB-1000"}}}, "crew_members"},
			{"blank label", &RosterSetupRequest{Teams: []RosterTeam{{CrewMembers: []string{"Amal"}}}}, "label"},
			{"blank crew name", &RosterSetupRequest{Teams: []RosterTeam{{Label: "DXB-1000", CrewMembers: []string{""}}}}, "crew_members[0]"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, svc := newRosterFixture()

				_, err := svc.Setup(ctx, tc.req)

				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tc.field, validationErr.Field)
			})
		}
	})
}

func TestRosterSetupLabelTakenConcurrently(t *testing.T) {
	ctx := context.Background()
	existing := &RosterSetupRequest{Teams: []RosterTeam{
		{Label: "DXB-1000", CrewMembers: []string{"Amal"}},
	}}
	req := &RosterSetupRequest{Teams: []RosterTeam{
		{Label: "DXB-1000", CrewMembers: []string{"Someone Else"}},
		{Label: "DXB-2000", CrewMembers: []string{"Chen"}},
	}}

	t.Run("retry skips the label", func(t *testing.T) {
		db, svc := newRosterFixture()
		_, err := svc.Setup(ctx, existing)
		require.NoError(t, err)
		db.staleLabelReads = 1

		resp, err := svc.Setup(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Created)
		require.Len(t, resp.Teams, 2)
		assert.Equal(t, "Amal", resp.Teams[0].CrewMembers[0].Name)
		assert.Equal(t, "DXB-2000", resp.Teams[1].Label)
	})

	t.Run("conflict on every attempt", func(t *testing.T) {
		db, svc := newRosterFixture()
		_, err := svc.Setup(ctx, existing)
		require.NoError(t, err)
		db.staleLabelReads = rosterSetupAttempts

		_, err = svc.Setup(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrTeamExists)
		assert.True(t, apperrors.IsAlreadyExists(err))
	})
}

func TestRosterSeedDefault(t *testing.T) {
	ctx := context.Background()
	db, svc := newRosterFixture()

	seeded, err := svc.SeedDefault(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Len(t, db.teams, 5)
	assert.Len(t, db.crew, 25)

	seeded, err = svc.SeedDefault(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Len(t, db.teams, 5)
}

func TestRosterSeedDefaultLeavesExistingRosterAlone(t *testing.T) {
	ctx := context.Background()
	db, svc := newRosterFixture()
	_, err := svc.Setup(ctx, &RosterSetupRequest{Teams: []RosterTeam{
		{Label: "CUSTOM", CrewMembers: []string{"Amal"}},
	}})
	require.NoError(t, err)

	seeded, err := svc.SeedDefault(ctx)

	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Len(t, db.teams, 1)
}

func TestRosterListTeamsEmpty(t *testing.T) {
	_, svc := newRosterFixture()

	resp, err := svc.ListTeams(context.Background())

	require.NoError(t, err)
	assert.Empty(t, resp.Teams)
	assert.NotNil(t, resp.Teams)
}
