package service

import (
	"context"
	"errors"
	"fmt"

	"cleaning-scheduler-backend/internal/database/models"
	apperrors "cleaning-scheduler-backend/internal/errors"
	"cleaning-scheduler-backend/internal/logger"
	"cleaning-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Default roster shape: teams DXB-1000..DXB-5000, each with five cleaners
const (
	defaultTeamCount       = 5
	defaultCrewPerTeam     = 5
	defaultLabelMultiplier = 1000

	// A label taken by a concurrent setup between the existence check and the
	// insert is skipped on the next attempt.
	rosterSetupAttempts = 2
)

// RosterService sets up and lists teams and their crew members
type RosterService struct {
	store     repository.StoreInterface
	validator *validator.Validate
}

// NewRosterService creates a new roster service
func NewRosterService(store repository.StoreInterface, validator *validator.Validate) *RosterService {
	return &RosterService{
		store:     store,
		validator: validator,
	}
}

// RosterTeam describes one team to set up
type RosterTeam struct {
	Label       string   `json:"label" yaml:"label" validate:"required,max=40" example:"DXB-1000"`
	CrewMembers []string `json:"crew_members" yaml:"crew_members" validate:"required,min=1,dive,required,max=100"`
}

// RosterSetupRequest represents the request to set up the roster
type RosterSetupRequest struct {
	Teams []RosterTeam `json:"teams" yaml:"teams" validate:"required,min=1,dive"`
}

// CrewMemberResponse represents a crew member in roster listings
type CrewMemberResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TeamResponse represents a team with its crew in team-list order
type TeamResponse struct {
	ID          uint                 `json:"id"`
	Label       string               `json:"label"`
	CrewMembers []CrewMemberResponse `json:"crew_members"`
}

// RosterResponse represents the full roster
type RosterResponse struct {
	Teams   []TeamResponse `json:"teams"`
	Created int            `json:"created"`
}

// DefaultRoster returns the built-in five by five roster
func DefaultRoster() *RosterSetupRequest {
	req := &RosterSetupRequest{Teams: make([]RosterTeam, 0, defaultTeamCount)}
	for i := 1; i <= defaultTeamCount; i++ {
		team := RosterTeam{
			Label:       fmt.Sprintf("DXB-%d", i*defaultLabelMultiplier),
			CrewMembers: make([]string, 0, defaultCrewPerTeam),
		}
		for j := 1; j <= defaultCrewPerTeam; j++ {
			team.CrewMembers = append(team.CrewMembers, fmt.Sprintf("Cleaner %d-%d", i, j))
		}
		req.Teams = append(req.Teams, team)
	}
	return req
}

// Setup creates the teams of req that do not exist yet, together with their
// crew. Existing teams are left untouched: crew membership is fixed once a
// team is created. The request is applied in a single transaction, retried
// once when a concurrent setup takes one of its labels.
func (s *RosterService) Setup(ctx context.Context, req *RosterSetupRequest) (*RosterResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	seen := make(map[string]bool, len(req.Teams))
	for _, t := range req.Teams {
		if seen[t.Label] {
			return nil, apperrors.NewValidationError("teams", fmt.Sprintf("duplicate team label %q", t.Label))
		}
		seen[t.Label] = true
	}

	var created int
	var err error
	for attempt := 1; attempt <= rosterSetupAttempts; attempt++ {
		created, err = s.createMissingTeams(ctx, req)
		if !errors.Is(err, apperrors.ErrTeamExists) {
			break
		}
		logger.WithContext(ctx).WithField("attempt", attempt).Warn("team label taken by a concurrent roster setup")
	}
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("created", created).Info("roster setup finished")

	resp, err := s.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	resp.Created = created
	return resp, nil
}

// createMissingTeams inserts the teams of req whose label is not stored yet,
// in one transaction. A unique violation on the label is reported as
// ErrTeamExists and rolls the whole transaction back.
func (s *RosterService) createMissingTeams(ctx context.Context, req *RosterSetupRequest) (int, error) {
	created := 0
	err := s.store.WithinTransaction(ctx, func(repos repository.Repositories) error {
		for _, t := range req.Teams {
			_, err := repos.Teams.GetByLabel(ctx, t.Label)
			if err == nil {
				logger.WithContext(ctx).WithField("label", t.Label).Info("team already exists, skipping")
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check existing team: %w", err)
			}

			team := &models.Team{Label: t.Label, CrewMembers: make([]models.CrewMember, 0, len(t.CrewMembers))}
			for _, name := range t.CrewMembers {
				team.CrewMembers = append(team.CrewMembers, models.CrewMember{Name: name})
			}
			if err := repos.Teams.Create(ctx, team); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperrors.ErrTeamExists
				}
				return fmt.Errorf("failed to create team %s: %w", t.Label, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// SeedDefault installs DefaultRoster when no team exists yet. It reports
// whether anything was created.
func (s *RosterService) SeedDefault(ctx context.Context) (bool, error) {
	count, err := s.store.Repositories().Teams.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count teams: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	resp, err := s.Setup(ctx, DefaultRoster())
	if err != nil {
		return false, err
	}
	return resp.Created > 0, nil
}

// ListTeams returns every team ordered by ID with crew in team-list order
func (s *RosterService) ListTeams(ctx context.Context) (*RosterResponse, error) {
	teams, err := s.store.Repositories().Teams.GetAllWithCrewMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	resp := &RosterResponse{Teams: make([]TeamResponse, len(teams))}
	for i, t := range teams {
		crew := make([]CrewMemberResponse, len(t.CrewMembers))
		for j, m := range t.CrewMembers {
			crew[j] = CrewMemberResponse{ID: m.ID, Name: m.Name}
		}
		resp.Teams[i] = TeamResponse{ID: t.ID, Label: t.Label, CrewMembers: crew}
	}
	return resp, nil
}
