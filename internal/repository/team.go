package repository

import (
	"context"

	"cleaning-scheduler-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team. Crew members set on the team are inserted with it.
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByLabel retrieves a team by its vehicle label
func (r *TeamRepository) GetByLabel(ctx context.Context, label string) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "label = ?", label).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAllWithCrewMembers returns every team ordered by ID, each with its crew
// ordered by ID
func (r *TeamRepository) GetAllWithCrewMembers(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).
		Preload("CrewMembers", func(db *gorm.DB) *gorm.DB {
			return db.Order("crew_members.id ASC")
		}).
		Order("teams.id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// Count returns the number of teams
func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Team{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
