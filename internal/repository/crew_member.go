package repository

import (
	"context"

	"cleaning-scheduler-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CrewMemberRepository handles database operations for crew members
type CrewMemberRepository struct {
	db *gorm.DB
}

// NewCrewMemberRepository creates a new crew member repository
func NewCrewMemberRepository(db *gorm.DB) *CrewMemberRepository {
	return &CrewMemberRepository{db: db}
}

// LockByTeamIDs takes row locks (SELECT ... FOR UPDATE) on the crew of the
// given teams. It only has an effect inside a transaction; rows are locked in
// ID order so that concurrent callers cannot deadlock on each other.
func (r *CrewMemberRepository) LockByTeamIDs(ctx context.Context, teamIDs []uint) ([]models.CrewMember, error) {
	var members []models.CrewMember
	if len(teamIDs) == 0 {
		return members, nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("team_id IN ?", teamIDs).
		Order("id ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}
