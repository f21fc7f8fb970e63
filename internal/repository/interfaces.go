package repository

import (
	"context"
	"time"

	"cleaning-scheduler-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByLabel(ctx context.Context, label string) (*models.Team, error)
	GetAllWithCrewMembers(ctx context.Context) ([]models.Team, error)
	Count(ctx context.Context) (int64, error)
}

// CrewMemberRepositoryInterface defines the interface for crew member repository operations
type CrewMemberRepositoryInterface interface {
	LockByTeamIDs(ctx context.Context, teamIDs []uint) ([]models.CrewMember, error)
}

// BookingRepositoryInterface defines the interface for booking repository operations
type BookingRepositoryInterface interface {
	Create(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
	FindConflicting(ctx context.Context, crewIDs []uint, windowStart, windowEnd time.Time) ([]models.Booking, error)
	FindForCrewOnDay(ctx context.Context, crewIDs []uint, dayStart, dayEnd time.Time) ([]models.Booking, error)
}

// Repositories groups the repositories bound to one database handle, either
// the root connection or an open transaction.
type Repositories struct {
	Teams       TeamRepositoryInterface
	CrewMembers CrewMemberRepositoryInterface
	Bookings    BookingRepositoryInterface
}

// StoreInterface defines the interface for transactional access to the repositories
type StoreInterface interface {
	Repositories() Repositories
	WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error
}
