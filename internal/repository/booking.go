package repository

import (
	"context"
	"time"

	"cleaning-scheduler-backend/internal/database/models"

	"gorm.io/gorm"
)

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func preloadCrew(db *gorm.DB) *gorm.DB {
	return db.Preload("CrewMembers", func(db *gorm.DB) *gorm.DB {
		return db.Order("crew_members.id ASC")
	})
}

// Create inserts the booking and its crew assignments. Crew members must
// already exist; only the join rows are written for them.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Omit("CrewMembers.*", "Team").Create(booking).Error
}

// Update moves an existing booking to its new StartAt/EndAt. Crew and
// duration are never changed here.
func (r *BookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	result := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", booking.ID).
		Updates(map[string]interface{}{
			"start_at":   booking.StartAt,
			"end_at":     booking.EndAt,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID retrieves a booking with its crew
func (r *BookingRepository) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := preloadCrew(r.db.WithContext(ctx)).First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindConflicting returns, in one query, every booking that holds at least one
// of crewIDs and whose [start_at, end_at) intersects [windowStart, windowEnd).
// Callers pass the candidate window already widened by the buffer.
func (r *BookingRepository) FindConflicting(ctx context.Context, crewIDs []uint, windowStart, windowEnd time.Time) ([]models.Booking, error) {
	return r.findForCrew(ctx, crewIDs, windowStart, windowEnd)
}

// FindForCrewOnDay returns every booking of crewIDs that touches the given day
func (r *BookingRepository) FindForCrewOnDay(ctx context.Context, crewIDs []uint, dayStart, dayEnd time.Time) ([]models.Booking, error) {
	return r.findForCrew(ctx, crewIDs, dayStart, dayEnd)
}

func (r *BookingRepository) findForCrew(ctx context.Context, crewIDs []uint, from, to time.Time) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	if len(crewIDs) == 0 {
		return bookings, nil
	}

	db := r.db.WithContext(ctx)
	assigned := db.Table("booking_crew_members").
		Select("booking_id").
		Where("crew_member_id IN ?", crewIDs)

	err := preloadCrew(db).
		Where("start_at < ? AND end_at > ?", to, from).
		Where("id IN (?)", assigned).
		Order("start_at ASC, id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
