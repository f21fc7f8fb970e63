package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cleaning-scheduler-backend/internal/database/models"
	apperrors "cleaning-scheduler-backend/internal/errors"
	"cleaning-scheduler-backend/internal/lock"
	"cleaning-scheduler-backend/internal/logger"
	"cleaning-scheduler-backend/internal/repository"
	"cleaning-scheduler-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// DateTimeLayout is the wire format of booking start and end times
const DateTimeLayout = "2006-01-02T15:04:05"

// Workflow phases, logged under the "phase" field
const (
	PhaseValidating    = "validating"
	PhaseResolvingTeam = "resolving_team"
	PhasePersisting    = "persisting"
	PhaseDone          = "done"
	PhaseRejected      = "rejected"
)

// BookingService runs availability queries and the allocate/reschedule workflow
type BookingService struct {
	store     repository.StoreInterface
	locker    lock.Locker
	validator *validator.Validate
}

// NewBookingService creates a new booking service
func NewBookingService(store repository.StoreInterface, locker lock.Locker, validator *validator.Validate) *BookingService {
	return &BookingService{
		store:     store,
		locker:    locker,
		validator: validator,
	}
}

// AvailabilityRequest asks who is free on a date, optionally for one exact window
type AvailabilityRequest struct {
	Date      string  `json:"date" validate:"required" example:"2023-11-23"`
	StartTime *string `json:"start_time,omitempty" example:"10:00"`
	Duration  *int    `json:"duration,omitempty" example:"2"`
}

// CrewAvailability lists the bookable slots of one crew member
type CrewAvailability struct {
	CrewMemberID       uint     `json:"crew_member_id"`
	Name               string   `json:"name"`
	TeamID             uint     `json:"team_id"`
	AvailableTimeSlots []string `json:"available_time_slots"`
}

// CreateBookingRequest represents the request to create a booking
type CreateBookingRequest struct {
	Date          string `json:"date" validate:"required" example:"2023-11-23"`
	StartTime     string `json:"start_time" validate:"required" example:"10:00"`
	Duration      int    `json:"duration" example:"2"`
	CrewCount     int    `json:"crew_count" example:"2"`
	CustomerName  string `json:"customer_name" validate:"required,max=200" example:"Jane Doe"`
	CustomerPhone string `json:"customer_phone,omitempty" validate:"max=30" example:"+971500000000"`
}

// RescheduleBookingRequest moves a booking to a new date and start time
type RescheduleBookingRequest struct {
	Date      string `json:"date" validate:"required" example:"2023-11-23"`
	StartTime string `json:"start_time" validate:"required" example:"14:00"`
}

// BookingResponse represents a booking returned to clients
type BookingResponse struct {
	ID              uint     `json:"id"`
	StartDateTime   string   `json:"start_date_time"`
	EndDateTime     string   `json:"end_date_time"`
	DurationHours   int      `json:"duration_hours"`
	TeamID          uint     `json:"team_id"`
	CrewMemberNames []string `json:"crew_member_names"`
	CustomerName    string   `json:"customer_name"`
	CustomerPhone   string   `json:"customer_phone,omitempty"`
}

func (s *BookingService) log(ctx context.Context, operation, phase string) *logger.Logger {
	return logger.WithContext(ctx).WithFields(map[string]interface{}{
		"operation": operation,
		"phase":     phase,
	})
}

// reject logs the rejection of a request and returns err unchanged
func (s *BookingService) reject(ctx context.Context, operation string, err error) error {
	entry := s.log(ctx, operation, PhaseRejected).WithError(err)
	if apperrors.IsPolicyViolation(err) || apperrors.IsAllocation(err) || apperrors.IsValidation(err) || apperrors.IsNotFound(err) {
		entry.Info("booking request rejected")
	} else {
		entry.Error("booking request failed")
	}
	return err
}

// CheckAvailability returns, per crew member, either the requested exact
// window (when both start time and duration are given) or the list of free
// slots of the day. Crew members with nothing free are left out. Friday is
// rejected even when no time is given.
func (s *BookingService) CheckAvailability(ctx context.Context, req *AvailabilityRequest) ([]CrewAvailability, error) {
	const op = "check_availability"

	if err := s.validator.Struct(req); err != nil {
		return nil, s.reject(ctx, op, validationError(err))
	}

	date, err := scheduling.ParseDate(req.Date)
	if err != nil {
		return nil, s.reject(ctx, op, apperrors.NewValidationError("date", err.Error()))
	}

	var start *scheduling.TimeOfDay
	if req.StartTime != nil {
		tod, err := scheduling.ParseTimeOfDay(*req.StartTime)
		if err != nil {
			return nil, s.reject(ctx, op, apperrors.NewValidationError("start_time", err.Error()))
		}
		start = &tod
	}

	if err := scheduling.ValidatePolicy(date, start, req.Duration); err != nil {
		return nil, s.reject(ctx, op, err)
	}

	repos := s.store.Repositories()
	teams, err := repos.Teams.GetAllWithCrewMembers(ctx)
	if err != nil {
		return nil, s.reject(ctx, op, fmt.Errorf("failed to load teams: %w", err))
	}

	crewIDs := collectCrewIDs(teams)
	day := scheduling.DayBounds(date)
	bookings, err := repos.Bookings.FindForCrewOnDay(ctx, crewIDs, day.Start, day.End)
	if err != nil {
		return nil, s.reject(ctx, op, fmt.Errorf("failed to load bookings: %w", err))
	}
	byCrew := scheduling.IntervalsByCrewMember(toCommitments(bookings))

	exact := start != nil && req.Duration != nil
	result := make([]CrewAvailability, 0, len(crewIDs))
	for _, team := range teams {
		for _, member := range team.CrewMembers {
			existing := byCrew[member.ID]

			var slots []string
			if exact {
				if scheduling.IsFree(existing, date, *start, *req.Duration) {
					slots = []string{scheduling.FormatWindow(*start, *req.Duration)}
				}
			} else {
				slots = scheduling.FormatSlots(scheduling.ListFreeSlots(existing, date))
			}

			if len(slots) == 0 {
				continue
			}
			result = append(result, CrewAvailability{
				CrewMemberID:       member.ID,
				Name:               member.Name,
				TeamID:             team.ID,
				AvailableTimeSlots: slots,
			})
		}
	}

	return result, nil
}

// CreateBooking validates the request, picks the first team with enough free
// crew members and stores the booking. The decision and the write happen
// under the allocation lock of every team and inside one transaction.
func (s *BookingService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*BookingResponse, error) {
	const op = "create_booking"
	s.log(ctx, op, PhaseValidating).WithField("crew_count", req.CrewCount).Debug("validating booking request")

	if err := s.validator.Struct(req); err != nil {
		return nil, s.reject(ctx, op, validationError(err))
	}

	date, start, err := parseDateAndStart(req.Date, req.StartTime)
	if err != nil {
		return nil, s.reject(ctx, op, err)
	}

	if err := scheduling.ValidatePolicy(date, &start, &req.Duration); err != nil {
		return nil, s.reject(ctx, op, err)
	}
	if err := scheduling.ValidateCrewCount(req.CrewCount); err != nil {
		return nil, s.reject(ctx, op, err)
	}

	candidate := scheduling.NewInterval(start.On(date), time.Duration(req.Duration)*time.Hour)

	s.log(ctx, op, PhaseResolvingTeam).Debug("resolving team")
	teams, err := s.store.Repositories().Teams.GetAllWithCrewMembers(ctx)
	if err != nil {
		return nil, s.reject(ctx, op, fmt.Errorf("failed to load teams: %w", err))
	}
	teamIDs := collectTeamIDs(teams)

	release, err := s.locker.Acquire(ctx, lock.TeamKeys(teamIDs)...)
	if err != nil {
		return nil, s.reject(ctx, op, fmt.Errorf("failed to acquire allocation lock: %w", err))
	}
	defer release()

	var booking *models.Booking
	err = s.store.WithinTransaction(ctx, func(repos repository.Repositories) error {
		if _, err := repos.CrewMembers.LockByTeamIDs(ctx, teamIDs); err != nil {
			return fmt.Errorf("failed to lock crew members: %w", err)
		}

		// Re-read under the lock so the decision sees committed state only.
		// Teams created after the lock keys were built hold no key and are
		// left out of this decision.
		current, err := repos.Teams.GetAllWithCrewMembers(ctx)
		if err != nil {
			return fmt.Errorf("failed to load teams: %w", err)
		}
		teams := onlyTeams(current, teamIDs)

		window := scheduling.SearchWindow(candidate)
		conflicts, err := repos.Bookings.FindConflicting(ctx, collectCrewIDs(teams), window.Start, window.End)
		if err != nil {
			return fmt.Errorf("failed to load conflicting bookings: %w", err)
		}

		busy := scheduling.BusyCrewMembers(toCommitments(conflicts), candidate, 0)
		selection, err := scheduling.SelectTeam(toRosters(teams), busy, req.CrewCount)
		if err != nil {
			if errors.Is(err, scheduling.ErrNoTeamAvailable) {
				return apperrors.ErrNoCrewAvailable
			}
			return err
		}

		s.log(ctx, op, PhasePersisting).WithFields(map[string]interface{}{
			"team_id":    selection.TeamID,
			"crew_count": len(selection.CrewMemberIDs),
		}).Debug("persisting booking")

		booking = &models.Booking{
			StartAt:       candidate.Start,
			EndAt:         candidate.End,
			DurationHours: req.Duration,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			TeamID:        selection.TeamID,
			CrewMembers:   pickCrewMembers(teams, selection),
		}
		if err := repos.Bookings.Create(ctx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.reject(ctx, op, err)
	}

	s.log(ctx, op, PhaseDone).WithFields(map[string]interface{}{
		"booking_id": booking.ID,
		"team_id":    booking.TeamID,
		"crew_count": len(booking.CrewMembers),
	}).Info("booking created")

	return toBookingResponse(booking), nil
}

// RescheduleBooking moves a booking to a new date and start time, keeping its
// crew and duration. The booking's own previous slot never blocks the move.
func (s *BookingService) RescheduleBooking(ctx context.Context, id uint, req *RescheduleBookingRequest) (*BookingResponse, error) {
	const op = "reschedule_booking"
	s.log(ctx, op, PhaseValidating).WithField("booking_id", id).Debug("validating reschedule request")

	if err := s.validator.Struct(req); err != nil {
		return nil, s.reject(ctx, op, validationError(err))
	}

	date, start, err := parseDateAndStart(req.Date, req.StartTime)
	if err != nil {
		return nil, s.reject(ctx, op, err)
	}

	existing, err := s.store.Repositories().Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, s.reject(ctx, op, mapBookingLookupError(err))
	}

	if err := scheduling.ValidatePolicy(date, &start, &existing.DurationHours); err != nil {
		return nil, s.reject(ctx, op, err)
	}

	candidate := scheduling.NewInterval(start.On(date), time.Duration(existing.DurationHours)*time.Hour)

	s.log(ctx, op, PhaseResolvingTeam).WithFields(map[string]interface{}{
		"booking_id": id,
		"team_id":    existing.TeamID,
	}).Debug("checking crew availability")

	release, err := s.locker.Acquire(ctx, lock.TeamKey(existing.TeamID))
	if err != nil {
		return nil, s.reject(ctx, op, fmt.Errorf("failed to acquire allocation lock: %w", err))
	}
	defer release()

	var booking *models.Booking
	err = s.store.WithinTransaction(ctx, func(repos repository.Repositories) error {
		if _, err := repos.CrewMembers.LockByTeamIDs(ctx, []uint{existing.TeamID}); err != nil {
			return fmt.Errorf("failed to lock crew members: %w", err)
		}

		current, err := repos.Bookings.GetByID(ctx, id)
		if err != nil {
			return mapBookingLookupError(err)
		}

		window := scheduling.SearchWindow(candidate)
		conflicts, err := repos.Bookings.FindConflicting(ctx, current.CrewMemberIDs(), window.Start, window.End)
		if err != nil {
			return fmt.Errorf("failed to load conflicting bookings: %w", err)
		}

		if busy := scheduling.BusyCrewMembers(toCommitments(conflicts), candidate, current.ID); len(busy) > 0 {
			return apperrors.ErrCrewUnavailableAtNewTime
		}

		s.log(ctx, op, PhasePersisting).WithField("booking_id", id).Debug("persisting new booking time")

		current.StartAt = candidate.Start
		current.EndAt = candidate.End
		if err := repos.Bookings.Update(ctx, current); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}
		booking = current
		return nil
	})
	if err != nil {
		return nil, s.reject(ctx, op, err)
	}

	s.log(ctx, op, PhaseDone).WithFields(map[string]interface{}{
		"booking_id": booking.ID,
		"team_id":    booking.TeamID,
	}).Info("booking rescheduled")

	return toBookingResponse(booking), nil
}

// GetBooking retrieves a booking by ID
func (s *BookingService) GetBooking(ctx context.Context, id uint) (*BookingResponse, error) {
	booking, err := s.store.Repositories().Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, mapBookingLookupError(err)
	}
	return toBookingResponse(booking), nil
}

func mapBookingLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrBookingNotFound
	}
	return fmt.Errorf("failed to get booking: %w", err)
}

func parseDateAndStart(dateStr, startStr string) (time.Time, scheduling.TimeOfDay, error) {
	date, err := scheduling.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, 0, apperrors.NewValidationError("date", err.Error())
	}
	start, err := scheduling.ParseTimeOfDay(startStr)
	if err != nil {
		return time.Time{}, 0, apperrors.NewValidationError("start_time", err.Error())
	}
	return date, start, nil
}

func collectTeamIDs(teams []models.Team) []uint {
	ids := make([]uint, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	return ids
}

// onlyTeams keeps the teams whose ID is in ids, preserving order
func onlyTeams(teams []models.Team, ids []uint) []models.Team {
	keep := make(map[uint]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	kept := make([]models.Team, 0, len(teams))
	for _, t := range teams {
		if keep[t.ID] {
			kept = append(kept, t)
		}
	}
	return kept
}

func collectCrewIDs(teams []models.Team) []uint {
	ids := make([]uint, 0)
	for _, t := range teams {
		for _, m := range t.CrewMembers {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

func toRosters(teams []models.Team) []scheduling.TeamRoster {
	rosters := make([]scheduling.TeamRoster, len(teams))
	for i, t := range teams {
		ids := make([]uint, len(t.CrewMembers))
		for j, m := range t.CrewMembers {
			ids[j] = m.ID
		}
		rosters[i] = scheduling.TeamRoster{TeamID: t.ID, CrewMemberIDs: ids}
	}
	return rosters
}

func toCommitments(bookings []models.Booking) []scheduling.Commitment {
	commitments := make([]scheduling.Commitment, len(bookings))
	for i := range bookings {
		commitments[i] = scheduling.Commitment{
			ID:            bookings[i].ID,
			Interval:      scheduling.Interval{Start: bookings[i].StartAt, End: bookings[i].EndAt},
			CrewMemberIDs: bookings[i].CrewMemberIDs(),
		}
	}
	return commitments
}

func pickCrewMembers(teams []models.Team, selection scheduling.Selection) []models.CrewMember {
	wanted := make(map[uint]bool, len(selection.CrewMemberIDs))
	for _, id := range selection.CrewMemberIDs {
		wanted[id] = true
	}

	picked := make([]models.CrewMember, 0, len(selection.CrewMemberIDs))
	for _, t := range teams {
		if t.ID != selection.TeamID {
			continue
		}
		for _, m := range t.CrewMembers {
			if wanted[m.ID] {
				picked = append(picked, m)
			}
		}
	}
	return picked
}

func toBookingResponse(b *models.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		StartDateTime:   b.StartAt.Format(DateTimeLayout),
		EndDateTime:     b.EndAt.Format(DateTimeLayout),
		DurationHours:   b.DurationHours,
		TeamID:          b.TeamID,
		CrewMemberNames: b.CrewMemberNames(),
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
	}
}
