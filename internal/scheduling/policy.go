package scheduling

import (
	"slices"
	"time"

	apperrors "cleaning-scheduler-backend/internal/errors"
)

// Crew count bounds for a single booking
const (
	MinCrewCount = 1
	MaxCrewCount = 3
)

// ValidatePolicy checks a requested date, and optionally start time and
// duration, against the business calendar. The checks are independent:
// Friday first, then the start bound, the end bound (only when both start and
// duration are known) and finally the duration itself.
func ValidatePolicy(date time.Time, start *TimeOfDay, hours *int) error {
	if date.Weekday() == time.Friday {
		return apperrors.ErrFridayBooking
	}

	if start != nil {
		if *start < WorkStart {
			return apperrors.ErrStartTooEarly
		}
		if hours != nil && start.AddHours(*hours) > WorkEnd {
			return apperrors.ErrEndTooLate
		}
	}

	if hours != nil && !IsAllowedDuration(*hours) {
		return apperrors.ErrUnsupportedDuration
	}

	return nil
}

// ValidateCrewCount checks the number of crew members requested for one booking
func ValidateCrewCount(n int) error {
	if n < MinCrewCount || n > MaxCrewCount {
		return apperrors.ErrInvalidCrewCount
	}
	return nil
}

// IsAllowedDuration reports whether hours is a bookable duration
func IsAllowedDuration(hours int) bool {
	return slices.Contains(AllowedDurations, hours)
}
