package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this label"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a malformed request (bad format, missing field)
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// PolicyViolationError is returned when a request breaks a business rule
// (Friday, outside working hours, unsupported duration). Rule identifies the
// violated rule; Message is shown to the caller as-is.
type PolicyViolationError struct {
	Rule    string
	Message string
}

func (e *PolicyViolationError) Error() string {
	return e.Message
}

// Is matches another PolicyViolationError with the same rule. An empty rule
// on the target matches any policy violation.
func (e *PolicyViolationError) Is(target error) bool {
	t, ok := target.(*PolicyViolationError)
	if !ok {
		return false
	}
	return t.Rule == "" || e.Rule == t.Rule
}

// AllocationError is returned when no crew can be allocated for the requested
// window. It is a rejection, not an internal failure.
type AllocationError struct {
	Message string
}

func (e *AllocationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Policy rules
const (
	RuleFriday        = "friday"
	RuleStartTooEarly = "start_before_work_hours"
	RuleEndTooLate    = "end_after_work_hours"
	RuleDuration      = "duration"
)

// Entity Not Found Errors
var (
	ErrBookingNotFound = &NotFoundError{Entity: "booking"}
)

// Already Exists Errors
var (
	ErrTeamExists = &AlreadyExistsError{Entity: "team", Context: "with this label"}
)

// Policy Violations
var (
	ErrFridayBooking       = &PolicyViolationError{Rule: RuleFriday, Message: "We do not work on Fridays."}
	ErrStartTooEarly       = &PolicyViolationError{Rule: RuleStartTooEarly, Message: "Cannot start before 08:00"}
	ErrEndTooLate          = &PolicyViolationError{Rule: RuleEndTooLate, Message: "Must finish by 22:00"}
	ErrUnsupportedDuration = &PolicyViolationError{Rule: RuleDuration, Message: "Duration must be 2 or 4 hours."}
)

// Allocation Errors
var (
	ErrNoCrewAvailable          = &AllocationError{Message: "No available crew members found for the requested time and count constraint."}
	ErrCrewUnavailableAtNewTime = &AllocationError{Message: "Selected crew members are not available at the new time."}
)

// Business Logic Errors
var (
	ErrInvalidCrewCount = &ValidationError{Field: "crew_count", Message: "must be between 1 and 3"}
	ErrLockTimeout      = errors.New("timed out waiting for allocation lock")
)

// Configuration Errors
var (
	ErrDatabaseNameMissing = &ConfigurationError{Message: "database name is required"}
	ErrInvalidLockTTL      = &ConfigurationError{Message: "LOCK_TTL_SEC must be positive"}
	ErrInvalidTimezone     = &ConfigurationError{Message: "BUSINESS_TIMEZONE is not a valid IANA zone"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsPolicyViolation checks if an error is a PolicyViolationError
func IsPolicyViolation(err error) bool {
	var policyErr *PolicyViolationError
	return errors.As(err, &policyErr)
}

// IsAllocation checks if an error is an AllocationError
func IsAllocation(err error) bool {
	var allocErr *AllocationError
	return errors.As(err, &allocErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
