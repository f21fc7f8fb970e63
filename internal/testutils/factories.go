package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"cleaning-scheduler-backend/internal/database/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var labelSeq atomic.Uint64

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique label and no crew
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		Label: fmt.Sprintf("TST-%d", labelSeq.Add(1)),
	}
}

// WithCrew creates a test Team with one crew member per name
func (f *TeamFactory) WithCrew(label string, names ...string) *models.Team {
	team := f.Create()
	if label != "" {
		team.Label = label
	}
	for _, name := range names {
		team.CrewMembers = append(team.CrewMembers, models.CrewMember{Name: name})
	}
	return team
}

// BookingFactory provides methods to create test Booking data
type BookingFactory struct{}

// NewBookingFactory creates a new BookingFactory
func NewBookingFactory() *BookingFactory {
	return &BookingFactory{}
}

// Create creates a two hour test Booking starting at start
func (f *BookingFactory) Create(start time.Time) *models.Booking {
	return &models.Booking{
		StartAt:       start,
		EndAt:         start.Add(2 * time.Hour),
		DurationHours: 2,
		CustomerName:  "Test Customer",
		CustomerPhone: "+971500000000",
	}
}

// ForCrew creates a test Booking for the given crew members of team
func (f *BookingFactory) ForCrew(start time.Time, hours int, team *models.Team, crew ...models.CrewMember) *models.Booking {
	booking := f.Create(start)
	booking.EndAt = start.Add(time.Duration(hours) * time.Hour)
	booking.DurationHours = hours
	booking.TeamID = team.ID
	booking.CrewMembers = crew
	return booking
}

// FactorySet provides access to all factories. Its Insert helpers persist
// through the shared test database.
type FactorySet struct {
	Team    *TeamFactory
	Booking *BookingFactory
	db      *gorm.DB
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet(db *gorm.DB) *FactorySet {
	return &FactorySet{
		Team:    NewTeamFactory(),
		Booking: NewBookingFactory(),
		db:      db,
	}
}

// InsertTeam stores a team with one crew member per name
func (fs *FactorySet) InsertTeam(t *testing.T, label string, names ...string) *models.Team {
	t.Helper()
	team := fs.Team.WithCrew(label, names...)
	require.NoError(t, fs.db.Create(team).Error)
	return team
}

// InsertBooking stores a booking for the given crew members of team
func (fs *FactorySet) InsertBooking(t *testing.T, start time.Time, hours int, team *models.Team, crew ...models.CrewMember) *models.Booking {
	t.Helper()
	booking := fs.Booking.ForCrew(start, hours, team, crew...)
	require.NoError(t, fs.db.Omit("CrewMembers.*").Create(booking).Error)
	return booking
}
