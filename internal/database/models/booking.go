package models

import (
	"time"
)

// Booking is a commitment of one or more crew members of a single team to a
// customer for [StartAt, EndAt). Times are business wall-clock values.
type Booking struct {
	BaseModel
	StartAt       time.Time `json:"start_at" gorm:"type:timestamp;not null;index:idx_bookings_window,priority:1"`
	EndAt         time.Time `json:"end_at" gorm:"type:timestamp;not null;index:idx_bookings_window,priority:2"`
	DurationHours int       `json:"duration_hours" gorm:"not null" validate:"oneof=2 4"`
	CustomerName  string    `json:"customer_name" gorm:"not null;size:200" validate:"required,max=200"`
	CustomerPhone string    `json:"customer_phone,omitempty" gorm:"size:30" validate:"max=30"`
	TeamID        uint      `json:"team_id" gorm:"not null;index" validate:"required"`

	// Relationships
	Team        *Team        `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	CrewMembers []CrewMember `json:"crew_members" gorm:"many2many:booking_crew_members;"`
}

// TableName returns the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// CrewMemberIDs returns the IDs of the assigned crew in stored order
func (b *Booking) CrewMemberIDs() []uint {
	ids := make([]uint, len(b.CrewMembers))
	for i, c := range b.CrewMembers {
		ids[i] = c.ID
	}
	return ids
}

// CrewMemberNames returns the names of the assigned crew in stored order
func (b *Booking) CrewMemberNames() []string {
	names := make([]string, len(b.CrewMembers))
	for i, c := range b.CrewMembers {
		names[i] = c.Name
	}
	return names
}
