package models

// Team is a group of crew members sharing one vehicle. Label is the vehicle
// plate (e.g. DXB-1000).
type Team struct {
	BaseModel
	Label string `json:"label" gorm:"uniqueIndex;not null;size:40" validate:"required,min=1,max=40"`

	// Relationships
	CrewMembers []CrewMember `json:"crew_members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
