package models

// CrewMember is a cleaner. TeamID is fixed at creation time.
type CrewMember struct {
	BaseModel
	Name   string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	TeamID uint   `json:"team_id" gorm:"not null;index" validate:"required"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for CrewMember
func (CrewMember) TableName() string {
	return "crew_members"
}
