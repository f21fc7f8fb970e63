package models

import (
	"time"
)

// BaseModel provides common fields for all models with auto-increment primary keys.
// IDs are ordered so that "lowest ID first" is a stable roster order.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
