package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal belongs to exactly one user. MealTime is stored as milliseconds
// since the Unix epoch, the way the client supplied it.
type Meal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	MealTime    int64     `gorm:"not null" json:"meal_time"`
	IsOnDiet    bool      `gorm:"not null" json:"is_on_diet"`
	CreatedAt   time.Time `json:"created_at"`
}
