package models

import (
	"time"

	"github.com/google/uuid"
)

// User is created once at registration and never mutated afterwards.
// SessionID holds the opaque token matched against the sessionId cookie;
// whoever presents that token owns every meal created under it.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID string    `gorm:"index;not null" json:"session_id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
