package profile

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// Profile is the single per-user profile. Skills and summary are written
// by both resume analysis (automatic) and direct edits (manual); last
// write wins, there is no merge strategy.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	LinkedIn  string    `json:"linkedin"`
	Summary   string    `json:"summary"`
	Skills    []string  `json:"skills"`
	UpdatedAt time.Time `json:"updated_at"`
}
