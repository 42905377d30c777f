package analysis

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("analysis not found")

// Record is one stored resume analysis. Records are append-only history,
// user-scoped and ordered by AnalyzedAt.
type Record struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Filename      string          `json:"filename"`
	Score         int             `json:"score"`
	SectionsFound map[string]bool `json:"sections_found"`
	SkillsFound   []string        `json:"skills_found"`
	Suggestions   []string        `json:"suggestions"`
	WordCount     int             `json:"word_count"`
	AnalyzedAt    time.Time       `json:"analyzed_at"`
}
