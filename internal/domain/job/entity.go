package job

import (
	"time"

	"github.com/google/uuid"
)

// Posting is a job record as returned by an external listing provider.
// Read-only here; malformed or missing provider fields arrive as zero
// values and are tolerated downstream.
type Posting struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Company           string   `json:"company"`
	Location          string   `json:"location"`
	Description       string   `json:"description"`
	SalaryMin         *float64 `json:"salary_min"`
	SalaryMax         *float64 `json:"salary_max"`
	SalaryIsPredicted bool     `json:"salary_is_predicted"`
	ContractType      string   `json:"contract_type"`
	ContractTime      string   `json:"contract_time"`
	Created           string   `json:"created"`
	RedirectURL       string   `json:"redirect_url"`
	Category          string   `json:"category"`
}

// SearchResult is the structured provider outcome. Provider faults
// (missing credentials, timeouts, malformed payloads) surface as
// Success=false with an empty job list, never as a transport error to
// callers.
type SearchResult struct {
	Success        bool      `json:"success"`
	Error          string    `json:"error,omitempty"`
	Jobs           []Posting `json:"jobs"`
	TotalResults   int       `json:"total_results"`
	Page           int       `json:"page"`
	ResultsPerPage int       `json:"results_per_page"`
}

// SavedJob is a posting a user bookmarked. job_id is the provider's
// identifier, unique per user.
type SavedJob struct {
	ID          uuid.UUID `json:"-"`
	UserID      uuid.UUID `json:"-"`
	JobID       string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	SalaryMin   *float64  `json:"salary_min"`
	SalaryMax   *float64  `json:"salary_max"`
	Description string    `json:"description"`
	RedirectURL string    `json:"redirect_url"`
	SavedAt     time.Time `json:"saved_at"`
}
