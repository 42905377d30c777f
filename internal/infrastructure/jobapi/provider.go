package jobapi

import (
	"context"

	"careercraft/internal/domain/job"
)

type SearchParams struct {
	Query          string
	Location       string
	Page           int
	ResultsPerPage int
	SalaryMin      string
	SalaryMax      string
}

// Provider returns job postings for a search. Provider-side faults
// (credentials, transport, malformed payloads) come back inside the
// SearchResult with Success=false, never as an error value.
type Provider interface {
	Search(ctx context.Context, params SearchParams) job.SearchResult
}
