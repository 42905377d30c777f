package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"careercraft/internal/infrastructure/jobapi"
)

type jobSearchCacheKeyInput struct {
	Query     string `json:"query"`
	Location  string `json:"location"`
	Page      int    `json:"page"`
	PerPage   int    `json:"per_page"`
	SalaryMin string `json:"salary_min"`
	SalaryMax string `json:"salary_max"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// JobsSearchCacheKey hashes the normalized provider parameters. Match
// percentages are user-specific and therefore computed after the cache,
// so the key deliberately excludes the user.
func JobsSearchCacheKey(params jobapi.SearchParams) string {
	in := jobSearchCacheKeyInput{
		Query:     normalizeSearchValue(params.Query),
		Location:  normalizeSearchValue(params.Location),
		Page:      params.Page,
		PerPage:   params.ResultsPerPage,
		SalaryMin: strings.TrimSpace(params.SalaryMin),
		SalaryMax: strings.TrimSpace(params.SalaryMax),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	h := hex.EncodeToString(sum[:])
	return "jobs:search:" + h
}

func JobsSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, "jobs:search:") {
		return "jobs:lock:" + strings.TrimPrefix(searchKey, "jobs:search:")
	}
	return "jobs:lock:" + searchKey
}
