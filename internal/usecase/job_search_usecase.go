package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"careercraft/internal/domain/analysis"
	"careercraft/internal/domain/job"
	"careercraft/internal/domain/matching"
	"careercraft/internal/domain/profile"
	"careercraft/internal/infrastructure/jobapi"
	"careercraft/internal/repository"
)

// JobView is one search result decorated for display: the provider
// posting plus the user's match percentage and formatted salary/recency.
type JobView struct {
	matching.RankedPosting
	FormattedSalary string `json:"formatted_salary"`
	DaysAgo         string `json:"days_ago"`
}

type JobSearchOutput struct {
	Success         bool      `json:"success"`
	Error           string    `json:"error,omitempty"`
	Jobs            []JobView `json:"jobs"`
	TotalResults    int       `json:"total_results"`
	Page            int       `json:"page"`
	ResultsPerPage  int       `json:"results_per_page"`
	SuggestedSearch string    `json:"suggested_search,omitempty"`
}

type JobSearchUsecase interface {
	SearchJobs(ctx context.Context, userID uuid.UUID, params jobapi.SearchParams) (JobSearchOutput, error)
	SuggestedSearch(ctx context.Context, userID uuid.UUID) (string, error)
}

type JobSearch struct {
	provider jobapi.Provider
	profiles repository.ProfileRepository
	analyses repository.AnalysisRepository
	cache    SearchCache
	country  string
	logger   *log.Logger

	now func() time.Time
}

func NewJobSearchUsecase(provider jobapi.Provider, profiles repository.ProfileRepository, analyses repository.AnalysisRepository, cache SearchCache, country string, logger *log.Logger) *JobSearch {
	return &JobSearch{
		provider: provider,
		profiles: profiles,
		analyses: analyses,
		cache:    cache,
		country:  country,
		logger:   logger,
		now:      time.Now,
	}
}

// SearchJobs fetches postings from the provider and annotates each with
// the caller's match percentage, sorted highest first. The raw provider
// page is cached and shared between users; ranking happens per request.
// A provider failure is a successful call with Success=false.
func (u *JobSearch) SearchJobs(ctx context.Context, userID uuid.UUID, params jobapi.SearchParams) (JobSearchOutput, error) {
	if params.Page < 1 {
		params.Page = 1
	}

	result := u.fetchWithCache(ctx, params)

	skills, summary := u.resolveUserContext(ctx, userID)

	ranked := matching.Rank(result.Jobs, skills, summary)
	views := make([]JobView, 0, len(ranked))
	now := u.now()
	for _, r := range ranked {
		views = append(views, JobView{
			RankedPosting:   r,
			FormattedSalary: jobapi.FormatSalary(u.country, r.SalaryMin, r.SalaryMax, r.SalaryIsPredicted),
			DaysAgo:         jobapi.DaysAgo(r.Created, now),
		})
	}

	out := JobSearchOutput{
		Success:        result.Success,
		Error:          result.Error,
		Jobs:           views,
		TotalResults:   result.TotalResults,
		Page:           result.Page,
		ResultsPerPage: result.ResultsPerPage,
	}
	// An empty query gets a skills-based suggestion the client can prefill.
	if strings.TrimSpace(params.Query) == "" && len(skills) > 0 {
		top := skills
		if len(top) > 3 {
			top = top[:3]
		}
		out.SuggestedSearch = strings.Join(top, " ")
	}
	return out, nil
}

// SuggestedSearch builds a default query from the user's top three
// skills. No skills anywhere means an empty suggestion.
func (u *JobSearch) SuggestedSearch(ctx context.Context, userID uuid.UUID) (string, error) {
	skills, _ := u.resolveUserContext(ctx, userID)
	if len(skills) == 0 {
		return "", nil
	}
	top := skills
	if len(top) > 3 {
		top = top[:3]
	}
	return strings.Join(top, " "), nil
}

// resolveUserContext loads the skills and summary used for matching:
// profile first, then the latest resume analysis as a skills fallback.
// Missing rows degrade to empty values, never errors.
func (u *JobSearch) resolveUserContext(ctx context.Context, userID uuid.UUID) ([]string, string) {
	var skills []string
	var summary string

	p, err := u.profiles.GetByUserID(ctx, userID)
	if err == nil {
		skills = p.Skills
		summary = p.Summary
	} else if !errors.Is(err, profile.ErrNotFound) && u.logger != nil {
		u.logger.Printf("[Jobs] profile lookup failed user=%s err=%v", userID, err)
	}

	if len(skills) == 0 {
		rec, err := u.analyses.LatestByUser(ctx, userID)
		if err == nil {
			skills = rec.SkillsFound
		} else if !errors.Is(err, analysis.ErrNotFound) && u.logger != nil {
			u.logger.Printf("[Jobs] analysis lookup failed user=%s err=%v", userID, err)
		}
	}

	return skills, summary
}

func (u *JobSearch) fetchWithCache(ctx context.Context, params jobapi.SearchParams) job.SearchResult {
	if u.cache == nil {
		return u.provider.Search(ctx, params)
	}

	cacheKey := JobsSearchCacheKey(params)
	lockKey := JobsSearchLockKey(cacheKey)

	var cached job.SearchResult
	hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
	if err == nil && hit {
		if u.logger != nil {
			u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
		}
		return cached
	}
	if u.logger != nil {
		u.logger.Printf("[Jobs] Cache MISS: %s", cacheKey)
	}

	lockAcquired := false
	ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
	if err == nil && ok {
		lockAcquired = true
		if u.logger != nil {
			u.logger.Printf("[Jobs] Lock acquired: %s", lockKey)
		}
	} else if err == nil && !ok {
		jitterMs := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
		time.Sleep(300*time.Millisecond + jitterMs)
		hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err2 == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
			}
			return cached
		}
		if u.logger != nil {
			u.logger.Printf("[Jobs] Lock wait fallback: %s", lockKey)
		}
	}

	result := u.provider.Search(ctx, params)

	// Failed fetches are not cached; the next request retries the provider.
	if result.Success {
		_ = u.cache.SetJSON(ctx, cacheKey, result, 0)
		if u.logger != nil {
			u.logger.Printf("[Jobs] Cache SET: %s", cacheKey)
		}
	}
	if lockAcquired {
		_ = u.cache.Delete(ctx, lockKey)
	}
	return result
}
