package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"careercraft/internal/domain/analysis"
	"careercraft/internal/domain/job"
	"careercraft/internal/domain/profile"
	"careercraft/internal/infrastructure/jobapi"
)

type mockProvider struct {
	result job.SearchResult
	calls  int
}

func (m *mockProvider) Search(_ context.Context, _ jobapi.SearchParams) job.SearchResult {
	m.calls++
	return m.result
}

type mockSearchCache struct {
	values map[string][]byte
	locks  map[string]bool
}

func newMockSearchCache() *mockSearchCache {
	return &mockSearchCache{values: map[string][]byte{}, locks: map[string]bool{}}
}

func (m *mockSearchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *mockSearchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}

func (m *mockSearchCache) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	delete(m.locks, key)
	return nil
}

func (m *mockSearchCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	if m.locks[key] {
		return false, nil
	}
	m.locks[key] = true
	return true, nil
}

func searchFixture() job.SearchResult {
	return job.SearchResult{
		Success: true,
		Jobs: []job.Posting{
			{ID: "weak", Title: "Accountant", Description: "ledgers and audits", Created: "2024-06-12T00:00:00Z"},
			{ID: "strong", Title: "Python Developer", Description: "python sql services", Created: "2024-06-14T00:00:00Z"},
		},
		TotalResults:   2,
		Page:           1,
		ResultsPerPage: 30,
	}
}

func newSearchUsecase(provider jobapi.Provider, profiles *mockProfileRepo, analyses *mockAnalysisRepo, cache SearchCache) *JobSearch {
	uc := NewJobSearchUsecase(provider, profiles, analyses, cache, "in", nil)
	uc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestSearchJobs_RanksByProfileSkills(t *testing.T) {
	provider := &mockProvider{result: searchFixture()}
	profiles := newMockProfileRepo()
	userID := uuid.New()
	profiles.profiles[userID] = profile.Profile{UserID: userID, Skills: []string{"python", "sql"}}
	uc := newSearchUsecase(provider, profiles, &mockAnalysisRepo{}, nil)

	out, err := uc.SearchJobs(context.Background(), userID, jobapi.SearchParams{Query: "developer"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !out.Success {
		t.Fatalf("expected success, got error %q", out.Error)
	}
	if len(out.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(out.Jobs))
	}
	if out.Jobs[0].ID != "strong" || out.Jobs[1].ID != "weak" {
		t.Fatalf("expected match-ordered jobs, got %s, %s", out.Jobs[0].ID, out.Jobs[1].ID)
	}
	if out.Jobs[0].MatchPercentage <= out.Jobs[1].MatchPercentage {
		t.Fatalf("expected descending match percentages")
	}
	if out.Jobs[0].DaysAgo != "Yesterday" {
		t.Fatalf("expected recency decoration, got %q", out.Jobs[0].DaysAgo)
	}
	if out.Jobs[0].FormattedSalary != "Salary Not Specified" {
		t.Fatalf("expected salary decoration, got %q", out.Jobs[0].FormattedSalary)
	}
}

func TestSearchJobs_SkillsFallBackToLatestAnalysis(t *testing.T) {
	provider := &mockProvider{result: searchFixture()}
	analyses := &mockAnalysisRepo{}
	userID := uuid.New()
	analyses.records = append(analyses.records, analysis.Record{
		ID:          uuid.New(),
		UserID:      userID,
		SkillsFound: []string{"python", "sql"},
	})
	uc := newSearchUsecase(provider, newMockProfileRepo(), analyses, nil)

	out, err := uc.SearchJobs(context.Background(), userID, jobapi.SearchParams{Query: "developer"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Jobs[0].ID != "strong" {
		t.Fatalf("expected analysis skills to drive ranking, got %s first", out.Jobs[0].ID)
	}
}

func TestSearchJobs_ProviderFailurePassesThrough(t *testing.T) {
	provider := &mockProvider{result: job.SearchResult{
		Success: false,
		Error:   "API credentials not configured",
		Jobs:    []job.Posting{},
		Page:    1,
	}}
	uc := newSearchUsecase(provider, newMockProfileRepo(), &mockAnalysisRepo{}, nil)

	out, err := uc.SearchJobs(context.Background(), uuid.New(), jobapi.SearchParams{Query: "go"})
	if err != nil {
		t.Fatalf("provider failure must not be a transport error: %v", err)
	}
	if out.Success {
		t.Fatalf("expected Success=false")
	}
	if out.Error != "API credentials not configured" {
		t.Fatalf("unexpected error: %q", out.Error)
	}
	if out.Jobs == nil || len(out.Jobs) != 0 {
		t.Fatalf("expected empty non-nil job list")
	}
}

func TestSearchJobs_SecondCallServedFromCache(t *testing.T) {
	provider := &mockProvider{result: searchFixture()}
	cache := newMockSearchCache()
	uc := newSearchUsecase(provider, newMockProfileRepo(), &mockAnalysisRepo{}, cache)

	params := jobapi.SearchParams{Query: "developer", Location: "remote"}
	if _, err := uc.SearchJobs(context.Background(), uuid.New(), params); err != nil {
		t.Fatalf("first search failed: %v", err)
	}
	if _, err := uc.SearchJobs(context.Background(), uuid.New(), params); err != nil {
		t.Fatalf("second search failed: %v", err)
	}

	if provider.calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", provider.calls)
	}
}

func TestSearchJobs_FailedFetchNotCached(t *testing.T) {
	provider := &mockProvider{result: job.SearchResult{Success: false, Error: "API request failed", Jobs: []job.Posting{}, Page: 1}}
	cache := newMockSearchCache()
	uc := newSearchUsecase(provider, newMockProfileRepo(), &mockAnalysisRepo{}, cache)

	params := jobapi.SearchParams{Query: "go"}
	_, _ = uc.SearchJobs(context.Background(), uuid.New(), params)

	if len(cache.values) != 0 {
		t.Fatalf("failed fetch must not be cached")
	}
}

func TestSearchJobs_CacheHitStillRanksPerUser(t *testing.T) {
	provider := &mockProvider{result: searchFixture()}
	cache := newMockSearchCache()
	uc := newSearchUsecase(provider, newMockProfileRepo(), &mockAnalysisRepo{}, cache)

	params := jobapi.SearchParams{Query: "developer"}
	first, err := uc.SearchJobs(context.Background(), uuid.New(), params)
	if err != nil {
		t.Fatalf("warm-up search failed: %v", err)
	}
	if first.Jobs[0].MatchPercentage != 0 {
		t.Fatalf("no skills should mean 0%% match, got %d", first.Jobs[0].MatchPercentage)
	}

	profiles := newMockProfileRepo()
	userID := uuid.New()
	profiles.profiles[userID] = profile.Profile{UserID: userID, Skills: []string{"python", "sql"}}
	uc2 := newSearchUsecase(provider, profiles, &mockAnalysisRepo{}, cache)

	second, err := uc2.SearchJobs(context.Background(), userID, params)
	if err != nil {
		t.Fatalf("cached search failed: %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("expected cache hit, provider called %d times", provider.calls)
	}
	if second.Jobs[0].ID != "strong" || second.Jobs[0].MatchPercentage == 0 {
		t.Fatalf("cached page must be re-ranked for the caller")
	}
}

func TestSearchJobs_EmptyQuerySuggestsSkills(t *testing.T) {
	provider := &mockProvider{result: searchFixture()}
	profiles := newMockProfileRepo()
	userID := uuid.New()
	profiles.profiles[userID] = profile.Profile{UserID: userID, Skills: []string{"python", "sql", "docker", "aws"}}
	uc := newSearchUsecase(provider, profiles, &mockAnalysisRepo{}, nil)

	out, err := uc.SearchJobs(context.Background(), userID, jobapi.SearchParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.SuggestedSearch != "python sql docker" {
		t.Fatalf("expected skills suggestion, got %q", out.SuggestedSearch)
	}

	out, err = uc.SearchJobs(context.Background(), userID, jobapi.SearchParams{Query: "golang"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.SuggestedSearch != "" {
		t.Fatalf("explicit query must not carry a suggestion, got %q", out.SuggestedSearch)
	}
}

func TestSuggestedSearch_TopThreeSkills(t *testing.T) {
	profiles := newMockProfileRepo()
	userID := uuid.New()
	profiles.profiles[userID] = profile.Profile{
		UserID: userID,
		Skills: []string{"python", "sql", "docker", "aws"},
	}
	uc := newSearchUsecase(&mockProvider{}, profiles, &mockAnalysisRepo{}, nil)

	got, err := uc.SuggestedSearch(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "python sql docker" {
		t.Fatalf("expected top three skills, got %q", got)
	}
}

func TestSuggestedSearch_NoSkills(t *testing.T) {
	uc := newSearchUsecase(&mockProvider{}, newMockProfileRepo(), &mockAnalysisRepo{}, nil)

	got, err := uc.SuggestedSearch(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty suggestion, got %q", got)
	}
}
