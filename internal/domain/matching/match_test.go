package matching

import (
	"testing"

	"careercraft/internal/domain/job"
)

func TestScore_NoSkillsIsZero(t *testing.T) {
	got := Score(nil, "any summary", "Python Developer", "desc")
	if got != 0 {
		t.Fatalf("expected 0 without skills, got %d", got)
	}
}

func TestScore_AllSkillsMatched(t *testing.T) {
	got := Score([]string{"python", "sql"}, "", "Python Developer", "We need SQL and Python experience")
	if got != 70 {
		t.Fatalf("expected 70 from full skills match, got %d", got)
	}
}

func TestScore_SummaryKeywords(t *testing.T) {
	// Both title keywords (python, developer) appear in the summary:
	// 70 from skills + 30 from summary, clamped at 100.
	got := Score([]string{"python"}, "experienced python developer", "Python Developer", "python work")
	if got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestScore_FloorAtTen(t *testing.T) {
	got := Score([]string{"cobol"}, "", "Go Developer", "modern stack")
	if got != 10 {
		t.Fatalf("expected floor of 10, got %d", got)
	}
}

func TestScore_StopWordsIgnored(t *testing.T) {
	// Title reduces to {engineer}; summary misses it, so only skills count.
	got := Score([]string{"go"}, "database admin", "the engineer for a", "go services")
	if got != 70 {
		t.Fatalf("expected 70, got %d", got)
	}
}

func TestScore_ShortKeywordsIgnored(t *testing.T) {
	// "ui" is <= 2 chars and never counts toward the summary part.
	got := Score([]string{"figma"}, "ui specialist", "UI Designer", "figma required")
	if got != 70 {
		t.Fatalf("expected 70, got %d", got)
	}
}

func TestRank_SortsByScoreDescending(t *testing.T) {
	postings := []job.Posting{
		{ID: "low", Title: "Accountant", Description: "ledgers"},
		{ID: "high", Title: "Python Developer", Description: "python sql"},
	}

	ranked := Rank(postings, []string{"python", "sql"}, "")
	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	if ranked[0].ID != "high" || ranked[1].ID != "low" {
		t.Fatalf("unexpected order: %s, %s", ranked[0].ID, ranked[1].ID)
	}
	if ranked[0].MatchPercentage <= ranked[1].MatchPercentage {
		t.Fatalf("expected descending match percentages")
	}
}

func TestRank_StableForEqualScores(t *testing.T) {
	postings := []job.Posting{
		{ID: "first", Title: "Clerk", Description: ""},
		{ID: "second", Title: "Cashier", Description: ""},
	}

	ranked := Rank(postings, []string{"python"}, "")
	if ranked[0].ID != "first" || ranked[1].ID != "second" {
		t.Fatalf("equal scores must keep original order, got %s, %s", ranked[0].ID, ranked[1].ID)
	}
}

func TestRank_EmptyBatch(t *testing.T) {
	ranked := Rank(nil, []string{"python"}, "")
	if len(ranked) != 0 {
		t.Fatalf("expected empty result, got %d", len(ranked))
	}
}
