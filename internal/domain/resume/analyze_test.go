package resume

import (
	"strings"
	"testing"
)

func TestAnalyze_EmptyText(t *testing.T) {
	r := Analyze("")

	if r.Score != 5 {
		t.Fatalf("expected score 5, got %d", r.Score)
	}
	if r.SectionScore != 0 || r.KeywordScore != 0 || r.FormatScore != 5 {
		t.Fatalf("unexpected component scores: %d/%d/%d", r.SectionScore, r.KeywordScore, r.FormatScore)
	}
	if r.WordCount != 0 {
		t.Fatalf("expected word count 0, got %d", r.WordCount)
	}
	for section, found := range r.SectionsFound {
		if found {
			t.Fatalf("section %q should not be found in empty text", section)
		}
	}
}

func TestAnalyze_AllSectionsShortText(t *testing.T) {
	r := Analyze("education experience skills projects contact")

	if r.SectionScore != 40 {
		t.Fatalf("expected section score 40, got %d", r.SectionScore)
	}
	if r.FormatScore != 5 {
		t.Fatalf("expected format score 5 for short text, got %d", r.FormatScore)
	}
	if r.Score != 45 {
		t.Fatalf("expected total 45, got %d", r.Score)
	}
	if len(r.FormatFeedback) != 1 || r.FormatFeedback[0] != "Resume is too short. Aim for 300-800 words." {
		t.Fatalf("unexpected format feedback: %v", r.FormatFeedback)
	}
}

func TestAnalyze_AllSectionsAndThreeSkills(t *testing.T) {
	r := Analyze("python java sql experience education skills projects email phone")

	for section, found := range r.SectionsFound {
		if !found {
			t.Fatalf("section %q should be found", section)
		}
	}
	if r.SectionScore != 40 {
		t.Fatalf("expected section score 40, got %d", r.SectionScore)
	}
	if r.SkillsCount != 3 || r.KeywordScore != 6 {
		t.Fatalf("expected 3 skills for 6 points, got %d/%d", r.SkillsCount, r.KeywordScore)
	}
	if r.FormatScore != 5 {
		t.Fatalf("expected format score 5, got %d", r.FormatScore)
	}
	if r.Score != 51 {
		t.Fatalf("expected total 51, got %d", r.Score)
	}
}

func TestAnalyze_KeywordScoreCapped(t *testing.T) {
	// All 31 catalog skills present; 31*2 exceeds the 40-point cap.
	r := Analyze(strings.Join(SkillCatalog, " "))

	if r.KeywordScore != 40 {
		t.Fatalf("expected keyword score capped at 40, got %d", r.KeywordScore)
	}
	if r.SkillsCount != len(SkillCatalog) {
		t.Fatalf("expected %d skills counted, got %d", len(SkillCatalog), r.SkillsCount)
	}
	if len(r.SkillsFound) != 10 {
		t.Fatalf("expected 10 surfaced skills, got %d", len(r.SkillsFound))
	}
}

func TestAnalyze_AppropriateLength(t *testing.T) {
	words := make([]string, 400)
	for i := range words {
		words[i] = "word"
	}
	r := Analyze(strings.Join(words, " "))

	if r.FormatScore != 20 {
		t.Fatalf("expected format score 20, got %d", r.FormatScore)
	}
	if r.FormatFeedback[0] != "Resume length is appropriate." {
		t.Fatalf("unexpected feedback: %v", r.FormatFeedback)
	}
}

func TestAnalyze_LongResume(t *testing.T) {
	words := make([]string, 1600)
	for i := range words {
		words[i] = "word"
	}
	r := Analyze(strings.Join(words, " "))

	if r.FormatScore != 10 {
		t.Fatalf("expected format score 10, got %d", r.FormatScore)
	}
}

func TestAnalyze_Suggestions(t *testing.T) {
	r := Analyze("python sql education university")

	var hasMissingSection, hasFewSkills, hasMissingSkills bool
	for _, s := range r.Suggestions {
		switch {
		case s == "Add a 'Experience' section to your resume":
			hasMissingSection = true
		case s == "Include more relevant skills. Found only 2 skills.":
			hasFewSkills = true
		case strings.HasPrefix(s, "Consider adding these skills if applicable: "):
			hasMissingSkills = true
			// Missing skills are suggested in catalog order, capped at 5.
			want := "Consider adding these skills if applicable: java, javascript, react, angular, vue"
			if s != want {
				t.Fatalf("expected %q, got %q", want, s)
			}
		}
	}
	if !hasMissingSection || !hasFewSkills || !hasMissingSkills {
		t.Fatalf("missing expected suggestions: %v", r.Suggestions)
	}
}

func TestAnalyze_MonotoneInSkills(t *testing.T) {
	base := Analyze("python")
	more := Analyze("python java sql")
	if more.KeywordScore <= base.KeywordScore {
		t.Fatalf("keyword score should grow with more skills: %d vs %d", base.KeywordScore, more.KeywordScore)
	}
}
