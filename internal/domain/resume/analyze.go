package resume

import (
	"fmt"
	"strings"
)

// Report is the result of a single resume analysis. It is immutable once
// built; persisted copies form an append-only history.
type Report struct {
	Score          int             `json:"score"`
	SectionsFound  map[string]bool `json:"sections_found"`
	SkillsFound    []string        `json:"skills_found"`
	SkillsCount    int             `json:"skills_count"`
	WordCount      int             `json:"word_count"`
	FormatFeedback []string        `json:"format_feedback"`
	Suggestions    []string        `json:"suggestions"`
	SectionScore   int             `json:"section_score"`
	KeywordScore   int             `json:"keyword_score"`
	FormatScore    int             `json:"format_score"`
}

const (
	pointsPerSection = 8
	maxKeywordScore  = 40
	surfacedSkillMax = 10
)

// Analyze scores normalized resume text against the fixed section and skill
// catalogs. Pure function; any string input is analyzable, including the
// empty string (word count 0, score 5).
func Analyze(text string) Report {
	lower := strings.ToLower(text)

	sectionsFound := make(map[string]bool, len(SectionOrder))
	sectionScore := 0
	for _, section := range SectionOrder {
		found := containsAny(lower, sectionMarkers[section])
		sectionsFound[section] = found
		if found {
			sectionScore += pointsPerSection
		}
	}

	skillsFound := make([]string, 0, len(SkillCatalog))
	skillsMissing := make([]string, 0, len(SkillCatalog))
	for _, skill := range SkillCatalog {
		if strings.Contains(lower, skill) {
			skillsFound = append(skillsFound, skill)
		} else {
			skillsMissing = append(skillsMissing, skill)
		}
	}

	keywordScore := len(skillsFound) * 2
	if keywordScore > maxKeywordScore {
		keywordScore = maxKeywordScore
	}

	wordCount := len(strings.Fields(text))
	var formatScore int
	var formatFeedback []string
	switch {
	case wordCount < 200:
		formatScore = 5
		formatFeedback = []string{"Resume is too short. Aim for 300-800 words."}
	case wordCount > 1500:
		formatScore = 10
		formatFeedback = []string{"Resume is too long. Keep it concise (1-2 pages)."}
	default:
		formatScore = 20
		formatFeedback = []string{"Resume length is appropriate."}
	}

	suggestions := make([]string, 0, len(SectionOrder)+2)
	for _, section := range SectionOrder {
		if !sectionsFound[section] {
			suggestions = append(suggestions, fmt.Sprintf("Add a '%s' section to your resume", section))
		}
	}
	if len(skillsFound) < 5 {
		suggestions = append(suggestions, fmt.Sprintf("Include more relevant skills. Found only %d skills.", len(skillsFound)))
	}
	if len(skillsMissing) > 0 {
		top := skillsMissing
		if len(top) > 5 {
			top = top[:5]
		}
		suggestions = append(suggestions, "Consider adding these skills if applicable: "+strings.Join(top, ", "))
	}

	surfaced := skillsFound
	if len(surfaced) > surfacedSkillMax {
		surfaced = surfaced[:surfacedSkillMax]
	}

	return Report{
		Score:          sectionScore + keywordScore + formatScore,
		SectionsFound:  sectionsFound,
		SkillsFound:    surfaced,
		SkillsCount:    len(skillsFound),
		WordCount:      wordCount,
		FormatFeedback: formatFeedback,
		Suggestions:    suggestions,
		SectionScore:   sectionScore,
		KeywordScore:   keywordScore,
		FormatScore:    formatScore,
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
