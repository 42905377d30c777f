package matching

import "strings"

// Words in a job title that carry no matching signal.
var stopWords = map[string]struct{}{
	"and": {}, "or": {}, "the": {}, "a": {}, "an": {}, "in": {}, "at": {},
	"for": {}, "to": {}, "of": {}, "with": {}, "by": {}, "on": {},
}

const (
	skillsWeight  = 70.0
	summaryWeight = 30.0
	matchFloor    = 10
)

// Score computes the compatibility percentage between a user's skills and
// summary and one job posting. Skills carry 70% of the weight, job-title
// keywords found in the summary the remaining 30%. With no skills there is
// nothing to match on and the result is 0; otherwise the result is clamped
// to [10, 100], so a near-zero match still reads as 10%.
func Score(userSkills []string, userSummary, jobTitle, jobDescription string) int {
	if len(userSkills) == 0 {
		return 0
	}

	jobText := strings.ToLower(jobTitle + " " + jobDescription)

	matched := 0
	for _, skill := range userSkills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s != "" && strings.Contains(jobText, s) {
			matched++
		}
	}
	skillsMatch := float64(matched) / float64(len(userSkills)) * skillsWeight

	summaryMatch := 0.0
	if userSummary != "" {
		keywords := titleKeywords(jobTitle)
		if len(keywords) > 0 {
			summaryLower := strings.ToLower(userSummary)
			hits := 0
			for kw := range keywords {
				if len(kw) > 2 && strings.Contains(summaryLower, kw) {
					hits++
				}
			}
			summaryMatch = float64(hits) / float64(len(keywords)) * summaryWeight
		}
	}

	total := int(skillsMatch + summaryMatch)
	if total > 100 {
		total = 100
	}
	if total < matchFloor {
		total = matchFloor
	}
	return total
}

func titleKeywords(title string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(title)) {
		if _, stop := stopWords[w]; stop {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}
