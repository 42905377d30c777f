package matching

import (
	"sort"

	"careercraft/internal/domain/job"
)

// RankedPosting is a provider posting annotated with its match percentage.
type RankedPosting struct {
	job.Posting
	MatchPercentage int `json:"match_percentage"`
}

// Rank scores every posting against the user's skills and summary and
// returns the batch sorted by match percentage, highest first. The sort is
// stable so equal scores keep the provider's original order. An empty
// batch is a no-op.
func Rank(postings []job.Posting, userSkills []string, userSummary string) []RankedPosting {
	out := make([]RankedPosting, 0, len(postings))
	for _, p := range postings {
		out = append(out, RankedPosting{
			Posting:         p,
			MatchPercentage: Score(userSkills, userSummary, p.Title, p.Description),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchPercentage > out[j].MatchPercentage
	})
	return out
}
