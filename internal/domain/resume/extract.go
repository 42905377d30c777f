package resume

import "strings"

// Extracted carries the profile fields derived from one analysis.
type Extracted struct {
	Skills  []string
	Summary string
}

var summaryMarkers = []string{"summary", "objective", "profile", "about"}

// Lines containing these belong to a different resume section and end the
// summary block.
var summaryStops = []string{"experience", "education", "skills"}

// ExtractProfile derives a skills list and a free-text summary from resume
// text and its analysis report. Skills come straight from the report. The
// summary is the block of up to 4 non-empty lines following the first line
// that mentions a summary marker, cut short at the first empty line or the
// first line that reads like another section. No marker means an empty
// summary, never an error.
func ExtractProfile(text string, report Report) Extracted {
	out := Extracted{
		Skills: append([]string(nil), report.SkillsFound...),
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !containsAny(strings.ToLower(line), summaryMarkers) {
			continue
		}

		collected := make([]string, 0, 4)
		for j := i + 1; j < len(lines) && len(collected) < 4; j++ {
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == "" {
				break
			}
			if containsAny(strings.ToLower(trimmed), summaryStops) {
				break
			}
			collected = append(collected, trimmed)
		}

		out.Summary = strings.Join(collected, " ")
		break
	}

	return out
}
