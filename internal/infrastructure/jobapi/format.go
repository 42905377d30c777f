package jobapi

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatSalary renders a salary range for display. The "in" market shows
// rupees, everything else dollars; predicted salaries get an "Est. "
// prefix.
func FormatSalary(country string, salaryMin, salaryMax *float64, isPredicted bool) string {
	if salaryMin == nil && salaryMax == nil {
		return "Salary Not Specified"
	}

	prefix := ""
	if isPredicted {
		prefix = "Est. "
	}
	symbol := "$"
	if strings.EqualFold(strings.TrimSpace(country), "in") {
		symbol = "₹"
	}

	switch {
	case salaryMin != nil && salaryMax != nil:
		return fmt.Sprintf("%s%s%s - %s%s", prefix, symbol, groupDigits(*salaryMin), symbol, groupDigits(*salaryMax))
	case salaryMin != nil:
		return fmt.Sprintf("%s%s%s+", prefix, symbol, groupDigits(*salaryMin))
	default:
		return fmt.Sprintf("%sUp to %s%s", prefix, symbol, groupDigits(*salaryMax))
	}
}

// DaysAgo buckets a posting's creation timestamp for display. Anything
// unparseable reads as "Recently".
func DaysAgo(created string, now time.Time) string {
	created = strings.TrimSpace(created)
	if created == "" {
		return "Recently"
	}

	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05", created)
		if err != nil {
			return "Recently"
		}
	}

	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days < 0:
		return "Recently"
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		weeks := days / 7
		return fmt.Sprintf("%d week%s ago", weeks, plural(weeks))
	default:
		months := days / 30
		return fmt.Sprintf("%d month%s ago", months, plural(months))
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// groupDigits renders a salary as a whole number with thousands commas.
func groupDigits(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteString(",")
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}
