package resume

import "testing"

func TestExtractProfile_SkillsFromReport(t *testing.T) {
	report := Report{SkillsFound: []string{"python", "sql"}}
	got := ExtractProfile("no markers here", report)

	if len(got.Skills) != 2 || got.Skills[0] != "python" || got.Skills[1] != "sql" {
		t.Fatalf("unexpected skills: %v", got.Skills)
	}
	if got.Summary != "" {
		t.Fatalf("expected empty summary, got %q", got.Summary)
	}
}

func TestExtractProfile_SummaryBlock(t *testing.T) {
	text := "John Doe\nSummary\nSeasoned backend engineer.\nLoves distributed systems.\n\nIgnored line"
	got := ExtractProfile(text, Report{})

	want := "Seasoned backend engineer. Loves distributed systems."
	if got.Summary != want {
		t.Fatalf("expected %q, got %q", want, got.Summary)
	}
}

func TestExtractProfile_StopsAtSectionLine(t *testing.T) {
	text := "Objective\nGreat engineer\nExperience at Acme\nMore text"
	got := ExtractProfile(text, Report{})

	if got.Summary != "Great engineer" {
		t.Fatalf("expected summary cut at section line, got %q", got.Summary)
	}
}

func TestExtractProfile_FirstMarkerWins(t *testing.T) {
	text := "About\nFirst block\n\nProfile\nSecond block"
	got := ExtractProfile(text, Report{})

	if got.Summary != "First block" {
		t.Fatalf("expected first marker's block, got %q", got.Summary)
	}
}

func TestExtractProfile_AtMostFourLines(t *testing.T) {
	text := "Summary\na\nb\nc\nd\ne\nf"
	got := ExtractProfile(text, Report{})

	if got.Summary != "a b c d" {
		t.Fatalf("expected four collected lines, got %q", got.Summary)
	}
}

func TestExtractProfile_NoMarker(t *testing.T) {
	got := ExtractProfile("just a resume\nwith plain text", Report{})
	if got.Summary != "" {
		t.Fatalf("expected empty summary, got %q", got.Summary)
	}
}
