package resume

import "testing"

func TestNormalize_StripsAndCollapses(t *testing.T) {
	got := Normalize("Hello,   World! (test)")
	want := "Hello, World test"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalize_KeepsAllowedPunctuation(t *testing.T) {
	got := Normalize("dev@example.com C++ C# ci-cd 3.5")
	want := "dev@example.com C++ C# ci-cd 3.5"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalize_TrimsEdges(t *testing.T) {
	got := Normalize("  \t python \n ")
	if got != "python" {
		t.Fatalf("expected %q, got %q", "python", got)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := Normalize("!!!"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"a !! b",
		"Hello,   World! (test)",
		"  multi\n\nline\ttext  ",
		"(a)(b)(c)",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
