package jobapi

import (
	"testing"
	"time"
)

func fp(v float64) *float64 { return &v }

func TestFormatSalary(t *testing.T) {
	cases := []struct {
		name      string
		country   string
		min, max  *float64
		predicted bool
		want      string
	}{
		{"none", "in", nil, nil, false, "Salary Not Specified"},
		{"range rupees", "in", fp(50000), fp(100000), false, "₹50,000 - ₹100,000"},
		{"range predicted", "in", fp(50000), fp(100000), true, "Est. ₹50,000 - ₹100,000"},
		{"min only dollars", "us", fp(50000), nil, false, "$50,000+"},
		{"max only", "us", nil, fp(100000), false, "Up to $100,000"},
		{"max only predicted", "gb", nil, fp(80000), true, "Est. Up to $80,000"},
	}

	for _, tc := range cases {
		got := FormatSalary(tc.country, tc.min, tc.max, tc.predicted)
		if got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		created string
		want    string
	}{
		{"empty", "", "Recently"},
		{"garbage", "not-a-date", "Recently"},
		{"today", "2024-06-15T09:00:00Z", "Today"},
		{"yesterday", "2024-06-14T09:00:00Z", "Yesterday"},
		{"days", "2024-06-12T09:00:00Z", "3 days ago"},
		{"one week", "2024-06-05T09:00:00Z", "1 week ago"},
		{"weeks", "2024-05-25T09:00:00Z", "3 weeks ago"},
		{"months", "2024-04-10T09:00:00Z", "2 months ago"},
		{"no timezone", "2024-06-12T09:00:00", "3 days ago"},
		{"future", "2024-06-20T09:00:00Z", "Recently"},
	}

	for _, tc := range cases {
		got := DaysAgo(tc.created, now)
		if got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestGroupDigits(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{50000.4, "50,000"},
	}
	for _, tc := range cases {
		if got := groupDigits(tc.in); got != tc.want {
			t.Fatalf("groupDigits(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
