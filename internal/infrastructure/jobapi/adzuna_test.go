package jobapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"careercraft/internal/config"
)

func newTestClient(baseURL string) *AdzunaClient {
	c := NewAdzunaClient(config.JobAPIConfig{
		AdzunaAppID:  "id",
		AdzunaAppKey: "key",
		Country:      "in",
	}, nil)
	if baseURL != "" {
		c.baseURL = baseURL
	}
	return c
}

func TestAdzunaSearch_MissingCredentials(t *testing.T) {
	c := NewAdzunaClient(config.JobAPIConfig{}, nil)

	res := c.Search(context.Background(), SearchParams{Query: "go"})
	if res.Success {
		t.Fatalf("expected failure without credentials")
	}
	if res.Error != "API credentials not configured" {
		t.Fatalf("unexpected error: %q", res.Error)
	}
	if res.Jobs == nil || len(res.Jobs) != 0 {
		t.Fatalf("expected empty non-nil job list")
	}
}

func TestAdzunaSearch_MapsResults(t *testing.T) {
	longDesc := strings.Repeat("x", 400)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/in/search/2") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("app_id") != "id" || q.Get("app_key") != "key" {
			t.Errorf("credentials not forwarded")
		}
		if q.Get("what") != "golang" || q.Get("where") != "remote" {
			t.Errorf("query params not forwarded: %v", q)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"count": 123,
			"results": [
				{
					"id": 42,
					"title": "Go Developer",
					"company": {"display_name": "Acme"},
					"location": {"display_name": "Bengaluru"},
					"description": "` + longDesc + `",
					"salary_min": 500000,
					"salary_max": 900000,
					"salary_is_predicted": "1",
					"contract_time": "full_time",
					"created": "2024-06-10T00:00:00Z",
					"redirect_url": "https://example.com/42",
					"category": {"label": "IT Jobs"}
				},
				{
					"id": "abc",
					"title": "Mystery Role"
				}
			]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	res := c.Search(context.Background(), SearchParams{Query: "golang", Location: "remote", Page: 2})

	if !res.Success {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if res.TotalResults != 123 || res.Page != 2 {
		t.Fatalf("unexpected paging: total=%d page=%d", res.TotalResults, res.Page)
	}
	if len(res.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(res.Jobs))
	}

	first := res.Jobs[0]
	if first.ID != "42" || first.Title != "Go Developer" || first.Company != "Acme" {
		t.Fatalf("unexpected first job: %+v", first)
	}
	if !first.SalaryIsPredicted {
		t.Fatalf("expected predicted salary flag")
	}
	if len(first.Description) != 303 || !strings.HasSuffix(first.Description, "...") {
		t.Fatalf("description not truncated: len=%d", len(first.Description))
	}

	second := res.Jobs[1]
	if second.Company != "Company Not Listed" {
		t.Fatalf("expected company default, got %q", second.Company)
	}
	if second.Location != "Location Not Specified" {
		t.Fatalf("expected location default, got %q", second.Location)
	}
	if second.ContractType != "Not Specified" || second.ContractTime != "Full Time" {
		t.Fatalf("expected contract defaults, got %q/%q", second.ContractType, second.ContractTime)
	}
	if second.Category != "Other" {
		t.Fatalf("expected category default, got %q", second.Category)
	}
}

func TestAdzunaSearch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	res := c.Search(context.Background(), SearchParams{Query: "go"})

	if res.Success {
		t.Fatalf("expected failure on non-2xx status")
	}
	if !strings.Contains(res.Error, "API request failed") {
		t.Fatalf("unexpected error: %q", res.Error)
	}
}

func TestAdzunaSearch_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	res := c.Search(context.Background(), SearchParams{Query: "go"})

	if res.Success {
		t.Fatalf("expected failure on malformed payload")
	}
	if !strings.Contains(res.Error, "Error processing jobs") {
		t.Fatalf("unexpected error: %q", res.Error)
	}
}

func TestAdzunaSearch_ContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := newTestClient(srv.URL)
	res := c.Search(ctx, SearchParams{Query: "go"})

	if res.Success {
		t.Fatalf("expected failure on context timeout")
	}
}

func TestPredictedFlag(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`"1"`, true},
		{`"0"`, false},
		{`true`, true},
		{`false`, false},
		{``, false},
	}
	for _, tc := range cases {
		if got := predictedFlag([]byte(tc.raw)); got != tc.want {
			t.Fatalf("predictedFlag(%q): expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}
