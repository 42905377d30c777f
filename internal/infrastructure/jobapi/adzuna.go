package jobapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"careercraft/internal/config"
	"careercraft/internal/domain/job"
)

const (
	adzunaBaseURL      = "https://api.adzuna.com/v1/api/jobs"
	maxResultsPerPage  = 50
	descriptionPreview = 300
)

type AdzunaClient struct {
	appID   string
	appKey  string
	country string
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func NewAdzunaClient(cfg config.JobAPIConfig, logger *log.Logger) *AdzunaClient {
	country := strings.TrimSpace(cfg.Country)
	if country == "" {
		country = "in"
	}
	return &AdzunaClient{
		appID:   strings.TrimSpace(cfg.AdzunaAppID),
		appKey:  strings.TrimSpace(cfg.AdzunaAppKey),
		country: country,
		baseURL: adzunaBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// Country reports the configured Adzuna market; salary formatting keys
// off it.
func (c *AdzunaClient) Country() string {
	if c == nil {
		return ""
	}
	return c.country
}

type adzunaJob struct {
	ID          json.RawMessage `json:"id"`
	Title       string          `json:"title"`
	Company     adzunaLabel     `json:"company"`
	Location    adzunaLabel     `json:"location"`
	Description string          `json:"description"`
	SalaryMin   *float64        `json:"salary_min"`
	SalaryMax   *float64        `json:"salary_max"`
	Predicted   json.RawMessage `json:"salary_is_predicted"`
	Contract    string          `json:"contract_type"`
	Time        string          `json:"contract_time"`
	Created     string          `json:"created"`
	RedirectURL string          `json:"redirect_url"`
	Category    adzunaCategory  `json:"category"`
}

type adzunaLabel struct {
	DisplayName string `json:"display_name"`
}

type adzunaCategory struct {
	Label string `json:"label"`
}

type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
	Count   int         `json:"count"`
}

func (c *AdzunaClient) Search(ctx context.Context, params SearchParams) job.SearchResult {
	if c == nil || c.appID == "" || c.appKey == "" {
		return failure("API credentials not configured", params)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	perPage := params.ResultsPerPage
	if perPage <= 0 {
		perPage = 30
	}
	if perPage > maxResultsPerPage {
		perPage = maxResultsPerPage
	}

	endpoint := fmt.Sprintf("%s/%s/search/%d", c.baseURL, c.country, page)

	q := url.Values{}
	q.Set("app_id", c.appID)
	q.Set("app_key", c.appKey)
	q.Set("results_per_page", strconv.Itoa(perPage))
	q.Set("what", params.Query)
	q.Set("where", params.Location)
	q.Set("content-type", "application/json")
	if params.SalaryMin != "" {
		q.Set("salary_min", params.SalaryMin)
	}
	if params.SalaryMax != "" {
		q.Set("salary_max", params.SalaryMax)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return failure("API request failed: "+err.Error(), params)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[JobAPI] Adzuna request error: %v", err)
		}
		return failure("API request failed: "+err.Error(), params)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.logger != nil {
			c.logger.Printf("[JobAPI] Adzuna bad status: %d", resp.StatusCode)
		}
		return failure(fmt.Sprintf("API request failed: status %d", resp.StatusCode), params)
	}

	var data adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return failure("Error processing jobs: "+err.Error(), params)
	}

	jobs := make([]job.Posting, 0, len(data.Results))
	for _, r := range data.Results {
		jobs = append(jobs, job.Posting{
			ID:                rawString(r.ID),
			Title:             r.Title,
			Company:           defaultLabel(r.Company.DisplayName, "Company Not Listed"),
			Location:          defaultLabel(r.Location.DisplayName, "Location Not Specified"),
			Description:       truncate(r.Description, descriptionPreview),
			SalaryMin:         r.SalaryMin,
			SalaryMax:         r.SalaryMax,
			SalaryIsPredicted: predictedFlag(r.Predicted),
			ContractType:      defaultLabel(r.Contract, "Not Specified"),
			ContractTime:      defaultLabel(r.Time, "Full Time"),
			Created:           r.Created,
			RedirectURL:       r.RedirectURL,
			Category:          defaultLabel(r.Category.Label, "Other"),
		})
	}

	return job.SearchResult{
		Success:        true,
		Jobs:           jobs,
		TotalResults:   data.Count,
		Page:           page,
		ResultsPerPage: perPage,
	}
}

func failure(msg string, params SearchParams) job.SearchResult {
	page := params.Page
	if page < 1 {
		page = 1
	}
	return job.SearchResult{
		Success: false,
		Error:   msg,
		Jobs:    []job.Posting{},
		Page:    page,
	}
}

func defaultLabel(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// Adzuna serializes ids as both numbers and strings.
func rawString(raw json.RawMessage) string {
	return strings.Trim(strings.TrimSpace(string(raw)), `"`)
}

// Adzuna serializes salary_is_predicted inconsistently across markets:
// sometimes a bool, sometimes the strings "0"/"1".
func predictedFlag(raw json.RawMessage) bool {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	return s == "1" || strings.EqualFold(s, "true")
}

var _ Provider = (*AdzunaClient)(nil)
