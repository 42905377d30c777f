package scrape

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"careercraft/internal/domain/job"
	"careercraft/internal/infrastructure/jobapi"

	"github.com/gocolly/colly/v2"
)

// BoardProvider scrapes a static HTML job board as a stand-in for the
// Adzuna API when no credentials are configured. It speaks the same
// Provider contract: any scrape fault becomes a Success=false result.
type BoardProvider struct {
	baseURL     string
	allowedHost string
	perPage     int
	logger      *log.Logger
}

func NewBoardProvider(baseURL string, logger *log.Logger) *BoardProvider {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	return &BoardProvider{
		baseURL:     strings.TrimRight(baseURL, "/"),
		allowedHost: hostFromBaseURL(baseURL),
		perPage:     30,
		logger:      logger,
	}
}

func (p *BoardProvider) Search(ctx context.Context, params jobapi.SearchParams) job.SearchResult {
	if p == nil || p.baseURL == "" {
		return job.SearchResult{Success: false, Error: "job board not configured", Jobs: []job.Posting{}, Page: 1}
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	c := colly.NewCollector(
		colly.AllowedDomains(p.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{
		DomainGlob:  "*" + p.allowedHost + "*",
		Parallelism: 2,
		Delay:       400 * time.Millisecond,
		RandomDelay: 750 * time.Millisecond,
	})

	postings := make([]job.Posting, 0, p.perPage)
	var scrapeErr error

	c.OnHTML("article.job, li.job, div.job-listing", func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.ChildText("h2, .title"))
		if title == "" {
			return
		}
		link := e.Request.AbsoluteURL(e.ChildAttr("a", "href"))
		postings = append(postings, job.Posting{
			ID:           link,
			Title:        title,
			Company:      fallbackText(e.ChildText(".company"), "Company Not Listed"),
			Location:     fallbackText(e.ChildText(".location"), "Location Not Specified"),
			Description:  strings.TrimSpace(e.ChildText(".description, p")),
			ContractType: "Not Specified",
			ContractTime: "Full Time",
			Created:      strings.TrimSpace(e.ChildAttr("time", "datetime")),
			RedirectURL:  link,
			Category:     "Other",
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		scrapeErr = err
		if p.logger != nil {
			p.logger.Printf("[Scrape] board fetch error url=%s err=%v", r.Request.URL, err)
		}
	})

	if err := ctx.Err(); err != nil {
		return job.SearchResult{Success: false, Error: err.Error(), Jobs: []job.Posting{}, Page: page}
	}

	if err := c.Visit(p.searchURL(params.Query, params.Location, page)); err != nil {
		scrapeErr = err
	}
	c.Wait()

	if scrapeErr != nil && len(postings) == 0 {
		return job.SearchResult{
			Success: false,
			Error:   fmt.Sprintf("API request failed: %v", scrapeErr),
			Jobs:    []job.Posting{},
			Page:    page,
		}
	}

	return job.SearchResult{
		Success:        true,
		Jobs:           postings,
		TotalResults:   len(postings),
		Page:           page,
		ResultsPerPage: p.perPage,
	}
}

func (p *BoardProvider) searchURL(query, location string, page int) string {
	q := url.Values{}
	q.Set("q", strings.TrimSpace(query))
	q.Set("l", strings.TrimSpace(location))
	q.Set("page", fmt.Sprintf("%d", page))
	return p.baseURL + "/jobs?" + q.Encode()
}

func hostFromBaseURL(baseURL string) string {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Host == "" {
		return strings.TrimSpace(baseURL)
	}
	return u.Host
}

func fallbackText(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}

var _ jobapi.Provider = (*BoardProvider)(nil)
