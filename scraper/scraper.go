package scraper

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"stepstone-scraper/fetcher"
	"stepstone-scraper/models"
	"stepstone-scraper/parser"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Platform is the source label written into every record
const Platform = "Stepstone"

// JobWriter persists one finished record
type JobWriter interface {
	Append(job models.Job) error
}

// Options configures a Pipeline
type Options struct {
	PageFetcher   fetcher.Fetcher // search-results and contact pages
	DetailFetcher fetcher.Fetcher // JS-rendered job detail pages
	Writer        JobWriter
	BaseURL       string
	MaxPages      int           // 0 = discover from pagination
	JobDelay      time.Duration // polite delay between detail pages
}

// Summary reports what a run did
type Summary struct {
	Pages      int
	JobsFound  int
	JobsSaved  int
	JobsFailed int
}

// Pipeline runs the sequential fetch-parse-write loop over paginated
// search results. One page and one job at a time; no shared state beyond
// the output file.
type Pipeline struct {
	pageFetcher   fetcher.Fetcher
	detailFetcher fetcher.Fetcher
	parser        *parser.Parser
	writer        JobWriter
	limiter       *rate.Limiter
	baseURL       string
	maxPages      int

	now   func() time.Time
	newID func() string
}

// New creates a Pipeline from options
func New(opts Options) *Pipeline {
	delay := opts.JobDelay
	if delay <= 0 {
		delay = time.Second
	}

	return &Pipeline{
		pageFetcher:   opts.PageFetcher,
		detailFetcher: opts.DetailFetcher,
		parser:        parser.NewParser(),
		writer:        opts.Writer,
		limiter:       rate.NewLimiter(rate.Every(delay), 1),
		baseURL:       opts.BaseURL,
		maxPages:      opts.MaxPages,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// Run scrapes search pages starting at startURL until the configured or
// discovered page limit is reached. Individual page and job failures are
// logged and skipped; only context cancellation aborts the run.
func (p *Pipeline) Run(ctx context.Context, startURL string) (*Summary, error) {
	summary := &Summary{}
	visited := make(map[string]bool)
	totalPages := 0

	for page := 1; ; page++ {
		if p.maxPages > 0 && page > p.maxPages {
			break
		}
		if totalPages > 0 && page > totalPages {
			log.Printf("Reached the last page: %d\n", totalPages)
			break
		}

		pageURL, err := withPage(startURL, page)
		if err != nil {
			return summary, fmt.Errorf("invalid start URL: %w", err)
		}

		log.Printf("Fetching page %d\n", page)
		html, err := p.pageFetcher.Fetch(pageURL)
		if err != nil {
			log.Printf("Skipping page %d due to repeated failures: %v\n", page, err)
			if totalPages == 0 && p.maxPages == 0 {
				// No page bound known yet, stop instead of crawling blindly
				break
			}
			continue
		}

		listing, err := p.parser.ParseListingPage(html, p.baseURL)
		if err != nil {
			log.Printf("Failed to parse page %d: %v\n", page, err)
			continue
		}
		summary.Pages++

		if totalPages == 0 && listing.TotalPages > 0 {
			totalPages = listing.TotalPages
			log.Printf("Total pages: %d\n", totalPages)
		}

		if len(listing.JobLinks) == 0 {
			log.Printf("No job links found on page %d, stopping\n", page)
			break
		}
		log.Printf("Found %d job links on page %d\n", len(listing.JobLinks), page)

		for _, link := range listing.JobLinks {
			if visited[link] {
				continue
			}
			visited[link] = true
			summary.JobsFound++

			if err := p.limiter.Wait(ctx); err != nil {
				return summary, err
			}

			job, err := p.scrapeJob(link)
			if err != nil {
				log.Printf("Failed to scrape job listing from %s: %v\n", link, err)
				summary.JobsFailed++
				continue
			}

			if err := p.writer.Append(*job); err != nil {
				log.Printf("Failed to save job %s: %v\n", job.ID, err)
				summary.JobsFailed++
				continue
			}
			summary.JobsSaved++
		}
	}

	log.Printf("Scraping completed: %d pages, %d jobs found, %d saved, %d failed\n",
		summary.Pages, summary.JobsFound, summary.JobsSaved, summary.JobsFailed)

	return summary, nil
}

// scrapeJob fetches one job detail page and assembles the finished record
func (p *Pipeline) scrapeJob(link string) (*models.Job, error) {
	html, err := p.detailFetcher.Fetch(link)
	if err != nil {
		return nil, err
	}

	details, err := p.parser.ParseDetailPage(html)
	if err != nil {
		return nil, err
	}

	contact := &parser.ContactDetails{}
	if details.CompanyPageURL != "" {
		contactHTML, err := p.pageFetcher.Fetch(parser.ContactURL(details.CompanyPageURL))
		if err != nil {
			log.Printf("Skipping contact details for %s: %v\n", details.CompanyPageURL, err)
		} else if parsed, err := p.parser.ParseContactPage(contactHTML); err == nil {
			contact = parsed
		}
		contact.Merge(p.parser.ParseAdditionalInfo(html))
	}

	// The Timestamp column carries the listing's own posting time when the
	// page shows one, otherwise the capture time
	timestamp := p.now()
	if posted, ok := parser.ParseGermanRelativeDate(details.PostedText, timestamp); ok {
		timestamp = posted
	}

	return &models.Job{
		Title:           details.Title,
		EmploymentType:  details.EmploymentType,
		Location:        details.Location,
		CompanyName:     details.CompanyName,
		CompanyWebsite:  contact.Website,
		ContactName:     contact.Name,
		ContactPosition: contact.Position,
		ContactPhone:    contact.Phone,
		ContactEmail:    contact.Email,
		Platform:        Platform,
		Timestamp:       timestamp,
		ID:              p.newID(),
	}, nil
}

// withPage sets the page query parameter on the start URL
func withPage(startURL string, page int) (string, error) {
	u, err := url.Parse(startURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
