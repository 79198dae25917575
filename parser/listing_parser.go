package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Parser extracts job data from Stepstone HTML
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ListingPage holds what was found on one search-results page
type ListingPage struct {
	JobLinks   []string
	TotalPages int
}

// ParseListingPage extracts job detail links and the total page count from a
// search-results page. Relative links are resolved against baseURL.
func (p *Parser) ParseListingPage(htmlContent, baseURL string) (*ListingPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	page := &ListingPage{}

	doc.Find("a.res-1foik6i").Each(func(i int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = strings.TrimSuffix(baseURL, "/") + href
		}
		page.JobLinks = append(page.JobLinks, href)
	})

	page.TotalPages = p.extractTotalPages(doc)

	return page, nil
}

// extractTotalPages reads the last page number out of the pagination nav.
// The final item is the next-page arrow, so the number lives in the
// second-to-last entry. Returns 0 when no pagination is present.
func (p *Parser) extractTotalPages(doc *goquery.Document) int {
	items := doc.Find("nav[aria-label='pagination'] li")
	if items.Length() < 2 {
		return 0
	}

	text := strings.TrimSpace(items.Eq(items.Length() - 2).Text())
	total, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return total
}
