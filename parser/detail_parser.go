package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// JobDetails holds the fields extracted from a job detail page.
// Missing fields stay empty rather than failing the record.
type JobDetails struct {
	Title          string
	EmploymentType string
	Location       string
	CompanyName    string
	CompanyPageURL string
	PostedText     string
}

// ParseDetailPage extracts the job fields from a rendered detail page
func (p *Parser) ParseDetailPage(htmlContent string) (*JobDetails, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	details := &JobDetails{}

	details.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	details.EmploymentType = strings.TrimSpace(doc.Find(".at-listing__list-icons_work-type").First().Text())
	details.Location = strings.TrimSpace(doc.Find(".at-listing__list-icons_location").First().Text())
	details.PostedText = strings.TrimSpace(doc.Find(".at-listing__list-icons_date").First().Text())

	company := doc.Find(".at-listing__list-icons_company-name").First()
	// The element may carry a link to the company profile; its text is not
	// part of the company name
	details.CompanyName = strings.TrimSpace(company.Contents().Not("a").Text())
	if details.CompanyName == "" {
		details.CompanyName = strings.TrimSpace(company.Text())
	}
	details.CompanyPageURL = company.Find("a").First().AttrOr("href", "")

	return details, nil
}

// Listing dates come as German relative text, e.g. "Erschienen: vor 3 Stunden"
var relativeDateRe = regexp.MustCompile(`vor (\d+) (Stunden?|Tag(?:en?)?)`)

// ParseGermanRelativeDate converts Stepstone's relative posting text into an
// absolute time anchored at now. The second return value reports whether the
// text was understood.
func ParseGermanRelativeDate(text string, now time.Time) (time.Time, bool) {
	m := relativeDateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}

	if strings.HasPrefix(m[2], "Stunde") {
		return now.Add(-time.Duration(amount) * time.Hour), true
	}
	return now.AddDate(0, 0, -amount), true
}
