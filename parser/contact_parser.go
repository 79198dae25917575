package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ContactDetails holds company contact fields scraped from the company's
// contact page or recovered from the listing's additional-information block
type ContactDetails struct {
	Website  string
	Name     string
	Position string
	Phone    string
	Email    string
}

var (
	emailRe   = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	websiteRe = regexp.MustCompile(`https?://[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// ContactURL derives the company contact page URL from its jobs page URL
func ContactURL(companyPageURL string) string {
	return strings.Replace(companyPageURL, "/jobs.html", "/kontakte.html#menu", 1)
}

// ParseContactPage extracts contact details from a company contact page
func (p *Parser) ParseContactPage(htmlContent string) (*ContactDetails, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	contact := &ContactDetails{}

	contact.Website = doc.Find("ul").First().Find("a").First().AttrOr("href", "")
	contact.Name = strings.TrimSpace(doc.Find("span.at-contact-name").First().Text())
	contact.Position = strings.TrimSpace(doc.Find("span.at-contact-position").First().Text())
	contact.Phone = strings.TrimSpace(doc.Find("a.at-contact-phone").First().Text())

	email := doc.Find("a.at-contact-email").First().AttrOr("href", "")
	contact.Email = strings.TrimPrefix(email, "mailto:")

	return contact, nil
}

// ParseAdditionalInfo scans the listing's additional-information section for
// contact data the company page did not have. It prefers tel:/mailto:/http
// anchors and falls back to regex matches over the section text.
func (p *Parser) ParseAdditionalInfo(htmlContent string) *ContactDetails {
	contact := &ContactDetails{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return contact
	}

	section := doc.Find(".at-section-text-additionalInformation").First()
	if section.Length() == 0 {
		return contact
	}

	section.Find("a").Each(func(i int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		text := strings.TrimSpace(s.Text())
		switch {
		case strings.HasPrefix(href, "tel:") && contact.Phone == "":
			contact.Phone = text
		case strings.HasPrefix(href, "mailto:") && contact.Email == "":
			contact.Email = text
		case strings.HasPrefix(href, "http") && contact.Website == "":
			contact.Website = text
		}
	})

	text := section.Text()
	if contact.Email == "" {
		contact.Email = emailRe.FindString(text)
	}
	if contact.Website == "" {
		contact.Website = websiteRe.FindString(text)
	}

	return contact
}

// Merge fills empty fields of c with values from fallback
func (c *ContactDetails) Merge(fallback *ContactDetails) {
	if fallback == nil {
		return
	}
	if c.Website == "" {
		c.Website = fallback.Website
	}
	if c.Name == "" {
		c.Name = fallback.Name
	}
	if c.Position == "" {
		c.Position = fallback.Position
	}
	if c.Phone == "" {
		c.Phone = fallback.Phone
	}
	if c.Email == "" {
		c.Email = fallback.Email
	}
}
