package fetcher

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface using colly. It is used for
// pages that do not need JavaScript rendering (search results, contact pages).
type CollyFetcher struct {
	collector *colly.Collector
	apiKey    string
	retries   int
	delay     time.Duration

	lastHTML    string
	lastStatus  int
	gotResponse bool
}

// NewCollyFetcher creates a new CollyFetcher instance. When apiKey is not
// empty, requests are routed through the ScrapingBee rendering API.
func NewCollyFetcher(apiKey string, retries int, delay time.Duration) *CollyFetcher {
	cf := &CollyFetcher{
		apiKey:  apiKey,
		retries: retries,
		delay:   delay,
	}

	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(30 * time.Second)

	// Keep requests sequential and spaced out
	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       2 * time.Second,
	})

	c.OnResponse(func(r *colly.Response) {
		cf.gotResponse = true
		cf.lastHTML = string(r.Body)
	})

	c.OnError(func(r *colly.Response, err error) {
		cf.lastStatus = r.StatusCode
		log.Printf("Error fetching %s: %v\n", r.Request.URL, err)
	})

	cf.collector = c
	return cf
}

// Fetch implements the Fetcher interface. Server errors (HTTP 500) and
// transport failures are retried a fixed number of times with a delay;
// other HTTP errors fail immediately.
func (cf *CollyFetcher) Fetch(pageURL string) (string, error) {
	target := pageURL
	if cf.apiKey != "" {
		target = scrapingBeeURL(cf.apiKey, pageURL)
	}

	for attempt := 1; attempt <= cf.retries; attempt++ {
		cf.lastHTML = ""
		cf.lastStatus = 0
		cf.gotResponse = false

		err := cf.collector.Visit(target)
		if err == nil && cf.gotResponse {
			// A successful response counts even when the body is empty
			return cf.lastHTML, nil
		}

		if cf.lastStatus != 0 && cf.lastStatus != http.StatusInternalServerError {
			return "", fmt.Errorf("failed to fetch %s: status %d", pageURL, cf.lastStatus)
		}

		log.Printf("Attempt %d/%d failed for %s. Retrying after %v...\n", attempt, cf.retries, pageURL, cf.delay)
		if attempt < cf.retries {
			time.Sleep(cf.delay)
		}
	}

	return "", fmt.Errorf("failed to fetch %s after %d attempts", pageURL, cf.retries)
}

// scrapingBeeURL wraps the target URL into a ScrapingBee API request.
// JavaScript rendering stays off; the rod fetcher covers JS pages.
func scrapingBeeURL(apiKey, target string) string {
	params := url.Values{}
	params.Set("api_key", apiKey)
	params.Set("url", target)
	params.Set("render_js", "false")
	return "https://app.scrapingbee.com/api/v1/?" + params.Encode()
}
