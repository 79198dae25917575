package fetcher

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// RodFetcher implements the Fetcher interface using rod (headless browser).
// Stepstone job detail pages need JavaScript to render their content.
type RodFetcher struct {
	browser *rod.Browser
}

// NewRodFetcher launches a headless browser and connects to it. The CHROME_BIN
// environment variable overrides the browser binary; otherwise common system
// locations are probed before rod falls back to downloading Chromium.
func NewRodFetcher() (*RodFetcher, error) {
	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Leakless(false).
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("disable-extensions").
		Set("disable-background-networking").
		Set("mute-audio")

	if bin := findChrome(); bin != "" {
		l = l.Bin(bin)
	}

	browserURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &RodFetcher{browser: browser}, nil
}

// findChrome looks for an installed Chrome/Chromium binary
func findChrome() string {
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	paths := []string{
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Close closes the browser
func (rf *RodFetcher) Close() error {
	if rf.browser != nil {
		return rf.browser.Close()
	}
	return nil
}

// Fetch implements the Fetcher interface. Each call renders the page in a
// fresh tab, clears the overlays Stepstone puts over the listing, expands
// the additional-information section, and returns the resulting HTML.
func (rf *RodFetcher) Fetch(url string) (string, error) {
	page, err := rf.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("failed to load page: %w", err)
	}

	// Give JavaScript time to render the listing content
	if err := page.Timeout(10 * time.Second).WaitStable(500 * time.Millisecond); err != nil {
		log.Printf("Warning: Page did not stabilize within timeout, continuing anyway: %v\n", err)
	}

	preparePage(page)

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", err)
	}

	return html, nil
}

// preparePage accepts the cookie banner, hides the login overlay, and clicks
// the more-info toggle so the additional-information section's contact data
// ends up in the HTML. Every step is best-effort: the elements are often
// absent, and a listing without them still parses fine.
func preparePage(page *rod.Page) {
	if el, err := page.Timeout(3 * time.Second).Element("#ccmgt_explicit_accept"); err == nil {
		if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
			log.Printf("Warning: Failed to accept cookie banner: %v\n", err)
		}
	}

	if el, err := page.Timeout(2 * time.Second).Element(".lpca-login-registration-components-rgcrz1"); err == nil {
		if _, err := el.Eval(`() => this.style.display = "none"`); err != nil {
			log.Printf("Warning: Failed to hide login overlay: %v\n", err)
		}
	}

	if el, err := page.Timeout(3 * time.Second).Element("[data-at='rebranded-version'] [role='button']"); err == nil {
		if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
			log.Printf("Warning: Failed to expand additional information: %v\n", err)
			return
		}
		if err := page.Timeout(5 * time.Second).WaitStable(500 * time.Millisecond); err != nil {
			log.Printf("Warning: Page did not stabilize after expanding additional information: %v\n", err)
		}
	}
}
