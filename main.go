package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"stepstone-scraper/config"
	"stepstone-scraper/fetcher"
	"stepstone-scraper/notify"
	"stepstone-scraper/scraper"
	"stepstone-scraper/writer"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command line arguments
	startURL := flag.String("url", "", "Stepstone search URL (optional, overrides config)")
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	maxPages := flag.Int("pages", 0, "Maximum number of pages to scrape (0 = use config)")
	flag.Parse()

	// Load secrets from .env if present
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := loadConfig(*configPath)
	if *startURL != "" {
		cfg.StartURL = *startURL
	}
	if *maxPages > 0 {
		cfg.MaxPages = *maxPages
	}

	log.Println("Starting the scraping process")

	pageFetcher := fetcher.NewCollyFetcher(
		os.Getenv("SCRAPINGBEE_API_KEY"),
		cfg.Fetch.Retries,
		time.Duration(cfg.Fetch.DelaySeconds)*time.Second,
	)

	detailFetcher, err := fetcher.NewRodFetcher()
	if err != nil {
		log.Fatalf("Error: Failed to start headless browser: %v\n", err)
	}
	defer func() {
		if err := detailFetcher.Close(); err != nil {
			log.Printf("Warning: Failed to close browser: %v\n", err)
		}
	}()

	pipeline := scraper.New(scraper.Options{
		PageFetcher:   pageFetcher,
		DetailFetcher: detailFetcher,
		Writer:        writer.NewWriter(cfg.Output),
		BaseURL:       cfg.BaseURL,
		MaxPages:      cfg.MaxPages,
		JobDelay:      time.Duration(cfg.Fetch.JobDelaySeconds) * time.Second,
	})

	summary, err := pipeline.Run(context.Background(), cfg.StartURL)
	if err != nil {
		log.Fatalf("Scraping failed: %v\n", err)
	}

	log.Printf("Wrote %d job(s) to %s\n", summary.JobsSaved, cfg.Output)

	sendNotification(cfg, summary)
}

// sendNotification reports the run over Telegram when configured
func sendNotification(cfg *config.Config, summary *scraper.Summary) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" || cfg.Notify.ChatID == 0 {
		return
	}

	notifier, err := notify.New(token, cfg.Notify.ChatID)
	if err != nil {
		log.Printf("Warning: Failed to initialize Telegram notifier: %v\n", err)
		return
	}
	if err := notifier.SendSummary(summary); err != nil {
		log.Printf("Warning: Failed to send Telegram summary: %v\n", err)
	}
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.Config {
	if _, err := os.Stat(configPath); err != nil {
		log.Println("Config file not found. Using default configuration.")
		return config.GetDefaultConfig()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config file: %v. Using defaults.\n", err)
		return config.GetDefaultConfig()
	}
	return cfg
}
