package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"stepstone-scraper/scraper"
)

// Notifier sends a run summary to a Telegram chat
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// New creates a Notifier for the given bot token and chat
func New(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

// SendSummary reports the run results to the configured chat
func (n *Notifier) SendSummary(s *scraper.Summary) error {
	text := fmt.Sprintf(
		"Scraping run finished\nPages: %d\nJobs found: %d\nJobs saved: %d\nJobs failed: %d",
		s.Pages, s.JobsFound, s.JobsSaved, s.JobsFailed)

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send summary: %w", err)
	}
	return nil
}
