package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the scraper configuration
type Config struct {
	BaseURL  string `yaml:"base_url"`
	StartURL string `yaml:"start_url"`
	MaxPages int    `yaml:"max_pages"`
	Output   string `yaml:"output"`
	Fetch    struct {
		Retries         int `yaml:"retries"`
		DelaySeconds    int `yaml:"delay_seconds"`
		JobDelaySeconds int `yaml:"job_delay_seconds"`
	} `yaml:"fetch"`
	Notify struct {
		ChatID int64 `yaml:"chat_id"`
	} `yaml:"notify"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// GetDefaultConfig returns a default configuration
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://www.stepstone.de"
	}
	if c.StartURL == "" {
		c.StartURL = "https://www.stepstone.de/jobs/in-deutschland?radius=5&action=facet_selected%3bage%3bage_1&ag=age_1"
	}
	if c.Output == "" {
		c.Output = "jobs.csv"
	}
	if c.Fetch.Retries == 0 {
		c.Fetch.Retries = 3
	}
	if c.Fetch.DelaySeconds == 0 {
		c.Fetch.DelaySeconds = 2
	}
	if c.Fetch.JobDelaySeconds == 0 {
		c.Fetch.JobDelaySeconds = 1
	}
}
