package models

import (
	"strings"
	"time"
)

// Job represents one scraped Stepstone job listing
type Job struct {
	Title           string
	EmploymentType  string
	Location        string
	CompanyName     string
	CompanyWebsite  string
	ContactName     string
	ContactPosition string
	ContactPhone    string
	ContactEmail    string
	Platform        string
	Timestamp       time.Time
	ID              string
}

// Header returns the CSV header row, in the same order as Row
func Header() []string {
	return []string{
		"Job Title",
		"Employment Type",
		"Location",
		"Company Name",
		"Company Website",
		"Contact Name",
		"Contact Position",
		"Contact Phone",
		"Contact Email",
		"Platform",
		"Timestamp",
		"Job ID",
	}
}

// Row returns the job as a CSV row matching Header order
func (j Job) Row() []string {
	return []string{
		j.Title,
		j.EmploymentType,
		j.Location,
		j.CompanyName,
		j.CompanyWebsite,
		j.ContactName,
		j.ContactPosition,
		j.ContactPhone,
		j.ContactEmail,
		j.Platform,
		j.Timestamp.Format(time.RFC3339),
		j.ID,
	}
}

// SplitContactName splits a full contact name into first and last name.
// The last name holds everything after the first word.
func SplitContactName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
