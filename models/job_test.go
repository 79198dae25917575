package models

import (
	"testing"
	"time"
)

func TestHeaderAndRowStayAligned(t *testing.T) {
	job := Job{
		Title:           "Software Engineer",
		EmploymentType:  "Feste Anstellung",
		Location:        "Berlin",
		CompanyName:     "Acme GmbH",
		CompanyWebsite:  "https://www.acme.example",
		ContactName:     "Erika Mustermann",
		ContactPosition: "HR Manager",
		ContactPhone:    "+49 30 1234567",
		ContactEmail:    "jobs@acme.example",
		Platform:        "Stepstone",
		Timestamp:       time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		ID:              "a2b9d6a0-0000-0000-0000-000000000000",
	}

	header := Header()
	row := job.Row()

	if len(header) != 12 {
		t.Fatalf("header has %d fields, want 12", len(header))
	}
	if len(row) != len(header) {
		t.Fatalf("row has %d fields, header has %d", len(row), len(header))
	}

	if row[0] != "Software Engineer" {
		t.Errorf("Job Title column = %q", row[0])
	}
	if row[3] != "Acme GmbH" {
		t.Errorf("Company Name column = %q", row[3])
	}
	if row[9] != "Stepstone" {
		t.Errorf("Platform column = %q", row[9])
	}
	if row[10] != "2026-08-31T12:00:00Z" {
		t.Errorf("Timestamp column = %q", row[10])
	}
	if row[11] != job.ID {
		t.Errorf("Job ID column = %q", row[11])
	}
}

func TestSplitContactName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		first string
		last  string
	}{
		{"two parts", "Erika Mustermann", "Erika", "Mustermann"},
		{"three parts", "Erika Maria Mustermann", "Erika", "Maria Mustermann"},
		{"single name", "Erika", "Erika", ""},
		{"extra spaces", "  Erika   Mustermann ", "Erika", "Mustermann"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitContactName(tt.input)
			if first != tt.first || last != tt.last {
				t.Errorf("SplitContactName(%q) = (%q, %q), want (%q, %q)",
					tt.input, first, last, tt.first, tt.last)
			}
		})
	}
}
