package writer

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"stepstone-scraper/models"
)

// Writer appends job records to a CSV file, creating the file with a header
// row on first write. The file is opened per append so a crash loses at most
// the current record.
type Writer struct {
	path string
}

// NewWriter creates a CSV writer targeting the given path
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Append writes one job as a row at the end of the file
func (w *Writer) Append(job models.Job) error {
	_, statErr := os.Stat(w.path)
	newFile := os.IsNotExist(statErr)

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", w.path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if newFile {
		if err := cw.Write(models.Header()); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		log.Printf("Created %s with header\n", w.path)
	}

	if err := cw.Write(job.Row()); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}
