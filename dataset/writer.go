// Package dataset runs batch feature extraction over a labeled beatmap
// tree and lands the resulting records in CSV and SQLite sinks.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/RyanBlaney/ritmo-radar/features"
)

// Writer emits the fixed-header feature table as CSV. The header row is
// written on construction, so a batch with zero successful documents still
// produces a valid table.
type Writer struct {
	csv *csv.Writer
}

// NewWriter wraps w and writes the header row immediately.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(features.Header()); err != nil {
		return nil, fmt.Errorf("dataset: writing header row: %w", err)
	}
	return &Writer{csv: cw}, nil
}

// Write appends one record row to the table.
func (w *Writer) Write(record features.Record) error {
	if err := w.csv.Write(record.Row()); err != nil {
		return fmt.Errorf("dataset: writing record row: %w", err)
	}
	return nil
}

// Flush forces buffered rows to the underlying writer and reports any
// write error encountered so far.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
