package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// RunRecord ties one search metric to a labeled benchmark run.
type RunRecord struct {
	Run   string // run directory ID
	Label string
	SearchMetric
}

// Writer persists benchmark records as CSV under a per-run directory.
type Writer struct {
	runID  string
	runDir string
}

// NewWriter creates <baseDir>/<uuid> and returns a writer rooted there.
func NewWriter(baseDir string) (*Writer, error) {
	runID := uuid.NewString()
	runDir := filepath.Join(baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}
	return &Writer{runID: runID, runDir: runDir}, nil
}

// RunID returns the generated run identifier.
func (w *Writer) RunID() string {
	return w.runID
}

// Dir returns the run directory.
func (w *Writer) Dir() string {
	return w.runDir
}

// WriteSearchRecords writes one CSV row per record.
func (w *Writer) WriteSearchRecords(records []RunRecord) error {
	path := filepath.Join(w.runDir, "searches.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create search records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"run", "label", "width", "max_turn", "turns", "kept", "path_length", "outcome", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write search records header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Run,
			r.Label,
			strconv.Itoa(r.Width),
			strconv.Itoa(r.MaxTurn),
			strconv.Itoa(r.Turns),
			strconv.Itoa(r.Kept),
			strconv.Itoa(r.PathLength),
			r.Outcome,
			r.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write search record row: %w", err)
		}
	}
	return writer.Error()
}
