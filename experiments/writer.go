package experiments

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Setup struct {
	Config    Config        `json:"config"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, timestamp)

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(cfg Config, start, end time.Time) error {
	setup := Setup{
		Config:    cfg,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}

	f, err := os.Create(filepath.Join(w.baseDir, "setup.json"))
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteRecords(records []Record) error {
	header := []string{"game", "seed", "strategy", "action", "agrees", "value", "nodes", "terminals", "heuristics", "prunes", "duration"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.FormatUint(r.Seed, 10),
			r.Strategy,
			strconv.Itoa(r.Action),
			strconv.FormatBool(r.Agrees),
			strconv.FormatFloat(r.Value, 'g', -1, 64),
			strconv.FormatInt(r.Nodes, 10),
			strconv.FormatInt(r.Terminals, 10),
			strconv.FormatInt(r.Heuristics, 10),
			strconv.FormatInt(r.Prunes, 10),
			r.Duration.String(),
		})
	}
	return w.writeCSV("records.csv", header, rows)
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	header := []string{"strategy", "games", "meanNodes", "meanTerminals", "meanHeuristics", "meanPrunes", "agreement"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Strategy,
			strconv.Itoa(s.Games),
			strconv.FormatFloat(s.MeanNodes, 'f', 2, 64),
			strconv.FormatFloat(s.MeanTerminals, 'f', 2, 64),
			strconv.FormatFloat(s.MeanHeuristics, 'f', 2, 64),
			strconv.FormatFloat(s.MeanPrunes, 'f', 2, 64),
			strconv.FormatFloat(s.Agreement, 'f', 3, 64),
		})
	}
	return w.writeCSV("summary.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
