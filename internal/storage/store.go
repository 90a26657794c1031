// Package storage persists sweep and field-map runs as run directories:
// metadata.json describing the configuration alongside the CSV payloads.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/eimlab/internal/config"
)

const (
	ResultsFile = "results.csv"
	FieldFile   = "field.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string         `json:"id"`
	Device    string         `json:"device"`
	Mode      string         `json:"mode"`
	Timestamp time.Time      `json:"timestamp"`
	Config    *config.Config `json:"config"`
}

// Save stores a sweep run (metadata + results.csv) and returns its ID.
func (s *Store) Save(cfg *config.Config, header []string, records [][]string) (string, error) {
	return s.saveRun(cfg, ResultsFile, header, records)
}

// SaveField stores a field-map run (metadata + field.csv) and returns
// its ID.
func (s *Store) SaveField(cfg *config.Config, header []string, records [][]string) (string, error) {
	return s.saveRun(cfg, FieldFile, header, records)
}

func (s *Store) saveRun(cfg *config.Config, name string, header []string, records [][]string) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Device, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Device:    cfg.Device,
		Mode:      cfg.Mode,
		Timestamp: time.Now(),
		Config:    cfg,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := WriteCSV(filepath.Join(runDir, name), header, records); err != nil {
		return "", err
	}

	return runID, nil
}

// WriteCSV writes a header plus records to path.
func WriteCSV(path string, header []string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if err := w.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadCSV reads the named CSV payload of a run, returning the header and
// data records separately.
func (s *Store) LoadCSV(runID, name string) ([]string, [][]string, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, name))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("storage: %s of run %s is empty", name, runID)
	}

	return records[0], records[1:], nil
}
