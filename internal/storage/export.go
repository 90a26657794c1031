package storage

import (
	"encoding/json"
	"os"
	"time"
)

type ExportData struct {
	ID        string     `json:"id"`
	Device    string     `json:"device"`
	Mode      string     `json:"mode"`
	Timestamp time.Time  `json:"timestamp"`
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
}

func ExportJSON(path string, meta *RunMetadata, columns []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, columns, rows))
}

func ExportJSONStdout(meta *RunMetadata, columns []string, rows [][]string) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, columns, rows))
}

func exportData(meta *RunMetadata, columns []string, rows [][]string) ExportData {
	return ExportData{
		ID:        meta.ID,
		Device:    meta.Device,
		Mode:      meta.Mode,
		Timestamp: meta.Timestamp,
		Columns:   columns,
		Rows:      rows,
	}
}
