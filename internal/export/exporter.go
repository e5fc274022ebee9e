// Package export writes snapshots of loaded analytics results to disk.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"trendscope/internal/session"
)

// Exporter writes pretty-printed JSON snapshots of fetched results.
type Exporter struct {
	dir string
	now func() time.Time
}

// NewExporter creates an Exporter writing into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir, now: time.Now}
}

// ExportForecast writes the loaded forecast and returns the file path.
func (e *Exporter) ExportForecast(res *session.ForecastResult) (string, error) {
	if res == nil {
		return "", fmt.Errorf("no forecast loaded")
	}
	name := fmt.Sprintf("forecast-%s-%s-%s.json",
		res.SourceSystem, sanitize(res.Product), e.now().Format("20060102-150405"))
	return e.write(name, res)
}

// ExportDetail writes the loaded trend detail and returns the file path.
func (e *Exporter) ExportDetail(d *session.TrendDetail) (string, error) {
	if d == nil {
		return "", fmt.Errorf("no trend detail loaded")
	}
	name := fmt.Sprintf("trend-%s-%s-%s-%s.json",
		d.SourceSystem, sanitize(d.Product), d.TimeRange, e.now().Format("20060102-150405"))
	return e.write(name, d)
}

func (e *Exporter) write(name string, payload any) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}

	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}
	return path, nil
}

// sanitize makes a product id safe for use in a file name.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, s)
}
