package registry

import (
	"emissions/internal/emissions/models"
)

// Rejection describes a row skipped by IngestAll.
type Rejection struct {
	Row  int
	Code string
	Err  error
}

// IngestReport summarizes a lenient ingestion pass.
type IngestReport struct {
	Accepted   int
	Rejections []Rejection
}

// IngestAll applies every record, skipping invalid rows instead of failing.
// Row numbers are 1-based positions in records.
func (r *Registry) IngestAll(records []models.Record) IngestReport {
	var report IngestReport
	for i, rec := range records {
		if err := r.Ingest(rec); err != nil {
			report.Rejections = append(report.Rejections, Rejection{Row: i + 1, Code: rec.Code, Err: err})
			continue
		}
		report.Accepted++
	}
	return report
}
