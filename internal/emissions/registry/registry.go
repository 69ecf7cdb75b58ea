// Package registry builds and holds the country set from the record stream.
package registry

import (
	"fmt"
	"sync"

	"emissions/internal/emissions/models"
	"emissions/pkg/platform/sentinel"
)

// Registry maps ISO codes to countries. The first row for a code constructs
// the country; later rows only contribute their yearly fields.
//
// Ingestion takes the write lock and queries take the read lock, so a registry
// may be served concurrently once loaded.
type Registry struct {
	mu        sync.RWMutex
	countries map[models.ISOCode]*models.Country
	order     []models.ISOCode
	bounds    *models.YearBounds
}

// New returns an empty registry with its own year bounds.
func New() *Registry {
	return &Registry{
		countries: make(map[models.ISOCode]*models.Country),
		bounds:    models.NewYearBounds(),
	}
}

// BuildFromRecords replays records into a new registry, stopping at the first
// invalid row.
func BuildFromRecords(records []models.Record) (*Registry, error) {
	r := New()
	for i, rec := range records {
		if err := r.Ingest(rec); err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i+1, rec.Code, err)
		}
	}
	return r, nil
}

// Ingest applies one record. Identity and continent fields of a repeated code
// are ignored.
func (r *Registry) Ingest(rec models.Record) error {
	obs, err := rec.Observation()
	if err != nil {
		return err
	}
	code, err := models.ParseISOCode(rec.Code)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.countries[code]; ok {
		existing.AddYearlyData(obs)
		return nil
	}
	c, err := models.NewCountry(string(code), rec.Name, models.ParseContinents(rec.Continents), obs, r.bounds)
	if err != nil {
		return err
	}
	r.countries[code] = c
	r.order = append(r.order, code)
	return nil
}

// Get returns the country registered under code.
func (r *Registry) Get(code string) (*models.Country, error) {
	iso, err := models.ParseISOCode(code)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.countries[iso]; ok {
		return c, nil
	}
	return nil, sentinel.ErrNotFound
}

// All returns every country in first-seen order.
func (r *Registry) All() []*models.Country {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Country, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.countries[code])
	}
	return out
}

// Len returns the number of countries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Bounds returns the year bounds shared by every country in the registry.
func (r *Registry) Bounds() *models.YearBounds {
	return r.bounds
}
