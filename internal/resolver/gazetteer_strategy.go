package resolver

import (
	"context"

	"locator-api/internal/gazetteer"
	"locator-api/internal/models"
)

// GazetteerStrategy resolves queries against the static curated landmark
// table. Always available; purely in-memory.
type GazetteerStrategy struct {
	table *gazetteer.Table
}

// NewGazetteerStrategy wraps a gazetteer table as a Strategy.
func NewGazetteerStrategy(table *gazetteer.Table) *GazetteerStrategy {
	return &GazetteerStrategy{table: table}
}

// Name implements Strategy.
func (s *GazetteerStrategy) Name() string { return "gazetteer" }

// Available implements Strategy.
func (s *GazetteerStrategy) Available() bool { return true }

// Resolve implements Strategy.
func (s *GazetteerStrategy) Resolve(_ context.Context, query string) (*models.Address, error) {
	addr, ok := s.table.Lookup(query)
	if !ok {
		return nil, nil
	}
	return &addr, nil
}
