// Package gazetteer holds a small curated table of well-known Philippine
// landmarks and malls, matched by keyword against free-form queries. The
// table is declared once at compile time and never mutated, so concurrent
// lookups need no synchronization.
package gazetteer

import (
	"strings"

	"locator-api/internal/models"
	"locator-api/internal/validator"
)

// DefaultConfidence is assigned to a match when the entry declares none.
const DefaultConfidence = 80

// Entry is one curated place. Keywords are matched as lower-case substrings
// of the query; the first entry in table order with any matching keyword wins.
type Entry struct {
	Keywords   []string
	Text       string
	Street     string
	City       string
	Province   string
	ZipCode    string
	Lat        float64
	Lng        float64
	Confidence int
}

// Table is an ordered set of entries.
type Table struct {
	entries []Entry
}

// New builds a Table over the given entries, preserving declaration order.
func New(entries []Entry) *Table {
	return &Table{entries: entries}
}

// Default returns the built-in landmark and mall table.
func Default() *Table {
	return New(landmarks)
}

// Lookup scans the table for the first entry with a keyword occurring in the
// query. Matching is case-insensitive and substring-based, not word-boundary
// aware. Returns false when no entry matches.
func (t *Table) Lookup(query string) (models.Address, bool) {
	q := strings.ToLower(query)

	for _, e := range t.entries {
		for _, kw := range e.Keywords {
			if strings.Contains(q, strings.ToLower(kw)) {
				return t.build(e), true
			}
		}
	}

	return models.Address{}, false
}

// Len reports the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) build(e Entry) models.Address {
	lat, lng := e.Lat, e.Lng
	conf := e.Confidence
	if conf == 0 {
		conf = DefaultConfidence
	}

	return validator.Clean(models.Address{
		FullAddress: e.Text,
		Street:      e.Street,
		City:        e.City,
		Province:    e.Province,
		Country:     models.Country,
		ZipCode:     e.ZipCode,
		Latitude:    &lat,
		Longitude:   &lng,
		Confidence:  conf,
		AddressType: models.AddressTypeLandmark,
	})
}
