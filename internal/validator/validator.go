// Package validator repairs loosely-typed candidate addresses into the
// canonical schema. Validation is total: any input, including an empty map,
// yields an Address satisfying every schema invariant.
package validator

import (
	"regexp"
	"strconv"
	"strings"

	"locator-api/internal/models"
)

var zipShape = regexp.MustCompile(`^\d{4}$`)

// DefaultConfidence is assigned when a source omits confidence or returns
// something that does not parse as an integer.
const DefaultConfidence = 50

// Clean enforces the schema invariants on an already-typed Address. It is a
// pure function and idempotent: Clean(Clean(a)) == Clean(a).
func Clean(a models.Address) models.Address {
	a.Country = models.Country

	if !zipShape.MatchString(a.ZipCode) {
		a.ZipCode = models.ZipUnknown
	}

	if a.Confidence < 0 {
		a.Confidence = 0
	}
	if a.Confidence > 100 {
		a.Confidence = 100
	}

	switch a.AddressType {
	case models.AddressTypeStreet, models.AddressTypeLandmark, models.AddressTypeArea:
	default:
		a.AddressType = models.AddressTypeStreet
	}

	return a
}

// FromMap builds a canonical Address from a loosely-typed mapping, typically
// a decoded JSON object from an external source. Missing keys become empty
// fields, wrong-typed values are coerced or replaced with defaults, and the
// result is passed through Clean. It never fails.
func FromMap(m map[string]any) models.Address {
	a := models.Address{
		FullAddress: asString(m["full_address"]),
		Street:      asString(m["street"]),
		City:        asString(m["city"]),
		Province:    asString(m["province"]),
		Country:     asString(m["country"]),
		ZipCode:     asString(m["zip_code"]),
		Latitude:    asFloat(m["latitude"]),
		Longitude:   asFloat(m["longitude"]),
		Confidence:  asConfidence(m["confidence"]),
		AddressType: asString(m["address_type"]),
	}
	return Clean(a)
}

// EchoQuery fills an empty full_address with the original query so callers
// never see a blank address line.
func EchoQuery(a models.Address, query string) models.Address {
	if strings.TrimSpace(a.FullAddress) == "" {
		a.FullAddress = query
	}
	return a
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func asConfidence(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return DefaultConfidence
		}
		return i
	default:
		return DefaultConfidence
	}
}
