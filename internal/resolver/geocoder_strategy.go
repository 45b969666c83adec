package resolver

import (
	"context"
	"fmt"
	"strings"

	"locator-api/internal/geocode"
	"locator-api/internal/models"
	"locator-api/internal/validator"
)

// Confidence assigned by the geocoder strategy. A geocoder hit carries
// coordinates from a commercial service; the local table is curated but has
// no coordinates to offer.
const (
	GeocoderConfidence   = 90
	LocalTableConfidence = 75
)

// localAddress is one row of the tiny last-resort table consulted when the
// geocoder itself finds nothing.
type localAddress struct {
	AddressLine string
	Street      string
	City        string
	Province    string
	ZipCode     string
}

var localAddresses = []localAddress{
	{
		AddressLine: "Brgy Caingin, Santa Rosa, Laguna, Philippines",
		Street:      "Brgy Caingin",
		City:        "Santa Rosa",
		Province:    "Laguna",
		ZipCode:     "4026",
	},
}

// GeocoderStrategy resolves queries through the commercial geocoding
// capability, with a tiny local keyword table as its own fallback.
type GeocoderStrategy struct {
	client geocode.Client
}

// NewGeocoderStrategy wraps a geocode client as a Strategy.
func NewGeocoderStrategy(client geocode.Client) *GeocoderStrategy {
	return &GeocoderStrategy{client: client}
}

// Name implements Strategy.
func (s *GeocoderStrategy) Name() string { return "geocoder" }

// Available implements Strategy. The local table keeps the strategy usable
// even without a geocoder credential.
func (s *GeocoderStrategy) Available() bool { return true }

// Resolve implements Strategy.
func (s *GeocoderStrategy) Resolve(ctx context.Context, query string) (*models.Address, error) {
	if s.client.Configured() {
		result, err := s.client.Geocode(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("resolver: geocoder lookup: %w", err)
		}
		if result.Matched {
			addr := fromGeocode(result, query)
			return &addr, nil
		}
	}

	if addr, ok := lookupLocal(query); ok {
		return &addr, nil
	}
	return nil, nil
}

func fromGeocode(r *geocode.Result, query string) models.Address {
	lat, lng := r.Latitude, r.Longitude

	full := r.FormattedAddress
	if full == "" {
		full = composeAddressLine(r.Street, r.City, r.Province)
	}

	return validator.EchoQuery(validator.Clean(models.Address{
		FullAddress: full,
		Street:      r.Street,
		City:        r.City,
		Province:    r.Province,
		Country:     r.Country,
		ZipCode:     r.ZipCode,
		Latitude:    &lat,
		Longitude:   &lng,
		Confidence:  GeocoderConfidence,
		AddressType: models.AddressTypeStreet,
	}), query)
}

func lookupLocal(query string) (models.Address, bool) {
	q := strings.ToLower(query)

	for _, a := range localAddresses {
		if strings.Contains(strings.ToLower(a.AddressLine), q) {
			return validator.Clean(models.Address{
				FullAddress: a.AddressLine,
				Street:      a.Street,
				City:        a.City,
				Province:    a.Province,
				Country:     models.Country,
				ZipCode:     a.ZipCode,
				Confidence:  LocalTableConfidence,
				AddressType: models.AddressTypeStreet,
			}), true
		}
	}

	return models.Address{}, false
}

func composeAddressLine(parts ...string) string {
	kept := make([]string, 0, len(parts)+1)
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	kept = append(kept, models.Country)
	return strings.Join(kept, ", ")
}
