package models

import "time"

// Address type classification values. Anything outside this set is coerced to
// AddressTypeStreet by the validator.
const (
	AddressTypeStreet   = "street_address"
	AddressTypeLandmark = "landmark"
	AddressTypeArea     = "area"
)

// Country is the only country this service resolves addresses for. The
// validator overwrites whatever the upstream source returned.
const Country = "Philippines"

// ZipUnknown is the sentinel used when a source returns no usable postal code.
const ZipUnknown = "0000"

// Address is the canonical structured address produced by resolution. Latitude
// and longitude are nil when the resolving strategy could not place the query
// on the map.
type Address struct {
	FullAddress string   `json:"full_address"`
	Street      string   `json:"street"`
	City        string   `json:"city"`
	Province    string   `json:"province"`
	Country     string   `json:"country"`
	ZipCode     string   `json:"zip_code"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Confidence  int      `json:"confidence"`
	AddressType string   `json:"address_type"`
}

// HasCoordinates reports whether both latitude and longitude are present.
// Only addresses with coordinates are persisted.
func (a Address) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// AddressRecord is a persisted Address row. Records are write-once; the
// service never updates or deletes them.
type AddressRecord struct {
	ID        int64     `json:"id"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
