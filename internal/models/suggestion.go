package models

// Suggestion is a single ranked autocomplete candidate. Suggestions are
// transient per-request and never persisted.
type Suggestion struct {
	Text       string   `json:"text"`
	Street     string   `json:"street"`
	City       string   `json:"city"`
	Province   string   `json:"province"`
	ZipCode    string   `json:"zip_code"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Confidence int      `json:"confidence"`
	MatchLabel string   `json:"match_label"`
}
