// Package suggest scores and orders raw autocomplete predictions against the
// query that produced them. Scoring is deterministic and purely lexical.
package suggest

import (
	"sort"
	"strings"

	"locator-api/internal/models"
	"locator-api/internal/places"
)

// MaxSuggestions caps the ranked output length.
const MaxSuggestions = 8

// Base scores by match position, best first.
const (
	scorePrefix    = 50
	scoreWordStart = 40
	scoreSubstring = 30
	scoreNoMatch   = 10
)

// Bonuses and cap.
const (
	popularBonus    = 20
	longTextBonus   = 10
	longTextMinimum = 20
	scoreCap        = 100
)

// popularKeywords are district and mall-brand tokens that make a prediction
// more likely to be what a Philippine user meant.
var popularKeywords = []string{
	"sm", "ayala", "robinsons", "megamall", "greenbelt", "glorietta",
	"bgc", "bonifacio", "makati", "ortigas", "edsa", "quezon city",
	"manila", "moa",
}

// Ranker orders predictions by heuristic relevance.
type Ranker struct{}

// NewRanker creates a Ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank scores each prediction against the query and returns at most
// MaxSuggestions items in non-increasing score order. Ties keep the
// upstream input order.
func (r *Ranker) Rank(query string, predictions []places.Prediction) []models.Suggestion {
	suggestions := make([]models.Suggestion, 0, len(predictions))
	for _, p := range predictions {
		suggestions = append(suggestions, build(query, p))
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}

// Score computes the relevance score of a prediction text for a query.
func Score(query, text string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(text)

	var score int
	switch {
	case strings.HasPrefix(t, q):
		score = scorePrefix
	case strings.Contains(t, " "+q):
		score = scoreWordStart
	case strings.Contains(t, q):
		score = scoreSubstring
	default:
		score = scoreNoMatch
	}

	for _, kw := range popularKeywords {
		if strings.Contains(t, kw) {
			score += popularBonus
			break
		}
	}

	if len(text) > longTextMinimum {
		score += longTextBonus
	}

	if score > scoreCap {
		score = scoreCap
	}
	return score
}

// MatchLabel buckets a score into a display label.
func MatchLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent Match"
	case score >= 60:
		return "Good Match"
	case score >= 40:
		return "Possible Match"
	default:
		return "Try Refining"
	}
}

func build(query string, p places.Prediction) models.Suggestion {
	score := Score(query, p.Description)
	city, province := splitSecondary(p.SecondaryText)

	return models.Suggestion{
		Text:       p.Description,
		Street:     p.MainText,
		City:       city,
		Province:   province,
		Confidence: score,
		MatchLabel: MatchLabel(score),
	}
}

// splitSecondary pulls a city and province out of a prediction's secondary
// text, which reads like "Quezon City, Metro Manila, Philippines".
func splitSecondary(secondary string) (city, province string) {
	parts := strings.Split(secondary, ",")

	kept := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == models.Country {
			continue
		}
		kept = append(kept, p)
	}

	// The trailing components are the most specific administrative pair:
	// "..., Quezon City, Metro Manila" → city, province.
	switch {
	case len(kept) >= 2:
		city = kept[len(kept)-2]
		province = kept[len(kept)-1]
	case len(kept) == 1:
		city = kept[0]
	}
	return city, province
}
