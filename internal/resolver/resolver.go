// Package resolver turns free-form Philippine location queries into canonical
// structured addresses by cascading through pluggable resolution strategies.
package resolver

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"locator-api/internal/models"
)

// Mode selects which strategy chain a resolution uses.
type Mode string

const (
	ModeAuto         Mode = "auto"
	ModeAIOnly       Mode = "ai_only"
	ModeGeocoderOnly Mode = "geocoder_only"
)

// ParseMode maps a caller-supplied mode string onto a known Mode. Unknown or
// empty values fall back to ModeAuto.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeAIOnly:
		return ModeAIOnly
	case ModeGeocoderOnly:
		return ModeGeocoderOnly
	default:
		return ModeAuto
	}
}

// FallbackConfidence is assigned when every strategy comes up empty and the
// query is echoed back as an area.
const FallbackConfidence = 40

// Strategy is one pluggable way of resolving a query. A nil address with a
// nil error means "no result"; an error means the strategy's capability
// failed. The resolver treats both the same way and advances to the next
// strategy.
type Strategy interface {
	Name() string
	Available() bool
	Resolve(ctx context.Context, query string) (*models.Address, error)
}

// Resolver cascades through a per-mode ordered strategy chain. It never
// fails: every input terminates in a canonical Address.
type Resolver struct {
	chains map[Mode][]Strategy
	logger zerolog.Logger
}

// New builds a Resolver over the three standard strategies.
func New(completion, gazetteer, geocoder Strategy, logger zerolog.Logger) *Resolver {
	return &Resolver{
		chains: map[Mode][]Strategy{
			ModeAuto:         {completion, gazetteer},
			ModeAIOnly:       {completion},
			ModeGeocoderOnly: {geocoder},
		},
		logger: logger,
	}
}

// Resolve tries each strategy for the mode in order and returns the first
// result. Strategy errors are logged and treated as "no result". When the
// whole chain misses, the query is echoed back as a low-confidence area.
func (r *Resolver) Resolve(ctx context.Context, query string, mode Mode) models.Address {
	if strings.TrimSpace(query) == "" {
		return Empty()
	}

	for _, s := range r.chains[mode] {
		if !s.Available() {
			r.logger.Debug().Str("strategy", s.Name()).Msg("strategy unavailable, skipping")
			continue
		}

		addr, err := s.Resolve(ctx, query)
		if err != nil {
			r.logger.Warn().Err(err).Str("strategy", s.Name()).Str("query", query).
				Msg("strategy failed, trying next")
			continue
		}
		if addr == nil {
			r.logger.Debug().Str("strategy", s.Name()).Str("query", query).
				Msg("strategy returned no result")
			continue
		}

		r.logger.Debug().Str("strategy", s.Name()).Int("confidence", addr.Confidence).
			Msg("query resolved")
		return *addr
	}

	return Fallback(query)
}

// Empty is the terminal result for blank queries. Not an error.
func Empty() models.Address {
	return models.Address{
		Country:     models.Country,
		ZipCode:     models.ZipUnknown,
		Confidence:  0,
		AddressType: models.AddressTypeArea,
	}
}

// Fallback echoes the query back as an unplaced area when no strategy
// produced a result.
func Fallback(query string) models.Address {
	return models.Address{
		FullAddress: query,
		Country:     models.Country,
		ZipCode:     models.ZipUnknown,
		Confidence:  FallbackConfidence,
		AddressType: models.AddressTypeArea,
	}
}
