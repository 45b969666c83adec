package service

import (
	"context"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"locator-api/internal/models"
	"locator-api/internal/places"
	"locator-api/internal/suggest"
)

// DefaultSuggestCacheSize bounds the per-process suggestion cache.
const DefaultSuggestCacheSize = 1024

// AutocompleteClient is the autocomplete capability the service depends on.
type AutocompleteClient interface {
	Autocomplete(ctx context.Context, query string) ([]places.Prediction, error)
	Configured() bool
}

// SuggestService fetches, ranks and caches autocomplete suggestions.
// Capability failures degrade to an empty list; the caller never sees an
// error for a bad query.
type SuggestService struct {
	client AutocompleteClient
	ranker *suggest.Ranker
	cache  *lru.Cache[string, []models.Suggestion]
	logger zerolog.Logger
}

// NewSuggestService creates a new suggest service
func NewSuggestService(client AutocompleteClient, ranker *suggest.Ranker, cacheSize int, logger zerolog.Logger) (*SuggestService, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultSuggestCacheSize
	}

	cache, err := lru.New[string, []models.Suggestion](cacheSize)
	if err != nil {
		return nil, err
	}

	return &SuggestService{
		client: client,
		ranker: ranker,
		cache:  cache,
		logger: logger,
	}, nil
}

// Suggest returns ranked suggestions for a partial query. Identical queries
// hit the cache and skip the upstream call.
func (s *SuggestService) Suggest(ctx context.Context, query string) []models.Suggestion {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return []models.Suggestion{}
	}

	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug().Str("query", key).Msg("suggestion cache hit")
		return cached
	}

	if !s.client.Configured() {
		s.logger.Debug().Msg("autocomplete capability not configured")
		return []models.Suggestion{}
	}

	predictions, err := s.client.Autocomplete(ctx, query)
	if err != nil {
		s.logger.Warn().Err(err).Str("query", query).Msg("autocomplete lookup failed")
		return []models.Suggestion{}
	}

	ranked := s.ranker.Rank(query, predictions)
	s.cache.Add(key, ranked)
	return ranked
}
