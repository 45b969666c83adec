package service

import (
	"context"

	"github.com/rs/zerolog"

	"locator-api/internal/models"
	"locator-api/internal/resolver"
	"locator-api/internal/validator"
)

// AddressRepository is the persistence contract the service depends on.
type AddressRepository interface {
	SaveAddress(ctx context.Context, addr models.Address) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]models.AddressRecord, error)
}

// QueryResolver resolves a free-form query under a mode.
type QueryResolver interface {
	Resolve(ctx context.Context, query string, mode resolver.Mode) models.Address
}

// ResolveService orchestrates resolution and persistence. Resolution never
// fails; persistence is attempted only for results with coordinates, and a
// failed save never affects the response.
type ResolveService struct {
	resolver QueryResolver
	repo     AddressRepository
	logger   zerolog.Logger
}

// NewResolveService creates a new resolve service
func NewResolveService(r QueryResolver, repo AddressRepository, logger zerolog.Logger) *ResolveService {
	return &ResolveService{resolver: r, repo: repo, logger: logger}
}

// Resolve turns a query into a structured address and persists it when both
// coordinates are present.
func (s *ResolveService) Resolve(ctx context.Context, query, mode string) models.Address {
	addr := s.resolver.Resolve(ctx, query, resolver.ParseMode(mode))
	s.persist(ctx, addr)
	return addr
}

// Accept stores an address the caller already selected (typically from a
// suggestion), bypassing resolution. The submitted fields still pass through
// the validator so no out-of-shape record is ever persisted.
func (s *ResolveService) Accept(ctx context.Context, addr models.Address) models.Address {
	addr = validator.Clean(addr)
	s.persist(ctx, addr)
	return addr
}

// Recent lists the most recently persisted addresses.
func (s *ResolveService) Recent(ctx context.Context, limit int) ([]models.AddressRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *ResolveService) persist(ctx context.Context, addr models.Address) {
	if !addr.HasCoordinates() {
		return
	}

	id, err := s.repo.SaveAddress(ctx, addr)
	if err != nil {
		s.logger.Warn().Err(err).Str("full_address", addr.FullAddress).
			Msg("failed to persist resolved address")
		return
	}

	s.logger.Debug().Int64("id", id).Str("full_address", addr.FullAddress).
		Msg("resolved address persisted")
}
