package service

import (
	"context"
	"testing"

	"locator-api/internal/models"
	"locator-api/internal/resolver"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAddressRepository is a mock implementation of the AddressRepository interface
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) SaveAddress(ctx context.Context, addr models.Address) (int64, error) {
	args := m.Called(ctx, addr)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAddressRepository) ListRecent(ctx context.Context, limit int) ([]models.AddressRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AddressRecord), args.Error(1)
}

// MockQueryResolver is a mock implementation of the QueryResolver interface
type MockQueryResolver struct {
	mock.Mock
}

func (m *MockQueryResolver) Resolve(ctx context.Context, query string, mode resolver.Mode) models.Address {
	args := m.Called(ctx, query, mode)
	return args.Get(0).(models.Address)
}

func locatedAddr() models.Address {
	lat, lng := 14.5820, 120.9783
	return models.Address{
		FullAddress: "Rizal Park, Ermita, Manila, Metro Manila, Philippines",
		Street:      "Rizal Park",
		City:        "Manila",
		Province:    "Metro Manila",
		Country:     "Philippines",
		ZipCode:     "0000",
		Latitude:    &lat,
		Longitude:   &lng,
		Confidence:  80,
		AddressType: "landmark",
	}
}

func TestResolveService_Resolve(t *testing.T) {
	t.Run("persists result with coordinates", func(t *testing.T) {
		res := new(MockQueryResolver)
		repo := new(MockAddressRepository)
		res.On("Resolve", mock.Anything, "rizal park", resolver.ModeAuto).Return(locatedAddr())
		repo.On("SaveAddress", mock.Anything, locatedAddr()).Return(int64(1), nil)

		svc := NewResolveService(res, repo, zerolog.Nop())
		got := svc.Resolve(context.Background(), "rizal park", "auto")

		assert.Equal(t, locatedAddr(), got)
		repo.AssertExpectations(t)
		res.AssertExpectations(t)
	})

	t.Run("does not persist a result without coordinates", func(t *testing.T) {
		res := new(MockQueryResolver)
		repo := new(MockAddressRepository)
		fallback := resolver.Fallback("gibberish")
		res.On("Resolve", mock.Anything, "gibberish", resolver.ModeAIOnly).Return(fallback)

		svc := NewResolveService(res, repo, zerolog.Nop())
		got := svc.Resolve(context.Background(), "gibberish", "ai_only")

		assert.Equal(t, fallback, got)
		repo.AssertNotCalled(t, "SaveAddress", mock.Anything, mock.Anything)
	})

	t.Run("persistence failure does not affect the response", func(t *testing.T) {
		res := new(MockQueryResolver)
		repo := new(MockAddressRepository)
		res.On("Resolve", mock.Anything, "rizal park", resolver.ModeAuto).Return(locatedAddr())
		repo.On("SaveAddress", mock.Anything, locatedAddr()).Return(int64(0), assert.AnError)

		svc := NewResolveService(res, repo, zerolog.Nop())
		got := svc.Resolve(context.Background(), "rizal park", "auto")

		assert.Equal(t, locatedAddr(), got)
		repo.AssertExpectations(t)
	})

	t.Run("unknown mode string defaults to auto", func(t *testing.T) {
		res := new(MockQueryResolver)
		repo := new(MockAddressRepository)
		fallback := resolver.Fallback("query")
		res.On("Resolve", mock.Anything, "query", resolver.ModeAuto).Return(fallback)

		svc := NewResolveService(res, repo, zerolog.Nop())
		svc.Resolve(context.Background(), "query", "hybrid")

		res.AssertExpectations(t)
	})
}

func TestResolveService_Accept(t *testing.T) {
	t.Run("cleans and persists a submitted address", func(t *testing.T) {
		res := new(MockQueryResolver)
		repo := new(MockAddressRepository)

		lat, lng := 14.5547, 121.045
		submitted := models.Address{
			FullAddress: "11th Avenue, BGC, Taguig",
			Street:      "11th Avenue",
			City:        "Taguig",
			Country:     "wherever",
			ZipCode:     "163000",
			Latitude:    &lat,
			Longitude:   &lng,
			Confidence:  120,
			AddressType: "mall",
		}

		repo.On("SaveAddress", mock.Anything, mock.MatchedBy(func(a models.Address) bool {
			return a.Country == "Philippines" && a.ZipCode == "0000" &&
				a.Confidence == 100 && a.AddressType == "street_address"
		})).Return(int64(7), nil)

		svc := NewResolveService(res, repo, zerolog.Nop())
		got := svc.Accept(context.Background(), submitted)

		assert.Equal(t, "Philippines", got.Country)
		assert.Equal(t, "0000", got.ZipCode)
		repo.AssertExpectations(t)
	})

	t.Run("skips persistence without coordinates", func(t *testing.T) {
		res := new(MockQueryResolver)
		repo := new(MockAddressRepository)

		svc := NewResolveService(res, repo, zerolog.Nop())
		svc.Accept(context.Background(), models.Address{FullAddress: "Ermita, Manila"})

		repo.AssertNotCalled(t, "SaveAddress", mock.Anything, mock.Anything)
	})
}

func TestResolveService_Recent(t *testing.T) {
	res := new(MockQueryResolver)
	repo := new(MockAddressRepository)
	records := []models.AddressRecord{{ID: 1, Address: locatedAddr()}}

	repo.On("ListRecent", mock.Anything, 20).Return(records, nil)

	svc := NewResolveService(res, repo, zerolog.Nop())

	// Out-of-range limits collapse to the default.
	got, err := svc.Recent(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, records, got)

	got, err = svc.Recent(context.Background(), 500)
	assert.NoError(t, err)
	assert.Equal(t, records, got)

	repo.AssertExpectations(t)
}
