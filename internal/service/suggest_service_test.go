package service

import (
	"context"
	"testing"

	"locator-api/internal/places"
	"locator-api/internal/suggest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAutocompleteClient is a mock implementation of the AutocompleteClient interface
type MockAutocompleteClient struct {
	mock.Mock
	configured bool
}

func (m *MockAutocompleteClient) Configured() bool { return m.configured }

func (m *MockAutocompleteClient) Autocomplete(ctx context.Context, query string) ([]places.Prediction, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]places.Prediction), args.Error(1)
}

func newSuggestService(t *testing.T, client *MockAutocompleteClient) *SuggestService {
	t.Helper()
	svc, err := NewSuggestService(client, suggest.NewRanker(), 16, zerolog.Nop())
	require.NoError(t, err)
	return svc
}

func TestSuggestService_Suggest(t *testing.T) {
	predictions := []places.Prediction{
		{Description: "SM Megamall, Mandaluyong, Metro Manila, Philippines", MainText: "SM Megamall", SecondaryText: "Mandaluyong, Metro Manila, Philippines"},
		{Description: "SM Aura, Taguig, Metro Manila, Philippines", MainText: "SM Aura", SecondaryText: "Taguig, Metro Manila, Philippines"},
	}

	t.Run("fetches and ranks", func(t *testing.T) {
		client := &MockAutocompleteClient{configured: true}
		client.On("Autocomplete", mock.Anything, "sm").Return(predictions, nil).Once()

		svc := newSuggestService(t, client)
		got := svc.Suggest(context.Background(), "sm")

		require.Len(t, got, 2)
		assert.Equal(t, "SM Megamall, Mandaluyong, Metro Manila, Philippines", got[0].Text)
		client.AssertExpectations(t)
	})

	t.Run("second identical query served from cache", func(t *testing.T) {
		client := &MockAutocompleteClient{configured: true}
		client.On("Autocomplete", mock.Anything, "sm").Return(predictions, nil).Once()

		svc := newSuggestService(t, client)
		first := svc.Suggest(context.Background(), "sm")
		second := svc.Suggest(context.Background(), "SM ") // normalizes to same key

		assert.Equal(t, first, second)
		client.AssertNumberOfCalls(t, "Autocomplete", 1)
	})

	t.Run("capability failure degrades to empty list", func(t *testing.T) {
		client := &MockAutocompleteClient{configured: true}
		client.On("Autocomplete", mock.Anything, "manila").Return(nil, assert.AnError)

		svc := newSuggestService(t, client)
		got := svc.Suggest(context.Background(), "manila")

		assert.Empty(t, got)
	})

	t.Run("unconfigured capability yields empty list without a call", func(t *testing.T) {
		client := &MockAutocompleteClient{configured: false}

		svc := newSuggestService(t, client)
		got := svc.Suggest(context.Background(), "manila")

		assert.Empty(t, got)
		client.AssertNotCalled(t, "Autocomplete", mock.Anything, mock.Anything)
	})

	t.Run("blank query yields empty list", func(t *testing.T) {
		client := &MockAutocompleteClient{configured: true}

		svc := newSuggestService(t, client)
		assert.Empty(t, svc.Suggest(context.Background(), "   "))
		client.AssertNotCalled(t, "Autocomplete", mock.Anything, mock.Anything)
	})
}
