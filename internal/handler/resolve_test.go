package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"locator-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockResolveService is a mock implementation of the ResolveService interface
type MockResolveService struct {
	mock.Mock
}

func (m *MockResolveService) Resolve(ctx context.Context, query, mode string) models.Address {
	args := m.Called(ctx, query, mode)
	return args.Get(0).(models.Address)
}

func (m *MockResolveService) Accept(ctx context.Context, addr models.Address) models.Address {
	args := m.Called(ctx, addr)
	return args.Get(0).(models.Address)
}

func postResolve(handler *ResolveHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/resolve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Resolve(c)
	return w
}

func TestResolveHandler_Resolve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resolved := models.Address{
		FullAddress: "Rizal Shrine, Calamba, Laguna",
		City:        "Calamba",
		Province:    "Laguna",
		Country:     models.Country,
		ZipCode:     "4027",
		Confidence:  80,
		AddressType: models.AddressTypeLandmark,
	}

	t.Run("malformed body", func(t *testing.T) {
		mockSvc := new(MockResolveService)
		handler := NewResolveHandler(mockSvc)

		w := postResolve(handler, `{"address": `)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
		mockSvc.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything)
	})

	t.Run("query without coordinates goes through resolution", func(t *testing.T) {
		mockSvc := new(MockResolveService)
		mockSvc.On("Resolve", mock.Anything, "bahay ni rizal", "auto").Return(resolved)
		handler := NewResolveHandler(mockSvc)

		w := postResolve(handler, `{"address": "bahay ni rizal", "mode": "auto"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.Address
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, resolved, got)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing mode is passed through empty", func(t *testing.T) {
		mockSvc := new(MockResolveService)
		mockSvc.On("Resolve", mock.Anything, "sm moa", "").Return(resolved)
		handler := NewResolveHandler(mockSvc)

		w := postResolve(handler, `{"address": "sm moa"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("body with coordinates skips resolution", func(t *testing.T) {
		lat, lng := 14.5353, 121.0008
		submitted := models.Address{
			FullAddress: "SM Mall of Asia, Pasay, Metro Manila",
			Street:      "Seaside Boulevard",
			City:        "Pasay",
			Province:    "Metro Manila",
			ZipCode:     "1300",
			Latitude:    &lat,
			Longitude:   &lng,
			Confidence:  90,
			AddressType: models.AddressTypeLandmark,
		}
		accepted := submitted
		accepted.Country = models.Country

		mockSvc := new(MockResolveService)
		mockSvc.On("Accept", mock.Anything, submitted).Return(accepted)
		handler := NewResolveHandler(mockSvc)

		body := `{
			"address": "SM Mall of Asia, Pasay, Metro Manila",
			"street": "Seaside Boulevard",
			"city": "Pasay",
			"province": "Metro Manila",
			"zip_code": "1300",
			"latitude": 14.5353,
			"longitude": 121.0008,
			"confidence": 90,
			"address_type": "landmark"
		}`
		w := postResolve(handler, body)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.Address
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, accepted, got)
		mockSvc.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
		mockSvc.AssertExpectations(t)
	})

	t.Run("single coordinate still resolves", func(t *testing.T) {
		mockSvc := new(MockResolveService)
		mockSvc.On("Resolve", mock.Anything, "somewhere", "").Return(resolved)
		handler := NewResolveHandler(mockSvc)

		w := postResolve(handler, `{"address": "somewhere", "latitude": 14.5}`)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything)
		mockSvc.AssertExpectations(t)
	})
}
