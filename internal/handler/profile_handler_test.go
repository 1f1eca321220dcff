package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arena-store/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileHandler_GetAndUpdate(t *testing.T) {
	logger := zerolog.Nop()
	userID := uuid.New()

	t.Run("Get success", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		profile := &model.Profile{ID: userID, Name: "Ana", Email: "ana@example.com"}
		mockService.On("Get", mock.Anything, userID).Return(profile, nil)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/api/profile", nil), userID, "ana@example.com")
		w := httptest.NewRecorder()

		handler.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ana@example.com")
	})

	t.Run("Get without session", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		w := httptest.NewRecorder()

		handler.Get(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Get")
	})

	t.Run("Update success", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		updated := &model.Profile{ID: userID, Name: "Ana Souza", Email: "ana@example.com"}
		mockService.On("Update", mock.Anything, userID, &model.ProfileRequest{
			Name: "Ana Souza", Phone: "+55 11 91234-5678",
		}).Return(updated, nil)

		body := `{"name": "Ana Souza", "phone": "+55 11 91234-5678"}`
		req := httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(body))
		req = withClaims(req, userID, "ana@example.com")
		w := httptest.NewRecorder()

		handler.Update(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ana Souza")
	})

	t.Run("Update missing name", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		mockService.On("Update", mock.Anything, userID, mock.AnythingOfType("*model.ProfileRequest")).
			Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(`{"name": ""}`))
		req = withClaims(req, userID, "ana@example.com")
		w := httptest.NewRecorder()

		handler.Update(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestProfileHandler_Addresses(t *testing.T) {
	logger := zerolog.Nop()
	userID := uuid.New()
	addressID := uuid.New()

	t.Run("List addresses", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		profile := &model.Profile{
			ID: userID,
			Addresses: []model.Address{
				{ID: addressID, ProfileID: userID, Street: "Avenida Paulista", IsDefault: true},
			},
		}
		mockService.On("Get", mock.Anything, userID).Return(profile, nil)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/api/profile/addresses", nil), userID, "ana@example.com")
		w := httptest.NewRecorder()

		handler.ListAddresses(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Avenida Paulista")
	})

	t.Run("Add address", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		created := &model.Address{ID: addressID, ProfileID: userID, Street: "Avenida Paulista", IsDefault: true}
		mockService.On("AddAddress", mock.Anything, userID, mock.AnythingOfType("*model.AddressRequest")).
			Return(created, nil)

		body := `{"street": "Avenida Paulista", "number": "1000", "city": "São Paulo", "state": "SP", "postalCode": "01310100"}`
		req := httptest.NewRequest(http.MethodPost, "/api/profile/addresses", strings.NewReader(body))
		req = withClaims(req, userID, "ana@example.com")
		w := httptest.NewRecorder()

		handler.AddAddress(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Add address with bad postal code", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		mockService.On("AddAddress", mock.Anything, userID, mock.AnythingOfType("*model.AddressRequest")).
			Return(nil, model.ErrInvalidPostalCode)

		body := `{"street": "Avenida Paulista", "city": "São Paulo", "state": "SP", "postalCode": "1310-100"}`
		req := httptest.NewRequest(http.MethodPost, "/api/profile/addresses", strings.NewReader(body))
		req = withClaims(req, userID, "ana@example.com")
		w := httptest.NewRecorder()

		handler.AddAddress(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), model.ErrCodeInvalidPostalCode)
	})

	t.Run("Update address", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		mockService.On("UpdateAddress", mock.Anything, userID, addressID, mock.AnythingOfType("*model.AddressRequest")).
			Return(nil)

		body := `{"street": "Rua Augusta", "city": "São Paulo", "state": "SP", "postalCode": "01305000"}`
		req := httptest.NewRequest(http.MethodPut, "/api/profile/addresses/"+addressID.String(), strings.NewReader(body))
		req = withClaims(req, userID, "ana@example.com")
		w := httptest.NewRecorder()

		handler.UpdateAddress(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Set default address", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		mockService.On("SetDefaultAddress", mock.Anything, userID, addressID).Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/api/profile/addresses/"+addressID.String()+"/default", nil)
		req = withClaims(req, userID, "ana@example.com")
		w := httptest.NewRecorder()

		handler.UpdateAddress(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockService.AssertNotCalled(t, "UpdateAddress")
	})

	t.Run("Delete address", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		mockService.On("DeleteAddress", mock.Anything, userID, addressID).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/profile/addresses/"+addressID.String(), nil)
		req = withClaims(req, userID, "ana@example.com")
		w := httptest.NewRecorder()

		handler.DeleteAddress(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Delete unknown address", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		mockService.On("DeleteAddress", mock.Anything, userID, addressID).Return(model.ErrAddressNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/profile/addresses/"+addressID.String(), nil)
		req = withClaims(req, userID, "ana@example.com")
		w := httptest.NewRecorder()

		handler.DeleteAddress(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Malformed address ID", func(t *testing.T) {
		mockService := new(MockProfileService)
		handler := NewProfileHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodDelete, "/api/profile/addresses/not-a-uuid", nil)
		req = withClaims(req, userID, "ana@example.com")
		w := httptest.NewRecorder()

		handler.DeleteAddress(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "DeleteAddress")
	})
}
