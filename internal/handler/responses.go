package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgNotEnoughCoinsError   = "Not enough coins"
	ErrMsgPetNotFoundError      = "Pet not found"
	ErrMsgPetExhaustedError     = "Your pet is too tired to play"
	ErrMsgPetEquippedError      = "Unequip the pet first"
	ErrMsgEquipLimitError       = "You can equip at most 3 pets"
	ErrMsgFoodNotFoundError     = "Food not found"
	ErrMsgFoodNotOwnedError     = "You don't own that food"
	ErrMsgInvalidSelectionError = "Invalid selection"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrPetNotFound):
		return http.StatusNotFound, ErrMsgPetNotFoundError
	case errors.Is(err, domain.ErrPetExhausted):
		return http.StatusBadRequest, ErrMsgPetExhaustedError
	case errors.Is(err, domain.ErrPetEquipped):
		return http.StatusBadRequest, ErrMsgPetEquippedError
	case errors.Is(err, domain.ErrEquipLimit):
		return http.StatusBadRequest, ErrMsgEquipLimitError
	case errors.Is(err, domain.ErrFoodNotFound):
		return http.StatusNotFound, ErrMsgFoodNotFoundError
	case errors.Is(err, domain.ErrFoodNotOwned):
		return http.StatusBadRequest, ErrMsgFoodNotOwnedError
	case errors.Is(err, domain.ErrInvalidSelection):
		return http.StatusBadRequest, ErrMsgInvalidSelectionError
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
