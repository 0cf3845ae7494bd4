package handler

import (
	"net/http"

	"github.com/tdnguyen27/StudyPet_Go/internal/economy"
	"github.com/tdnguyen27/StudyPet_Go/internal/logger"
)

// FocusSessionRequest represents the body of a focus-session completion
type FocusSessionRequest struct {
	Minutes int `json:"minutes" validate:"required,gt=0"`
}

// BuyFoodRequest represents the body of a food purchase
type BuyFoodRequest struct {
	FoodID   string `json:"food_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// HandleGetEconomy returns the current ledger state
func HandleGetEconomy(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.State(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}

// HandleCompleteTask applies the fixed task-completion reward
func HandleCompleteTask(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.CompleteTask(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to complete task", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}

// HandleUncompleteTask applies the exact negation of the task reward
func HandleUncompleteTask(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.UncompleteTask(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to uncomplete task", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}

// HandleFocusSession applies the duration-scaled focus reward
func HandleFocusSession(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FocusSessionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Focus session"); err != nil {
			return
		}

		reward, err := svc.CompleteFocusSession(r.Context(), req.Minutes)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to complete focus session", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, reward)
	}
}

// HandleBuyFood exchanges coins for food inventory units
func HandleBuyFood(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyFoodRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy food"); err != nil {
			return
		}

		inventory, err := svc.BuyFood(r.Context(), req.FoodID, req.Quantity)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to buy food", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: "Food purchased", Data: inventory})
	}
}
