package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tdnguyen27/StudyPet_Go/internal/logger"
	"github.com/tdnguyen27/StudyPet_Go/internal/pet"
)

// FeedRequest represents the body of a feed action
type FeedRequest struct {
	FoodID   string `json:"food_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// HandleGetCollection returns the full pet collection
func HandleGetCollection(svc pet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collection, err := svc.Collection(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, collection)
	}
}

// HandleFeedPet feeds a pet units of an owned food
func HandleFeedPet(svc pet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := PetIDFromPath(r, w, chi.URLParam(r, "petID"))
		if err != nil {
			return
		}

		var req FeedRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Feed pet"); err != nil {
			return
		}

		fed, err := svc.Feed(r.Context(), petID, req.FoodID, req.Quantity)
		if err != nil {
			logger.FromContext(r.Context()).Warn("Feed rejected", "pet_id", petID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, fed)
	}
}

// HandlePlayWithPet resolves a play action
func HandlePlayWithPet(svc pet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := PetIDFromPath(r, w, chi.URLParam(r, "petID"))
		if err != nil {
			return
		}

		result, err := svc.Play(r.Context(), petID)
		if err != nil {
			logger.FromContext(r.Context()).Warn("Play rejected", "pet_id", petID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleEquipPet adds a pet to the equipped set
func HandleEquipPet(svc pet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := PetIDFromPath(r, w, chi.URLParam(r, "petID"))
		if err != nil {
			return
		}

		if err := svc.Equip(r.Context(), petID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Pet equipped"})
	}
}

// HandleUnequipPet removes a pet from the equipped set
func HandleUnequipPet(svc pet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := PetIDFromPath(r, w, chi.URLParam(r, "petID"))
		if err != nil {
			return
		}

		if err := svc.Unequip(r.Context(), petID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Pet unequipped"})
	}
}

// HandleDeletePet removes an owned, unequipped pet
func HandleDeletePet(svc pet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := PetIDFromPath(r, w, chi.URLParam(r, "petID"))
		if err != nil {
			return
		}

		if err := svc.Delete(r.Context(), petID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Pet deleted"})
	}
}
