package handler

import (
	"net/http"

	"github.com/tdnguyen27/StudyPet_Go/internal/gacha"
	"github.com/tdnguyen27/StudyPet_Go/internal/logger"
)

// HandleSpin resolves one gacha spin
func HandleSpin(svc gacha.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Spin(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Warn("Spin rejected", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSpin10 resolves ten spins atomically
func HandleSpin10(svc gacha.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := svc.Spin10(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Warn("Spin10 rejected", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: results})
	}
}
