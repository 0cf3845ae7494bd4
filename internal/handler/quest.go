package handler

import (
	"net/http"

	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
	"github.com/tdnguyen27/StudyPet_Go/internal/logger"
	"github.com/tdnguyen27/StudyPet_Go/internal/quest"
)

// QuestEventRequest represents a category progress event
type QuestEventRequest struct {
	Category string  `json:"category" validate:"required,questcategory"`
	Value    float64 `json:"value" validate:"required,gt=0"`
}

// QuestEventResponse lists the quests completed by one progress event
type QuestEventResponse struct {
	Completed []domain.Quest `json:"completed"`
}

// HandleGetQuests returns the current quest snapshot
func HandleGetQuests(svc quest.Service) http.HandlerFunc {
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

// HandleQuestEvent reports a category progress event
func HandleQuestEvent(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuestEventRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Quest event"); err != nil {
			return
		}

		completed, err := svc.ReportCategoryEvent(r.Context(), domain.QuestCategory(req.Category), req.Value)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to report quest event", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if completed == nil {
			completed = []domain.Quest{}
		}
		respondJSON(w, http.StatusOK, QuestEventResponse{Completed: completed})
	}
}
