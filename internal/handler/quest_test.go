package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
	"github.com/tdnguyen27/StudyPet_Go/internal/event"
)

// stubQuestService records reported events and returns canned completions.
type stubQuestService struct {
	reported  []domain.QuestCategory
	completed []domain.Quest
}

func (s *stubQuestService) State(_ context.Context) (domain.QuestState, error) {
	return domain.QuestState{Progress: map[uuid.UUID]float64{}}, nil
}

func (s *stubQuestService) ReportCategoryEvent(_ context.Context, category domain.QuestCategory, _ float64) ([]domain.Quest, error) {
	s.reported = append(s.reported, category)
	return s.completed, nil
}

func (s *stubQuestService) CheckResets(_ context.Context) error { return nil }

func (s *stubQuestService) RegisterEventHandlers(_ event.Bus) {}

func postQuestEvent(t *testing.T, svc *stubQuestService, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quests/event", strings.NewReader(body))
	rec := httptest.NewRecorder()
	HandleQuestEvent(svc)(rec, req)
	return rec
}

func TestHandleQuestEvent(t *testing.T) {
	InitValidator()

	t.Run("reports and returns completions", func(t *testing.T) {
		svc := &stubQuestService{completed: []domain.Quest{{
			ID:          uuid.New(),
			TemplateKey: "daily_tasks_3",
			Completed:   true,
		}}}

		rec := postQuestEvent(t, svc, `{"category": "tasks", "value": 1}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []domain.QuestCategory{domain.QuestCategoryTasks}, svc.reported)
		assert.Contains(t, rec.Body.String(), "daily_tasks_3")
	})

	t.Run("empty completions serialize as an empty array", func(t *testing.T) {
		rec := postQuestEvent(t, &stubQuestService{}, `{"category": "study", "value": 30}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"completed":[]}`, rec.Body.String())
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		svc := &stubQuestService{}
		rec := postQuestEvent(t, svc, `{"category": "bogus", "value": 1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, svc.reported)
		assert.Contains(t, rec.Body.String(), "Invalid quest category")
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		rec := postQuestEvent(t, &stubQuestService{}, `{"category":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a non-positive value", func(t *testing.T) {
		rec := postQuestEvent(t, &stubQuestService{}, `{"category": "tasks", "value": 0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleGetQuests(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quests", nil)
	rec := httptest.NewRecorder()
	HandleGetQuests(&stubQuestService{})(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "daily")
}
