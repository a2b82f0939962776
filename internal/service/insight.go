package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/logger"
	"teamtrack-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InsightService runs the transcript-to-insight pipeline: persist the
// transcript, run the notetaking and report agents, store the combined output
type InsightService struct {
	calls    repository.CallRepositoryInterface
	insights repository.InsightRepositoryInterface
	agents   AgentServiceInterface
	logger   *logger.Logger
}

// NewInsightService creates a new insight service
func NewInsightService(
	calls repository.CallRepositoryInterface,
	insights repository.InsightRepositoryInterface,
	agents AgentServiceInterface,
	log *logger.Logger,
) *InsightService {
	return &InsightService{
		calls:    calls,
		insights: insights,
		agents:   agents,
		logger:   log,
	}
}

// insightPayload is the combined document persisted per call
type insightPayload struct {
	Notes  *NotesData  `json:"notes"`
	Report *ReportData `json:"report"`
}

// ProcessTranscript persists the transcript onto a call and records the
// combined agent output as a new insight. When callID is nil the most recent
// call of the caller is resolved through the datastore's get_latest_call
// procedure. Collaborator failures surface directly; there are no retries.
func (s *InsightService) ProcessTranscript(authUserID string, callID *uuid.UUID, transcript string) (*models.Insight, error) {
	if transcript == "" {
		return nil, apperrors.NewValidationError("no transcript provided")
	}

	var id uuid.UUID
	if callID != nil && *callID != uuid.Nil {
		id = *callID
	} else {
		latest, err := s.calls.GetLatestCallID(authUserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNoCallsForEmployee
			}
			return nil, fmt.Errorf("error fetching latest call: %w", err)
		}
		id = latest
	}

	if err := s.calls.UpdateTranscription(id, transcript); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCallNotFound
		}
		return nil, fmt.Errorf("error updating call transcription: %w", err)
	}

	notes, err := s.agents.RunNotetaking(transcript)
	if err != nil {
		return nil, fmt.Errorf("error processing text with agent: %w", err)
	}
	report, err := s.agents.RunReport(transcript)
	if err != nil {
		return nil, fmt.Errorf("error processing text with agent: %w", err)
	}

	payload, err := json.Marshal(insightPayload{Notes: notes, Report: report})
	if err != nil {
		return nil, fmt.Errorf("failed to encode insight payload: %w", err)
	}

	insight := &models.Insight{
		CallID:  id,
		Payload: payload,
	}
	if err := s.insights.Create(insight); err != nil {
		return nil, fmt.Errorf("error creating the insight: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"call_id":    id,
		"insight_id": insight.ID,
	}).Info("Insight created")

	return insight, nil
}
