package service

import (
	"errors"
	"fmt"
	"time"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallService handles business logic for scheduled calls
type CallService struct {
	calls      repository.CallRepositoryInterface
	projects   repository.ProjectRepositoryInterface
	subclients repository.SubclientRepositoryInterface
	employees  repository.EmployeeRepositoryInterface
	insights   repository.InsightRepositoryInterface
}

// NewCallService creates a new call service
func NewCallService(
	calls repository.CallRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	subclients repository.SubclientRepositoryInterface,
	employees repository.EmployeeRepositoryInterface,
	insights repository.InsightRepositoryInterface,
) *CallService {
	return &CallService{
		calls:      calls,
		projects:   projects,
		subclients: subclients,
		employees:  employees,
		insights:   insights,
	}
}

// ScheduleCallRequest represents the request to schedule a call
type ScheduleCallRequest struct {
	ProjectID uuid.UUID `json:"project_id"`
	CallTime  time.Time `json:"call_time"`
	Duration  int       `json:"duration"`
}

// Schedule schedules a call on a project. The project must exist, be
// assigned to the calling employee, and have at least one subclient attached.
func (s *CallService) Schedule(authUserID string, req *ScheduleCallRequest) (*models.Call, error) {
	if req == nil || req.ProjectID == uuid.Nil || req.CallTime.IsZero() || req.Duration == 0 {
		return nil, apperrors.NewMissingFieldsError("project_id", "call_time", "duration")
	}

	if _, err := s.projects.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	employee, err := s.employees.GetByAuthUserID(authUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	if _, err := s.projects.GetAssignment(employee.ID, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotAssigned
		}
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}

	subclients, err := s.subclients.GetByProjectID(req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subclients: %w", err)
	}
	if len(subclients) == 0 {
		return nil, apperrors.ErrNoSubclientForProject
	}

	call := &models.Call{
		ProjectID:       req.ProjectID,
		ScheduledAt:     req.CallTime,
		DurationMinutes: req.Duration,
	}
	if err := s.calls.Create(call); err != nil {
		return nil, fmt.Errorf("failed to schedule the call: %w", err)
	}

	return call, nil
}

// Recent returns the calls on projects assigned to the calling employee
func (s *CallService) Recent(authUserID string) ([]models.Call, error) {
	employee, err := s.employees.GetByAuthUserID(authUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	calls, err := s.calls.GetByEmployeeID(employee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get calls: %w", err)
	}
	if calls == nil {
		calls = []models.Call{}
	}
	return calls, nil
}

// InsightsForCall returns the insights recorded for a call. The call must
// exist; a call without insights yields an empty list.
func (s *CallService) InsightsForCall(callID uuid.UUID) ([]models.Insight, error) {
	if _, err := s.calls.GetByID(callID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCallNotFound
		}
		return nil, fmt.Errorf("failed to get call: %w", err)
	}

	insights, err := s.insights.GetByCallID(callID)
	if err != nil {
		return nil, fmt.Errorf("failed to get insights: %w", err)
	}
	if insights == nil {
		insights = []models.Insight{}
	}
	return insights, nil
}
