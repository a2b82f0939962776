package repository

import (
	"teamtrack-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallRepository handles database operations for calls
type CallRepository struct {
	db *gorm.DB
}

// NewCallRepository creates a new call repository
func NewCallRepository(db *gorm.DB) *CallRepository {
	return &CallRepository{db: db}
}

// Create creates a new call
func (r *CallRepository) Create(call *models.Call) error {
	return r.db.Create(call).Error
}

// GetByID retrieves a call by ID
func (r *CallRepository) GetByID(id uuid.UUID) (*models.Call, error) {
	var call models.Call
	err := r.db.First(&call, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &call, nil
}

// GetByProjectID retrieves all calls of a project
func (r *CallRepository) GetByProjectID(projectID uuid.UUID) ([]models.Call, error) {
	var calls []models.Call
	err := r.db.Where("project_id = ?", projectID).Order("scheduled_at DESC").Find(&calls).Error
	if err != nil {
		return nil, err
	}
	return calls, nil
}

// GetByEmployeeID retrieves all calls on projects assigned to an employee
func (r *CallRepository) GetByEmployeeID(employeeID uuid.UUID) ([]models.Call, error) {
	var calls []models.Call
	err := r.db.
		Joins("JOIN project_assignments ON project_assignments.project_id = calls.project_id").
		Where("project_assignments.employee_id = ?", employeeID).
		Order("calls.scheduled_at DESC").
		Find(&calls).Error
	if err != nil {
		return nil, err
	}
	return calls, nil
}

// UpdateTranscription persists the transcript onto the call row
func (r *CallRepository) UpdateTranscription(id uuid.UUID, transcription string) error {
	result := r.db.Model(&models.Call{}).Where("id = ?", id).Update("transcription", transcription)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetLatestCallID resolves the most recent call for a caller through the
// get_latest_call stored procedure.
func (r *CallRepository) GetLatestCallID(authUserID string) (uuid.UUID, error) {
	var callID uuid.UUID
	err := r.db.Raw("SELECT call_id FROM get_latest_call(?)", authUserID).Scan(&callID).Error
	if err != nil {
		return uuid.Nil, err
	}
	if callID == uuid.Nil {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return callID, nil
}
