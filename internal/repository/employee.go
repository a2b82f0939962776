package repository

import (
	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	if err := r.db.Create(employee).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrEmployeeExists
		}
		return err
	}
	return nil
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmail retrieves an employee by email
func (r *EmployeeRepository) GetByEmail(email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByAuthUserID retrieves an employee by external identity reference
func (r *EmployeeRepository) GetByAuthUserID(authUserID string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "auth_user_id = ?", authUserID).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByOrganizationID retrieves all employees of an organization
func (r *EmployeeRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("organization_id = ?", orgID).Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// LinkAuthUser sets the external identity reference. The WHERE clause makes
// the write conditional on the column still being null: once set, the
// reference is immutable.
func (r *EmployeeRepository) LinkAuthUser(id uuid.UUID, authUserID string) error {
	result := r.db.Model(&models.Employee{}).
		Where("id = ? AND auth_user_id IS NULL", id).
		Update("auth_user_id", authUserID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAuthUserAlreadyLinked
	}
	return nil
}

// Delete deletes an employee
func (r *EmployeeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}
