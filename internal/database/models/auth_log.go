package models

// AuthLogEntry records the outcome of a federated login attempt.
// Writes are best-effort; a failed insert never fails the login.
type AuthLogEntry struct {
	BaseModel
	Email   string     `json:"email" gorm:"size:255;index"`
	Result  AuthResult `json:"result" gorm:"type:varchar(20);not null"`
	Message string     `json:"message" gorm:"size:500"`
}

// TableName returns the table name for AuthLogEntry
func (AuthLogEntry) TableName() string {
	return "auth_logs"
}
