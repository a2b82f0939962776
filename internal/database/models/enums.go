package models

// EmployeeRole represents the role of an employee within an organization
type EmployeeRole string

const (
	EmployeeRoleAdmin    EmployeeRole = "admin"
	EmployeeRoleLeader   EmployeeRole = "leader"
	EmployeeRoleEmployee EmployeeRole = "employee"
	EmployeeRoleUser     EmployeeRole = "user" // default role for federated sign-ins
)

// IsValid checks if the EmployeeRole is valid
func (r EmployeeRole) IsValid() bool {
	switch r {
	case EmployeeRoleAdmin, EmployeeRoleLeader, EmployeeRoleEmployee, EmployeeRoleUser:
		return true
	}
	return false
}

// AuthResult defines the recorded outcome of a federated login attempt
type AuthResult string

const (
	AuthResultSuccess AuthResult = "success"
	AuthResultDenied  AuthResult = "denied"
	AuthResultError   AuthResult = "error"
)
