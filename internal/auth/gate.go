package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Context keys populated by the gates. Each gate only reads keys set by the
// gates declared before it; RequireActiveOrg depends on RequireRole.
const (
	ContextKeyClaims     = "auth_claims"
	ContextKeyOrgID      = "organization_id"
	ContextKeyRole       = "emp_role"
	ContextKeyAuthUserID = "auth_user_id"
)

// RoleAny accepts any employee row regardless of role
const RoleAny = models.EmployeeRole("")

// EmployeeResolver is the slice of the employee repository the role gate needs
type EmployeeResolver interface {
	GetByAuthUserID(authUserID string) (*models.Employee, error)
}

// OrganizationGetter is the slice of the organization repository the org gate needs
type OrganizationGetter interface {
	GetByID(id uuid.UUID) (*models.Organization, error)
}

// RequireJWT verifies the bearer token against the shared signing secret and
// stores the decoded claims on the context. It is independent from
// RequireRole: some routes use one, some the other, some neither.
func RequireJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingAuthHeader.Error()})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrTokenExpired.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		// Claims are attached verbatim; no audience check is performed.
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireRole resolves the caller through the user_id field of the JSON body
// and enforces an exact role match. Pass RoleAny to accept any employee.
// The body is restored afterwards so handlers can still bind it.
func RequireRole(employees EmployeeResolver, role models.EmployeeRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := peekUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		employee, err := employees.GetByAuthUserID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": apperrors.ErrUserNotFound.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Exact match only: admin does not satisfy an employee requirement.
		if role != RoleAny && employee.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrRoleNotAuthorized.Error()})
			return
		}

		c.Set(ContextKeyOrgID, employee.OrganizationID)
		c.Set(ContextKeyRole, employee.Role)
		c.Set(ContextKeyAuthUserID, userID)
		c.Next()
	}
}

// RequireAdmin gates a route to callers with the admin role
func RequireAdmin(employees EmployeeResolver) gin.HandlerFunc {
	return RequireRole(employees, models.EmployeeRoleAdmin)
}

// RequireEmployee gates a route to callers with the employee role
func RequireEmployee(employees EmployeeResolver) gin.HandlerFunc {
	return RequireRole(employees, models.EmployeeRoleEmployee)
}

// RequireLeader gates a route to callers with the leader role
func RequireLeader(employees EmployeeResolver) gin.HandlerFunc {
	return RequireRole(employees, models.EmployeeRoleLeader)
}

// RequireAuth gates a route to any resolved employee
func RequireAuth(employees EmployeeResolver) gin.HandlerFunc {
	return RequireRole(employees, RoleAny)
}

// RequireActiveOrg rejects requests whose resolved organization is inactive.
// It must be declared after RequireRole; a missing organization context is a
// wiring error and resolves to 500.
func RequireActiveOrg(organizations OrganizationGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := GetOrgID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
			return
		}

		org, err := organizations.GetByID(orgID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": apperrors.ErrOrganizationNotFound.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if !org.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrOrganizationInactive.Error()})
			return
		}

		c.Next()
	}
}

// peekUserID reads user_id out of the JSON body and puts the body back so
// downstream binding still works. Multipart uploads carry user_id as a form
// field instead; the parsed form is cached on the request, so file fields
// remain readable downstream.
func peekUserID(c *gin.Context) (string, bool) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		userID := c.Request.FormValue("user_id")
		return userID, userID != ""
	}

	if c.Request.Body == nil {
		return "", false
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", false
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))

	var body struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.UserID == "" {
		return "", false
	}

	return body.UserID, true
}

// GetOrgID extracts the resolved organization id from the context
func GetOrgID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextKeyOrgID)
	if !exists {
		return uuid.Nil, false
	}

	orgID, ok := value.(uuid.UUID)
	return orgID, ok
}

// GetRole extracts the resolved role from the context
func GetRole(c *gin.Context) (models.EmployeeRole, bool) {
	value, exists := c.Get(ContextKeyRole)
	if !exists {
		return "", false
	}

	role, ok := value.(models.EmployeeRole)
	return role, ok
}

// GetAuthUserID extracts the caller's external identity reference from the context
func GetAuthUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextKeyAuthUserID)
	if !exists {
		return "", false
	}

	id, ok := value.(string)
	return id, ok
}

// GetClaims extracts the verified token claims from the context
func GetClaims(c *gin.Context) (jwt.MapClaims, bool) {
	value, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}

	claims, ok := value.(jwt.MapClaims)
	return claims, ok
}
