package models

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	OrgName  string `json:"org_name" gorm:"not null;size:200" validate:"required,max=200"`
	Domain   string `json:"domain" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	IsActive bool   `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:OrganizationID"`
	Clients   []Client   `json:"clients,omitempty" gorm:"foreignKey:OrganizationID"`
	Projects  []Project  `json:"projects,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
