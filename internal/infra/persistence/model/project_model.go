package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectModel mirrors the 'projects' table. DaysRemaining is staff-maintained
// state, not derived from dates.
type ProjectModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Description   string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	DaysRemaining int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}

// EmployeeTaskModel mirrors the 'employee_tasks' table.
type EmployeeTaskModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProjectID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:varchar(200);not null"`
	Completed      bool      `gorm:"not null;default:false"`
	HoursRemaining int       `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmployeeTaskModel) TableName() string {
	return "employee_tasks"
}
