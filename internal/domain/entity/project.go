// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus is one stage of the ordered delivery pipeline. "completed" is
// terminal.
type ProjectStatus string

const (
	ProjectStatusAnalysis   ProjectStatus = "analysis"
	ProjectStatusDesign     ProjectStatus = "design"
	ProjectStatusBackend    ProjectStatus = "backend"
	ProjectStatusDeployment ProjectStatus = "deployment"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// projectPipeline is the ordered set of stages. Transitions may only move
// forward through it.
var projectPipeline = []ProjectStatus{
	ProjectStatusAnalysis,
	ProjectStatusDesign,
	ProjectStatusBackend,
	ProjectStatusDeployment,
	ProjectStatusCompleted,
}

// StageIndex returns the position of the status within the pipeline, or -1
// for an unknown status.
func (s ProjectStatus) StageIndex() int {
	for i, stage := range projectPipeline {
		if stage == s {
			return i
		}
	}

	return -1
}

// CanAdvanceTo reports whether moving from s to the target stage is a legal,
// forward transition.
func (s ProjectStatus) CanAdvanceTo(target ProjectStatus) bool {
	from, to := s.StageIndex(), target.StageIndex()

	return from >= 0 && to >= 0 && to > from
}

// Project belongs to exactly one client and moves through the delivery
// pipeline. DaysRemaining is maintained externally by staff, not computed
// from dates.
type Project struct {
	ID            uuid.UUID     `json:"id"`
	ClientID      uuid.UUID     `json:"client_id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Status        ProjectStatus `json:"status"`
	DaysRemaining int           `json:"days_remaining"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// EmployeeTask is a unit of work on a project assigned to one employee.
// Completion flag and remaining-hours estimate mutate independently.
type EmployeeTask struct {
	ID             uuid.UUID `json:"id"`
	EmployeeID     uuid.UUID `json:"employee_id"`
	ProjectID      uuid.UUID `json:"project_id"`
	Title          string    `json:"title"`
	Completed      bool      `json:"completed"`
	HoursRemaining int       `json:"hours_remaining"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
