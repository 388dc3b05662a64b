// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle of a client-submitted change request.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusRejected   RequestStatus = "rejected"
	RequestStatusApproved   RequestStatus = "approved"
)

// KnownRequestStatus reports whether s is one of the defined statuses.
func KnownRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestStatusPending, RequestStatusInProgress, RequestStatusCompleted,
		RequestStatusRejected, RequestStatusApproved:
		return true
	}

	return false
}

// ModificationRequest is a client-submitted change request against a project.
type ModificationRequest struct {
	ID          uuid.UUID     `json:"id"`
	ProjectID   uuid.UUID     `json:"project_id"`
	ClientID    uuid.UUID     `json:"client_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// FeatureRequest is a client-submitted feature proposal. Cost and duration
// estimates are set only by staff, never by the submitting client.
type FeatureRequest struct {
	ID            uuid.UUID     `json:"id"`
	ProjectID     uuid.UUID     `json:"project_id"`
	ClientID      uuid.UUID     `json:"client_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Status        RequestStatus `json:"status"`
	EstimatedCost int64         `json:"estimated_cost"`
	EstimatedDays int           `json:"estimated_days"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
