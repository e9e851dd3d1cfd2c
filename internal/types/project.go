package types

import (
	ierr "github.com/bizledger/bizledger/internal/errors"
)

type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

func (s ProjectStatus) String() string {
	return string(s)
}

func (s ProjectStatus) Validate() error {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold,
		ProjectStatusCompleted, ProjectStatusCancelled:
		return nil
	}
	return ierr.NewError("invalid project status").
		WithHint("Project status must be one of planning, active, on_hold, completed, cancelled").
		Mark(ierr.ErrValidation)
}

type ProjectPriority string

const (
	ProjectPriorityLow    ProjectPriority = "low"
	ProjectPriorityMedium ProjectPriority = "medium"
	ProjectPriorityHigh   ProjectPriority = "high"
	ProjectPriorityUrgent ProjectPriority = "urgent"
)

func (p ProjectPriority) Validate() error {
	switch p {
	case ProjectPriorityLow, ProjectPriorityMedium, ProjectPriorityHigh, ProjectPriorityUrgent:
		return nil
	}
	return ierr.NewError("invalid project priority").
		WithHint("Priority must be one of low, medium, high, urgent").
		Mark(ierr.ErrValidation)
}

// ClientStatus is the relationship state of a client account.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusProspect ClientStatus = "prospect"
	ClientStatusArchived ClientStatus = "archived"
)

func (s ClientStatus) String() string {
	return string(s)
}

func (s ClientStatus) Validate() error {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusProspect, ClientStatusArchived:
		return nil
	}
	return ierr.NewError("invalid client status").
		WithHint("Client status must be one of active, inactive, prospect, archived").
		Mark(ierr.ErrValidation)
}
