package domain

import (
	"errors"
	"time"
)

// ProjectStatus is the caller-set lifecycle state of a project. The engine
// never derives it from dates.
type ProjectStatus string

const (
	StatusPlanning  ProjectStatus = "planning"
	StatusActive    ProjectStatus = "active"
	StatusCompleted ProjectStatus = "completed"
	StatusUnknown   ProjectStatus = "unknown"
)

// ParseProjectStatus maps a free-text status onto the closed enumeration,
// falling back to StatusUnknown. Unknown statuses are excluded from the
// analytics status distribution.
func ParseProjectStatus(s string) ProjectStatus {
	switch ProjectStatus(s) {
	case StatusPlanning, StatusActive, StatusCompleted:
		return ProjectStatus(s)
	default:
		return StatusUnknown
	}
}

var ErrEngineerNotFound = errors.New("engineer not found")
var ErrProjectNotFound = errors.New("project not found")

// ErrReversedRange signals a date range whose end precedes its start. The
// engine clamps the result instead of failing; callers may log it at warn
// level.
var ErrReversedRange = errors.New("date range end precedes start")

// Project is a time-bounded piece of work requiring a set of skills.
type Project struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	Name           string        `json:"name" bson:"name"`
	Description    string        `json:"description,omitempty" bson:"description,omitempty"`
	StartDate      time.Time     `json:"start_date" bson:"start_date"`
	EndDate        time.Time     `json:"end_date" bson:"end_date"`
	RequiredSkills []string      `json:"required_skills" bson:"required_skills"`
	TeamSize       int           `json:"team_size" bson:"team_size"`
	Status         ProjectStatus `json:"status" bson:"status"`
	ManagerID      string        `json:"manager_id,omitempty" bson:"manager_id,omitempty"`
}
