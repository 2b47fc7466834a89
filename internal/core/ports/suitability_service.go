package ports

import (
	"context"
	"time"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

// CandidateEngineer is one suitability match: the engineer, which required
// skills they cover, and their capacity numbers at the evaluation instant.
type CandidateEngineer struct {
	EngineerID        string
	Name              string
	Role              domain.Role
	Seniority         domain.Seniority
	MatchedSkills     []string
	CurrentCapacity   int
	AvailableCapacity int
}

// SuitabilityResult is the ranked candidate list for one project.
type SuitabilityResult struct {
	ProjectID      string
	ProjectName    string
	RequiredSkills []string
	Candidates     []CandidateEngineer
	EvaluatedAt    time.Time
}

// SuitabilityService matches engineers to a project's required skills.
// A zero `at` means "now" per the injected clock.
type SuitabilityService interface {
	FindSuitableEngineers(ctx context.Context, projectID string, at time.Time) (*SuitabilityResult, error)
}
