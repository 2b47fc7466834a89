package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Query schemas ---
//
// All engine endpoints are GETs; these structs bind query parameters and
// carry the validation rules. `at` optionally overrides the evaluation
// instant (date-only, UTC); absent, the server clock decides.

type atQuery struct {
	At string `query:"at" validate:"omitempty,datetime=2006-01-02"`
}

// instant parses the optional at parameter. Validation has already
// guaranteed the format, so the zero time on error is safe.
func (q atQuery) instant() time.Time {
	if q.At == "" {
		return time.Time{}
	}
	t, _ := time.Parse("2006-01-02", q.At)
	return t.UTC()
}

type calendarQuery struct {
	Year       int    `query:"year"        validate:"required,gte=1,lte=9999"`
	Month      int    `query:"month"       validate:"required,gte=1,lte=12"`
	EngineerID string `query:"engineer_id"`
	ProjectID  string `query:"project_id"`
}

type upcomingQuery struct {
	atQuery
	Limit int `query:"limit" validate:"omitempty,gte=0,lte=500"`
}

// --- Response types ---
//
// Response-only types owned by the transport layer, kept separate from the
// ports DTOs so the JSON contract is not coupled to internal changes.

type capacityResponse struct {
	EngineerID        string   `json:"engineer_id"`
	Name              string   `json:"name"`
	Role              string   `json:"role"`
	Seniority         string   `json:"seniority"`
	Skills            []string `json:"skills"`
	MaxCapacity       int      `json:"max_capacity"`
	CurrentCapacity   int      `json:"current_capacity"`
	AvailableCapacity int      `json:"available_capacity"`
	EvaluatedAt       string   `json:"evaluated_at"`
}

type capacityListResponse struct {
	Data        []capacityResponse `json:"data"`
	EvaluatedAt string             `json:"evaluated_at"`
}

type candidateResponse struct {
	EngineerID        string   `json:"engineer_id"`
	Name              string   `json:"name"`
	Role              string   `json:"role"`
	Seniority         string   `json:"seniority"`
	MatchedSkills     []string `json:"matched_skills"`
	CurrentCapacity   int      `json:"current_capacity"`
	AvailableCapacity int      `json:"available_capacity"`
}

type suitabilityResponse struct {
	ProjectID      string              `json:"project_id"`
	ProjectName    string              `json:"project_name"`
	RequiredSkills []string            `json:"required_skills"`
	Candidates     []candidateResponse `json:"candidates"`
	EvaluatedAt    string              `json:"evaluated_at"`
}

type assignmentResponse struct {
	ID           string `json:"id"`
	EngineerID   string `json:"engineer_id"`
	EngineerName string `json:"engineer_name"`
	ProjectID    string `json:"project_id"`
	ProjectName  string `json:"project_name"`
	Allocation   int    `json:"allocation"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Role         string `json:"role,omitempty"`
}

type calendarDayResponse struct {
	Day         int                  `json:"day"`
	Date        string               `json:"date"`
	Assignments []assignmentResponse `json:"assignments"`
}

type calendarResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  []calendarDayResponse `json:"days"`
}

type upcomingResponse struct {
	Data []assignmentResponse `json:"data"`
}

type statusDistributionResponse struct {
	Planning  int `json:"planning"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

type skillDemandResponse struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type skillGapResponse struct {
	MissingSkills      []string `json:"missing_skills"`
	CoveragePercentage float64  `json:"coverage_percentage"`
	LowCoverageSkills  []string `json:"low_coverage_skills"`
}

type analyticsResponse struct {
	TotalEngineers            int                        `json:"total_engineers"`
	TotalProjects             int                        `json:"total_projects"`
	OverloadedEngineers       int                        `json:"overloaded_engineers"`
	AvailableEngineers        int                        `json:"available_engineers"`
	AverageUtilization        float64                    `json:"average_utilization"`
	ProjectStatusDistribution statusDistributionResponse `json:"project_status_distribution"`
	SkillDemand               []skillDemandResponse      `json:"skill_demand"`
	SkillGap                  skillGapResponse           `json:"skill_gap"`
	SnapshotTakenAt           string                     `json:"snapshot_taken_at"`
	EvaluatedAt               string                     `json:"evaluated_at"`
}

const dateLayout = "2006-01-02"
