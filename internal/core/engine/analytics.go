package engine

import (
	"sort"
	"time"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

const (
	// overloadFactor flags engineers above 90% of their maximum. The
	// comparison is strict: exactly 90% is not overloaded.
	overloadFactor = 0.9
	// availableHeadroom is the strict minimum spare capacity for an
	// engineer to count as available for new work.
	availableHeadroom = 20
	// lowCoverageThreshold marks required skills held by fewer than two
	// engineers: losing one person leaves no redundancy.
	lowCoverageThreshold = 2
)

// SkillDemand counts the projects requiring one skill.
type SkillDemand struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// SkillGap compares the skills projects require with the skills the team
// has.
type SkillGap struct {
	MissingSkills      []string `json:"missing_skills"`
	CoveragePercentage float64  `json:"coverage_percentage"`
	LowCoverageSkills  []string `json:"low_coverage_skills"`
}

// StatusDistribution counts projects per recognised status. Unrecognised
// statuses fall into no bucket.
type StatusDistribution struct {
	Planning  int `json:"planning"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// TeamAnalytics is the full team-wide report.
type TeamAnalytics struct {
	TotalEngineers            int                `json:"total_engineers"`
	TotalProjects             int                `json:"total_projects"`
	OverloadedEngineers       int                `json:"overloaded_engineers"`
	AvailableEngineers        int                `json:"available_engineers"`
	AverageUtilization        float64            `json:"average_utilization"`
	ProjectStatusDistribution StatusDistribution `json:"project_status_distribution"`
	SkillDemand               []SkillDemand      `json:"skill_demand"`
	SkillGap                  SkillGap           `json:"skill_gap"`
}

// ComputeTeamAnalytics reduces one roster snapshot to the team-wide report.
// Every metric is zero-safe: empty inputs produce zeros and empty lists,
// never NaN or a division failure.
func ComputeTeamAnalytics(engineers []domain.Engineer, projects []domain.Project, assignments []domain.Assignment, now time.Time) TeamAnalytics {
	report := TeamAnalytics{
		TotalEngineers: len(engineers),
		TotalProjects:  len(projects),
		SkillDemand:    computeSkillDemand(projects),
		SkillGap:       computeSkillGap(engineers, projects),
	}

	var utilizationSum int
	for _, e := range engineers {
		c := ComputeCapacity(e, assignments, now)
		utilizationSum += c.Current
		if float64(c.Current) > float64(e.EffectiveMaxCapacity())*overloadFactor {
			report.OverloadedEngineers++
		}
		if c.Available > availableHeadroom {
			report.AvailableEngineers++
		}
	}
	if len(engineers) > 0 {
		report.AverageUtilization = float64(utilizationSum) / float64(len(engineers))
	}

	for _, p := range projects {
		switch p.Status {
		case domain.StatusPlanning:
			report.ProjectStatusDistribution.Planning++
		case domain.StatusActive:
			report.ProjectStatusDistribution.Active++
		case domain.StatusCompleted:
			report.ProjectStatusDistribution.Completed++
		}
	}

	return report
}

// computeSkillDemand counts, per distinct required skill, how many projects
// require it, ranked by count descending. The stable sort keeps first-seen
// order among equal counts.
func computeSkillDemand(projects []domain.Project) []SkillDemand {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, p := range projects {
		seen := make(map[string]bool, len(p.RequiredSkills))
		for _, skill := range p.RequiredSkills {
			if seen[skill] {
				continue
			}
			seen[skill] = true
			if _, ok := counts[skill]; !ok {
				order = append(order, skill)
			}
			counts[skill]++
		}
	}

	demand := make([]SkillDemand, 0, len(order))
	for _, skill := range order {
		demand = append(demand, SkillDemand{Skill: skill, Count: counts[skill]})
	}
	sort.SliceStable(demand, func(i, j int) bool {
		return demand[i].Count > demand[j].Count
	})
	return demand
}

// computeSkillGap derives the missing-skill set, coverage percentage, and
// low-coverage skills from the union of required and available skills.
// Coverage is the fraction of required skills at least one engineer has;
// with nothing required it is 0, not NaN.
func computeSkillGap(engineers []domain.Engineer, projects []domain.Project) SkillGap {
	required := make([]string, 0)
	requiredSet := make(map[string]bool)
	for _, p := range projects {
		for _, skill := range p.RequiredSkills {
			if !requiredSet[skill] {
				requiredSet[skill] = true
				required = append(required, skill)
			}
		}
	}

	// holders counts engineers per skill, each engineer at most once.
	holders := make(map[string]int)
	for _, e := range engineers {
		seen := make(map[string]bool, len(e.Skills))
		for _, skill := range e.Skills {
			if seen[skill] {
				continue
			}
			seen[skill] = true
			holders[skill]++
		}
	}

	gap := SkillGap{
		MissingSkills:     []string{},
		LowCoverageSkills: []string{},
	}
	covered := 0
	for _, skill := range required {
		if holders[skill] > 0 {
			covered++
		} else {
			gap.MissingSkills = append(gap.MissingSkills, skill)
		}
		if holders[skill] < lowCoverageThreshold {
			gap.LowCoverageSkills = append(gap.LowCoverageSkills, skill)
		}
	}
	if len(required) > 0 {
		gap.CoveragePercentage = float64(covered) / float64(len(required)) * 100
	}
	return gap
}
