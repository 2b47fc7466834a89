package engine

import (
	"sort"
	"time"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

// Candidate is an engineer whose skill set intersects a project's required
// skills, annotated with the capacity numbers consumers display next to the
// match.
type Candidate struct {
	Engineer      domain.Engineer
	MatchedSkills []string
	Capacity      Capacity
}

// FindSuitableEngineers returns the engineers suitable for the project: any
// non-empty intersection between the engineer's skills and the project's
// required skills qualifies (a single shared skill is enough, full coverage
// is not required). A project with no required skills has no candidates.
//
// Candidates are ranked by intersection size descending; ties keep engineer
// id ascending so equal inputs always produce equal output.
func FindSuitableEngineers(p domain.Project, engineers []domain.Engineer, assignments []domain.Assignment, now time.Time) []Candidate {
	if len(p.RequiredSkills) == 0 {
		return []Candidate{}
	}

	candidates := make([]Candidate, 0, len(engineers))
	for _, e := range engineers {
		matched := intersectSkills(p.RequiredSkills, e)
		if len(matched) == 0 {
			continue
		}
		candidates = append(candidates, Candidate{
			Engineer:      e,
			MatchedSkills: matched,
			Capacity:      ComputeCapacity(e, assignments, now),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if len(candidates[i].MatchedSkills) != len(candidates[j].MatchedSkills) {
			return len(candidates[i].MatchedSkills) > len(candidates[j].MatchedSkills)
		}
		return candidates[i].Engineer.ID < candidates[j].Engineer.ID
	})
	return candidates
}

// intersectSkills returns the required skills the engineer has, preserving
// the project's required-skill order. Duplicate required entries are
// counted once.
func intersectSkills(required []string, e domain.Engineer) []string {
	seen := make(map[string]bool, len(required))
	matched := make([]string, 0, len(required))
	for _, skill := range required {
		if seen[skill] {
			continue
		}
		seen[skill] = true
		if e.HasSkill(skill) {
			matched = append(matched, skill)
		}
	}
	return matched
}
