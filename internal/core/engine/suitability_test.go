package engine

import (
	"testing"
	"time"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

func suitabilityFixture() []domain.Engineer {
	return []domain.Engineer{
		{ID: "e1", Name: "Ana", Skills: []string{"React", "TypeScript"}},
		{ID: "e2", Name: "Ben", Skills: []string{"Go", "Postgres"}},
		{ID: "e3", Name: "Cora", Skills: []string{"React", "Go"}},
		{ID: "e4", Name: "Dan", Skills: nil},
	}
}

func TestFindSuitableEngineersEmptyRequiredSkills(t *testing.T) {
	p := domain.Project{ID: "p1", RequiredSkills: nil}
	got := FindSuitableEngineers(p, suitabilityFixture(), nil, date(2024, time.June, 1))
	if len(got) != 0 {
		t.Errorf("project with no required skills must have no candidates, got %d", len(got))
	}
}

func TestFindSuitableEngineersSingleSkill(t *testing.T) {
	p := domain.Project{ID: "p1", RequiredSkills: []string{"React"}}
	got := FindSuitableEngineers(p, suitabilityFixture(), nil, date(2024, time.June, 1))

	if len(got) != 2 {
		t.Fatalf("expected exactly the two React engineers, got %d candidates", len(got))
	}
	for _, c := range got {
		if !c.Engineer.HasSkill("React") {
			t.Errorf("candidate %s does not have React", c.Engineer.ID)
		}
	}
}

func TestFindSuitableEngineersPartialMatchQualifies(t *testing.T) {
	// A single shared skill qualifies; full coverage is not required.
	p := domain.Project{ID: "p1", RequiredSkills: []string{"Go", "Kubernetes"}}
	got := FindSuitableEngineers(p, suitabilityFixture(), nil, date(2024, time.June, 1))

	if len(got) != 2 {
		t.Fatalf("expected e2 and e3, got %d candidates", len(got))
	}
	for _, c := range got {
		if len(c.MatchedSkills) != 1 || c.MatchedSkills[0] != "Go" {
			t.Errorf("candidate %s matched %v, want [Go]", c.Engineer.ID, c.MatchedSkills)
		}
	}
}

func TestFindSuitableEngineersCaseSensitive(t *testing.T) {
	p := domain.Project{ID: "p1", RequiredSkills: []string{"react"}}
	got := FindSuitableEngineers(p, suitabilityFixture(), nil, date(2024, time.June, 1))
	if len(got) != 0 {
		t.Errorf("skill comparison is case-sensitive; got %d candidates for %q", len(got), "react")
	}
}

func TestFindSuitableEngineersRanking(t *testing.T) {
	p := domain.Project{ID: "p1", RequiredSkills: []string{"React", "Go"}}
	got := FindSuitableEngineers(p, suitabilityFixture(), nil, date(2024, time.June, 1))

	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	// e3 matches both skills and ranks first; e1 and e2 each match one and
	// keep id order.
	wantOrder := []string{"e3", "e1", "e2"}
	for i, want := range wantOrder {
		if got[i].Engineer.ID != want {
			t.Errorf("rank %d: got %s, want %s", i, got[i].Engineer.ID, want)
		}
	}
}

func TestFindSuitableEngineersAnnotatesCapacity(t *testing.T) {
	now := date(2024, time.June, 15)
	p := domain.Project{ID: "p1", RequiredSkills: []string{"Go"}}
	assignments := []domain.Assignment{
		{ID: "a1", EngineerID: "e2", Allocation: 70, StartDate: date(2024, time.June, 1), EndDate: date(2024, time.June, 30)},
	}

	got := FindSuitableEngineers(p, suitabilityFixture(), assignments, now)
	for _, c := range got {
		if c.Engineer.ID == "e2" {
			if c.Capacity.Current != 70 || c.Capacity.Available != 30 {
				t.Errorf("e2 capacity = %+v, want current 70 / available 30", c.Capacity)
			}
		}
	}
}
