package engine

import (
	"math"
	"testing"
	"time"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

func TestComputeTeamAnalyticsEmptyRoster(t *testing.T) {
	report := ComputeTeamAnalytics(nil, nil, nil, date(2024, time.June, 1))

	if report.AverageUtilization != 0 {
		t.Errorf("average utilization on empty roster = %v, want 0", report.AverageUtilization)
	}
	if math.IsNaN(report.AverageUtilization) {
		t.Error("average utilization must never be NaN")
	}
	if report.OverloadedEngineers != 0 {
		t.Errorf("overloaded = %d, want 0", report.OverloadedEngineers)
	}
	if report.SkillGap.CoveragePercentage != 0 {
		t.Errorf("coverage with nothing required = %v, want 0", report.SkillGap.CoveragePercentage)
	}
}

func TestComputeTeamAnalyticsOverloadThresholdStrict(t *testing.T) {
	now := date(2024, time.June, 15)
	engineers := []domain.Engineer{
		{ID: "e1", MaxCapacity: 100}, // exactly 90: not overloaded
		{ID: "e2", MaxCapacity: 100}, // 91: overloaded
		{ID: "e3", MaxCapacity: 50},  // 46 > 45: overloaded
	}
	assignments := []domain.Assignment{
		{ID: "a1", EngineerID: "e1", Allocation: 90, EndDate: date(2024, time.December, 31)},
		{ID: "a2", EngineerID: "e2", Allocation: 91, EndDate: date(2024, time.December, 31)},
		{ID: "a3", EngineerID: "e3", Allocation: 46, EndDate: date(2024, time.December, 31)},
	}

	report := ComputeTeamAnalytics(engineers, nil, assignments, now)
	if report.OverloadedEngineers != 2 {
		t.Errorf("overloaded = %d, want 2 (threshold is strict)", report.OverloadedEngineers)
	}
}

func TestComputeTeamAnalyticsAvailableThresholdStrict(t *testing.T) {
	now := date(2024, time.June, 15)
	engineers := []domain.Engineer{
		{ID: "e1", MaxCapacity: 100}, // available 20: not counted
		{ID: "e2", MaxCapacity: 100}, // available 21: counted
	}
	assignments := []domain.Assignment{
		{ID: "a1", EngineerID: "e1", Allocation: 80, EndDate: date(2024, time.December, 31)},
		{ID: "a2", EngineerID: "e2", Allocation: 79, EndDate: date(2024, time.December, 31)},
	}

	report := ComputeTeamAnalytics(engineers, nil, assignments, now)
	if report.AvailableEngineers != 1 {
		t.Errorf("available = %d, want 1 (threshold is strict)", report.AvailableEngineers)
	}
}

func TestComputeTeamAnalyticsAverageUtilization(t *testing.T) {
	now := date(2024, time.June, 15)
	engineers := []domain.Engineer{{ID: "e1"}, {ID: "e2"}}
	assignments := []domain.Assignment{
		{ID: "a1", EngineerID: "e1", Allocation: 100, EndDate: date(2024, time.December, 31)},
		{ID: "a2", EngineerID: "e2", Allocation: 50, EndDate: date(2024, time.December, 31)},
	}

	report := ComputeTeamAnalytics(engineers, nil, assignments, now)
	if report.AverageUtilization != 75 {
		t.Errorf("average utilization = %v, want 75", report.AverageUtilization)
	}
}

func TestComputeTeamAnalyticsStatusDistribution(t *testing.T) {
	projects := []domain.Project{
		{ID: "p1", Status: domain.StatusPlanning},
		{ID: "p2", Status: domain.StatusActive},
		{ID: "p3", Status: domain.StatusActive},
		{ID: "p4", Status: domain.StatusCompleted},
		{ID: "p5", Status: domain.ProjectStatus("archived")}, // unrecognised: no bucket
	}

	report := ComputeTeamAnalytics(nil, projects, nil, date(2024, time.June, 1))
	d := report.ProjectStatusDistribution
	if d.Planning != 1 || d.Active != 2 || d.Completed != 1 {
		t.Errorf("distribution = %+v, want 1/2/1", d)
	}
}

func TestComputeSkillDemandRanking(t *testing.T) {
	projects := []domain.Project{
		{ID: "p1", RequiredSkills: []string{"React", "Go"}},
		{ID: "p2", RequiredSkills: []string{"Go", "Rust"}},
		{ID: "p3", RequiredSkills: []string{"Go", "React"}},
	}

	demand := computeSkillDemand(projects)
	want := []SkillDemand{
		{Skill: "Go", Count: 3},
		{Skill: "React", Count: 2},
		{Skill: "Rust", Count: 1},
	}
	if len(demand) != len(want) {
		t.Fatalf("got %d entries, want %d", len(demand), len(want))
	}
	for i := range want {
		if demand[i] != want[i] {
			t.Errorf("position %d: got %+v, want %+v", i, demand[i], want[i])
		}
	}
}

func TestComputeSkillDemandTiesKeepFirstSeenOrder(t *testing.T) {
	projects := []domain.Project{
		{ID: "p1", RequiredSkills: []string{"Rust", "Go"}},
		{ID: "p2", RequiredSkills: []string{"Go", "Rust"}},
	}
	demand := computeSkillDemand(projects)
	if demand[0].Skill != "Rust" || demand[1].Skill != "Go" {
		t.Errorf("ties must keep first-seen order, got %+v", demand)
	}
}

func TestComputeSkillGap(t *testing.T) {
	engineers := []domain.Engineer{
		{ID: "e1", Skills: []string{"Go"}},
	}
	projects := []domain.Project{
		{ID: "p1", RequiredSkills: []string{"Go", "Rust"}},
	}

	gap := computeSkillGap(engineers, projects)
	if len(gap.MissingSkills) != 1 || gap.MissingSkills[0] != "Rust" {
		t.Errorf("missing = %v, want [Rust]", gap.MissingSkills)
	}
	if gap.CoveragePercentage != 50 {
		t.Errorf("coverage = %v, want 50", gap.CoveragePercentage)
	}
}

func TestComputeSkillGapLowCoverage(t *testing.T) {
	engineers := []domain.Engineer{
		{ID: "e1", Skills: []string{"Go", "React"}},
		{ID: "e2", Skills: []string{"Go"}},
	}
	projects := []domain.Project{
		{ID: "p1", RequiredSkills: []string{"Go", "React", "Rust"}},
	}

	gap := computeSkillGap(engineers, projects)
	// Go has two holders; React one; Rust none. Below two means no
	// redundancy.
	want := map[string]bool{"React": true, "Rust": true}
	if len(gap.LowCoverageSkills) != len(want) {
		t.Fatalf("low coverage = %v, want React and Rust", gap.LowCoverageSkills)
	}
	for _, s := range gap.LowCoverageSkills {
		if !want[s] {
			t.Errorf("unexpected low-coverage skill %q", s)
		}
	}
}

func TestComputeSkillGapDuplicateEngineerSkillCountedOnce(t *testing.T) {
	engineers := []domain.Engineer{
		{ID: "e1", Skills: []string{"Go", "Go"}},
	}
	projects := []domain.Project{
		{ID: "p1", RequiredSkills: []string{"Go"}},
	}

	gap := computeSkillGap(engineers, projects)
	if len(gap.LowCoverageSkills) != 1 {
		t.Errorf("a duplicated skill on one engineer is a single holder; low coverage = %v", gap.LowCoverageSkills)
	}
}
