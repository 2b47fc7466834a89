// Command seed populates the roster collections with a demo dataset so the
// engine can be exercised locally without the CRUD backend running.
//
//	go run ./cmd/seed
//
// Existing documents in the engineers, projects and assignments collections
// are dropped first.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/teamplan/capacity-system/internal/core/domain"
	"github.com/teamplan/capacity-system/internal/infrastructure/config"
	mongodb "github.com/teamplan/capacity-system/internal/infrastructure/db/mongo"
	"github.com/teamplan/capacity-system/pkg/clock"
	"github.com/teamplan/capacity-system/pkg/logger"
)

var skillPool = []string{
	"Go", "Python", "TypeScript", "React", "Kubernetes",
	"PostgreSQL", "MongoDB", "Redis", "Terraform", "Rust",
}

var firstNames = []string{
	"Ana", "Ben", "Cora", "Diego", "Elena", "Farid", "Grace", "Hugo",
	"Iris", "Jonas", "Keiko", "Liam", "Mara", "Nadia", "Omar", "Priya",
}

var projectNames = []string{
	"Billing Revamp", "Mobile Checkout", "Data Lakehouse", "Internal Portal",
	"Search Relevance", "Fleet Tracker", "Notification Hub", "API Gateway",
}

func main() {
	var (
		engineers   = flag.Int("engineers", 12, "number of engineers to create")
		projects    = flag.Int("projects", 5, "number of projects to create")
		assignments = flag.Int("assignments", 20, "number of assignments to create")
		seed        = flag.Int64("seed", 0, "random seed (0 = time-based)")
	)
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "seed"})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	now := clock.System().Now()

	if err := run(ctx, db, rng, now, *engineers, *projects, *assignments); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	roster := mongodb.NewRoster(db, clock.System())
	if err := roster.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	log.Info().
		Int("engineers", *engineers).
		Int("projects", *projects).
		Int("assignments", *assignments).
		Int64("seed", *seed).
		Msg("roster seeded")
}

func run(ctx context.Context, db *mongo.Database, rng *rand.Rand, now time.Time, nEng, nProj, nAsg int) error {
	for _, name := range []string{"engineers", "projects", "assignments"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
	}

	engs := makeEngineers(rng, nEng)
	projs := makeProjects(rng, now, nProj)
	asgs := makeAssignments(rng, now, engs, projs, nAsg)

	if err := insertAll(ctx, db.Collection("engineers"), engs); err != nil {
		return fmt.Errorf("insert engineers: %w", err)
	}
	if err := insertAll(ctx, db.Collection("projects"), projs); err != nil {
		return fmt.Errorf("insert projects: %w", err)
	}
	if err := insertAll(ctx, db.Collection("assignments"), asgs); err != nil {
		return fmt.Errorf("insert assignments: %w", err)
	}
	return nil
}

func makeEngineers(rng *rand.Rand, n int) []domain.Engineer {
	seniorities := []domain.Seniority{domain.SeniorityJunior, domain.SeniorityMid, domain.SenioritySenior}

	out := make([]domain.Engineer, 0, n)
	for i := 0; i < n; i++ {
		name := firstNames[i%len(firstNames)]
		role := domain.RoleEngineer
		if i%6 == 5 {
			role = domain.RoleManager
		}
		out = append(out, domain.Engineer{
			ID:          uuid.NewString(),
			Name:        fmt.Sprintf("%s %c.", name, 'A'+rng.Intn(26)),
			Email:       fmt.Sprintf("%s%d@example.com", name, i),
			Role:        role,
			Seniority:   seniorities[rng.Intn(len(seniorities))],
			Skills:      pickSkills(rng, 2+rng.Intn(3)),
			MaxCapacity: domain.DefaultMaxCapacity,
		})
	}
	return out
}

func makeProjects(rng *rand.Rand, now time.Time, n int) []domain.Project {
	statuses := []domain.ProjectStatus{
		domain.StatusPlanning, domain.StatusActive, domain.StatusActive, domain.StatusCompleted,
	}

	out := make([]domain.Project, 0, n)
	for i := 0; i < n; i++ {
		start := now.AddDate(0, 0, -rng.Intn(60))
		out = append(out, domain.Project{
			ID:             uuid.NewString(),
			Name:           projectNames[i%len(projectNames)],
			StartDate:      start,
			EndDate:        start.AddDate(0, 1+rng.Intn(5), 0),
			RequiredSkills: pickSkills(rng, 1+rng.Intn(3)),
			TeamSize:       2 + rng.Intn(4),
			Status:         statuses[rng.Intn(len(statuses))],
		})
	}
	return out
}

func makeAssignments(rng *rand.Rand, now time.Time, engs []domain.Engineer, projs []domain.Project, n int) []domain.Assignment {
	roles := []string{"developer", "tech lead", "reviewer"}

	out := make([]domain.Assignment, 0, n)
	for i := 0; i < n; i++ {
		start := now.AddDate(0, 0, rng.Intn(45)-15)
		out = append(out, domain.Assignment{
			ID:         uuid.NewString(),
			EngineerID: engs[rng.Intn(len(engs))].ID,
			ProjectID:  projs[rng.Intn(len(projs))].ID,
			Allocation: 10 * (1 + rng.Intn(8)),
			StartDate:  start,
			EndDate:    start.AddDate(0, 0, 14+rng.Intn(90)),
			Role:       roles[rng.Intn(len(roles))],
		})
	}
	return out
}

func pickSkills(rng *rand.Rand, n int) []string {
	perm := rng.Perm(len(skillPool))
	if n > len(perm) {
		n = len(perm)
	}
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, skillPool[idx])
	}
	return out
}

func insertAll[T any](ctx context.Context, col *mongo.Collection, docs []T) error {
	payload := make([]any, 0, len(docs))
	for _, d := range docs {
		payload = append(payload, d)
	}
	_, err := col.InsertMany(ctx, payload)
	return err
}
