package domain

import "time"

// Assignment allocates a fraction of one engineer's time to one project for
// a date range. References are always bare ids; expansion to full records is
// an explicit join performed by the service layer, never an embedded
// sub-document.
type Assignment struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	EngineerID string    `json:"engineer_id" bson:"engineer_id"`
	ProjectID  string    `json:"project_id" bson:"project_id"`
	// Allocation is the committed percentage, 1-100. A missing value is
	// treated as 0 by the capacity calculator; sums across concurrent
	// assignments are reported, not enforced.
	Allocation int       `json:"allocation" bson:"allocation"`
	StartDate  time.Time `json:"start_date" bson:"start_date"`
	EndDate    time.Time `json:"end_date" bson:"end_date"`
	// Role is a free-text label such as "Developer" or "Tech Lead".
	Role string `json:"role,omitempty" bson:"role,omitempty"`
}

// ActiveAt reports whether the assignment counts as current at the given
// instant. The predicate deliberately tests only the end date: an assignment
// that has not yet started still reserves the engineer's capacity.
func (a Assignment) ActiveAt(now time.Time) bool {
	return !a.EndDate.Before(now)
}

// Snapshot is one momentarily-consistent view of the roster. Every engine
// invocation operates on a snapshot plus a caller-supplied instant; the
// engine itself holds no state between calls.
type Snapshot struct {
	Engineers   []Engineer   `json:"engineers"`
	Projects    []Project    `json:"projects"`
	Assignments []Assignment `json:"assignments"`
	TakenAt     time.Time    `json:"taken_at"`
}
