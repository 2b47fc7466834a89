package domain

// DefaultMaxCapacity is the capacity assumed for engineers that have no
// explicit maximum configured (full-time, 100%). Part-time engineers are
// commonly provisioned with 50.
const DefaultMaxCapacity = 100

// Role classifies an account within the organisation.
type Role string

const (
	RoleManager  Role = "manager"
	RoleEngineer Role = "engineer"
	RoleUnknown  Role = "unknown"
)

// ParseRole maps a free-text role value onto the closed enumeration,
// falling back to RoleUnknown for anything unrecognised.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleManager, RoleEngineer:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// Seniority represents an engineer's experience tier.
type Seniority string

const (
	SeniorityJunior  Seniority = "junior"
	SeniorityMid     Seniority = "mid"
	SenioritySenior  Seniority = "senior"
	SeniorityUnknown Seniority = "unknown"
)

// ParseSeniority maps a free-text seniority value onto the closed
// enumeration, falling back to SeniorityUnknown.
func ParseSeniority(s string) Seniority {
	switch Seniority(s) {
	case SeniorityJunior, SeniorityMid, SenioritySenior:
		return Seniority(s)
	default:
		return SeniorityUnknown
	}
}

// Engineer is a member of the engineering roster. Skills are free-text
// labels compared by case-sensitive equality.
type Engineer struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty"`
	Role        Role      `json:"role" bson:"role"`
	Seniority   Seniority `json:"seniority" bson:"seniority"`
	Skills      []string  `json:"skills" bson:"skills"`
	MaxCapacity int       `json:"max_capacity,omitempty" bson:"max_capacity,omitempty"`
}

// EffectiveMaxCapacity returns the engineer's configured maximum capacity,
// or DefaultMaxCapacity when none is set.
func (e Engineer) EffectiveMaxCapacity() int {
	if e.MaxCapacity <= 0 {
		return DefaultMaxCapacity
	}
	return e.MaxCapacity
}

// HasSkill reports whether the engineer lists the given skill.
// Comparison is case-sensitive by contract.
func (e Engineer) HasSkill(skill string) bool {
	for _, s := range e.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
