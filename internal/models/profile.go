// internal/models/profile.go
package models

import "strings"

type ExperienceLevel string

const (
	ExperienceNone         ExperienceLevel = "none"
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExpert       ExperienceLevel = "expert"
)

type LocationType string

const (
	LocationUrban     LocationType = "urban"
	LocationSemiUrban LocationType = "semi-urban"
	LocationRural     LocationType = "rural"
)

type WorkEnvironment string

const (
	WorkEnvironmentAny  WorkEnvironment = ""
	WorkEnvironmentSolo WorkEnvironment = "solo"
	WorkEnvironmentTeam WorkEnvironment = "team"
)

// UserProfile is the self-reported input a recommendation is computed from.
// Skills are free text and compared case-insensitively; callers must reject
// an empty skill list before handing the profile to the engine.
type UserProfile struct {
	Skills          []string        `json:"skills"`
	Experience      ExperienceLevel `json:"experience"`
	Location        LocationType    `json:"location"`
	BusinessType    BusinessType    `json:"businessType"`
	WorkEnvironment WorkEnvironment `json:"workEnvironment,omitempty"`
}

// NormalizeSkill lowercases and trims a skill or keyword for comparison.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizedSkills returns the non-empty normalized skills in input order.
func (p UserProfile) NormalizedSkills() []string {
	out := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		if n := NormalizeSkill(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}
