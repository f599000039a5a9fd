// internal/models/business.go
package models

import "strings"

// BusinessType is the closed set of business kinds a template or a request can name.
type BusinessType string

const (
	BusinessTypeGoods   BusinessType = "goods"
	BusinessTypeService BusinessType = "service"
	BusinessTypeBoth    BusinessType = "both"
)

// ParseBusinessType maps request values onto the enum. Empty and unknown
// values mean the user has no preference.
func ParseBusinessType(s string) BusinessType {
	switch BusinessType(strings.ToLower(strings.TrimSpace(s))) {
	case BusinessTypeGoods:
		return BusinessTypeGoods
	case BusinessTypeService:
		return BusinessTypeService
	default:
		return BusinessTypeBoth
	}
}

// Normalize treats the zero value as BusinessTypeBoth.
func (t BusinessType) Normalize() BusinessType {
	return ParseBusinessType(string(t))
}

// CompatibleWith reports whether a template of type t may be offered to a
// user who asked for requested.
func (t BusinessType) CompatibleWith(requested BusinessType) bool {
	template, req := t.Normalize(), requested.Normalize()
	switch {
	case req == BusinessTypeBoth:
		return true
	case template == BusinessTypeBoth:
		return true
	default:
		return template == req
	}
}

// BusinessTemplate is a candidate business, either from the static catalog or
// synthesized from a user's skill.
type BusinessTemplate struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Type          BusinessType `json:"type"`
	SkillKeywords []string     `json:"skillKeywords"`
	Description   string       `json:"description"`
}

// ScoredCandidate is a template with the scores computed for one profile.
// RawScore is the ranking score after the algorithm hint; BaseScore is the
// weighted composite before it.
type ScoredCandidate struct {
	BusinessTemplate
	RawScore           float64 `json:"rawScore"`
	BaseScore          float64 `json:"baseScore"`
	SkillScore         float64 `json:"skillScore"`
	ExactMatchCount    int     `json:"exactMatchCount"`
	SemanticMatchCount int     `json:"semanticMatchCount"`
	ConfidenceScore    int     `json:"confidenceScore"`
}
