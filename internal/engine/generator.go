package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"business-recommender/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	StrategyCatalog    = "catalog"
	StrategySynthesis  = "synthesis"
	StrategyLastResort = "last-resort"
)

var (
	goodsKeywords = []string{
		"making", "craft", "design", "production", "manufacturing", "baking",
		"cooking", "sewing", "pottery", "jewelry", "woodwork",
	}
	serviceKeywords = []string{
		"training", "teaching", "consulting", "styling", "therapy", "coaching",
		"planning", "marketing", "healthcare",
	}

	synthesizedKeywords = []string{"customer service", "management"}
)

const lastResortID = "custom_skill_business"

// GenerationStrategy produces candidate templates from normalized skills.
// An empty result hands control to the next strategy.
type GenerationStrategy interface {
	Name() string
	Generate(skills []string, requested models.BusinessType) []models.BusinessTemplate
}

// DefaultStrategies is catalog lookup, then synthesis, then the last resort.
func DefaultStrategies() []GenerationStrategy {
	return []GenerationStrategy{CatalogStrategy{}, SynthesisStrategy{}, LastResortStrategy{}}
}

type Generator struct {
	strategies []GenerationStrategy
}

func NewGenerator(strategies ...GenerationStrategy) *Generator {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Generator{strategies: strategies}
}

// Generate returns the candidates for the raw skills and requested type.
func (g *Generator) Generate(skills []string, requested models.BusinessType) []models.BusinessTemplate {
	templates, _ := g.GenerateWithStrategy(skills, requested)
	return templates
}

// GenerateWithStrategy also reports which strategy produced the result.
func (g *Generator) GenerateWithStrategy(skills []string, requested models.BusinessType) ([]models.BusinessTemplate, string) {
	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		if n := models.NormalizeSkill(s); n != "" {
			normalized = append(normalized, n)
		}
	}
	requested = requested.Normalize()

	for _, strategy := range g.strategies {
		if out := strategy.Generate(normalized, requested); len(out) > 0 {
			return out, strategy.Name()
		}
	}
	// Reached only with a custom strategy list that has no last resort.
	return LastResortStrategy{}.Generate(normalized, requested), StrategyLastResort
}

// CatalogStrategy maps skills that are catalog keys to their templates.
type CatalogStrategy struct{}

func (CatalogStrategy) Name() string { return StrategyCatalog }

func (CatalogStrategy) Generate(skills []string, requested models.BusinessType) []models.BusinessTemplate {
	seen := make(map[string]bool)
	var out []models.BusinessTemplate
	for _, skill := range skills {
		t, ok := LookupTemplate(skill)
		if !ok || !t.Type.CompatibleWith(requested) || seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		out = append(out, t)
	}
	return out
}

// SynthesisStrategy builds one template per distinct skill when nothing in
// the catalog fits.
type SynthesisStrategy struct{}

func (SynthesisStrategy) Name() string { return StrategySynthesis }

func (SynthesisStrategy) Generate(skills []string, requested models.BusinessType) []models.BusinessTemplate {
	used := make(map[string]bool)
	var out []models.BusinessTemplate
	for _, skill := range skills {
		if used[skill] {
			continue
		}
		used[skill] = true

		bt := inferBusinessType(skill)
		if requested != models.BusinessTypeBoth {
			bt = requested
		}
		out = append(out, models.BusinessTemplate{
			ID:            templateID(skill),
			Name:          titleWords(skill) + " Business",
			Type:          bt,
			SkillKeywords: append([]string{skill}, synthesizedKeywords...),
			Description:   fmt.Sprintf("A professional %s business offering specialized services and products.", skill),
		})
	}
	return out
}

// LastResortStrategy always yields exactly one template. It offers a service
// business unless the user asked for goods.
type LastResortStrategy struct{}

func (LastResortStrategy) Name() string { return StrategyLastResort }

func (LastResortStrategy) Generate(skills []string, requested models.BusinessType) []models.BusinessTemplate {
	name, desc := "General Small Business", "A professional small business."
	if len(skills) > 0 {
		name = strings.Join(skills, " & ") + " Business"
		desc = fmt.Sprintf("A professional business leveraging your skills in %s.", strings.Join(skills, ", "))
	}
	bt := requested.Normalize()
	if bt == models.BusinessTypeBoth {
		bt = models.BusinessTypeService
	}

	return []models.BusinessTemplate{{
		ID:            lastResortID,
		Name:          name,
		Type:          bt,
		SkillKeywords: append([]string(nil), skills...),
		Description:   desc,
	}}
}

func inferBusinessType(skill string) models.BusinessType {
	isGoods := containsAny(skill, goodsKeywords)
	isService := containsAny(skill, serviceKeywords)
	switch {
	case isGoods && !isService:
		return models.BusinessTypeGoods
	case isService && !isGoods:
		return models.BusinessTypeService
	default:
		return models.BusinessTypeBoth
	}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// titleWords upper-cases the first character of every space-separated word
// and leaves the rest alone, so "e-commerce" becomes "E-commerce".
func titleWords(s string) string {
	upper := cases.Upper(language.Und)
	words := strings.Split(s, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError {
			continue
		}
		words[i] = upper.String(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
