package engine

import (
	"testing"

	"business-recommender/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateNames(templates []models.BusinessTemplate) []string {
	names := make([]string, 0, len(templates))
	for _, t := range templates {
		names = append(names, t.Name)
	}
	return names
}

func mustTemplate(t *testing.T, key string) models.BusinessTemplate {
	t.Helper()
	tmpl, ok := LookupTemplate(key)
	require.True(t, ok, "no catalog entry for %q", key)
	return tmpl
}

// ==========================
// Catalog
// ==========================

func TestCatalog_Entries(t *testing.T) {
	tests := []struct {
		key  string
		id   string
		name string
		typ  models.BusinessType
	}{
		{"sewing", "sewing", "Tailoring & Sewing Services", models.BusinessTypeGoods},
		{"cooking", "cooking", "Cooking & Catering Services", models.BusinessTypeGoods},
		{"art & craft", "art_and_craft", "Arts & Crafts Business", models.BusinessTypeGoods},
		{"pottery", "pottery", "Pottery & Ceramics Studio", models.BusinessTypeGoods},
		{"embroidery", "embroidery", "Embroidery & Textile Arts", models.BusinessTypeGoods},
		{"teaching", "teaching", "Education & Tutoring Services", models.BusinessTypeService},
		{"consulting", "consulting", "Professional Consulting Services", models.BusinessTypeService},
		{"beauty & makeup", "beauty_and_makeup", "Beauty & Makeup Services", models.BusinessTypeService},
		{"digital marketing", "digital_marketing", "Digital Marketing Agency", models.BusinessTypeService},
		{"technology", "technology", "Technology Solutions & IT Services", models.BusinessTypeBoth},
		{"sales", "sales", "Sales & Business Development", models.BusinessTypeBoth},
		{"communication", "communication", "Communication & PR Services", models.BusinessTypeService},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			tmpl := mustTemplate(t, tt.key)
			assert.Equal(t, tt.id, tmpl.ID)
			assert.Equal(t, tt.name, tmpl.Name)
			assert.Equal(t, tt.typ, tmpl.Type)
			assert.Contains(t, tmpl.SkillKeywords, tt.key)
		})
	}
}

func TestCatalog_Keywords(t *testing.T) {
	assert.Equal(t, []string{"sewing", "fashion design", "alterations"}, mustTemplate(t, "sewing").SkillKeywords)
	assert.Equal(t, []string{"teaching", "tutoring", "education"}, mustTemplate(t, "teaching").SkillKeywords)
	assert.Equal(t,
		"A tailoring & sewing services business leveraging your sewing skills along with complementary abilities.",
		mustTemplate(t, "sewing").Description)

	_, ok := LookupTemplate("farming")
	assert.False(t, ok)
}

func TestCatalogTemplates(t *testing.T) {
	templates := CatalogTemplates()
	require.Len(t, templates, 43)
	assert.Equal(t, "sewing", templates[0].ID)
	assert.Equal(t, "communication", templates[len(templates)-1].ID)

	names := make(map[string]bool)
	for _, tmpl := range templates {
		assert.False(t, names[tmpl.Name], "duplicate template name %s", tmpl.Name)
		names[tmpl.Name] = true
	}
}

func TestLookupTemplate_ReturnsCopy(t *testing.T) {
	first := mustTemplate(t, "sewing")
	first.SkillKeywords[0] = "mutated"

	assert.Equal(t, "sewing", mustTemplate(t, "sewing").SkillKeywords[0])
}

func TestTemplateID(t *testing.T) {
	assert.Equal(t, "art_and_craft", templateID("art & craft"))
	assert.Equal(t, "quantum_computing", templateID("quantum  computing"))
	assert.Equal(t, "e-commerce", templateID("e-commerce"))
}

// ==========================
// Catalog Strategy
// ==========================

func TestGenerator_Catalog(t *testing.T) {
	tests := []struct {
		name      string
		skills    []string
		requested models.BusinessType
		expected  []string
	}{
		{
			name:      "repeated skills yield one template",
			skills:    []string{"sewing", "Sewing", "cooking"},
			requested: models.BusinessTypeBoth,
			expected:  []string{"Tailoring & Sewing Services", "Cooking & Catering Services"},
		},
		{
			name:      "skips incompatible templates",
			skills:    []string{"sewing", "teaching"},
			requested: models.BusinessTypeService,
			expected:  []string{"Education & Tutoring Services"},
		},
		{
			name:      "templates of type both fit any request",
			skills:    []string{"technology"},
			requested: models.BusinessTypeGoods,
			expected:  []string{"Technology Solutions & IT Services"},
		},
		{
			name:      "unknown skills are ignored once a key matches",
			skills:    []string{"quantum computing", "  SEWING  "},
			requested: models.BusinessTypeGoods,
			expected:  []string{"Tailoring & Sewing Services"},
		},
		{
			name:      "empty request type means both",
			skills:    []string{"photography", "art & craft"},
			requested: "",
			expected:  []string{"Photography & Visual Services", "Arts & Crafts Business"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, strategy := NewGenerator().GenerateWithStrategy(tt.skills, tt.requested)
			assert.Equal(t, StrategyCatalog, strategy)
			assert.Equal(t, tt.expected, templateNames(out))
		})
	}
}

// ==========================
// Synthesis Strategy
// ==========================

func TestGenerator_SynthesisOverridesType(t *testing.T) {
	out, strategy := NewGenerator().GenerateWithStrategy([]string{"sewing", "cooking"}, models.BusinessTypeService)

	require.Equal(t, StrategySynthesis, strategy)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"Sewing Business", "Cooking Business"}, templateNames(out))
	for _, tmpl := range out {
		assert.Equal(t, models.BusinessTypeService, tmpl.Type)
	}
	assert.Equal(t, []string{"sewing", "customer service", "management"}, out[0].SkillKeywords)
	assert.Equal(t, "sewing", out[0].ID)
	assert.Equal(t, "A professional sewing business offering specialized services and products.", out[0].Description)
}

func TestGenerator_SynthesisInfersType(t *testing.T) {
	tests := []struct {
		skill    string
		expected models.BusinessType
	}{
		{skill: "candle making", expected: models.BusinessTypeGoods},
		{skill: "yoga therapy", expected: models.BusinessTypeService},
		{skill: "affiliate marketing", expected: models.BusinessTypeService},
		{skill: "interior styling", expected: models.BusinessTypeService},
		{skill: "design consulting", expected: models.BusinessTypeBoth},
		{skill: "quantum computing", expected: models.BusinessTypeBoth},
	}

	for _, tt := range tests {
		t.Run(tt.skill, func(t *testing.T) {
			out, strategy := NewGenerator().GenerateWithStrategy([]string{tt.skill}, models.BusinessTypeBoth)
			require.Equal(t, StrategySynthesis, strategy)
			require.Len(t, out, 1)
			assert.Equal(t, tt.expected, out[0].Type)
		})
	}
}

func TestGenerator_SynthesisNaming(t *testing.T) {
	out := NewGenerator().Generate([]string{"Quantum Computing", "quantum computing", "3D printing", "e-commerce"}, "")

	require.Len(t, out, 3)
	assert.Equal(t, []string{"Quantum Computing Business", "3d Printing Business", "E-commerce Business"}, templateNames(out))
	assert.Equal(t, "quantum_computing", out[0].ID)
	assert.Equal(t, "3d_printing", out[1].ID)
	assert.Equal(t, "e-commerce", out[2].ID)
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Mobile Repair", titleWords("mobile repair"))
	assert.Equal(t, "E-commerce", titleWords("e-commerce"))
	assert.Equal(t, "Arts&crafts", titleWords("arts&crafts"))
	assert.Equal(t, "Über Design", titleWords("über design"))
	assert.Equal(t, "A  B", titleWords("a  b"))
}

// ==========================
// Last Resort
// ==========================

func TestGenerator_LastResort(t *testing.T) {
	tests := []struct {
		name      string
		skills    []string
		requested models.BusinessType
		expected  string
		typ       models.BusinessType
	}{
		{name: "no skills", skills: nil, requested: models.BusinessTypeGoods, expected: "General Small Business", typ: models.BusinessTypeGoods},
		{name: "blank skills default to service", skills: []string{"  ", ""}, requested: "", expected: "General Small Business", typ: models.BusinessTypeService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, strategy := NewGenerator().GenerateWithStrategy(tt.skills, tt.requested)
			assert.Equal(t, StrategyLastResort, strategy)
			require.Len(t, out, 1)
			assert.Equal(t, tt.expected, out[0].Name)
			assert.Equal(t, tt.typ, out[0].Type)
			assert.Equal(t, lastResortID, out[0].ID)
		})
	}
}

func TestGenerator_CustomStrategiesStillReturnResult(t *testing.T) {
	tests := []struct {
		name      string
		requested models.BusinessType
		typ       models.BusinessType
	}{
		{name: "requested goods", requested: models.BusinessTypeGoods, typ: models.BusinessTypeGoods},
		{name: "both becomes service", requested: models.BusinessTypeBoth, typ: models.BusinessTypeService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, strategy := NewGenerator(CatalogStrategy{}).GenerateWithStrategy([]string{"astronomy", "origami"}, tt.requested)

			assert.Equal(t, StrategyLastResort, strategy)
			require.Len(t, out, 1)
			assert.Equal(t, "custom_skill_business", out[0].ID)
			assert.Equal(t, "astronomy & origami Business", out[0].Name)
			assert.Equal(t, tt.typ, out[0].Type)
			assert.Equal(t, []string{"astronomy", "origami"}, out[0].SkillKeywords)
			assert.Equal(t, "A professional business leveraging your skills in astronomy, origami.", out[0].Description)
		})
	}
}
