package engine

import (
	"fmt"
	"strings"

	"business-recommender/internal/models"
)

type catalogEntry struct {
	key      string
	name     string
	typ      models.BusinessType
	keywords []string
}

const (
	goods   = models.BusinessTypeGoods
	service = models.BusinessTypeService
	both    = models.BusinessTypeBoth
)

// catalogEntries lists one template per canonical skill key. Names are unique,
// so the generator's dedupe only drops repeated skills.
var catalogEntries = []catalogEntry{
	{"sewing", "Tailoring & Sewing Services", goods, []string{"sewing", "fashion design", "alterations"}},
	{"cooking", "Cooking & Catering Services", goods, []string{"cooking", "food preparation", "baking"}},
	{"baking", "Bakery & Confectionery", goods, []string{"baking", "cooking", "food preparation"}},
	{"art & craft", "Arts & Crafts Business", goods, []string{"art & craft", "creativity", "handmade"}},
	{"handicrafts", "Handicrafts & Traditional Arts", goods, []string{"handicrafts", "traditional arts", "art & craft"}},
	{"jewelry making", "Jewelry Design & Making", goods, []string{"jewelry making", "product design", "creativity"}},
	{"pottery", "Pottery & Ceramics Studio", goods, []string{"pottery", "art & craft", "traditional arts"}},
	{"woodwork", "Woodworking & Furniture", goods, []string{"woodwork", "product design", "manufacturing"}},
	{"embroidery", "Embroidery & Textile Arts", goods, []string{"embroidery", "sewing", "fashion design"}},
	{"fashion design", "Fashion Design Studio", goods, []string{"fashion design", "sewing", "pattern making"}},
	{"food preparation", "Food Processing & Packaging", goods, []string{"food preparation", "cooking", "packaging"}},
	{"pattern making", "Pattern Making & Design", goods, []string{"pattern making", "fashion design", "sewing"}},
	{"garment making", "Garment Manufacturing", goods, []string{"garment making", "sewing", "fashion design"}},
	{"product design", "Product Design & Development", goods, []string{"product design", "creativity", "manufacturing"}},
	{"manufacturing", "Small Scale Manufacturing", goods, []string{"manufacturing", "product design", "quality control"}},
	{"quality control", "Quality Assurance Services", goods, []string{"quality control", "manufacturing", "product design"}},
	{"packaging", "Packaging & Gift Wrapping", goods, []string{"packaging", "product design", "creativity"}},
	{"traditional arts", "Traditional Arts & Heritage Crafts", goods, []string{"traditional arts", "art & craft", "handicrafts"}},

	{"teaching", "Education & Tutoring Services", service, []string{"teaching", "tutoring", "education"}},
	{"tutoring", "Private Tutoring & Coaching", service, []string{"tutoring", "teaching", "education"}},
	{"beauty & makeup", "Beauty & Makeup Services", service, []string{"beauty & makeup", "skincare", "customer service"}},
	{"hair styling", "Hair Styling & Salon Services", service, []string{"hair styling", "beauty & makeup", "customer service"}},
	{"skincare", "Skincare & Wellness Services", service, []string{"skincare", "beauty & makeup", "healthcare"}},
	{"consulting", "Professional Consulting Services", service, []string{"consulting", "management", "communication"}},
	{"event planning", "Event Planning & Management", service, []string{"event planning", "management", "communication"}},
	{"training", "Professional Training Services", service, []string{"training", "teaching", "mentoring"}},
	{"mentoring", "Mentoring & Coaching Services", service, []string{"mentoring", "training", "counseling"}},
	{"counseling", "Counseling & Therapy Services", service, []string{"counseling", "mentoring", "healthcare"}},
	{"fitness training", "Fitness & Personal Training", service, []string{"fitness training", "healthcare", "training"}},
	{"healthcare", "Healthcare & Wellness Services", service, []string{"healthcare", "fitness training", "counseling"}},
	{"legal services", "Legal Consultation Services", service, []string{"legal services", "consulting", "communication"}},
	{"accounting", "Accounting & Bookkeeping", service, []string{"accounting", "management", "consulting"}},
	{"digital marketing", "Digital Marketing Agency", service, []string{"digital marketing", "social media", "content creation"}},
	{"content creation", "Content Creation & Media", service, []string{"content creation", "digital marketing", "photography"}},

	{"technology", "Technology Solutions & IT Services", both, []string{"technology", "digital marketing", "online"}},
	{"management", "Business Management Consulting", service, []string{"management", "consulting", "communication"}},
	{"sales", "Sales & Business Development", both, []string{"sales", "marketing", "customer service"}},
	{"writing", "Writing & Content Services", service, []string{"writing", "content creation", "communication"}},
	{"photography", "Photography & Visual Services", service, []string{"photography", "content creation", "art & craft"}},
	{"marketing", "Marketing & Advertising Services", service, []string{"marketing", "digital marketing", "sales"}},
	{"social media", "Social Media Management", service, []string{"social media", "digital marketing", "content creation"}},
	{"customer service", "Customer Service Solutions", service, []string{"customer service", "communication", "management"}},
	{"communication", "Communication & PR Services", service, []string{"communication", "marketing", "writing"}},
}

var templateCatalog = func() map[string]models.BusinessTemplate {
	m := make(map[string]models.BusinessTemplate, len(catalogEntries))
	for _, e := range catalogEntries {
		m[e.key] = e.template()
	}
	return m
}()

func (e catalogEntry) template() models.BusinessTemplate {
	return models.BusinessTemplate{
		ID:            templateID(e.key),
		Name:          e.name,
		Type:          e.typ,
		SkillKeywords: e.keywords,
		Description: fmt.Sprintf("A %s business leveraging your %s skills along with complementary abilities.",
			strings.ToLower(e.name), e.key),
	}
}

// templateID derives a template id from a skill: whitespace runs become
// underscores and "&" becomes "and", so "art & craft" is "art_and_craft".
func templateID(skill string) string {
	return strings.ReplaceAll(strings.Join(strings.Fields(skill), "_"), "&", "and")
}

// LookupTemplate returns a copy of the catalog template for a normalized skill key.
func LookupTemplate(key string) (models.BusinessTemplate, bool) {
	t, ok := templateCatalog[key]
	if !ok {
		return models.BusinessTemplate{}, false
	}
	return cloneTemplate(t), true
}

// CatalogTemplates returns a copy of every catalog template in definition order.
func CatalogTemplates() []models.BusinessTemplate {
	out := make([]models.BusinessTemplate, 0, len(catalogEntries))
	for _, e := range catalogEntries {
		out = append(out, cloneTemplate(templateCatalog[e.key]))
	}
	return out
}

func cloneTemplate(t models.BusinessTemplate) models.BusinessTemplate {
	t.SkillKeywords = append([]string(nil), t.SkillKeywords...)
	return t
}
