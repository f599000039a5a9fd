package enrichment

import "business-recommender/internal/models"

var resourceGroups = map[string][]models.Resource{
	"tailoring": {
		{Title: "Complete Tailoring Masterclass", Type: "Video Course", URL: "https://www.youtube.com/results?search_query=tailoring+masterclass", Duration: "40-50 hours", Level: "All Levels"},
		{Title: "Sewing Machine Operation & Maintenance", Type: "Online Course", URL: "https://www.skillshare.com/classes/sewing-basics", Duration: "10-15 hours", Level: "Beginner"},
		{Title: "Fashion Design Fundamentals", Type: "University Course", URL: "https://www.coursera.org/courses?query=fashion%20design", Duration: "6-8 weeks", Level: "Intermediate"},
		{Title: "Business Registration for Tailoring", Type: "Government Portal", URL: "https://udyamregistration.gov.in/", Duration: "1-2 hours", Level: "Beginner"},
	},
	"cooking": {
		{Title: "Professional Cooking Techniques", Type: "Video Course", URL: "https://www.youtube.com/results?search_query=professional+cooking+course", Duration: "30-40 hours", Level: "All Levels"},
		{Title: "Food Safety & Hygiene Certification", Type: "Government Certification", URL: "https://www.fssai.gov.in/", Duration: "2-3 days", Level: "Required"},
		{Title: "Catering Business Setup", Type: "Online Training", URL: "https://www.skillindiadigital.gov.in/", Duration: "5-10 hours", Level: "Beginner"},
		{Title: "Recipe Development & Costing", Type: "Professional Course", URL: "https://www.udemy.com/courses/search/?q=recipe%20development", Duration: "15-20 hours", Level: "Intermediate"},
	},
	"handicrafts": {
		{Title: "Traditional Indian Handicrafts", Type: "Video Tutorial", URL: "https://www.youtube.com/results?search_query=indian+handicrafts+tutorial", Duration: "25-35 hours", Level: "All Levels"},
		{Title: "Handicrafts Marketing Online", Type: "E-commerce Setup", URL: "https://www.amazon.in/gp/seller/registration", Duration: "3-5 hours", Level: "Beginner"},
		{Title: "Art & Craft Business Management", Type: "Business Course", URL: "https://www.skillindiadigital.gov.in/", Duration: "10-15 hours", Level: "Intermediate"},
		{Title: "Product Photography for Crafts", Type: "Skills Course", URL: "https://www.skillshare.com/classes/product-photography", Duration: "5-8 hours", Level: "Beginner"},
	},
	"tutoring": {
		{Title: "Online Teaching Methodology", Type: "Professional Course", URL: "https://www.coursera.org/courses?query=online%20teaching", Duration: "20-30 hours", Level: "All Levels"},
		{Title: "Zoom & Online Platform Mastery", Type: "Technical Training", URL: "https://support.zoom.us/hc/en-us", Duration: "5-10 hours", Level: "Beginner"},
		{Title: "Student Assessment Techniques", Type: "Educational Course", URL: "https://www.edx.org/learn/education", Duration: "15-20 hours", Level: "Intermediate"},
		{Title: "Tutoring Business Setup", Type: "Business Registration", URL: "https://udyamregistration.gov.in/", Duration: "2-3 hours", Level: "Required"},
	},
	"beauty_services": {
		{Title: "Professional Makeup Artistry", Type: "Video Course", URL: "https://www.youtube.com/results?search_query=professional+makeup+course", Duration: "35-45 hours", Level: "All Levels"},
		{Title: "Skin Care & Beauty Therapy", Type: "Professional Course", URL: "https://www.vlccwellness.com/courses/", Duration: "3-6 months", Level: "Beginner"},
		{Title: "Beauty Salon Management", Type: "Business Course", URL: "https://www.skillindiadigital.gov.in/", Duration: "10-15 hours", Level: "Intermediate"},
		{Title: "Beauty Service Hygiene Standards", Type: "Health Guidelines", URL: "https://mohfw.gov.in/", Duration: "2-3 hours", Level: "Required"},
	},
	"online_business": {
		{Title: "Digital Marketing Fundamentals", Type: "Free Course", URL: "https://www.google.com/digital-garage/courses/digital-marketing", Duration: "40 hours", Level: "Beginner"},
		{Title: "E-commerce Platform Setup", Type: "Technical Guide", URL: "https://www.shopify.com/blog/how-to-start-an-online-store", Duration: "8-12 hours", Level: "Beginner"},
		{Title: "Social Media Marketing Mastery", Type: "Platform Training", URL: "https://www.facebook.com/business/learn", Duration: "15-20 hours", Level: "Intermediate"},
		{Title: "Online Business Legal Compliance", Type: "Government Resource", URL: "https://www.mca.gov.in/", Duration: "3-5 hours", Level: "Important"},
	},
}

// resourceGroupByTemplate maps catalog template ids onto the group that
// covers them. Group names are also accepted as ids.
var resourceGroupByTemplate = map[string]string{
	"sewing":         "tailoring",
	"fashion_design": "tailoring",
	"garment_making": "tailoring",
	"embroidery":     "tailoring",
	"pattern_making": "tailoring",

	"baking":           "cooking",
	"food_preparation": "cooking",

	"art_and_craft":    "handicrafts",
	"traditional_arts": "handicrafts",
	"pottery":          "handicrafts",
	"jewelry_making":   "handicrafts",

	"teaching": "tutoring",
	"training": "tutoring",

	"beauty_and_makeup": "beauty_services",
	"hair_styling":      "beauty_services",
	"skincare":          "beauty_services",

	"technology":        "online_business",
	"digital_marketing": "online_business",
	"social_media":      "online_business",
	"content_creation":  "online_business",
}

var defaultResources = []models.Resource{
	{Title: "General Business Setup Guide", Type: "Government Portal", URL: "https://udyamregistration.gov.in/", Duration: "2-3 hours", Level: "Beginner"},
	{Title: "Small Business Management", Type: "Online Course", URL: "https://www.skillindiadigital.gov.in/", Duration: "10-15 hours", Level: "All Levels"},
}

// ResourcesFor returns the learning resources for a template, or a generic set.
func ResourcesFor(templateID string) []models.Resource {
	group := templateID
	if g, ok := resourceGroupByTemplate[templateID]; ok {
		group = g
	}
	if rs, ok := resourceGroups[group]; ok {
		return append([]models.Resource(nil), rs...)
	}
	return append([]models.Resource(nil), defaultResources...)
}
