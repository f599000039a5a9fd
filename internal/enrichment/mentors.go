package enrichment

import "business-recommender/internal/models"

var mentorsByType = map[models.BusinessType][]models.Mentor{
	models.BusinessTypeGoods: {
		{
			ID: "m-goods-1", Name: "Krishna Kumar", BusinessType: models.BusinessTypeGoods,
			Expertise: []string{"Product Pricing", "Financial Planning", "Home Production"},
			Years:     8, Location: "Bangalore, Karnataka", Languages: []string{"Hindi", "English", "Kannada"},
			Mode: "both", Email: "krishna.kumar@mentors.example.org", Phone: "+91-9876543210",
		},
		{
			ID: "m-goods-2", Name: "Lakshmi Devi", BusinessType: models.BusinessTypeGoods,
			Expertise: []string{"Online Marketplaces", "Handmade Products", "Packaging"},
			Years:     6, Location: "Jaipur, Rajasthan", Languages: []string{"Hindi", "English"},
			Mode: "online", Email: "lakshmi.devi@mentors.example.org",
		},
	},
	models.BusinessTypeService: {
		{
			ID: "m-service-1", Name: "Narada Shishivaram", BusinessType: models.BusinessTypeService,
			Expertise: []string{"Digital Marketing", "Customer Acquisition", "Service Pricing"},
			Years:     6, Location: "Chennai, Tamil Nadu", Languages: []string{"Tamil", "English", "Hindi"},
			Mode: "online", Email: "narada.s@mentors.example.org", Phone: "+91-9123456789",
		},
		{
			ID: "m-service-2", Name: "Meera Patel", BusinessType: models.BusinessTypeService,
			Expertise: []string{"Client Relationships", "Scheduling", "Hiring Helpers"},
			Years:     9, Location: "Ahmedabad, Gujarat", Languages: []string{"Gujarati", "Hindi", "English"},
			Mode: "both", Email: "meera.patel@mentors.example.org",
		},
	},
	models.BusinessTypeBoth: {
		{
			ID: "m-both-1", Name: "Rakesh Kolipaka", BusinessType: models.BusinessTypeBoth,
			Expertise: []string{"Operations Management", "Supply Chain", "Cost Control"},
			Years:     10, Location: "Hyderabad, Telangana", Languages: []string{"Telugu", "Hindi", "English"},
			Mode: "both", Email: "rakesh.k@mentors.example.org", Phone: "+91-9987654321",
		},
	},
}

var mentorIndex = func() map[string]models.Mentor {
	idx := make(map[string]models.Mentor)
	for _, ms := range mentorsByType {
		for _, m := range ms {
			idx[m.ID] = m
		}
	}
	return idx
}()

// MentorsFor returns the mentors for a business type. Type "both" templates
// get the generalist mentors followed by everyone else.
func MentorsFor(bt models.BusinessType) []models.Mentor {
	bt = bt.Normalize()
	out := cloneMentors(mentorsByType[bt])
	if bt == models.BusinessTypeBoth {
		out = append(out, cloneMentors(mentorsByType[models.BusinessTypeGoods])...)
		out = append(out, cloneMentors(mentorsByType[models.BusinessTypeService])...)
	}
	return out
}

// LookupMentor finds a mentor by id.
func LookupMentor(id string) (models.Mentor, bool) {
	m, ok := mentorIndex[id]
	if !ok {
		return models.Mentor{}, false
	}
	return cloneMentor(m), true
}

func cloneMentors(in []models.Mentor) []models.Mentor {
	out := make([]models.Mentor, 0, len(in))
	for _, m := range in {
		out = append(out, cloneMentor(m))
	}
	return out
}

func cloneMentor(m models.Mentor) models.Mentor {
	m.Expertise = append([]string(nil), m.Expertise...)
	m.Languages = append([]string(nil), m.Languages...)
	return m
}
