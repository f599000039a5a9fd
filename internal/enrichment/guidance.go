package enrichment

import (
	"fmt"

	"business-recommender/internal/models"
)

type guidanceEntry struct {
	summary    string
	steps      []string
	challenges []string
}

var guidanceByExperience = map[models.ExperienceLevel]guidanceEntry{
	models.ExperienceNone: {
		summary: "Learn the basics before taking paid orders.",
		steps: []string{
			"Complete one beginner course from the resource list",
			"Practice on a few free or low-cost orders for friends",
			"Register the business on the Udyam portal",
		},
		challenges: []string{"Building skill and confidence", "Pricing work without a track record"},
	},
	models.ExperienceBeginner: {
		summary: "Validate demand with a small first offering.",
		steps: []string{
			"Pick one product or service and price it",
			"Find your first ten customers locally or online",
			"Track every expense from the first day",
		},
		challenges: []string{"Finding the first customers", "Managing time alongside other work"},
	},
	models.ExperienceIntermediate: {
		summary: "Formalise what already works and grow steadily.",
		steps: []string{
			"Register the business and open a separate bank account",
			"Create a simple online presence",
			"Ask existing customers for referrals",
		},
		challenges: []string{"Keeping quality consistent as volume grows", "Cash flow between orders"},
	},
	models.ExperienceExpert: {
		summary: "Scale through people and processes.",
		steps: []string{
			"Document your process so helpers can follow it",
			"Hire or train one assistant",
			"Explore bulk or institutional customers",
		},
		challenges: []string{"Delegating without losing quality", "Competing on more than price"},
	},
}

// GuidanceFor builds next steps for a template and profile. Unknown experience
// levels get the beginner guidance.
func GuidanceFor(template models.BusinessTemplate, profile models.UserProfile) models.Guidance {
	level := profile.Experience
	entry, ok := guidanceByExperience[level]
	if !ok {
		level = models.ExperienceBeginner
		entry = guidanceByExperience[level]
	}

	return models.Guidance{
		Level:      string(level),
		Goal:       fmt.Sprintf("Launch %s within the next three months", template.Name),
		Summary:    entry.summary,
		NextSteps:  append([]string(nil), entry.steps...),
		Challenges: append([]string(nil), entry.challenges...),
		Tip:        workEnvironmentTip(profile.WorkEnvironment),
	}
}

func workEnvironmentTip(env models.WorkEnvironment) string {
	switch env {
	case models.WorkEnvironmentSolo:
		return "Working alone: keep the offering narrow and automate bookings and payments."
	case models.WorkEnvironmentTeam:
		return "Working with a team: agree on roles and profit sharing in writing before starting."
	default:
		return ""
	}
}
