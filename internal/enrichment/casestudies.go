package enrichment

import (
	"fmt"
	"strings"

	"business-recommender/internal/models"
)

// CaseStudiesFor returns the two founder stories, told for the named business.
func CaseStudiesFor(businessName string) []models.CaseStudy {
	name := strings.ToLower(businessName)
	return []models.CaseStudy{
		{
			Name:        "Priya Sharma",
			Location:    "Mumbai, Maharashtra",
			Story:       fmt.Sprintf("Started as a homemaker with %s skills. Initially struggled with no business experience and faced financial constraints.", name),
			Achievement: "Now runs a successful business earning ₹50,000+ monthly with 100+ regular customers.",
			ProfilePic:  "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=400",
			ContactInfo: models.ContactInfo{
				Email:    "priya.sharma@example.org",
				Phone:    "+91-9876543210",
				LinkedIn: "https://linkedin.com/in/priyasharma",
			},
			Journey: models.Journey{
				Failures: []string{
					"First 3 months with zero customers",
					"Lost ₹15,000 in wrong inventory purchase",
					"Struggled with pricing and competition",
				},
				TurningPoint: "Started focusing on quality and customer relationships instead of competing on price",
				SuccessStory: "Built trust through consistent quality work, expanded through word-of-mouth referrals, and now mentors other women entrepreneurs",
			},
			Quote: "Every failure taught me something valuable. Persistence and quality work always pay off.",
		},
		{
			Name:        "Rajesh Kumar",
			Location:    "Delhi, Delhi",
			Story:       fmt.Sprintf("Former IT professional who left corporate job to start %s business. Faced initial skepticism from family and friends.", name),
			Achievement: "Built a team of 8 people and expanded to 3 cities with annual revenue of ₹25 lakhs.",
			ProfilePic:  "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=400",
			ContactInfo: models.ContactInfo{
				Email:    "rajesh.kumar@example.org",
				Phone:    "+91-9123456789",
				LinkedIn: "https://linkedin.com/in/rajeshkumar",
			},
			Journey: models.Journey{
				Failures: []string{
					"Quit high-paying job without proper planning",
					"First business location failed due to poor market research",
					"Lost ₹2 lakhs in first 6 months",
				},
				TurningPoint: "Joined a business mentor program and learned proper market analysis and financial planning",
				SuccessStory: "Systematically analyzed market gaps, built strong processes, and scaled methodically",
			},
			Quote: "Business is not just about passion - it needs proper planning, execution, and continuous learning.",
		},
	}
}
