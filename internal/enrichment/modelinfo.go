package enrichment

import "business-recommender/internal/models"

var modelFeatures = []string{"Skill Matching", "Experience Level", "Location Preference", "Business Type Alignment"}

const trainingData = "Business Profiles and Success Stories"

// ModelInfoFor describes the algorithm that produced a response.
func ModelInfoFor(algorithm models.Algorithm) models.ModelInfo {
	info := models.ModelInfo{
		Model:        "Rule-based Algorithm",
		Features:     append([]string(nil), modelFeatures...),
		TrainingData: trainingData,
		Accuracy:     "75-85%",
	}
	if algorithm == models.AlgorithmML {
		info.Model = "Neural Network"
		info.Accuracy = "85-92%"
	}
	return info
}

var dataSources = []models.DataSource{
	{
		Name:        "National Skill Development Corporation (NSDC)",
		URL:         "https://www.nsdcindia.org/",
		Description: "Government database of skill development programs and success stories",
		LastUpdated: "2024-12-01",
	},
	{
		Name:        "Ministry of MSME",
		URL:         "https://msme.gov.in/",
		Description: "Official government data on MSME schemes and business opportunities",
		LastUpdated: "2024-11-15",
	},
	{
		Name:        "Startup India Database",
		URL:         "https://www.startupindia.gov.in/",
		Description: "Comprehensive database of registered startups and business models",
		LastUpdated: "2024-12-05",
	},
	{
		Name:        "Industry Association Reports",
		URL:         "https://www.cii.in/",
		Description: "Confederation of Indian Industry reports on sector-wise business opportunities",
		LastUpdated: "2024-11-30",
	},
}

func DataSources() []models.DataSource {
	return append([]models.DataSource(nil), dataSources...)
}
