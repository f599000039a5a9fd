package enrichment

import "business-recommender/internal/models"

const currencyINR = "INR"

// Financials is the starter estimate attached to every recommendation. The
// ranges are wide enough to cover any catalog business at home scale.
func Financials() models.FinancialPlan {
	return models.FinancialPlan{
		Currency:           currencyINR,
		StartupCost:        models.MoneyRange{Min: 15000, Max: 100000},
		EquipmentCost:      models.MoneyRange{Min: 10000, Max: 80000},
		MonthlyRevenue:     models.MoneyRange{Min: 20000, Max: 100000},
		MonthlyExpenses:    models.MoneyRange{Min: 3000, Max: 15000},
		BreakEvenMonths:    models.MonthRange{Min: 3, Max: 8},
		ProfitMargin:       "25% - 50%",
		RiskLevel:          "medium",
		InitialSalesVolume: "15-30 orders per month",
		ScalingStrategy: models.Milestones{
			Month3:  "Focus on building customer base through quality work",
			Month6:  "Expand services and customer base",
			Month12: "Consider expansion based on demand",
		},
		ToolsNeeded: []string{"Essential Equipment", "Quality Materials", "Business Tools"},
	}
}

// WorkforcePlan starts one person covering both roles and grows the team
// with demand.
func WorkforcePlan() models.WorkforcePlan {
	return models.WorkforcePlan{
		InitialTeamSize: 1,
		Roles:           []string{"Primary Service Provider", "Quality Controller"},
		GrowthPlan: models.Milestones{
			Month3:  "Start solo while building customer base",
			Month6:  "Consider hiring part-time help",
			Month12: "Expand team based on demand",
		},
		SoloTips: []string{
			"Focus on quality and customer satisfaction",
			"Build strong supplier relationships",
			"Use time management effectively",
		},
	}
}
