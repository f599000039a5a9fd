// internal/models/enrichment.go
package models

type Resource struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	Duration string `json:"duration,omitempty"`
	Level    string `json:"level,omitempty"`
}

type Mentor struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	BusinessType BusinessType `json:"businessType"`
	Expertise    []string     `json:"expertise"`
	Years        int          `json:"yearsExperience"`
	Location     string       `json:"location"`
	Languages    []string     `json:"languages,omitempty"`
	Mode         string       `json:"mode"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone,omitempty"`
}

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Journey is how a case-study owner got from the first setbacks to a
// working business.
type Journey struct {
	Failures     []string `json:"failures"`
	TurningPoint string   `json:"turningPoint"`
	SuccessStory string   `json:"successStory"`
}

type CaseStudy struct {
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	Story       string      `json:"story"`
	Achievement string      `json:"achievement"`
	ProfilePic  string      `json:"profilePic,omitempty"`
	ContactInfo ContactInfo `json:"contactInfo"`
	Journey     Journey     `json:"journey"`
	Quote       string      `json:"quote"`
}

type Guidance struct {
	Level      string   `json:"level"`
	Goal       string   `json:"goal"`
	Summary    string   `json:"summary"`
	NextSteps  []string `json:"nextSteps"`
	Challenges []string `json:"challenges,omitempty"`
	Tip        string   `json:"tip,omitempty"`
}

// Milestones holds a plan for the third, sixth and twelfth month.
type Milestones struct {
	Month3  string `json:"month3"`
	Month6  string `json:"month6"`
	Month12 string `json:"month12"`
}

type WorkforcePlan struct {
	InitialTeamSize int        `json:"initialTeamSize"`
	Roles           []string   `json:"roles"`
	GrowthPlan      Milestones `json:"growthPlan"`
	SoloTips        []string   `json:"soloTips,omitempty"`
}

type MoneyRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type MonthRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FinancialPlan amounts are in Currency. MonthlyExpenses is the operational
// spend per month.
type FinancialPlan struct {
	Currency           string     `json:"currency"`
	StartupCost        MoneyRange `json:"startupCost"`
	EquipmentCost      MoneyRange `json:"equipmentCost"`
	MonthlyRevenue     MoneyRange `json:"monthlyRevenue"`
	MonthlyExpenses    MoneyRange `json:"monthlyExpenses"`
	BreakEvenMonths    MonthRange `json:"breakEvenMonths"`
	ProfitMargin       string     `json:"profitMargin"`
	RiskLevel          string     `json:"riskLevel"`
	InitialSalesVolume string     `json:"initialSalesVolume"`
	ScalingStrategy    Milestones `json:"scalingStrategy"`
	ToolsNeeded        []string   `json:"toolsNeeded"`
}

type DataSource struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	LastUpdated string `json:"lastUpdated"`
}
