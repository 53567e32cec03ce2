package wizard

import "cognireal-backend/internal/models"

// Questions is the fixed five-step onboarding catalogue. The answers gathered
// here parameterize every subsequent system prompt for the session.
var Questions = []models.WizardQuestion{
	{
		ID:       "industry",
		Question: "What industry does your business operate in?",
		Options: []models.WizardOption{
			{ID: "manufacturing", Label: "Manufacturing"},
			{ID: "healthcare", Label: "Healthcare"},
			{ID: "retail", Label: "Retail / E-commerce"},
			{ID: "finance", Label: "Finance / Banking"},
			{ID: "technology", Label: "Technology / SaaS"},
			{ID: "logistics", Label: "Logistics / Supply Chain"},
			{ID: "other", Label: "Other", AllowCustom: true},
		},
	},
	{
		ID:       "companySize",
		Question: "What is the size of your organization?",
		Options: []models.WizardOption{
			{ID: "startup", Label: "Startup (1-10 employees)"},
			{ID: "small", Label: "Small (11-50 employees)"},
			{ID: "medium", Label: "Medium (51-200 employees)"},
			{ID: "large", Label: "Large (201-1000 employees)"},
			{ID: "enterprise", Label: "Enterprise (1000+ employees)"},
		},
	},
	{
		ID:       "challenge",
		Question: "What is your main business challenge?",
		Options: []models.WizardOption{
			{ID: "efficiency", Label: "Operational Efficiency"},
			{ID: "digital", Label: "Digital Transformation"},
			{ID: "cost", Label: "Cost Reduction"},
			{ID: "quality", Label: "Quality Improvement"},
			{ID: "customer", Label: "Customer Experience"},
			{ID: "analytics", Label: "Data & Analytics"},
			{ID: "automation", Label: "Process Automation"},
		},
	},
	{
		ID:       "systems",
		Question: "What systems do you currently use?",
		Options: []models.WizardOption{
			{ID: "erp", Label: "ERP (SAP, Oracle, etc.)"},
			{ID: "crm", Label: "CRM (Salesforce, HubSpot)"},
			{ID: "custom", Label: "Custom Software"},
			{ID: "spreadsheets", Label: "Spreadsheets / Manual"},
			{ID: "legacy", Label: "Multiple Legacy Systems"},
			{ID: "none", Label: "None / Starting Fresh"},
		},
	},
	{
		ID:       "goal",
		Question: "What outcome are you hoping to achieve?",
		Options: []models.WizardOption{
			{ID: "revenue", Label: "Increase Revenue"},
			{ID: "costs", Label: "Reduce Costs"},
			{ID: "efficiency", Label: "Improve Efficiency"},
			{ID: "decisions", Label: "Better Decision Making"},
			{ID: "competitive", Label: "Competitive Advantage"},
			{ID: "compliance", Label: "Compliance / Risk Management"},
		},
	},
}

// IntroMessage opens the wizard flow in the chat widget.
const IntroMessage = `Welcome! I'm your Business Analyst Assistant from Cognireal.

To provide you with the most relevant guidance, I'd like to learn a bit about your business. Let's start with a few quick questions.`

// AnswerLabel resolves the human-readable label for an answer. A custom value
// wins outright; unknown IDs fall back to the raw answer ID.
func AnswerLabel(questionID, answerID, customValue string) string {
	if customValue != "" {
		return customValue
	}
	for _, q := range Questions {
		if q.ID != questionID {
			continue
		}
		for _, o := range q.Options {
			if o.ID == answerID {
				return o.Label
			}
		}
	}
	return answerID
}

func findAnswer(answers []models.WizardAnswer, questionID string) *models.WizardAnswer {
	for i := range answers {
		if answers[i].QuestionID == questionID {
			return &answers[i]
		}
	}
	return nil
}
