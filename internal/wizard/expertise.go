package wizard

// Industry-specific expertise bullets for the system prompt. Each industry
// gets 4-6 bullet points of domain knowledge; "other" is the generic set used
// for unknown industries and free-text custom values.
var industryExpertise = map[string]string{
	"manufacturing": `- Production optimization and OEE (Overall Equipment Effectiveness)
- Quality control and defect reduction
- Supply chain and inventory management
- Lean manufacturing and Six Sigma methodologies
- MES (Manufacturing Execution Systems) and ERP integration
- Predictive maintenance and IoT applications`,

	"healthcare": `- Clinical workflow optimization
- Patient experience and care coordination
- Healthcare compliance (HIPAA, regulatory requirements)
- Electronic Health Records (EHR) systems
- Telehealth and digital health solutions
- Healthcare analytics and population health management`,

	"retail": `- Omnichannel retail strategy
- Inventory and supply chain optimization
- Customer experience and personalization
- E-commerce platform optimization
- Point of Sale (POS) and retail technology
- Demand forecasting and merchandising`,

	"finance": `- Financial process automation
- Risk management and compliance
- Customer onboarding and KYC processes
- Core banking and payment systems
- Fraud detection and prevention
- Regulatory reporting and audit trails`,

	"technology": `- Product development lifecycle
- SaaS metrics and growth optimization
- DevOps and engineering efficiency
- Customer success and retention
- Technical architecture and scalability
- Data platform and analytics infrastructure`,

	"logistics": `- Transportation and route optimization
- Warehouse management and fulfillment
- Last-mile delivery optimization
- Fleet management and tracking
- Supply chain visibility and analytics
- Carrier management and freight optimization`,

	"other": `- Industry-specific operational optimization
- Digital transformation strategies
- Process improvement and automation
- Technology selection and implementation
- Data analytics and business intelligence
- Change management and organizational efficiency`,
}

// Challenge IDs mapped to natural-language descriptions for the prompt.
var challengeContexts = map[string]string{
	"efficiency": "operational efficiency improvements and process optimization",
	"digital":    "digital transformation initiatives and technology modernization",
	"cost":       "cost reduction strategies and resource optimization",
	"quality":    "quality improvement programs and defect reduction",
	"customer":   "customer experience enhancement and satisfaction improvement",
	"analytics":  "data analytics capabilities and business intelligence",
	"automation": "process automation and workflow optimization",
}

// Goal IDs mapped to natural-language descriptions for the prompt.
var goalContexts = map[string]string{
	"revenue":     "revenue growth and market expansion",
	"costs":       "cost optimization and operational savings",
	"efficiency":  "operational efficiency and productivity gains",
	"decisions":   "data-driven decision making and insights",
	"competitive": "competitive differentiation and market positioning",
	"compliance":  "compliance adherence and risk mitigation",
}

// industryExpertiseFor returns the expertise bullets for an industry. A custom
// free-text industry always uses the generic set.
func industryExpertiseFor(industryID, customValue string) string {
	if customValue != "" {
		return industryExpertise["other"]
	}
	if exp, ok := industryExpertise[industryID]; ok {
		return exp
	}
	return industryExpertise["other"]
}

func challengeContextFor(challengeID string) string {
	if ctx, ok := challengeContexts[challengeID]; ok {
		return ctx
	}
	return "business optimization"
}

func goalContextFor(goalID string) string {
	if ctx, ok := goalContexts[goalID]; ok {
		return ctx
	}
	return "business improvement"
}
