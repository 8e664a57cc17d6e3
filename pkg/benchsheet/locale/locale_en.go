package locale

import "github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"

var english = &Locale{
	Code:   "en",
	Name:   "English",
	Script: ScriptLatin,
	SheetTitles: map[models.SheetKind]string{
		models.SheetSummary:       "Summary",
		models.SheetBenchmark:     "Benchmark",
		models.SheetFeatureMatrix: "Feature-Matrix",
		models.SheetPricing:       "Pricing-GTM",
		models.SheetSources:       "Sources",
	},
	Headers: map[models.Column]string{
		models.ColProblemStatement:      "Problem Statement",
		models.ColTargetSegment:         "Target Segment",
		models.ColMethod:                "Method",
		models.ColScope:                 "Scope",
		models.ColTopFindings:           "Top Findings",
		models.ColStrategicImplications: "Strategic Implications",

		models.ColRank:              "Rank",
		models.ColCompanyProduct:    "Company/Product",
		models.ColCategory:          "Category(Direct/Adjacent/Substitute)",
		models.ColTargetUser:        "Target User",
		models.ColCoreJTBD:          "Core JTBD",
		models.ColPlatform:          "Platform",
		models.ColGeoFocus:          "Geo Focus",
		models.ColTractionScore:     "Traction Score(1-5)",
		models.ColCapabilityScore:   "Product Capability Score(1-5)",
		models.ColMonetizationScore: "Monetization Score(1-5)",
		models.ColSentimentScore:    "User Sentiment Score(1-5)",
		models.ColExecutionScore:    "Execution Maturity Score(1-5)",
		models.ColEvidenceScore:     "Evidence Confidence Score(1-5)",
		models.ColWeightedTotal:     "Weighted Total(0-100)",
		models.ColKeyStrength:       "Key Strength",
		models.ColKeyWeakness:       "Key Weakness",
		models.ColThreatLevel:       "Threat Level",

		models.ColL1Capability:       "L1 Capability",
		models.ColL2Module:           "L2 Module",
		models.ColL3Feature:          "L3 Feature",
		models.ColOurStatus:          "Our Status(None/Planned/Live)",
		models.ColCompetitorCoverage: "Competitor Coverage(0/1)",
		models.ColParityGap:          "Parity Gap",
		models.ColImportance:         "Importance(H/M/L)",
		models.ColPriority:           "Priority",

		models.ColProduct:             "Product",
		models.ColPricingModel:        "Pricing Model",
		models.ColEntryPrice:          "Entry Price",
		models.ColTopTierPrice:        "Top Tier Price",
		models.ColTrialFreemium:       "Trial/Freemium",
		models.ColPackagingUnit:       "Packaging Unit",
		models.ColPrimaryChannel:      "Primary Channel(SEO/PLG/Sales/Partner)",
		models.ColPositioningClaim:    "Positioning Claim",
		models.ColConversionFrictions: "Observed Conversion Frictions",

		models.ColSourceType:      "Source Type(Official/Store/Review/Media/Research)",
		models.ColURL:             "URL",
		models.ColTitle:           "Title",
		models.ColPublishedDate:   "Published Date",
		models.ColAccessDate:      "Access Date",
		models.ColClaim:           "Claim",
		models.ColEvidenceSnippet: "Evidence Snippet",
		models.ColConfidence:      "Confidence(High/Med/Low)",
	},
	Enums: map[models.EnumKind]map[string]string{
		models.EnumThreat: {
			"high":   "High",
			"medium": "Medium",
			"low":    "Low",
		},
		models.EnumCategory: {
			"direct":     "Direct",
			"adjacent":   "Adjacent",
			"substitute": "Substitute",
		},
		models.EnumConfidence: {
			"high": "High",
			"med":  "Med",
			"low":  "Low",
		},
		models.EnumOurStatus: {
			"none":    "None",
			"planned": "Planned",
			"live":    "Live",
		},
		models.EnumParityGap: {
			"lead":    "Lead",
			"parity":  "Parity",
			"partial": "Partial",
			"gap":     "Gap",
		},
	},
	SummaryTemplates: []map[models.Column]string{
		{
			models.ColProblemStatement:      "Market Definition",
			models.ColTargetSegment:         "Primary user segment to be validated",
			models.ColMethod:                "JTBD + competitor classification + weighted scoring",
			models.ColTopFindings:           "Fill market definition based on brief/repo context",
			models.ColStrategicImplications: "Clarify category boundary before scoring",
		},
		{
			models.ColProblemStatement:      "Positioning Statement",
			models.ColTargetSegment:         "Priority segment for GTM",
			models.ColMethod:                "Relative positioning vs Direct/Adjacent/Substitute",
			models.ColTopFindings:           "Define what you compete on and what you intentionally do not",
			models.ColStrategicImplications: "Prevent scope creep and category drift",
		},
		{
			models.ColProblemStatement:      "Strategic Implications",
			models.ColTargetSegment:         "Product + GTM stakeholders",
			models.ColMethod:                "Gap synthesis from benchmark and feature matrix",
			models.ColTopFindings:           "Prioritize top 2-3 execution bets from competitor gaps",
			models.ColStrategicImplications: "Convert benchmark insights into roadmap decisions",
		},
	},
	Warnings: WarningTemplates{
		Title:               "Warnings:",
		SourcesBelowMinimum: "[WARN] %s: sources < 3",
		MissingOfficial:     "[WARN] %s: missing official source",
		MissingThirdParty:   "[WARN] %s: missing third-party source",
	},
}
