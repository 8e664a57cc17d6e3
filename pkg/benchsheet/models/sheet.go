// Package models defines data structures for benchmark report generation.
package models

// SheetKind identifies one of the five fixed report sections.
type SheetKind string

const (
	// SheetSummary is the overview sheet (problem statement, scope, findings).
	SheetSummary SheetKind = "summary"
	// SheetBenchmark is the weighted competitor benchmark.
	SheetBenchmark SheetKind = "benchmark"
	// SheetFeatureMatrix is the L1/L2/L3 feature parity matrix.
	SheetFeatureMatrix SheetKind = "feature_matrix"
	// SheetPricing is the pricing and go-to-market sheet.
	SheetPricing SheetKind = "pricing_gtm"
	// SheetSources is the evidence source log.
	SheetSources SheetKind = "sources"
)

// SheetOrder is the fixed order of sheets in the workbook.
var SheetOrder = []SheetKind{
	SheetSummary,
	SheetBenchmark,
	SheetFeatureMatrix,
	SheetPricing,
	SheetSources,
}

// Column is a canonical column identifier.
type Column string

const (
	ColProblemStatement      Column = "problem_statement"
	ColTargetSegment         Column = "target_segment"
	ColMethod                Column = "method"
	ColScope                 Column = "scope"
	ColTopFindings           Column = "top_findings"
	ColStrategicImplications Column = "strategic_implications"
	ColRank                  Column = "rank"
	ColCompanyProduct        Column = "company_product"
	ColCategory              Column = "category"
	ColTargetUser            Column = "target_user"
	ColCoreJTBD              Column = "core_jtbd"
	ColPlatform              Column = "platform"
	ColGeoFocus              Column = "geo_focus"
	ColTractionScore         Column = "traction_score"
	ColCapabilityScore       Column = "product_capability_score"
	ColMonetizationScore     Column = "monetization_score"
	ColSentimentScore        Column = "user_sentiment_score"
	ColExecutionScore        Column = "execution_maturity_score"
	ColEvidenceScore         Column = "evidence_confidence_score"
	ColWeightedTotal         Column = "weighted_total"
	ColKeyStrength           Column = "key_strength"
	ColKeyWeakness           Column = "key_weakness"
	ColThreatLevel           Column = "threat_level"
	ColL1Capability          Column = "l1_capability"
	ColL2Module              Column = "l2_module"
	ColL3Feature             Column = "l3_feature"
	ColOurStatus             Column = "our_status"
	ColCompetitorCoverage    Column = "competitor_coverage"
	ColParityGap             Column = "parity_gap"
	ColImportance            Column = "importance"
	ColPriority              Column = "priority"
	ColProduct               Column = "product"
	ColPricingModel          Column = "pricing_model"
	ColEntryPrice            Column = "entry_price"
	ColTopTierPrice          Column = "top_tier_price"
	ColTrialFreemium         Column = "trial_freemium"
	ColPackagingUnit         Column = "packaging_unit"
	ColPrimaryChannel        Column = "primary_channel"
	ColPositioningClaim      Column = "positioning_claim"
	ColConversionFrictions   Column = "observed_conversion_frictions"
	ColSourceType            Column = "source_type"
	ColURL                   Column = "url"
	ColTitle                 Column = "title"
	ColPublishedDate         Column = "published_date"
	ColAccessDate            Column = "access_date"
	ColClaim                 Column = "claim"
	ColEvidenceSnippet       Column = "evidence_snippet"
	ColConfidence            Column = "confidence"
)

// ScoreColumns are the six benchmark component scores in weight order
// (traction, capability, monetization, sentiment, execution, evidence).
var ScoreColumns = [6]Column{
	ColTractionScore,
	ColCapabilityScore,
	ColMonetizationScore,
	ColSentimentScore,
	ColExecutionScore,
	ColEvidenceScore,
}

// Layout is the fixed column schema of one sheet kind.
type Layout struct {
	// Columns is the ordered list of column identifiers.
	Columns []Column
	// Widths is the display width hint per column.
	Widths []float64
}

// Index returns the zero-based position of col, or -1 if the layout lacks it.
func (l Layout) Index(col Column) int {
	for i, c := range l.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

// Layouts maps every sheet kind to its schema.
var Layouts = map[SheetKind]Layout{
	SheetSummary: {
		Columns: []Column{
			ColProblemStatement,
			ColTargetSegment,
			ColMethod,
			ColScope,
			ColTopFindings,
			ColStrategicImplications,
		},
		Widths: []float64{34, 24, 18, 20, 48, 48},
	},
	SheetBenchmark: {
		Columns: []Column{
			ColRank,
			ColCompanyProduct,
			ColCategory,
			ColTargetUser,
			ColCoreJTBD,
			ColPlatform,
			ColGeoFocus,
			ColTractionScore,
			ColCapabilityScore,
			ColMonetizationScore,
			ColSentimentScore,
			ColExecutionScore,
			ColEvidenceScore,
			ColWeightedTotal,
			ColKeyStrength,
			ColKeyWeakness,
			ColThreatLevel,
		},
		Widths: []float64{8, 26, 30, 20, 26, 16, 14, 16, 20, 18, 18, 20, 20, 18, 28, 28, 14},
	},
	SheetFeatureMatrix: {
		Columns: []Column{
			ColL1Capability,
			ColL2Module,
			ColL3Feature,
			ColOurStatus,
			ColCompetitorCoverage,
			ColParityGap,
			ColImportance,
			ColPriority,
		},
		Widths: []float64{24, 22, 34, 30, 24, 18, 18, 18},
	},
	SheetPricing: {
		Columns: []Column{
			ColProduct,
			ColPricingModel,
			ColEntryPrice,
			ColTopTierPrice,
			ColTrialFreemium,
			ColPackagingUnit,
			ColPrimaryChannel,
			ColPositioningClaim,
			ColConversionFrictions,
		},
		Widths: []float64{22, 20, 14, 14, 18, 18, 32, 36, 36},
	},
	SheetSources: {
		Columns: []Column{
			ColProduct,
			ColSourceType,
			ColURL,
			ColTitle,
			ColPublishedDate,
			ColAccessDate,
			ColClaim,
			ColEvidenceSnippet,
			ColConfidence,
		},
		Widths: []float64{24, 28, 46, 32, 16, 14, 34, 46, 18},
	},
}

// NumericColumns lists columns whose numeric-looking text is narrowed to a number.
var NumericColumns = map[Column]bool{
	ColRank:               true,
	ColTractionScore:      true,
	ColCapabilityScore:    true,
	ColMonetizationScore:  true,
	ColSentimentScore:     true,
	ColExecutionScore:     true,
	ColEvidenceScore:      true,
	ColWeightedTotal:      true,
	ColCompetitorCoverage: true,
}

// EnumKind identifies a canonical enumeration.
type EnumKind string

const (
	EnumThreat     EnumKind = "threat"
	EnumCategory   EnumKind = "category"
	EnumConfidence EnumKind = "confidence"
	EnumOurStatus  EnumKind = "our_status"
	EnumParityGap  EnumKind = "parity_gap"
)

// EnumColumns maps each sheet kind to the columns holding enum values.
var EnumColumns = map[SheetKind]map[Column]EnumKind{
	SheetBenchmark: {
		ColCategory:    EnumCategory,
		ColThreatLevel: EnumThreat,
	},
	SheetFeatureMatrix: {
		ColOurStatus: EnumOurStatus,
		ColParityGap: EnumParityGap,
	},
	SheetSources: {
		ColConfidence: EnumConfidence,
	},
}

// Canonical threat tokens derived by the scoring engine.
const (
	ThreatHigh   = "high"
	ThreatMedium = "medium"
	ThreatLow    = "low"
)
