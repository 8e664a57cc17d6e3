package locale

import "github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"

var german = &Locale{
	Code:      "de",
	Name:      "German",
	Script:    ScriptLatin,
	StopWords: []string{"und", "der", "die", "das", "mit", "für", "ein", "eine", "nicht"},
	SheetTitles: map[models.SheetKind]string{
		models.SheetSummary:       "Zusammenfassung",
		models.SheetBenchmark:     "Benchmark",
		models.SheetFeatureMatrix: "Feature-Matrix",
		models.SheetPricing:       "Pricing-GTM",
		models.SheetSources:       "Quellen",
	},
	Headers: map[models.Column]string{
		models.ColProblemStatement:      "Problemdefinition",
		models.ColTargetSegment:         "Zielsegment",
		models.ColMethod:                "Methode",
		models.ColScope:                 "Umfang",
		models.ColTopFindings:           "Wichtigste Erkenntnisse",
		models.ColStrategicImplications: "Strategische Implikationen",

		models.ColRank:              "Rang",
		models.ColCompanyProduct:    "Unternehmen/Produkt",
		models.ColCategory:          "Kategorie(Direkt/Angrenzend/Ersatz)",
		models.ColTargetUser:        "Zielnutzer",
		models.ColCoreJTBD:          "Kern-JTBD",
		models.ColPlatform:          "Plattform",
		models.ColGeoFocus:          "Geo-Fokus",
		models.ColTractionScore:     "Traction-Score(1-5)",
		models.ColCapabilityScore:   "Produktfähigkeits-Score(1-5)",
		models.ColMonetizationScore: "Monetarisierungs-Score(1-5)",
		models.ColSentimentScore:    "Nutzerstimmungs-Score(1-5)",
		models.ColExecutionScore:    "Reifegrad-Score(1-5)",
		models.ColEvidenceScore:     "Evidenz-Score(1-5)",
		models.ColWeightedTotal:     "Gewichtete Summe(0-100)",
		models.ColKeyStrength:       "Stärke",
		models.ColKeyWeakness:       "Schwäche",
		models.ColThreatLevel:       "Bedrohungsgrad",

		models.ColL1Capability:       "L1 Fähigkeit",
		models.ColL2Module:           "L2 Modul",
		models.ColL3Feature:          "L3 Feature",
		models.ColOurStatus:          "Unser Status(None/Planned/Live)",
		models.ColCompetitorCoverage: "Wettbewerbsabdeckung(0/1)",
		models.ColParityGap:          "Paritätslücke",
		models.ColImportance:         "Wichtigkeit(H/M/L)",
		models.ColPriority:           "Priorität",

		models.ColProduct:             "Produkt",
		models.ColPricingModel:        "Preismodell",
		models.ColEntryPrice:          "Einstiegspreis",
		models.ColTopTierPrice:        "Top-Preis",
		models.ColTrialFreemium:       "Test/Freemium",
		models.ColPackagingUnit:       "Paketeinheit",
		models.ColPrimaryChannel:      "Hauptkanal(SEO/PLG/Sales/Partner)",
		models.ColPositioningClaim:    "Positionierungsversprechen",
		models.ColConversionFrictions: "Beobachtete Conversion-Hürden",

		models.ColSourceType:      "Quellentyp(Official/Store/Review/Media/Research)",
		models.ColURL:             "URL",
		models.ColTitle:           "Titel",
		models.ColPublishedDate:   "Veröffentlichungsdatum",
		models.ColAccessDate:      "Abrufdatum",
		models.ColClaim:           "Aussage",
		models.ColEvidenceSnippet: "Evidenz-Auszug",
		models.ColConfidence:      "Vertrauen(Hoch/Mittel/Niedrig)",
	},
	Enums: map[models.EnumKind]map[string]string{
		models.EnumThreat: {
			"high":   "Hoch",
			"medium": "Mittel",
			"low":    "Niedrig",
		},
		models.EnumCategory: {
			"direct":     "Direkt",
			"adjacent":   "Angrenzend",
			"substitute": "Ersatz",
		},
		models.EnumConfidence: {
			"high": "Hoch",
			"med":  "Mittel",
			"low":  "Niedrig",
		},
		models.EnumOurStatus: {
			"none":    "Kein",
			"planned": "Geplant",
			"live":    "Live",
		},
		models.EnumParityGap: {
			"lead":    "Vorsprung",
			"parity":  "Parität",
			"partial": "Teilweise",
			"gap":     "Lücke",
		},
	},
	SummaryTemplates: []map[models.Column]string{
		{
			models.ColProblemStatement:      "Marktdefinition",
			models.ColTargetSegment:         "Zu validierendes Kernsegment",
			models.ColMethod:                "JTBD + Wettbewerbscluster + gewichtetes Scoring",
			models.ColTopFindings:           "Marktdefinition aus Brief/Repo-Kontext ergänzen",
			models.ColStrategicImplications: "Kategoriegrenze vor Scoring klären",
		},
		{
			models.ColProblemStatement:      "Positionierungsstatement",
			models.ColTargetSegment:         "Priorisiertes GTM-Segment",
			models.ColMethod:                "Relative Positionierung vs Direkt/Angrenzend/Ersatz",
			models.ColTopFindings:           "Definieren, worin konkurriert wird und worin nicht",
			models.ColStrategicImplications: "Scope- und Kategorie-Drift vermeiden",
		},
		{
			models.ColProblemStatement:      "Strategische Implikationen",
			models.ColTargetSegment:         "Produkt- und GTM-Teams",
			models.ColMethod:                "Gap-Synthese aus Benchmark und Feature-Matrix",
			models.ColTopFindings:           "Top 2-3 Umsetzungswetten priorisieren",
			models.ColStrategicImplications: "Benchmark in Roadmap-Entscheidungen überführen",
		},
	},
	Warnings: WarningTemplates{
		Title:               "Warnungen:",
		SourcesBelowMinimum: "[WARN] %s: Quellen < 3",
		MissingOfficial:     "[WARN] %s: offizielle Quelle fehlt",
		MissingThirdParty:   "[WARN] %s: Drittquelle fehlt",
	},
}
