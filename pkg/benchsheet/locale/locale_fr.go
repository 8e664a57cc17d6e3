package locale

import "github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"

var french = &Locale{
	Code:      "fr",
	Name:      "French",
	Script:    ScriptLatin,
	StopWords: []string{"le", "la", "les", "de", "des", "et", "pour", "avec", "une"},
	SheetTitles: map[models.SheetKind]string{
		models.SheetSummary:       "Résumé",
		models.SheetBenchmark:     "Benchmark",
		models.SheetFeatureMatrix: "Matrice Fonctionnelle",
		models.SheetPricing:       "Prix-GTM",
		models.SheetSources:       "Sources",
	},
	Headers: map[models.Column]string{
		models.ColProblemStatement:      "Définition du Problème",
		models.ColTargetSegment:         "Segment Cible",
		models.ColMethod:                "Méthode",
		models.ColScope:                 "Périmètre",
		models.ColTopFindings:           "Principaux Résultats",
		models.ColStrategicImplications: "Implications Stratégiques",

		models.ColRank:              "Rang",
		models.ColCompanyProduct:    "Entreprise/Produit",
		models.ColCategory:          "Catégorie(Direct/Adjacent/Substitut)",
		models.ColTargetUser:        "Utilisateur Cible",
		models.ColCoreJTBD:          "JTBD Central",
		models.ColPlatform:          "Plateforme",
		models.ColGeoFocus:          "Cible Géographique",
		models.ColTractionScore:     "Score de Traction(1-5)",
		models.ColCapabilityScore:   "Score Capacité Produit(1-5)",
		models.ColMonetizationScore: "Score Monétisation(1-5)",
		models.ColSentimentScore:    "Score Sentiment Utilisateur(1-5)",
		models.ColExecutionScore:    "Score Maturité Exécution(1-5)",
		models.ColEvidenceScore:     "Score Confiance Preuve(1-5)",
		models.ColWeightedTotal:     "Total Pondéré(0-100)",
		models.ColKeyStrength:       "Force Clé",
		models.ColKeyWeakness:       "Faiblesse Clé",
		models.ColThreatLevel:       "Niveau de Menace",

		models.ColL1Capability:       "Capacité L1",
		models.ColL2Module:           "Module L2",
		models.ColL3Feature:          "Fonctionnalité L3",
		models.ColOurStatus:          "Notre Statut(None/Planned/Live)",
		models.ColCompetitorCoverage: "Couverture Concurrent(0/1)",
		models.ColParityGap:          "Écart de Parité",
		models.ColImportance:         "Importance(H/M/L)",
		models.ColPriority:           "Priorité",

		models.ColProduct:             "Produit",
		models.ColPricingModel:        "Modèle Tarifaire",
		models.ColEntryPrice:          "Prix d'Entrée",
		models.ColTopTierPrice:        "Prix Max",
		models.ColTrialFreemium:       "Essai/Freemium",
		models.ColPackagingUnit:       "Unité de Packaging",
		models.ColPrimaryChannel:      "Canal Principal(SEO/PLG/Sales/Partner)",
		models.ColPositioningClaim:    "Promesse de Positionnement",
		models.ColConversionFrictions: "Friction de Conversion Observée",

		models.ColSourceType:      "Type de Source(Official/Store/Review/Media/Research)",
		models.ColURL:             "URL",
		models.ColTitle:           "Titre",
		models.ColPublishedDate:   "Date de Publication",
		models.ColAccessDate:      "Date d'Accès",
		models.ColClaim:           "Assertion",
		models.ColEvidenceSnippet: "Extrait de Preuve",
		models.ColConfidence:      "Confiance(Haut/Moyen/Bas)",
	},
	Enums: map[models.EnumKind]map[string]string{
		models.EnumThreat: {
			"high":   "Élevé",
			"medium": "Moyen",
			"low":    "Faible",
		},
		models.EnumCategory: {
			"direct":     "Direct",
			"adjacent":   "Adjacent",
			"substitute": "Substitut",
		},
		models.EnumConfidence: {
			"high": "Haut",
			"med":  "Moyen",
			"low":  "Bas",
		},
		models.EnumOurStatus: {
			"none":    "Aucun",
			"planned": "Planifié",
			"live":    "En ligne",
		},
		models.EnumParityGap: {
			"lead":    "Avance",
			"parity":  "Parité",
			"partial": "Partiel",
			"gap":     "Écart",
		},
	},
	SummaryTemplates: []map[models.Column]string{
		{
			models.ColProblemStatement:      "Définition du Marché",
			models.ColTargetSegment:         "Segment principal à valider",
			models.ColMethod:                "JTBD + classification concurrentielle + score pondéré",
			models.ColTopFindings:           "Compléter selon brief/contexte projet",
			models.ColStrategicImplications: "Clarifier la frontière de catégorie avant scoring",
		},
		{
			models.ColProblemStatement:      "Positionnement",
			models.ColTargetSegment:         "Segment GTM prioritaire",
			models.ColMethod:                "Positionnement relatif vs Direct/Adjacent/Substitut",
			models.ColTopFindings:           "Définir ce qui est comparé et ce qui ne l'est pas",
			models.ColStrategicImplications: "Éviter dérive de périmètre et de catégorie",
		},
		{
			models.ColProblemStatement:      "Implications Stratégiques",
			models.ColTargetSegment:         "Parties prenantes produit et GTM",
			models.ColMethod:                "Synthèse des écarts benchmark + matrice fonctionnelle",
			models.ColTopFindings:           "Prioriser 2-3 paris d'exécution",
			models.ColStrategicImplications: "Transformer le benchmark en décisions roadmap",
		},
	},
	Warnings: WarningTemplates{
		Title:               "Avertissements:",
		SourcesBelowMinimum: "[WARN] %s: sources < 3",
		MissingOfficial:     "[WARN] %s: source officielle manquante",
		MissingThirdParty:   "[WARN] %s: source tierce manquante",
	},
}
