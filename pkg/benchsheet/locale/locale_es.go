package locale

import "github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"

var spanish = &Locale{
	Code:      "es",
	Name:      "Spanish",
	Script:    ScriptLatin,
	StopWords: []string{"de", "la", "para", "con", "que", "los", "las", "una", "por"},
	SheetTitles: map[models.SheetKind]string{
		models.SheetSummary:       "Resumen",
		models.SheetBenchmark:     "Benchmark",
		models.SheetFeatureMatrix: "Matriz de Funciones",
		models.SheetPricing:       "Precios-GTM",
		models.SheetSources:       "Fuentes",
	},
	Headers: map[models.Column]string{
		models.ColProblemStatement:      "Definición del Problema",
		models.ColTargetSegment:         "Segmento Objetivo",
		models.ColMethod:                "Método",
		models.ColScope:                 "Alcance",
		models.ColTopFindings:           "Hallazgos Clave",
		models.ColStrategicImplications: "Implicaciones Estratégicas",

		models.ColRank:              "Ranking",
		models.ColCompanyProduct:    "Empresa/Producto",
		models.ColCategory:          "Categoría(Directo/Adyacente/Sustituto)",
		models.ColTargetUser:        "Usuario Objetivo",
		models.ColCoreJTBD:          "JTBD Principal",
		models.ColPlatform:          "Plataforma",
		models.ColGeoFocus:          "Foco Geográfico",
		models.ColTractionScore:     "Score de Tracción(1-5)",
		models.ColCapabilityScore:   "Score de Capacidad de Producto(1-5)",
		models.ColMonetizationScore: "Score de Monetización(1-5)",
		models.ColSentimentScore:    "Score de Opinión de Usuario(1-5)",
		models.ColExecutionScore:    "Score de Madurez de Ejecución(1-5)",
		models.ColEvidenceScore:     "Score de Confianza de Evidencia(1-5)",
		models.ColWeightedTotal:     "Total Ponderado(0-100)",
		models.ColKeyStrength:       "Fortaleza Clave",
		models.ColKeyWeakness:       "Debilidad Clave",
		models.ColThreatLevel:       "Nivel de Amenaza",

		models.ColL1Capability:       "Capacidad L1",
		models.ColL2Module:           "Módulo L2",
		models.ColL3Feature:          "Función L3",
		models.ColOurStatus:          "Estado Nuestro(None/Planned/Live)",
		models.ColCompetitorCoverage: "Cobertura de Competidor(0/1)",
		models.ColParityGap:          "Brecha de Paridad",
		models.ColImportance:         "Importancia(H/M/L)",
		models.ColPriority:           "Prioridad",

		models.ColProduct:             "Producto",
		models.ColPricingModel:        "Modelo de Precio",
		models.ColEntryPrice:          "Precio de Entrada",
		models.ColTopTierPrice:        "Precio Superior",
		models.ColTrialFreemium:       "Prueba/Freemium",
		models.ColPackagingUnit:       "Unidad de Paquete",
		models.ColPrimaryChannel:      "Canal Principal(SEO/PLG/Sales/Partner)",
		models.ColPositioningClaim:    "Propuesta de Posicionamiento",
		models.ColConversionFrictions: "Fricciones de Conversión Observadas",

		models.ColSourceType:      "Tipo de Fuente(Official/Store/Review/Media/Research)",
		models.ColURL:             "URL",
		models.ColTitle:           "Título",
		models.ColPublishedDate:   "Fecha de Publicación",
		models.ColAccessDate:      "Fecha de Acceso",
		models.ColClaim:           "Afirmación",
		models.ColEvidenceSnippet: "Extracto de Evidencia",
		models.ColConfidence:      "Confianza(Alta/Media/Baja)",
	},
	Enums: map[models.EnumKind]map[string]string{
		models.EnumThreat: {
			"high":   "Alto",
			"medium": "Medio",
			"low":    "Bajo",
		},
		models.EnumCategory: {
			"direct":     "Directo",
			"adjacent":   "Adyacente",
			"substitute": "Sustituto",
		},
		models.EnumConfidence: {
			"high": "Alta",
			"med":  "Media",
			"low":  "Baja",
		},
		models.EnumOurStatus: {
			"none":    "Ninguno",
			"planned": "Planificado",
			"live":    "Activo",
		},
		models.EnumParityGap: {
			"lead":    "Lidera",
			"parity":  "Paridad",
			"partial": "Parcial",
			"gap":     "Brecha",
		},
	},
	SummaryTemplates: []map[models.Column]string{
		{
			models.ColProblemStatement:      "Definición de Mercado",
			models.ColTargetSegment:         "Segmento principal por validar",
			models.ColMethod:                "JTBD + clasificación de competidores + scoring ponderado",
			models.ColTopFindings:           "Completar definición de mercado según brief/contexto",
			models.ColStrategicImplications: "Aclarar frontera de categoría antes de puntuar",
		},
		{
			models.ColProblemStatement:      "Declaración de Posicionamiento",
			models.ColTargetSegment:         "Segmento GTM prioritario",
			models.ColMethod:                "Posicionamiento relativo vs Directo/Adyacente/Sustituto",
			models.ColTopFindings:           "Definir en qué competir y en qué no",
			models.ColStrategicImplications: "Evitar deriva de alcance y categoría",
		},
		{
			models.ColProblemStatement:      "Implicaciones Estratégicas",
			models.ColTargetSegment:         "Stakeholders de producto y GTM",
			models.ColMethod:                "Síntesis de brechas desde benchmark y matriz de funciones",
			models.ColTopFindings:           "Priorizar 2-3 apuestas de ejecución",
			models.ColStrategicImplications: "Convertir benchmark en decisiones de roadmap",
		},
	},
	Warnings: WarningTemplates{
		Title:               "Advertencias:",
		SourcesBelowMinimum: "[WARN] %s: fuentes < 3",
		MissingOfficial:     "[WARN] %s: falta fuente oficial",
		MissingThirdParty:   "[WARN] %s: falta fuente de terceros",
	},
}
