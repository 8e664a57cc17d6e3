package locale

import "github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"

var korean = &Locale{
	Code:   "ko",
	Name:   "Korean",
	Script: ScriptHangul,
	SheetTitles: map[models.SheetKind]string{
		models.SheetSummary:       "요약",
		models.SheetBenchmark:     "벤치마크",
		models.SheetFeatureMatrix: "기능 매트릭스",
		models.SheetPricing:       "가격-GTM",
		models.SheetSources:       "출처",
	},
	Headers: map[models.Column]string{
		models.ColProblemStatement:      "문제 정의",
		models.ColTargetSegment:         "타깃 세그먼트",
		models.ColMethod:                "방법",
		models.ColScope:                 "범위",
		models.ColTopFindings:           "핵심 발견",
		models.ColStrategicImplications: "전략적 시사점",

		models.ColRank:              "순위",
		models.ColCompanyProduct:    "회사/제품",
		models.ColCategory:          "분류(직접/인접/대체)",
		models.ColTargetUser:        "타깃 사용자",
		models.ColCoreJTBD:          "핵심 JTBD",
		models.ColPlatform:          "플랫폼",
		models.ColGeoFocus:          "지역 포커스",
		models.ColTractionScore:     "성장 점수(1-5)",
		models.ColCapabilityScore:   "제품 역량 점수(1-5)",
		models.ColMonetizationScore: "수익화 점수(1-5)",
		models.ColSentimentScore:    "사용자 평판 점수(1-5)",
		models.ColExecutionScore:    "실행 성숙도 점수(1-5)",
		models.ColEvidenceScore:     "근거 신뢰도 점수(1-5)",
		models.ColWeightedTotal:     "가중 총점(0-100)",
		models.ColKeyStrength:       "강점",
		models.ColKeyWeakness:       "약점",
		models.ColThreatLevel:       "위협 수준",

		models.ColL1Capability:       "L1 역량",
		models.ColL2Module:           "L2 모듈",
		models.ColL3Feature:          "L3 기능",
		models.ColOurStatus:          "우리 상태(None/Planned/Live)",
		models.ColCompetitorCoverage: "경쟁사 커버리지(0/1)",
		models.ColParityGap:          "격차",
		models.ColImportance:         "중요도(H/M/L)",
		models.ColPriority:           "우선순위",

		models.ColProduct:             "제품",
		models.ColPricingModel:        "가격 모델",
		models.ColEntryPrice:          "진입 가격",
		models.ColTopTierPrice:        "상위 가격",
		models.ColTrialFreemium:       "체험/무료",
		models.ColPackagingUnit:       "과금 단위",
		models.ColPrimaryChannel:      "주요 채널(SEO/PLG/Sales/Partner)",
		models.ColPositioningClaim:    "포지셔닝",
		models.ColConversionFrictions: "전환 저해 요인",

		models.ColSourceType:      "출처 유형(공식/스토어/리뷰/미디어/리서치)",
		models.ColURL:             "URL",
		models.ColTitle:           "제목",
		models.ColPublishedDate:   "게시일",
		models.ColAccessDate:      "접근일",
		models.ColClaim:           "주장",
		models.ColEvidenceSnippet: "근거 요약",
		models.ColConfidence:      "신뢰도(높음/중간/낮음)",
	},
	Enums: map[models.EnumKind]map[string]string{
		models.EnumThreat: {
			"high":   "높음",
			"medium": "중간",
			"low":    "낮음",
		},
		models.EnumCategory: {
			"direct":     "직접 경쟁",
			"adjacent":   "인접 경쟁",
			"substitute": "대체재",
		},
		models.EnumConfidence: {
			"high": "높음",
			"med":  "중간",
			"low":  "낮음",
		},
		models.EnumOurStatus: {
			"none":    "없음",
			"planned": "계획",
			"live":    "운영",
		},
		models.EnumParityGap: {
			"lead":    "우위",
			"parity":  "동등",
			"partial": "부분 격차",
			"gap":     "격차",
		},
	},
	SummaryTemplates: []map[models.Column]string{
		{
			models.ColProblemStatement:      "시장 정의",
			models.ColTargetSegment:         "검증 대상 핵심 사용자군",
			models.ColMethod:                "JTBD + 경쟁 분류 + 가중 점수",
			models.ColTopFindings:           "요구사항/레포 문맥 기반 시장 정의 보완",
			models.ColStrategicImplications: "평가 전에 카테고리 경계를 명확히",
		},
		{
			models.ColProblemStatement:      "포지셔닝 진술",
			models.ColTargetSegment:         "우선 공략 GTM 세그먼트",
			models.ColMethod:                "직접/인접/대체 상대 비교",
			models.ColTopFindings:           "무엇으로 경쟁하고 무엇은 경쟁하지 않을지 정의",
			models.ColStrategicImplications: "범위 확장과 포지션 흔들림 방지",
		},
		{
			models.ColProblemStatement:      "전략적 시사점",
			models.ColTargetSegment:         "제품 및 성장 의사결정자",
			models.ColMethod:                "벤치마크 + 기능 격차 통합",
			models.ColTopFindings:           "상위 2~3개 실행 우선순위 도출",
			models.ColStrategicImplications: "경쟁 분석을 로드맵으로 연결",
		},
	},
	Warnings: WarningTemplates{
		Title:               "경고:",
		SourcesBelowMinimum: "[WARN] %s: 출처가 3개 미만",
		MissingOfficial:     "[WARN] %s: 공식 출처 누락",
		MissingThirdParty:   "[WARN] %s: 제3자 출처 누락",
	},
}
