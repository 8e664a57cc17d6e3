package locale

import "github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"

var japanese = &Locale{
	Code:   "ja",
	Name:   "Japanese",
	Script: ScriptKana,
	SheetTitles: map[models.SheetKind]string{
		models.SheetSummary:       "サマリー",
		models.SheetBenchmark:     "ベンチマーク",
		models.SheetFeatureMatrix: "機能マトリクス",
		models.SheetPricing:       "価格・GTM",
		models.SheetSources:       "ソース",
	},
	Headers: map[models.Column]string{
		models.ColProblemStatement:      "課題定義",
		models.ColTargetSegment:         "ターゲットセグメント",
		models.ColMethod:                "手法",
		models.ColScope:                 "範囲",
		models.ColTopFindings:           "主要な発見",
		models.ColStrategicImplications: "戦略的示唆",

		models.ColRank:              "順位",
		models.ColCompanyProduct:    "企業/製品",
		models.ColCategory:          "分類(直接/隣接/代替)",
		models.ColTargetUser:        "対象ユーザー",
		models.ColCoreJTBD:          "コアJTBD",
		models.ColPlatform:          "プラットフォーム",
		models.ColGeoFocus:          "地域フォーカス",
		models.ColTractionScore:     "トラクションスコア(1-5)",
		models.ColCapabilityScore:   "製品能力スコア(1-5)",
		models.ColMonetizationScore: "収益化スコア(1-5)",
		models.ColSentimentScore:    "ユーザー評価スコア(1-5)",
		models.ColExecutionScore:    "実行成熟度スコア(1-5)",
		models.ColEvidenceScore:     "証拠信頼度スコア(1-5)",
		models.ColWeightedTotal:     "加重合計(0-100)",
		models.ColKeyStrength:       "強み",
		models.ColKeyWeakness:       "弱み",
		models.ColThreatLevel:       "脅威レベル",

		models.ColL1Capability:       "L1 能力",
		models.ColL2Module:           "L2 モジュール",
		models.ColL3Feature:          "L3 機能",
		models.ColOurStatus:          "自社ステータス(None/Planned/Live)",
		models.ColCompetitorCoverage: "競合カバー率(0/1)",
		models.ColParityGap:          "ギャップ",
		models.ColImportance:         "重要度(H/M/L)",
		models.ColPriority:           "優先度",

		models.ColProduct:             "製品",
		models.ColPricingModel:        "価格モデル",
		models.ColEntryPrice:          "開始価格",
		models.ColTopTierPrice:        "上位価格",
		models.ColTrialFreemium:       "トライアル/無料",
		models.ColPackagingUnit:       "課金単位",
		models.ColPrimaryChannel:      "主要チャネル(SEO/PLG/Sales/Partner)",
		models.ColPositioningClaim:    "ポジショニング",
		models.ColConversionFrictions: "転換障壁",

		models.ColSourceType:      "ソース種別(公式/ストア/レビュー/メディア/調査)",
		models.ColURL:             "URL",
		models.ColTitle:           "タイトル",
		models.ColPublishedDate:   "公開日",
		models.ColAccessDate:      "アクセス日",
		models.ColClaim:           "主張",
		models.ColEvidenceSnippet: "証拠抜粋",
		models.ColConfidence:      "信頼度(高/中/低)",
	},
	Enums: map[models.EnumKind]map[string]string{
		models.EnumThreat: {
			"high":   "高",
			"medium": "中",
			"low":    "低",
		},
		models.EnumCategory: {
			"direct":     "直接競合",
			"adjacent":   "隣接競合",
			"substitute": "代替",
		},
		models.EnumConfidence: {
			"high": "高",
			"med":  "中",
			"low":  "低",
		},
		models.EnumOurStatus: {
			"none":    "未対応",
			"planned": "計画中",
			"live":    "提供中",
		},
		models.EnumParityGap: {
			"lead":    "優位",
			"parity":  "同等",
			"partial": "部分ギャップ",
			"gap":     "ギャップ",
		},
	},
	SummaryTemplates: []map[models.Column]string{
		{
			models.ColProblemStatement:      "市場定義",
			models.ColTargetSegment:         "検証対象の主要ユーザー層",
			models.ColMethod:                "JTBD + 競合分類 + 加重評価",
			models.ColTopFindings:           "要件またはリポジトリ文脈から市場定義を補完",
			models.ColStrategicImplications: "評価前にカテゴリ境界を明確化",
		},
		{
			models.ColProblemStatement:      "ポジショニング",
			models.ColTargetSegment:         "優先すべきGTMセグメント",
			models.ColMethod:                "直接/隣接/代替の相対比較",
			models.ColTopFindings:           "何で勝負し、何で勝負しないかを定義",
			models.ColStrategicImplications: "スコープ拡散とポジションずれを防止",
		},
		{
			models.ColProblemStatement:      "戦略的示唆",
			models.ColTargetSegment:         "プロダクト/成長チーム",
			models.ColMethod:                "ベンチマークと機能ギャップの統合",
			models.ColTopFindings:           "優先度の高い実行テーマを2-3件抽出",
			models.ColStrategicImplications: "競合分析をロードマップ判断へ直結",
		},
	},
	Warnings: WarningTemplates{
		Title:               "警告:",
		SourcesBelowMinimum: "[WARN] %s: ソースが3件未満",
		MissingOfficial:     "[WARN] %s: 公式ソース不足",
		MissingThirdParty:   "[WARN] %s: 第三者ソース不足",
	},
}
