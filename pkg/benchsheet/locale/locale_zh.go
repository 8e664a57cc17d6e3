package locale

import "github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"

var chinese = &Locale{
	Code:   "zh",
	Name:   "Chinese",
	Script: ScriptHan,
	SheetTitles: map[models.SheetKind]string{
		models.SheetSummary:       "摘要",
		models.SheetBenchmark:     "竞品基准",
		models.SheetFeatureMatrix: "功能矩阵",
		models.SheetPricing:       "定价-GTM",
		models.SheetSources:       "证据来源",
	},
	Headers: map[models.Column]string{
		models.ColProblemStatement:      "问题定义",
		models.ColTargetSegment:         "目标用户",
		models.ColMethod:                "方法",
		models.ColScope:                 "范围",
		models.ColTopFindings:           "关键发现",
		models.ColStrategicImplications: "战略含义",

		models.ColRank:              "排名",
		models.ColCompanyProduct:    "公司/产品",
		models.ColCategory:          "分类(直接/邻近/替代)",
		models.ColTargetUser:        "目标人群",
		models.ColCoreJTBD:          "核心JTBD",
		models.ColPlatform:          "平台",
		models.ColGeoFocus:          "地域聚焦",
		models.ColTractionScore:     "增长势能评分(1-5)",
		models.ColCapabilityScore:   "产品能力评分(1-5)",
		models.ColMonetizationScore: "商业化评分(1-5)",
		models.ColSentimentScore:    "用户口碑评分(1-5)",
		models.ColExecutionScore:    "执行成熟度评分(1-5)",
		models.ColEvidenceScore:     "证据可信度评分(1-5)",
		models.ColWeightedTotal:     "加权总分(0-100)",
		models.ColKeyStrength:       "主要优势",
		models.ColKeyWeakness:       "主要短板",
		models.ColThreatLevel:       "威胁等级",

		models.ColL1Capability:       "L1 能力域",
		models.ColL2Module:           "L2 模块",
		models.ColL3Feature:          "L3 功能",
		models.ColOurStatus:          "我方状态(None/Planned/Live)",
		models.ColCompetitorCoverage: "竞品覆盖(0/1)",
		models.ColParityGap:          "对位差距",
		models.ColImportance:         "重要性(H/M/L)",
		models.ColPriority:           "优先级",

		models.ColProduct:             "产品",
		models.ColPricingModel:        "定价模型",
		models.ColEntryPrice:          "入门价格",
		models.ColTopTierPrice:        "最高档价格",
		models.ColTrialFreemium:       "试用/免费",
		models.ColPackagingUnit:       "计费单位",
		models.ColPrimaryChannel:      "主要渠道(SEO/PLG/Sales/Partner)",
		models.ColPositioningClaim:    "定位主张",
		models.ColConversionFrictions: "转化阻力观察",

		models.ColSourceType:      "来源类型(官方/商店/评测/媒体/研究)",
		models.ColURL:             "链接",
		models.ColTitle:           "标题",
		models.ColPublishedDate:   "发布日期",
		models.ColAccessDate:      "访问日期",
		models.ColClaim:           "结论主张",
		models.ColEvidenceSnippet: "证据摘录",
		models.ColConfidence:      "可信度(高/中/低)",
	},
	Enums: map[models.EnumKind]map[string]string{
		models.EnumThreat: {
			"high":   "高",
			"medium": "中",
			"low":    "低",
		},
		models.EnumCategory: {
			"direct":     "直接竞品",
			"adjacent":   "邻近竞品",
			"substitute": "替代方案",
		},
		models.EnumConfidence: {
			"high": "高",
			"med":  "中",
			"low":  "低",
		},
		models.EnumOurStatus: {
			"none":    "无",
			"planned": "规划中",
			"live":    "已上线",
		},
		models.EnumParityGap: {
			"lead":    "领先",
			"parity":  "同等",
			"partial": "部分差距",
			"gap":     "差距",
		},
	},
	SummaryTemplates: []map[models.Column]string{
		{
			models.ColProblemStatement:      "市场定义",
			models.ColTargetSegment:         "待验证的核心用户群",
			models.ColMethod:                "JTBD + 竞品分层 + 加权评分",
			models.ColTopFindings:           "基于需求描述或项目上下文补全市场定义",
			models.ColStrategicImplications: "先明确品类边界，再进入评分",
		},
		{
			models.ColProblemStatement:      "定位陈述",
			models.ColTargetSegment:         "优先服务的GTM用户段",
			models.ColMethod:                "相对定位(直接/邻近/替代)",
			models.ColTopFindings:           "定义“我们比什么”与“我们不比什么”",
			models.ColStrategicImplications: "防止范围蔓延与定位漂移",
		},
		{
			models.ColProblemStatement:      "战略含义",
			models.ColTargetSegment:         "产品与增长决策团队",
			models.ColMethod:                "基准表 + 功能矩阵差距综合",
			models.ColTopFindings:           "提炼2-3个最高优先级执行方向",
			models.ColStrategicImplications: "将竞品结论直接转为路线图决策",
		},
	},
	Warnings: WarningTemplates{
		Title:               "警告:",
		SourcesBelowMinimum: "[WARN] %s: 来源少于3条",
		MissingOfficial:     "[WARN] %s: 缺少官方来源",
		MissingThirdParty:   "[WARN] %s: 缺少第三方来源",
	},
}
