package benchsheet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/detect"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/input"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/locale"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/scoring"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/xlsx"
	"github.com/xuri/excelize/v2"
)

const (
	zhBrief = "为家庭用户构建智能烹饪应用的竞品分析报告"
	jaBrief = "家庭向けの料理アプリを作りたいです"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return opts
}

func titles(code string) []string {
	c := locale.Builtin()
	out := make([]string, 0, len(models.SheetOrder))
	for _, kind := range models.SheetOrder {
		out = append(out, c.SheetTitle(code, kind))
	}
	return out
}

func benchmarkPayload() models.Payload {
	return models.Payload{Sections: []models.Section{
		{Key: "竞品基准", Rows: []models.RawRow{
			{
				"公司/产品": "Acme", "分类(直接/邻近/替代)": "直接竞品",
				"增长势能评分(1-5)": 2, "产品能力评分(1-5)": 2, "商业化评分(1-5)": 2,
				"用户口碑评分(1-5)": 2, "执行成熟度评分(1-5)": 2, "证据可信度评分(1-5)": 2,
			},
			{
				"company_product": "Beta", "category": "Platform play",
				"traction_score": "4.5", "product_capability_score": 4.5, "monetization_score": 4.5,
				"user_sentiment_score": 4.5, "execution_maturity_score": 4.5, "evidence_confidence_score": 4.5,
			},
			{"company_product": "Gamma", "traction_score": 5, "threat_level": "中"},
		}},
		{Key: "Sources", Rows: []models.RawRow{
			{"product": "Acme", "source_type": "review"},
			{"product": "Acme", "source_type": "Review site"},
		}},
		{Key: "appendix", Rows: []models.RawRow{{"note": "ignored"}}},
	}}
}

func TestBuildEmptyPayload(t *testing.T) {
	report, err := Build(models.Payload{}, testOptions())
	require.NoError(t, err)

	assert.Equal(t, "en", report.Language)
	assert.Equal(t, titles("en"), report.Titles())
	require.Len(t, report.Sheets, 5)

	summary, _ := report.Sheet(models.SheetSummary)
	require.Len(t, summary.Rows, 3)
	assert.Equal(t, "region=global; top_n=8; window=24m", summary.Rows[0].Get(models.ColScope).String())
	assert.Equal(t, "Market Definition", summary.Rows[0].Get(models.ColProblemStatement).String())

	bench, _ := report.Sheet(models.SheetBenchmark)
	assert.Empty(t, bench.Rows)
	assert.Empty(t, report.Warnings)
}

func TestBuildDetectsIdeographBrief(t *testing.T) {
	opts := testOptions()
	opts.Brief = zhBrief

	report, err := Build(models.Payload{}, opts)
	require.NoError(t, err)

	assert.Equal(t, "zh", report.Language)
	assert.Equal(t, titles("zh"), report.Titles())

	summary, _ := report.Sheet(models.SheetSummary)
	assert.Equal(t, zhBrief, summary.Rows[0].Get(models.ColTopFindings).String())
	assert.Equal(t, "brief provided; region=global; top_n=8; window=24m", summary.Rows[1].Get(models.ColScope).String())
}

func TestExplicitLanguageOverridesDetection(t *testing.T) {
	opts := testOptions()
	opts.Brief = jaBrief

	lang, err := ChooseLanguage(models.Payload{}, opts)
	require.NoError(t, err)
	assert.Equal(t, "ja", lang)

	tests := []struct {
		lang     string
		expected string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"de-AT", "de"},
		{"zh_CN", "zh"},
		{"ko", "ko"},
	}
	for _, tt := range tests {
		opts.Lang = tt.lang
		report, err := Build(benchmarkPayload(), opts)
		require.NoError(t, err, tt.lang)
		assert.Equal(t, tt.expected, report.Language, tt.lang)
		assert.Equal(t, titles(tt.expected), report.Titles(), tt.lang)
	}
}

func TestLangSourceSelectsDetectionText(t *testing.T) {
	payload := models.Payload{Sections: []models.Section{
		{Key: "benchmark", Rows: []models.RawRow{{"key_strength": "가정용 요리 추천 기능이 강함"}}},
	}}

	tests := []struct {
		source   detect.Source
		expected string
	}{
		{detect.SourceBrief, "zh"},
		{detect.SourceInput, "ko"},
	}
	for _, tt := range tests {
		opts := testOptions()
		opts.Brief = zhBrief
		opts.LangSource = tt.source
		lang, err := ChooseLanguage(payload, opts)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, lang, tt.source)
	}
}

func TestDetectionSeesTextOutsideSections(t *testing.T) {
	doc := `{"contexto": "análisis de la competencia para los productos con una estrategia de precios", "benchmark": []}`
	payload, err := input.LoadJSON(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, payload.Sections, 1)

	text, err := DetectionInput(payload)
	require.NoError(t, err)
	assert.Contains(t, text, "estrategia de precios")

	for _, source := range []detect.Source{detect.SourceInput, detect.SourceBoth} {
		opts := testOptions()
		opts.LangSource = source
		lang, err := ChooseLanguage(payload, opts)
		require.NoError(t, err)
		assert.Equal(t, "es", lang, source)
	}
}

func TestBuildBenchmarkPipeline(t *testing.T) {
	opts := testOptions()
	opts.Lang = "en"
	report, err := Build(benchmarkPayload(), opts)
	require.NoError(t, err)
	require.Equal(t, "en", report.Language)

	bench, _ := report.Sheet(models.SheetBenchmark)
	require.Len(t, bench.Rows, 3)

	beta, acme, gamma := bench.Rows[0], bench.Rows[1], bench.Rows[2]
	assert.Equal(t, "Beta", beta.Get(models.ColCompanyProduct).String())
	assert.Equal(t, models.Number(1), beta.Get(models.ColRank))
	assert.Equal(t, models.Number(90), beta.Get(models.ColWeightedTotal))
	assert.Equal(t, models.Text("High"), beta.Get(models.ColThreatLevel))
	assert.Equal(t, models.Text("Platform play"), beta.Get(models.ColCategory))

	assert.Equal(t, "Acme", acme.Get(models.ColCompanyProduct).String())
	assert.Equal(t, models.Number(40), acme.Get(models.ColWeightedTotal))
	assert.Equal(t, models.Text("Low"), acme.Get(models.ColThreatLevel))
	assert.Equal(t, models.Text("Direct"), acme.Get(models.ColCategory))

	assert.Equal(t, "Gamma", gamma.Get(models.ColCompanyProduct).String())
	assert.Equal(t, models.Number(3), gamma.Get(models.ColRank))
	assert.True(t, gamma.Get(models.ColWeightedTotal).IsEmpty())
	assert.Equal(t, models.Text("Medium"), gamma.Get(models.ColThreatLevel))

	require.Len(t, report.Warnings, 2)
	assert.Equal(t, "[WARN] Acme: sources < 3", report.Warnings[0].Message)
	assert.Equal(t, "[WARN] Acme: missing official source", report.Warnings[1].Message)
}

func TestBuildTopN(t *testing.T) {
	opts := testOptions()
	opts.TopN = 1
	report, err := Build(benchmarkPayload(), opts)
	require.NoError(t, err)
	bench, _ := report.Sheet(models.SheetBenchmark)
	require.Len(t, bench.Rows, 1)
	assert.Equal(t, "Beta", bench.Rows[0].Get(models.ColCompanyProduct).String())
}

func TestBuildLocalizedWarnings(t *testing.T) {
	opts := testOptions()
	opts.Lang = "zh"
	report, err := Build(benchmarkPayload(), opts)
	require.NoError(t, err)
	require.Len(t, report.Warnings, 2)
	assert.Equal(t, "[WARN] Acme: 来源少于3条", report.Warnings[0].Message)

	bench, _ := report.Sheet(models.SheetBenchmark)
	assert.Equal(t, models.Text("高"), bench.Rows[0].Get(models.ColThreatLevel))
}

func TestBuildKeepsPayloadSummary(t *testing.T) {
	payload := models.Payload{Sections: []models.Section{
		{Key: "Résumé", Rows: []models.RawRow{{"Problem Statement": "Custom"}}},
	}}
	report, err := Build(payload, testOptions())
	require.NoError(t, err)
	summary, _ := report.Sheet(models.SheetSummary)
	require.Len(t, summary.Rows, 1)
	assert.Equal(t, "Custom", summary.Rows[0].Get(models.ColProblemStatement).String())
	assert.True(t, summary.Rows[0].Get(models.ColScope).IsEmpty())
}

func TestScopeText(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Options)
		expected string
	}{
		{"defaults", func(*Options) {}, "region=global; top_n=8; window=24m"},
		{"project", func(o *Options) { o.ProjectPath = "apps/cook" }, "project=apps/cook; region=global; top_n=8; window=24m"},
		{"blank brief", func(o *Options) { o.Brief = "   " }, "region=global; top_n=8; window=24m"},
		{"all", func(o *Options) {
			o.ProjectPath, o.Brief, o.Region, o.TopN, o.PeriodMonths = "p", "b", "apac", 3, 12
		}, "project=p; brief provided; region=apac; top_n=3; window=12m"},
	}

	for _, tt := range tests {
		opts := DefaultOptions()
		tt.mutate(&opts)
		if got := ScopeText(opts); got != tt.expected {
			t.Errorf("%s: ScopeText() = %q, expected %q", tt.name, got, tt.expected)
		}
	}
}

func TestDetectionInput(t *testing.T) {
	got, err := DetectionInput(models.Payload{})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = DetectionInput(models.Payload{Sections: []models.Section{
		{Key: "sources", Rows: []models.RawRow{{"title": "<官网>"}}},
	}})
	require.NoError(t, err)
	assert.Equal(t, `{"sources":[{"title":"<官网>"}]}`, got)
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		field  string
		target error
	}{
		{"weights", func(o *Options) { o.Weights = scoring.Weights{20, 30, 15, 20, 10, 6} }, "weights", ErrInvalidWeights},
		{"top_n", func(o *Options) { o.TopN = 0 }, "top_n", ErrInvalidOptions},
		{"period", func(o *Options) { o.PeriodMonths = -1 }, "period_months", ErrInvalidOptions},
		{"lang", func(o *Options) { o.Lang = "pt" }, "lang", ErrInvalidOptions},
		{"lang_source", func(o *Options) { o.LangSource = "title" }, "lang_source", ErrInvalidOptions},
	}

	for _, tt := range tests {
		opts := DefaultOptions()
		tt.mutate(&opts)
		err := opts.Validate()

		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: Validate() = %v, expected *ConfigError", tt.name, err)
			continue
		}
		assert.Equal(t, tt.field, cfgErr.Field, tt.name)
		assert.ErrorIs(t, err, tt.target, tt.name)
	}

	assert.NoError(t, DefaultOptions().Validate())
}

func TestGenerateInvalidOptionsWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "bench.xlsx")
	opts := testOptions()
	opts.TopN = 0

	_, err := Generate(path, models.Payload{}, opts)
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateIdeographBriefEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bench.xlsx")
	opts := testOptions()
	opts.Brief = zhBrief

	report, err := Generate(path, models.Payload{}, opts)
	require.NoError(t, err)
	assert.Equal(t, "zh", report.Language)

	summary, err := xlsx.InspectFile(path)
	require.NoError(t, err)
	require.Len(t, summary.Sheets, 5)
	for i, title := range titles("zh") {
		assert.Equal(t, title, summary.Sheets[i].Name)
	}
	assert.Equal(t, xlsx.DefaultApplication, summary.Application)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, titles("zh"), f.GetSheetList())

	header, err := f.GetCellValue("摘要", "A1")
	require.NoError(t, err)
	assert.Equal(t, "问题定义", header)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not remain")
}

func TestGenerateBenchmarkFormula(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.xlsx")
	opts := testOptions()
	opts.Lang = "en"
	_, err := Generate(path, benchmarkPayload(), opts)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	formula, err := f.GetCellFormula("Benchmark", "N2")
	require.NoError(t, err)
	assert.Equal(t, "ROUND(H2/5*20+I2/5*30+J2/5*15+K2/5*20+L2/5*10+M2/5*5,2)", formula)
	value, err := f.GetCellValue("Benchmark", "N2")
	require.NoError(t, err)
	assert.Equal(t, "90", value)

	formula, err = f.GetCellFormula("Benchmark", "N4")
	require.NoError(t, err)
	assert.Empty(t, formula, "row without all six scores has no formula")

	rank, err := f.GetCellValue("Benchmark", "A4")
	require.NoError(t, err)
	assert.Equal(t, "3", rank)
}

func TestGenerateOutputRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.xlsx")
	opts := testOptions()
	opts.Lang = "fr"

	first, err := Generate(path, benchmarkPayload(), opts)
	require.NoError(t, err)

	payload, err := input.Load(path)
	require.NoError(t, err)
	second, err := Build(payload, opts)
	require.NoError(t, err)

	for _, kind := range models.SheetOrder {
		a, _ := first.Sheet(kind)
		b, _ := second.Sheet(kind)
		assert.Equal(t, a.Rows, b.Rows, kind)
	}
	assert.Equal(t, first.Warnings, second.Warnings)
}
