package benchsheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/detect"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/schema"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/scoring"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/validate"
)

// Build maps payload onto the report schema, ranks the benchmark, validates
// source coverage and localizes every sheet. It fails only on invalid options.
func Build(payload models.Payload, opts Options) (*models.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	catalog := opts.catalog()
	log := opts.Logger

	lang, err := ChooseLanguage(payload, opts)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("lang", lang).Bool("auto", opts.IsAutoLang()).Msg("language selected")

	mapper := schema.NewMapper(catalog, log)
	sections := mapper.Sections(payload)
	rows := make(map[models.SheetKind][]models.Row, len(models.SheetOrder))
	for _, kind := range models.SheetOrder {
		rows[kind] = mapper.MapRows(sections[kind], kind)
	}

	if len(rows[models.SheetSummary]) == 0 {
		rows[models.SheetSummary] = DefaultSummary(opts, lang)
	}

	scored := scoring.NewEngine(log).ScoreAndRank(rows[models.SheetBenchmark], opts.Weights, opts.TopN)
	bench := make([]models.Row, len(scored))
	for i, s := range scored {
		bench[i] = s.Row
	}
	rows[models.SheetBenchmark] = bench

	warnings := validate.Sources(rows[models.SheetSources])
	for i := range warnings {
		warnings[i].Message = catalog.Warning(lang, warnings[i])
	}

	report := &models.Report{Language: lang, Warnings: warnings}
	for _, kind := range models.SheetOrder {
		mapper.LocalizeRows(rows[kind], kind, lang)
		report.Sheets = append(report.Sheets, models.SheetData{
			Kind:  kind,
			Title: catalog.SheetTitle(lang, kind),
			Rows:  rows[kind],
		})
	}
	return report, nil
}

// ChooseLanguage returns the explicit language when one is set, otherwise the
// language detected from the brief and payload as selected by LangSource.
func ChooseLanguage(payload models.Payload, opts Options) (string, error) {
	catalog := opts.catalog()
	if !opts.IsAutoLang() {
		code, ok := catalog.Resolve(opts.Lang)
		if !ok {
			return "", NewConfigError("lang", fmt.Errorf("%w: unsupported language %q", ErrInvalidOptions, opts.Lang))
		}
		return code, nil
	}

	src, _ := detect.ParseSource(string(opts.LangSource))
	input, err := DetectionInput(payload)
	if err != nil {
		return "", NewConfigError("input", err)
	}
	return detect.New(catalog).Detect(detect.Text(opts.Brief, input, src)), nil
}

// DetectionInput returns the source document text recorded by the loader or,
// failing that, payload serialized as compact JSON with non-ASCII text kept
// verbatim. An empty payload yields "".
func DetectionInput(payload models.Payload) (string, error) {
	if payload.Text != "" {
		return payload.Text, nil
	}
	if payload.IsEmpty() {
		return "", nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload.Map()); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ScopeText describes the analysis scope for the summary sheet.
func ScopeText(opts Options) string {
	var parts []string
	if opts.ProjectPath != "" {
		parts = append(parts, "project="+opts.ProjectPath)
	}
	if strings.TrimSpace(opts.Brief) != "" {
		parts = append(parts, "brief provided")
	}
	parts = append(parts,
		"region="+opts.Region,
		"top_n="+strconv.Itoa(opts.TopN),
		"window="+strconv.Itoa(opts.PeriodMonths)+"m",
	)
	return strings.Join(parts, "; ")
}

// DefaultSummary synthesizes the summary rows from the locale templates.
// The brief, when given, replaces the first row's findings.
func DefaultSummary(opts Options, lang string) []models.Row {
	scope := ScopeText(opts)
	templates := opts.catalog().Locale(lang).SummaryTemplates

	rows := make([]models.Row, 0, len(templates))
	for i, tpl := range templates {
		row := models.Row{
			models.ColProblemStatement:      models.Text(tpl[models.ColProblemStatement]),
			models.ColTargetSegment:         models.Text(tpl[models.ColTargetSegment]),
			models.ColMethod:                models.Text(tpl[models.ColMethod]),
			models.ColScope:                 models.Text(scope),
			models.ColTopFindings:           models.Text(tpl[models.ColTopFindings]),
			models.ColStrategicImplications: models.Text(tpl[models.ColStrategicImplications]),
		}
		if i == 0 && strings.TrimSpace(opts.Brief) != "" {
			row[models.ColTopFindings] = models.Text(opts.Brief)
		}
		rows = append(rows, row)
	}
	return rows
}
