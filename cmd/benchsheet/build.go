package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/config"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/detect"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/input"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/locale"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/scoring"
)

type buildFlags struct {
	outputPath   string
	inputJSON    string
	inputPath    string
	brief        string
	projectPath  string
	region       string
	topN         int
	periodMonths int
	weights      string
	lang         string
	langSource   string
	configPath   string
	logLevel     string
	logFormat    string
}

func (f *buildFlags) register(cmd *cobra.Command) {
	defaults := config.DefaultConfig()
	fs := cmd.Flags()
	fs.StringVarP(&f.outputPath, "output", "o", "", "Output .xlsx path")
	fs.StringVar(&f.inputJSON, "input-json", "", "Research payload as JSON")
	fs.StringVarP(&f.inputPath, "input", "i", "", "Research payload (.json, .yaml, .xlsx, .db)")
	fs.StringVar(&f.brief, "brief", "", "Requirement brief text")
	fs.StringVar(&f.projectPath, "project-path", "", "Project label shown in the summary scope")
	fs.StringVar(&f.region, "region", defaults.Report.Region, "Target market")
	fs.IntVar(&f.topN, "top-n", defaults.Report.TopN, "Maximum benchmark rows")
	fs.IntVar(&f.periodMonths, "period-months", defaults.Report.PeriodMonths, "Evidence window in months")
	fs.StringVar(&f.weights, "weights", defaults.Report.Weights, "Six comma-separated scoring weights summing to 100")
	fs.StringVar(&f.lang, "lang", defaults.Report.Lang, "Output language: auto, "+strings.Join(locale.Builtin().Codes(), ", "))
	fs.StringVar(&f.langSource, "lang-source", defaults.Report.LangSource, "Detection text: both, brief, input")
	fs.StringVar(&f.configPath, "config", "", "Config file (default: "+config.DefaultFile+" when present)")
	fs.StringVar(&f.logLevel, "log-level", defaults.Log.Level, "Log level")
	fs.StringVar(&f.logFormat, "log-format", defaults.Log.Format, "Log format: console, json")
	cmd.MarkFlagsMutuallyExclusive("input-json", "input")
	_ = cmd.MarkFlagRequired("output")
}

// apply overrides cfg with every flag set on the command line.
func (f *buildFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("region") {
		cfg.Report.Region = f.region
	}
	if changed("top-n") {
		cfg.Report.TopN = f.topN
	}
	if changed("period-months") {
		cfg.Report.PeriodMonths = f.periodMonths
	}
	if changed("weights") {
		cfg.Report.Weights = f.weights
	}
	if changed("lang") {
		cfg.Report.Lang = f.lang
	}
	if changed("lang-source") {
		cfg.Report.LangSource = f.langSource
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
}

func newBuildCmd() *cobra.Command {
	flags := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a benchmark workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runBuild(cmd *cobra.Command, flags *buildFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	flags.apply(cmd, cfg)

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return err
	}
	opts.Brief = flags.brief
	opts.ProjectPath = flags.projectPath
	opts.Logger = logger
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	payload, err := loadPayload(flags)
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}

	report, err := benchsheet.Generate(flags.outputPath, payload, opts)
	if err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	logger.Debug().Str("path", flags.outputPath).Msg("workbook written")

	printReport(cmd.OutOrStdout(), flags.outputPath, report, opts)
	return nil
}

func optionsFromConfig(cfg *config.Config) (benchsheet.Options, error) {
	weights, err := scoring.ParseWeights(cfg.Report.Weights)
	if err != nil {
		return benchsheet.Options{}, fmt.Errorf("invalid options: %w", benchsheet.NewConfigError("weights", err))
	}

	opts := benchsheet.DefaultOptions()
	opts.Region = cfg.Report.Region
	opts.TopN = cfg.Report.TopN
	opts.PeriodMonths = cfg.Report.PeriodMonths
	opts.Weights = weights
	opts.Lang = cfg.Report.Lang
	opts.LangSource = detect.Source(cfg.Report.LangSource)
	if cfg.Output.Application != "" {
		opts.Application = cfg.Output.Application
	}
	return opts, nil
}

func loadPayload(flags *buildFlags) (models.Payload, error) {
	switch {
	case flags.inputJSON != "":
		return input.LoadFormat(flags.inputJSON, input.FormatJSON)
	case flags.inputPath != "":
		return input.Load(flags.inputPath)
	}
	return models.Payload{}, nil
}

func printReport(w io.Writer, path string, report *models.Report, opts benchsheet.Options) {
	bench, _ := report.Sheet(models.SheetBenchmark)
	fmt.Fprintf(w, "Written: %s\n", path)
	fmt.Fprintf(w, "Language: %s\n", report.Language)
	fmt.Fprintf(w, "Sheets: %s\n", strings.Join(report.Titles(), ", "))
	fmt.Fprintf(w, "Benchmark rows: %d\n", len(bench.Rows))

	if len(report.Warnings) == 0 {
		return
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = locale.Builtin()
	}
	color.New(color.FgYellow, color.Bold).Fprintln(w, catalog.WarningTitle(report.Language))
	for _, warning := range report.Warnings {
		fmt.Fprintf(w, "- %s\n", warning.Message)
	}
}
