// Package benchsheet builds multilingual competitive benchmark workbooks.
package benchsheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/detect"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/locale"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/scoring"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/xlsx"
)

// LangAuto selects the output language by detection.
const LangAuto = "auto"

// Options configures report generation.
type Options struct {
	// Brief is the free-text requirement brief. It feeds language detection
	// and replaces the first default summary finding.
	Brief string
	// ProjectPath is an optional project label shown in the summary scope.
	ProjectPath string
	// Region is the target market label.
	Region string
	// TopN caps the number of benchmark rows.
	TopN int
	// PeriodMonths is the evidence lookback window.
	PeriodMonths int
	// Weights are the six scoring weights.
	Weights scoring.Weights
	// Lang is LangAuto or a language tag resolvable by the catalog.
	Lang string
	// LangSource selects the text used for detection.
	LangSource detect.Source
	// Application names the producer in package metadata.
	Application string

	// Catalog is the locale registry. If nil, locale.Builtin() is used.
	Catalog *locale.Catalog
	// Logger receives debug events. The zero value discards them.
	Logger zerolog.Logger
	// Now returns the document timestamp. If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Region:       "global",
		TopN:         8,
		PeriodMonths: 24,
		Weights:      scoring.DefaultWeights,
		Lang:         LangAuto,
		LangSource:   detect.SourceBoth,
		Application:  xlsx.DefaultApplication,
		Logger:       zerolog.Nop(),
	}
}

func (o Options) catalog() *locale.Catalog {
	if o.Catalog != nil {
		return o.Catalog
	}
	return locale.Builtin()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// IsAutoLang reports whether the language is chosen by detection.
func (o Options) IsAutoLang() bool {
	lang := strings.TrimSpace(o.Lang)
	return lang == "" || strings.EqualFold(lang, LangAuto)
}

// Validate checks every option and returns a *ConfigError naming the first
// invalid field.
func (o Options) Validate() error {
	if err := o.Weights.Validate(); err != nil {
		return NewConfigError("weights", err)
	}
	if o.TopN < 1 {
		return NewConfigError("top_n", fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidOptions, o.TopN))
	}
	if o.PeriodMonths < 0 {
		return NewConfigError("period_months", fmt.Errorf("%w: must not be negative, got %d", ErrInvalidOptions, o.PeriodMonths))
	}
	if !o.IsAutoLang() {
		if _, ok := o.catalog().Resolve(o.Lang); !ok {
			return NewConfigError("lang", fmt.Errorf("%w: unsupported language %q (supported: %s, %s)",
				ErrInvalidOptions, o.Lang, LangAuto, strings.Join(o.catalog().Codes(), ", ")))
		}
	}
	if _, ok := detect.ParseSource(string(o.LangSource)); !ok {
		return NewConfigError("lang_source", fmt.Errorf("%w: %q is not one of brief, input, both", ErrInvalidOptions, o.LangSource))
	}
	return nil
}
