// Package scoring computes weighted composite scores for benchmark rows,
// ranks them and derives a default threat level.
package scoring

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/xlsx"
)

// ErrInvalidWeights is returned when a weight list is malformed, has the wrong
// length or does not sum to 100.
var ErrInvalidWeights = errors.New("invalid weights")

const (
	// WeightTotal is the required sum of the six weights.
	WeightTotal = 100.0

	weightTolerance = 1e-6
	highThreshold   = 75.0
	mediumThreshold = 55.0
)

// Weights are the six component weights in models.ScoreColumns order.
type Weights [6]float64

// DefaultWeights favors product capability, then traction and sentiment.
var DefaultWeights = Weights{20, 30, 15, 20, 10, 5}

// String renders w in the comma-separated form accepted by ParseWeights.
func (w Weights) String() string {
	parts := make([]string, len(w))
	for i, v := range w {
		parts[i] = models.FormatNumber(v)
	}
	return strings.Join(parts, ",")
}

// Sum returns the total of all six weights.
func (w Weights) Sum() float64 {
	var s float64
	for _, v := range w {
		s += v
	}
	return s
}

// ParseWeights parses a comma-separated list of exactly six numbers summing to 100.
// Empty items are skipped.
func ParseWeights(raw string) (Weights, error) {
	var parts []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) != len(Weights{}) {
		return Weights{}, fmt.Errorf("%w: expected exactly 6 numbers, got %d", ErrInvalidWeights, len(parts))
	}

	var w Weights
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Weights{}, fmt.Errorf("%w: %q is not a number", ErrInvalidWeights, p)
		}
		w[i] = v
	}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}

// Validate checks that w sums to 100.
func (w Weights) Validate() error {
	if sum := w.Sum(); math.Abs(sum-WeightTotal) > weightTolerance {
		return fmt.Errorf("%w: must sum to 100, got %s", ErrInvalidWeights, models.FormatNumber(sum))
	}
	return nil
}

// Scored is a benchmark row with its composite score.
type Scored struct {
	// Row is the benchmark row, updated in place with rank, weighted total and
	// derived threat level.
	Row models.Row
	// Composite is the rounded weighted score; meaningful only when Defined.
	Composite float64
	// Defined is false when any component score is missing or non-numeric.
	Defined bool
}

// Composite returns the weighted score of row on a 0-100 scale, rounded to
// two decimals. ok is false when any of the six component scores is not numeric.
func Composite(row models.Row, w Weights) (score float64, ok bool) {
	var sum float64
	for i, col := range models.ScoreColumns {
		v, ok := row.Get(col).Float()
		if !ok {
			return 0, false
		}
		sum += v / 5 * w[i]
	}
	return round2(sum), true
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// ThreatFor maps a composite score to a canonical threat token.
func ThreatFor(composite float64) string {
	switch {
	case composite >= highThreshold:
		return models.ThreatHigh
	case composite >= mediumThreshold:
		return models.ThreatMedium
	default:
		return models.ThreatLow
	}
}

// Engine ranks benchmark rows.
type Engine struct {
	log zerolog.Logger
}

// NewEngine creates an Engine that reports dropped rows to log.
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{log: log}
}

// ScoreAndRank scores every row, sorts by composite descending with undefined
// composites last and ties kept in input order, keeps the first topN rows and
// numbers them from 1. A topN below 1 keeps every row.
//
// Kept rows are updated in place: rank is set, weighted_total holds the
// composite (empty when undefined), and a blank threat_level receives the
// canonical token derived from a defined composite.
func (e *Engine) ScoreAndRank(rows []models.Row, w Weights, topN int) []Scored {
	scored := make([]Scored, len(rows))
	for i, row := range rows {
		c, ok := Composite(row, w)
		scored[i] = Scored{Row: row, Composite: c, Defined: ok}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Defined != b.Defined {
			return a.Defined
		}
		return a.Defined && a.Composite > b.Composite
	})

	if topN > 0 && len(scored) > topN {
		e.log.Debug().Int("rows", len(scored)).Int("top_n", topN).Msg("benchmark rows truncated")
		scored = scored[:topN]
	}

	for i, s := range scored {
		s.Row[models.ColRank] = models.Number(float64(i + 1))
		if !s.Defined {
			s.Row[models.ColWeightedTotal] = models.Empty()
			continue
		}
		s.Row[models.ColWeightedTotal] = models.Number(s.Composite)
		if s.Row.Get(models.ColThreatLevel).IsBlank() {
			s.Row[models.ColThreatLevel] = models.Text(ThreatFor(s.Composite))
		}
	}
	return scored
}

// Formula returns the composite expression for the benchmark row at sheet
// row number rowNum, referencing the six score cells by their position in layout.
// The leading "=" is omitted, as stored in SpreadsheetML.
func Formula(w Weights, layout models.Layout, rowNum int) string {
	var b strings.Builder
	b.WriteString("ROUND(")
	for i, col := range models.ScoreColumns {
		if i > 0 {
			b.WriteByte('+')
		}
		b.WriteString(xlsx.CellName(layout.Index(col)+1, rowNum))
		b.WriteString("/5*")
		b.WriteString(models.FormatNumber(w[i]))
	}
	b.WriteString(",2)")
	return b.String()
}
