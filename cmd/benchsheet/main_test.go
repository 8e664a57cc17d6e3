package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/config"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

const sourcesJSON = `{
  "Sources": [
    {"product": "Acme", "source_type": "review"},
    {"product": "Acme", "source_type": "review"}
  ],
  "Benchmark": [
    {"company_product": "Acme", "traction_score": 4, "product_capability_score": 4,
     "monetization_score": 4, "user_sentiment_score": 4, "execution_maturity_score": 4,
     "evidence_confidence_score": 4}
  ]
}`

func TestBuildCommand(t *testing.T) {
	dir := chdirTemp(t)
	in := filepath.Join(dir, "research.json")
	writeFile(t, in, sourcesJSON)
	outPath := filepath.Join(dir, "out", "bench.xlsx")

	out, err := execute(t, "build", "--output", outPath, "--input-json", in, "--lang", "en")
	require.NoError(t, err)

	assert.Contains(t, out, "Written: "+outPath)
	assert.Contains(t, out, "Language: en")
	assert.Contains(t, out, "Sheets: Summary, Benchmark, Feature-Matrix, Pricing-GTM, Sources")
	assert.Contains(t, out, "Benchmark rows: 1")
	assert.Contains(t, out, "Warnings:\n- [WARN] Acme: sources < 3\n- [WARN] Acme: missing official source\n")

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 5)
}

func TestRootRunsBuild(t *testing.T) {
	dir := chdirTemp(t)
	outPath := filepath.Join(dir, "bench.xlsx")

	out, err := execute(t, "--output", outPath, "--brief", "为家庭用户构建智能烹饪应用的竞品分析报告")
	require.NoError(t, err)
	assert.Contains(t, out, "Language: zh")
	assert.Contains(t, out, "Sheets: 摘要, 竞品基准, 功能矩阵, 定价-GTM, 证据来源")
	assert.Contains(t, out, "Benchmark rows: 0")
	assert.NotContains(t, out, "警告")
}

func TestBuildErrorsLeaveNoOutput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing output", []string{"build"}},
		{"bad weights", []string{"build", "--weights", "10,10"}},
		{"weights sum", []string{"build", "--weights", "20,30,15,20,10,6"}},
		{"bad lang", []string{"build", "--lang", "pt"}},
		{"bad lang source", []string{"build", "--lang-source", "title"}},
		{"bad top n", []string{"build", "--top-n", "0"}},
		{"missing input", []string{"build", "--input", "nope.json"}},
		{"unsupported input", []string{"build", "--input", "research.csv"}},
		{"both inputs", []string{"build", "--input", "a.json", "--input-json", "b.json"}},
		{"missing config", []string{"build", "--config", "missing.toml"}},
		{"bad log level", []string{"build", "--log-level", "loud"}},
		{"unexpected arg", []string{"stray"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := chdirTemp(t)
			writeFile(t, filepath.Join(dir, "research.csv"), "a,b\n")
			outPath := filepath.Join(dir, "bench.xlsx")

			args := tt.args
			if tt.name != "missing output" && tt.name != "unexpected arg" {
				args = append(args, "--output", outPath)
			}
			_, err := execute(t, args...)
			require.Error(t, err)

			_, statErr := os.Stat(outPath)
			assert.True(t, os.IsNotExist(statErr), "output must not be created")
		})
	}
}

func TestOutputFlagRequired(t *testing.T) {
	chdirTemp(t)
	for _, args := range [][]string{{"build"}, {"--brief", "x"}} {
		_, err := execute(t, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), `required flag(s) "output" not set`, args)
	}

	cmd := newRootCmd()
	build, _, err := cmd.Find([]string{"build"})
	require.NoError(t, err)
	for _, c := range []*cobra.Command{cmd, build} {
		flag := c.Flags().Lookup("output")
		require.NotNil(t, flag)
		assert.Equal(t, []string{"true"}, flag.Annotations[cobra.BashCompOneRequiredFlag], c.Name())
	}
}

func TestBuildConfigPrecedence(t *testing.T) {
	dir := chdirTemp(t)
	writeFile(t, filepath.Join(dir, config.DefaultFile), "[report]\nlang = \"de\"\n")
	outPath := filepath.Join(dir, "bench.xlsx")

	out, err := execute(t, "build", "--output", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Language: de")

	t.Setenv(config.EnvPrefix+"LANG", "es")
	out, err = execute(t, "build", "--output", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Language: es")

	out, err = execute(t, "build", "--output", outPath, "--lang", "fr")
	require.NoError(t, err)
	assert.Contains(t, out, "Language: fr")
}

func TestInspectCommand(t *testing.T) {
	dir := chdirTemp(t)
	in := filepath.Join(dir, "research.json")
	writeFile(t, in, sourcesJSON)
	outPath := filepath.Join(dir, "bench.xlsx")

	_, err := execute(t, "build", "-o", outPath, "-i", in, "--lang", "en")
	require.NoError(t, err)

	out, err := execute(t, "inspect", outPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Application: benchsheet", lines[0])
	assert.Equal(t, "Summary\tA1:F4\trows=3\tformulas=0", lines[1])
	assert.Equal(t, "Benchmark\tA1:Q2\trows=1\tformulas=1", lines[2])
	assert.Equal(t, "Sources\tA1:I3\trows=2\tformulas=0", lines[5])

	_, err = execute(t, "inspect", filepath.Join(dir, "missing.xlsx"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		level   zerolog.Level
		wantErr bool
	}{
		{"defaults", config.LogConfig{}, zerolog.InfoLevel, false},
		{"debug console", config.LogConfig{Level: "debug", Format: "console"}, zerolog.DebugLevel, false},
		{"json upper", config.LogConfig{Level: "WARN", Format: "JSON"}, zerolog.WarnLevel, false},
		{"bad level", config.LogConfig{Level: "loud"}, zerolog.NoLevel, true},
		{"bad format", config.LogConfig{Format: "xml"}, zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		logger, err := newLogger(&bytes.Buffer{}, tt.cfg)
		if tt.wantErr {
			assert.Error(t, err, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.level, logger.GetLevel(), tt.name)
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, config.LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)

	logger.Debug().Str("lang", "zh").Msg("language selected")
	assert.Contains(t, buf.String(), `"lang":"zh"`)
	assert.Contains(t, buf.String(), `"message":"language selected"`)
}
