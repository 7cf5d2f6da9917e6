package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/CharMTI/internal/catalog"
	"github.com/MikeSquared-Agency/CharMTI/internal/scoring"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func neutralSheet(n int) string {
	return strings.TrimSuffix(strings.Repeat("0,", n), ",")
}

func TestScoreCommand_JSON(t *testing.T) {
	out, err := run(t, "score", "--questions", "60", "--answers", neutralSheet(60), "--format", "json")
	require.NoError(t, err)

	var res scoring.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "ESTJ-AC", res.ShareCode())
	assert.Equal(t, 60, res.QuestionCount)
	assert.Equal(t, 60, res.StatementsUsed)
	assert.Zero(t, res.SkippedAnswers)
}

func TestScoreCommand_Text(t *testing.T) {
	out, err := run(t, "score", "-a", neutralSheet(62))
	require.NoError(t, err)

	cat := catalog.Default()
	assert.True(t, strings.HasPrefix(out, "ESTJ-AC\n"), out)
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, cat.MBTI("ESTJ"))
	assert.Contains(t, out, "2 answers had no statement")
}

func TestScoreCommand_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing answers", []string{"score"}, "answers"},
		{"out of range", []string{"score", "-a", "1,2,4"}, "out of range"},
		{"not a number", []string{"score", "-a", "1,x"}, "not a number"},
		{"empty", []string{"score", "-a", " , "}, "no answers"},
		{"zero questions", []string{"score", "-a", "1", "-q", "0"}, "--questions"},
		{"bad format", []string{"score", "-a", "1", "-f", "xml"}, "unknown format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCalibrateCommand_Deterministic(t *testing.T) {
	a, err := run(t, "calibrate", "--runs", "50", "--seed", "7", "--format", "json")
	require.NoError(t, err)
	b, err := run(t, "calibrate", "--runs", "50", "--seed", "7", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	var report CalibrationReport
	require.NoError(t, json.Unmarshal([]byte(a), &report))
	assert.Equal(t, 50, report.Runs)
	require.Len(t, report.Axes, 6)
	for _, ax := range report.Axes {
		assert.GreaterOrEqual(t, ax.Min, 0.0, ax.Axis)
		assert.LessOrEqual(t, ax.Max, 100.0, ax.Axis)
		assert.GreaterOrEqual(t, ax.Mean, ax.Min, ax.Axis)
		assert.LessOrEqual(t, ax.Mean, ax.Max, ax.Axis)
	}

	total := 0
	for _, tc := range report.MBTITypes {
		total += tc.Count
	}
	assert.Equal(t, 50, total)
}

func TestCalibrateCommand_Text(t *testing.T) {
	out, err := run(t, "calibrate", "--runs", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "10 runs, 60 questions, seed 1")
	assert.Contains(t, out, "AXIS")
	assert.Contains(t, out, "TYPE")
}

func TestSortedCounts(t *testing.T) {
	got := sortedCounts(map[string]int{"INFP": 2, "ESTJ": 5, "ENFP": 2})
	assert.Equal(t, []TypeCount{{"ESTJ", 5}, {"ENFP", 2}, {"INFP", 2}}, got)
}

func TestValidateCommand_Default(t *testing.T) {
	out, err := run(t, "validate", "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "bank ok: 120 statements")
	assert.Contains(t, out, "catalog ok")
	assert.NotContains(t, out, "warning")
}

func TestValidateCommand_SmallBank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("statements:\n  - text: \"파티를 좋아한다\"\n    tags: [E]\n"), 0o644))

	out, err := run(t, "validate", "--bank", path)
	require.NoError(t, err)
	assert.Contains(t, out, "bank ok: 1 statements")
	assert.Contains(t, out, "warning: form 60")

	_, err = run(t, "validate", "--bank", path, "--strict")
	assert.Error(t, err)
}

func TestValidateCommand_InvalidBank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("statements:\n  - text: \"x\"\n    tags: [E, I]\n"), 0o644))

	_, err := run(t, "validate", "--bank", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bank")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "charmti-score "), out)
}

func TestGetVersion_Ldflags(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })
	version = "v1.2.3"
	assert.Equal(t, "v1.2.3", getVersion())
}
