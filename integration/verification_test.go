//go:build integration

// Package integration contains integration tests for peerscore.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
package integration

import (
	"encoding/csv"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verificationDataset holds metric values per symbol. AAPL beats the peer
// median on every populated metric and MSFT on none, so the expected verdicts
// can be recomputed independently below.
var verificationDataset = map[string]map[string]float64{
	"AAPL": {"price_to_earnings": 20, "fcf_yield": 0.05, "leverage_ratio": 1.2},
	"MSFT": {"price_to_earnings": 30, "fcf_yield": 0.03, "leverage_ratio": 2.5},
	"KO":   {"price_to_earnings": 25, "fcf_yield": 0.04, "leverage_ratio": 1.8},
}

// Directionality of the metrics used above.
var lowerBetter = map[string]bool{
	"price_to_earnings": true,
	"fcf_yield":         false,
	"leverage_ratio":    true,
}

// TestScorecardVerification runs peerscore score and verifies each verdict
// against a median band recomputed from the raw dataset.
func TestScorecardVerification(t *testing.T) {
	binaryPath := buildVerificationBinary(t)
	dataPath := writeVerificationDataset(t)
	outPath := filepath.Join(t.TempDir(), "card.csv")

	cmd := exec.Command(binaryPath, "score", "AAPL",
		"--data", dataPath, "--output", "csv", "--output-file", outPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "score failed: %s", string(output))

	rows := readCSVRows(t, outPath)
	verdicts := make(map[string]string)
	for _, row := range rows {
		// symbol,section,metric,value,median,verdict,...
		verdicts[row[2]] = row[5]
	}

	for metric := range lowerBetter {
		t.Run(metric, func(t *testing.T) {
			expected := expectedVerdict(metric, "AAPL")
			assert.Equal(t, expected, verdicts[metric], "verdict mismatch for %s", metric)
		})
	}

	// Metrics absent from the dataset are indeterminate.
	assert.Equal(t, "equal", verdicts["peg"])
}

// TestScreenVerification runs peerscore screen and verifies the ranking math
// from the CSV output alone.
func TestScreenVerification(t *testing.T) {
	binaryPath := buildVerificationBinary(t)
	dataPath := writeVerificationDataset(t)
	outPath := filepath.Join(t.TempDir(), "screen.csv")

	cmd := exec.Command(binaryPath, "screen",
		"--data", dataPath, "--output", "csv", "--output-file", outPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "screen failed: %s", string(output))

	rows := readCSVRows(t, outPath)
	require.Len(t, rows, len(verificationDataset))

	// rank,symbol,better,evaluable,ratio,grade
	for i, row := range rows {
		rank, err := strconv.Atoi(row[0])
		require.NoError(t, err)
		assert.Equal(t, i+1, rank, "ranks are dense from 1")

		better, err := strconv.Atoi(row[2])
		require.NoError(t, err)
		evaluable, err := strconv.Atoi(row[3])
		require.NoError(t, err)
		ratio, err := strconv.ParseFloat(row[4], 64)
		require.NoError(t, err)

		if evaluable > 0 {
			assert.InDelta(t, float64(better)/float64(evaluable), ratio, 0.01,
				"ratio must equal better/evaluable for %s", row[1])
		}
	}

	assert.Equal(t, "AAPL", rows[0][1], "AAPL beats the median everywhere")
	assert.Equal(t, "good", rows[0][5])
}

// expectedVerdict recomputes the verdict for one symbol and metric from the
// raw dataset, using the same 15% band the engine applies.
func expectedVerdict(metric, symbol string) string {
	values := make([]float64, 0, len(verificationDataset))
	for _, metrics := range verificationDataset {
		if v, ok := metrics[metric]; ok {
			values = append(values, v)
		}
	}
	sort.Float64s(values)
	var median float64
	mid := len(values) / 2
	if len(values)%2 == 0 {
		median = (values[mid-1] + values[mid]) / 2
	} else {
		median = values[mid]
	}

	v := verificationDataset[symbol][metric]
	upper := median * 1.15
	lower := median * 0.85
	if lowerBetter[metric] {
		switch {
		case v <= lower:
			return "better"
		case v >= upper:
			return "worse"
		}
		return "equal"
	}
	switch {
	case v >= upper:
		return "better"
	case v <= lower:
		return "worse"
	}
	return "equal"
}

func writeVerificationDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "peers.csv")
	content := "symbol,price_to_earnings,fcf_yield,leverage_ratio\n"
	for _, symbol := range []string{"AAPL", "MSFT", "KO"} {
		m := verificationDataset[symbol]
		content += symbol + "," +
			strconv.FormatFloat(m["price_to_earnings"], 'f', -1, 64) + "," +
			strconv.FormatFloat(m["fcf_yield"], 'f', -1, 64) + "," +
			strconv.FormatFloat(m["leverage_ratio"], 'f', -1, 64) + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func buildVerificationBinary(t *testing.T) string {
	t.Helper()
	binaryPath := filepath.Join(t.TempDir(), "peerscore")
	buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
	buildCmd.Dir = ".." // Project root
	output, err := buildCmd.CombinedOutput()
	require.NoError(t, err, "build failed: %s", string(output))
	return binaryPath
}

func readCSVRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	return records[1:] // Drop header
}
