package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/andresuchdata/printfloor/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixture = filepath.Join("..", "..", "internal", "seed", "testdata", "floor.json")

func run(t *testing.T, args ...string) (string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := newApp()
	a.Writer = &stdout
	a.ErrWriter = &stderr
	require.NoError(t, a.Run(append([]string{"floorctl"}, args...)))
	return stdout.String(), stderr.String()
}

func TestSummaryCommand(t *testing.T) {
	out, _ := run(t, "summary", "--fixture", fixture)

	records, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"HIKH", "H&M", "GE-1", "Navy", "PO-77", "500", "300", "230", "180", "5", "1.7"}, records[3])
}

func TestMatrixCommandWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.csv")
	out, _ := run(t, "matrix", "--fixture", fixture, "--out", path)
	assert.Empty(t, out)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Customer", "Style", "PO No", "Metric", "2026-01-10", "2026-01-11"}, records[0])
	assert.Equal(t, []string{"ACME", "TEE-9", "PO-81", "Production", "", "0"}, records[3])
}

func TestFloorSheetCommandResolvesRefs(t *testing.T) {
	out, stderr := run(t, "floor-sheet", "--fixture", fixture, "--date", "2026-01-10", "--plan", "p1")
	assert.Empty(t, stderr)

	var sheet report.FloorSheet
	require.NoError(t, json.Unmarshal([]byte(out), &sheet))
	assert.True(t, sheet.Found)
	assert.Equal(t, 100, sheet.Totals.Printing)
	assert.Equal(t, 2.0, sheet.TotalLossHours)

	_, stderr = run(t, "floor-sheet", "--fixture", fixture, "--date", "2026-03-01", "--plan", "p1")
	assert.Contains(t, stderr, "no output recorded")
}

func TestPlansCommand(t *testing.T) {
	out, _ := run(t, "plans", "--fixture", fixture, "--date", "2026-01-11")

	var plans []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &plans))
	require.Len(t, plans, 2)
	assert.Equal(t, "T2", plans[0]["table_no"])
}
