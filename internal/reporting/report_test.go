package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qerase/internal/config"
	"qerase/internal/erase"
)

func sampleOperations() []*erase.EraseOperation {
	start := time.Now().Add(-time.Minute)
	end := time.Now()
	return []*erase.EraseOperation{
		{
			ID:           "op-1",
			Path:         "/tmp/a.bin",
			Standard:     erase.StandardVSITR,
			Passes:       7,
			FileSize:     1024,
			Status:       erase.StatusCompleted,
			StartTime:    start,
			EndTime:      &end,
			BytesWritten: 7 * 1024,
			SpeedMBps:    12,
		},
		{
			ID:        "op-2",
			Path:      "/tmp/b.bin",
			Standard:  erase.StandardSimple,
			Passes:    1,
			Status:    erase.StatusFailed,
			ErrorKind: erase.ErrIO,
			Error:     "IO_ERROR (проход 0, записано 100 байт)",
			StartTime: start,
		},
	}
}

func TestGenerateReportSummary(t *testing.T) {
	start := time.Now().Add(-time.Minute)
	report := GenerateReport(sampleOperations(), "1.0.0", start, time.Now(), 1)

	require.NotEmpty(t, report.RunID)
	require.Len(t, report.Operations, 2)

	assert.Equal(t, 2, report.Summary.TotalFiles)
	assert.Equal(t, 1, report.Summary.Completed)
	assert.Equal(t, 1, report.Summary.Failed)
	assert.Equal(t, 0, report.Summary.Cancelled)
	assert.Equal(t, uint64(7*1024), report.Summary.TotalBytes)
	assert.Equal(t, 50.0, report.Summary.SuccessRate)
}

func TestSaveReport(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Reporting.Enabled = true
	cfg.Reporting.LocalPath = dir

	report := GenerateReport(sampleOperations(), "1.0.0", time.Now(), time.Now(), 0)
	require.NoError(t, SaveReport(report, cfg))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	var loaded Report
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, report.RunID, loaded.RunID)
	assert.Len(t, loaded.Operations, 2)
}

func TestSaveReportDisabled(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Reporting.Enabled = false
	cfg.Reporting.LocalPath = dir

	report := GenerateReport(nil, "1.0.0", time.Now(), time.Now(), 0)
	require.NoError(t, SaveReport(report, cfg))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
