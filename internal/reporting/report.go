package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"qerase/internal/config"
	"qerase/internal/erase"
)

// Report представляет JSON отчет о запуске
type Report struct {
	RunID      string            `json:"run_id"`
	Version    string            `json:"version"`
	Timestamp  time.Time         `json:"timestamp"`
	Operations []OperationReport `json:"operations"`
	Summary    SummaryReport     `json:"summary"`
	ExitCode   int               `json:"exit_code"`
	Duration   string            `json:"duration"`
}

// OperationReport представляет отчет об операции затирания
type OperationReport struct {
	ID           string     `json:"id"`
	Path         string     `json:"path"`
	Standard     string     `json:"standard"`
	Passes       int        `json:"passes"`
	FileSize     uint64     `json:"file_size"`
	ChunkSize    int        `json:"chunk_size"`
	Status       string     `json:"status"`
	PassIndex    int        `json:"pass_index"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	BytesWritten uint64     `json:"bytes_written"`
	SpeedMBps    float64    `json:"speed_mbps"`
	Error        string     `json:"error,omitempty"`
	Warning      string     `json:"warning,omitempty"`
}

// SummaryReport представляет сводную информацию
type SummaryReport struct {
	TotalFiles   int     `json:"total_files"`
	Completed    int     `json:"completed"`
	Cancelled    int     `json:"cancelled"`
	Failed       int     `json:"failed"`
	TotalBytes   uint64  `json:"total_bytes"`
	AverageSpeed float64 `json:"average_speed_mbps"`
	SuccessRate  float64 `json:"success_rate"`
}

// GenerateReport генерирует JSON отчет о запуске
func GenerateReport(operations []*erase.EraseOperation, version string, startTime, endTime time.Time, exitCode int) *Report {
	report := &Report{
		RunID:      uuid.NewString(),
		Version:    version,
		Timestamp:  startTime,
		Operations: make([]OperationReport, len(operations)),
		ExitCode:   exitCode,
		Duration:   endTime.Sub(startTime).String(),
	}

	var totalBytes uint64
	var totalSpeed float64
	completed := 0
	cancelled := 0
	failed := 0

	for i, op := range operations {
		opReport := OperationReport{
			ID:           op.ID,
			Path:         op.Path,
			Standard:     string(op.Standard),
			Passes:       op.Passes,
			FileSize:     op.FileSize,
			ChunkSize:    op.ChunkSize,
			Status:       op.Status,
			PassIndex:    op.PassIndex,
			StartTime:    op.StartTime,
			EndTime:      op.EndTime,
			BytesWritten: op.BytesWritten,
			SpeedMBps:    op.SpeedMBps,
			Error:        op.Error,
			Warning:      op.Warning,
		}

		switch op.Status {
		case erase.StatusCompleted:
			completed++
		case erase.StatusCancelled:
			cancelled++
		default:
			failed++
		}

		totalBytes += op.BytesWritten
		totalSpeed += op.SpeedMBps

		report.Operations[i] = opReport
	}

	if len(operations) > 0 {
		report.Summary = SummaryReport{
			TotalFiles:   len(operations),
			Completed:    completed,
			Cancelled:    cancelled,
			Failed:       failed,
			TotalBytes:   totalBytes,
			AverageSpeed: totalSpeed / float64(len(operations)),
			SuccessRate:  float64(completed) / float64(len(operations)) * 100,
		}
	}

	return report
}

// SaveReport сохраняет отчет в JSON файл
func SaveReport(report *Report, cfg *config.Config) error {
	if !cfg.Reporting.Enabled {
		return nil
	}

	if err := os.MkdirAll(cfg.Reporting.LocalPath, 0755); err != nil {
		return fmt.Errorf("ошибка создания директории для отчетов: %w", err)
	}

	filename := fmt.Sprintf("qerase_report_%s.json", report.Timestamp.Format("20060102_150405"))
	path := filepath.Join(cfg.Reporting.LocalPath, filename)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации отчета: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи отчета: %w", err)
	}

	return nil
}
