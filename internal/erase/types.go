package erase

import (
	"time"
)

// Статусы операции затирания
const (
	StatusPending   = "PENDING"
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
	StatusFailed    = "FAILED"
)

// EraseOperation описывает одну операцию затирания файла
type EraseOperation struct {
	ID           string
	Path         string
	Standard     Standard
	Passes       int
	FileSize     uint64
	ChunkSize    int
	Status       string // COMPLETED, CANCELLED, FAILED
	PassIndex    int    // текущий (или последний выполнявшийся) проход
	BytesWritten uint64 // всего записано за все проходы
	StartTime    time.Time
	EndTime      *time.Time
	SpeedMBps    float64
	ErrorKind    ErrorKind
	Error        string
	Warning      string
}

// Progress снимок прогресса затирания. Создается один раз и не мутируется
// после передачи вызывающей стороне.
type Progress struct {
	Pass        int
	TotalPasses int
	PassBytes   uint64
	TotalBytes  uint64
	Percent     float64
}

// ProgressFunc callback для получения прогресса. Вызывается синхронно
// в потоке выполнения и не должен блокироваться надолго.
type ProgressFunc func(Progress)
