package erase

import (
	"io"
	"os"
	"time"
)

// throttledWriter ограничивает скорость записи в файл
type throttledWriter struct {
	file         *os.File
	maxSpeedMBps float64
	lastWrite    time.Time
	closed       bool
}

// newThrottledWriter создает writer с ограничением скорости.
// maxSpeedMBps <= 0 означает отсутствие ограничения.
func newThrottledWriter(file *os.File, maxSpeedMBps float64) *throttledWriter {
	return &throttledWriter{
		file:         file,
		maxSpeedMBps: maxSpeedMBps,
		lastWrite:    time.Now(),
	}
}

// Write записывает данные, при необходимости выдерживая паузу
// для соблюдения лимита скорости
func (tw *throttledWriter) Write(data []byte) (int, error) {
	if tw.closed {
		return 0, io.ErrClosedPipe
	}

	if len(data) == 0 {
		return 0, nil
	}

	if tw.maxSpeedMBps > 0 {
		bytesPerSec := tw.maxSpeedMBps * 1024 * 1024
		expected := time.Duration(float64(len(data)) / bytesPerSec * float64(time.Second))
		actual := time.Since(tw.lastWrite)
		if actual < expected {
			time.Sleep(expected - actual)
		}
	}

	n, err := tw.file.Write(data)
	tw.lastWrite = time.Now()
	return n, err
}

// Sync синхронизирует данные на диск
func (tw *throttledWriter) Sync() error {
	if tw.closed {
		return io.ErrClosedPipe
	}
	return tw.file.Sync()
}
