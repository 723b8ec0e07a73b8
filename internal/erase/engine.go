package erase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"qerase/internal/logging"
	"qerase/internal/system"
)

// Engine выполняет операции затирания файлов
type Engine struct {
	logger             *logging.AuditLogger
	chunkSize          int
	maxSpeedMBps       float64
	renameBeforeDelete bool
	keepFile           bool
}

// Options параметры движка затирания
type Options struct {
	ChunkSize          int     // размер чанка записи, 0 = DefaultChunkSize
	MaxSpeedMBps       float64 // лимит скорости записи, 0 = без лимита
	RenameBeforeDelete bool    // переименовать файл перед удалением
	KeepFile           bool    // не удалять файл после затирания (отладка)
}

// NewEngine создает движок затирания
func NewEngine(logger *logging.AuditLogger, opts Options) *Engine {
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Engine{
		logger:             logger,
		chunkSize:          chunkSize,
		maxSpeedMBps:       opts.MaxSpeedMBps,
		renameBeforeDelete: opts.RenameBeforeDelete,
		keepFile:           opts.KeepFile,
	}
}

// Erase затирает содержимое одного файла по выбранному стандарту и
// удаляет файл. Проходы выполняются строго последовательно; первая
// ошибка останавливает операцию, оставшиеся проходы не выполняются.
// Частично затертый файл при ошибке не удаляется.
func (e *Engine) Erase(ctx context.Context, path string, standardID string, onProgress ProgressFunc) *EraseOperation {
	op := &EraseOperation{
		ID:        uuid.NewString(),
		Path:      path,
		ChunkSize: e.chunkSize,
		Status:    StatusPending,
		StartTime: time.Now(),
	}

	standard, err := ValidateStandard(standardID)
	if err != nil {
		return e.fail(op, ErrUnknownStandard, 0, 0, err)
	}
	op.Standard = standard

	passes := standard.Passes()
	op.Passes = len(passes)

	// Размер файла фиксируется один раз в начале операции
	size, err := system.ValidateTarget(path)
	if err != nil {
		kind := ErrIO
		switch {
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, system.ErrNotRegular):
			kind = ErrNotFound
		case errors.Is(err, fs.ErrPermission):
			kind = ErrPermissionDenied
		}
		return e.fail(op, kind, 0, 0, err)
	}
	op.FileSize = size

	e.logger.Log("INFO", "Начало затирания", "path", path, "standard", string(standard), "passes", op.Passes, "size", size)

	totalBytes := size * uint64(op.Passes)
	var lastPercent float64

	emit := func(pass int, passBytes uint64) {
		if onProgress == nil {
			return
		}
		percent := 100.0
		if totalBytes > 0 {
			done := size*uint64(pass) + passBytes
			percent = float64(done) / float64(totalBytes) * 100
		}
		// Прогресс монотонно не убывает в рамках одной операции
		if percent < lastPercent {
			percent = lastPercent
		}
		lastPercent = percent
		onProgress(Progress{
			Pass:        pass,
			TotalPasses: op.Passes,
			PassBytes:   passBytes,
			TotalBytes:  size,
			Percent:     percent,
		})
	}

	op.Status = StatusRunning
	var completed uint64

	for _, spec := range passes {
		op.PassIndex = spec.Index
		e.logger.Log("DEBUG", "Проход затирания", "path", path, "pass", spec.Index+1, "total", op.Passes)

		written, err := executePass(ctx, path, spec, size, e.chunkSize, e.maxSpeedMBps, func(w uint64) {
			op.BytesWritten = completed + w
			emit(spec.Index, w)
		})

		if err != nil {
			op.BytesWritten = completed + written
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				e.logger.Log("WARN", "Затирание отменено", "path", path, "pass", spec.Index, "bytes", op.BytesWritten)
				return e.fail(op, ErrCancelled, spec.Index, op.BytesWritten, err)
			}
			e.logger.Log("ERROR", "Ошибка прохода затирания", "path", path, "pass", spec.Index, "error", err.Error())
			return e.fail(op, ErrIO, spec.Index, op.BytesWritten, err)
		}

		completed += written
		op.BytesWritten = completed
	}

	// Содержимое уничтожено; удаляем запись каталога. Ошибка удаления
	// не отменяет результат, но фиксируется как предупреждение.
	if !e.keepFile {
		if err := e.removeFile(path); err != nil {
			op.Warning = fmt.Sprintf("содержимое затерто, но файл не удален: %v", err)
			e.logger.Log("WARN", "Файл не удален после затирания", "path", path, "error", err.Error())
		}
	}

	op.Status = StatusCompleted
	now := time.Now()
	op.EndTime = &now

	if elapsed := now.Sub(op.StartTime).Seconds(); elapsed > 0 {
		op.SpeedMBps = float64(op.BytesWritten) / (1024 * 1024) / elapsed
	}

	e.logger.Log("INFO", "Затирание завершено", "path", path, "bytes", op.BytesWritten, "speed_mbps", op.SpeedMBps)

	return op
}

// fail завершает операцию с ошибкой
func (e *Engine) fail(op *EraseOperation, kind ErrorKind, pass int, bytes uint64, err error) *EraseOperation {
	if kind == ErrCancelled {
		op.Status = StatusCancelled
	} else {
		op.Status = StatusFailed
	}
	op.ErrorKind = kind
	op.PassIndex = pass
	op.Error = (&EraseError{Kind: kind, Pass: pass, Bytes: bytes, Err: err}).Error()
	now := time.Now()
	op.EndTime = &now
	return op
}

// removeFile удаляет файл, предварительно переименовав его в случайное
// имя. Переименование затрудняет восстановление метаданных по пути, но
// не обязательно для уничтожения содержимого: при ошибке переименования
// файл удаляется под исходным именем.
func (e *Engine) removeFile(path string) error {
	target := path

	if e.renameBeforeDelete {
		if renamed, err := randomRename(path); err == nil {
			target = renamed
		} else {
			e.logger.Log("WARN", "Не удалось переименовать файл перед удалением", "path", path, "error", err.Error())
		}
	}

	return os.Remove(target)
}

// randomRename переименовывает файл в случайное имя в той же директории
func randomRename(path string) (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"
	const nameLen = 32

	raw := make([]byte, nameLen)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("ошибка генерации случайного имени: %w", err)
	}
	for i, b := range raw {
		raw[i] = chars[int(b)%len(chars)]
	}

	newPath := filepath.Join(filepath.Dir(path), string(raw))
	if err := os.Rename(path, newPath); err != nil {
		return "", err
	}
	return newPath, nil
}
