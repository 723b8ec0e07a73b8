package erase

import (
	"context"
	"fmt"
	"os"
)

// DefaultChunkSize размер чанка записи по умолчанию (64 KiB).
// Компромисс между накладными расходами syscall и памятью,
// на корректность не влияет.
const DefaultChunkSize = 64 * 1024

// executePass выполняет один проход затирания: открывает файл без
// усечения, заполняет его паттерном от начала до fileSize и
// синхронизирует данные на диск. Возвращает количество записанных байт.
func executePass(ctx context.Context, path string, spec PassSpec, fileSize uint64, chunkSize int, maxSpeedMBps float64, onProgress func(written uint64)) (uint64, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла %s: %w", path, err)
	}
	defer file.Close()

	// Пустой файл: проход тривиально успешен
	if fileSize == 0 {
		if onProgress != nil {
			onProgress(0)
		}
		return 0, nil
	}

	// Размер зафиксирован в начале операции; если файл изменился
	// извне, проход не выполняется
	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("ошибка чтения атрибутов файла %s: %w", path, err)
	}
	if uint64(info.Size()) < fileSize {
		return 0, fmt.Errorf("файл %s изменился во время операции: размер %d вместо %d", path, info.Size(), fileSize)
	}

	if _, err := file.Seek(0, 0); err != nil {
		return 0, fmt.Errorf("ошибка позиционирования в файле %s: %w", path, err)
	}

	writer := newThrottledWriter(file, maxSpeedMBps)

	buf := getChunk(chunkSize)
	defer putChunk(buf)

	var written uint64
	for written < fileSize {
		remaining := fileSize - written
		toWrite := chunkSize
		if remaining < uint64(toWrite) {
			toWrite = int(remaining)
		}

		b := buf[:toWrite]
		if err := FillPattern(spec, b); err != nil {
			return written, err
		}

		// Запись чанка с учетом частичных записей
		off := 0
		for off < toWrite {
			n, err := writer.Write(b[off:])
			if n > 0 {
				off += n
				written += uint64(n)
			}
			if err != nil {
				return written, fmt.Errorf("ошибка записи в файл %s: %w", path, err)
			}
			if n == 0 {
				return written, fmt.Errorf("запись в файл %s вернула 0 байт без ошибки", path)
			}
		}

		if onProgress != nil {
			onProgress(written)
		}

		// Отмена проверяется после каждого чанка, запись чанка атомарна
		select {
		case <-ctx.Done():
			return written, ctx.Err()
		default:
		}
	}

	// Принудительная синхронизация на физический носитель до возврата
	if err := writer.Sync(); err != nil {
		return written, fmt.Errorf("ошибка синхронизации файла %s: %w", path, err)
	}

	return written, nil
}
