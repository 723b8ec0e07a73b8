package system

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotRegular путь не указывает на обычный файл
var ErrNotRegular = errors.New("не является обычным файлом")

// ValidateTarget проверяет, что путь указывает на обычный файл, доступный
// для записи, и возвращает его текущий размер. Размер фиксируется один
// раз; дальнейшие изменения файла извне не отслеживаются.
func ValidateTarget(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	if err := checkWritable(path); err != nil {
		return 0, err
	}

	return uint64(info.Size()), nil
}
