package security

import (
	"fmt"
	"path/filepath"
	"strings"

	"qerase/internal/config"
)

// CheckTarget проверяет, что файл не находится в защищенной
// директории. Проверка выполняется до начала затирания.
func CheckTarget(cfg *config.Config, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("ошибка определения абсолютного пути %s: %w", path, err)
	}

	for _, protected := range cfg.Security.ProtectedPaths {
		if protected == "" {
			continue
		}
		if isUnderPath(abs, protected) {
			return fmt.Errorf("путь %s находится в защищенной директории %s", abs, protected)
		}
	}

	return nil
}

// isUnderPath проверяет, что path находится внутри root (или равен ему)
func isUnderPath(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
