package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ApplyProfile применяет профиль производительности к конфигурации
func ApplyProfile(cfg *Config, profile string) error {
	switch profile {
	case "safe":
		cfg.Erase.MaxSpeedMBps = 10
		cfg.Erase.ChunkSize = 32 * 1024 // 32KB
	case "balanced":
		cfg.Erase.MaxSpeedMBps = 50
		cfg.Erase.ChunkSize = 64 * 1024 // 64KB
	case "fast":
		cfg.Erase.MaxSpeedMBps = 0        // unlimited
		cfg.Erase.ChunkSize = 1024 * 1024 // 1MB
	default:
		return fmt.Errorf("неизвестный профиль: %s", profile)
	}
	return nil
}

// defaultProtectedPaths возвращает системные пути, затирание в которых
// запрещено по умолчанию
func defaultProtectedPaths() []string {
	if runtime.GOOS == "windows" {
		systemDrive := "C:"
		if windir := os.Getenv("WINDIR"); len(windir) >= 2 {
			systemDrive = windir[:2]
		}
		return []string{
			filepath.Join(systemDrive, "Windows"),
			filepath.Join(systemDrive, "Program Files"),
			filepath.Join(systemDrive, "Program Files (x86)"),
		}
	}

	return []string{"/bin", "/boot", "/etc", "/lib", "/sbin", "/usr"}
}
