package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config конфигурация приложения
type Config struct {
	Erase     EraseConfig     `yaml:"erase"`
	Security  SecurityConfig  `yaml:"security"`
	Logging   LoggingConfig   `yaml:"logging"`
	Reporting ReportingConfig `yaml:"reporting"`
}

// EraseConfig параметры затирания
type EraseConfig struct {
	DefaultStandard    string  `yaml:"default_standard"`
	ChunkSize          int     `yaml:"chunk_size"`
	MaxSpeedMBps       float64 `yaml:"max_speed_mbps"`
	RenameBeforeDelete bool    `yaml:"rename_before_delete"`
}

// SecurityConfig параметры безопасности
type SecurityConfig struct {
	RequireConfirmation bool     `yaml:"require_confirmation"`
	ProtectedPaths      []string `yaml:"protected_paths"`
}

// LoggingConfig параметры журналирования
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ReportingConfig параметры отчетов
type ReportingConfig struct {
	Enabled   bool   `yaml:"enabled"`
	LocalPath string `yaml:"local_path"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Erase: EraseConfig{
			DefaultStandard:    "dod-5220-22-m",
			ChunkSize:          64 * 1024, // 64KB
			MaxSpeedMBps:       0,         // без лимита
			RenameBeforeDelete: true,
		},
		Security: SecurityConfig{
			RequireConfirmation: true,
			ProtectedPaths:      defaultProtectedPaths(),
		},
		Logging: LoggingConfig{
			Level: "INFO",
			File:  "",
		},
		Reporting: ReportingConfig{
			Enabled:   false,
			LocalPath: "./reports",
		},
	}
}

// Load загружает конфигурацию из файла. Пустой путь или отсутствующий
// файл дают конфигурацию по умолчанию.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("ошибка чтения файла конфигурации %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора файла конфигурации %s: %w", path, err)
	}

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("невалидная конфигурация: %w", err)
	}

	return config, nil
}

// Validate проверяет конфигурацию на валидность
func Validate(config *Config) error {
	if config.Erase.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size должен быть больше нуля: %d", config.Erase.ChunkSize)
	}

	if config.Erase.ChunkSize > 256*1024*1024 {
		return fmt.Errorf("chunk_size слишком большой: %d", config.Erase.ChunkSize)
	}

	if config.Erase.MaxSpeedMBps < 0 {
		return fmt.Errorf("max_speed_mbps не может быть отрицательным: %f", config.Erase.MaxSpeedMBps)
	}

	switch config.Logging.Level {
	case "DEBUG", "INFO", "WARN", "ERROR", "FATAL":
	default:
		return fmt.Errorf("неизвестный уровень логирования: %s", config.Logging.Level)
	}

	if config.Reporting.Enabled && config.Reporting.LocalPath == "" {
		return fmt.Errorf("reporting.local_path не задан при включенных отчетах")
	}

	return nil
}
