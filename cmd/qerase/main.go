package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"qerase/internal/config"
	"qerase/internal/erase"
	"qerase/internal/logging"
	"qerase/internal/reporting"
	"qerase/internal/security"
)

const (
	Version = "1.0.0"
	AppName = "QErase"

	// Exit codes
	EXIT_SUCCESS = 0
	EXIT_ERROR   = 1
	EXIT_WARNING = 2
)

var (
	cfg        *config.Config
	logger     *logging.AuditLogger
	verbose    bool
	configPath string
	standardID string
	profile    string
	force      bool
	keepFile   bool
)

// CLI команды
var rootCmd = &cobra.Command{
	Use:     "qerase",
	Short:   "QErase - безвозвратное удаление файлов",
	Long:    "Утилита безвозвратного удаления файлов: затирание содержимого по выбранному стандарту санитизации с последующим удалением",
	Version: Version,
}

var eraseCmd = &cobra.Command{
	Use:   "erase <файл>",
	Short: "Затереть содержимое файла и удалить его",
	Args:  cobra.ExactArgs(1),
	RunE:  runErase,
}

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "Показать поддерживаемые стандарты затирания",
	RunE:  runStandards,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Подробный вывод")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Путь к конфигурации")

	eraseCmd.Flags().StringVarP(&standardID, "standard", "s", "", "Стандарт затирания (simple/dod-5220-22-m/dod-5220-22-m-ece/vsitr/gutmann)")
	eraseCmd.Flags().BoolVarP(&force, "force", "f", false, "Пропустить подтверждение")
	eraseCmd.Flags().BoolVarP(&keepFile, "keep", "k", false, "Не удалять файл после затирания")
	eraseCmd.Flags().StringVar(&profile, "profile", "", "Профиль производительности (safe/balanced/fast)")

	rootCmd.AddCommand(eraseCmd, standardsCmd)
}

func runErase(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	path := args[0]

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	if profile != "" {
		if err := config.ApplyProfile(cfg, profile); err != nil {
			return fmt.Errorf("ошибка применения профиля %s: %w", profile, err)
		}
	}

	logger, err = logging.NewAuditLogger(cfg, verbose)
	if err != nil {
		return fmt.Errorf("ошибка инициализации логгера: %w", err)
	}
	defer logger.Close()

	if standardID == "" {
		standardID = cfg.Erase.DefaultStandard
	}

	standard, err := erase.ValidateStandard(standardID)
	if err != nil {
		return err
	}

	// Защищенные системные пути не затираются
	if err := security.CheckTarget(cfg, path); err != nil {
		return err
	}

	logger.Log("INFO", "Запуск QErase", "version", Version, "path", path, "standard", string(standard))

	if !force && cfg.Security.RequireConfirmation {
		fmt.Printf("ВНИМАНИЕ: файл %s будет безвозвратно уничтожен (%s, %d проходов)\n", path, standard.DisplayName(), standard.PassCount())
		fmt.Print("Продолжить? (y/N): ")
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "y" {
			logger.Log("INFO", "Операция отменена пользователем")
			return nil
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Обработка Ctrl+C: отмена между чанками записи
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Log("WARN", "Получен сигнал, отмена операции", "signal", sig.String())
		fmt.Printf("\n[INFO] Получен сигнал %s, завершаем работу...\n", sig.String())
		cancel()
	}()

	engine := erase.NewEngine(logger, erase.Options{
		ChunkSize:          cfg.Erase.ChunkSize,
		MaxSpeedMBps:       cfg.Erase.MaxSpeedMBps,
		RenameBeforeDelete: cfg.Erase.RenameBeforeDelete,
		KeepFile:           keepFile,
	})

	op := engine.Erase(ctx, path, standardID, printProgress)
	fmt.Println()

	exitCode := EXIT_SUCCESS

	switch op.Status {
	case erase.StatusCompleted:
		if op.Warning != "" {
			fmt.Printf("[WARN] %s\n", op.Warning)
			exitCode = EXIT_WARNING
		} else {
			fmt.Printf("Файл уничтожен: %d проходов, %d байт, %.1f MB/s\n", op.Passes, op.BytesWritten, op.SpeedMBps)
		}
	case erase.StatusCancelled:
		fmt.Printf("[WARN] Операция отменена на проходе %d/%d\n", op.PassIndex+1, op.Passes)
		exitCode = EXIT_WARNING
	default:
		fmt.Printf("[ERROR] %s\n", op.Error)
		exitCode = EXIT_ERROR
	}

	if cfg.Reporting.Enabled {
		report := reporting.GenerateReport([]*erase.EraseOperation{op}, Version, startTime, time.Now(), exitCode)
		if err := reporting.SaveReport(report, cfg); err != nil {
			logger.Log("ERROR", "Ошибка сохранения отчета", "error", err.Error())
		}
	}

	if exitCode != EXIT_SUCCESS {
		logger.Close()
		os.Exit(exitCode)
	}

	return nil
}

// printProgress выводит прогресс затирания одной строкой
func printProgress(p erase.Progress) {
	fmt.Printf("\rПроход %d/%d | %s / %s | %.1f%%", p.Pass+1, p.TotalPasses, humanSize(p.PassBytes), humanSize(p.TotalBytes), p.Percent)
}

func runStandards(cmd *cobra.Command, args []string) error {
	fmt.Println("Поддерживаемые стандарты затирания:")
	for _, info := range erase.ListStandards() {
		fmt.Printf("  %-18s %-20s %d проход(ов)\n", info.ID, info.Name, info.PassCount)
	}
	return nil
}

// humanSize форматирует размер в читаемый вид
func humanSize(size uint64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := uint64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGT"[exp])
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(EXIT_ERROR)
	}
}
