package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ortobahn/ortobahn/internal/backup"
	"github.com/ortobahn/ortobahn/pkg/logger"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create a database backup now",
	Long:  `Run one backup rotation outside the nightly schedule, pruning old backups if needed.`,
	Run:   runBackup,
}

func init() {
	rootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	rotator, err := backup.NewRotator(cfg.DBPath(), cfg.Backups.Dir, cfg.Backups.MaxBackups, logger.GetLogger().Logger)
	if err != nil {
		logger.Fatal("Failed to configure backup rotation", "error", err)
	}

	path, created, err := rotator.Rotate()
	if err != nil {
		logger.Fatal("Backup failed", "error", err)
	}
	if !created {
		fmt.Println("No database file found, nothing to back up.")
		return
	}
	fmt.Println("Backup written to", path)
}
