package cmd

import (
	"fmt"
	"strconv"

	"megabot/application"
	"megabot/infrastructure"
	"megabot/infrastructure/backup"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup <guild-id>",
	Short: "Export one guild's ledger snapshot to the backup bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		guildID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid guild ID %q: %w", args[0], err)
		}
		if !cfg.BackupEnabled() {
			return fmt.Errorf("BACKUP_S3_BUCKET is not set")
		}

		ctx := cmd.Context()
		store, err := backup.NewS3SnapshotStore(ctx, cfg.BackupS3Bucket, cfg.BackupS3Prefix, cfg.BackupS3Region, cfg.BackupS3Endpoint)
		if err != nil {
			return fmt.Errorf("failed to configure backups: %w", err)
		}

		l, err := openLedger(ctx, infrastructure.NewNoopEventPublisher())
		if err != nil {
			return err
		}
		defer l.Close()

		uow := l.uowFactory.CreateForGuild(guildID)
		if err := uow.Begin(ctx); err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer uow.Rollback()

		// Actor 0 marks the command line as the initiator
		result, err := application.NewAdminService(uow, guildID, 0, l.settings).Backup(ctx, store)
		if err != nil {
			return err
		}
		if err := uow.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d accounts and %d inventory entries to %s\n",
			result.AccountCount, result.ItemCount, result.Location)
		return nil
	},
}
