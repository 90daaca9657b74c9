package cmd

import (
	"fmt"
	"strconv"

	"megabot/application"
	"megabot/domain/entities"
	"megabot/domain/interfaces"
	"megabot/infrastructure"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var adjustBalanceCmd = &cobra.Command{
	Use:   "adjust-balance <guild-id> <user-id> <delta>",
	Short: "Apply a signed balance change to one account",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ids [3]int64
		for n, arg := range args {
			parsed, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid argument %q: %w", arg, err)
			}
			ids[n] = parsed
		}
		guildID, userID, delta := ids[0], ids[1], ids[2]

		ctx := cmd.Context()
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

		newBalance, err := application.NewLedgerService(uow, guildID, l.settings).Adjust(ctx, interfaces.BalanceAdjustment{
			DiscordID:       userID,
			Delta:           delta,
			TransactionType: entities.TransactionTypeAdjustment,
			Metadata:        map[string]any{"source": "cli"},
		})
		if err != nil {
			return err
		}

		if err := uow.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}

		log.WithFields(log.Fields{
			"guildID":    guildID,
			"userID":     userID,
			"delta":      delta,
			"newBalance": newBalance,
		}).Info("Balance adjusted")
		fmt.Fprintf(cmd.OutOrStdout(), "New balance: %d\n", newBalance)
		return nil
	},
}
