package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linesmerrill/campus-rides/maintenance"
)

// backfillCmd gives every user without a password the default password
var backfillCmd = &cobra.Command{
	Use:   "backfill-passwords",
	Short: "Set the default password on users that have none",
	Long: `Finds users whose password is missing, null or empty, hashes the default
password once and sets it on all of them, clearing any password reset token.

The default password is read from DEFAULT_PASSWORD; when unset a development
placeholder is used and a warning is logged. BCRYPT_COST sets the hash cost.`,
	Args: cobra.NoArgs,
	RunE: runBackfill,
}

func runBackfill(cmd *cobra.Command, args []string) error {
	result, err := maintenance.RunPasswordBackfill(cmd.Context(), conf, connect)
	if err != nil {
		return err
	}
	zap.S().Infow("password backfill complete",
		"matched", result.Matched,
		"modified", result.Modified,
		"fallbackPassword", result.UsedFallbackSecret,
	)
	return nil
}
