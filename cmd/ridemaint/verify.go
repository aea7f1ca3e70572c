package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linesmerrill/campus-rides/maintenance"
)

// verifyCmd lists indexes without changing them
var verifyCmd = &cobra.Command{
	Use:   "verify-indexes",
	Short: "List indexes on users, ridebills and ridelocations",
	Long: `Lists the indexes on the users, ridebills and ridelocations collections and
logs the counts the application schema expects next to them. Nothing is
created or dropped; the API server creates indexes when it starts.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	report, err := maintenance.RunIndexVerification(cmd.Context(), conf, connect)
	if err != nil {
		return err
	}
	mismatched := 0
	for _, c := range report.Collections {
		if !c.Matches() {
			mismatched++
		}
	}
	zap.S().Infow("index verification complete",
		"collections", len(report.Collections),
		"mismatched", mismatched,
	)
	return nil
}
