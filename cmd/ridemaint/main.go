// Command ridemaint runs one-off maintenance jobs against the campus-rides database.
//
// Usage:
//
//	ridemaint backfill-passwords
//	ridemaint verify-indexes
//	ridemaint hash-password <password>
//
// Configuration comes from the environment: DB_URI, DB_NAME, DEFAULT_PASSWORD,
// BCRYPT_COST and APP_ENV.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linesmerrill/campus-rides/config"
	"github.com/linesmerrill/campus-rides/maintenance"
)

var (
	conf    *config.Config
	connect maintenance.Connector = maintenance.Connect
)

var rootCmd = &cobra.Command{
	Use:   "ridemaint",
	Short: "Maintenance jobs for the campus-rides database",
	Long: `ridemaint runs operator-triggered maintenance jobs against the campus-rides
mongo database. Each job opens one connection, does its work and always
disconnects before exiting. A non-zero exit status means the job failed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		conf, err = config.New()
		return err
	},
}

func init() {
	rootCmd.AddCommand(backfillCmd, verifyCmd, hashCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		zap.S().Errorw("maintenance job failed", "error", err)
		_ = zap.L().Sync()
		os.Exit(1)
	}
	_ = zap.L().Sync()
}
