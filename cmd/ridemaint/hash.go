package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linesmerrill/campus-rides/maintenance"
)

// hashCmd prints the bcrypt hash of a password for manual fixes
var hashCmd = &cobra.Command{
	Use:     "hash-password <password>",
	Short:   "Print the bcrypt hash of a password",
	Example: "  ridemaint hash-password 0i2rinbcp12yc31h",
	Args:    cobra.ExactArgs(1),
	RunE:    runHash,
}

func runHash(cmd *cobra.Command, args []string) error {
	hashed, err := maintenance.HashSecret(args[0], conf.HashCost)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Bcrypt Hash: %s\n", hashed)
	fmt.Fprintf(out, "\nTo update in MongoDB, run:\n")
	fmt.Fprintf(out, "db.users.updateOne(\n")
	fmt.Fprintf(out, "  {\"email\": \"<email>\"},\n")
	fmt.Fprintf(out, "  {$set: {\"password\": \"%s\"}, $unset: {\"resetPasswordToken\": \"\", \"resetPasswordExpires\": \"\"}}\n", hashed)
	fmt.Fprintf(out, ")\n")
	return nil
}
