package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "finsight",
		Short: "Personal bank statement analytics",
		Long: "finsight ingests bank statements (SBI, HDFC, Axis), categorizes " +
			"transactions with keyword rules plus a trained text classifier, and " +
			"reports spending aggregates, recurring payments, anomalies and " +
			"month-end projections.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newIngestCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newTrainCommand())
	rootCmd.AddCommand(newRecategorizeCommand())
	rootCmd.AddCommand(newSeedCommand())
	rootCmd.AddCommand(newUsersCommand())

	return rootCmd
}
