package commands

import (
	"fmt"

	"finsight/internal/dto"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var userID string
	var months int
	var perMonth int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate and store a synthetic statement history",
		RunE: coded(func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			req := dto.SeedRequest{
				UserID:   userID,
				Months:   months,
				PerMonth: perMonth,
			}
			if err := app.Validator.ValidateStruct(req); err != nil {
				return err
			}

			uid, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}

			count, err := app.Seeder.Seed(uid, months, perMonth)
			if err != nil {
				return err
			}
			cmd.Printf("seeded %d transactions over %d months\n", count, months)
			return nil
		}),
	}

	cmd.Flags().StringVar(&userID, "user", "", "owner user id (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().IntVar(&months, "months", 6, "months of history to generate")
	cmd.Flags().IntVar(&perMonth, "per-month", 40, "transactions per month")

	return cmd
}
