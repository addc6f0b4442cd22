package commands

import (
	"fmt"

	"finsight/internal/dto"
	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRecategorizeCommand() *cobra.Command {
	var transactionID string
	var category string

	cmd := &cobra.Command{
		Use:   "recategorize",
		Short: "Correct the stored category of one transaction",
		Long: "Overrides a transaction's category in the store. Corrections " +
			"become explicit training labels the next time the classifier is " +
			"retrained.",
		RunE: coded(func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			req := dto.CategoryOverrideRequest{
				TransactionID: transactionID,
				Category:      category,
			}
			if err := app.Validator.ValidateStruct(req); err != nil {
				return err
			}

			tid, err := uuid.Parse(transactionID)
			if err != nil {
				return fmt.Errorf("invalid transaction id: %w", err)
			}

			if err := app.Training.Override(tid, models.Category(category)); err != nil {
				return err
			}
			cmd.Printf("transaction %s recategorized as %s\n", tid, category)
			return nil
		}),
	}

	cmd.Flags().StringVar(&transactionID, "id", "", "transaction id (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().StringVar(&category, "category", "", "new category (required)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
