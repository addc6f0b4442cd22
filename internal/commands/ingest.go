package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"finsight/internal/dto"
	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newIngestCommand() *cobra.Command {
	var userID string
	var bank string

	cmd := &cobra.Command{
		Use:   "ingest <statement-file>",
		Short: "Parse, categorize and store a bank statement",
		Args:  cobra.ExactArgs(1),
		RunE: coded(func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			req := dto.IngestRequest{
				UserID:   userID,
				Bank:     bank,
				Filename: filename,
			}
			if err := app.Validator.ValidateStruct(req); err != nil {
				return err
			}

			uid, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}

			content, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("failed to read statement file: %w", err)
			}

			summary, err := app.Statements.IngestStatement(
				uid, filename, content, models.NormalizeBank(bank))
			if err != nil {
				return err
			}

			return printJSON(cmd, summary)
		}),
	}

	cmd.Flags().StringVar(&userID, "user", "", "owner user id (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringVar(&bank, "bank", "", "statement bank dialect: sbi, hdfc or axis (required)")
	_ = cmd.MarkFlagRequired("bank")

	return cmd
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	cmd.Println(string(out))
	return nil
}
