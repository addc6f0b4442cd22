package commands

import (
	"fmt"

	"finsight/internal/dto"
	"finsight/internal/models"
	"finsight/internal/repositories"
	"finsight/internal/services"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newReportCommand() *cobra.Command {
	var userID string
	var startDate string
	var endDate string
	var view string
	var refreshRecurring bool

	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"analyze"},
		Short:   "Compute spending analytics over stored transactions",
		RunE: coded(func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			req := dto.ReportRequest{
				UserID:    userID,
				StartDate: startDate,
				EndDate:   endDate,
			}
			if err := app.Validator.ValidateStruct(req); err != nil {
				return err
			}

			uid, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}

			if refreshRecurring {
				flagged, err := app.Analytics.RefreshRecurring(uid)
				if err != nil {
					return err
				}
				cmd.Printf("recurring flags refreshed: %d transactions flagged\n", flagged)
			}

			filters := repositories.TransactionFilters{}
			if startDate != "" {
				date, err := models.ParseDate(startDate)
				if err != nil {
					return err
				}
				filters.StartDate = &date
			}
			if endDate != "" {
				date, err := models.ParseDate(endDate)
				if err != nil {
					return err
				}
				filters.EndDate = &date
			}

			report, err := app.Analytics.GetSpendingReport(uid, filters)
			if err != nil {
				return err
			}

			return printJSON(cmd, selectView(report, view))
		}),
	}

	cmd.Flags().StringVar(&userID, "user", "", "owner user id (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringVar(&startDate, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&view, "view", "all",
		"report view: all, stats, categories, monthly, heatmap, recurring, anomalies, projections")
	cmd.Flags().BoolVar(&refreshRecurring, "refresh-recurring", false,
		"persist recurrence flags before reporting")

	return cmd
}

func selectView(report *services.SpendingReport, view string) interface{} {
	switch view {
	case "stats":
		return report.Stats
	case "categories":
		return report.Categories
	case "monthly":
		return report.Monthly
	case "heatmap":
		return report.Heatmap
	case "recurring":
		return report.Recurring
	case "anomalies":
		return report.Anomalies
	case "projections":
		return report.Projections
	default:
		return report
	}
}
