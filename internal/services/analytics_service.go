package services

import (
	"errors"
	"fmt"
	"log/slog"

	"finsight/internal/analytics"
	"finsight/internal/config"
	"finsight/internal/models"
	"finsight/internal/repositories"

	"github.com/google/uuid"
)

type analyticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	cfg             config.AnalyticsConfig
	metrics         MetricsRecorderInterface
}

func NewAnalyticsService(
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	cfg config.AnalyticsConfig,
	metrics MetricsRecorderInterface,
) AnalyticsServiceInterface {
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	return &analyticsService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		cfg:             cfg,
		metrics:         metrics,
	}
}

// GetSpendingReport loads the user's transactions and computes every
// analytics view in one pass. Recurrence flags are evaluated on the
// working set but not written back here; RefreshRecurring persists
// them.
func (s *analyticsService) GetSpendingReport(userID uuid.UUID, filters repositories.TransactionFilters) (*SpendingReport, error) {
	transactions, err := s.loadTransactions(userID, filters)
	if err != nil {
		return nil, err
	}

	analyzer := analytics.New(transactions,
		analytics.WithOvershootMultipliers(
			s.cfg.CategoryOvershootMultiplier,
			s.cfg.TotalOvershootMultiplier,
		),
	)
	analyzer.IdentifyRecurring(s.cfg.RecurrenceMinOccurrences, s.cfg.RecurrenceWindowDays)

	report := &SpendingReport{
		Stats:       analyzer.BasicStats(),
		Categories:  analyzer.CategoryBreakdown(),
		Monthly:     analyzer.MonthlyBreakdown(),
		Heatmap:     analyzer.DailyHeatmap(),
		Recurring:   analyzer.Recurring(),
		Anomalies:   analyzer.DetectAnomalies(s.cfg.ZThreshold),
		Projections: analyzer.ProjectMonthlySpending(),
	}

	s.metrics.RecordReport("spending")
	slog.Info("spending report generated",
		"user_id", userID,
		"transactions", len(transactions),
		"anomalies", len(report.Anomalies),
		"recurring", len(report.Recurring))
	return report, nil
}

// RefreshRecurring re-runs recurrence detection over the user's full
// history and persists the flags, returning the number of transactions
// now flagged.
func (s *analyticsService) RefreshRecurring(userID uuid.UUID) (int, error) {
	transactions, err := s.loadTransactions(userID, repositories.TransactionFilters{})
	if err != nil {
		return 0, err
	}

	analyzer := analytics.New(transactions)
	analyzer.IdentifyRecurring(s.cfg.RecurrenceMinOccurrences, s.cfg.RecurrenceWindowDays)

	flagged := analyzer.Recurring()
	ids := make([]uuid.UUID, len(flagged))
	for i := range flagged {
		ids[i] = flagged[i].ID
	}

	if err := s.transactionRepo.ClearRecurring(userID); err != nil {
		return 0, err
	}
	if err := s.transactionRepo.MarkRecurring(ids); err != nil {
		return 0, err
	}

	slog.Info("recurring flags refreshed",
		"user_id", userID,
		"flagged", len(ids))
	return len(ids), nil
}

func (s *analyticsService) loadTransactions(userID uuid.UUID, filters repositories.TransactionFilters) ([]models.Transaction, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	transactions, err := s.transactionRepo.GetByUserID(userID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return transactions, nil
}
