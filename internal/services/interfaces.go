package services

import (
	"time"

	"finsight/internal/models"
	"finsight/internal/repositories"

	"github.com/google/uuid"
)

// IngestSummary reports the outcome of one statement ingestion.
type IngestSummary struct {
	Bank         models.Bank `json:"bank"`
	Filename     string      `json:"filename"`
	Parsed       int         `json:"parsed"`
	Saved        int         `json:"saved"`
	SkippedLines int         `json:"skipped_lines"`
	RowErrors    []string    `json:"row_errors,omitempty"`
}

// SpendingReport bundles every analytics view over one user's
// transaction set.
type SpendingReport struct {
	Stats       models.BasicStats         `json:"stats"`
	Categories  []models.CategoryTotal    `json:"categories"`
	Monthly     []models.MonthlySummary   `json:"monthly"`
	Heatmap     []models.DailySpend       `json:"heatmap"`
	Recurring   []models.Transaction      `json:"recurring"`
	Anomalies   []models.Anomaly          `json:"anomalies"`
	Projections models.SpendingProjection `json:"projections"`
}

// StatementServiceInterface ingests raw statement files into stored,
// categorized transactions.
type StatementServiceInterface interface {
	IngestStatement(userID uuid.UUID, filename string, content []byte, bank models.Bank) (*IngestSummary, error)
	SupportedBanks() []models.Bank
}

// AnalyticsServiceInterface computes reports over stored transactions.
type AnalyticsServiceInterface interface {
	GetSpendingReport(userID uuid.UUID, filters repositories.TransactionFilters) (*SpendingReport, error)
	RefreshRecurring(userID uuid.UUID) (int, error)
}

// TrainingServiceInterface retrains the learned categorizer tier from
// the stored corpus and records category corrections that feed the
// next run as labels.
type TrainingServiceInterface interface {
	Train(labels map[uuid.UUID]models.Category) error
	Override(transactionID uuid.UUID, category models.Category) error
}

// UserServiceInterface manages user records.
type UserServiceInterface interface {
	CreateUser(username, email, password string) (*models.User, error)
	GetUser(username string) (*models.User, error)
	ListUsers() ([]models.User, error)
}

// SeedServiceInterface generates and stores synthetic statement data.
type SeedServiceInterface interface {
	Seed(userID uuid.UUID, months, perMonth int) (int, error)
}

// MetricsRecorderInterface is the observability boundary for the
// ingestion and analytics pipeline.
type MetricsRecorderInterface interface {
	RecordStatementParsed(bank models.Bank, format string, rows, skipped, rowErrors int)
	RecordParseDuration(duration time.Duration)
	RecordCategorization(tier string)
	RecordTrainingRun(status string, duration time.Duration)
	RecordReport(report string)
}
