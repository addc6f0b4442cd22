package services

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"finsight/internal/categorizer"
	"finsight/internal/models"
	"finsight/internal/parser"
	"finsight/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrEmptyStatement = errors.New("statement contains no content")
)

type statementService struct {
	parser          *parser.Service
	categorizer     *categorizer.Categorizer
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewStatementService(
	parserService *parser.Service,
	cat *categorizer.Categorizer,
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	metrics MetricsRecorderInterface,
) StatementServiceInterface {
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	return &statementService{
		parser:          parserService,
		categorizer:     cat,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		metrics:         metrics,
	}
}

// IngestStatement runs the full pipeline for one uploaded statement:
// parse, categorize, store. Rows that fail parsing are reported in the
// summary without failing the batch; an error return means nothing was
// stored.
func (s *statementService) IngestStatement(userID uuid.UUID, filename string, content []byte, bank models.Bank) (*IngestSummary, error) {
	if len(content) == 0 {
		return nil, ErrEmptyStatement
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	start := time.Now()
	result, err := s.parser.ParseFile(filename, content, bank, userID)
	if err != nil {
		slog.Error("statement parse failed",
			"user_id", userID,
			"bank", bank,
			"filename", filename,
			"error", err)
		return nil, err
	}
	s.metrics.RecordParseDuration(time.Since(start))

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	s.metrics.RecordStatementParsed(bank, format,
		len(result.Transactions), result.SkippedLines, len(result.RecordErrors))

	// Partial failure is tolerated, total failure is not: a statement
	// where every row was malformed stores nothing and reports the
	// first offending record.
	if len(result.Transactions) == 0 && len(result.RecordErrors) > 0 {
		slog.Error("statement produced no valid rows",
			"user_id", userID,
			"bank", bank,
			"filename", filename,
			"row_errors", len(result.RecordErrors))
		return nil, fmt.Errorf("statement produced no valid rows: %w", result.RecordErrors[0])
	}

	s.categorizer.BulkCategorize(result.Transactions)

	if err := s.transactionRepo.SaveBatch(result.Transactions, userID); err != nil {
		slog.Error("statement batch save failed",
			"user_id", userID,
			"bank", bank,
			"transactions", len(result.Transactions),
			"error", err)
		return nil, err
	}

	summary := &IngestSummary{
		Bank:         bank,
		Filename:     filename,
		Parsed:       len(result.Transactions),
		Saved:        len(result.Transactions),
		SkippedLines: result.SkippedLines,
	}
	for _, recErr := range result.RecordErrors {
		summary.RowErrors = append(summary.RowErrors, recErr.Error())
	}

	slog.Info("statement ingested",
		"user_id", userID,
		"bank", bank,
		"filename", filename,
		"saved", summary.Saved,
		"skipped_lines", summary.SkippedLines,
		"row_errors", len(summary.RowErrors))
	return summary, nil
}

func (s *statementService) SupportedBanks() []models.Bank {
	return s.parser.SupportedBanks()
}
