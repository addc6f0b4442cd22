package services

import (
	"fmt"
	"log/slog"
	"time"

	"finsight/internal/categorizer"
	"finsight/internal/models"
	"finsight/internal/repositories"

	"github.com/google/uuid"
)

type trainingService struct {
	categorizer     *categorizer.Categorizer
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewTrainingService(
	cat *categorizer.Categorizer,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) TrainingServiceInterface {
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	return &trainingService{
		categorizer:     cat,
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// Train retrains the learned tier from the full stored corpus. Explicit
// labels override the self-supervised rule labels; stored category
// corrections surface here as labels keyed by transaction ID.
func (s *trainingService) Train(labels map[uuid.UUID]models.Category) error {
	corpus, err := s.transactionRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load training corpus: %w", err)
	}

	start := time.Now()
	if err := s.categorizer.Train(corpus, labels); err != nil {
		s.metrics.RecordTrainingRun("failed", time.Since(start))
		slog.Error("classifier training failed",
			"corpus_size", len(corpus),
			"error", err)
		return err
	}

	s.metrics.RecordTrainingRun("success", time.Since(start))
	slog.Info("classifier training complete",
		"corpus_size", len(corpus),
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

// Override corrects one stored transaction's category. The stored
// value becomes that transaction's training label on the next run.
func (s *trainingService) Override(transactionID uuid.UUID, category models.Category) error {
	if err := s.transactionRepo.UpdateCategory(transactionID, category); err != nil {
		return err
	}
	slog.Info("category override recorded",
		"transaction_id", transactionID,
		"category", category)
	return nil
}
