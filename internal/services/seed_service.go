package services

import (
	"errors"
	"fmt"
	"log/slog"

	"finsight/internal/categorizer"
	"finsight/internal/models"
	"finsight/internal/repositories"

	"github.com/google/uuid"
)

type seedService struct {
	generator       TransactionGeneratorInterface
	categorizer     *categorizer.Categorizer
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
}

func NewSeedService(
	generator TransactionGeneratorInterface,
	cat *categorizer.Categorizer,
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
) SeedServiceInterface {
	return &seedService{
		generator:       generator,
		categorizer:     cat,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

// Seed generates a synthetic statement history for the user and stores
// it categorized, returning the number of transactions written.
func (s *seedService) Seed(userID uuid.UUID, months, perMonth int) (int, error) {
	if months <= 0 || perMonth <= 0 {
		return 0, fmt.Errorf("months and transactions per month must be positive")
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to verify user: %w", err)
	}

	transactions := s.generator.GenerateHistory(months, perMonth)
	for i := range transactions {
		transactions[i].Bank = models.BankSBI
	}
	s.categorizer.BulkCategorize(transactions)

	if err := s.transactionRepo.SaveBatch(transactions, userID); err != nil {
		return 0, err
	}

	slog.Info("synthetic history seeded",
		"user_id", userID,
		"months", months,
		"transactions", len(transactions))
	return len(transactions), nil
}
