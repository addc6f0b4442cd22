package repositories

import (
	"finsight/internal/models"

	"github.com/google/uuid"
)

// TransactionFilters narrows a user's transaction listing. Nil date
// bounds leave that side of the range open.
type TransactionFilters struct {
	StartDate *models.Date
	EndDate   *models.Date
	Category  models.Category
	Bank      models.Bank
	Recurring *bool
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	SaveBatch(transactions []models.Transaction, userID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID, filters TransactionFilters) ([]models.Transaction, error)
	UpdateCategory(id uuid.UUID, category models.Category) error
	MarkRecurring(ids []uuid.UUID) error
	ClearRecurring(userID uuid.UUID) error
	CountByUserID(userID uuid.UUID) (int64, error)
	GetAll() ([]models.Transaction, error)
	DeleteByUserID(userID uuid.UUID) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	List() ([]models.User, error)
	Delete(id uuid.UUID) error
}
