package repositories

import (
	"errors"
	"fmt"
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// SaveBatch persists a parsed statement's transactions for one user in
// a single database transaction: either the whole batch lands or none
// of it does.
func (r *transactionRepository) SaveBatch(transactions []models.Transaction, userID uuid.UUID) error {
	if len(transactions) == 0 {
		return nil
	}

	for i := range transactions {
		transactions[i].UserID = userID
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to save transaction batch: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetByUserID retrieves a user's transactions ordered by date
// ascending, optionally narrowed by the filters.
func (r *transactionRepository) GetByUserID(userID uuid.UUID, filters TransactionFilters) ([]models.Transaction, error) {
	var transactions []models.Transaction

	query := r.db.Where("user_id = ?", userID)
	if filters.StartDate != nil {
		query = query.Where("date >= ?", filters.StartDate.String())
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", filters.EndDate.String())
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Bank != "" {
		query = query.Where("bank = ?", filters.Bank)
	}
	if filters.Recurring != nil {
		query = query.Where("is_recurring = ?", *filters.Recurring)
	}

	if err := query.Order("date ASC, created_at ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// UpdateCategory overrides the stored category of one transaction.
func (r *transactionRepository) UpdateCategory(id uuid.UUID, category models.Category) error {
	if !models.IsValidCategory(category) {
		return models.ErrInvalidCategory
	}

	// UpdateColumns: a partial update on a sparse model value must not
	// run the full-record BeforeUpdate validation.
	result := r.db.Model(&models.Transaction{ID: id}).
		UpdateColumns(map[string]interface{}{
			"category":   category,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// MarkRecurring flags the given transactions as recurring.
func (r *transactionRepository) MarkRecurring(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := r.db.Model(&models.Transaction{}).
		Where("id IN ?", ids).
		UpdateColumns(map[string]interface{}{
			"is_recurring": true,
			"updated_at":   time.Now(),
		}).Error; err != nil {
		return fmt.Errorf("failed to mark transactions recurring: %w", err)
	}
	return nil
}

// ClearRecurring resets all recurrence flags for a user before a fresh
// recurrence pass.
func (r *transactionRepository) ClearRecurring(userID uuid.UUID) error {
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND is_recurring = ?", userID, true).
		UpdateColumns(map[string]interface{}{
			"is_recurring": false,
			"updated_at":   time.Now(),
		}).Error; err != nil {
		return fmt.Errorf("failed to clear recurring flags: %w", err)
	}
	return nil
}

// CountByUserID counts a user's stored transactions.
func (r *transactionRepository) CountByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// GetAll retrieves every stored transaction across users, the training
// corpus for the learned categorizer tier.
func (r *transactionRepository) GetAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("date ASC, created_at ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get all transactions: %w", err)
	}
	return transactions, nil
}

// DeleteByUserID removes all of a user's transactions.
func (r *transactionRepository) DeleteByUserID(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.Transaction{}).Error; err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	return nil
}
