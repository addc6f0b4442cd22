package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeDebit  = "debit"
	TransactionTypeCredit = "credit"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrInvalidCategory        = errors.New("category is not in the known set")
	ErrMissingDate            = errors.New("transaction date is required")
	ErrMissingUser            = errors.New("transaction user ID is required")
)

// Transaction is the canonical record moving through the pipeline.
// The parser creates it with Category unset and IsRecurring false; the
// categorizer fills Category; the analytics recurrence step flips
// IsRecurring. The store assigns ID on persistence.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Date            Date            `gorm:"type:date;not null;index" json:"date"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	TransactionType string          `gorm:"type:varchar(10);not null" json:"type"`
	Category        Category        `gorm:"type:varchar(50);index" json:"category,omitempty"`
	IsRecurring     bool            `gorm:"not null;default:false" json:"is_recurring"`
	Bank            Bank            `gorm:"type:varchar(20);not null" json:"bank"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook assigns the store-side identifier.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return t.Validate()
}

// BeforeUpdate hook revalidates full-record saves. The repositories'
// partial column updates run with hooks skipped, since a sparse model
// value cannot satisfy record-level validation.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return t.Validate()
}

// Validate enforces the record invariants from the data model.
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrMissingUser
	}
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if t.Category != "" && !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}
	return nil
}

// IsDebit reports whether the movement left the account.
func (t *Transaction) IsDebit() bool {
	return t.TransactionType == TransactionTypeDebit
}

// IsCredit reports whether the movement entered the account.
func (t *Transaction) IsCredit() bool {
	return t.TransactionType == TransactionTypeCredit
}

// TableName returns the table name for Transaction.
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks the binary debit/credit enum.
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeDebit, TransactionTypeCredit:
		return true
	default:
		return false
	}
}
