package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() Transaction {
	return Transaction{
		UserID:          uuid.New(),
		Date:            NewDate(2024, time.January, 5),
		Description:     "UPI-SWIGGY BANGALORE",
		Amount:          decimal.NewFromFloat(450),
		TransactionType: TransactionTypeDebit,
		Category:        CategoryFood,
		Bank:            BankSBI,
	}
}

func TestTransaction_Validate(t *testing.T) {
	txn := validTransaction()
	assert.NoError(t, txn.Validate())

	missingUser := validTransaction()
	missingUser.UserID = uuid.Nil
	assert.ErrorIs(t, missingUser.Validate(), ErrMissingUser)

	missingDate := validTransaction()
	missingDate.Date = Date{}
	assert.ErrorIs(t, missingDate.Validate(), ErrMissingDate)

	badType := validTransaction()
	badType.TransactionType = "transfer"
	assert.ErrorIs(t, badType.Validate(), ErrInvalidTransactionType)

	zeroAmount := validTransaction()
	zeroAmount.Amount = decimal.Zero
	assert.ErrorIs(t, zeroAmount.Validate(), ErrInvalidAmount)

	negativeAmount := validTransaction()
	negativeAmount.Amount = decimal.NewFromFloat(-10)
	assert.ErrorIs(t, negativeAmount.Validate(), ErrInvalidAmount)

	badCategory := validTransaction()
	badCategory.Category = Category("gambling")
	assert.ErrorIs(t, badCategory.Validate(), ErrInvalidCategory)

	// uncategorized is legal; the categorizer fills it in later
	uncategorized := validTransaction()
	uncategorized.Category = ""
	assert.NoError(t, uncategorized.Validate())
}

func TestTransaction_DebitCredit(t *testing.T) {
	txn := validTransaction()
	assert.True(t, txn.IsDebit())
	assert.False(t, txn.IsCredit())

	txn.TransactionType = TransactionTypeCredit
	assert.True(t, txn.IsCredit())
}

func TestNormalizeBank(t *testing.T) {
	assert.Equal(t, BankSBI, NormalizeBank("SBI"))
	assert.Equal(t, BankHDFC, NormalizeBank("  hdfc "))
	assert.Equal(t, BankAxis, NormalizeBank("Axis"))
	assert.False(t, IsValidBank(NormalizeBank("icici")))
}

func TestUser_PasswordHashing(t *testing.T) {
	u := &User{Username: "asha", Email: "asha@example.com"}
	assert.NoError(t, u.SetPassword("correct horse battery"))
	assert.NotEqual(t, "correct horse battery", u.PasswordHash)

	assert.True(t, u.CheckPassword("correct horse battery"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestCategories_ClosedSet(t *testing.T) {
	assert.Len(t, Categories(), 13)
	assert.True(t, IsValidCategory(CategoryFood))
	assert.True(t, IsValidCategory(CategoryOther))
	assert.False(t, IsValidCategory(Category("gambling")))
}
