package services

import (
	"strings"
	"testing"
	"time"

	"finsight/internal/models"
	"finsight/internal/parser"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMonth(t *testing.T) {
	gen := NewTransactionGenerator(42)
	month := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	transactions := gen.GenerateMonth(month, 20)
	require.Len(t, transactions, 20)

	// the fixed anchors come first
	assert.Equal(t, "2024-03-01", transactions[0].Date.String())
	assert.True(t, strings.HasPrefix(transactions[0].Description, "SALARY CREDIT"))
	assert.Equal(t, models.TransactionTypeCredit, transactions[0].TransactionType)

	assert.Equal(t, "HOUSE RENT TRANSFER", transactions[1].Description)
	assert.Equal(t, "2024-03-05", transactions[1].Date.String())

	assert.Equal(t, "NETFLIX SUBSCRIPTION", transactions[2].Description)

	for _, txn := range transactions {
		assert.Equal(t, "2024-03", txn.Date.Month())
		assert.True(t, txn.Amount.IsPositive())
	}
}

func TestGenerateMonth_Deterministic(t *testing.T) {
	month := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	first := NewTransactionGenerator(7).GenerateMonth(month, 15)
	second := NewTransactionGenerator(7).GenerateMonth(month, 15)
	require.Equal(t, first, second)

	third := NewTransactionGenerator(8).GenerateMonth(month, 15)
	assert.NotEqual(t, first, third)
}

func TestGenerateHistory(t *testing.T) {
	gen := NewTransactionGenerator(42)

	history := gen.GenerateHistory(3, 10)
	require.Len(t, history, 30)

	// months come back oldest first
	assert.True(t, history[0].Date.Before(history[29].Date))

	months := make(map[string]bool)
	for _, txn := range history {
		months[txn.Date.Month()] = true
	}
	assert.Len(t, months, 3)
}

func TestGenerateCSV_RoundTripsThroughParser(t *testing.T) {
	gen := NewTransactionGenerator(42)
	month := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	generated := gen.GenerateMonth(month, 12)

	csv := gen.GenerateCSV(generated)
	assert.True(t, strings.HasPrefix(csv, "Date,Description,Debit,Credit\n"))

	result, err := parser.NewService().ParseFile("seed.csv", []byte(csv), models.BankSBI, uuid.New())
	require.NoError(t, err)
	require.Len(t, result.Transactions, 12)
	assert.Empty(t, result.RecordErrors)

	for i, txn := range result.Transactions {
		assert.Equal(t, generated[i].Date.String(), txn.Date.String())
		assert.Equal(t, generated[i].Description, txn.Description)
		assert.True(t, generated[i].Amount.Equal(txn.Amount))
		assert.Equal(t, generated[i].TransactionType, txn.TransactionType)
	}
}
