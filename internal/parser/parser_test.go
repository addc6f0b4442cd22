package parser

import (
	"errors"
	"testing"

	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockExtractor struct {
	extractFunc func(content []byte) (string, error)
}

func (m *mockExtractor) ExtractText(content []byte) (string, error) {
	return m.extractFunc(content)
}

func TestParseTabular_SBI(t *testing.T) {
	content := "Date,Description,Debit,Credit,Balance\n" +
		"01/04/2023,SALARY CREDIT ACME,0.00,50000.00,50000.00\n" +
		"03/04/2023,UPI-SWIGGY BANGALORE,450.00,0.00,49550.00\n"

	userID := uuid.New()
	svc := NewService()
	result, err := svc.Parse(content, KindTabular, models.BankSBI, userID)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	assert.Empty(t, result.RecordErrors)

	salary := result.Transactions[0]
	assert.Equal(t, "2023-04-01", salary.Date.String())
	assert.Equal(t, "SALARY CREDIT ACME", salary.Description)
	assert.Equal(t, models.TransactionTypeCredit, salary.TransactionType)
	assert.Equal(t, "50000", salary.Amount.String())
	assert.Equal(t, models.BankSBI, salary.Bank)
	assert.Equal(t, userID, salary.UserID)

	swiggy := result.Transactions[1]
	assert.Equal(t, models.TransactionTypeDebit, swiggy.TransactionType)
	assert.Equal(t, "450", swiggy.Amount.String())
}

func TestParseTabular_HDFC_BlankCellsAndCommas(t *testing.T) {
	content := "Date,Narration,Withdrawal Amt.,Deposit Amt.,Closing Balance\n" +
		"01/04/2023,SALARY,,\"1,50,000.00\",150000.00\n" +
		"05/04/2023,HOUSE RENT TRANSFER,\"18,000.00\",,132000.00\n"

	svc := NewService()
	result, err := svc.Parse(content, KindTabular, models.BankHDFC, uuid.New())
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)

	assert.Equal(t, models.TransactionTypeCredit, result.Transactions[0].TransactionType)
	assert.Equal(t, "150000", result.Transactions[0].Amount.String())
	assert.Equal(t, models.TransactionTypeDebit, result.Transactions[1].TransactionType)
	assert.Equal(t, "18000", result.Transactions[1].Amount.String())
	assert.Equal(t, models.BankHDFC, result.Transactions[0].Bank)
}

func TestParseTabular_Axis_DateFormats(t *testing.T) {
	content := "Tran Date,Particulars,Dr Amount,Cr Amount,Balance\n" +
		"01-04-2023,UPI-OLA CABS,180.00,,9820.00\n" +
		"02/04/2023,REFUND CREDIT,,99.00,9919.00\n"

	svc := NewService()
	result, err := svc.Parse(content, KindTabular, models.BankAxis, uuid.New())
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	assert.Equal(t, "2023-04-01", result.Transactions[0].Date.String())
	assert.Equal(t, "2023-04-02", result.Transactions[1].Date.String())
}

func TestParseTabular_MissingColumns(t *testing.T) {
	content := "Date,Description,Amount\n01/04/2023,SALARY,100.00\n"

	svc := NewService()
	_, err := svc.Parse(content, KindTabular, models.BankSBI, uuid.New())
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestParseTabular_MalformedRowsPreserveGoodOnes(t *testing.T) {
	content := "Date,Description,Debit,Credit,Balance\n" +
		"01/04/2023,GOOD ROW,100.00,0.00,900.00\n" +
		"not-a-date,BAD DATE,100.00,0.00,800.00\n" +
		"03/04/2023,NO AMOUNTS,0.00,0.00,800.00\n" +
		"04/04/2023,ANOTHER GOOD ROW,0.00,250.00,1050.00\n"

	svc := NewService()
	result, err := svc.Parse(content, KindTabular, models.BankSBI, uuid.New())
	require.NoError(t, err)

	require.Len(t, result.Transactions, 2)
	assert.Equal(t, "GOOD ROW", result.Transactions[0].Description)
	assert.Equal(t, "ANOTHER GOOD ROW", result.Transactions[1].Description)

	require.Len(t, result.RecordErrors, 2)
	assert.Equal(t, 3, result.RecordErrors[0].Line)
	assert.Contains(t, result.RecordErrors[0].Error(), "unparseable date")
	assert.Equal(t, 4, result.RecordErrors[1].Line)
	assert.Contains(t, result.RecordErrors[1].Error(), "no non-zero amount")
}

func TestParseText_SBI_SkipsNoiseLines(t *testing.T) {
	content := "STATE BANK OF INDIA\n" +
		"Statement for Account 1234\n" +
		"\n" +
		"01/04/2023 SALARY CREDIT ACME 0.00 50000.00 50000.00\n" +
		"03/04/2023 UPI-SWIGGY BANGALORE 450.00 0.00 49550.00\n" +
		"End of statement\n"

	svc := NewService()
	result, err := svc.Parse(content, KindText, models.BankSBI, uuid.New())
	require.NoError(t, err)

	require.Len(t, result.Transactions, 2)
	assert.Equal(t, 3, result.SkippedLines) // two header lines plus the footer
	assert.Equal(t, models.TransactionTypeCredit, result.Transactions[0].TransactionType)
	assert.Equal(t, "450", result.Transactions[1].Amount.String())
}

func TestParseText_HDFC_WithdrawalOnly(t *testing.T) {
	content := "05/04/2023 ATM WDL MG ROAD 2000.00 48000.00\n"

	svc := NewService()
	result, err := svc.Parse(content, KindText, models.BankHDFC, uuid.New())
	require.NoError(t, err)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, models.TransactionTypeDebit, result.Transactions[0].TransactionType)
	assert.Equal(t, "2000", result.Transactions[0].Amount.String())
}

func TestParse_UnsupportedBank(t *testing.T) {
	svc := NewService()
	_, err := svc.Parse("anything", KindTabular, models.Bank("icici"), uuid.New())
	assert.ErrorIs(t, err, ErrUnsupportedBank)
}

func TestParseFile_RoutesByExtension(t *testing.T) {
	csvContent := "Date,Description,Debit,Credit,Balance\n" +
		"01/04/2023,UPI-SWIGGY BANGALORE,450.00,0.00,49550.00\n"
	textContent := "01/04/2023 UPI-SWIGGY BANGALORE 450.00 0.00 49550.00\n"

	svc := NewService()

	result, err := svc.ParseFile("statement.csv", []byte(csvContent), models.BankSBI, uuid.New())
	require.NoError(t, err)
	assert.Len(t, result.Transactions, 1)

	result, err = svc.ParseFile("statement.txt", []byte(textContent), models.BankSBI, uuid.New())
	require.NoError(t, err)
	assert.Len(t, result.Transactions, 1)

	_, err = svc.ParseFile("statement.xlsx", []byte(csvContent), models.BankSBI, uuid.New())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseFile_PDFUsesExtractor(t *testing.T) {
	extracted := "01/04/2023 UPI-SWIGGY BANGALORE 450.00 0.00 49550.00\n"
	svc := NewService(WithTextExtractor(&mockExtractor{
		extractFunc: func(content []byte) (string, error) {
			return extracted, nil
		},
	}))

	result, err := svc.ParseFile("statement.pdf", []byte("%PDF-1.4 ..."), models.BankSBI, uuid.New())
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "UPI-SWIGGY BANGALORE", result.Transactions[0].Description)
}

func TestParseFile_PDFExtractorFailure(t *testing.T) {
	svc := NewService(WithTextExtractor(&mockExtractor{
		extractFunc: func(content []byte) (string, error) {
			return "", errors.New("encrypted document")
		},
	}))

	_, err := svc.ParseFile("statement.pdf", []byte("%PDF-1.4 ..."), models.BankSBI, uuid.New())
	assert.ErrorContains(t, err, "encrypted document")
}

func TestSupportedBanks(t *testing.T) {
	svc := NewService()
	assert.Equal(t, []models.Bank{models.BankAxis, models.BankHDFC, models.BankSBI}, svc.SupportedBanks())
}
