package parser

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Canonical column names every dialect maps onto.
const (
	columnDate        = "Date"
	columnDescription = "Description"
	columnDebit       = "Debit"
	columnCredit      = "Credit"
)

// Dialect is the per-bank parsing strategy: one routine for delimited
// tabular text, one for free text already extracted from a PDF.
type Dialect interface {
	Bank() models.Bank
	ParseTabular(content string, userID uuid.UUID) (*Result, error)
	ParseText(content string, userID uuid.UUID) (*Result, error)
}

// dialect is the shared strategy implementation. Banks differ only in
// header aliases, date formats and the free-text line pattern, so each
// bank is a value of this type rather than a separate code path.
type dialect struct {
	bank          models.Bank
	headerAliases map[string]string
	dateFormats   []string

	// linePattern captures (date, description, optional debit,
	// optional credit, balance) from one extracted-text line.
	linePattern *regexp.Regexp
}

func (d *dialect) Bank() models.Bank {
	return d.bank
}

// ParseTabular parses CSV content against the dialect's schema.
func (d *dialect) ParseTabular(content string, userID uuid.UUID) (*Result, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read statement as CSV: %w", err)
	}
	if len(rows) == 0 {
		return &Result{}, nil
	}

	columns, err := d.mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header row
		txn, recErr := d.parseRow(row, columns, len(rows[0]), line, userID)
		if recErr != nil {
			result.RecordErrors = append(result.RecordErrors, recErr)
			continue
		}
		result.Transactions = append(result.Transactions, *txn)
	}
	return result, nil
}

// mapColumns renames dialect-specific headers onto the canonical
// schema and verifies all required columns are present.
func (d *dialect) mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if canonical, ok := d.headerAliases[name]; ok {
			name = canonical
		} else {
			switch name {
			case "date":
				name = columnDate
			case "description":
				name = columnDescription
			case "debit":
				name = columnDebit
			case "credit":
				name = columnCredit
			}
		}
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}

	for _, required := range []string{columnDate, columnDescription, columnDebit, columnCredit} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumns, required)
		}
	}
	return columns, nil
}

func (d *dialect) parseRow(row []string, columns map[string]int, width, line int, userID uuid.UUID) (*models.Transaction, *RecordError) {
	if len(row) < width {
		return nil, &RecordError{Line: line, Reason: fmt.Sprintf("expected %d fields, got %d", width, len(row))}
	}

	date, err := d.parseDate(strings.TrimSpace(row[columns[columnDate]]))
	if err != nil {
		return nil, &RecordError{Line: line, Reason: "unparseable date", Err: err}
	}

	debit, err := parseAmountField(row[columns[columnDebit]])
	if err != nil {
		return nil, &RecordError{Line: line, Reason: "non-numeric debit amount", Err: err}
	}
	credit, err := parseAmountField(row[columns[columnCredit]])
	if err != nil {
		return nil, &RecordError{Line: line, Reason: "non-numeric credit amount", Err: err}
	}

	amount, txnType, err := deriveAmount(debit, credit)
	if err != nil {
		return nil, &RecordError{Line: line, Reason: "no non-zero amount", Err: err}
	}

	return &models.Transaction{
		UserID:          userID,
		Date:            date,
		Description:     strings.TrimSpace(row[columns[columnDescription]]),
		Amount:          amount,
		TransactionType: txnType,
		Bank:            d.bank,
	}, nil
}

// ParseText applies the dialect's line pattern to extracted PDF text.
// Lines that do not match the expected record shape are counted and
// skipped; the pattern anchors on the full record layout.
func (d *dialect) ParseText(content string, userID uuid.UUID) (*Result, error) {
	result := &Result{}
	for i, raw := range strings.Split(content, "\n") {
		line := i + 1
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}

		match := d.linePattern.FindStringSubmatch(text)
		if match == nil {
			result.SkippedLines++
			continue
		}

		date, err := d.parseDate(match[1])
		if err != nil {
			result.RecordErrors = append(result.RecordErrors, &RecordError{Line: line, Reason: "unparseable date", Err: err})
			continue
		}

		// Optional capture groups come back empty when the dialect's
		// withdrawal/deposit columns are blank; empty means zero.
		debit, err := parseAmountField(match[3])
		if err != nil {
			result.RecordErrors = append(result.RecordErrors, &RecordError{Line: line, Reason: "non-numeric debit amount", Err: err})
			continue
		}
		credit, err := parseAmountField(match[4])
		if err != nil {
			result.RecordErrors = append(result.RecordErrors, &RecordError{Line: line, Reason: "non-numeric credit amount", Err: err})
			continue
		}

		amount, txnType, err := deriveAmount(debit, credit)
		if err != nil {
			result.RecordErrors = append(result.RecordErrors, &RecordError{Line: line, Reason: "no non-zero amount", Err: err})
			continue
		}

		result.Transactions = append(result.Transactions, models.Transaction{
			UserID:          userID,
			Date:            date,
			Description:     strings.TrimSpace(match[2]),
			Amount:          amount,
			TransactionType: txnType,
			Bank:            d.bank,
		})
	}
	return result, nil
}

// parseDate tries the dialect's date formats in order.
func (d *dialect) parseDate(value string) (models.Date, error) {
	var lastErr error
	for _, layout := range d.dateFormats {
		t, err := time.Parse(layout, value)
		if err == nil {
			return models.DateOf(t), nil
		}
		lastErr = err
	}
	return models.Date{}, lastErr
}

// parseAmountField parses a statement amount cell. Blank cells mean
// zero; thousands separators are tolerated.
func parseAmountField(value string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if cleaned == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(cleaned)
}

// deriveAmount picks the transaction amount and type from whichever of
// the debit/credit columns is non-zero. Debit wins when both are
// present; only one should be.
func deriveAmount(debit, credit decimal.Decimal) (decimal.Decimal, string, error) {
	switch {
	case debit.IsPositive():
		return debit, models.TransactionTypeDebit, nil
	case credit.IsPositive():
		return credit, models.TransactionTypeCredit, nil
	default:
		return decimal.Zero, "", fmt.Errorf("both debit and credit are zero or blank")
	}
}
