package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Analytics output contracts. These shapes are what rendering and
// reporting collaborators consume; monetary values are already rounded
// to 2 decimal places when they appear here.

// BasicStats summarizes one user's full transaction set.
type BasicStats struct {
	TotalTransactions  int             `json:"total_transactions"`
	TotalDebit         decimal.Decimal `json:"total_debit"`
	TotalCredit        decimal.Decimal `json:"total_credit"`
	NetCashflow        decimal.Decimal `json:"net_cashflow"`
	AverageTransaction decimal.Decimal `json:"average_transaction"`
}

// CategoryTotal is one row of the spending-by-category breakdown.
type CategoryTotal struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryFlow is the debit/credit pair inside a monthly breakdown.
type CategoryFlow struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// MonthlySummary aggregates one calendar month. Categories absent from
// the month are omitted from the sub-map, not zero-filled.
type MonthlySummary struct {
	Month       string                    `json:"month"`
	TotalDebit  decimal.Decimal           `json:"total_debit"`
	TotalCredit decimal.Decimal           `json:"total_credit"`
	Categories  map[Category]CategoryFlow `json:"categories"`
}

// DailySpend is one heatmap cell: total debits on one calendar date.
type DailySpend struct {
	Date   Date            `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// Anomaly reports a transaction whose amount deviates from its
// category's distribution beyond the z-score threshold.
type Anomaly struct {
	ID          uuid.UUID       `json:"id"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	ZScore      float64         `json:"z_score"`
}

// IntBool serializes a boolean as 0/1, the historical wire format for
// the overshoot flag.
type IntBool bool

func (b IntBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (b *IntBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "1", "true":
		*b = true
	default:
		*b = false
	}
	return nil
}

// ProjectionEntry is the month-end spending projection for one
// category, or for the aggregate under the "total" key.
type ProjectionEntry struct {
	CurrentSpent      decimal.Decimal `json:"current_spent"`
	ProjectedAmount   decimal.Decimal `json:"projected_amount"`
	PreviousMonth     decimal.Decimal `json:"previous_month"`
	PossibleOvershoot IntBool         `json:"possible_overshoot"`
}

// ProjectionTotalKey indexes the aggregate projection alongside the
// per-category entries.
const ProjectionTotalKey = "total"

// SpendingProjection maps category name (or ProjectionTotalKey) to its
// projection entry. Empty when the current month has no debit activity.
type SpendingProjection map[string]ProjectionEntry
