// Package analytics computes derived reports over one user's
// categorized transactions: aggregates, recurrence flags, z-score
// anomalies and month-end spending projections. Every function
// tolerates an empty working set by returning zero-valued results, and
// all monetary values are rounded to 2 decimal places at this boundary
// only, so rounding error never compounds through aggregation.
package analytics

import (
	"sort"
	"time"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// Defaults for the heuristic knobs.
const (
	DefaultMinOccurrences = 2
	DefaultWindowDays     = 45
	DefaultZThreshold     = 2.0

	DefaultCategoryOvershootMultiplier = 1.2
	DefaultTotalOvershootMultiplier    = 1.1
)

// row is one transaction with its derived aggregation keys, the
// in-memory indexed table the engine re-reads for every report.
type row struct {
	month  string
	debit  decimal.Decimal
	credit decimal.Decimal
}

// Analyzer computes reports over one user's full transaction set. The
// transaction slice is the working set: the recurrence step mutates
// IsRecurring on its elements.
type Analyzer struct {
	transactions []models.Transaction
	rows         []row

	now                time.Time
	categoryMultiplier decimal.Decimal
	totalMultiplier    decimal.Decimal
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithNow pins the engine's clock; projections depend on it.
func WithNow(now time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// WithOvershootMultipliers overrides the projection baselines.
func WithOvershootMultipliers(category, total float64) Option {
	return func(a *Analyzer) {
		a.categoryMultiplier = decimal.NewFromFloat(category)
		a.totalMultiplier = decimal.NewFromFloat(total)
	}
}

// New indexes the transaction set for repeated aggregation.
func New(transactions []models.Transaction, opts ...Option) *Analyzer {
	a := &Analyzer{
		transactions:       transactions,
		now:                time.Now(),
		categoryMultiplier: decimal.NewFromFloat(DefaultCategoryOvershootMultiplier),
		totalMultiplier:    decimal.NewFromFloat(DefaultTotalOvershootMultiplier),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.rows = make([]row, len(transactions))
	for i := range transactions {
		t := &transactions[i]
		r := row{month: t.Date.Month()}
		if t.IsDebit() {
			r.debit = t.Amount
		} else {
			r.credit = t.Amount
		}
		a.rows[i] = r
	}
	return a
}

// Transactions returns the (possibly mutated) working set.
func (a *Analyzer) Transactions() []models.Transaction {
	return a.transactions
}

// BasicStats returns counts, debit/credit totals, net cashflow and the
// mean transaction amount. All zeros on an empty set.
func (a *Analyzer) BasicStats() models.BasicStats {
	stats := models.BasicStats{
		TotalDebit:         decimal.Zero,
		TotalCredit:        decimal.Zero,
		NetCashflow:        decimal.Zero,
		AverageTransaction: decimal.Zero,
	}
	if len(a.transactions) == 0 {
		return stats
	}

	var amountTotal decimal.Decimal
	for i := range a.rows {
		stats.TotalDebit = stats.TotalDebit.Add(a.rows[i].debit)
		stats.TotalCredit = stats.TotalCredit.Add(a.rows[i].credit)
		amountTotal = amountTotal.Add(a.transactions[i].Amount)
	}

	stats.TotalTransactions = len(a.transactions)
	stats.NetCashflow = stats.TotalCredit.Sub(stats.TotalDebit).Round(2)
	stats.AverageTransaction = amountTotal.Div(decimal.NewFromInt(int64(len(a.transactions)))).Round(2)
	stats.TotalDebit = stats.TotalDebit.Round(2)
	stats.TotalCredit = stats.TotalCredit.Round(2)
	return stats
}

// CategoryBreakdown sums debit amounts per category, sorted descending
// by amount. Credits are excluded.
func (a *Analyzer) CategoryBreakdown() []models.CategoryTotal {
	totals := make(map[models.Category]decimal.Decimal)
	for i := range a.transactions {
		if !a.transactions[i].IsDebit() {
			continue
		}
		category := a.transactions[i].Category
		totals[category] = totals[category].Add(a.transactions[i].Amount)
	}

	breakdown := make([]models.CategoryTotal, 0, len(totals))
	for category, amount := range totals {
		breakdown = append(breakdown, models.CategoryTotal{
			Category: category,
			Amount:   amount.Round(2),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Amount.Equal(breakdown[j].Amount) {
			return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// MonthlyBreakdown aggregates debits and credits per calendar month
// with a per-category sub-breakdown. Months come back in ascending
// order; categories with no activity in a month are omitted from that
// month's sub-map.
func (a *Analyzer) MonthlyBreakdown() []models.MonthlySummary {
	type monthAgg struct {
		debit, credit decimal.Decimal
		categories    map[models.Category]*models.CategoryFlow
	}
	byMonth := make(map[string]*monthAgg)

	for i := range a.transactions {
		t := &a.transactions[i]
		r := &a.rows[i]

		agg, ok := byMonth[r.month]
		if !ok {
			agg = &monthAgg{categories: make(map[models.Category]*models.CategoryFlow)}
			byMonth[r.month] = agg
		}
		agg.debit = agg.debit.Add(r.debit)
		agg.credit = agg.credit.Add(r.credit)

		flow, ok := agg.categories[t.Category]
		if !ok {
			flow = &models.CategoryFlow{}
			agg.categories[t.Category] = flow
		}
		flow.Debit = flow.Debit.Add(r.debit)
		flow.Credit = flow.Credit.Add(r.credit)
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	summaries := make([]models.MonthlySummary, 0, len(months))
	for _, month := range months {
		agg := byMonth[month]
		categories := make(map[models.Category]models.CategoryFlow, len(agg.categories))
		for category, flow := range agg.categories {
			categories[category] = models.CategoryFlow{
				Debit:  flow.Debit.Round(2),
				Credit: flow.Credit.Round(2),
			}
		}
		summaries = append(summaries, models.MonthlySummary{
			Month:       month,
			TotalDebit:  agg.debit.Round(2),
			TotalCredit: agg.credit.Round(2),
			Categories:  categories,
		})
	}
	return summaries
}

// DailyHeatmap sums debit amounts per calendar date, ascending, one
// entry per date with at least one debit.
func (a *Analyzer) DailyHeatmap() []models.DailySpend {
	totals := make(map[string]decimal.Decimal)
	dates := make(map[string]models.Date)
	for i := range a.transactions {
		t := &a.transactions[i]
		if !t.IsDebit() {
			continue
		}
		key := t.Date.String()
		totals[key] = totals[key].Add(t.Amount)
		dates[key] = t.Date
	}

	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	heatmap := make([]models.DailySpend, 0, len(keys))
	for _, key := range keys {
		heatmap = append(heatmap, models.DailySpend{
			Date:   dates[key],
			Amount: totals[key].Round(2),
		})
	}
	return heatmap
}
