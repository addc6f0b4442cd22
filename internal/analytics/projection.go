package analytics

import (
	"sort"
	"time"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// ProjectMonthlySpending linearly extrapolates the current month's
// debit activity to a month-end total, per category and in aggregate.
//
// The daily average comes from elapsed days and scales to the actual
// length of the current month. The baseline is the corresponding spend
// from the month exactly 30 days prior (not the literal previous
// calendar month) times an overshoot multiplier: 1.2x per category,
// 1.1x for the aggregate. A category with zero spend in that baseline
// window is never flagged, which avoids both division by zero and an
// always-overshooting cold start. Returns an empty projection when the
// current month has no debit activity.
func (a *Analyzer) ProjectMonthlySpending() models.SpendingProjection {
	projections := models.SpendingProjection{}
	if len(a.transactions) == 0 {
		return projections
	}

	currentMonth := models.DateOf(a.now).Month()
	previousMonth := models.DateOf(a.now.AddDate(0, 0, -30)).Month()

	daysElapsed := decimal.NewFromInt(int64(a.now.Day()))
	daysInMonth := decimal.NewFromInt(int64(lastDayOfMonth(a.now)))

	currentByCategory := make(map[models.Category]decimal.Decimal)
	previousByCategory := make(map[models.Category]decimal.Decimal)
	previousTotal := decimal.Zero

	for i := range a.transactions {
		t := &a.transactions[i]
		if !t.IsDebit() {
			continue
		}
		switch a.rows[i].month {
		case currentMonth:
			currentByCategory[t.Category] = currentByCategory[t.Category].Add(t.Amount)
		case previousMonth:
			previousByCategory[t.Category] = previousByCategory[t.Category].Add(t.Amount)
			previousTotal = previousTotal.Add(t.Amount)
		}
	}

	if len(currentByCategory) == 0 {
		return projections
	}

	categories := make([]models.Category, 0, len(currentByCategory))
	for category := range currentByCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	currentTotal := decimal.Zero
	for _, category := range categories {
		spent := currentByCategory[category]
		currentTotal = currentTotal.Add(spent)

		projected := spent.Mul(daysInMonth).Div(daysElapsed)
		previous := previousByCategory[category]

		projections[category.String()] = models.ProjectionEntry{
			CurrentSpent:      spent.Round(2),
			ProjectedAmount:   projected.Round(2),
			PreviousMonth:     previous.Round(2),
			PossibleOvershoot: overshoots(projected, previous, a.categoryMultiplier),
		}
	}

	projectedTotal := currentTotal.Mul(daysInMonth).Div(daysElapsed)
	projections[models.ProjectionTotalKey] = models.ProjectionEntry{
		CurrentSpent:      currentTotal.Round(2),
		ProjectedAmount:   projectedTotal.Round(2),
		PreviousMonth:     previousTotal.Round(2),
		PossibleOvershoot: overshoots(projectedTotal, previousTotal, a.totalMultiplier),
	}
	return projections
}

// overshoots short-circuits to false on a zero baseline.
func overshoots(projected, previous, multiplier decimal.Decimal) models.IntBool {
	if !previous.IsPositive() {
		return false
	}
	return models.IntBool(projected.GreaterThan(previous.Mul(multiplier)))
}

func lastDayOfMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
