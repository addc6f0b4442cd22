package analytics

import (
	"math"
	"sort"

	"finsight/internal/models"
)

// DetectAnomalies flags transactions whose amount deviates from their
// category's distribution by more than zThreshold standard deviations.
//
// Categories with at most one transaction, or with zero amount
// variance, are skipped entirely: there is no distribution to deviate
// from, so they report no anomalies by design. The standard deviation
// is the sample deviation (n-1 denominator).
func (a *Analyzer) DetectAnomalies(zThreshold float64) []models.Anomaly {
	if zThreshold <= 0 {
		zThreshold = DefaultZThreshold
	}

	byCategory := make(map[models.Category][]int)
	for i := range a.transactions {
		category := a.transactions[i].Category
		byCategory[category] = append(byCategory[category], i)
	}

	categories := make([]models.Category, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	var anomalies []models.Anomaly
	for _, category := range categories {
		indices := byCategory[category]
		if len(indices) <= 1 {
			continue
		}

		mean, std := sampleStats(a.amounts(indices))
		if std == 0 {
			continue
		}

		for _, idx := range indices {
			t := &a.transactions[idx]
			z := (amountFloat(t) - mean) / std
			if math.Abs(z) > zThreshold {
				anomalies = append(anomalies, models.Anomaly{
					ID:          t.ID,
					Date:        t.Date,
					Description: t.Description,
					Amount:      t.Amount.Round(2),
					Category:    category,
					ZScore:      math.Round(z*100) / 100,
				})
			}
		}
	}
	return anomalies
}

func (a *Analyzer) amounts(indices []int) []float64 {
	values := make([]float64, len(indices))
	for i, idx := range indices {
		values[i] = amountFloat(&a.transactions[idx])
	}
	return values
}

func amountFloat(t *models.Transaction) float64 {
	f, _ := t.Amount.Float64()
	return f
}

// sampleStats returns the mean and sample standard deviation.
func sampleStats(values []float64) (float64, float64) {
	n := float64(len(values))
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n

	var squared float64
	for _, v := range values {
		d := v - mean
		squared += d * d
	}
	return mean, math.Sqrt(squared / (n - 1))
}
