package analytics

import (
	"sort"

	"finsight/internal/models"
)

// IdentifyRecurring marks recurring transactions in the working set
// and returns the full mutated collection.
//
// Transactions are grouped by the exact (description, amount) pair.
// In a group of at least minOccurrences, one pair of chronologically
// adjacent occurrences within windowDays promotes the ENTIRE group to
// recurring, not just the close pair. The whole-group policy is
// deliberate: it keeps irregular recurring bills (annual renewals
// alongside monthly charges of the same amount) flagged together.
func (a *Analyzer) IdentifyRecurring(minOccurrences, windowDays int) []models.Transaction {
	if minOccurrences <= 0 {
		minOccurrences = DefaultMinOccurrences
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	groups := make(map[string][]int)
	for i := range a.transactions {
		t := &a.transactions[i]
		key := t.Description + "\x00" + t.Amount.StringFixed(2)
		groups[key] = append(groups[key], i)
	}

	for _, indices := range groups {
		if len(indices) < minOccurrences {
			continue
		}

		sort.Slice(indices, func(x, y int) bool {
			return a.transactions[indices[x]].Date.Before(a.transactions[indices[y]].Date)
		})

		recurring := false
		for k := 0; k < len(indices)-1; k++ {
			gap := a.transactions[indices[k]].Date.DaysUntil(a.transactions[indices[k+1]].Date)
			if gap <= windowDays {
				recurring = true
				break
			}
		}
		if !recurring {
			continue
		}

		for _, idx := range indices {
			a.transactions[idx].IsRecurring = true
		}
	}
	return a.transactions
}

// Recurring lists the transactions currently flagged recurring,
// typically after IdentifyRecurring, for persistence of the flags.
func (a *Analyzer) Recurring() []models.Transaction {
	var flagged []models.Transaction
	for i := range a.transactions {
		if a.transactions[i].IsRecurring {
			flagged = append(flagged, a.transactions[i])
		}
	}
	return flagged
}
