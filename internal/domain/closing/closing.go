// Package closing is the daily cash-closing and commission aggregation
// engine. Both reducers take the slice of ledger lines for one business date
// and are pure: aggregates are never persisted, they are recomputed from the
// ledger on every request so edits and deletes are always reflected.
package closing

import (
	"sort"

	"washbook/internal/domain/record"

	"github.com/shopspring/decimal"
)

// Line is the projection of a ledger entry the aggregators need.
type Line struct {
	WasherID   int64
	WasherName string
	Cost       decimal.Decimal
	Percentage decimal.Decimal
	Status     record.PaymentStatus
}

// Summary is the end-of-day financial picture. Headline figures cover paid
// records only; pending work is reported separately so uncollected money is
// never recognized as revenue. NetProfit always equals
// GrossIncome - CommissionsPaid exactly.
type Summary struct {
	Date              string
	GrossIncome       decimal.Decimal
	CommissionsPaid   decimal.Decimal
	NetProfit         decimal.Decimal
	PaidCount         int
	AveragePerService decimal.Decimal
	PendingCount      int
	PendingAmount     decimal.Decimal
}

// Summarize reduces one day's ledger slice into the cash-closing summary.
func Summarize(date string, lines []Line) Summary {
	s := Summary{
		Date:              date,
		GrossIncome:       decimal.Zero,
		CommissionsPaid:   decimal.Zero,
		NetProfit:         decimal.Zero,
		AveragePerService: decimal.Zero,
		PendingAmount:     decimal.Zero,
	}

	for _, l := range lines {
		switch l.Status {
		case record.PaymentPaid:
			s.GrossIncome = s.GrossIncome.Add(l.Cost)
			s.CommissionsPaid = s.CommissionsPaid.Add(record.Commission(l.Cost, l.Percentage))
			s.PaidCount++
		case record.PaymentPending:
			s.PendingAmount = s.PendingAmount.Add(l.Cost)
			s.PendingCount++
		}
	}

	s.NetProfit = s.GrossIncome.Sub(s.CommissionsPaid)
	if s.PaidCount > 0 {
		s.AveragePerService = s.GrossIncome.Div(decimal.NewFromInt(int64(s.PaidCount)))
	}
	return s
}

// WasherTotal is one washer's share of a day's paid records.
//
// AveragePercentage is the unweighted mean of the percentage field across
// the washer's records, while the commission totals are cost-weighted by
// construction. The asymmetry matches observed bookkeeping practice and is
// kept as is.
type WasherTotal struct {
	WasherID          int64
	WasherName        string
	ServiceCount      int
	TotalBilled       decimal.Decimal
	TotalCommission   decimal.Decimal
	AveragePercentage decimal.Decimal
}

// Breakdown ranks washers by commission earned, highest first, with grand
// totals that reconcile exactly with the per-washer rows.
type Breakdown struct {
	Date            string
	Washers         []WasherTotal
	TotalServices   int
	TotalCommission decimal.Decimal
}

type washerKey struct {
	id   int64
	name string
}

// CommissionsByWasher reduces one day's ledger slice into the per-washer
// commission breakdown. Only paid records count; grouping is by
// (washer id, snapshot name) so a quick-renamed washer shows up under the
// name stored on each row.
func CommissionsByWasher(date string, lines []Line) Breakdown {
	acc := make(map[washerKey]*WasherTotal)
	sums := make(map[washerKey]decimal.Decimal) // percentage sums for the mean

	for _, l := range lines {
		if l.Status != record.PaymentPaid {
			continue
		}
		key := washerKey{id: l.WasherID, name: l.WasherName}
		t, ok := acc[key]
		if !ok {
			t = &WasherTotal{
				WasherID:        l.WasherID,
				WasherName:      l.WasherName,
				TotalBilled:     decimal.Zero,
				TotalCommission: decimal.Zero,
			}
			acc[key] = t
			sums[key] = decimal.Zero
		}
		t.ServiceCount++
		t.TotalBilled = t.TotalBilled.Add(l.Cost)
		t.TotalCommission = t.TotalCommission.Add(record.Commission(l.Cost, l.Percentage))
		sums[key] = sums[key].Add(l.Percentage)
	}

	b := Breakdown{
		Date:            date,
		Washers:         make([]WasherTotal, 0, len(acc)),
		TotalCommission: decimal.Zero,
	}
	for key, t := range acc {
		t.AveragePercentage = sums[key].Div(decimal.NewFromInt(int64(t.ServiceCount)))
		b.Washers = append(b.Washers, *t)
		b.TotalServices += t.ServiceCount
		b.TotalCommission = b.TotalCommission.Add(t.TotalCommission)
	}

	sort.SliceStable(b.Washers, func(i, j int) bool {
		if !b.Washers[i].TotalCommission.Equal(b.Washers[j].TotalCommission) {
			return b.Washers[i].TotalCommission.GreaterThan(b.Washers[j].TotalCommission)
		}
		return b.Washers[i].WasherName < b.Washers[j].WasherName
	})

	return b
}
