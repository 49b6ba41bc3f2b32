package synthetic

import (
	"time"

	"macropanel/internal/timeseries"
)

// Payment is one month-end payment record for a loan.
type Payment struct {
	LoanID          string
	Date            time.Time
	ScheduledAmount float64
	DaysPastDue     int
}

// Delinquency buckets and how often a late month falls in each.
var (
	dpdBuckets = []int{0, 30, 60, 90}
	dpdWeights = []float64{0.4, 0.3, 0.2, 0.1}
)

// lateMonthRate is the share of months a defaulted loan reports late.
const lateMonthRate = 0.3

// Payments generates a month-end payment history for each loan. Every loan
// gets between 12 and 35 payments starting at the first month-end on or
// after origination, with the scheduled amount amortized over 360 periods.
// Only defaulted loans ever report days past due.
func (g *Generator) Payments(loans []Loan) []Payment {
	var records []Payment
	for _, loan := range loans {
		months := 12 + g.rng.IntN(24)
		scheduled := loan.OriginalAmount / 360

		date := timeseries.MonthEnd(loan.OriginationDate)
		for m := 0; m < months; m++ {
			dpd := 0
			if loan.Defaulted && g.rng.Float64() < lateMonthRate {
				dpd = dpdBuckets[int(g.dpd.Rand())]
			}
			records = append(records, Payment{
				LoanID:          loan.ID,
				Date:            date,
				ScheduledAmount: scheduled,
				DaysPastDue:     dpd,
			})
			date = timeseries.MonthEnd(date.AddDate(0, 0, 1))
		}
	}
	return records
}
