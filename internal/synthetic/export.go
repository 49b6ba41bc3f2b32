package synthetic

import (
	"strconv"
	"time"

	"macropanel/internal/config"
	"macropanel/internal/exporter"
)

const (
	timestampFormat = "2006-01-02 15:04:05"
	dateFormat      = "2006-01-02"
	stampFormat     = "20060102"
)

// WriteLoans exports the portfolio to a date-stamped CSV in the writer's
// output directory and returns the file path.
func WriteLoans(w *exporter.Writer, loans []Loan, now time.Time) (string, error) {
	headers := []string{
		"loan_id", "customer_id", "origination_date", "product_type", "province",
		"original_amount", "interest_rate", "credit_score", "annual_income",
		"loan_to_value", "default_flag",
	}

	records := make([][]string, 0, len(loans))
	for _, loan := range loans {
		flag := "0"
		if loan.Defaulted {
			flag = "1"
		}
		records = append(records, []string{
			loan.ID,
			loan.CustomerID,
			loan.OriginationDate.Format(timestampFormat),
			loan.ProductType,
			loan.Province,
			formatAmount(loan.OriginalAmount),
			formatRatio(loan.InterestRate),
			strconv.Itoa(loan.CreditScore),
			formatAmount(loan.AnnualIncome),
			formatRatio(loan.LoanToValue),
			flag,
		})
	}

	name := config.LoansCSVPrefix + now.Format(stampFormat) + ".csv"
	return w.WriteSimpleCSV(name, headers, records)
}

// WritePayments exports the payment history to a date-stamped CSV in the
// writer's output directory and returns the file path.
func WritePayments(w *exporter.Writer, payments []Payment, now time.Time) (string, error) {
	headers := []string{"loan_id", "payment_date", "scheduled_amount", "days_past_due"}

	records := make([][]string, 0, len(payments))
	for _, p := range payments {
		records = append(records, []string{
			p.LoanID,
			p.Date.Format(dateFormat),
			formatAmount(p.ScheduledAmount),
			strconv.Itoa(p.DaysPastDue),
		})
	}

	name := config.PaymentsCSVPrefix + now.Format(stampFormat) + ".csv"
	return w.WriteSimpleCSV(name, headers, records)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
