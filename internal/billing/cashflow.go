package billing

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentRow is the flat view of one installment used by the cash-flow
// screen and the Excel export: the owning order's number and client name are
// denormalized in.
type InstallmentRow struct {
	ID          uint            `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	ClientName  string          `json:"clientName"`
	Amount      decimal.Decimal `json:"amount"`
	Number      int             `json:"number"`
	OrderCount  int             `json:"orderCount"`
	DueDate     time.Time       `json:"dueDate"`
	Status      string          `json:"status"`
}

// Label renders the "2/6"-style position of the installment within its order.
func (r InstallmentRow) Label() string {
	return fmt.Sprintf("%d/%d", r.Number, r.OrderCount)
}

// MonthSummary holds one month of the cash-flow projection.
type MonthSummary struct {
	PendingTotal decimal.Decimal  `json:"pendingTotal"`
	SettledTotal decimal.Decimal  `json:"settledTotal"`
	Rows         []InstallmentRow `json:"rows"`
}

// CashFlow is the monthly projection of a full installment snapshot,
// keyed by "YYYY-MM".
type CashFlow struct {
	byMonth map[string]MonthSummary
}

// MonthKey formats t's year-month as the zero-padded "YYYY-MM" grouping key,
// so lexicographic order of keys is chronological order.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// Aggregate groups installments by due month and accumulates pending and
// settled totals per month. The input is not mutated; rows inside each month
// come out sorted by due date ascending, equal dates keeping input order.
func Aggregate(rows []InstallmentRow) CashFlow {
	byMonth := make(map[string]MonthSummary)

	for _, row := range rows {
		key := MonthKey(row.DueDate)
		summary, ok := byMonth[key]
		if !ok {
			summary = MonthSummary{
				PendingTotal: decimal.Zero,
				SettledTotal: decimal.Zero,
			}
		}

		if row.Status == "Settled" {
			summary.SettledTotal = summary.SettledTotal.Add(row.Amount)
		} else {
			summary.PendingTotal = summary.PendingTotal.Add(row.Amount)
		}
		summary.Rows = append(summary.Rows, row)
		byMonth[key] = summary
	}

	for key, summary := range byMonth {
		sort.SliceStable(summary.Rows, func(i, j int) bool {
			return summary.Rows[i].DueDate.Before(summary.Rows[j].DueDate)
		})
		byMonth[key] = summary
	}

	return CashFlow{byMonth: byMonth}
}

// Months returns the sorted list of month keys that have at least one
// installment. Used to populate the month selector.
func (cf CashFlow) Months() []string {
	keys := make([]string, 0, len(cf.byMonth))
	for key := range cf.byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Month returns the summary for one "YYYY-MM" key. A month with no
// installments yields zero totals and no rows.
func (cf CashFlow) Month(key string) MonthSummary {
	if summary, ok := cf.byMonth[key]; ok {
		return summary
	}
	return MonthSummary{
		PendingTotal: decimal.Zero,
		SettledTotal: decimal.Zero,
		Rows:         []InstallmentRow{},
	}
}
