// Package billing holds the installment-plan and cash-flow computations.
// Everything here is pure: no database access, no clock reads.
package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlannedInstallment is one entry of a generated installment plan, ready to be
// persisted alongside its order.
type PlannedInstallment struct {
	Amount  decimal.Decimal
	DueDate time.Time
	Number  int
}

// GeneratePlan splits total into count installments due one month apart,
// starting at firstDue. Each amount is total/count rounded DOWN to two
// decimal places; the last installment absorbs the remainder, so the plan
// always sums to total exactly and no amount is ever negative. count must
// be >= 1 - callers default an absent or zero count to 1 before calling.
func GeneratePlan(total decimal.Decimal, count int, firstDue time.Time) []PlannedInstallment {
	each := total.Div(decimal.NewFromInt(int64(count))).RoundDown(2)

	plan := make([]PlannedInstallment, count)
	for i := 0; i < count; i++ {
		plan[i] = PlannedInstallment{
			Amount:  each,
			DueDate: AddMonths(firstDue, i),
			Number:  i + 1,
		}
	}

	// Remainder of the even split lands on the last installment.
	allocated := each.Mul(decimal.NewFromInt(int64(count - 1)))
	plan[count-1].Amount = total.Sub(allocated)

	return plan
}

// AddMonths advances d by the given number of months, clamping the day to the
// last valid day of the target month (Jan 31 + 1 month = Feb 28 or 29).
// time.AddDate is not used because it normalizes overflow into the next month.
func AddMonths(d time.Time, months int) time.Time {
	month := int(d.Month()) - 1 + months
	year := d.Year() + month/12
	month = month%12 + 1

	day := d.Day()
	if last := lastDayOfMonth(year, time.Month(month)); day > last {
		day = last
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, d.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
