package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"same month", date(2024, time.March, 15), 0, date(2024, time.March, 15)},
		{"simple step", date(2024, time.March, 15), 1, date(2024, time.April, 15)},
		{"year rollover", date(2024, time.November, 10), 3, date(2025, time.February, 10)},
		{"clamp to leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamp to non-leap february", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"clamp to 30-day month", date(2024, time.January, 31), 3, date(2024, time.April, 30)},
		{"day 30 into february", date(2024, time.January, 30), 1, date(2024, time.February, 29)},
		{"no clamp after short month", date(2024, time.January, 31), 2, date(2024, time.March, 31)},
		{"december to january", date(2023, time.December, 31), 1, date(2024, time.January, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(tt.start, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.start, tt.months, got, tt.want)
			}
		})
	}
}

func TestGeneratePlanCountAndNumbers(t *testing.T) {
	for _, count := range []int{1, 2, 3, 12, 48} {
		plan := GeneratePlan(decimal.NewFromInt(1000), count, date(2024, time.June, 5))
		if len(plan) != count {
			t.Fatalf("count=%d: got %d installments", count, len(plan))
		}
		for i, p := range plan {
			if p.Number != i+1 {
				t.Errorf("count=%d: installment %d has number %d", count, i, p.Number)
			}
		}
	}
}

func TestGeneratePlanDueDates(t *testing.T) {
	plan := GeneratePlan(decimal.NewFromInt(300), 3, date(2024, time.January, 31))

	want := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.March, 31),
	}
	for i, p := range plan {
		if !p.DueDate.Equal(want[i]) {
			t.Errorf("installment %d due %v, want %v", p.Number, p.DueDate, want[i])
		}
	}
}

func TestGeneratePlanSplitsEvenly(t *testing.T) {
	total := decimal.RequireFromString("300.00")
	plan := GeneratePlan(total, 3, date(2024, time.May, 10))

	each := decimal.RequireFromString("100.00")
	for _, p := range plan {
		if !p.Amount.Equal(each) {
			t.Errorf("installment %d amount %s, want %s", p.Number, p.Amount, each)
		}
	}
}

func TestGeneratePlanRemainderGoesToLast(t *testing.T) {
	tests := []struct {
		total string
		count int
		each  string
		last  string
	}{
		{"100.00", 3, "33.33", "33.34"},
		{"100.00", 6, "16.66", "16.70"},
		{"0.01", 2, "0.00", "0.01"},
		{"99.99", 2, "49.99", "50.00"},
		{"1000.00", 7, "142.85", "142.90"},
	}

	for _, tt := range tests {
		total := decimal.RequireFromString(tt.total)
		plan := GeneratePlan(total, tt.count, date(2024, time.January, 15))

		for _, p := range plan[:tt.count-1] {
			if got := p.Amount.StringFixed(2); got != tt.each {
				t.Errorf("%s/%d: installment %d amount %s, want %s", tt.total, tt.count, p.Number, got, tt.each)
			}
		}
		if got := plan[tt.count-1].Amount.StringFixed(2); got != tt.last {
			t.Errorf("%s/%d: last amount %s, want %s", tt.total, tt.count, got, tt.last)
		}

		sum := decimal.Zero
		for _, p := range plan {
			sum = sum.Add(p.Amount)
		}
		if !sum.Equal(total) {
			t.Errorf("%s/%d: amounts sum to %s", tt.total, tt.count, sum)
		}
	}
}

func TestGeneratePlanAmountsNeverNegative(t *testing.T) {
	// Small totals split into many installments: the even split rounds to
	// zero or nearly zero, and the last installment takes everything left.
	tests := []struct {
		total string
		count int
	}{
		{"1.00", 66},
		{"1.00", 200},
		{"0.05", 7},
		{"0.01", 3},
		{"10.00", 33},
	}

	for _, tt := range tests {
		total := decimal.RequireFromString(tt.total)
		plan := GeneratePlan(total, tt.count, date(2024, time.January, 15))

		sum := decimal.Zero
		for _, p := range plan {
			if p.Amount.IsNegative() {
				t.Errorf("%s/%d: installment %d amount %s is negative",
					tt.total, tt.count, p.Number, p.Amount)
			}
			sum = sum.Add(p.Amount)
		}
		if !sum.Equal(total) {
			t.Errorf("%s/%d: amounts sum to %s", tt.total, tt.count, sum)
		}
	}
}

func TestGeneratePlanSingleInstallment(t *testing.T) {
	total := decimal.RequireFromString("57.90")
	plan := GeneratePlan(total, 1, date(2025, time.March, 1))

	if len(plan) != 1 {
		t.Fatalf("got %d installments, want 1", len(plan))
	}
	if !plan[0].Amount.Equal(total) {
		t.Errorf("amount %s, want %s", plan[0].Amount, total)
	}
	if plan[0].Number != 1 {
		t.Errorf("number %d, want 1", plan[0].Number)
	}
}
