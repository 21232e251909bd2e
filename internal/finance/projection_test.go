package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCompoundInterest_SimpleAnnual(t *testing.T) {
	result := CompoundInterest(decimal.NewFromInt(10000), decimal.Zero, 10, 1, CompoundingYearly)

	if result.FinalAmount.StringFixed(2) != "11000.00" {
		t.Errorf("expected final amount 11000.00, got %s", result.FinalAmount)
	}
	if result.TotalContributed.StringFixed(2) != "10000.00" {
		t.Errorf("expected contributed 10000.00, got %s", result.TotalContributed)
	}
	if result.TotalInterest.StringFixed(2) != "1000.00" {
		t.Errorf("expected interest 1000.00, got %s", result.TotalInterest)
	}
	if len(result.YearlyBreakdown) != 1 {
		t.Fatalf("expected 1 breakdown entry, got %d", len(result.YearlyBreakdown))
	}
}

func TestCompoundInterest_MonthlyCompounding(t *testing.T) {
	// 1000 at 12% compounded monthly for one year: 1000 * 1.01^12
	result := CompoundInterest(decimal.NewFromInt(1000), decimal.Zero, 12, 1, CompoundingMonthly)

	if result.FinalAmount.StringFixed(2) != "1126.83" {
		t.Errorf("expected final amount 1126.83, got %s", result.FinalAmount.StringFixed(2))
	}
}

func TestCompoundInterest_ZeroRate(t *testing.T) {
	result := CompoundInterest(decimal.NewFromInt(1000), decimal.NewFromInt(100), 0, 2, CompoundingMonthly)

	// principal + 100 * 12 * 2
	if !result.FinalAmount.Equal(decimal.NewFromInt(3400)) {
		t.Errorf("expected final amount 3400, got %s", result.FinalAmount)
	}
	if !result.TotalContributed.Equal(decimal.NewFromInt(3400)) {
		t.Errorf("expected contributed 3400, got %s", result.TotalContributed)
	}
	if !result.TotalInterest.IsZero() {
		t.Errorf("expected zero interest, got %s", result.TotalInterest)
	}
}

func TestCompoundInterest_ZeroContribution(t *testing.T) {
	result := CompoundInterest(decimal.NewFromInt(5000), decimal.Zero, 6, 3, CompoundingYearly)

	// Pure compounding of principal: 5000 * 1.06^3
	if result.FinalAmount.StringFixed(2) != "5955.08" {
		t.Errorf("expected final amount 5955.08, got %s", result.FinalAmount.StringFixed(2))
	}
	if !result.TotalContributed.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected contributed 5000, got %s", result.TotalContributed)
	}
}

func TestCompoundInterest_BreakdownConsistency(t *testing.T) {
	principal := decimal.NewFromInt(2000)
	contribution := decimal.NewFromInt(150)
	result := CompoundInterest(principal, contribution, 8.5, 5, CompoundingQuarterly)

	if len(result.YearlyBreakdown) != 5 {
		t.Fatalf("expected 5 breakdown entries, got %d", len(result.YearlyBreakdown))
	}

	for i, entry := range result.YearlyBreakdown {
		if entry.Year != i+1 {
			t.Errorf("entry %d has year %d, want %d", i, entry.Year, i+1)
		}
		if !entry.Interest.Equal(entry.Amount.Sub(entry.Contributed)) {
			t.Errorf("year %d: interest %s != amount %s - contributed %s",
				entry.Year, entry.Interest, entry.Amount, entry.Contributed)
		}
		// contributed = principal + contribution * 12 * yearsElapsed
		wantContributed := principal.Add(contribution.Mul(decimal.NewFromInt(int64(12 * (i + 1)))))
		if !entry.Contributed.Equal(wantContributed) {
			t.Errorf("year %d: contributed %s, want %s", entry.Year, entry.Contributed, wantContributed)
		}
	}

	last := result.YearlyBreakdown[len(result.YearlyBreakdown)-1]
	if !result.FinalAmount.Equal(last.Amount) {
		t.Errorf("final amount %s != last breakdown amount %s", result.FinalAmount, last.Amount)
	}
	if !result.TotalInterest.Equal(result.FinalAmount.Sub(result.TotalContributed)) {
		t.Errorf("total interest %s inconsistent", result.TotalInterest)
	}
}

func TestCompoundInterest_GrowthIsMonotonic(t *testing.T) {
	result := CompoundInterest(decimal.NewFromInt(1000), decimal.NewFromInt(50), 5, 10, CompoundingMonthly)

	prev := decimal.Zero
	for _, entry := range result.YearlyBreakdown {
		if entry.Amount.LessThanOrEqual(prev) {
			t.Errorf("year %d amount %s not greater than previous %s", entry.Year, entry.Amount, prev)
		}
		prev = entry.Amount
	}
}

func TestCompoundInterest_ZeroYears(t *testing.T) {
	result := CompoundInterest(decimal.NewFromInt(1000), decimal.NewFromInt(100), 10, 0, CompoundingMonthly)

	if !result.FinalAmount.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected final amount 1000, got %s", result.FinalAmount)
	}
	if len(result.YearlyBreakdown) != 0 {
		t.Errorf("expected no breakdown entries, got %d", len(result.YearlyBreakdown))
	}
}
