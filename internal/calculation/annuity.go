package calculation

import "github.com/shopspring/decimal"

// growthPrecision is the number of decimal places kept after each
// multiplication while compounding. It bounds the fractional digits only;
// the integer part grows with the factor.
const growthPrecision = 24

// MonthsPerYear is used to convert annual figures to monthly ones
const MonthsPerYear = 12

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(MonthsPerYear)
)

// CompoundFactor returns (1 + rate)^periods for a non-negative whole number of periods
func CompoundFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	result := one
	base := one.Add(rate)
	for n := periods; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base).Round(growthPrecision)
		}
		base = base.Mul(base).Round(growthPrecision)
	}
	return result
}

// FutureValueOfAnnuity returns the accumulated value of equal end-of-period
// payments compounded at rate per period. A zero rate or zero periods
// degrades to simple accumulation, payment × periods.
func FutureValueOfAnnuity(payment, rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(periods))
	if rate.IsZero() {
		return payment.Mul(n)
	}
	growth := CompoundFactor(rate, periods)
	return payment.Mul(growth.Sub(one)).Div(rate)
}

// MonthlyRate converts a nominal annual rate to its monthly equivalent
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve)
}

// YearsToRetirement is the non-negative horizon from age to retirementAge
func YearsToRetirement(age, retirementAge int) int {
	if age >= retirementAge {
		return 0
	}
	return retirementAge - age
}
