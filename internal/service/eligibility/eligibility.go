// Package eligibility computes how much of the earned salary an employee can
// draw right now. The company availability percentage caps the amount even
// when the running balance is higher, e.g. after a company lowers its setting.
package eligibility

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Available returns min(balance, salary*percentage/100), never negative.
// Inputs are clamped, not rejected: a zero or missing salary yields zero.
func Available(salary decimal.Decimal, availabilityPercentage int, balance decimal.Decimal) decimal.Decimal {
	if salary.IsNegative() || salary.IsZero() {
		return decimal.Zero
	}
	if availabilityPercentage < 0 {
		availabilityPercentage = 0
	}
	if availabilityPercentage > 100 {
		availabilityPercentage = 100
	}
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	maxByPolicy := salary.Mul(decimal.NewFromInt(int64(availabilityPercentage))).Div(hundred)
	if balance.LessThan(maxByPolicy) {
		return balance
	}
	return maxByPolicy
}
