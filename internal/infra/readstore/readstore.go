// Package readstore implements the query-side interfaces with plain SQL
// against the pooled connection. Write paths go through repository instead.
package readstore

import "github.com/shopspring/decimal"

func discountPercent(regular, offered decimal.Decimal) int {
	if regular.IsZero() {
		return 0
	}
	diff := regular.Sub(offered)
	return int(diff.Div(regular).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}
