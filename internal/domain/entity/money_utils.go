package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies are charged in whole units
var zeroDecimalCurrencies = map[string]bool{
	"GNF": true,
	"RWF": true,
	"UGX": true,
	"XAF": true,
	"XOF": true,
}

// CurrencyPrecision returns the number of minor-unit digits for a currency
func CurrencyPrecision(currency string) int32 {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return 0
	}
	return 2
}

// ParseAmount parses an amount string as reported by the provider or stored for a payable
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, errs.NewValidationError("amount", amount, "must not be empty")
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, errs.NewValidationError("amount", amount, "not a decimal number")
	}
	if value.IsNegative() {
		return decimal.Zero, errs.NewValidationError("amount", amount, "must not be negative")
	}
	return value, nil
}

// RoundedCost applies a percentage surcharge and rounds to the currency precision
func RoundedCost(base decimal.Decimal, currency string, surchargePercent decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	cost := base.Mul(hundred.Add(surchargePercent)).Div(hundred)
	return cost.Round(CurrencyPrecision(currency))
}

// AmountsEqual compares two amounts at the precision of the currency
func AmountsEqual(a, b decimal.Decimal, currency string) bool {
	precision := CurrencyPrecision(currency)
	return a.Round(precision).Equal(b.Round(precision))
}

// FormatAmount renders an amount the way the provider expects it in a request body
func FormatAmount(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(CurrencyPrecision(currency))
}
