package momo

import "strings"

// sandboxTarget is the X-Target-Environment of the provider test environment
const sandboxTarget = "sandbox"

// sandboxCurrency is the only currency the provider test environment settles in
const sandboxCurrency = "EUR"

// targetEnvironments maps a merchant country to its provider region
var targetEnvironments = map[string]string{
	"UG": "mtnuganda",
	"GH": "mtnghana",
	"CI": "mtnivorycoast",
	"ZM": "mtnzambia",
	"CM": "mtncameroon",
	"BJ": "mtnbenin",
	"CD": "mtncongo",
	"SZ": "mtnswaziland",
	"GN": "mtnguineaconakry",
	"ZA": "mtnsouthafrica",
	"LR": "mtnliberia",
}

// countryCurrencies maps a country to the currency its accounts hold
var countryCurrencies = map[string]string{
	"BJ": "XOF",
	"CM": "XAF",
	"TD": "XAF",
	"CG": "XAF",
	"CD": "CDF",
	"GH": "GHS",
	"GN": "GNF",
	"CI": "XOF",
	"LR": "LRD",
	"NE": "XOF",
	"RW": "RWF",
	"ZA": "ZAR",
	"UG": "UGX",
	"ZM": "ZMW",
}

// supportedCountries are the payer countries a request-to-pay may target
var supportedCountries = []string{
	"BJ", "CM", "TD", "CG", "CD", "GA", "GH", "CI", "LR", "NE", "RW", "ZA", "UG", "ZM",
}

var supportedCurrencies = []string{
	"CDF", "EUR", "GHS", "GNF", "LRD", "RWF", "UGX", "XAF", "XOF", "ZAR", "ZMW",
}

// TargetEnvironment returns the provider region of a country, "sandbox" when unknown
func TargetEnvironment(country string) string {
	if target, ok := targetEnvironments[strings.ToUpper(country)]; ok {
		return target
	}
	return sandboxTarget
}

// CurrencyForCountry returns the account currency of a country, EUR when unknown
func CurrencyForCountry(country string) string {
	if currency, ok := countryCurrencies[strings.ToUpper(country)]; ok {
		return currency
	}
	return sandboxCurrency
}

// IsSupportedCountry reports whether payers from the country can be charged
func IsSupportedCountry(country string) bool {
	country = strings.ToUpper(country)
	for _, c := range supportedCountries {
		if c == country {
			return true
		}
	}
	return false
}

// SupportedCountries returns the payer countries a request-to-pay may target
func SupportedCountries() []string {
	out := make([]string, len(supportedCountries))
	copy(out, supportedCountries)
	return out
}

// IsSupportedCurrency reports whether the provider settles in the currency
func IsSupportedCurrency(currency string) bool {
	currency = strings.ToUpper(currency)
	for _, c := range supportedCurrencies {
		if c == currency {
			return true
		}
	}
	return false
}
