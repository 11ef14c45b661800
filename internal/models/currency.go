package models

// Supported currency codes
const (
	USD = "USD"
	RUB = "RUB"
	EUR = "EUR"
)

// IsSupportedCurrency reports whether the code belongs to the supported set.
func IsSupportedCurrency(code string) bool {
	switch code {
	case USD, RUB, EUR:
		return true
	}
	return false
}
