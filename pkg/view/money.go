package view

import "fmt"

// MoneyFromCents renders an amount in minor units for display.
// IDR has no minor unit, so amounts are stored as whole rupiah and
// grouped with dots the way the storefront shows them (IDR 299.000).
func MoneyFromCents(amount int, currency string) string {
	switch currency {
	case "IDR":
		return "IDR " + groupThousands(amount)
	case "USD":
		return fmt.Sprintf("$%.2f", float64(amount)/100.0)
	case "EUR":
		return fmt.Sprintf("€%.2f", float64(amount)/100.0)
	default:
		return fmt.Sprintf("%d %s", amount, currency)
	}
}

func groupThousands(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "." + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
