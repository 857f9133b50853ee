package order

import (
	"fmt"
	"strings"
)

// FormatCents renders an amount like "$8.00". An empty symbol defaults to "$".
func FormatCents(cents int64, symbol string) string {
	if strings.TrimSpace(symbol) == "" {
		symbol = "$"
	}
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, symbol, cents/100, cents%100)
}
