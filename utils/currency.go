package utils

import (
	"fmt"
	"strings"
)

// FormatBRL formata um valor como moeda brasileira: "R$ 1.234,56".
func FormatBRL(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := strings.HasPrefix(integerPart, "-")
	if negative {
		integerPart = integerPart[1:]
	}

	// Agrupa os milhares com ponto
	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	value := strings.Join(groups, ".") + "," + decimalPart
	if negative {
		value = "-" + value
	}
	return "R$ " + value
}
