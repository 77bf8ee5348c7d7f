package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency renders a value as Brazilian currency, with dots for
// thousands and a comma before the cents: 1234.56 -> "R$ 1.234,56".
func FormatCurrency(value float64) string {
	abs := math.Abs(value)
	intPart := int64(abs)
	cents := int64(math.Round((abs - float64(intPart)) * 100))
	if cents == 100 {
		intPart++
		cents = 0
	}
	out := fmt.Sprintf("R$ %s,%02d", groupThousands(intPart), cents)
	if value < 0 {
		out = "-" + out
	}
	return out
}

// FormatNumber renders a value with dot thousand separators and the
// given number of comma decimals: FormatNumber(1234.567, 2) ->
// "1.234,57".
func FormatNumber(value float64, decimals int) string {
	if decimals == 0 {
		return groupThousands(int64(math.Round(value)))
	}
	rounded := roundTo(value, decimals)
	abs := math.Abs(rounded)
	intPart := int64(abs)
	frac := fmt.Sprintf("%.*f", decimals, abs-float64(intPart))[2:]
	out := fmt.Sprintf("%s,%s", groupThousands(intPart), frac)
	if rounded < 0 {
		out = "-" + out
	}
	return out
}

// FormatPercent renders an already-scaled percentage: 75.5 -> "76%",
// or "75,5%" with one decimal.
func FormatPercent(value float64, decimals int) string {
	if decimals == 0 {
		return fmt.Sprintf("%d%%", int(math.Round(value)))
	}
	return FormatNumber(value, decimals) + "%"
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

func groupThousands(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteString(".")
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		s = "-" + s
	}
	return s
}
