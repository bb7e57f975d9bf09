package utils

import (
	"fmt"
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

func NumberToWords(num int) string {
	switch {
	case num == 0:
		return ""
	case num < 20:
		return ones[num]
	case num < 100:
		return strings.TrimSpace(tens[num/10] + " " + ones[num%10])
	case num < 1000:
		remainder := num % 100
		if remainder == 0 {
			return ones[num/100] + " Hundred"
		}
		return ones[num/100] + " Hundred " + NumberToWords(remainder)
	case num < 1000000:
		remainder := num % 1000
		if remainder == 0 {
			return NumberToWords(num/1000) + " Thousand"
		}
		return NumberToWords(num/1000) + " Thousand " + NumberToWords(remainder)
	default:
		remainder := num % 1000000
		if remainder == 0 {
			return NumberToWords(num/1000000) + " Million"
		}
		return NumberToWords(num/1000000) + " Million " + NumberToWords(remainder)
	}
}

// WeightToWords spells out a weight for the loading sheet footer, splitting
// into tonnes and kilograms. Fractions of a kilogram are rounded.
func WeightToWords(kg float64) string {
	total := int(math.Round(kg))
	tonnes := total / 1000
	kilos := total % 1000

	var parts []string

	if tonnes > 0 {
		unit := "Tonnes"
		if tonnes == 1 {
			unit = "Tonne"
		}
		parts = append(parts, fmt.Sprintf("%s %s", strings.TrimSpace(NumberToWords(tonnes)), unit))
	}
	if kilos > 0 {
		parts = append(parts, fmt.Sprintf("%s Kilograms", strings.TrimSpace(NumberToWords(kilos))))
	}

	if len(parts) == 0 {
		return "Zero Kilograms Only"
	}

	return strings.Join(parts, " and ") + " Only"
}
