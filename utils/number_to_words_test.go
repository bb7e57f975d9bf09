package utils

import "testing"

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, ""},
		{7, "Seven"},
		{15, "Fifteen"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{118, "One Hundred Eighteen"},
		{1000, "One Thousand"},
		{2450, "Two Thousand Four Hundred Fifty"},
		{1000000, "One Million"},
	}
	for _, c := range cases {
		if got := NumberToWords(c.in); got != c.want {
			t.Errorf("NumberToWords(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWeightToWords(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Zero Kilograms Only"},
		{450, "Four Hundred Fifty Kilograms Only"},
		{1000, "One Tonne Only"},
		{2450, "Two Tonnes and Four Hundred Fifty Kilograms Only"},
		{999.6, "One Tonne Only"}, // rounds up
	}
	for _, c := range cases {
		if got := WeightToWords(c.in); got != c.want {
			t.Errorf("WeightToWords(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
