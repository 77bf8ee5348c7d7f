package utils

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{9.9, "R$ 9,90"},
		{1234.56, "R$ 1.234,56"},
		{1234567.89, "R$ 1.234.567,89"},
		{-50.5, "-R$ 50,50"},
		{19.999, "R$ 20,00"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in       float64
		decimals int
		want     string
	}{
		{1234.567, 2, "1.234,57"},
		{1234.0, 0, "1.234"},
		{0.5, 1, "0,5"},
		{-1234.5, 1, "-1.234,5"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in, c.decimals); got != c.want {
			t.Errorf("FormatNumber(%v, %d) = %q, want %q", c.in, c.decimals, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(75.5, 0); got != "76%" {
		t.Errorf("got %q, want 76%%", got)
	}
	if got := FormatPercent(75.5, 1); got != "75,5%" {
		t.Errorf("got %q, want 75,5%%", got)
	}
}
