package currency

import "testing"

func TestFormatIndianGrouping(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{1200, "₹1,200"},
		{100000, "₹1,00,000"},
		{1234567, "₹12,34,567"},
		{1234.5, "₹1,234.5"},
		{-500, "-₹500"},
	}
	for _, c := range cases {
		if got := Format(c.amount); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}
