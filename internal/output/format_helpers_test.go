package output

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		unit string
		want string
	}{
		{52900, "AED", "52,900 AED"},
		{5100.4, "AED", "5,100 AED"},
		{-1250.5, "AED", "-1,250 AED"},
		{5100.5, "AED", "5,100 AED"},
		{0, "USD", "0 USD"},
		{1e19, "AED", "10,000,000,000,000,000,000 AED"},
		{1e20, "AED", "100,000,000,000,000,000,000 AED"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.in, c.unit); got != c.want {
			t.Errorf("FormatMoney(%v, %q) = %q, want %q", c.in, c.unit, got, c.want)
		}
	}
}

func TestFormatArea(t *testing.T) {
	if got, want := FormatArea(1700, "sq ft"), "1,700 sq ft"; got != want {
		t.Errorf("FormatArea = %q, want %q", got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{12.3456, "12.35%"},
		{0, "0.00%"},
		{2.675, "2.67%"},
		{1.005, "1.00%"},
		{-0.001, "-0.00%"},
	}
	for _, c := range cases {
		if got := FormatPercentage(c.in); got != c.want {
			t.Errorf("FormatPercentage(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
