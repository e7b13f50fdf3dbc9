package bankbook

import (
	"errors"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		amount   string
		currency string
		want     string
	}{
		{amount: "70", currency: "USD", want: "$70.00"},
		{amount: "70.30", currency: "USD", want: "$70.30"},
		{amount: "0", currency: "USD", want: "$0.00"},
		{amount: "1234.56", currency: "USD", want: "$1,234.56"},
		// JPY carries no fraction digits
		{amount: "1500", currency: "JPY", want: "¥1,500"},
	}
	for _, tc := range testCases {
		if got := FormatAmount(amount(tc.amount), tc.currency); got != tc.want {
			t.Errorf("FormatAmount(%s, %s) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("100.05")
	if err != nil {
		t.Fatalf("ParseAmount: %v", err)
	}
	if !d.Equal(amount("100.05")) {
		t.Errorf("ParseAmount(100.05) = %s", d)
	}

	if _, err := ParseAmount("ten dollars"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("ParseAmount(ten dollars) error = %v, want ErrInvalidAmount", err)
	}
}
