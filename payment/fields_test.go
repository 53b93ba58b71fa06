package payment

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "", want: true},
		{in: "(61)3211-1221", want: true},
		{in: "(11)99999-9999", want: true},
		{in: "InvalidPhone", want: false},
		{in: "61 3211-1221", want: false},
		{in: "(61)32111221", want: false},
		{in: "(61)3211-1221 ", want: false},
	}
	for _, tc := range tests {
		if got := ValidPhone(tc.in); got != tc.want {
			t.Fatalf("ValidPhone(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidExpiry(t *testing.T) {
	for _, ok := range []string{"08/11", "01/30", "12/99"} {
		if !ValidExpiry(ok) {
			t.Fatalf("expected %q to be a valid expiry", ok)
		}
	}
	for _, bad := range []string{"", "InvalidExpiry", "13/11", "00/11", "8/11", "08/2011", "08-11"} {
		if ValidExpiry(bad) {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestParseAmountRejectsZeroAndNegative(t *testing.T) {
	for _, v := range []any{0, "0", 0.0, "0.0", -1, "-1", " 0.00 ", int64(0), float32(0), json.Number("0"), decimal.Zero, nil, "", "abc", math.NaN(), math.Inf(1), true} {
		if ValidAmount(v) {
			t.Fatalf("expected amount %#v to be rejected", v)
		}
	}
}

func TestParseAmountAcceptsPositive(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{in: "8.90", want: "8.9"},
		{in: 8.9, want: "8.9"},
		{in: 10, want: "10"},
		{in: uint64(3), want: "3"},
		{in: json.Number("0.01"), want: "0.01"},
		{in: decimal.RequireFromString("1.5"), want: "1.5"},
	}
	for _, tc := range tests {
		got, err := ParseAmount(tc.in)
		if err != nil {
			t.Fatalf("ParseAmount(%#v): %v", tc.in, err)
		}
		if got.String() != tc.want {
			t.Fatalf("ParseAmount(%#v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseAmountRejectsOutOfRange(t *testing.T) {
	for _, v := range []any{
		"1e10000000",
		"1e-10000000",
		"1e13",
		"1000000000000",
		MaxAmount,
		uint64(math.MaxUint64),
		1e300,
		"0." + strings.Repeat("0", 70) + "1",
	} {
		start := time.Now()
		if _, err := ParseAmount(v); err == nil {
			t.Fatalf("expected amount %#v to be rejected", v)
		}
		if d := time.Since(start); d > time.Second {
			t.Fatalf("ParseAmount(%#v) took %s", v, d)
		}
	}
	if _, err := ParseAmount("999999999999.99"); err != nil {
		t.Fatalf("expected the largest amount to be accepted: %v", err)
	}
}

func TestOneOf(t *testing.T) {
	if !OneOf(InstitutionVisa, CreditInstitutions...) {
		t.Fatalf("Visa must be a credit institution")
	}
	if OneOf(Institution("visa"), CreditInstitutions...) {
		t.Fatalf("membership must be case-sensitive")
	}
	if OneOf(InstitutionItau, CreditInstitutions...) {
		t.Fatalf("Itau is a debit institution only")
	}
	if !OneOf(ReceivingParcelado, ReceivingModes...) {
		t.Fatalf("Parcelado must be a receiving mode")
	}
}

func TestParseInstallments(t *testing.T) {
	tests := []struct {
		in      any
		want    int
		wantErr bool
	}{
		{in: nil, want: 1},
		{in: "", want: 1},
		{in: "2", want: 2},
		{in: 12, want: 12},
		{in: 3.0, want: 3},
		{in: json.Number("4"), want: 4},
		{in: int8(2), want: 2},
		{in: int16(3), want: 3},
		{in: int64(6), want: 6},
		{in: uint32(5), want: 5},
		{in: uint64(7), want: 7},
		{in: float32(2), want: 2},
		{in: MaxInstallments, want: MaxInstallments},
		{in: MaxInstallments + 1, wantErr: true},
		{in: int64(1) << 40, wantErr: true},
		{in: uint64(1) << 63, wantErr: true},
		{in: "1e100000000", wantErr: true},
		{in: "0e-100000000", wantErr: true},
		{in: "0", wantErr: true},
		{in: -2, wantErr: true},
		{in: 2.5, wantErr: true},
		{in: "two", wantErr: true},
		{in: []int{1}, wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseInstallments(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseInstallments(%#v): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseInstallments(%#v): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseInstallments(%#v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestAmountString(t *testing.T) {
	r := &Request{Amount: decimal.RequireFromString("8.9")}
	if got := r.AmountString(); got != "8.90" {
		t.Fatalf("unexpected amount string: %q", got)
	}
	var nilReq *Request
	if got := nilReq.AmountString(); got != "" {
		t.Fatalf("nil request must render empty amount, got %q", got)
	}
}
