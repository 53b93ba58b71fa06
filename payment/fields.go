package payment

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	rxPhone  = regexp.MustCompile(`^\(\d{2}\)\d{4,5}-\d{4}$`)
	rxExpiry = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

var (
	errNoAmount       = errors.New("amount is required")
	errNotPositive    = errors.New("amount must be > 0")
	errAmountRange    = errors.New("amount is out of range")
	errNoInstallments = errors.New("installments must be >= 1")
)

// Amount bounds. Rounding a decimal rescales its coefficient by 10^exponent, so
// exponents are bounded before any arithmetic runs.
const (
	maxAmountLen      = 64
	minAmountExponent = -32
	maxAmountExponent = 12
)

// MaxInstallments bounds the installment count.
const (
	MaxInstallments         = 999
	maxInstallmentsExponent = 3
)

// MaxAmount is the exclusive upper bound of an amount.
var MaxAmount = decimal.New(1, maxAmountExponent)

// ValidPhone reports whether s looks like "(61)3211-1221". An empty value is valid:
// phones are optional wherever they appear.
func ValidPhone(s string) bool {
	if s == "" {
		return true
	}
	return rxPhone.MatchString(s)
}

// ValidExpiry reports whether s is a card expiry in MM/YY form.
func ValidExpiry(s string) bool {
	return rxExpiry.MatchString(s)
}

// OneOf reports exact, case-sensitive membership of v in allowed.
func OneOf[T ~string](v T, allowed ...T) bool {
	return slices.Contains(allowed, v)
}

// ValidAmount reports whether v parses to a strictly positive amount.
func ValidAmount(v any) bool {
	_, err := ParseAmount(v)
	return err == nil
}

// ParseAmount converts a numeric or numeric-string value to a decimal and rejects
// anything that is not strictly greater than zero or not below MaxAmount.
func ParseAmount(v any) (decimal.Decimal, error) {
	d, err := toDecimal(v)
	if err != nil {
		return decimal.Zero, err
	}
	if e := d.Exponent(); e < minAmountExponent || e > maxAmountExponent {
		return decimal.Zero, errAmountRange
	}
	if !d.IsPositive() {
		return decimal.Zero, errNotPositive
	}
	if d.Cmp(MaxAmount) >= 0 {
		return decimal.Zero, errAmountRange
	}
	return d, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, errNoAmount
	case decimal.Decimal:
		return x, nil
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, errNoAmount
		}
		return *x, nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return decimal.Zero, errNoAmount
		}
		if len(s) > maxAmountLen {
			return decimal.Zero, errAmountRange
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid amount %q: %w", x, err)
		}
		return d, nil
	case json.Number:
		return toDecimal(string(x))
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int8:
		return decimal.NewFromInt(int64(x)), nil
	case int16:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case uint:
		return decimal.NewFromString(strconv.FormatUint(uint64(x), 10))
	case uint8:
		return decimal.NewFromInt(int64(x)), nil
	case uint16:
		return decimal.NewFromInt(int64(x)), nil
	case uint32:
		return decimal.NewFromInt(int64(x)), nil
	case uint64:
		return decimal.NewFromString(strconv.FormatUint(x, 10))
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	default:
		return decimal.Zero, fmt.Errorf("unsupported amount type %T", v)
	}
}

func fromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("invalid amount %v", f)
	}
	return decimal.NewFromFloat(f), nil
}

// ParseInstallments accepts the same numeric kinds as ParseAmount, as long as the
// value is a whole number between 1 and MaxInstallments. A missing value means a
// single installment.
func ParseInstallments(v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 1, nil
	case string:
		if strings.TrimSpace(x) == "" {
			return 1, nil
		}
	case json.Number:
		if strings.TrimSpace(string(x)) == "" {
			return 1, nil
		}
	}

	d, err := toDecimal(v)
	if err != nil {
		return 0, fmt.Errorf("invalid installments %v", v)
	}
	if e := d.Exponent(); e < minAmountExponent || e > maxInstallmentsExponent || !d.IsInteger() {
		return 0, fmt.Errorf("invalid installments %v", v)
	}
	if d.LessThan(decimal.NewFromInt(1)) {
		return 0, errNoInstallments
	}
	if d.GreaterThan(decimal.NewFromInt(MaxInstallments)) {
		return 0, fmt.Errorf("installments must be <= %d", MaxInstallments)
	}
	return int(d.IntPart()), nil
}
