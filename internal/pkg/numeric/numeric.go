package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind classifies a loosely typed input before coercion.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindOther
)

// Classify reports which coercion branch v falls into.
// A missing map key and an explicit JSON null both arrive as nil.
func Classify(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return KindNumber
	case string:
		return KindString
	default:
		return KindOther
	}
}

// ToNumber parses v into a finite float64. The second return value is false
// for null, empty strings, unparsable strings, non-finite numbers and any
// non-scalar input (bools, maps, slices).
func ToNumber(v any) (float64, bool) {
	var n float64

	switch Classify(v) {
	case KindNumber:
		n = asFloat(v)
	case KindString:
		s := strings.TrimSpace(strings.ReplaceAll(v.(string), "%", ""))
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ToInteger rounds the parsed value to the nearest integer. Values outside
// the int range are treated as absent rather than wrapped.
func ToInteger(v any) (int, bool) {
	n, ok := ToNumber(v)
	if !ok {
		return 0, false
	}
	r := RoundHalfUp(n)
	if r < float64(math.MinInt) || r >= -float64(math.MinInt) {
		return 0, false
	}
	return int(r), true
}

// ToIntegerOrZero is ToInteger with 0 for absent or out-of-range values.
func ToIntegerOrZero(v any) int {
	n, _ := ToInteger(v)
	return n
}

// RoundHalfUp rounds halves toward positive infinity (-2.5 becomes -2).
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

var half = decimal.NewFromFloat(0.5)

// Round rounds x half up to the given number of decimal places. The shift
// is done in decimal so 1.005 rounds to 1.01.
func Round(x float64, places int) float64 {
	if places <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return RoundHalfUp(x)
	}
	shift := int32(places)
	rounded, _ := decimal.NewFromFloat(x).Shift(shift).Add(half).Floor().Shift(-shift).Float64()
	return rounded
}

// FormatDecimal renders v with the shortest representation, e.g. 24.5 or 24.
func FormatDecimal(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}
