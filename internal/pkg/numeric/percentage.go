package numeric

import "math"

// ToPercentageScale brings a rate onto the 0-100 scale. Values with an
// absolute value of at most 1 are read as fractions and multiplied by 100,
// everything else is assumed to be a percentage already. The boundary is
// ambiguous by nature: 0.8 may be a fraction (80%) or a genuine 0.8%.
func ToPercentageScale(v any) (float64, bool) {
	n, ok := ToNumber(v)
	if !ok {
		return 0, false
	}
	if math.Abs(n) <= 1 {
		return n * 100, true
	}
	return n, true
}

// NormalizePercentageValue is ToPercentageScale rounded to 2 decimals.
func NormalizePercentageValue(v any) (float64, bool) {
	n, ok := ToPercentageScale(v)
	if !ok {
		return 0, false
	}
	return Round(n, 2), true
}

// Ratio returns part/whole*100 rounded to 2 decimals, or 0 when whole is 0.
func Ratio(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return Round(float64(part)/float64(whole)*100, 2)
}
