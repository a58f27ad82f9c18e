package tutorreport

import "math"

// Category is the qualitative attendance band of a tutor.
type Category string

const (
	CategoryHigh   Category = "high"
	CategoryMedium Category = "medium"
	CategoryLow    Category = "low"
	CategoryNoData Category = "no_data"
)

// Fixed business thresholds on the 0-100 scale.
const (
	HighThreshold   = 80.0
	MediumThreshold = 60.0
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryHigh, CategoryMedium, CategoryLow, CategoryNoData}
}

// CategoryKeys lists the category values accepted as filters.
func CategoryKeys() []string {
	keys := make([]string, 0, 4)
	for _, c := range Categories() {
		keys = append(keys, string(c))
	}
	return keys
}

var categoryLabels = map[Category]string{
	CategoryHigh:   "Baik",
	CategoryMedium: "Sedang",
	CategoryLow:    "Rendah",
	CategoryNoData: "Tidak Ada Data",
}

// DeriveCategory classifies a rate on the 0-100 scale. Non-finite and
// negative rates have no category.
func DeriveCategory(rate float64) Category {
	switch {
	case math.IsNaN(rate) || math.IsInf(rate, 0):
		return CategoryNoData
	case rate >= HighThreshold:
		return CategoryHigh
	case rate >= MediumThreshold:
		return CategoryMedium
	case rate >= 0:
		return CategoryLow
	default:
		return CategoryNoData
	}
}

// DeriveCategoryFrom is DeriveCategory for an optional rate.
func DeriveCategoryFrom(rate *float64) Category {
	if rate == nil {
		return CategoryNoData
	}
	return DeriveCategory(*rate)
}

// CategoryLabel returns the Indonesian label, defaulting to the no_data label.
func CategoryLabel(c Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryNoData]
}

// IsValid reports whether c is one of the four known categories.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}
