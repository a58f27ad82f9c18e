package tutorreport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveCategory(t *testing.T) {
	cases := []struct {
		rate float64
		want Category
	}{
		{100, CategoryHigh},
		{80, CategoryHigh},
		{79.9, CategoryMedium},
		{60, CategoryMedium},
		{59.9, CategoryLow},
		{0, CategoryLow},
		{-1, CategoryNoData},
		{math.NaN(), CategoryNoData},
		{math.Inf(1), CategoryNoData},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DeriveCategory(c.rate), "DeriveCategory(%v)", c.rate)
	}
}

func TestDeriveCategoryFrom(t *testing.T) {
	rate := 85.0
	assert.Equal(t, CategoryHigh, DeriveCategoryFrom(&rate))
	assert.Equal(t, CategoryNoData, DeriveCategoryFrom(nil))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Baik", CategoryLabel(CategoryHigh))
	assert.Equal(t, "Sedang", CategoryLabel(CategoryMedium))
	assert.Equal(t, "Rendah", CategoryLabel(CategoryLow))
	assert.Equal(t, "Tidak Ada Data", CategoryLabel(CategoryNoData))
	assert.Equal(t, "Tidak Ada Data", CategoryLabel("excellent"))

	assert.True(t, CategoryLow.IsValid())
	assert.False(t, Category("excellent").IsValid())
}
