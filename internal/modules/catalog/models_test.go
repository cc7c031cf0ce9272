package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestSizeList(t *testing.T) {
	p := Product{Sizes: datatypes.JSON(`["S","M","L","XL"]`)}
	assert.Equal(t, []string{"S", "M", "L", "XL"}, p.SizeList())

	assert.Empty(t, Product{}.SizeList())
	assert.Empty(t, Product{Sizes: datatypes.JSON(`not json`)}.SizeList())
}

func TestHasSize(t *testing.T) {
	p := Product{Sizes: datatypes.JSON(`["S","M"]`)}

	assert.True(t, p.HasSize("M"))
	assert.False(t, p.HasSize("XL"))
	assert.False(t, p.HasSize("m"))
}

func TestDescriptionLines(t *testing.T) {
	p := Product{Description: datatypes.JSON(`["Heavy cotton construction","Oversized fit"]`)}
	assert.Len(t, p.DescriptionLines(), 2)

	assert.Empty(t, Product{}.DescriptionLines())
}

func TestPrimaryImageURL(t *testing.T) {
	assert.Equal(t, "", Product{}.PrimaryImageURL())

	p := Product{Images: []ProductImage{
		{URL: "/uploads/a.jpg", Position: 1},
		{URL: "/uploads/b.jpg", Position: 2},
	}}
	assert.Equal(t, "/uploads/a.jpg", p.PrimaryImageURL())
}
