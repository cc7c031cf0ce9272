package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/NixonSiagian/studio-archive-craft/internal/modules/catalog"
)

func testProduct(id string, priceCents int) catalog.Product {
	return catalog.Product{
		ID:         id,
		Slug:       id + "-slug",
		Name:       id,
		PriceCents: priceCents,
		Currency:   "IDR",
		Sizes:      datatypes.JSON(`["S","M","L","XL"]`),
		InStock:    true,
		Status:     "active",
	}
}

func TestBuildCartViewTotals(t *testing.T) {
	products := map[string]catalog.Product{
		"p1": testProduct("p1", 299000),
		"p2": testProduct("p2", 279000),
	}
	lines := []Line{
		{ProductID: "p1", Size: "M", Qty: 2},
		{ProductID: "p2", Size: "L", Qty: 1},
	}

	vm := BuildCartView(lines, products)

	assert.Len(t, vm.Items, 2)
	assert.Equal(t, 3, vm.Count)
	assert.Equal(t, 2*299000+279000, vm.SubtotalCents)
	assert.Equal(t, "IDR", vm.Currency)
	assert.Equal(t, "IDR 877.000", vm.Subtotal)

	assert.Equal(t, 598000, vm.Items[0].LineTotalCents)
	assert.Equal(t, "IDR 299.000", vm.Items[0].UnitPrice)
}

func TestBuildCartViewDropsMissingProduct(t *testing.T) {
	products := map[string]catalog.Product{
		"p1": testProduct("p1", 299000),
	}
	lines := []Line{
		{ProductID: "p1", Size: "M", Qty: 1},
		{ProductID: "gone", Size: "M", Qty: 4},
	}

	vm := BuildCartView(lines, products)

	assert.Len(t, vm.Items, 1)
	assert.Equal(t, 1, vm.Count)
	assert.Equal(t, 299000, vm.SubtotalCents)
}

func TestBuildCartViewDropsInactiveProduct(t *testing.T) {
	p := testProduct("p1", 299000)
	p.Status = "archived"
	products := map[string]catalog.Product{"p1": p}

	vm := BuildCartView([]Line{{ProductID: "p1", Size: "M", Qty: 1}}, products)

	assert.Empty(t, vm.Items)
	assert.Equal(t, 0, vm.SubtotalCents)
}

func TestBuildCartViewDropsRetiredSize(t *testing.T) {
	p := testProduct("p1", 299000)
	p.Sizes = datatypes.JSON(`["S","M"]`)
	products := map[string]catalog.Product{"p1": p}

	lines := []Line{
		{ProductID: "p1", Size: "M", Qty: 1},
		{ProductID: "p1", Size: "XL", Qty: 2},
	}
	vm := BuildCartView(lines, products)

	assert.Len(t, vm.Items, 1)
	assert.Equal(t, "M", vm.Items[0].Size)
}

func TestBuildCartViewSkipsNonPositiveQty(t *testing.T) {
	products := map[string]catalog.Product{"p1": testProduct("p1", 299000)}

	lines := []Line{
		{ProductID: "p1", Size: "M", Qty: 0},
		{ProductID: "p1", Size: "L", Qty: -2},
	}
	vm := BuildCartView(lines, products)

	assert.Empty(t, vm.Items)
	assert.Equal(t, 0, vm.Count)
}

func TestBuildCartViewEmptyLines(t *testing.T) {
	vm := BuildCartView(nil, nil)

	assert.NotNil(t, vm.Items)
	assert.Empty(t, vm.Items)
	assert.Equal(t, "IDR", vm.Currency)
	assert.Equal(t, "IDR 0", vm.Subtotal)
}
