package cartcookie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddItemMergesSameProductAndSize(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 1)
	c.AddItem("p1", "M", 2)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Qty)
}

func TestAddItemDifferentSizeIsSeparateLine(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 1)
	c.AddItem("p1", "L", 1)

	assert.Len(t, c.Items, 2)
	assert.Equal(t, "M", c.Items[0].Size)
	assert.Equal(t, "L", c.Items[1].Size)
}

func TestAddItemClampsQuantityToOne(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 0)
	assert.Equal(t, 1, c.Items[0].Qty)

	c.AddItem("p2", "S", -5)
	assert.Equal(t, 1, c.Items[1].Qty)
}

func TestAddItemIgnoresEmptyProductID(t *testing.T) {
	c := NewCart()
	c.AddItem("", "M", 1)
	assert.True(t, c.IsEmpty())
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 1)
	c.AddItem("p2", "S", 1)
	c.AddItem("p3", "L", 1)
	c.AddItem("p1", "M", 1) // merge should not reorder

	assert.Equal(t, "p1", c.Items[0].ProductID)
	assert.Equal(t, "p2", c.Items[1].ProductID)
	assert.Equal(t, "p3", c.Items[2].ProductID)
}

func TestUpdateQuantitySetsNewValue(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 2)
	c.UpdateQuantity("p1", "M", 5)

	assert.Equal(t, 5, c.Items[0].Qty)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 2)
	c.AddItem("p2", "S", 1)
	c.UpdateQuantity("p1", "M", 0)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, "p2", c.Items[0].ProductID)
}

func TestUpdateQuantityNegativeRemovesLine(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 2)
	c.UpdateQuantity("p1", "M", -1)

	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantityUnknownLineIsNoop(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 2)
	c.UpdateQuantity("p9", "XL", 3)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Qty)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 2)
	c.RemoveItem("p1", "M")
	c.RemoveItem("p1", "M")

	assert.True(t, c.IsEmpty())
}

func TestRemoveItemOnlyMatchingSize(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 1)
	c.AddItem("p1", "L", 1)
	c.RemoveItem("p1", "M")

	assert.Len(t, c.Items, 1)
	assert.Equal(t, "L", c.Items[0].Size)
}

func TestClearEmptiesCart(t *testing.T) {
	c := NewCart()
	c.AddItem("p1", "M", 2)
	c.AddItem("p2", "S", 1)
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalQuantity())
}

func TestTotalQuantitySumsLines(t *testing.T) {
	c := NewCart()
	assert.Equal(t, 0, c.TotalQuantity())

	c.AddItem("p1", "M", 2)
	c.AddItem("p2", "S", 3)
	assert.Equal(t, 5, c.TotalQuantity())
}
