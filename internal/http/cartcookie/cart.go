package cartcookie

// Cart is the guest cart persisted in the signed cookie. Lines are keyed
// by (ProductID, Size); insertion order is preserved for display.
type Cart struct {
	Items []Item `json:"items"`
}

type Item struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Qty       int    `json:"qty"`
}

func NewCart() *Cart {
	return &Cart{Items: []Item{}}
}

// AddItem merges into an existing (productID, size) line or appends a new
// one. Quantities below 1 are treated as 1.
func (c *Cart) AddItem(productID, size string, qty int) {
	if productID == "" {
		return
	}
	if qty < 1 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			c.Items[i].Qty += qty
			return
		}
	}
	c.Items = append(c.Items, Item{ProductID: productID, Size: size, Qty: qty})
}

// UpdateQuantity sets the quantity for a line; qty <= 0 removes it.
// Unknown lines are ignored.
func (c *Cart) UpdateQuantity(productID, size string, qty int) {
	if qty <= 0 {
		c.RemoveItem(productID, size)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			c.Items[i].Qty = qty
			return
		}
	}
}

// RemoveItem deletes a line if present. Removing an absent line is a no-op.
func (c *Cart) RemoveItem(productID, size string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}

// TotalQuantity is the sum of line quantities (the cart badge count).
func (c *Cart) TotalQuantity() int {
	n := 0
	for _, it := range c.Items {
		if it.Qty > 0 {
			n += it.Qty
		}
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
