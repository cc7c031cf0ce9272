package orders

import "errors"

var (
	ErrCartEmpty     = errors.New("cart is empty")
	ErrInvalidStatus = errors.New("invalid order status")
)
