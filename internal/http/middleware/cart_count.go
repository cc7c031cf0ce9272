package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/NixonSiagian/studio-archive-craft/internal/http/cartcookie"
)

const cartCountKey = "cart_count"

// CartCount puts the guest cart badge count in context on every
// request. Signed-in users get their count from /cart, which reads the
// DB cart.
func CartCount(ck *cartcookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := 0
		if cart, err := ck.Get(c); err == nil && cart != nil {
			n = cart.TotalQuantity()
		}
		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
