package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NixonSiagian/studio-archive-craft/internal/http/cartcookie"
	"github.com/NixonSiagian/studio-archive-craft/internal/http/middleware"
	"github.com/NixonSiagian/studio-archive-craft/internal/http/validation"
	cartmod "github.com/NixonSiagian/studio-archive-craft/internal/modules/cart"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/catalog"
	"github.com/NixonSiagian/studio-archive-craft/internal/shared/apperr"
)

// ProductCatalog is the single-product lookup the cart handler needs
// to validate adds.
type ProductCatalog interface {
	Get(ctx context.Context, id string) (catalog.Product, error)
}

// CartHandler serves the cart for both guests (signed cookie) and
// signed-in users (DB cart). Same (product_id, size) semantics either
// way.
type CartHandler struct {
	CK       *cartcookie.Codec
	CartRepo *cartmod.Repo
	CartSvc  *cartmod.Service
	Catalog  ProductCatalog
}

func NewCartHandler(ck *cartcookie.Codec, repo *cartmod.Repo, svc *cartmod.Service, cat ProductCatalog) *CartHandler {
	return &CartHandler{CK: ck, CartRepo: repo, CartSvc: svc, Catalog: cat}
}

// Get handles GET /cart - the hydrated cart page.
func (h *CartHandler) Get(c *gin.Context) {
	if u, ok := middleware.CurrentUser(c); ok {
		page, err := h.CartSvc.BuildCartPageForUser(c.Request.Context(), u.ID)
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		c.JSON(http.StatusOK, page)
		return
	}

	guest, _ := h.CK.Get(c)
	if guest == nil {
		guest = cartcookie.NewCart()
	}
	page, err := h.CartSvc.BuildCartPageFromCookie(c.Request.Context(), guest)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, page)
}

type cartAddInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required,max=16"`
	Qty       int    `json:"qty" binding:"omitempty,gte=1"`
}

// Add handles POST /cart/items - adds (or merges) a line. There is no
// upper bound on quantity; drops sell out server-side, not here.
func (h *CartHandler) Add(c *gin.Context) {
	var in cartAddInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the form fields.", validation.FromBindError(err, &in)))
		return
	}
	qty := in.Qty
	if qty < 1 {
		qty = 1
	}

	// size must be one the product actually offers
	p, err := h.Catalog.Get(c.Request.Context(), in.ProductID)
	if err != nil {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}
	if !p.HasSize(in.Size) {
		middleware.Fail(c, apperr.InvalidErr("Size not available for this product.", nil))
		return
	}

	if u, ok := middleware.CurrentUser(c); ok {
		userCart, err := h.CartRepo.GetOrCreateUserCart(c.Request.Context(), u.ID)
		if err == nil {
			err = h.CartRepo.AddItem(c.Request.Context(), userCart.ID, in.ProductID, in.Size, qty)
		}
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		h.Get(c)
		return
	}

	guest, _ := h.CK.Get(c)
	if guest == nil {
		guest = cartcookie.NewCart()
	}
	guest.AddItem(in.ProductID, in.Size, qty)
	h.CK.Set(c, guest)
	h.respondGuest(c, guest)
}

type cartUpdateInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required,max=16"`
	Qty       int    `json:"qty"`
}

// Update handles PATCH /cart/items - sets a line quantity; zero or
// less removes the line.
func (h *CartHandler) Update(c *gin.Context) {
	var in cartUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the form fields.", validation.FromBindError(err, &in)))
		return
	}
	qty := in.Qty

	if u, ok := middleware.CurrentUser(c); ok {
		userCart, err := h.CartRepo.GetOrCreateUserCart(c.Request.Context(), u.ID)
		if err == nil {
			err = h.CartRepo.UpdateItemQty(c.Request.Context(), userCart.ID, in.ProductID, in.Size, qty)
		}
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		h.Get(c)
		return
	}

	guest, _ := h.CK.Get(c)
	if guest == nil {
		guest = cartcookie.NewCart()
	}
	guest.UpdateQuantity(in.ProductID, in.Size, qty)
	h.CK.Set(c, guest)
	h.respondGuest(c, guest)
}

type cartRemoveInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required,max=16"`
}

// Remove handles DELETE /cart/items - removing an absent line is fine.
func (h *CartHandler) Remove(c *gin.Context) {
	var in cartRemoveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the form fields.", validation.FromBindError(err, &in)))
		return
	}

	if u, ok := middleware.CurrentUser(c); ok {
		userCart, err := h.CartRepo.GetOrCreateUserCart(c.Request.Context(), u.ID)
		if err == nil {
			err = h.CartRepo.RemoveItem(c.Request.Context(), userCart.ID, in.ProductID, in.Size)
		}
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		h.Get(c)
		return
	}

	guest, _ := h.CK.Get(c)
	if guest == nil {
		guest = cartcookie.NewCart()
	}
	guest.RemoveItem(in.ProductID, in.Size)
	h.CK.Set(c, guest)
	h.respondGuest(c, guest)
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if u, ok := middleware.CurrentUser(c); ok {
		userCart, err := h.CartRepo.GetOrCreateUserCart(c.Request.Context(), u.ID)
		if err == nil {
			err = h.CartRepo.ClearCart(c.Request.Context(), userCart.ID)
		}
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		h.Get(c)
		return
	}

	guest := cartcookie.NewCart()
	h.CK.Set(c, guest)
	h.respondGuest(c, guest)
}

// respondGuest answers a guest mutation with the cart that was just
// written to the cookie, not the stale one the request carried.
func (h *CartHandler) respondGuest(c *gin.Context, guest *cartcookie.Cart) {
	page, err := h.CartSvc.BuildCartPageFromCookie(c.Request.Context(), guest)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, page)
}

// Count handles GET /cart/count - the header badge.
func (h *CartHandler) Count(c *gin.Context) {
	if u, ok := middleware.CurrentUser(c); ok {
		page, err := h.CartSvc.BuildCartPageForUser(c.Request.Context(), u.ID)
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": page.Count})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": middleware.GetCartCount(c)})
}
