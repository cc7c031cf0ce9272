package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NixonSiagian/studio-archive-craft/internal/http/middleware"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/catalog"
	"github.com/NixonSiagian/studio-archive-craft/internal/shared/apperr"
	"github.com/NixonSiagian/studio-archive-craft/pkg/view"
)

// ProductsHandler handles the public catalog.
type ProductsHandler struct {
	svc *catalog.Service
}

func NewProductsHandler(svc *catalog.Service) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// List handles GET /products?drop=&category=&limit=&offset=
func (h *ProductsHandler) List(c *gin.Context) {
	f := catalog.ListFilter{
		Drop:     strings.TrimSpace(c.Query("drop")),
		Category: strings.TrimSpace(c.Query("category")),
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			f.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			f.Offset = n
		}
	}

	items, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	page := view.ProductListPage{Products: make([]view.ProductCard, 0, len(items)), Total: len(items)}
	for _, p := range items {
		page.Products = append(page.Products, toProductCard(p))
	}
	c.JSON(http.StatusOK, page)
}

// Show handles GET /products/:slug
func (h *ProductsHandler) Show(c *gin.Context) {
	slug := c.Param("slug")

	p, err := h.svc.Detail(c.Request.Context(), slug)
	if err != nil {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	c.JSON(http.StatusOK, toProductDetail(p))
}

func toProductCard(p catalog.Product) view.ProductCard {
	return view.ProductCard{
		ID:                p.ID,
		Slug:              p.Slug,
		Name:              p.Name,
		PriceCents:        p.PriceCents,
		Currency:          p.Currency,
		Price:             view.MoneyFromCents(p.PriceCents, p.Currency),
		Drop:              p.Drop,
		DropLabel:         p.DropLabel,
		Category:          p.Category,
		Color:             p.Color,
		Availability:      p.Availability,
		AvailabilityLabel: p.AvailabilityLabel,
		ImageURL:          p.PrimaryImageURL(),
		InStock:           p.InStock,
	}
}

func toProductDetail(p catalog.Product) view.ProductDetail {
	images := make([]string, 0, len(p.Images))
	for _, im := range p.Images {
		images = append(images, im.URL)
	}
	return view.ProductDetail{
		ProductCard: toProductCard(p),
		Description: p.DescriptionLines(),
		Sizes:       p.SizeList(),
		Images:      images,
	}
}
