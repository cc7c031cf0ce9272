package admin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NixonSiagian/studio-archive-craft/internal/http/middleware"
	"github.com/NixonSiagian/studio-archive-craft/internal/http/validation"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/catalog"
	"github.com/NixonSiagian/studio-archive-craft/internal/shared/apperr"
	"github.com/NixonSiagian/studio-archive-craft/internal/storage"
)

type ProductsHandler struct {
	Repo    *catalog.Repo
	Svc     *catalog.Service
	Storage storage.Storage
	Log     *slog.Logger
}

func NewProductsHandler(repo *catalog.Repo, svc *catalog.Service, st storage.Storage, log *slog.Logger) *ProductsHandler {
	return &ProductsHandler{Repo: repo, Svc: svc, Storage: st, Log: log}
}

type productInput struct {
	Slug              string   `json:"slug" binding:"required,min=2,max=120"`
	Name              string   `json:"name" binding:"required,min=2,max=200"`
	PriceCents        int      `json:"price_cents" binding:"required,gte=0"`
	Currency          string   `json:"currency" binding:"omitempty,len=3"`
	Drop              string   `json:"drop" binding:"required,max=64"`
	DropLabel         string   `json:"drop_label" binding:"omitempty,max=64"`
	Category          string   `json:"category" binding:"required,max=64"`
	Color             string   `json:"color" binding:"omitempty,max=64"`
	Availability      string   `json:"availability" binding:"omitempty,oneof=available sold_out archived"`
	AvailabilityLabel string   `json:"availability_label" binding:"omitempty,max=64"`
	Description       []string `json:"description"`
	Sizes             []string `json:"sizes" binding:"required,min=1"`
	InStock           *bool    `json:"in_stock"`
	Status            string   `json:"status" binding:"omitempty,oneof=active draft archived"`
}

func (in productInput) toRepoInput() (catalog.ProductInput, error) {
	desc, err := json.Marshal(in.Description)
	if err != nil {
		return catalog.ProductInput{}, err
	}
	sizes, err := json.Marshal(in.Sizes)
	if err != nil {
		return catalog.ProductInput{}, err
	}

	currency := strings.ToUpper(in.Currency)
	if currency == "" {
		currency = "IDR"
	}
	availability := in.Availability
	if availability == "" {
		availability = "available"
	}
	status := in.Status
	if status == "" {
		status = "active"
	}
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}

	return catalog.ProductInput{
		Slug:              strings.ToLower(strings.TrimSpace(in.Slug)),
		Name:              strings.TrimSpace(in.Name),
		PriceCents:        in.PriceCents,
		Currency:          currency,
		Drop:              in.Drop,
		DropLabel:         in.DropLabel,
		Category:          in.Category,
		Color:             in.Color,
		Availability:      availability,
		AvailabilityLabel: in.AvailabilityLabel,
		Description:       desc,
		Sizes:             sizes,
		InStock:           inStock,
		Status:            status,
	}, nil
}

// List handles GET /admin/products - includes drafts and archived rows,
// unlike the storefront listing.
func (h *ProductsHandler) List(c *gin.Context) {
	rows, err := h.Repo.ListAll(c.Request.Context(), strings.TrimSpace(c.Query("status")))
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": rows, "total": len(rows)})
}

// Detail handles GET /admin/products/:id.
func (h *ProductsHandler) Detail(c *gin.Context) {
	p, err := h.Repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create handles POST /admin/products.
func (h *ProductsHandler) Create(c *gin.Context) {
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the form fields.", validation.FromBindError(err, &in)))
		return
	}

	repoIn, err := in.toRepoInput()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	p, err := h.Repo.CreateProduct(c.Request.Context(), repoIn)
	if err != nil {
		if catalog.IsDuplicateKey(err) {
			middleware.Fail(c, apperr.ConflictErr("A product with this slug already exists."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.Svc.InvalidateCache(c.Request.Context())
	c.JSON(http.StatusCreated, p)
}

// Update handles PUT /admin/products/:id.
func (h *ProductsHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the form fields.", validation.FromBindError(err, &in)))
		return
	}

	repoIn, err := in.toRepoInput()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	if err := h.Repo.UpdateProduct(c.Request.Context(), id, repoIn); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		case catalog.IsDuplicateKey(err):
			middleware.Fail(c, apperr.ConflictErr("A product with this slug already exists."))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	h.Svc.InvalidateCache(c.Request.Context())
	h.Detail(c)
}

// Delete handles DELETE /admin/products/:id.
func (h *ProductsHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.Repo.Get(c.Request.Context(), id); err != nil {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}
	if err := h.Repo.DeleteProduct(c.Request.Context(), id); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.Svc.InvalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// maxUploadSize caps product image uploads at 10 MiB.
const maxUploadSize = 10 << 20

// UploadImage handles POST /admin/products/:id/images with a multipart
// "image" field.
func (h *ProductsHandler) UploadImage(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.Repo.Get(c.Request.Context(), id); err != nil {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("An image file is required.", nil))
		return
	}
	if fh.Size > maxUploadSize {
		middleware.Fail(c, apperr.InvalidErr("Image is too large (max 10 MB).", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	res, err := h.Storage.Put(c.Request.Context(), f, storage.PutInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	position := parseInt(c.PostForm("position"), 1)
	img, err := h.Repo.AddImage(c.Request.Context(), id, res.Key, res.URL, position)
	if err != nil {
		// Orphaned object; best effort cleanup.
		if delErr := h.Storage.Delete(c.Request.Context(), res.Key); delErr != nil {
			h.Log.Warn("orphaned upload cleanup failed", "key", res.Key, "error", delErr)
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.Svc.InvalidateCache(c.Request.Context())
	c.JSON(http.StatusCreated, img)
}

// DeleteImage handles DELETE /admin/products/:id/images/:imageID.
func (h *ProductsHandler) DeleteImage(c *gin.Context) {
	id := c.Param("id")
	imageID := c.Param("imageID")

	img, err := h.Repo.GetImage(c.Request.Context(), id, imageID)
	if err != nil {
		middleware.Fail(c, apperr.NotFoundErr("Image not found."))
		return
	}
	if err := h.Repo.DeleteImage(c.Request.Context(), id, imageID); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if img.StorageKey != "" {
		if err := h.Storage.Delete(c.Request.Context(), img.StorageKey); err != nil {
			h.Log.Warn("image blob delete failed", "key", img.StorageKey, "error", err)
		}
	}

	h.Svc.InvalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
