package cart

import (
	"context"

	"github.com/NixonSiagian/studio-archive-craft/internal/http/cartcookie"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/catalog"
	"github.com/NixonSiagian/studio-archive-craft/pkg/view"
)

// Catalog is the batch lookup used to hydrate cart lines.
type Catalog interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]catalog.Product, error)
}

// Service hydrates cart lines against the live catalog. Persisted carts
// only carry (product_id, size, qty); name, price and image are always
// re-read so a stale snapshot can never show an old price.
type Service struct {
	repo    *Repo
	catalog Catalog
}

func NewService(repo *Repo, cat Catalog) *Service {
	return &Service{repo: repo, catalog: cat}
}

// Line is one persisted cart entry before hydration.
type Line struct {
	ProductID string
	Size      string
	Qty       int
}

func (s *Service) BuildCartPageForUser(ctx context.Context, userID string) (view.CartPage, error) {
	c, err := s.repo.GetOrCreateUserCart(ctx, userID)
	if err != nil {
		return view.CartPage{}, err
	}
	items, err := s.repo.ListItems(ctx, c.ID)
	if err != nil {
		return view.CartPage{}, err
	}

	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{ProductID: it.ProductID, Size: it.Size, Qty: it.Quantity})
	}
	return s.buildCartPage(ctx, lines)
}

func (s *Service) BuildCartPageFromCookie(ctx context.Context, guest *cartcookie.Cart) (view.CartPage, error) {
	if guest == nil || guest.IsEmpty() {
		return emptyCartPage(), nil
	}
	lines := make([]Line, 0, len(guest.Items))
	for _, it := range guest.Items {
		if it.ProductID == "" || it.Qty <= 0 {
			continue
		}
		lines = append(lines, Line{ProductID: it.ProductID, Size: it.Size, Qty: it.Qty})
	}
	return s.buildCartPage(ctx, lines)
}

func (s *Service) buildCartPage(ctx context.Context, lines []Line) (view.CartPage, error) {
	if len(lines) == 0 {
		return emptyCartPage(), nil
	}

	ids := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, ln := range lines {
		if !seen[ln.ProductID] {
			seen[ln.ProductID] = true
			ids = append(ids, ln.ProductID)
		}
	}

	products, err := s.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return view.CartPage{}, err
	}

	return BuildCartView(lines, products), nil
}

// BuildCartView assembles the cart view model from persisted lines and
// the catalog rows they reference. Lines whose product is gone, whose
// size is no longer offered, or whose product went inactive are
// dropped silently.
func BuildCartView(lines []Line, products map[string]catalog.Product) view.CartPage {
	vm := emptyCartPage()

	for _, ln := range lines {
		if ln.Qty <= 0 {
			continue
		}
		p, ok := products[ln.ProductID]
		if !ok || p.Status != "active" {
			continue
		}
		if ln.Size != "" && !p.HasSize(ln.Size) {
			continue
		}

		line := p.PriceCents * ln.Qty
		vm.Count += ln.Qty
		vm.SubtotalCents += line
		if p.Currency != "" {
			vm.Currency = p.Currency
		}

		vm.Items = append(vm.Items, view.CartItem{
			ProductID:      p.ID,
			ProductSlug:    p.Slug,
			ProductName:    p.Name,
			ImageURL:       p.PrimaryImageURL(),
			Size:           ln.Size,
			Qty:            ln.Qty,
			UnitPriceCents: p.PriceCents,
			LineTotalCents: line,
			UnitPrice:      view.MoneyFromCents(p.PriceCents, p.Currency),
			LineTotal:      view.MoneyFromCents(line, p.Currency),
		})
	}

	vm.Subtotal = view.MoneyFromCents(vm.SubtotalCents, vm.Currency)
	return vm
}

func emptyCartPage() view.CartPage {
	return view.CartPage{
		Items:    []view.CartItem{},
		Currency: "IDR",
		Subtotal: view.MoneyFromCents(0, "IDR"),
	}
}
