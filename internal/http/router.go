package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NixonSiagian/studio-archive-craft/internal/config"
	"github.com/NixonSiagian/studio-archive-craft/internal/http/cartcookie"
	"github.com/NixonSiagian/studio-archive-craft/internal/http/handlers"
	"github.com/NixonSiagian/studio-archive-craft/internal/http/handlers/admin"
	"github.com/NixonSiagian/studio-archive-craft/internal/http/middleware"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/auth"
	cartmod "github.com/NixonSiagian/studio-archive-craft/internal/modules/cart"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/catalog"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/orders"
	"github.com/NixonSiagian/studio-archive-craft/internal/storage"
)

// Deps carries everything the router needs. main wires these once at
// startup.
type Deps struct {
	Cfg     config.Config
	Log     *slog.Logger
	DB      *gorm.DB
	Catalog *catalog.Service
	Storage storage.Storage
	Orders  *orders.Service
}

func NewRouter(d Deps) *gin.Engine {
	authRepo := auth.NewRepo(d.DB)
	catalogRepo := catalog.NewRepo(d.DB)
	cartRepo := cartmod.NewRepo(d.DB)
	cartSvc := cartmod.NewService(cartRepo, d.Catalog)
	ordersRepo := orders.NewRepo(d.DB)

	cartCK := &cartcookie.Codec{
		Secret:     []byte(d.Cfg.SecretKey),
		CookieName: d.Cfg.CartCookie,
		Secure:     d.Cfg.CookieSecure,
	}
	sessCfg := middleware.SessionCfg{
		DB: d.DB,
		Roles: &auth.DBRoleResolver{
			DB:      d.DB,
			Timeout: d.Cfg.RoleTimeout,
			Log:     d.Log,
		},
		CookieName: d.Cfg.SessionCookie,
		Secure:     d.Cfg.CookieSecure,
		TTL:        d.Cfg.SessionTTL,
	}

	authH := handlers.NewAuthHandlers(authRepo, sessCfg, cartCK, cartRepo, d.Log)
	productsH := handlers.NewProductsHandler(d.Catalog)
	cartH := handlers.NewCartHandler(cartCK, cartRepo, cartSvc, d.Catalog)
	checkoutH := handlers.NewCheckoutHandler(d.Orders)
	ordersH := handlers.NewOrdersHandler(ordersRepo)

	adminOrdersH := admin.NewOrdersHandler(ordersRepo)
	adminProductsH := admin.NewProductsHandler(catalogRepo, d.Catalog, d.Storage, d.Log)
	adminUsersH := admin.NewUsersHandler(authRepo)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Log))
	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.ErrorHandler(d.Log))
	r.Use(middleware.SessionMiddleware(sessCfg))
	r.Use(middleware.CartCount(cartCK))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/signup", authH.SignupPost)
	r.POST("/auth/login", authH.LoginPost)
	r.POST("/auth/logout", authH.LogoutPost)
	r.GET("/auth/session", authH.Session)

	r.GET("/products", productsH.List)
	r.GET("/products/:slug", productsH.Show)

	cart := r.Group("/cart")
	{
		cart.GET("", cartH.Get)
		cart.GET("/count", cartH.Count)
		cart.POST("/items", cartH.Add)
		cart.PATCH("/items", cartH.Update)
		cart.DELETE("/items", cartH.Remove)
		cart.DELETE("", cartH.Clear)
	}

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.POST("/checkout", checkoutH.Post)
		authed.GET("/account/orders", ordersH.List)
		authed.GET("/account/orders/:id", ordersH.Detail)
	}

	adm := r.Group("/admin")
	adm.Use(middleware.RequireAdmin())
	{
		adm.GET("/dashboard", adminOrdersH.Dashboard)

		adm.GET("/orders", adminOrdersH.List)
		adm.GET("/orders/:id", adminOrdersH.Detail)
		adm.PATCH("/orders/:id", adminOrdersH.UpdateStatus)

		adm.GET("/products", adminProductsH.List)
		adm.POST("/products", adminProductsH.Create)
		adm.GET("/products/:id", adminProductsH.Detail)
		adm.PUT("/products/:id", adminProductsH.Update)
		adm.DELETE("/products/:id", adminProductsH.Delete)
		adm.POST("/products/:id/images", adminProductsH.UploadImage)
		adm.DELETE("/products/:id/images/:imageID", adminProductsH.DeleteImage)

		adm.GET("/users", adminUsersH.List)
		adm.POST("/users/:id/roles", adminUsersH.GrantRole)
		adm.DELETE("/users/:id/roles/:role", adminUsersH.RevokeRole)
	}

	return r
}
