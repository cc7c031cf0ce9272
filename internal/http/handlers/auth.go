package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NixonSiagian/studio-archive-craft/internal/http/cartcookie"
	"github.com/NixonSiagian/studio-archive-craft/internal/http/middleware"
	"github.com/NixonSiagian/studio-archive-craft/internal/http/validation"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/auth"
	cartmod "github.com/NixonSiagian/studio-archive-craft/internal/modules/cart"
	"github.com/NixonSiagian/studio-archive-craft/internal/shared/apperr"
	"github.com/NixonSiagian/studio-archive-craft/pkg/view"
)

// AuthHandlers contains handlers for authentication routes.
type AuthHandlers struct {
	repo     *auth.Repo
	sessCfg  middleware.SessionCfg
	cartCK   *cartcookie.Codec
	cartRepo *cartmod.Repo
	log      *slog.Logger
}

func NewAuthHandlers(repo *auth.Repo, sessCfg middleware.SessionCfg, ck *cartcookie.Codec, cartRepo *cartmod.Repo, log *slog.Logger) *AuthHandlers {
	return &AuthHandlers{repo: repo, sessCfg: sessCfg, cartCK: ck, cartRepo: cartRepo, log: log}
}

type signupInput struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	FullName string `json:"full_name" binding:"omitempty,max=255"`
}

// SignupPost handles POST /auth/signup.
func (h *AuthHandlers) SignupPost(c *gin.Context) {
	var in signupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Check the form fields.", errs))
		return
	}

	u, err := h.repo.Register(c.Request.Context(), in.Email, in.Password, in.FullName)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			middleware.Fail(c, apperr.ConflictErr("This email is already registered."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.startSession(c, u)
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginPost handles POST /auth/login.
func (h *AuthHandlers) LoginPost(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Check the form fields.", errs))
		return
	}

	u, err := h.repo.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			middleware.Fail(c, apperr.UnauthorizedErr("Invalid email or password."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.startSession(c, u)
}

// startSession creates the session, folds any guest cookie cart into
// the user's DB cart, and answers with the resolved session view.
func (h *AuthHandlers) startSession(c *gin.Context, u auth.User) {
	sess, err := middleware.CreateSession(h.sessCfg, u.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.SetCookie(h.sessCfg.CookieName, sess.ID, int(h.sessCfg.TTL.Seconds()), "/", "", h.sessCfg.Secure, true)

	if guest, _ := h.cartCK.Get(c); guest != nil && !guest.IsEmpty() {
		userCart, err := h.cartRepo.GetOrCreateUserCart(c.Request.Context(), u.ID)
		if err == nil {
			err = h.cartRepo.MergeCookieCart(c.Request.Context(), userCart.ID, guest)
		}
		if err != nil {
			// keep the cookie so nothing is lost; next login retries
			h.log.Warn("cart_merge_failed", slog.String("user_id", u.ID), slog.Any("err", err))
		} else {
			h.cartCK.Clear(c)
		}
	}

	role := auth.RoleCustomer
	if h.sessCfg.Roles != nil {
		role = h.sessCfg.Roles.Resolve(c.Request.Context(), u.ID)
	}

	c.JSON(http.StatusOK, view.SessionView{
		SignedIn: true,
		UserID:   u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     role,
		IsAdmin:  role == auth.RoleAdmin,
	})
}

// LogoutPost handles POST /auth/logout.
func (h *AuthHandlers) LogoutPost(c *gin.Context) {
	sessionID, err := c.Cookie(h.sessCfg.CookieName)
	if err == nil && sessionID != "" {
		_ = middleware.DeleteSession(h.sessCfg, sessionID)
	}
	c.SetCookie(h.sessCfg.CookieName, "", -1, "/", "", h.sessCfg.Secure, true)

	c.JSON(http.StatusOK, view.SessionView{SignedIn: false})
}

// Session handles GET /auth/session. Anonymous is a valid answer, not
// an error; the client uses this to decide navigation only — every
// admin route is separately enforced server-side.
func (h *AuthHandlers) Session(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, view.SessionView{SignedIn: false})
		return
	}
	c.JSON(http.StatusOK, view.SessionView{
		SignedIn: true,
		UserID:   u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		IsAdmin:  u.IsAdmin(),
	})
}
