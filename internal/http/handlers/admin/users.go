package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NixonSiagian/studio-archive-craft/internal/http/middleware"
	"github.com/NixonSiagian/studio-archive-craft/internal/http/validation"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/auth"
	"github.com/NixonSiagian/studio-archive-craft/internal/shared/apperr"
)

type UsersHandler struct {
	Repo *auth.Repo
}

func NewUsersHandler(repo *auth.Repo) *UsersHandler {
	return &UsersHandler{Repo: repo}
}

type userRow struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FullName  string   `json:"full_name"`
	Role      string   `json:"role"`
	Roles     []string `json:"roles"`
	CreatedAt string   `json:"created_at"`
}

// List handles GET /admin/users.
func (h *UsersHandler) List(c *gin.Context) {
	page := parseInt(c.Query("page"), 1)
	const pageSize = 50

	users, total, err := h.Repo.ListUsers(c.Request.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	roles, err := h.Repo.RolesByUserIDs(c.Request.Context(), ids)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		row := userRow{
			ID:        u.ID,
			Email:     u.Email,
			FullName:  u.FullName,
			Role:      auth.RoleCustomer,
			Roles:     roles[u.ID],
			CreatedAt: u.CreatedAt.Format("2006-01-02 15:04"),
		}
		for _, r := range row.Roles {
			if r == auth.RoleAdmin {
				row.Role = auth.RoleAdmin
				break
			}
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, gin.H{
		"users":       rows,
		"page":        page,
		"total":       total,
		"total_pages": pagesFromTotal(total, pageSize),
	})
}

type roleInput struct {
	Role string `json:"role" binding:"required,oneof=admin"`
}

// GrantRole handles POST /admin/users/:id/roles. Only admin can be
// granted; customer is the implicit default, not a row.
func (h *UsersHandler) GrantRole(c *gin.Context) {
	id := c.Param("id")

	var in roleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the form fields.", validation.FromBindError(err, &in)))
		return
	}

	if _, err := h.Repo.GetByID(c.Request.Context(), id); err != nil {
		middleware.Fail(c, apperr.NotFoundErr("User not found."))
		return
	}
	if err := h.Repo.GrantRole(c.Request.Context(), id, in.Role); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"granted": in.Role})
}

// RevokeRole handles DELETE /admin/users/:id/roles/:role. An admin
// cannot revoke their own admin role; that locks the back office.
func (h *UsersHandler) RevokeRole(c *gin.Context) {
	id := c.Param("id")
	role := c.Param("role")

	if role != auth.RoleAdmin {
		middleware.Fail(c, apperr.InvalidErr("Unknown role.", nil))
		return
	}
	if u, ok := middleware.CurrentUser(c); ok && u.ID == id {
		middleware.Fail(c, apperr.InvalidErr("You cannot revoke your own admin role.", nil))
		return
	}

	if _, err := h.Repo.GetByID(c.Request.Context(), id); err != nil {
		middleware.Fail(c, apperr.NotFoundErr("User not found."))
		return
	}
	if err := h.Repo.RevokeRole(c.Request.Context(), id, role); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"revoked": role})
}
