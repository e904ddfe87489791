package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratedir/ratedir/internal/domain/model"
	"github.com/ratedir/ratedir/internal/server/http/dto"
)

// DashboardHandler serves the admin and owner overviews plus the
// admin-only account operations.
type DashboardHandler struct {
	facade DashboardFacade
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(facade DashboardFacade) *DashboardHandler {
	return &DashboardHandler{facade: facade}
}

func userFilterFromQuery(c *gin.Context) model.UserFilter {
	filter := model.UserFilter{Search: c.Query("search")}
	if role, ok := model.ParseRole(c.Query("role")); ok {
		filter.Role = role
	}
	return filter
}

// Admin handles GET /api/admin/dashboard.
func (h *DashboardHandler) Admin(c *gin.Context) {
	dash, err := h.facade.AdminDashboard(c.Request.Context(), userFilterFromQuery(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromAdminDashboard(dash))
}

// Owner handles GET /api/owner/dashboard. Only the caller's own stores
// appear, regardless of rating activity elsewhere.
func (h *DashboardHandler) Owner(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	views, err := h.facade.OwnerDashboard(c.Request.Context(), claims.UserID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	resp := make([]dto.OwnerStoreResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, dto.FromOwnerStoreView(v))
	}
	c.JSON(http.StatusOK, resp)
}

// ListUsers handles GET /api/user.
func (h *DashboardHandler) ListUsers(c *gin.Context) {
	users, err := h.facade.ListUsers(c.Request.Context(), userFilterFromQuery(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.FromPublicUser(u))
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteUser handles DELETE /api/user/:id. Deletion is rejected while
// the account still owns stores.
func (h *DashboardHandler) DeleteUser(c *gin.Context) {
	id := pathID(c, "id")
	if id == 0 {
		c.JSON(http.StatusBadRequest, errorBody("invalid user id"))
		return
	}

	if err := h.facade.DeleteUser(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
