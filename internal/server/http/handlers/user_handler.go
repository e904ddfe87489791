package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratedir/ratedir/internal/domain/model"
	"github.com/ratedir/ratedir/internal/server/http/dto"
)

// UserHandler serves profile endpoints and the user-facing directory.
type UserHandler struct {
	auth   AuthFacade
	stores StoreFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(auth AuthFacade, stores StoreFacade) *UserHandler {
	return &UserHandler{auth: auth, stores: stores}
}

// Profile handles GET /api/user/profile.
func (h *UserHandler) Profile(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	user, err := h.auth.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUser(user))
}

// Update handles PUT /api/user/update. Absent fields stay untouched; a
// password change is validated against the policy before any write.
func (h *UserHandler) Update(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("malformed request body"))
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), claims.UserID, model.UserUpdate{
		Name:     req.Name,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUser(user))
}

// Stores handles GET /api/user/stores: the directory with the caller's
// own rating attached to every store they have rated.
func (h *UserHandler) Stores(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	summaries, err := h.stores.ListStores(c.Request.Context(), storeFilterFromQuery(c), claims)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	resp := make([]dto.StoreSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, dto.FromStoreSummary(s))
	}
	c.JSON(http.StatusOK, resp)
}
