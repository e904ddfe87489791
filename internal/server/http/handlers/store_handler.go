package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratedir/ratedir/internal/domain/model"
	"github.com/ratedir/ratedir/internal/server/http/dto"
	"github.com/ratedir/ratedir/internal/usecase"
)

// StoreHandler manages directory and store management endpoints.
type StoreHandler struct {
	facade StoreFacade
}

// NewStoreHandler constructs StoreHandler.
func NewStoreHandler(facade StoreFacade) *StoreHandler {
	return &StoreHandler{facade: facade}
}

func storeFilterFromQuery(c *gin.Context) model.StoreFilter {
	return model.StoreFilter{
		Name:    c.Query("name"),
		Address: c.Query("address"),
		SortBy:  model.StoreSort(c.Query("sort")),
	}
}

// List handles GET /api/stores. The route is public; when a valid
// token accompanies the request the rows carry the caller's own rating.
func (h *StoreHandler) List(c *gin.Context) {
	summaries, err := h.facade.ListStores(c.Request.Context(), storeFilterFromQuery(c), CurrentClaims(c))
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

// Get handles GET /api/stores/:id.
func (h *StoreHandler) Get(c *gin.Context) {
	id := pathID(c, "id")
	if id == 0 {
		c.JSON(http.StatusBadRequest, errorBody("invalid store id"))
		return
	}

	details, err := h.facade.GetStore(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromStoreDetails(details))
}

// Create handles POST /api/stores. The created store is owned by the
// calling account.
func (h *StoreHandler) Create(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req dto.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("malformed request body"))
		return
	}

	store, err := h.facade.CreateStore(c.Request.Context(), claims.UserID, usecase.StoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromStore(store))
}

// Update handles PUT /api/stores/:id. A store belonging to another
// owner is indistinguishable from a missing one.
func (h *StoreHandler) Update(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	id := pathID(c, "id")
	if id == 0 {
		c.JSON(http.StatusBadRequest, errorBody("invalid store id"))
		return
	}

	var req dto.StoreUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("malformed request body"))
		return
	}

	store, err := h.facade.UpdateStore(c.Request.Context(), id, claims.UserID, model.StoreUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromStore(store))
}

// Delete handles DELETE /api/stores/:id.
func (h *StoreHandler) Delete(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	id := pathID(c, "id")
	if id == 0 {
		c.JSON(http.StatusBadRequest, errorBody("invalid store id"))
		return
	}

	if err := h.facade.DeleteStore(c.Request.Context(), id, claims.UserID); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
