package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratedir/ratedir/internal/server/http/dto"
)

// RatingHandler manages rating submission and listings.
type RatingHandler struct {
	facade RatingFacade
}

// NewRatingHandler constructs RatingHandler.
func NewRatingHandler(facade RatingFacade) *RatingHandler {
	return &RatingHandler{facade: facade}
}

// Submit handles POST /api/rating. A first rating for the (user, store)
// pair answers 201, resubmission overwrites the value and answers 200.
func (h *RatingHandler) Submit(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("malformed request body"))
		return
	}
	if req.StoreID <= 0 {
		c.JSON(http.StatusBadRequest, errorBody("invalid store id"))
		return
	}

	rating, created, err := h.facade.SubmitRating(c.Request.Context(), claims.UserID, req.StoreID, req.Rating)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	status := http.StatusOK
	message := "Rating updated"
	if created {
		status = http.StatusCreated
		message = "Rating added"
	}
	c.JSON(status, dto.RatingResponse{Message: message, StoreID: rating.StoreID, Rating: rating.Value})
}

// ListByStore handles GET /api/rating/store/:storeId.
func (h *RatingHandler) ListByStore(c *gin.Context) {
	storeID := pathID(c, "storeId")
	if storeID == 0 {
		c.JSON(http.StatusBadRequest, errorBody("invalid store id"))
		return
	}

	ratings, err := h.facade.StoreRatings(c.Request.Context(), storeID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	resp := make([]dto.StoreRatingResponse, 0, len(ratings))
	for _, r := range ratings {
		resp = append(resp, dto.FromRatingWithRater(r))
	}
	c.JSON(http.StatusOK, resp)
}

// ListOwn handles GET /api/rating/user.
func (h *RatingHandler) ListOwn(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ratings, err := h.facade.UserRatings(c.Request.Context(), claims.UserID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	resp := make([]dto.UserRatingResponse, 0, len(ratings))
	for _, r := range ratings {
		resp = append(resp, dto.FromRatingWithStore(r))
	}
	c.JSON(http.StatusOK, resp)
}
