package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/ratedir/ratedir/internal/domain/errors"
	pkgAuth "github.com/ratedir/ratedir/internal/pkg/auth"
	"github.com/ratedir/ratedir/internal/server/http/middleware"
)

// CurrentClaims extracts verified token claims from context, nil when
// the request is anonymous.
func CurrentClaims(c *gin.Context) *pkgAuth.Claims {
	return middleware.CurrentClaims(c)
}

// pathID parses a numeric path parameter, 0 when absent or malformed.
func pathID(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// errorBody is the uniform error payload.
func errorBody(message string) gin.H {
	return gin.H{"error": message}
}

// writeDomainError maps domain sentinels onto HTTP statuses. Validation
// sentinels carry the violated rule into the response body.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorBody("invalid credentials"))
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody("not found"))
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorBody("already exists"))
	case errors.Is(err, domainErrors.ErrOwnedStoresExist):
		c.JSON(http.StatusConflict, errorBody("user still owns stores"))
	case errors.Is(err, domainErrors.ErrInvalidRating),
		errors.Is(err, domainErrors.ErrInvalidRole),
		errors.Is(err, domainErrors.ErrInvalidName),
		errors.Is(err, domainErrors.ErrInvalidAddress),
		errors.Is(err, domainErrors.ErrInvalidEmail),
		errors.Is(err, domainErrors.ErrPasswordLength),
		errors.Is(err, domainErrors.ErrPasswordUppercase),
		errors.Is(err, domainErrors.ErrPasswordSpecial):
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, domainErrors.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, errorBody("temporarily unavailable"))
	default:
		c.Status(http.StatusInternalServerError)
	}
}
