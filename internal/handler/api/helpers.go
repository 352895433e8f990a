package api

import (
	"errors"
	"net/http"

	"gin-order-admin/internal/handler/httperr"
	"gin-order-admin/internal/pkg/errs"
	"gin-order-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

func rootMessage(err error) string {
	return errs.Cause(err).Error()
}

// abortListError covers the failures shared by every paginated listing.
func abortListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
	case errors.Is(err, queries.ErrInvalidDateFilter):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "from must be before until", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
