package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ibet-fin/ibet-indexer/internal/api/apierrors"
	"github.com/ibet-fin/ibet-indexer/internal/logger"
)

// respondOK wraps data in the success envelope
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, apierrors.Envelope{
		Meta: apierrors.Meta{Code: apierrors.CodeOK, Message: "OK"},
		Data: data,
	})
}

func respondError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(apiErr.HTTPStatus, apiErr.Envelope())
}

// respondInvalidParameter responds with an invalid parameter error (88)
func respondInvalidParameter(c *gin.Context, description interface{}) {
	respondError(c, apierrors.NewInvalidParameter(description))
}

// respondSuspendedToken responds with a suspended token error (20)
func respondSuspendedToken(c *gin.Context, description interface{}) {
	respondError(c, apierrors.NewSuspendedToken(description))
}

// respondNotSupported responds with a not supported error (10)
func respondNotSupported(c *gin.Context, description interface{}) {
	respondError(c, apierrors.NewNotSupported(description))
}

// respondDataNotExists responds with a data not exists error (30)
func respondDataNotExists(c *gin.Context, description interface{}) {
	respondError(c, apierrors.NewDataNotExists(description))
}

// respondDataConflict responds with a data conflict error (40)
func respondDataConflict(c *gin.Context, description interface{}) {
	respondError(c, apierrors.NewDataConflict(description))
}

// respondResponseLimitExceeded responds with a response limit error (86)
func respondResponseLimitExceeded(c *gin.Context, description interface{}) {
	respondError(c, apierrors.NewResponseLimitExceeded(description))
}

// respondServiceUnavailable responds with a service unavailable error (503)
func respondServiceUnavailable(c *gin.Context, description interface{}) {
	respondError(c, apierrors.NewServiceUnavailable(description))
}

// respondInternalError responds with an internal server error and logs the cause
func respondInternalError(c *gin.Context, err error, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, fields...)
	respondError(c, apierrors.NewInternalError())
}
