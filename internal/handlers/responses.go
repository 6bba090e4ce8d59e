package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/walidbs/comptoir/internal/apperrors"
	"github.com/walidbs/comptoir/internal/dto"
	"github.com/walidbs/comptoir/internal/middleware"
)

// respondError classifies a service error into the failure envelope: a
// stable code plus a human-readable message. The account and ledger are
// untouched by the failed call; the repositories roll back before the error
// ever reaches this point.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail(dto.CodeValidation, err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(dto.CodeNotFound, err.Error()))
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConstraint):
		c.JSON(http.StatusConflict, dto.Fail(dto.CodeConstraint, err.Error()))
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Request failed with storage error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail(dto.CodeStorage, err.Error()))
	}
}

// respondBindError reports a request-binding failure, which is always a
// validation error recovered at the boundary.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Fail(dto.CodeValidation, "invalid request format: "+err.Error()))
}
