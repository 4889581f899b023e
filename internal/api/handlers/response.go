package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// fail maps a service error onto the response envelope.
func fail(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("request rejected")
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": err.Error(),
				"fields":  verr.Fields,
			},
		})
	case errors.Is(err, domain.ErrPermissionDenied):
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("request rejected")
		respondError(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrInvalidState):
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("request rejected")
		respondError(c, http.StatusConflict, "INVALID_STATE", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("store busy")
		respondError(c, http.StatusServiceUnavailable, "STORE_BUSY", "the floor data is busy, try again")
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// bind decodes the JSON body into dst, answering 400 on failure.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return false
	}
	return true
}

func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(c.Param(name)))
	if err != nil {
		respondError(c, http.StatusBadRequest, "BAD_REQUEST", name+" must be a number")
		return 0, false
	}
	return v, true
}

func wantsCSV(c *gin.Context) bool {
	return strings.EqualFold(c.Query("format"), "csv")
}
