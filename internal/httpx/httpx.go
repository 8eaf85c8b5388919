// Package httpx holds the small gin helpers shared by every handler.
package httpx

import (
	"net/http"
	"strconv"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the middleware chain.
const (
	KeyUserID   = "user_id"
	KeyRole     = "role"
	KeyClientIP = "client_ip"
)

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindInvalidReference, apperror.KindInvalidOrder, apperror.KindInvalidInput:
		return http.StatusBadRequest
	case apperror.KindDuplicateSong, apperror.KindOrderConflict, apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized
	case apperror.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the caller-safe view of err and aborts the chain.
func RespondError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	status := StatusFor(kind)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "err", err)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": apperror.MessageOf(err),
		"kind":  kind.String(),
	})
}

// ActorID returns the authenticated user id, if any.
func ActorID(c *gin.Context) *uuid.UUID {
	raw, ok := c.Get(KeyUserID)
	if !ok {
		return nil
	}
	id, ok := raw.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

func ClientIP(c *gin.Context) string {
	if ip := c.GetString(KeyClientIP); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// UUIDParam parses a path parameter as a UUID.
func UUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.InvalidInput("invalid %s", name)
	}
	return id, nil
}

// Page reads page and limit query parameters with defaults and an upper bound.
func Page(c *gin.Context, defaultLimit, maxLimit int) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
