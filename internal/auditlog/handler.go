package auditlog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/bandhub/band-management-backend/internal/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAuditLogs godoc
// @Summary List audit records
// @Description Admin only. Filters combine with AND; to_date covers the whole day.
// @Tags auditlog
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "actor id"
// @Param event_id query string false "event the action touched"
// @Param action query string false "action contains"
// @Param status query string false "success or failure"
// @Param from_date query string false "YYYY-MM-DD"
// @Param to_date query string false "YYYY-MM-DD"
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} PaginatedAuditLogs
// @Failure 400 {object} map[string]string
// @Router /auditlogs [get]
func (h *Handler) GetAuditLogs(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	result, err := h.service.GetAuditLogs(c.Request.Context(), filter)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAuditLogByID godoc
// @Summary Get one audit record
// @Tags auditlog
// @Produce json
// @Security BearerAuth
// @Param id path int true "audit record id"
// @Success 200 {object} AuditLogResponse
// @Failure 404 {object} map[string]string
// @Router /auditlogs/{id} [get]
func (h *Handler) GetAuditLogByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httpx.RespondError(c, apperror.InvalidInput("invalid audit record id"))
		return
	}

	record, err := h.service.GetAuditLogByID(c.Request.Context(), uint(id))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func filterFromQuery(c *gin.Context) (AuditLogFilter, error) {
	f := AuditLogFilter{
		Action: c.Query("action"),
		Status: c.Query("status"),
	}
	f.Page, f.Limit = httpx.Page(c, 20, 100)

	var err error
	if f.UserID, err = optionalUUID(c, "user_id"); err != nil {
		return f, err
	}
	if f.TargetID, err = optionalUUID(c, "event_id"); err != nil {
		return f, err
	}
	if f.FromDate, err = optionalDay(c, "from_date", false); err != nil {
		return f, err
	}
	if f.ToDate, err = optionalDay(c, "to_date", true); err != nil {
		return f, err
	}
	return f, nil
}

func optionalUUID(c *gin.Context, key string) (*uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperror.InvalidInput("invalid %s", key)
	}
	return &id, nil
}

func optionalDay(c *gin.Context, key string, endOfDay bool) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, apperror.InvalidInput("invalid %s, use YYYY-MM-DD", key)
	}
	if endOfDay {
		day = day.Add(24*time.Hour - time.Nanosecond)
	}
	return &day, nil
}
