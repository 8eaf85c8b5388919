package reports

import (
	"fmt"
	"net/http"

	"github.com/bandhub/band-management-backend/internal/auditlog"
	"github.com/bandhub/band-management-backend/internal/httpx"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  ReportService
	auditSvc auditlog.Service
}

func NewHandler(svc ReportService, auditSvc auditlog.Service) *Handler {
	return &Handler{service: svc, auditSvc: auditSvc}
}

// ExportSetlist handles GET /events/:id/setlist/export
// @Summary Download an event's setlist
// @Tags reports
// @Produce octet-stream
// @Param id path string true "event id"
// @Param format query string false "excel, csv or pdf" default(pdf)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id}/setlist/export [get]
func (h *Handler) ExportSetlist(c *gin.Context) {
	eventID, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	format := c.DefaultQuery("format", FormatPDF)

	export, err := h.service.ExportSetlist(c.Request.Context(), eventID, format)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	h.logDownload(c, auditlog.ActionReportExported, map[string]interface{}{
		"report":   "setlist",
		"event_id": eventID,
		"format":   format,
	})
	sendFile(c, export)
}

// GetEventSchedule handles GET /reports/events
// @Summary Event schedule report
// @Description Events in a date range with setlist size and running time. Returns JSON unless format is set.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date_range query string false "daily, weekly, monthly, yearly or custom" default(weekly)
// @Param start_date query string false "YYYY-MM-DD, custom range only"
// @Param end_date query string false "YYYY-MM-DD, custom range only"
// @Param format query string false "excel, csv or pdf"
// @Success 200 {object} ScheduleResponse
// @Failure 400 {object} map[string]string
// @Router /reports/events [get]
func (h *Handler) GetEventSchedule(c *gin.Context) {
	req := ScheduleRequest{
		DateRange: c.DefaultQuery("date_range", DateRangeWeekly),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Format:    c.Query("format"),
	}

	if req.Format == "" {
		schedule, err := h.service.EventSchedule(c.Request.Context(), req)
		if err != nil {
			httpx.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, schedule)
		return
	}

	export, err := h.service.ExportEventSchedule(c.Request.Context(), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	h.logDownload(c, auditlog.ActionReportExported, map[string]interface{}{
		"report":     "event_schedule",
		"date_range": req.DateRange,
		"format":     req.Format,
	})
	sendFile(c, export)
}

func (h *Handler) logDownload(c *gin.Context, action string, details map[string]interface{}) {
	if h.auditSvc == nil {
		return
	}
	actor := auditlog.Actor{UserID: httpx.ActorID(c), IP: httpx.ClientIP(c)}
	if err := h.auditSvc.LogAction(c.Request.Context(), actor, nil, action, details, auditlog.StatusSuccess); err != nil {
		log.Error("audit log write failed", "action", action, "err", err)
	}
}

func sendFile(c *gin.Context, export *Export) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}
