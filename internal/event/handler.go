package event

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/bandhub/band-management-backend/internal/auditlog"
	"github.com/bandhub/band-management-backend/internal/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateOnly = "2006-01-02"

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// Requests
// ===========================

// CreateEventRequest is the body of POST /events. Date accepts RFC 3339 or YYYY-MM-DD.
type CreateEventRequest struct {
	Title           string        `json:"title" binding:"required,max=255" example:"Summer Jam"`
	Date            string        `json:"date" binding:"required" example:"2026-07-04T20:00:00Z"`
	VenueName       *string       `json:"venue_name" binding:"omitempty,max=255" example:"The Roxy"`
	VenueAddress    *string       `json:"venue_address"`
	Description     *string       `json:"description"`
	IsPublic        *bool         `json:"is_public"`
	CreatedByUserID *uuid.UUID    `json:"created_by_user_id"`
	SetlistEntries  []SetlistItem `json:"setlist_entries"`
}

// UpdateEventRequest is the body of PUT /events/:id. Omitted fields are left
// unchanged; setlist_entries, when present, replaces the whole setlist.
type UpdateEventRequest struct {
	Title          *string        `json:"title" binding:"omitempty,max=255"`
	Date           *string        `json:"date"`
	VenueName      *string        `json:"venue_name" binding:"omitempty,max=255"`
	VenueAddress   *string        `json:"venue_address"`
	Description    *string        `json:"description"`
	IsPublic       *bool          `json:"is_public"`
	SetlistEntries *[]SetlistItem `json:"setlist_entries"`
}

type AddSongRequest struct {
	SongID uuid.UUID `json:"song_id" binding:"required"`
	Order  *int      `json:"order_in_setlist"`
	Notes  *string   `json:"notes"`
}

type UpdateEntryRequest struct {
	Order *int    `json:"order_in_setlist"`
	Notes *string `json:"notes"`
}

func actorFrom(c *gin.Context) auditlog.Actor {
	return auditlog.Actor{UserID: httpx.ActorID(c), IP: httpx.ClientIP(c)}
}

// parseDate accepts RFC 3339 timestamps and plain dates. endOfDay moves a
// plain date to its last instant so an inclusive upper bound covers it.
func parseDate(raw, field string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		return time.Time{}, apperror.InvalidInput("invalid %s, use RFC 3339 or YYYY-MM-DD", field)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// ===========================
// 🎯 Create Event - POST /events
// @Summary Create an event with an optional setlist
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEventRequest true "event"
// @Success 201 {object} Event
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	date, err := parseDate(req.Date, "date", false)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	event, err := h.Service.CreateEvent(c.Request.Context(), CreateEventInput{
		Title:           req.Title,
		Date:            date,
		VenueName:       req.VenueName,
		VenueAddress:    req.VenueAddress,
		Description:     req.Description,
		IsPublic:        req.IsPublic,
		CreatedByUserID: req.CreatedByUserID,
		Setlist:         req.SetlistEntries,
	}, actorFrom(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// ===========================
// 📋 List Events - GET /events
// @Summary List events
// @Tags events
// @Produce json
// @Param title query string false "title contains"
// @Param venue query string false "venue name contains"
// @Param is_public query bool false "visibility"
// @Param date_from query string false "inclusive lower bound"
// @Param date_to query string false "inclusive upper bound"
// @Param include_setlist query bool false "embed sorted setlists"
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(10)
// @Success 200 {object} PaginatedEvents
// @Router /events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	f := ListFilter{
		Title: c.Query("title"),
		Venue: c.Query("venue"),
	}
	f.Page, f.Limit = httpx.Page(c, defaultPageSize, maxPageSize)

	if raw := c.Query("is_public"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httpx.RespondError(c, apperror.InvalidInput("is_public must be true or false"))
			return
		}
		f.IsPublic = &v
	}
	if raw := c.Query("date_from"); raw != "" {
		from, err := parseDate(raw, "date_from", false)
		if err != nil {
			httpx.RespondError(c, err)
			return
		}
		f.DateFrom = &from
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := parseDate(raw, "date_to", true)
		if err != nil {
			httpx.RespondError(c, err)
			return
		}
		f.DateTo = &to
	}
	f.IncludeSetlist, _ = strconv.ParseBool(c.Query("include_setlist"))

	result, err := h.Service.ListEvents(c.Request.Context(), f)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ===========================
// 🔍 Get Event - GET /events/:id
// @Summary Get an event with its sorted setlist
// @Tags events
// @Produce json
// @Param id path string true "event id"
// @Param include_setlist query bool false "embed the setlist" default(true)
// @Success 200 {object} Event
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *Handler) GetEventByID(c *gin.Context) {
	id, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	include := true
	if raw := c.Query("include_setlist"); raw != "" {
		include, _ = strconv.ParseBool(raw)
	}

	event, err := h.Service.GetEventByID(c.Request.Context(), id, include)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// ===========================
// 🛠 Update Event - PUT /events/:id
// @Summary Update an event, optionally replacing its setlist
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "event id"
// @Param body body UpdateEventRequest true "changes"
// @Success 200 {object} Event
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /events/{id} [put]
func (h *Handler) UpdateEvent(c *gin.Context) {
	id, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	patch := EventPatch{
		Title:        req.Title,
		VenueName:    req.VenueName,
		VenueAddress: req.VenueAddress,
		Description:  req.Description,
		IsPublic:     req.IsPublic,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date, "date", false)
		if err != nil {
			httpx.RespondError(c, err)
			return
		}
		patch.Date = &date
	}

	event, err := h.Service.UpdateEvent(c.Request.Context(), id, patch, req.SetlistEntries, actorFrom(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// ===========================
// ❌ Delete Event - DELETE /events/:id
// @Summary Delete an event and its setlist
// @Tags events
// @Security BearerAuth
// @Param id path string true "event id"
// @Success 204 "no content"
// @Failure 404 {object} map[string]string
// @Router /events/{id} [delete]
func (h *Handler) DeleteEvent(c *gin.Context) {
	id, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	if err := h.Service.DeleteEvent(c.Request.Context(), id, actorFrom(c)); err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ===========================
// 📜 Setlist - GET /events/:id/setlist
// @Summary Get an event's setlist, lowest position first
// @Tags setlist
// @Produce json
// @Param id path string true "event id"
// @Success 200 {array} SetlistEntry
// @Failure 404 {object} map[string]string
// @Router /events/{id}/setlist [get]
func (h *Handler) GetEventSetlist(c *gin.Context) {
	id, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	entries, err := h.Service.GetEventSetlist(c.Request.Context(), id)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ===========================
// ➕ Add Song - POST /events/:id/setlist
// @Summary Add a song to an event's setlist
// @Tags setlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "event id"
// @Param body body AddSongRequest true "entry"
// @Success 201 {object} SetlistEntry
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /events/{id}/setlist [post]
func (h *Handler) AddSongToSetlist(c *gin.Context) {
	id, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	var req AddSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	entry, err := h.Service.AddSongToSetlist(c.Request.Context(), id, AddEntryInput{
		SongID: req.SongID,
		Order:  req.Order,
		Notes:  req.Notes,
	}, actorFrom(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ===========================
// 🔀 Update Entry - PUT /events/:id/setlist/songs/:songId
// @Summary Move a setlist entry or change its notes
// @Tags setlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "event id"
// @Param songId path string true "song id"
// @Param body body UpdateEntryRequest true "changes"
// @Success 200 {object} SetlistEntry
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /events/{id}/setlist/songs/{songId} [put]
func (h *Handler) UpdateSetlistEntry(c *gin.Context) {
	eventID, songID, ok := entryParams(c)
	if !ok {
		return
	}

	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	entry, err := h.Service.UpdateSetlistEntry(c.Request.Context(), eventID, songID, UpdateEntryInput{
		Order: req.Order,
		Notes: req.Notes,
	}, actorFrom(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ===========================
// ➖ Remove Song - DELETE /events/:id/setlist/songs/:songId
// @Summary Remove a song from an event's setlist
// @Tags setlist
// @Security BearerAuth
// @Param id path string true "event id"
// @Param songId path string true "song id"
// @Success 204 "no content"
// @Failure 404 {object} map[string]string
// @Router /events/{id}/setlist/songs/{songId} [delete]
func (h *Handler) RemoveSongFromSetlist(c *gin.Context) {
	eventID, songID, ok := entryParams(c)
	if !ok {
		return
	}
	if err := h.Service.RemoveSongFromSetlist(c.Request.Context(), eventID, songID, actorFrom(c)); err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func entryParams(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	eventID, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return uuid.Nil, uuid.Nil, false
	}
	songID, err := httpx.UUIDParam(c, "songId")
	if err != nil {
		httpx.RespondError(c, err)
		return uuid.Nil, uuid.Nil, false
	}
	return eventID, songID, true
}
