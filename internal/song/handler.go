package song

import (
	"net/http"

	"github.com/bandhub/band-management-backend/internal/httpx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// CreateSong godoc
// @Summary Create a song
// @Tags songs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateSongRequest true "song"
// @Success 201 {object} Song
// @Failure 400 {object} map[string]string
// @Router /songs [post]
func (h *Handler) CreateSong(c *gin.Context) {
	var req CreateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	song, err := h.Service.CreateSong(c.Request.Context(), req, httpx.ActorID(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, song)
}

// ListSongs godoc
// @Summary List songs
// @Tags songs
// @Produce json
// @Param title query string false "title contains"
// @Param artist query string false "artist contains"
// @Param genre query string false "genre contains"
// @Param key query string false "key contains"
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(10)
// @Success 200 {object} PaginatedSongs
// @Router /songs [get]
func (h *Handler) ListSongs(c *gin.Context) {
	page, limit := httpx.Page(c, 10, 100)
	result, err := h.Service.ListSongs(c.Request.Context(), ListFilter{
		Title:  c.Query("title"),
		Artist: c.Query("artist"),
		Genre:  c.Query("genre"),
		Key:    c.Query("key"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSong godoc
// @Summary Get a song
// @Tags songs
// @Produce json
// @Param id path string true "song id"
// @Success 200 {object} Song
// @Failure 404 {object} map[string]string
// @Router /songs/{id} [get]
func (h *Handler) GetSong(c *gin.Context) {
	id, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	song, err := h.Service.GetSong(c.Request.Context(), id)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, song)
}

// UpdateSong godoc
// @Summary Update a song
// @Tags songs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "song id"
// @Param body body UpdateSongRequest true "fields to change"
// @Success 200 {object} Song
// @Router /songs/{id} [put]
func (h *Handler) UpdateSong(c *gin.Context) {
	id, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	var req UpdateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}
	song, err := h.Service.UpdateSong(c.Request.Context(), id, req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, song)
}

// DeleteSong godoc
// @Summary Delete a song
// @Tags songs
// @Security BearerAuth
// @Param id path string true "song id"
// @Success 204
// @Router /songs/{id} [delete]
func (h *Handler) DeleteSong(c *gin.Context) {
	id, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	if err := h.Service.DeleteSong(c.Request.Context(), id); err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
