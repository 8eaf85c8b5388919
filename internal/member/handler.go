package member

import (
	"net/http"
	"strconv"

	"github.com/bandhub/band-management-backend/internal/httpx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// CreateMember godoc
// @Summary Add a band member
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateMemberRequest true "member"
// @Success 201 {object} Member
// @Router /members [post]
func (h *Handler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}
	m, err := h.Service.CreateMember(c.Request.Context(), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ListMembers godoc
// @Summary List band members
// @Tags members
// @Produce json
// @Param name query string false "name contains"
// @Param role query string false "role contains"
// @Param instrument query string false "instrument contains"
// @Param active query bool false "active members only"
// @Success 200 {object} PaginatedMembers
// @Router /members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	page, limit := httpx.Page(c, 10, 100)
	f := ListFilter{
		Name:       c.Query("name"),
		RoleInBand: c.Query("role"),
		Instrument: c.Query("instrument"),
		Page:       page,
		Limit:      limit,
	}
	if raw := c.Query("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			f.Active = &active
		}
	}

	result, err := h.Service.ListMembers(c.Request.Context(), f)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetMember(c *gin.Context) {
	id, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	m, err := h.Service.GetMember(c.Request.Context(), id)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) UpdateMember(c *gin.Context) {
	id, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}
	m, err := h.Service.UpdateMember(c.Request.Context(), id, req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMember(c *gin.Context) {
	id, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	if err := h.Service.DeleteMember(c.Request.Context(), id); err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
