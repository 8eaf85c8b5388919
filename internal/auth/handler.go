package auth

import (
	"net/http"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/bandhub/band-management-backend/internal/httpx"
	"github.com/gin-gonic/gin"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// ===============================
// Registration
// ===============================

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100" example:"frontman"`
	Email    string `json:"email" binding:"required,email" example:"frontman@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	Role     Role   `json:"role" example:"lector"`
}

// Register godoc
// @Summary Register a user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "account"
// @Success 201 {object} User
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// self-registration never grants admin
	if req.Role == RoleAdmin {
		httpx.RespondError(c, apperror.Forbidden("admin registration is not allowed"))
		return
	}

	user, err := h.service.Register(c.Request.Context(), RegisterInput(req))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// ===============================
// Login
// ===============================

type loginReq struct {
	Login    string `json:"login" binding:"required" example:"frontman@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// Login godoc
// @Summary Exchange credentials for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginReq true "credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, user, err := h.service.Login(c.Request.Context(), LoginInput(req))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": token,
		"user":        user,
	})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} User
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	actor := httpx.ActorID(c)
	if actor == nil {
		httpx.RespondError(c, apperror.Unauthorized("not authenticated"))
		return
	}
	user, err := h.service.GetUserByID(c.Request.Context(), *actor)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ===============================
// User administration
// ===============================

func (h *Handler) ListUsers(c *gin.Context) {
	page, limit := httpx.Page(c, 10, 100)
	result, err := h.service.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	user, err := h.service.GetUserByID(c.Request.Context(), id)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateRoleReq struct {
	Role Role `json:"role" binding:"required" example:"editor"`
}

func (h *Handler) UpdateRole(c *gin.Context) {
	id, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	var req updateRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.service.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
