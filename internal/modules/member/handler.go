package member

import (
	"errors"
	"net/http"

	"gymops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(authed, staff *gin.RouterGroup) {
	authed.POST("/members/onboard", h.Onboard)
	authed.GET("/members/me", h.Me)
	staff.GET("/members", h.List)
}

func (h *Handler) Onboard(c *gin.Context) {
	var req OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	m, err := h.service.Onboard(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"member": m})
}

func (h *Handler) Me(c *gin.Context) {
	m, err := h.service.GetByUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"member": m})
}

func (h *Handler) List(c *gin.Context) {
	members, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"members": members})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Member profile not found")
	case errors.Is(err, ErrAlreadyOnboarded):
		response.Error(c, http.StatusConflict, response.CodeConflict, "Member profile already exists")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Unexpected error")
	}
}
