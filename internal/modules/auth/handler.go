package auth

import (
	"errors"
	"net/http"

	"gymops/internal/domain"
	"gymops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.POST("/auth/register", h.Register)
	public.POST("/auth/login", h.Login)
	admin.POST("/auth/staff", h.RegisterStaff)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

// RegisterStaff lets an admin create staff or admin accounts.
func (h *Handler) RegisterStaff(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	role := domain.RoleStaff
	if req.Role != "" {
		role = domain.UserRole(req.Role)
	}

	user, err := h.service.RegisterWithRole(c.Request.Context(), req, role)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user":         result.User,
		"access_token": result.AccessToken,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
	case errors.Is(err, ErrEmailTaken):
		response.Error(c, http.StatusConflict, response.CodeConflict, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid email or password")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Unexpected error")
	}
}
