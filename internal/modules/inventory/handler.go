package inventory

import (
	"errors"
	"net/http"
	"time"

	"gymops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the equipment CRUD surface. Reads are open to any
// authenticated user; staff mutates.
func (h *Handler) RegisterRoutes(read, staff *gin.RouterGroup) {
	read.GET("/equipment", h.List)
	read.GET("/equipment/:id", h.Get)
	read.GET("/equipment/:id/maintenance", h.ListMaintenance)

	staff.POST("/equipment", h.Create)
	staff.PATCH("/equipment/:id", h.Update)
	staff.DELETE("/equipment/:id", h.Delete)
	staff.POST("/equipment/:id/maintenance", h.LogMaintenance)
	staff.POST("/equipment/maintenance/sweep", h.Sweep)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	rec, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"equipment": rec})
}

func (h *Handler) Get(c *gin.Context) {
	rec, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": rec})
}

func (h *Handler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": records})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	rec, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": rec})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) LogMaintenance(c *gin.Context) {
	var req LogMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	rec, entry, err := h.service.LogMaintenance(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"equipment": rec, "log": entry})
}

func (h *Handler) ListMaintenance(c *gin.Context) {
	logs, err := h.service.ListMaintenance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"logs": logs})
}

func (h *Handler) Sweep(c *gin.Context) {
	var req SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}
	asOf := time.Now().UTC()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	flagged, err := h.service.MarkOverdue(c.Request.Context(), asOf)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, SweepResult{Flagged: flagged})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var qty *QuantityStateError
	var tr *TransitionError
	switch {
	case errors.As(err, &qty):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeQuantityState,
			err.Error(), gin.H{"quantity": qty.Quantity, "available": qty.Available, "in_use": qty.InUse})
	case errors.As(err, &tr):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeTransition,
			err.Error(), gin.H{"from": tr.From, "to": tr.To})
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Equipment not found")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, response.CodeConflict, "Equipment was modified concurrently, reload and retry")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Unexpected error")
	}
}
