package analytics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gymops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultTopN = 5

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/equipment/stats", h.Stats)
	rg.GET("/equipment/analytics/trends", h.Trends)
}

func (h *Handler) Stats(c *gin.Context) {
	topN := defaultTopN
	if raw := c.Query("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "top must be a positive integer")
			return
		}
		topN = n
	}

	overview, err := h.service.Overview(c.Request.Context(), time.Now().UTC(), topN)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, overview)
}

func (h *Handler) Trends(c *gin.Context) {
	bucketing := Bucketing{Kind: BucketByMonth}
	if kind := c.Query("bucket"); kind != "" {
		bucketing.Kind = BucketKind(kind)
	}
	if bucketing.Kind == BucketByWindow {
		days, err := strconv.Atoi(c.DefaultQuery("window_days", "30"))
		if err != nil || days < 1 {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "window_days must be a positive integer")
			return
		}
		bucketing.WindowDays = days
		bucketing.Anchor = time.Now().UTC().Truncate(24 * time.Hour)
		if raw := c.Query("anchor"); raw != "" {
			anchor, err := time.Parse("2006-01-02", raw)
			if err != nil {
				response.Error(c, http.StatusBadRequest, response.CodeValidation, "anchor must be YYYY-MM-DD")
				return
			}
			bucketing.Anchor = anchor
		}
	}

	points, err := h.service.Trends(c.Request.Context(), bucketing)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trends": points})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrValidation) {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to compute analytics")
}
