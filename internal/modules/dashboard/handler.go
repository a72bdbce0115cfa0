package dashboard

import (
	"net/http"

	"gymops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(staff *gin.RouterGroup) {
	staff.GET("/ws/dashboard", h.Connect)
}

func (h *Handler) Connect(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Authentication required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}
	h.hub.ServeWS(conn, userID)
}
