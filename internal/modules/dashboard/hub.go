package dashboard

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"gymops/internal/domain"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Configure in prod
}

// Event is a real-time inventory change pushed to connected dashboards.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

const (
	EventEquipmentCreated  = "equipment_created"
	EventEquipmentUpdated  = "equipment_updated"
	EventEquipmentDeleted  = "equipment_deleted"
	EventMaintenanceLogged = "maintenance_logged"
)

type connection struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
}

// Hub fans inventory events out to every connected staff dashboard.
type Hub struct {
	mu          sync.RWMutex
	connections map[int64]*connection
}

func NewHub() *Hub {
	return &Hub{connections: make(map[int64]*connection)}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.connections[c.userID]; ok {
		close(existing.send)
	}
	h.connections[c.userID] = c
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.connections[c.userID]; ok && existing == c {
		delete(h.connections, c.userID)
		close(c.send)
	}
}

// Broadcast sends an event to every connected dashboard. Slow clients are
// skipped rather than blocking the sender.
func (h *Hub) Broadcast(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.connections {
		select {
		case c.send <- data:
		default:
		}
	}
}

// EquipmentCreated implements the inventory event sink.
func (h *Hub) EquipmentCreated(rec *domain.EquipmentRecord) {
	h.Broadcast(&Event{Type: EventEquipmentCreated, Payload: rec})
}

func (h *Hub) EquipmentUpdated(rec *domain.EquipmentRecord) {
	h.Broadcast(&Event{Type: EventEquipmentUpdated, Payload: rec})
}

func (h *Hub) EquipmentDeleted(id string) {
	h.Broadcast(&Event{Type: EventEquipmentDeleted, Payload: map[string]string{"id": id}})
}

func (h *Hub) MaintenanceLogged(rec *domain.EquipmentRecord, entry *domain.MaintenanceLog) {
	h.Broadcast(&Event{Type: EventMaintenanceLogged, Payload: map[string]any{
		"equipment": rec,
		"log":       entry,
	}})
}

// ServeWS upgrades the request and pumps events until disconnect.
func (h *Hub) ServeWS(conn *websocket.Conn, userID int64) {
	c := &connection{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 256),
	}
	h.register(c)

	go h.writePump(c)
	h.readPump(c) // blocks until disconnect
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Dashboards only listen; inbound frames are drained for pings.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
