package middleware

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"triageboard/internal/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Configure properly for production
	},
}

// Hub fans UI events out to every connected browser. Browsers are passive
// mirrors; the hub never reads meaningful input from them.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.RWMutex
	log        *utils.Logger
}

func NewHub(log *utils.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		log:        log,
	}
}

// Run owns the client set; call once in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			h.log.Write("WebSocket client connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()
			h.log.Write("WebSocket client disconnected")

		case message := <-h.broadcast:
			// Full lock: failed writes evict from the client map.
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					h.log.Writef("WebSocket write error: %v", err)
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues a raw message for every connected client.
func (h *Hub) Broadcast(message []byte) {
	if h == nil {
		return
	}
	h.broadcast <- message
}

// BroadcastJSON marshals v and broadcasts it. Marshal failures are logged
// and dropped; a UI push is never worth crashing a render path.
func (h *Hub) BroadcastJSON(v interface{}) {
	if h == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		h.log.Writef("WebSocket marshal error: %v", err)
		return
	}
	h.Broadcast(b)
}

// ClientCount returns the number of connected browsers.
func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleWebSocket upgrades the request and parks the connection until close.
func (h *Hub) HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.log.Writef("WebSocket upgrade error: %v", err)
			return
		}

		h.register <- conn
		defer func() { h.unregister <- conn }()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					h.log.Writef("WebSocket error: %v", err)
				}
				break
			}
		}
	}
}
