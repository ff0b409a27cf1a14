// Package livereload tells connected browsers to reload when content changes.
package livereload

import (
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/evaszabo/folio/internal/metrics"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message is the JSON frame sent to browsers.
type Message struct {
	Type string `json:"type"` // "hello" or "reload"
	ID   string `json:"id,omitempty"`
	Path string `json:"path,omitempty"`
}

type client struct {
	id   string
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) send(m Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(m)
}

// Hub tracks connected browsers.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*client
	metrics *metrics.Metrics
}

// NewHub creates an empty hub. m may be nil.
func NewHub(m *metrics.Metrics) *Hub {
	return &Hub{clients: make(map[string]*client), metrics: m}
}

// ServeHTTP upgrades the request and holds the connection until the
// browser goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload: websocket upgrade: %v", err)
		return
	}
	c := &client{id: uuid.NewString(), conn: conn}
	h.add(c)
	defer h.remove(c)

	if err := c.send(Message{Type: "hello", ID: c.id}); err != nil {
		log.Printf("livereload: websocket write: %v", err)
		return
	}

	// Browsers never send anything; reading surfaces the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("livereload: websocket read: %v", err)
			}
			return
		}
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	h.metrics.ClientConnected(1)
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c.id]
	delete(h.clients, c.id)
	h.mu.Unlock()
	if ok {
		c.conn.Close()
		h.metrics.ClientConnected(-1)
	}
}

// Clients returns the number of connected browsers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends a reload frame to every browser and returns how many
// received it.
func (h *Hub) Broadcast(path string) int {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	sent := 0
	for _, c := range clients {
		if err := c.send(Message{Type: "reload", ID: c.id, Path: path}); err != nil {
			log.Printf("livereload: dropping client %s: %v", c.id, err)
			h.remove(c)
			continue
		}
		sent++
	}
	return sent
}

// Close disconnects every browser.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()
	for _, c := range clients {
		h.remove(c)
	}
}
