package realtime

import (
	"sync"

	"go.uber.org/zap"

	"fair-api/internal/metrics"
)

const clientSendBuffer = 16

// Hub fans out encoded frames to every connected WebSocket client.
// Run owns the client set; other goroutines talk to it through channels.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	stopped    chan struct{}
	closeOnce  sync.Once

	countMu sync.RWMutex
	count   int

	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewHub creates a hub. Call Run in its own goroutine before serving clients.
func NewHub(m *metrics.Metrics, logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
		metrics:    m,
		logger:     logger,
	}
}

// Run processes registrations and broadcasts until Close is called
func (h *Hub) Run() {
	defer close(h.stopped)
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.setCount()
			h.logger.Debug("WebSocket client registered", zap.Int("clients", len(h.clients)))

		case client := <-h.unregister:
			h.remove(client)

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// slow consumer
					h.logger.Warn("Dropping slow WebSocket client")
					h.remove(client)
				}
			}

		case <-h.done:
			for client := range h.clients {
				h.remove(client)
			}
			return
		}
	}
}

func (h *Hub) remove(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.setCount()
}

func (h *Hub) setCount() {
	h.countMu.Lock()
	h.count = len(h.clients)
	h.countMu.Unlock()
	h.metrics.SetWebSocketClients(len(h.clients))
}

// ClientCount returns the number of registered clients
func (h *Hub) ClientCount() int {
	h.countMu.RLock()
	defer h.countMu.RUnlock()
	return h.count
}

// Broadcast queues a frame for every client. It reports false once the hub is closed.
func (h *Hub) Broadcast(frame []byte) bool {
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.broadcast <- frame:
		return true
	case <-h.done:
		return false
	}
}

// Close stops Run and closes every client's send channel
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
	<-h.stopped
}

func (h *Hub) add(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) drop(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}
