package websocket

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// Server - pushes every rendered view to the connected screens.
// It is the usecase.Renderer of the application.
type Server struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	clients  map[string]*client
	lastView *usecase.View
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan usecase.View
}

func New(logger *slog.Logger) *Server {
	return &Server{
		logger: logger.With("component", "websocket"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		clients: make(map[string]*client),
	}
}

// Render - queues view for every client. A client that cannot keep up is disconnected.
func (that *Server) Render(_ context.Context, view usecase.View) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.lastView = &view

	for id, c := range that.clients {
		select {
		case c.send <- view:
		default:
			that.logger.Warn("client too slow, disconnecting", "clientID", id)
			that.unregisterLocked(id)
		}
	}
}

// ServeHTTP - upgrades the connection and sends the latest view right away.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan usecase.View, sendBuffer),
	}

	that.register(c)
	log.Info("WebSocket connection established", "clientID", c.id)

	go that.writePump(c)
	that.readPump(c)
}

// Clients - number of connected screens.
func (that *Server) Clients() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.clients)
}

func (that *Server) register(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[c.id] = c
	if that.lastView != nil {
		c.send <- *that.lastView
	}
}

func (that *Server) unregister(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.unregisterLocked(id)
}

func (that *Server) unregisterLocked(id string) {
	c, ok := that.clients[id]
	if !ok {
		return
	}

	delete(that.clients, id)
	close(c.send)
}

// readPump - the screens only listen; incoming messages are read to handle pongs and close frames.
func (that *Server) readPump(c *client) {
	defer func() {
		that.unregister(c.id)
		c.conn.Close()
		that.logger.Info("WebSocket connection closed", "clientID", c.id)
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				that.logger.Warn("client connection error", "clientID", c.id, "error", err)
			}
			return
		}
	}
}

func (that *Server) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case view, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(view); err != nil {
				that.logger.Error("error writing message to client", "clientID", c.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
