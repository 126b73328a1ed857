package migration

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

const (
	webSocketWriteTimeout = 3 * time.Second
	clientBufferSize      = 500
)

// LiveFeed pushes every conversion to the connected websocket clients.
type LiveFeed struct {
	clientsMu    sync.Mutex
	clients      map[uint64]*wsClient
	nextClientID uint64
	closed       bool

	upgrader websocket.Upgrader
	log      *zap.SugaredLogger
}

// a websocket client with a channel for downstream messages.
type wsClient struct {
	// downstream message channel.
	channel chan interface{}
	// a channel which is closed when the websocket client is disconnected.
	exit chan struct{}
}

// NewLiveFeed creates a LiveFeed without clients.
func NewLiveFeed(log *zap.SugaredLogger) *LiveFeed {
	return &LiveFeed{
		clients: make(map[uint64]*wsClient),
		upgrader: websocket.Upgrader{
			HandshakeTimeout:  webSocketWriteTimeout,
			CheckOrigin:       func(r *http.Request) bool { return true },
			EnableCompression: true,
		},
		log: log,
	}
}

// Broadcast sends msg to all connected clients. Slow clients miss the message.
func (f *LiveFeed) Broadcast(msg interface{}) {
	f.clientsMu.Lock()
	defer f.clientsMu.Unlock()

	for _, client := range f.clients {
		select {
		case client.channel <- msg:
		default:
			// potentially drop if slow consumer
		}
	}
}

// Clients returns the number of connected clients.
func (f *LiveFeed) Clients() int {
	f.clientsMu.Lock()
	defer f.clientsMu.Unlock()

	return len(f.clients)
}

// Close disconnects all clients and refuses new ones.
func (f *LiveFeed) Close() {
	f.clientsMu.Lock()
	defer f.clientsMu.Unlock()

	f.closed = true
	for clientID, client := range f.clients {
		close(client.exit)
		delete(f.clients, clientID)
	}
}

// registers and creates a new websocket client.
func (f *LiveFeed) registerClient() (uint64, *wsClient, bool) {
	f.clientsMu.Lock()
	defer f.clientsMu.Unlock()

	if f.closed {
		return 0, nil, false
	}

	clientID := f.nextClientID
	client := &wsClient{
		channel: make(chan interface{}, clientBufferSize),
		exit:    make(chan struct{}),
	}
	f.clients[clientID] = client
	f.nextClientID++

	return clientID, client, true
}

// removes the websocket client with the given id.
func (f *LiveFeed) removeClient(clientID uint64) {
	f.clientsMu.Lock()
	defer f.clientsMu.Unlock()

	if client, exists := f.clients[clientID]; exists {
		close(client.exit)
		delete(f.clients, clientID)
	}
}

// handles a new websocket connection, registers the client and waits for downstream messages to be sent to
// the client.
func (f *LiveFeed) handle(c echo.Context) error {
	ws, err := f.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		f.log.Debugw("Failed to upgrade websocket connection", "err", err)
		return nil
	}
	defer ws.Close()
	ws.EnableWriteCompression(true)

	clientID, client, ok := f.registerClient()
	if !ok {
		return nil
	}
	defer f.removeClient(clientID)

	// the feed is one way, reading only detects the disconnect
	disconnected := make(chan struct{})
	go func() {
		defer close(disconnected)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg := <-client.channel:
			if err := ws.SetWriteDeadline(time.Now().Add(webSocketWriteTimeout)); err != nil {
				return nil
			}
			if err := ws.WriteJSON(msg); err != nil {
				return nil
			}
		case <-client.exit:
			return nil
		case <-disconnected:
			return nil
		}
	}
}
