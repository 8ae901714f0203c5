package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/spider/spider"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var ErrConnectionClosed = websocket.ErrCloseSent

// Connection represents a WebSocket connection to a client. Solitaire is
// single-player, so each connection owns its own game; all game access
// happens on the readPump goroutine, which serializes moves per the
// core's exclusive-access contract.
type Connection struct {
	conn      *websocket.Conn
	send      chan *Message
	game      *spider.Game
	newGame   func(seed *int64) *spider.Game
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a new connection wrapper with a freshly dealt game
func NewConnection(conn *websocket.Conn, logger *log.Logger, newGame func(seed *int64) *spider.Game) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:    conn,
		send:    make(chan *Message, 256),
		game:    newGame(nil),
		newGame: newGame,
		logger:  logger.WithPrefix("conn"),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// SendMessage sends a message to the client
func (c *Connection) SendMessage(msg *Message) error {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed during shutdown
			c.logger.Debug("Attempted to send message on closed connection", "error", r)
		}
	}()

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var msg Message
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			break
		}

		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage dispatches a client request against this connection's game
func (c *Connection) handleMessage(msg *Message) {
	switch msg.Type {
	case MessageTypeNewGame:
		var data NewGameData
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &data); err != nil {
				c.sendError("invalid new_game payload")
				return
			}
		}
		c.game = c.newGame(data.Seed)
		c.sendState(0)

	case MessageTypeMove:
		var data MoveData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid move payload")
			return
		}
		c.applyMove(data)

	case MessageTypeGetState:
		c.sendState(0)

	default:
		c.sendError("unknown message type: " + msg.Type.String())
	}
}

// applyMove runs the move/resolve/win pipeline for one request
func (c *Connection) applyMove(data MoveData) {
	err := c.game.Move(spider.CardID(data.Card), data.Target)
	switch {
	case errors.Is(err, spider.ErrIllegalMove):
		c.sendError("illegal move")
		return
	case err != nil:
		c.sendError(err.Error())
		return
	}

	resolved := c.game.Resolve()
	c.sendState(resolved)

	if c.game.Won() {
		won, err := NewMessage(MessageTypeWon, WonData{Message: "all sequences complete"})
		if err == nil {
			_ = c.SendMessage(won)
		}
	}
}

func (c *Connection) sendState(resolved int) {
	tableau, stock, err := spider.Encode(c.game)
	if err != nil {
		c.logger.Error("Failed to encode game state", "error", err)
		c.sendError("internal error encoding state")
		return
	}

	msg, err := NewMessage(MessageTypeState, StateData{
		Tableau:  tableau,
		Stock:    stock,
		Resolved: resolved,
		Won:      c.game.Won(),
	})
	if err != nil {
		c.logger.Error("Failed to build state message", "error", err)
		return
	}
	_ = c.SendMessage(msg)
}

func (c *Connection) sendError(text string) {
	msg, err := NewMessage(MessageTypeError, ErrorData{Message: text})
	if err != nil {
		return
	}
	_ = c.SendMessage(msg)
}
