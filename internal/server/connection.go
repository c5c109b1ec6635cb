package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lox/pokerhands/poker"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	idleTimerTag = "idle"
)

// Connection is one WebSocket client
type Connection struct {
	id          string
	conn        *websocket.Conn
	send        chan *Message
	logger      *log.Logger
	clock       quartz.Clock
	idleTimeout time.Duration
	idle        *quartz.Timer
	ctx         context.Context
	cancel      context.CancelFunc
	closeOnce   sync.Once
}

// NewConnection wraps an upgraded socket
func NewConnection(conn *websocket.Conn, logger *log.Logger, clock quartz.Clock, idleTimeout time.Duration, maxMessageSize int64) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.NewString()

	conn.SetReadLimit(maxMessageSize)

	return &Connection{
		id:          id,
		conn:        conn,
		send:        make(chan *Message, 64),
		logger:      logger.WithPrefix("conn").With("id", id),
		clock:       clock,
		idleTimeout: idleTimeout,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// ID returns the connection's unique identifier
func (c *Connection) ID() string {
	return c.id
}

// Done is closed once the connection has shut down
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Start arms the idle timer, greets the client and begins pumping
func (c *Connection) Start() {
	c.idle = c.clock.AfterFunc(c.idleTimeout, c.closeIdle, idleTimerTag)

	if msg, err := NewMessage(MessageTypeConnected, "", ConnectedData{
		ConnectionID: c.id,
		IdleTimeout:  c.idleTimeout.String(),
	}); err == nil {
		_ = c.SendMessage(msg)
	}

	go c.writePump()
	go c.readPump()
}

func (c *Connection) closeIdle() {
	c.logger.Info("Closing idle connection", "timeout", c.idleTimeout)
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "idle timeout"),
		time.Now().Add(writeWait))
	_ = c.Close()
}

// Close shuts the connection down; safe to call more than once
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		if c.idle != nil {
			c.idle.Stop(idleTimerTag)
		}
		err = c.conn.Close()
	})
	return err
}

// SendMessage queues a message for the write pump
func (c *Connection) SendMessage(msg *Message) error {
	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return fmt.Errorf("connection %s: send buffer full", c.id)
	}
}

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}
		c.idle.Reset(c.idleTimeout, idleTimerTag)

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendError("", CodeInvalidMessage, "Message is not valid JSON")
			continue
		}
		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	defer func() { _ = c.conn.Close() }()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

func (c *Connection) handleMessage(msg *Message) {
	if msg.RequestID == "" {
		msg.RequestID = uuid.NewString()
	}
	c.logger.Debug("Received message", "type", msg.Type, "request", msg.RequestID)

	switch msg.Type {
	case MessageTypeCompare:
		var data CompareData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg.RequestID, CodeInvalidMessage, "Failed to parse compare data")
			return
		}
		c.handleCompare(msg.RequestID, data)

	default:
		c.sendError(msg.RequestID, CodeUnknownMessageType, "Unknown message type: "+msg.Type.String())
	}
}

func (c *Connection) handleCompare(requestID string, data CompareData) {
	h1, err := poker.ParseHand(data.Hand1...)
	if err != nil {
		c.sendError(requestID, CodeInvalidHand, "hand 1: "+err.Error())
		return
	}
	h2, err := poker.ParseHand(data.Hand2...)
	if err != nil {
		c.sendError(requestID, CodeInvalidHand, "hand 2: "+err.Error())
		return
	}

	res, err := poker.Evaluate(h1, h2)
	if err != nil {
		// Evaluate only fails on an evaluator bug.
		c.logger.Error("Evaluation failed", "hand1", h1, "hand2", h2, "error", err)
		c.sendError(requestID, CodeInvalidHand, err.Error())
		return
	}

	c.logger.Debug("Compared hands", "hand1", h1, "hand2", h2, "winner", res.Winner)
	response, err := NewMessage(MessageTypeResult, requestID, NewResultData(h1, h2, res))
	if err != nil {
		c.logger.Error("Failed to create result message", "error", err)
		return
	}
	_ = c.SendMessage(response)
}

func (c *Connection) sendError(requestID, code, message string) {
	errorMsg, err := NewMessage(MessageTypeError, requestID, ErrorData{
		Code:    code,
		Message: message,
	})
	if err != nil {
		c.logger.Error("Failed to create error message", "error", err)
		return
	}

	_ = c.SendMessage(errorMsg) // Ignore send errors during error handling
}
