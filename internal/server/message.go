package server

import (
	"encoding/json"

	"github.com/lox/pokerhands/poker"
)

// MessageType identifies a WebSocket message
type MessageType string

const (
	// Client to server
	MessageTypeCompare MessageType = "compare"

	// Server to client
	MessageTypeConnected MessageType = "connected"
	MessageTypeResult    MessageType = "result"
	MessageTypeError     MessageType = "error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}

// Error codes sent in ErrorData
const (
	CodeInvalidMessage     = "invalid_message"
	CodeInvalidHand        = "invalid_hand"
	CodeUnknownMessageType = "unknown_message_type"
)

// Message is the envelope for every frame in both directions
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage encodes data into an envelope
func NewMessage(messageType MessageType, requestID string, data any) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		RequestID: requestID,
	}, nil
}

// CompareData asks for two five card hands to be ranked
type CompareData struct {
	Hand1 []string `json:"hand1"`
	Hand2 []string `json:"hand2"`
}

// ConnectedData greets a new connection
type ConnectedData struct {
	ConnectionID string `json:"connectionId"`
	IdleTimeout  string `json:"idleTimeout"`
}

// HandResult describes one side of a comparison
type HandResult struct {
	Cards     string   `json:"cards"`
	Category  string   `json:"category"`
	Matched   string   `json:"matched"`
	Signature []string `json:"signature"`
}

// ResultData is the reply to a compare request
type ResultData struct {
	Winner  int        `json:"winner"`
	Outcome string     `json:"outcome"`
	Hand1   HandResult `json:"hand1"`
	Hand2   HandResult `json:"hand2"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Outcome names the winner of a comparison.
func Outcome(winner int) string {
	switch {
	case winner > 0:
		return "hand1"
	case winner < 0:
		return "hand2"
	default:
		return "tie"
	}
}

// NewResultData converts an evaluation into its wire form.
func NewResultData(h1, h2 poker.Hand, res poker.Result) ResultData {
	return ResultData{
		Winner:  res.Winner,
		Outcome: Outcome(res.Winner),
		Hand1:   newHandResult(h1, res.Hand1),
		Hand2:   newHandResult(h2, res.Hand2),
	}
}

func newHandResult(h poker.Hand, a poker.Analysis) HandResult {
	sig := make([]string, len(a.Signature))
	for i, r := range a.Signature {
		sig[i] = r.String()
	}
	return HandResult{
		Cards:     h.String(),
		Category:  a.Category.String(),
		Matched:   poker.FormatCards(a.Cards),
		Signature: sig,
	}
}
