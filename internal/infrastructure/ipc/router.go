// Package ipc routes script messages posted by panel pages to Go handlers
// and builds the JavaScript that carries replies and events back.
package ipc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/bnema/twinview/internal/domain/entity"
	"github.com/bnema/twinview/internal/logging"
)

const (
	// HandlerName is the WebKit script message handler the page shims post to.
	HandlerName = "twinview"
	// ResolveCallback is the window function receiving command replies.
	ResolveCallback = "__twinview_resolve"
)

var (
	ErrEmptyMessage   = errors.New("ipc: empty message")
	ErrMissingType    = errors.New("ipc: message missing type")
	ErrUnknownType    = errors.New("ipc: no handler for message type")
	ErrSourceRejected = errors.New("ipc: message type not accepted from this panel")
)

// Message is the decoded JS -> Go envelope.
type Message struct {
	Type    string
	ID      string
	Payload json.RawMessage
}

type wireMessage struct {
	Type    string          `json:"type"`
	ID      json.RawMessage `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Reply is the Go -> JS answer to a command.
type Reply struct {
	ID     string `json:"id"`
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Handler handles a decoded message payload sent by a panel.
type Handler interface {
	Handle(ctx context.Context, source entity.PanelLabel, payload json.RawMessage) (any, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, source entity.PanelLabel, payload json.RawMessage) (any, error)

// Handle calls f(ctx, source, payload).
func (f HandlerFunc) Handle(ctx context.Context, source entity.PanelLabel, payload json.RawMessage) (any, error) {
	return f(ctx, source, payload)
}

type handlerEntry struct {
	handler Handler
	reply   bool
	sources map[entity.PanelLabel]bool
}

func (e handlerEntry) accepts(source entity.PanelLabel) bool {
	return len(e.sources) == 0 || e.sources[source]
}

// Router dispatches messages to handlers registered by type.
type Router struct {
	mu       sync.RWMutex
	handlers map[string]handlerEntry
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]handlerEntry)}
}

// Register adds a fire-and-forget handler. No reply script is produced.
// When sources is non-empty only those panels may send msgType.
func (r *Router) Register(msgType string, handler Handler, sources ...entity.PanelLabel) error {
	return r.register(msgType, handler, false, sources)
}

// RegisterCommand adds a handler whose result or error is sent back to the
// page through ResolveCallback, keyed by the message id.
func (r *Router) RegisterCommand(msgType string, handler Handler, sources ...entity.PanelLabel) error {
	return r.register(msgType, handler, true, sources)
}

func (r *Router) register(msgType string, handler Handler, reply bool, sources []entity.PanelLabel) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}

	entry := handlerEntry{handler: handler, reply: reply}
	if len(sources) > 0 {
		entry.sources = make(map[entity.PanelLabel]bool, len(sources))
		for _, s := range sources {
			entry.sources[s] = true
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[msgType]; exists {
		return fmt.Errorf("handler for %q already registered", msgType)
	}
	r.handlers[msgType] = entry
	return nil
}

// Types returns the number of registered message types.
func (r *Router) Types() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Dispatch decodes raw, runs the matching handler and returns the script to
// evaluate in the sending panel. The script is empty for fire-and-forget
// messages. Handler errors are turned into an error reply, not returned.
func (r *Router) Dispatch(ctx context.Context, source entity.PanelLabel, raw []byte) (string, error) {
	log := logging.FromContext(ctx).With().
		Str("component", "ipc-router").
		Str("panel", string(source)).
		Logger()

	msg, err := ParseMessage(raw)
	if err != nil {
		log.Warn().Err(err).Int("len", len(raw)).Msg("dropping malformed script message")
		return "", err
	}

	r.mu.RLock()
	entry, ok := r.handlers[msg.Type]
	r.mu.RUnlock()

	if !ok {
		log.Warn().Str("type", msg.Type).Msg("no handler registered for message type")
		if msg.ID != "" {
			return ReplyScript(Reply{ID: msg.ID, Error: fmt.Sprintf("unknown command: %s", msg.Type)})
		}
		return "", fmt.Errorf("%w: %s", ErrUnknownType, msg.Type)
	}
	if !entry.accepts(source) {
		log.Warn().Str("type", msg.Type).Msg("message type rejected for panel")
		return "", fmt.Errorf("%w: %s from %s", ErrSourceRejected, msg.Type, source)
	}

	log.Debug().
		Str("type", msg.Type).
		Str("id", msg.ID).
		Int("payload_len", len(msg.Payload)).
		Msg("received script message")

	result, herr := entry.handler.Handle(ctx, source, msg.Payload)
	if !entry.reply {
		if herr != nil {
			log.Error().Err(herr).Str("type", msg.Type).Msg("message handler returned error")
		}
		return "", nil
	}

	reply := Reply{ID: msg.ID, OK: herr == nil, Result: result}
	if herr != nil {
		log.Debug().Err(herr).Str("type", msg.Type).Msg("command failed")
		reply.Result = nil
		reply.Error = herr.Error()
	}
	return ReplyScript(reply)
}

// ParseMessage decodes the envelope. A numeric id is normalized to its
// decimal string form.
func ParseMessage(raw []byte) (Message, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Message{}, ErrEmptyMessage
	}

	var wire wireMessage
	if err := json.Unmarshal(raw, &wire); err != nil {
		return Message{}, fmt.Errorf("decode message: %w", err)
	}
	if wire.Type == "" {
		return Message{}, ErrMissingType
	}

	id, err := normalizeID(wire.ID)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: wire.Type, ID: id, Payload: wire.Payload}, nil
}

func normalizeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return "", fmt.Errorf("decode message id: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	return n.String(), nil
}

// DecodePayload unmarshals a handler payload, treating an absent payload as {}.
func DecodePayload(payload json.RawMessage, v any) error {
	if len(payload) == 0 || string(payload) == "null" {
		return nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
