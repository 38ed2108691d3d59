// Package handler binds panel script messages to the application use cases.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/twinview/internal/application/usecase"
	"github.com/bnema/twinview/internal/domain/entity"
	"github.com/bnema/twinview/internal/infrastructure/ipc"
	"github.com/bnema/twinview/internal/logging"
)

// Message types understood by the router.
const (
	TypeGreet      = "greet"
	TypeNavigate   = "navigate_webviews"
	TypeContentURL = "content_url"
	TypeURLChanged = usecase.URLChangedEvent
)

// GreetHandler answers the greet command.
type GreetHandler struct {
	greet *usecase.GreetUseCase
}

// NewGreetHandler creates a greet handler.
func NewGreetHandler(greet *usecase.GreetUseCase) *GreetHandler {
	return &GreetHandler{greet: greet}
}

// Handle decodes {name} and returns the greeting.
func (h *GreetHandler) Handle(ctx context.Context, _ entity.PanelLabel, payload json.RawMessage) (any, error) {
	var in usecase.GreetInput
	if err := ipc.DecodePayload(payload, &in); err != nil {
		return nil, fmt.Errorf("decode greet payload: %w", err)
	}
	return h.greet.Execute(ctx, in), nil
}

// NavigateHandler answers navigate_webviews.
type NavigateHandler struct {
	navigate *usecase.NavigateWebviewsUseCase
}

// NewNavigateHandler creates a navigation handler.
func NewNavigateHandler(navigate *usecase.NavigateWebviewsUseCase) *NavigateHandler {
	return &NavigateHandler{navigate: navigate}
}

// Handle decodes {url} and loads it in the content panel. The url is
// passed through untouched; the control page normalizes user input.
func (h *NavigateHandler) Handle(ctx context.Context, source entity.PanelLabel, payload json.RawMessage) (any, error) {
	var in usecase.NavigateWebviewsInput
	if err := ipc.DecodePayload(payload, &in); err != nil {
		// A non-string url is as malformed as a bad string.
		return nil, entity.ErrInvalidURL
	}

	ctx = logging.WithPanel(ctx, source)
	if err := h.navigate.Execute(ctx, in); err != nil {
		return nil, err
	}
	return nil, nil
}

// ContentURLHandler answers content_url with the content panel's address.
type ContentURLHandler struct {
	navigate *usecase.NavigateWebviewsUseCase
}

// NewContentURLHandler creates a content_url handler.
func NewContentURLHandler(navigate *usecase.NavigateWebviewsUseCase) *ContentURLHandler {
	return &ContentURLHandler{navigate: navigate}
}

// Handle ignores its payload.
func (h *ContentURLHandler) Handle(_ context.Context, _ entity.PanelLabel, _ json.RawMessage) (any, error) {
	return h.navigate.CurrentURL()
}

// URLChangedHandler feeds location reports from the content page's
// watcher script into the change notifier.
type URLChangedHandler struct {
	notifier *usecase.NotifyURLChangeUseCase
}

// NewURLChangedHandler creates a url-changed handler.
func NewURLChangedHandler(notifier *usecase.NotifyURLChangeUseCase) *URLChangedHandler {
	return &URLChangedHandler{notifier: notifier}
}

// Handle decodes {url} and reports it.
func (h *URLChangedHandler) Handle(ctx context.Context, _ entity.PanelLabel, payload json.RawMessage) (any, error) {
	var in usecase.URLChangedPayload
	if err := ipc.DecodePayload(payload, &in); err != nil {
		return nil, fmt.Errorf("decode url-changed payload: %w", err)
	}
	h.notifier.Observe(ctx, strings.TrimSpace(in.URL))
	return nil, nil
}

// Commands groups the use cases reachable from panel pages.
type Commands struct {
	Greet    *usecase.GreetUseCase
	Navigate *usecase.NavigateWebviewsUseCase
	Notifier *usecase.NotifyURLChangeUseCase
}

// Register installs the handlers on router. Commands are only accepted
// from the control panel. url-changed is only installed in poll mode, where
// the content panel's watcher script sends it.
func Register(router *ipc.Router, c Commands) error {
	if router == nil {
		return fmt.Errorf("router is required")
	}
	if c.Greet == nil || c.Navigate == nil || c.Notifier == nil {
		return fmt.Errorf("greet, navigate and notifier use cases are required")
	}

	commands := []struct {
		msgType string
		handler ipc.Handler
	}{
		{TypeGreet, NewGreetHandler(c.Greet)},
		{TypeNavigate, NewNavigateHandler(c.Navigate)},
		{TypeContentURL, NewContentURLHandler(c.Navigate)},
	}
	for _, cmd := range commands {
		if err := router.RegisterCommand(cmd.msgType, cmd.handler, entity.PanelControl); err != nil {
			return fmt.Errorf("register %s: %w", cmd.msgType, err)
		}
	}

	if c.Notifier.Mode() != entity.NotifierPoll {
		return nil
	}
	if err := router.Register(TypeURLChanged, NewURLChangedHandler(c.Notifier), entity.PanelContent); err != nil {
		return fmt.Errorf("register %s: %w", TypeURLChanged, err)
	}
	return nil
}
