// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

//go:generate mockgen -source=panel.go -destination=mocks/mock_panel.go -package=mocks

import (
	"context"

	"github.com/bnema/twinview/internal/domain/entity"
)

// Panel is one window+webview pair owned by the window manager.
// All methods must be called on the UI main loop.
type Panel interface {
	// Label returns the panel's fixed label ("left" or "right").
	Label() entity.PanelLabel

	// LoadURI navigates the panel's webview to uri.
	LoadURI(ctx context.Context, uri string) error

	// URI returns the webview's current location.
	URI() string

	// Emit dispatches a named DOM event carrying payload inside the panel.
	Emit(ctx context.Context, event string, payload any) error
}

// PanelLocator resolves panels by label.
// It replaces a process-wide window registry: callers get it injected.
type PanelLocator interface {
	Lookup(label entity.PanelLabel) (Panel, bool)
}

// URLChangePublisher sends content-panel location changes over the event bridge.
type URLChangePublisher interface {
	Publish(ctx context.Context, change entity.URLChange)
}

// NavigationObserver receives location changes detected in the content panel.
// Observe returns true when the change was forwarded, false when suppressed.
type NavigationObserver interface {
	Observe(ctx context.Context, url string) bool
}
