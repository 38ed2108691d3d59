// Package webkit adapts WebKitGTK 6 webviews to the panel ports.
package webkit

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/rs/zerolog"

	"github.com/bnema/twinview/internal/application/port"
	"github.com/bnema/twinview/internal/domain/entity"
	"github.com/bnema/twinview/internal/infrastructure/ipc"
	"github.com/bnema/twinview/internal/logging"
)

// WebView wraps a WebKitGTK webview owned by one panel.
// All methods must be called on the GTK main loop.
type WebView struct {
	label     entity.PanelLabel
	inner     *webkit.WebView
	logger    zerolog.Logger
	destroyed atomic.Bool
}

var _ port.Panel = (*WebView)(nil)

// NewWebView creates the webview for the panel labelled label.
func NewWebView(ctx context.Context, label entity.PanelLabel) (*WebView, error) {
	inner := webkit.NewWebView()
	if inner == nil {
		return nil, fmt.Errorf("create webview for %s panel", label)
	}
	inner.SetHExpand(true)
	inner.SetVExpand(true)

	return &WebView{
		label:  label,
		inner:  inner,
		logger: logging.FromContext(ctx).With().Str("component", "webview").Str("panel", string(label)).Logger(),
	}, nil
}

// Label returns the panel label.
func (wv *WebView) Label() entity.PanelLabel {
	return wv.label
}

// Widget returns the underlying GTK widget.
func (wv *WebView) Widget() *webkit.WebView {
	return wv.inner
}

// LoadURI navigates to uri.
func (wv *WebView) LoadURI(ctx context.Context, uri string) error {
	if wv.destroyed.Load() {
		return fmt.Errorf("%s webview is destroyed", wv.label)
	}
	wv.inner.LoadURI(uri)
	logging.FromContext(ctx).Debug().Str("panel", string(wv.label)).Str("uri", uri).Msg("loading URI")
	return nil
}

// LoadHTML loads an HTML document with the given base URI.
func (wv *WebView) LoadHTML(ctx context.Context, content, baseURI string) error {
	if wv.destroyed.Load() {
		return fmt.Errorf("%s webview is destroyed", wv.label)
	}
	wv.inner.LoadHTML(content, baseURI)
	logging.FromContext(ctx).Debug().Str("panel", string(wv.label)).Int("bytes", len(content)).Msg("loading embedded page")
	return nil
}

// URI returns the current location.
func (wv *WebView) URI() string {
	if wv.destroyed.Load() {
		return ""
	}
	return wv.inner.URI()
}

// Emit dispatches a DOM CustomEvent named event with payload as detail.
func (wv *WebView) Emit(ctx context.Context, event string, payload any) error {
	if wv.destroyed.Load() {
		return fmt.Errorf("%s webview is destroyed", wv.label)
	}
	script, err := ipc.EventScript(event, payload)
	if err != nil {
		return err
	}
	wv.RunJavaScript(ctx, script)
	return nil
}

// RunJavaScript evaluates script in the main world. Failures are logged.
func (wv *WebView) RunJavaScript(ctx context.Context, script string) {
	if wv.destroyed.Load() {
		return
	}
	log := wv.logger

	wv.inner.EvaluateJavascript(ctx, script, -1, "", "", func(res gio.AsyncResulter) {
		if _, err := wv.inner.EvaluateJavascriptFinish(res); err != nil {
			log.Warn().Err(err).Msg("javascript evaluation failed")
		}
	})
}

// AddUserScript injects source into the top frame of every page at document start.
func (wv *WebView) AddUserScript(source string) {
	script := webkit.NewUserScript(
		source,
		webkit.UserContentInjectTopFrame,
		webkit.UserScriptInjectAtDocumentStart,
		nil,
		nil,
	)
	wv.inner.UserContentManager().AddScript(script)
}

// Destroy marks the webview unusable. GTK frees the widget with its window.
func (wv *WebView) Destroy() {
	if wv.destroyed.Swap(true) {
		return
	}
	wv.logger.Debug().Msg("webview destroyed")
}
