// Package window creates the GTK windows hosting the panels.
package window

import (
	"context"
	"errors"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/twinview/internal/domain/entity"
	"github.com/bnema/twinview/internal/infrastructure/webkit"
	"github.com/bnema/twinview/internal/logging"
)

// ErrWindowCreationFailed is returned when GTK cannot create a window.
var ErrWindowCreationFailed = errors.New("failed to create window")

// PanelWindow is a top-level window holding a single panel webview.
type PanelWindow struct {
	spec    entity.PanelSpec
	window  *gtk.ApplicationWindow
	webview *webkit.WebView
	logger  zerolog.Logger
}

// New creates the window described by spec and places webview in it.
// GTK4 has no window placement API; the position is only logged.
func New(ctx context.Context, app *gtk.Application, spec entity.PanelSpec, webview *webkit.WebView) (*PanelWindow, error) {
	if webview == nil {
		return nil, errors.New("webview is required")
	}

	win := gtk.NewApplicationWindow(app)
	if win == nil {
		return nil, ErrWindowCreationFailed
	}
	win.SetTitle(spec.Title)
	win.SetDefaultSize(spec.Bounds.W, spec.Bounds.H)
	win.SetChild(webview.Widget())

	pw := &PanelWindow{
		spec:    spec,
		window:  win,
		webview: webview,
		logger: logging.FromContext(ctx).With().
			Str("component", "panel-window").
			Str("panel", string(spec.Label)).
			Logger(),
	}

	pw.logger.Debug().
		Int("width", spec.Bounds.W).
		Int("height", spec.Bounds.H).
		Int("x_hint", spec.Bounds.X).
		Int("y_hint", spec.Bounds.Y).
		Msg("window created; position left to the compositor")

	return pw, nil
}

// Label returns the panel label.
func (pw *PanelWindow) Label() entity.PanelLabel {
	return pw.spec.Label
}

// WebView returns the hosted webview.
func (pw *PanelWindow) WebView() *webkit.WebView {
	return pw.webview
}

// OnClose runs fn when the user closes the window. The window still closes.
func (pw *PanelWindow) OnClose(fn func()) {
	pw.window.ConnectCloseRequest(func() bool {
		pw.logger.Info().Msg("window closed")
		pw.webview.Destroy()
		if fn != nil {
			fn()
		}
		return false
	})
}

// Show presents the window.
func (pw *PanelWindow) Show() {
	pw.window.Present()
}
