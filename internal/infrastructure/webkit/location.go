package webkit

import (
	"context"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
)

// LocationHook receives the main frame's address after a load commits.
type LocationHook func(ctx context.Context, uri string)

// OnLocationCommitted calls hook once per committed main-frame load.
// load-changed is never emitted for subframes.
func (wv *WebView) OnLocationCommitted(ctx context.Context, hook LocationHook) {
	wv.inner.ConnectLoadChanged(func(event webkit.LoadEvent) {
		if wv.destroyed.Load() {
			return
		}
		uri, ok := committedLocation(event, wv.inner.URI())
		if !ok {
			return
		}
		wv.logger.Trace().Str("uri", uri).Msg("main frame committed")
		hook(ctx, uri)
	})
}

// committedLocation returns uri when event is the commit of a load.
// Started and redirected events carry provisional addresses.
func committedLocation(event webkit.LoadEvent, uri string) (string, bool) {
	if event != webkit.LoadCommitted || uri == "" {
		return "", false
	}
	return uri, true
}
