package webkit

import (
	"context"
	"fmt"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"

	"github.com/bnema/twinview/internal/infrastructure/ipc"
)

// EnableMessages routes window.webkit.messageHandlers.twinview posts from
// this webview through router and evaluates any reply script it returns.
// The signal is connected before the handler is registered.
func (wv *WebView) EnableMessages(ctx context.Context, router *ipc.Router) error {
	ucm := wv.inner.UserContentManager()
	if ucm == nil {
		return fmt.Errorf("%s webview has no user content manager", wv.label)
	}

	ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
		if wv.destroyed.Load() || value == nil {
			return
		}
		raw := value.ToJSON(0)
		script, err := router.Dispatch(ctx, wv.label, []byte(raw))
		if err != nil {
			return
		}
		if script != "" {
			wv.RunJavaScript(ctx, script)
		}
	})

	if !ucm.RegisterScriptMessageHandler(ipc.HandlerName, "") {
		return fmt.Errorf("failed to register script message handler %q for %s panel", ipc.HandlerName, wv.label)
	}

	wv.logger.Debug().Str("handler", ipc.HandlerName).Msg("script message handler connected")
	return nil
}
