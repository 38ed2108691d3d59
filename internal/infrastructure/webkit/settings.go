package webkit

import (
	"github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
)

// Settings are the per-webview options exposed in the config file.
type Settings struct {
	EnableJavaScript     bool
	DeveloperExtras      bool
	HardwareAcceleration bool
	UserAgent            string // empty means the WebKit default
}

// ApplySettings updates the live webview. Safe to call repeatedly.
func (wv *WebView) ApplySettings(s Settings) {
	if wv.destroyed.Load() {
		return
	}
	ws := wv.inner.Settings()
	if ws == nil {
		return
	}
	applySettings(ws, s)

	wv.logger.Debug().
		Bool("javascript", s.EnableJavaScript).
		Bool("developer_extras", s.DeveloperExtras).
		Bool("hardware_acceleration", s.HardwareAcceleration).
		Bool("custom_user_agent", s.UserAgent != "").
		Msg("webview settings applied")
}

func applySettings(ws *webkit.Settings, s Settings) {
	ws.SetEnableJavascript(s.EnableJavaScript)
	ws.SetEnableDeveloperExtras(s.DeveloperExtras)
	if s.HardwareAcceleration {
		ws.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	} else {
		ws.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyNever)
	}
	// WebKit restores its standard user agent for an empty string, so a
	// cleared setting undoes an earlier custom one.
	ws.SetUserAgent(s.UserAgent)
}
