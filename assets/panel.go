package assets

import (
	_ "embed"
	"fmt"
	"time"
)

// Panel pages and scripts embedded at compile time

// ControlPage is the control panel's HTML document.
//
//go:embed panel/control.html
var ControlPage string

// BridgeScript installs window.twinview (invoke/listen) in the control panel.
//
//go:embed panel/bridge.js
var BridgeScript string

//go:embed panel/urlwatch.js
var urlWatchScript string

// URLWatchScript returns the content panel's location watcher, sampling
// every interval.
func URLWatchScript(interval time.Duration) string {
	return fmt.Sprintf("window.__twinviewPollInterval = %d;\n%s", interval.Milliseconds(), urlWatchScript)
}
