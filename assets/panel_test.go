package assets

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/grafana/sobek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/twinview/internal/domain/entity"
	"github.com/bnema/twinview/internal/infrastructure/ipc"
)

// fakeWindow is a minimal browser global: location, history, timers,
// event listeners and a WebKit script message handler that records posts.
const fakeWindow = `
var window = this;
var posted = [];
var timers = [];
var listeners = {};
window.location = { href: 'https://google.com/' };
window.history = {
  pushState: function (s, t, u) { window.location.href = u; },
  replaceState: function (s, t, u) { window.location.href = u; }
};
window.setInterval = function (fn, ms) { timers.push({ fn: fn, ms: ms }); return timers.length; };
window.clearInterval = function (id) { timers[id - 1].cleared = true; };
window.addEventListener = function (name, fn) { (listeners[name] = listeners[name] || []).push(fn); };
window.removeEventListener = function (name, fn) {
  listeners[name] = (listeners[name] || []).filter(function (f) { return f !== fn; });
};
function CustomEvent(type, init) { this.type = type; this.detail = init && init.detail; }
window.dispatchEvent = function (ev) {
  (listeners[ev.type] || []).forEach(function (fn) { fn(ev); });
  return true;
};
window.webkit = { messageHandlers: { twinview: { postMessage: function (m) { posted.push(JSON.stringify(m)); } } } };
`

func newVM(t *testing.T) *sobek.Runtime {
	t.Helper()
	vm := sobek.New()
	_, err := vm.RunString(fakeWindow)
	require.NoError(t, err)
	return vm
}

func run(t *testing.T, vm *sobek.Runtime, script string) sobek.Value {
	t.Helper()
	v, err := vm.RunString(script)
	require.NoError(t, err)
	return v
}

func posted(t *testing.T, vm *sobek.Runtime) []map[string]any {
	t.Helper()
	raw := vm.Get("posted").Export().([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(item.(string)), &m))
		out = append(out, m)
	}
	return out
}

func postedURLs(t *testing.T, vm *sobek.Runtime) []string {
	t.Helper()
	var urls []string
	for _, m := range posted(t, vm) {
		require.Equal(t, "url-changed", m["type"])
		urls = append(urls, m["payload"].(map[string]any)["url"].(string))
	}
	return urls
}

func TestURLWatchScript_ReportsInitialLocationAndUsesInterval(t *testing.T) {
	vm := newVM(t)
	run(t, vm, URLWatchScript(250*time.Millisecond))

	assert.Equal(t, []string{"https://google.com/"}, postedURLs(t, vm))
	assert.EqualValues(t, 250, run(t, vm, "timers[0].ms").ToInteger())
	assert.EqualValues(t, 1, run(t, vm, "timers.length").ToInteger())
}

func TestURLWatchScript_PollDetectsChangesOnce(t *testing.T) {
	vm := newVM(t)
	run(t, vm, URLWatchScript(500*time.Millisecond))

	run(t, vm, "timers[0].fn(); timers[0].fn();")
	assert.Len(t, postedURLs(t, vm), 1, "unchanged location is not reported")

	run(t, vm, "window.location.href = 'https://example.com/'; timers[0].fn(); timers[0].fn();")
	assert.Equal(t, []string{"https://google.com/", "https://example.com/"}, postedURLs(t, vm))
}

func TestURLWatchScript_HistoryAPIReportsImmediately(t *testing.T) {
	vm := newVM(t)
	run(t, vm, URLWatchScript(500*time.Millisecond))

	run(t, vm, "window.history.pushState(null, '', 'https://google.com/search?q=go');")
	run(t, vm, "window.history.replaceState(null, '', 'https://google.com/search?q=go#top');")
	run(t, vm, "listeners.popstate.forEach(function (fn) { fn({}); });")

	assert.Equal(t, []string{
		"https://google.com/",
		"https://google.com/search?q=go",
		"https://google.com/search?q=go#top",
	}, postedURLs(t, vm))
}

func TestURLWatchScript_InstallsOnce(t *testing.T) {
	vm := newVM(t)
	script := URLWatchScript(500 * time.Millisecond)
	run(t, vm, script)
	run(t, vm, script)

	assert.EqualValues(t, 1, run(t, vm, "timers.length").ToInteger())
	assert.Len(t, postedURLs(t, vm), 1)

	run(t, vm, "window.__twinviewWatch.stop();")
	assert.True(t, run(t, vm, "timers[0].cleared === true").ToBoolean())
}

func TestURLWatchScript_DefaultInterval(t *testing.T) {
	vm := newVM(t)
	run(t, vm, urlWatchScript)
	assert.EqualValues(t, 500, run(t, vm, "timers[0].ms").ToInteger())
}

// newBridgeVM installs the invoke shim and returns a router wired like the
// control panel's command surface.
func newBridgeVM(t *testing.T) (*sobek.Runtime, *ipc.Router) {
	t.Helper()
	vm := newVM(t)
	run(t, vm, BridgeScript)

	router := ipc.NewRouter()
	require.NoError(t, router.RegisterCommand("greet", ipc.HandlerFunc(
		func(_ context.Context, _ entity.PanelLabel, payload json.RawMessage) (any, error) {
			var in struct {
				Name string `json:"name"`
			}
			if err := ipc.DecodePayload(payload, &in); err != nil {
				return nil, err
			}
			return "Hello, " + in.Name + "!", nil
		})))
	require.NoError(t, router.RegisterCommand("navigate_webviews", ipc.HandlerFunc(
		func(context.Context, entity.PanelLabel, json.RawMessage) (any, error) {
			return nil, entity.ErrInvalidURL
		})))
	return vm, router
}

// deliver routes every posted message through router and evaluates replies.
func deliver(t *testing.T, vm *sobek.Runtime, router *ipc.Router) {
	t.Helper()
	raw := vm.Get("posted").Export().([]any)
	run(t, vm, "posted = [];")
	for _, item := range raw {
		script, err := router.Dispatch(context.Background(), entity.PanelControl, []byte(item.(string)))
		require.NoError(t, err)
		run(t, vm, script)
	}
}

func TestBridgeScript_InvokeResolves(t *testing.T) {
	vm, router := newBridgeVM(t)

	run(t, vm, `var result, failure;
		twinview.invoke('greet', { name: 'Ada' }).then(function (r) { result = r; }, function (e) { failure = e.message; });`)

	msgs := posted(t, vm)
	require.Len(t, msgs, 1)
	assert.Equal(t, "greet", msgs[0]["type"])
	assert.Equal(t, "1", msgs[0]["id"])
	assert.Equal(t, map[string]any{"name": "Ada"}, msgs[0]["payload"])

	deliver(t, vm, router)
	assert.Equal(t, "Hello, Ada!", vm.Get("result").Export())
	assert.True(t, sobek.IsUndefined(vm.Get("failure")))
	assert.EqualValues(t, 0, run(t, vm, "twinview.pendingCount()").ToInteger())
}

func TestBridgeScript_InvokeRejectsWithCommandError(t *testing.T) {
	vm, router := newBridgeVM(t)

	run(t, vm, `var failure;
		twinview.invoke('navigate_webviews', { url: 'nope' }).catch(function (e) { failure = e.message; });`)
	deliver(t, vm, router)

	assert.Equal(t, "Invalid URL format", vm.Get("failure").Export())
}

func TestBridgeScript_InvokeRejectsWithoutHandler(t *testing.T) {
	vm := newVM(t)
	run(t, vm, "delete window.webkit;")
	run(t, vm, BridgeScript)

	run(t, vm, `var failure;
		twinview.invoke('greet', {}).catch(function (e) { failure = e.message; });`)

	assert.Equal(t, "twinview message handler unavailable", vm.Get("failure").Export())
	assert.EqualValues(t, 0, run(t, vm, "twinview.pendingCount()").ToInteger())
}

func TestBridgeScript_ListenReceivesEvents(t *testing.T) {
	vm := newVM(t)
	run(t, vm, BridgeScript)
	run(t, vm, `var seen = [];
		var off = twinview.listen('url-changed', function (d) { seen.push(d.url); });`)

	script, err := ipc.EventScript("url-changed", map[string]string{"url": "https://example.com/"})
	require.NoError(t, err)
	run(t, vm, script)
	run(t, vm, "off();")
	run(t, vm, script)

	assert.Equal(t, []any{"https://example.com/"}, vm.Get("seen").Export())
}

func TestBridgeScript_IgnoresUnknownReplies(t *testing.T) {
	vm := newVM(t)
	run(t, vm, BridgeScript)
	run(t, vm, "window.__twinview_resolve({ id: '99', ok: true }); window.__twinview_resolve(null);")
}

func TestControlPage_UsesCommandSurface(t *testing.T) {
	assert.Contains(t, ControlPage, "navigate_webviews")
	assert.Contains(t, ControlPage, "url-changed")
	assert.Contains(t, ControlPage, "Loading...")
	assert.Contains(t, ControlPage, "content_url")
}
