package ipc

import (
	"testing"

	"github.com/grafana/sobek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newWindowRuntime returns a sobek runtime with a minimal window that
// records dispatched CustomEvents in window.__events.
func newWindowRuntime(t *testing.T) *sobek.Runtime {
	t.Helper()
	vm := sobek.New()
	_, err := vm.RunString(`
		var window = this;
		window.__events = [];
		function CustomEvent(type, init) { this.type = type; this.detail = init && init.detail; }
		window.dispatchEvent = function (ev) { window.__events.push({type: ev.type, detail: ev.detail}); return true; };
		var console = { warn: function () {}, error: function () {} };
	`)
	require.NoError(t, err)
	return vm
}

// runReply evaluates a reply script and returns what the callback received.
func runReply(t *testing.T, script string) map[string]any {
	t.Helper()
	vm := newWindowRuntime(t)
	_, err := vm.RunString(`var __got = null; window.__twinview_resolve = function (r) { __got = r; };`)
	require.NoError(t, err)

	_, err = vm.RunString(script)
	require.NoError(t, err)

	got, ok := vm.Get("__got").Export().(map[string]any)
	require.True(t, ok, "callback was not invoked")
	return got
}

func TestReplyScript_MissingCallbackDoesNotThrow(t *testing.T) {
	script, err := ReplyScript(Reply{ID: "1", OK: true})
	require.NoError(t, err)

	_, err = newWindowRuntime(t).RunString(script)
	assert.NoError(t, err)
}

func TestEventScript_DispatchesCustomEvent(t *testing.T) {
	script, err := EventScript("url-changed", map[string]string{"url": "https://example.com/?q='quoted'\"</script>"})
	require.NoError(t, err)

	vm := newWindowRuntime(t)
	_, err = vm.RunString(script)
	require.NoError(t, err)

	events := vm.Get("__events").Export().([]any)
	require.Len(t, events, 1)
	ev := events[0].(map[string]any)
	assert.Equal(t, "url-changed", ev["type"])
	assert.Equal(t, map[string]any{"url": "https://example.com/?q='quoted'\"</script>"}, ev["detail"])
}

func TestEventScript_RejectsUnencodablePayload(t *testing.T) {
	_, err := EventScript("x", make(chan int))
	assert.Error(t, err)
}
