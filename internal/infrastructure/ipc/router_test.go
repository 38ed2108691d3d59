package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/twinview/internal/domain/entity"
)

func TestParseMessage_NormalizesID(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantID string
	}{
		{name: "string id", raw: `{"type":"greet","id":"abc"}`, wantID: "abc"},
		{name: "integer id", raw: `{"type":"greet","id":42}`, wantID: "42"},
		{name: "float id", raw: `{"type":"greet","id":1.5}`, wantID: "1.5"},
		{name: "null id", raw: `{"type":"greet","id":null}`, wantID: ""},
		{name: "no id", raw: `{"type":"greet"}`, wantID: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := ParseMessage([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, "greet", msg.Type)
			assert.Equal(t, tt.wantID, msg.ID)
		})
	}
}

func TestParseMessage_Errors(t *testing.T) {
	_, err := ParseMessage([]byte("  "))
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = ParseMessage([]byte(`{"payload":{}}`))
	assert.ErrorIs(t, err, ErrMissingType)

	_, err = ParseMessage([]byte(`{"type":`))
	assert.Error(t, err)

	_, err = ParseMessage([]byte(`{"type":"greet","id":{"x":1}}`))
	assert.Error(t, err)
}

func TestRouter_RegisterValidation(t *testing.T) {
	r := NewRouter()
	noop := HandlerFunc(func(context.Context, entity.PanelLabel, json.RawMessage) (any, error) { return nil, nil })

	assert.Error(t, r.Register("", noop))
	assert.Error(t, r.Register("x", nil))
	require.NoError(t, r.RegisterCommand("x", noop))
	assert.Error(t, r.Register("x", noop), "duplicate type")
	assert.Equal(t, 1, r.Types())
}

func TestRouter_DispatchCommandSuccess(t *testing.T) {
	r := NewRouter()
	require.NoError(t, r.RegisterCommand("greet", HandlerFunc(
		func(_ context.Context, source entity.PanelLabel, payload json.RawMessage) (any, error) {
			assert.Equal(t, entity.PanelControl, source)
			var in struct {
				Name string `json:"name"`
			}
			require.NoError(t, DecodePayload(payload, &in))
			return "hi " + in.Name, nil
		})))

	script, err := r.Dispatch(context.Background(), entity.PanelControl,
		[]byte(`{"type":"greet","id":7,"payload":{"name":"Ada"}}`))
	require.NoError(t, err)

	reply := runReply(t, script)
	assert.Equal(t, "7", reply["id"])
	assert.Equal(t, true, reply["ok"])
	assert.Equal(t, "hi Ada", reply["result"])
	assert.NotContains(t, reply, "error")
}

func TestRouter_DispatchCommandError(t *testing.T) {
	r := NewRouter()
	require.NoError(t, r.RegisterCommand("navigate_webviews", HandlerFunc(
		func(context.Context, entity.PanelLabel, json.RawMessage) (any, error) {
			return "ignored", entity.ErrInvalidURL
		})))

	script, err := r.Dispatch(context.Background(), entity.PanelControl,
		[]byte(`{"type":"navigate_webviews","id":"n1","payload":{"url":"x"}}`))
	require.NoError(t, err)

	reply := runReply(t, script)
	assert.Equal(t, "n1", reply["id"])
	assert.Equal(t, false, reply["ok"])
	assert.Equal(t, "Invalid URL format", reply["error"])
	assert.NotContains(t, reply, "result")
}

func TestRouter_DispatchUnknownCommandWithIDReplies(t *testing.T) {
	script, err := NewRouter().Dispatch(context.Background(), entity.PanelControl,
		[]byte(`{"type":"explode","id":"1"}`))
	require.NoError(t, err)

	reply := runReply(t, script)
	assert.Equal(t, false, reply["ok"])
	assert.Equal(t, "unknown command: explode", reply["error"])
}

func TestRouter_DispatchUnknownEventWithoutID(t *testing.T) {
	script, err := NewRouter().Dispatch(context.Background(), entity.PanelContent, []byte(`{"type":"explode"}`))
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Empty(t, script)
}

func TestRouter_DispatchFireAndForget(t *testing.T) {
	r := NewRouter()
	var got string
	require.NoError(t, r.Register("url-changed", HandlerFunc(
		func(_ context.Context, _ entity.PanelLabel, payload json.RawMessage) (any, error) {
			var in struct {
				URL string `json:"url"`
			}
			require.NoError(t, DecodePayload(payload, &in))
			got = in.URL
			return nil, errors.New("logged, not returned")
		}), entity.PanelContent))

	script, err := r.Dispatch(context.Background(), entity.PanelContent,
		[]byte(`{"type":"url-changed","payload":{"url":"https://example.com/"}}`))
	require.NoError(t, err)
	assert.Empty(t, script)
	assert.Equal(t, "https://example.com/", got)
}

func TestRouter_DispatchRejectsWrongSource(t *testing.T) {
	r := NewRouter()
	called := false
	require.NoError(t, r.Register("url-changed", HandlerFunc(
		func(context.Context, entity.PanelLabel, json.RawMessage) (any, error) {
			called = true
			return nil, nil
		}), entity.PanelContent))

	_, err := r.Dispatch(context.Background(), entity.PanelControl,
		[]byte(`{"type":"url-changed","payload":{"url":"https://evil.example"}}`))
	assert.ErrorIs(t, err, ErrSourceRejected)
	assert.False(t, called)
}

func TestDecodePayload_Absent(t *testing.T) {
	var v struct{ URL string }
	assert.NoError(t, DecodePayload(nil, &v))
	assert.NoError(t, DecodePayload(json.RawMessage("null"), &v))
	assert.Error(t, DecodePayload(json.RawMessage("[1"), &v))
}
