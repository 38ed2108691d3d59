package ipc

import (
	"encoding/json"
	"fmt"
)

// ReplyScript builds the JavaScript that hands reply to ResolveCallback.
func ReplyScript(reply Reply) (string, error) {
	data, err := json.Marshal(reply)
	if err != nil {
		return "", fmt.Errorf("marshal reply: %w", err)
	}
	return fmt.Sprintf(
		`(function(){try{if(window.%[1]s){window.%[1]s(%[2]s);}`+
			`else{console.warn("twinview callback missing: %[1]s");}}`+
			`catch(e){console.error("twinview callback %[1]s failed", e);}})();`,
		ResolveCallback,
		data,
	), nil
}

// EventScript builds the JavaScript that dispatches a CustomEvent named
// name on window with payload as its detail.
func EventScript(name string, payload any) (string, error) {
	nameJSON, err := json.Marshal(name)
	if err != nil {
		return "", fmt.Errorf("marshal event name: %w", err)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal event payload: %w", err)
	}
	return fmt.Sprintf(
		`window.dispatchEvent(new CustomEvent(%s,{detail:%s}));`,
		nameJSON,
		data,
	), nil
}
