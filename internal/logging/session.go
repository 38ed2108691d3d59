package logging

import (
	"context"

	"github.com/google/uuid"
)

// NewSessionID returns a random identifier for one application run.
func NewSessionID() string {
	return uuid.NewString()
}

// ShortSessionID returns the first 8 characters of a session ID.
func ShortSessionID(sessionID string) string {
	if len(sessionID) < 8 {
		return sessionID
	}
	return sessionID[:8]
}

// WithSession creates a child logger tagging every entry with the session.
func WithSession(ctx context.Context, sessionID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("session", ShortSessionID(sessionID)).Logger()
	return WithContext(ctx, childLogger)
}
