// Package logging routes toolkit log output into zerolog.
package logging

import (
	"context"
	"sync"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/rs/zerolog"

	applog "github.com/bnema/twinview/internal/logging"
)

// glibDomains are the log domains emitted by the libraries behind the panels.
// The empty domain catches messages logged without one.
var glibDomains = []string{
	"",
	"GLib",
	"GLib-GObject",
	"GLib-GIO",
	"Gdk",
	"Gtk",
	"WebKit",
	"JavaScriptCore",
}

var installOnce sync.Once

// InstallGLibLogHandler routes GTK4/WebKitGTK/GLib messages to logger.
// It must run before GTK initialization. Later calls are no-ops.
// Debug messages are forwarded only when enableDebug is true.
func InstallGLibLogHandler(ctx context.Context, logger zerolog.Logger, enableDebug bool) {
	installOnce.Do(func() {
		levels := glib.LogLevelError | glib.LogLevelCritical | glib.LogLevelWarning |
			glib.LogLevelMessage | glib.LogLevelInfo | glib.LogFlagFatal | glib.LogFlagRecursion
		if enableDebug {
			levels |= glib.LogLevelDebug
		}

		handler := func(domain string, flags glib.LogLevelFlags, message string) {
			writeGLibMessage(logger, domain, flags, message)
		}
		for _, domain := range glibDomains {
			glib.LogSetHandler(domain, levels, handler)
		}

		applog.FromContext(ctx).Debug().
			Bool("debug_enabled", enableDebug).
			Int("domains", len(glibDomains)).
			Msg("GLib log handler installed")
	})
}

func writeGLibMessage(logger zerolog.Logger, domain string, flags glib.LogLevelFlags, message string) {
	event := logger.WithLevel(levelFor(flags))
	if domain != "" {
		event = event.Str("glib_domain", domain)
	}
	event.Msg(message)
}

// levelFor maps GLib log level flags to a zerolog level.
// GLib errors are fatal to GLib itself, not to us, so they log at error.
func levelFor(flags glib.LogLevelFlags) zerolog.Level {
	switch {
	case flags&glib.LogLevelError != 0, flags&glib.LogLevelCritical != 0:
		return zerolog.ErrorLevel
	case flags&glib.LogLevelWarning != 0:
		return zerolog.WarnLevel
	case flags&glib.LogLevelMessage != 0, flags&glib.LogLevelInfo != 0:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
