package mainloop

import "github.com/diamondburned/gotk4/pkg/glib/v2"

// IdlePost runs fn once on the GLib main loop. Safe to call from any goroutine.
func IdlePost(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
