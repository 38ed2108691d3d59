// Package url provides URL validation for panel navigation.
package url

import (
	"errors"
	"net/url"
	"strings"
	"unicode"
)

var (
	ErrEmpty         = errors.New("url: empty input")
	ErrWhitespace    = errors.New("url: whitespace in scheme or host")
	ErrMissingScheme = errors.New("url: missing scheme")
	ErrMissingHost   = errors.New("url: scheme requires a host")
	ErrMissingTarget = errors.New("url: missing authority or path")
)

// hostSchemes are the schemes whose URLs are meaningless without a host.
var hostSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

// Trim drops what a browser discards before parsing: leading and trailing
// C0 controls and spaces, and any tab or newline.
func Trim(raw string) string {
	raw = strings.TrimFunc(raw, func(r rune) bool { return r <= 0x20 })
	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, raw)
}

// Validate checks that raw is a well-formed absolute URL: a valid scheme
// followed by an authority or a path. Input is trimmed first; spaces are
// allowed in the path, query and fragment but not in the host.
func Validate(raw string) (*url.URL, error) {
	raw = Trim(raw)
	if raw == "" {
		return nil, ErrEmpty
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" {
		return nil, ErrMissingScheme
	}
	if strings.IndexFunc(u.Host, unicode.IsSpace) >= 0 {
		return nil, ErrWhitespace
	}

	scheme := strings.ToLower(u.Scheme)
	if hostSchemes[scheme] {
		if u.Hostname() == "" {
			return nil, ErrMissingHost
		}
		return u, nil
	}

	if u.Host == "" && u.Path == "" && u.Opaque == "" {
		return nil, ErrMissingTarget
	}
	return u, nil
}
