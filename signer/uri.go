package signer

import (
	"net/url"
	"strings"
)

// GetURIPath returns the path that is signed for u. The path is used
// unescaped because the canonicalized resource applies no URL-encoding.
// An empty path signs as "/".
func GetURIPath(u *url.URL) string {
	uriPath := u.Path

	// Opaque form "//host/path" carries the path after the host.
	if u.Opaque != "" {
		opaque := strings.TrimPrefix(u.Opaque, "//")
		uriPath = ""
		if idx := strings.IndexByte(opaque, '/'); idx >= 0 {
			uriPath = opaque[idx:]
		}
		if unescaped, err := url.PathUnescape(uriPath); err == nil {
			uriPath = unescaped
		}
	}

	if uriPath == "" {
		uriPath = "/"
	}
	return uriPath
}
