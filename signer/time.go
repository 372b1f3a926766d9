package signer

import (
	"net/http"
	"time"
)

// FormatDate renders t as an HTTP-date in UTC, the format expected in the
// Date header (e.g. "Mon, 01 Jan 2024 00:00:00 GMT").
func FormatDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}
