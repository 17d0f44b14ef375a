package http

import (
	nethttp "net/http"
	"strconv"
	"strings"
	"time"

	"github.com/baturalpk/restdeck/internal/protocol"
)

// Normalize flattens a raw transport response into the canonical record the
// panels render. It is a pure function of its inputs: calling it twice on
// the same response yields identical records.
func Normalize(resp *nethttp.Response, body []byte, elapsed time.Duration, timing *protocol.TimingDetail) *protocol.Response {
	headers := make(map[string]string, len(resp.Header))
	for name, values := range resp.Header {
		if len(values) > 0 {
			headers[name] = values[len(values)-1]
		}
	}

	return &protocol.Response{
		Status:     resp.StatusCode,
		StatusText: statusText(resp),
		Headers:    headers,
		Cookies:    ParseSetCookie(resp.Header.Get("Set-Cookie")),
		Body:       string(body),
		Size:       len(body),
		Time:       elapsed,
		Timing:     timing,
	}
}

// ParseSetCookie splits a single raw Set-Cookie header value into name/value
// pairs: segments are separated by ';' and split on the first '='. Segments
// without an '=' or with an empty name or value are dropped. Cookie
// attributes such as Path=/ come out as pairs too, and only the first
// Set-Cookie header is consulted; the cookies pane shows the header the way
// it was spelled rather than applying RFC 6265 semantics.
func ParseSetCookie(raw string) map[string]string {
	cookies := make(map[string]string)
	if raw == "" {
		return cookies
	}
	for _, segment := range strings.Split(raw, ";") {
		name, value, ok := strings.Cut(segment, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		cookies[name] = value
	}
	return cookies
}

// statusText extracts the reason phrase from the status line, falling back
// to the standard text for the code.
func statusText(resp *nethttp.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = nethttp.StatusText(resp.StatusCode)
	}
	return text
}
