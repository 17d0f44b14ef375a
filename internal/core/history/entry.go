package history

import (
	"encoding/json"
	"time"

	"github.com/baturalpk/restdeck/internal/protocol"
)

// Entry is one completed request/response pair. Entries are appended in
// completion order and never mutated or removed.
type Entry struct {
	ID         int64
	Method     string
	URL        string
	Status     int
	StatusText string
	Size       int64
	Time       time.Duration
	Body       string // response body
	Headers    string // JSON-encoded response headers
	Cookies    string // JSON-encoded response cookies
	Timestamp  time.Time
}

// Failed reports whether the entry records a transport failure.
func (e Entry) Failed() bool {
	return e.Status == 0
}

// Record rebuilds the response record stored in the entry, including the
// header and cookie mappings persisted as JSON. Undecodable mappings are
// left nil rather than failing the rebuild.
func (e Entry) Record() *protocol.Response {
	rec := &protocol.Response{
		Status:     e.Status,
		StatusText: e.StatusText,
		Body:       e.Body,
		Size:       int(e.Size),
		Time:       e.Time,
	}
	if e.Headers != "" {
		json.Unmarshal([]byte(e.Headers), &rec.Headers)
	}
	if e.Cookies != "" {
		json.Unmarshal([]byte(e.Cookies), &rec.Cookies)
	}
	return rec
}
