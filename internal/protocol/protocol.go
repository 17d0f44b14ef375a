package protocol

import "time"

// Param is an ordered key/value row with an enabled toggle. Disabled or
// empty-key rows are skipped when the request is built.
type Param struct {
	Key     string
	Value   string
	Enabled bool
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	Type     string // none, basic, bearer
	Username string
	Password string
	Token    string
}

// Request describes a single HTTP request as assembled by a panel form.
// It is constructed fresh per submission and not reused.
type Request struct {
	ID      string
	Method  string // GET, POST, PUT, DELETE, HEAD, PATCH, OPTIONS
	URL     string
	Query   []Param
	Headers []Param
	Auth    *AuthConfig
	Body    string

	// InsecureSkipVerify disables TLS certificate validation for this call
	// only. The zero value verifies; there is no process-wide toggle.
	InsecureSkipVerify bool

	Timeout  time.Duration
	ProxyURL string
}

// TimingDetail breaks the total request time into phases.
type TimingDetail struct {
	DNSLookup    time.Duration
	TCPConnect   time.Duration
	TLSHandshake time.Duration
	TTFB         time.Duration
	Transfer     time.Duration
	Total        time.Duration
}

// Response is the normalized result of executing a Request. Status 0 is the
// sentinel for a transport-level failure (DNS, connect, TLS, timeout, bad
// URL); it never corresponds to a real HTTP status.
type Response struct {
	Status     int
	StatusText string
	Headers    map[string]string
	Cookies    map[string]string
	Body       string
	Size       int
	Time       time.Duration
	Timing     *TimingDetail
}

// Failed reports whether the response is the transport-failure sentinel.
func (r *Response) Failed() bool {
	return r.Status == 0
}

// Failure builds the sentinel response for a failed request. The error
// message becomes the body so the response pane has something to show.
func Failure(err error, elapsed time.Duration) *Response {
	msg := err.Error()
	return &Response{
		Status:     0,
		StatusText: "Error",
		Headers:    map[string]string{},
		Cookies:    map[string]string{},
		Body:       msg,
		Size:       len(msg),
		Time:       elapsed,
	}
}
