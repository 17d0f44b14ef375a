package http

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"io"
	"net"
	nethttp "net/http"
	"net/http/httptrace"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"

	"github.com/baturalpk/restdeck/internal/protocol"
)

// ProxyConfig holds proxy settings.
type ProxyConfig struct {
	URL     string // http://, https://, or socks5:// proxy URL
	NoProxy string // comma-separated list of hosts to bypass proxy
}

// Executor performs HTTP requests and normalizes the outcome. Execute never
// returns an error: every failure folds into the status-0 sentinel response,
// so callers have a single result path.
type Executor struct {
	timeout   time.Duration
	proxyConf *ProxyConfig
}

// NewExecutor creates an Executor with a 30 second default timeout.
func NewExecutor() *Executor {
	return &Executor{timeout: 30 * time.Second}
}

// SetTimeout sets the default per-request timeout. Requests carrying their
// own Timeout override it.
func (e *Executor) SetTimeout(d time.Duration) {
	if d > 0 {
		e.timeout = d
	}
}

// SetProxy configures a default proxy for all requests.
func (e *Executor) SetProxy(proxyURL, noProxy string) {
	if proxyURL == "" {
		e.proxyConf = nil
		return
	}
	e.proxyConf = &ProxyConfig{URL: proxyURL, NoProxy: noProxy}
}

// Execute runs the request and returns the normalized response. Elapsed time
// is measured from dispatch to completion, including the failure path.
func (e *Executor) Execute(ctx context.Context, req *protocol.Request) *protocol.Response {
	start := time.Now()
	fail := func(err error) *protocol.Response {
		return protocol.Failure(err, time.Since(start))
	}

	u, err := url.Parse(req.URL)
	if err != nil {
		return fail(err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fail(fmt.Errorf("URL must be absolute: %q", req.URL))
	}
	applyQuery(u, req.Query)

	var body io.Reader
	attachBody := allowsBody(req.Method) && req.Body != ""
	if attachBody {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return fail(err)
	}

	for _, h := range req.Headers {
		if h.Enabled && h.Key != "" {
			httpReq.Header.Set(h.Key, h.Value)
		}
	}
	if attachBody && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	// Auth is applied after user headers and wins over an explicit
	// Authorization row.
	applyAuth(httpReq, req.Auth)

	transport, err := e.buildTransport(req)
	if err != nil {
		return fail(err)
	}

	timeout := req.Timeout
	if timeout == 0 {
		timeout = e.timeout
	}
	client := &nethttp.Client{
		Timeout:   timeout,
		Transport: transport,
		CheckRedirect: func(r *nethttp.Request, via []*nethttp.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("too many redirects")
			}
			return nil
		},
	}

	var dnsStart, connStart, tlsStart, gotConn, gotFirstByte time.Time
	var dnsDuration, connDuration, tlsDuration time.Duration

	trace := &httptrace.ClientTrace{
		DNSStart: func(_ httptrace.DNSStartInfo) {
			dnsStart = time.Now()
		},
		DNSDone: func(_ httptrace.DNSDoneInfo) {
			dnsDuration = time.Since(dnsStart)
		},
		ConnectStart: func(_, _ string) {
			connStart = time.Now()
		},
		ConnectDone: func(_, _ string, _ error) {
			connDuration = time.Since(connStart)
		},
		TLSHandshakeStart: func() {
			tlsStart = time.Now()
		},
		TLSHandshakeDone: func(_ tls.ConnectionState, _ error) {
			tlsDuration = time.Since(tlsStart)
		},
		GotConn: func(_ httptrace.GotConnInfo) {
			gotConn = time.Now()
		},
		GotFirstResponseByte: func() {
			gotFirstByte = time.Now()
		},
	}
	httpReq = httpReq.WithContext(httptrace.WithClientTrace(httpReq.Context(), trace))

	resp, err := client.Do(httpReq)
	if err != nil {
		return fail(err)
	}
	defer resp.Body.Close()

	transferStart := time.Now()
	raw, err := io.ReadAll(resp.Body)
	transferDuration := time.Since(transferStart)
	if err != nil {
		return fail(err)
	}
	elapsed := time.Since(start)

	var ttfb time.Duration
	if !gotConn.IsZero() && !gotFirstByte.IsZero() {
		ttfb = gotFirstByte.Sub(gotConn)
	}
	timing := &protocol.TimingDetail{
		DNSLookup:    dnsDuration,
		TCPConnect:   connDuration,
		TLSHandshake: tlsDuration,
		TTFB:         ttfb,
		Transfer:     transferDuration,
		Total:        elapsed,
	}

	return Normalize(resp, raw, elapsed, timing)
}

// applyQuery appends enabled query rows in the order given, preserving any
// query string already present in the URL.
func applyQuery(u *url.URL, params []protocol.Param) {
	var b strings.Builder
	b.WriteString(u.RawQuery)
	for _, p := range params {
		if !p.Enabled || p.Key == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	u.RawQuery = b.String()
}

// allowsBody reports whether the method carries a request body.
func allowsBody(method string) bool {
	switch method {
	case nethttp.MethodPost, nethttp.MethodPut, nethttp.MethodPatch:
		return true
	default:
		return false
	}
}

func applyAuth(req *nethttp.Request, auth *protocol.AuthConfig) {
	if auth == nil {
		return
	}
	switch auth.Type {
	case "basic":
		encoded := base64.StdEncoding.EncodeToString(
			[]byte(auth.Username + ":" + auth.Password),
		)
		req.Header.Set("Authorization", "Basic "+encoded)
	case "bearer":
		req.Header.Set("Authorization", "Bearer "+auth.Token)
	}
}

// buildTransport creates a transport for a single request. TLS verification
// is scoped to this call only; a request that skips verification does not
// affect any other request.
func (e *Executor) buildTransport(req *protocol.Request) (nethttp.RoundTripper, error) {
	transport := &nethttp.Transport{
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: req.InsecureSkipVerify,
		},
	}

	// Per-request proxy overrides the executor default.
	proxyURL := req.ProxyURL
	noProxy := ""
	if proxyURL == "" && e.proxyConf != nil {
		proxyURL = e.proxyConf.URL
		noProxy = e.proxyConf.NoProxy
	}

	if proxyURL != "" {
		parsed, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("parsing proxy URL: %w", err)
		}

		switch parsed.Scheme {
		case "socks5", "socks5h":
			var auth *proxy.Auth
			if parsed.User != nil {
				password, _ := parsed.User.Password()
				auth = &proxy.Auth{
					User:     parsed.User.Username(),
					Password: password,
				}
			}
			dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
			if err != nil {
				return nil, fmt.Errorf("creating SOCKS5 dialer: %w", err)
			}
			transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		case "http", "https":
			if noProxy != "" {
				noProxyHosts := parseNoProxy(noProxy)
				transport.Proxy = func(r *nethttp.Request) (*url.URL, error) {
					if shouldBypassProxy(r.URL.Hostname(), noProxyHosts) {
						return nil, nil
					}
					return parsed, nil
				}
			} else {
				transport.Proxy = nethttp.ProxyURL(parsed)
			}
		default:
			return nil, fmt.Errorf("unsupported proxy scheme: %s", parsed.Scheme)
		}
	}

	return transport, nil
}

// parseNoProxy splits a comma-separated no-proxy string into trimmed host entries.
func parseNoProxy(noProxy string) []string {
	parts := strings.Split(noProxy, ",")
	hosts := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			hosts = append(hosts, strings.ToLower(p))
		}
	}
	return hosts
}

// shouldBypassProxy checks whether a host should bypass the proxy.
func shouldBypassProxy(host string, noProxyHosts []string) bool {
	host = strings.ToLower(host)
	for _, h := range noProxyHosts {
		if h == host {
			return true
		}
		// Support wildcard suffix matching (e.g., .example.com)
		if strings.HasPrefix(h, ".") && strings.HasSuffix(host, h) {
			return true
		}
	}
	return false
}
