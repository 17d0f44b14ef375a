package http

import (
	"context"
	"encoding/base64"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/baturalpk/restdeck/internal/protocol"
)

func TestExecute_QueryParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotQuery = r.URL.RawQuery
		w.WriteHeader(200)
	}))
	defer server.Close()

	resp := NewExecutor().Execute(context.Background(), &protocol.Request{
		Method: "GET",
		URL:    server.URL,
		Query: []protocol.Param{
			{Key: "q", Value: "x", Enabled: true},
			{Key: "unused", Value: "y", Enabled: false},
			{Key: "page", Value: "2", Enabled: true},
		},
	})

	if resp.Status != 200 {
		t.Fatalf("expected 200, got %d (%s)", resp.Status, resp.Body)
	}
	if gotQuery != "q=x&page=2" {
		t.Errorf("expected q=x&page=2, got %q", gotQuery)
	}
	if strings.Contains(gotQuery, "unused") {
		t.Errorf("disabled param leaked into query: %q", gotQuery)
	}
}

func TestExecute_QueryAppendsToExisting(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotQuery = r.URL.RawQuery
	}))
	defer server.Close()

	NewExecutor().Execute(context.Background(), &protocol.Request{
		Method: "GET",
		URL:    server.URL + "/search?base=1",
		Query:  []protocol.Param{{Key: "q", Value: "a b", Enabled: true}},
	})

	if gotQuery != "base=1&q=a+b" {
		t.Errorf("expected base=1&q=a+b, got %q", gotQuery)
	}
}

func TestExecute_BasicAuthHeader(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "credentials", username: "admin", password: "secret"},
		{name: "empty credentials", username: "", password: ""},
		{name: "empty password", username: "user", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth string
			server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				gotAuth = r.Header.Get("Authorization")
			}))
			defer server.Close()

			NewExecutor().Execute(context.Background(), &protocol.Request{
				Method: "GET",
				URL:    server.URL,
				Auth:   &protocol.AuthConfig{Type: "basic", Username: tt.username, Password: tt.password},
			})

			want := "Basic " + base64.StdEncoding.EncodeToString([]byte(tt.username+":"+tt.password))
			if gotAuth != want {
				t.Errorf("expected %q, got %q", want, gotAuth)
			}
		})
	}
}

func TestExecute_BearerAuth(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	NewExecutor().Execute(context.Background(), &protocol.Request{
		Method: "GET",
		URL:    server.URL,
		Auth:   &protocol.AuthConfig{Type: "bearer", Token: "mytoken"},
	})

	if gotAuth != "Bearer mytoken" {
		t.Errorf("expected Bearer mytoken, got %q", gotAuth)
	}
}

func TestExecute_AuthOverridesExplicitHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	NewExecutor().Execute(context.Background(), &protocol.Request{
		Method:  "GET",
		URL:     server.URL,
		Headers: []protocol.Param{{Key: "Authorization", Value: "Bearer stale", Enabled: true}},
		Auth:    &protocol.AuthConfig{Type: "bearer", Token: "fresh"},
	})

	if gotAuth != "Bearer fresh" {
		t.Errorf("auth section should win over explicit header, got %q", gotAuth)
	}
}

func TestExecute_BodyGate(t *testing.T) {
	// Only POST, PUT, and PATCH may carry a body.
	tests := []struct {
		method   string
		wantBody bool
	}{
		{method: "GET", wantBody: false},
		{method: "HEAD", wantBody: false},
		{method: "DELETE", wantBody: false},
		{method: "OPTIONS", wantBody: false},
		{method: "POST", wantBody: true},
		{method: "PUT", wantBody: true},
		{method: "PATCH", wantBody: true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			var gotBody string
			server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				b, _ := io.ReadAll(r.Body)
				gotBody = string(b)
			}))
			defer server.Close()

			resp := NewExecutor().Execute(context.Background(), &protocol.Request{
				Method: tt.method,
				URL:    server.URL,
				Body:   `{"name":"test"}`,
			})
			if resp.Failed() {
				t.Fatalf("request failed: %s", resp.Body)
			}

			if tt.wantBody && gotBody != `{"name":"test"}` {
				t.Errorf("expected body to be sent, got %q", gotBody)
			}
			if !tt.wantBody && gotBody != "" {
				t.Errorf("body must not be attached for %s, got %q", tt.method, gotBody)
			}
		})
	}
}

func TestExecute_DefaultContentType(t *testing.T) {
	var gotType string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotType = r.Header.Get("Content-Type")
	}))
	defer server.Close()

	exec := NewExecutor()
	exec.Execute(context.Background(), &protocol.Request{
		Method: "POST",
		URL:    server.URL,
		Body:   `{}`,
	})
	if gotType != "application/json" {
		t.Errorf("expected application/json default, got %q", gotType)
	}

	exec.Execute(context.Background(), &protocol.Request{
		Method:  "POST",
		URL:     server.URL,
		Headers: []protocol.Param{{Key: "Content-Type", Value: "text/plain", Enabled: true}},
		Body:    "hello",
	})
	if gotType != "text/plain" {
		t.Errorf("user Content-Type should be kept, got %q", gotType)
	}
}

func TestExecute_DNSFailureSentinel(t *testing.T) {
	resp := NewExecutor().Execute(context.Background(), &protocol.Request{
		Method: "GET",
		URL:    "http://invalid.invalid/",
	})

	if resp.Status != 0 {
		t.Errorf("expected sentinel status 0, got %d", resp.Status)
	}
	if resp.StatusText != "Error" {
		t.Errorf("expected statusText Error, got %q", resp.StatusText)
	}
	if len(resp.Headers) != 0 || len(resp.Cookies) != 0 {
		t.Error("failure record must have empty headers and cookies")
	}
	if resp.Body == "" {
		t.Error("failure record must carry an error message body")
	}
	if resp.Size != len(resp.Body) {
		t.Errorf("size %d does not match body length %d", resp.Size, len(resp.Body))
	}
	if resp.Time < 0 {
		t.Error("elapsed time must be measured on the failure path")
	}
}

func TestExecute_InvalidURLSentinel(t *testing.T) {
	for _, raw := range []string{"", "not a url", "/relative/path", "://missing"} {
		resp := NewExecutor().Execute(context.Background(), &protocol.Request{
			Method: "GET",
			URL:    raw,
		})
		if !resp.Failed() {
			t.Errorf("URL %q should produce the sentinel response", raw)
		}
		if resp.Body == "" {
			t.Errorf("URL %q: sentinel body should hold the parse error", raw)
		}
	}
}

func TestExecute_VerifyCertificates(t *testing.T) {
	server := httptest.NewTLSServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(200)
	}))
	defer server.Close()

	exec := NewExecutor()

	// Self-signed cert: the zero value verifies and must fail.
	resp := exec.Execute(context.Background(), &protocol.Request{
		Method: "GET",
		URL:    server.URL,
	})
	if !resp.Failed() {
		t.Errorf("expected TLS verification failure, got status %d", resp.Status)
	}

	// Skipping verification is scoped to the request, not the process.
	resp = exec.Execute(context.Background(), &protocol.Request{
		Method:             "GET",
		URL:                server.URL,
		InsecureSkipVerify: true,
	})
	if resp.Status != 200 {
		t.Errorf("expected 200 with verification off, got %d (%s)", resp.Status, resp.Body)
	}

	// And the next default request still fails.
	resp = exec.Execute(context.Background(), &protocol.Request{
		Method: "GET",
		URL:    server.URL,
	})
	if !resp.Failed() {
		t.Error("verification must not stay disabled after an insecure request")
	}
}

func TestExecute_MeasuresTime(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	resp := NewExecutor().Execute(context.Background(), &protocol.Request{
		Method: "GET",
		URL:    server.URL,
	})
	if resp.Time <= 0 {
		t.Error("elapsed time should be > 0")
	}
	if resp.Timing == nil || resp.Timing.Total <= 0 {
		t.Error("timing detail should be populated on success")
	}
}
