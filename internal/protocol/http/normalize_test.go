package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func TestParseSetCookie(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{
			name: "pairs and attribute",
			raw:  "a=1; b=2; Path=/",
			want: map[string]string{"a": "1", "b": "2", "Path": "/"},
		},
		{
			name: "empty header",
			raw:  "",
			want: map[string]string{},
		},
		{
			name: "segments without equals are dropped",
			raw:  "a=1; HttpOnly; Secure",
			want: map[string]string{"a": "1"},
		},
		{
			name: "empty names and values are dropped",
			raw:  "=1; a=; b=2",
			want: map[string]string{"b": "2"},
		},
		{
			name: "whitespace trimmed",
			raw:  "  session = abc ;theme=dark",
			want: map[string]string{"session": "abc", "theme": "dark"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSetCookie(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSetCookie(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalize_LastHeaderValueWins(t *testing.T) {
	resp := &nethttp.Response{
		StatusCode: 200,
		Status:     "200 OK",
		Header: nethttp.Header{
			"X-Trace":      {"first", "second", "last"},
			"Content-Type": {"application/json"},
		},
	}

	record := Normalize(resp, []byte("body"), 5*time.Millisecond, nil)

	if record.Headers["X-Trace"] != "last" {
		t.Errorf("expected last value to win, got %q", record.Headers["X-Trace"])
	}
	if record.Headers["Content-Type"] != "application/json" {
		t.Errorf("single-valued header lost: %q", record.Headers["Content-Type"])
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Set-Cookie", "sid=xyz; Path=/; theme=dark")
		w.Header().Set("X-Custom", "v")
		w.WriteHeader(201)
		w.Write([]byte(`{"id":1}`))
	}))
	defer server.Close()

	raw, err := nethttp.Get(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer raw.Body.Close()

	body := []byte(`{"id":1}`)
	first := Normalize(raw, body, time.Millisecond, nil)
	second := Normalize(raw, body, time.Millisecond, nil)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalizing twice diverged:\n%+v\n%+v", first, second)
	}
	if first.Status != 201 {
		t.Errorf("expected 201, got %d", first.Status)
	}
	if first.StatusText != "Created" {
		t.Errorf("expected Created, got %q", first.StatusText)
	}
	if first.Size != len(body) {
		t.Errorf("size %d != body length %d", first.Size, len(body))
	}
	if first.Cookies["sid"] != "xyz" || first.Cookies["Path"] != "/" {
		t.Errorf("unexpected cookie map: %v", first.Cookies)
	}
}
