package export

import (
	"strings"
	"testing"

	"github.com/baturalpk/restdeck/internal/protocol"
)

func TestAsCurl_GET(t *testing.T) {
	req := &protocol.Request{
		Method:             "GET",
		URL:                "https://api.example.com/users",
		Headers:            []protocol.Param{{Key: "Accept", Value: "application/json", Enabled: true}},
	}

	result := AsCurl(req)
	if !strings.HasPrefix(result, "curl") {
		t.Error("should start with 'curl'")
	}
	if strings.Contains(result, "-X") {
		t.Error("GET should not have -X flag")
	}
	if strings.Contains(result, "-k") {
		t.Error("verified request should not have -k")
	}
	if !strings.Contains(result, "Accept: application/json") {
		t.Error("should contain Accept header")
	}
}

func TestAsCurl_POSTWithBody(t *testing.T) {
	req := &protocol.Request{
		Method:             "POST",
		URL:                "https://api.example.com/users",
		Headers:            []protocol.Param{{Key: "Content-Type", Value: "application/json", Enabled: true}},
		Body:               `{"name":"test"}`,
	}

	result := AsCurl(req)
	if !strings.Contains(result, "-X POST") {
		t.Error("should have -X POST")
	}
	if !strings.Contains(result, `-d '{"name":"test"}'`) {
		t.Errorf("should contain body data, got: %s", result)
	}
}

func TestAsCurl_InsecureFlag(t *testing.T) {
	req := &protocol.Request{
		Method:             "GET",
		URL:                "https://self-signed.test/",
		InsecureSkipVerify: true,
	}

	if result := AsCurl(req); !strings.Contains(result, "-k") {
		t.Errorf("unverified request should carry -k, got: %s", result)
	}
}

func TestAsCurl_BearerAuth(t *testing.T) {
	req := &protocol.Request{
		Method:             "GET",
		URL:                "https://api.example.com/me",
		Auth:               &protocol.AuthConfig{Type: "bearer", Token: "mytoken123"},
	}

	if result := AsCurl(req); !strings.Contains(result, "Authorization: Bearer mytoken123") {
		t.Error("should contain Bearer auth header")
	}
}

func TestAsCurl_QueryOrderPreserved(t *testing.T) {
	req := &protocol.Request{
		Method: "GET",
		URL:    "https://api.example.com/search",
		Query: []protocol.Param{
			{Key: "z", Value: "1", Enabled: true},
			{Key: "a", Value: "two words", Enabled: true},
			{Key: "skip", Value: "x", Enabled: false},
		},
	}

	result := AsCurl(req)
	if !strings.Contains(result, "search?z=1&a=two+words") {
		t.Errorf("query should keep row order and escape values, got: %s", result)
	}
	if strings.Contains(result, "skip=") {
		t.Error("disabled rows should be skipped")
	}
}

func TestAsCurl_EscapesSingleQuotes(t *testing.T) {
	req := &protocol.Request{
		Method:             "POST",
		URL:                "https://api.example.com/x",
		Body:               "it's",
	}

	if result := AsCurl(req); !strings.Contains(result, `'it'\''s'`) {
		t.Errorf("single quotes in body should be escaped, got: %s", result)
	}
}
