package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/baturalpk/restdeck/internal/protocol"
)

// AsCurl converts a request to a curl command string. Query params and
// headers keep their form order; disabled rows are skipped the same way
// the executor skips them.
func AsCurl(req *protocol.Request) string {
	var parts []string
	parts = append(parts, "curl")

	if req.Method != "GET" {
		parts = append(parts, "-X", req.Method)
	}

	if req.InsecureSkipVerify {
		parts = append(parts, "-k")
	}

	for _, h := range req.Headers {
		if !h.Enabled || h.Key == "" {
			continue
		}
		parts = append(parts, "-H", quote(h.Key+": "+h.Value))
	}

	if req.Auth != nil {
		switch req.Auth.Type {
		case "basic":
			parts = append(parts, "-u", quote(req.Auth.Username+":"+req.Auth.Password))
		case "bearer":
			parts = append(parts, "-H", quote("Authorization: Bearer "+req.Auth.Token))
		}
	}

	if req.Body != "" {
		parts = append(parts, "-d", quote(req.Body))
	}

	parts = append(parts, quote(withQuery(req)))

	return strings.Join(parts, " ")
}

func withQuery(req *protocol.Request) string {
	var pairs []string
	for _, p := range req.Query {
		if !p.Enabled || p.Key == "" {
			continue
		}
		pairs = append(pairs, url.QueryEscape(p.Key)+"="+url.QueryEscape(p.Value))
	}
	if len(pairs) == 0 {
		return req.URL
	}

	sep := "?"
	if strings.Contains(req.URL, "?") {
		sep = "&"
	}
	return req.URL + sep + strings.Join(pairs, "&")
}

func quote(s string) string {
	return fmt.Sprintf("'%s'", strings.ReplaceAll(s, "'", `'\''`))
}
