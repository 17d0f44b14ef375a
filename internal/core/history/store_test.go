package history

import (
	"testing"
	"time"
)

func TestStore_AppendAndList(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	id1, err := store.Append(Entry{
		Method:     "GET",
		URL:        "https://api.example.com/users",
		Status:     200,
		StatusText: "OK",
		Size:       1024,
		Time:       150 * time.Millisecond,
		Timestamp:  time.Now(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if id1 == 0 {
		t.Error("expected non-zero ID")
	}

	id2, err := store.Append(Entry{
		Method:     "POST",
		URL:        "https://api.example.com/users",
		Status:     201,
		StatusText: "Created",
		Size:       512,
		Time:       200 * time.Millisecond,
		Body:       `{"id":1}`,
		Headers:    `{"Content-Type":"application/json"}`,
		Timestamp:  time.Now(),
	})
	if err != nil {
		t.Fatal(err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Insertion order, oldest first.
	if entries[0].ID != id1 || entries[1].ID != id2 {
		t.Errorf("expected insertion order [%d %d], got [%d %d]", id1, id2, entries[0].ID, entries[1].ID)
	}
	if entries[1].Body != `{"id":1}` {
		t.Errorf("body not round-tripped: %q", entries[1].Body)
	}
}

func TestStore_CompletionOrder(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	// Submitted A, B, C; completed B, A, C. Append order follows completion.
	for _, url := range []string{"http://example.com/b", "http://example.com/a", "http://example.com/c"} {
		if _, err := store.Append(Entry{Method: "GET", URL: url, Status: 200, StatusText: "OK", Timestamp: time.Now()}); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"http://example.com/b", "http://example.com/a", "http://example.com/c"}
	for i, w := range want {
		if entries[i].URL != w {
			t.Errorf("entry %d: expected %s, got %s", i, w, entries[i].URL)
		}
	}
}

func TestStore_NoDeduplication(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for i := 0; i < 3; i++ {
		if _, err := store.Append(Entry{Method: "GET", URL: "http://example.com/", Status: 200, StatusText: "OK", Timestamp: time.Now()}); err != nil {
			t.Fatal(err)
		}
	}

	n, err := store.Len()
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("identical requests must all be kept, got %d entries", n)
	}
}

func TestStore_Get(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	id, err := store.Append(Entry{Method: "GET", URL: "https://api.example.com/users", Status: 200, StatusText: "OK", Timestamp: time.Now()})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Append(Entry{Method: "GET", URL: "https://other.test/", Status: 404, StatusText: "Not Found", Timestamp: time.Now()}); err != nil {
		t.Fatal(err)
	}

	e, err := store.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if e.URL != "https://api.example.com/users" {
		t.Errorf("unexpected entry: %+v", e)
	}

	if _, err := store.Get(9999); err == nil {
		t.Error("expected error for missing entry")
	}
}

func TestEntryRecordRebuildsMappings(t *testing.T) {
	e := Entry{
		Status:     200,
		StatusText: "OK",
		Body:       "hello",
		Size:       5,
		Headers:    `{"Content-Type":"text/plain"}`,
		Cookies:    `{"a":"1"}`,
	}

	rec := e.Record()
	if rec.Status != 200 || rec.Body != "hello" || rec.Size != 5 {
		t.Errorf("scalar fields not carried: %+v", rec)
	}
	if rec.Headers["Content-Type"] != "text/plain" {
		t.Errorf("headers not decoded: %+v", rec.Headers)
	}
	if rec.Cookies["a"] != "1" {
		t.Errorf("cookies not decoded: %+v", rec.Cookies)
	}

	empty := Entry{Status: 0, StatusText: "Error"}.Record()
	if empty.Headers != nil || empty.Cookies != nil {
		t.Error("empty mappings should stay nil")
	}
}
