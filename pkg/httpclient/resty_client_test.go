package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRestyDoerPassesSpecThrough(t *testing.T) {
	var gotQuery, gotHeader, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotHeader = r.Header.Get("X-Test")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	doer := NewRestyDoer()
	resp, err := doer.Do(context.Background(), RequestSpec{
		Method:  http.MethodPost,
		URL:     srv.URL,
		Params:  map[string]string{"q": "1"},
		JSON:    map[string]any{"key": 1},
		Headers: map[string]string{"X-Test": "yes"},
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	defer resp.Body.Close()

	if gotQuery != "1" {
		t.Fatalf("query param not sent, got %q", gotQuery)
	}
	if gotHeader != "yes" {
		t.Fatalf("header not sent, got %q", gotHeader)
	}
	var sent map[string]any
	if err := json.Unmarshal([]byte(gotBody), &sent); err != nil || sent["key"] != float64(1) {
		t.Fatalf("body not marshalled as JSON: %q err=%v", gotBody, err)
	}
	if resp.StatusCode != http.StatusOK || resp.Reason != "OK" {
		t.Fatalf("unexpected status %d reason %q", resp.StatusCode, resp.Reason)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestRestyDoerDoesNotFollowRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/target" {
			t.Fatalf("redirect was followed")
		}
		w.Header().Set("Location", "/target")
		w.WriteHeader(http.StatusFound)
	}))
	defer srv.Close()

	doer := NewRestyDoer()
	resp, err := doer.Do(context.Background(), RequestSpec{Method: http.MethodGet, URL: srv.URL})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 back, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Location"); got != "/target" {
		t.Fatalf("Location header = %q", got)
	}
}
