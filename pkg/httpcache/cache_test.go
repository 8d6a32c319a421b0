package httpcache

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCacheGetSet(t *testing.T) {
	c := New(100, time.Hour, nil)
	if _, _, ok := c.Get("https://example.com/a"); ok {
		t.Fatal("unexpected hit on empty cache")
	}
	c.Set("https://example.com/a", []byte("body"), `"v1"`)
	data, etag, ok := c.Get("https://example.com/a")
	if !ok || string(data) != "body" || etag != `"v1"` {
		t.Errorf("Get = %q, %q, %v", data, etag, ok)
	}
}

func TestKeyHidesURL(t *testing.T) {
	k := Key("https://example.com/?key=secret")
	if len(k) != 64 {
		t.Errorf("key length = %d, want 64 hex chars", len(k))
	}
	if k == Key("https://example.com/?key=other") {
		t.Error("different URLs share a key")
	}
}

func TestClientCachesSuccessfulGets(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, "hello")
	}))
	defer srv.Close()

	client := NewClient(New(10, time.Hour, nil), srv.Client(), nil)

	for i := range 3 {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/ok", http.NoBody)
		if err != nil {
			t.Fatal(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if string(body) != "hello" {
			t.Errorf("request %d body = %q", i, body)
		}
		if i > 0 && resp.Header.Get("X-From-Cache") != "true" {
			t.Errorf("request %d not served from cache", i)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hit %d times, want 1", got)
	}

	for range 2 {
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/missing", http.NoBody)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d", resp.StatusCode)
		}
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("errors must not be cached: server hit %d times, want 3", got)
	}
}

func TestClientCacheableRule(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			_, _ = io.WriteString(w, `{"status":"busy"}`)
			return
		}
		_, _ = io.WriteString(w, `{"status":"done"}`)
	}))
	defer srv.Close()

	done := func(status int, body []byte) bool {
		return status == http.StatusOK && strings.Contains(string(body), `"done"`)
	}
	client := NewClient(New(10, time.Hour, nil), srv.Client(), nil, WithCacheable(done))

	var bodies []string
	for range 3 {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/job", http.NoBody)
		if err != nil {
			t.Fatal(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		bodies = append(bodies, string(body))
	}

	want := []string{`{"status":"busy"}`, `{"status":"done"}`, `{"status":"done"}`}
	for i := range want {
		if bodies[i] != want[i] {
			t.Errorf("request %d body = %q, want %q", i, bodies[i], want[i])
		}
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("server hit %d times, want 2 (rejected body refetched, accepted body cached)", got)
	}
}

func TestClientWithoutCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	client := NewClient(nil, srv.Client(), nil)
	for range 2 {
		req, _ := http.NewRequest(http.MethodGet, srv.URL, http.NoBody)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		_ = resp.Body.Close()
	}
	if hits.Load() != 2 {
		t.Errorf("server hit %d times, want 2", hits.Load())
	}
}

func TestClientSharesConcurrentMisses(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		time.Sleep(50 * time.Millisecond)
		_, _ = io.WriteString(w, "slow")
	}))
	defer srv.Close()

	client := NewClient(New(10, time.Hour, nil), srv.Client(), nil)

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, err := http.NewRequest(http.MethodGet, srv.URL+"/tz", http.NoBody)
			if err != nil {
				errs <- err
				return
			}
			resp, err := client.Do(req)
			if err != nil {
				errs <- err
				return
			}
			body, err := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			if err != nil {
				errs <- err
				return
			}
			if string(body) != "slow" {
				errs <- fmt.Errorf("body = %q", body)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hit %d times, want 1", got)
	}
}
