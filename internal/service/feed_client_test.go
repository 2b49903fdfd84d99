package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestFetchClientsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewFeedClient(WithInitialBackoff(time.Millisecond))
	body, err := client.FetchClients(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchClients() error = %v", err)
	}
	if string(body) != "[]" {
		t.Errorf("body = %q", body)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestFetchClientsGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewFeedClient(WithInitialBackoff(time.Millisecond), WithMaxRetries(2))
	if _, err := client.FetchClients(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestFetchClientsNotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewFeedClient(WithInitialBackoff(time.Millisecond))
	if _, err := client.FetchClients(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestFetchClientsCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewFeedClient(WithInitialBackoff(time.Hour))
	if _, err := client.FetchClients(ctx, srv.URL); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestFetchClientsBodyLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[{"id":1},{"id":2}]`))
	}))
	defer srv.Close()

	client := NewFeedClient(WithInitialBackoff(time.Millisecond), WithMaxBodySize(8))
	if _, err := client.FetchClients(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for oversized feed")
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}

	client = NewFeedClient(WithMaxBodySize(19))
	body, err := client.FetchClients(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchClients() at the limit error = %v", err)
	}
	if len(body) != 19 {
		t.Errorf("len(body) = %d, want 19", len(body))
	}
}
