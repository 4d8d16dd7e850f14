package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPTimeoutFromEnv(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv(httpTimeoutEnvKey, "")
		if got := httpTimeoutFromEnv(); got != defaultHTTPTimeout {
			t.Fatalf("expected default timeout %v, got %v", defaultHTTPTimeout, got)
		}
	})

	t.Run("duration format", func(t *testing.T) {
		t.Setenv(httpTimeoutEnvKey, "45s")
		if got := httpTimeoutFromEnv(); got != 45*time.Second {
			t.Fatalf("expected 45s timeout, got %v", got)
		}
	})

	t.Run("integer seconds", func(t *testing.T) {
		t.Setenv(httpTimeoutEnvKey, "25")
		if got := httpTimeoutFromEnv(); got != 25*time.Second {
			t.Fatalf("expected 25s timeout, got %v", got)
		}
	})

	t.Run("invalid falls back", func(t *testing.T) {
		t.Setenv(httpTimeoutEnvKey, "invalid")
		if got := httpTimeoutFromEnv(); got != defaultHTTPTimeout {
			t.Fatalf("expected default timeout %v, got %v", defaultHTTPTimeout, got)
		}
	})
}

func TestDecodeErrorReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"persist boards: disk full","code":"persistence_failed","error_code":4006}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.CreateBoard(context.Background(), BoardCreateRequest{Name: "Work"})
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusInternalServerError || apiErr.ErrorCode != 4006 {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
	if !IsPersistenceFailure(err) {
		t.Fatal("expected persistence failure")
	}
	if IsNotFound(err) {
		t.Fatal("did not expect not found")
	}
}

func TestDecodeErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).DeleteBoard(context.Background(), 3)
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestClientPaths(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody MoveRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"moved":true,"from":"todo","to":"done"}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL+"/").MoveItem(context.Background(), 2, MoveRequest{Column: "todo", To: "done", ItemID: "abc"})
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/v1/boards/2/move" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
	if gotBody.ItemID != "abc" || gotBody.Column != "todo" || !resp.Moved {
		t.Fatalf("unexpected round trip: body=%+v resp=%+v", gotBody, resp)
	}
}

func TestEventsURL(t *testing.T) {
	cases := map[string]string{
		"http://127.0.0.1:7345":  "ws://127.0.0.1:7345/v1/events",
		"https://kanban.example": "wss://kanban.example/v1/events",
	}
	for base, want := range cases {
		if got := NewClient(base).EventsURL(); got != want {
			t.Fatalf("%s: expected %s, got %s", base, want, got)
		}
	}
}
