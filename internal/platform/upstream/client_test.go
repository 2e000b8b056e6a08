package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quiz_admin_console/internal/common"
)

func newClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestGetSetsBearerAndAccept(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			t.Errorf("Missing bearer header: %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Missing accept header: %q", r.Header.Get("Accept"))
		}
		w.Write([]byte(`{"ok":true}`))
	})

	var out struct {
		OK bool `json:"ok"`
	}
	if err := client.Get(context.Background(), "tok-123", "/v", &out); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !out.OK {
		t.Error("Response not decoded")
	}
}

func TestEmptyTokenOmitsAuthorization(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("Authorization header should be absent, got %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{}`))
	})
	if err := client.Get(context.Background(), "", "/login", nil); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
}

func TestAPIErrorFromMessageField(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Question text is required"})
	})

	err := client.Get(context.Background(), "tok", "/x", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Question text is required" {
		t.Errorf("Unexpected APIError: %+v", apiErr)
	}
}

func TestAPIErrorFromErrorField(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Email already in use"})
	})

	err := client.Post(context.Background(), "tok", "/x", map[string]string{}, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.Message != "Email already in use" {
		t.Errorf("Unexpected message: %q", apiErr.Message)
	}
}

func TestAPIErrorFallsBackToStatusText(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("not json"))
	})

	err := client.Get(context.Background(), "tok", "/x", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Errorf("Unexpected message: %q", apiErr.Message)
	}
}

func TestIsAuthFailure(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Token expired"})
	})

	err := client.Get(context.Background(), "tok", "/x", nil)
	if !IsAuthFailure(err) {
		t.Errorf("Expected an auth failure, got %v", err)
	}

	if IsAuthFailure(&APIError{Status: http.StatusForbidden}) {
		t.Error("403 is not an auth failure")
	}
	if IsAuthFailure(errors.New("dial tcp: refused")) {
		t.Error("transport errors are not auth failures")
	}
}

func TestTransportErrorWrapsErrUpstream(t *testing.T) {
	// Point at a closed server.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := New(srv.URL, time.Second)

	err := client.Get(context.Background(), "tok", "/x", nil)
	if !errors.Is(err, common.ErrUpstream) {
		t.Errorf("Expected ErrUpstream, got %v", err)
	}
}

func TestGetRawStreamsBody(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("a,b\n1,2\n"))
	})

	body, contentType, err := client.GetRaw(context.Background(), "tok", "/export")
	if err != nil {
		t.Fatalf("GetRaw failed: %v", err)
	}
	defer body.Close()

	if contentType != "text/csv" {
		t.Errorf("Unexpected content type: %q", contentType)
	}
	data, _ := io.ReadAll(body)
	if string(data) != "a,b\n1,2\n" {
		t.Errorf("Unexpected body: %q", data)
	}
}

func TestDeleteSendsNoBody(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE, got %s", r.Method)
		}
		if r.ContentLength > 0 {
			t.Error("DELETE should carry no body")
		}
		w.WriteHeader(http.StatusNoContent)
	})
	if err := client.Delete(context.Background(), "tok", "/x/1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}
