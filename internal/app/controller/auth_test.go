package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"quiz_admin_console/internal/common"
	"quiz_admin_console/internal/testutil"
)

func loginUpstream(t *testing.T, role string, status int) *AuthController {
	t.Helper()
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/admin/login" || r.Method != http.MethodPost {
			t.Errorf("Login hit %s %s", r.Method, r.URL.Path)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"user": map[string]string{
				"_id":   "u1",
				"email": "admin@example.com",
				"name":  "Admin",
				"role":  role,
			},
			"token": "bearer-abc",
		})
	})
	return NewAuthController(client, testutil.NewMemoryStore(), time.Hour)
}

func TestLoginSuccess(t *testing.T) {
	store := testutil.NewMemoryStore()
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "admin@example.com" || req.Password != "pw123456" {
			t.Errorf("Unexpected credentials: %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"user":    map[string]string{"_id": "u1", "email": req.Email, "name": "Admin", "role": "admin"},
			"token":   "bearer-abc",
		})
	})

	c := NewAuthController(client, store, time.Hour)
	sess, err := c.Login(context.Background(), "admin@example.com", "pw123456")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if sess.Token != "bearer-abc" || sess.Role != "admin" || sess.UserID != "u1" {
		t.Errorf("Unexpected session: %+v", sess)
	}
	if sess.ID == "" {
		t.Error("Session ID should be generated")
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 stored session, got %d", store.Len())
	}

	// The stored session must be findable by its ID.
	found, err := store.Find(context.Background(), sess.ID)
	if err != nil || found.Token != "bearer-abc" {
		t.Errorf("Stored session not retrievable: %v %+v", err, found)
	}
}

func TestLoginEmptyCredentials(t *testing.T) {
	c := loginUpstream(t, "admin", http.StatusOK)
	if _, err := c.Login(context.Background(), "", "pw"); !errors.Is(err, common.ErrBadRequest) {
		t.Errorf("Expected ErrBadRequest, got %v", err)
	}
	if _, err := c.Login(context.Background(), "a@b.c", ""); !errors.Is(err, common.ErrBadRequest) {
		t.Errorf("Expected ErrBadRequest, got %v", err)
	}
}

func TestLoginRejectedCredentials(t *testing.T) {
	c := loginUpstream(t, "admin", http.StatusUnauthorized)
	if _, err := c.Login(context.Background(), "a@b.c", "wrong"); !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized, got %v", err)
	}
}

func TestLoginNonAdminRole(t *testing.T) {
	c := loginUpstream(t, "user", http.StatusOK)
	if _, err := c.Login(context.Background(), "user@example.com", "pw123456"); !errors.Is(err, common.ErrForbidden) {
		t.Errorf("Expected ErrForbidden, got %v", err)
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	store := testutil.NewMemoryStore()
	sess := testutil.AdminSession(t, store)

	c := NewAuthController(nil, store, time.Hour)
	if err := c.Logout(context.Background(), sess.ID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Expected session to be deleted, store has %d", store.Len())
	}

	// Logging out an empty session ID is a no-op.
	if err := c.Logout(context.Background(), ""); err != nil {
		t.Errorf("Empty logout should succeed, got %v", err)
	}
}
