package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"quiz_admin_console/internal/domain/model"
)

func TestSendAnnouncementPostsExactPayload(t *testing.T) {
	var calls int
	var gotMethod, gotPath string
	var gotBody []byte
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"success":true}`))
	})

	c := NewNotificationsController(client)
	err := c.SendAnnouncement(context.Background(), "tok", model.AnnouncementPayload{
		Title:    "Scheduled maintenance",
		Body:     "The app will be down for an hour tonight.",
		Type:     "system",
		Priority: "high",
		ImageURL: "https://cdn.example.com/banner.png",
	})
	if err != nil {
		t.Fatalf("SendAnnouncement failed: %v", err)
	}

	if calls != 1 {
		t.Errorf("Expected exactly 1 dispatch, got %d", calls)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/v1/admin/notifications/announcement" {
		t.Errorf("Unexpected dispatch %s %s", gotMethod, gotPath)
	}

	var sent map[string]interface{}
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatalf("Body is not JSON: %v", err)
	}
	want := map[string]string{
		"title":    "Scheduled maintenance",
		"body":     "The app will be down for an hour tonight.",
		"type":     "system",
		"priority": "high",
		"imageUrl": "https://cdn.example.com/banner.png",
	}
	for key, value := range want {
		if sent[key] != value {
			t.Errorf("Expected %s=%q in the body, got %v", key, value, sent[key])
		}
	}
	// An empty action URL is omitted, not sent as "".
	if _, present := sent["actionUrl"]; present {
		t.Error("Expected actionUrl to be omitted from the body")
	}
}

func TestSendTargetedPostsRecipients(t *testing.T) {
	var gotPath string
	var gotBody []byte
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"success":true}`))
	})

	c := NewNotificationsController(client)
	err := c.SendTargeted(context.Background(), "tok", model.TargetedNotificationPayload{
		UserIDs:  []string{"u1", "u2"},
		Title:    "Streak bonus",
		Body:     "You earned a bonus.",
		Type:     "earning",
		Priority: "normal",
	})
	if err != nil {
		t.Fatalf("SendTargeted failed: %v", err)
	}

	if gotPath != "/api/v1/admin/notifications/targeted" {
		t.Errorf("Unexpected path %q", gotPath)
	}
	var sent struct {
		UserIDs []string `json:"userIds"`
	}
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatalf("Body is not JSON: %v", err)
	}
	if len(sent.UserIDs) != 2 || sent.UserIDs[0] != "u1" || sent.UserIDs[1] != "u2" {
		t.Errorf("Expected recipients [u1 u2], got %v", sent.UserIDs)
	}
}

func TestNotificationAnalyticsKeepsSnapshotOnFailure(t *testing.T) {
	fail := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"boom"}`))
			return
		}
		w.Write([]byte(`{"analytics":{"totalSent":40,"totalRead":10,"readRate":25}}`))
	})

	c := NewNotificationsController(client)
	if _, err := c.Analytics(context.Background(), "tok"); err != nil {
		t.Fatalf("First load failed: %v", err)
	}

	fail = true
	analytics, err := c.Analytics(context.Background(), "tok")
	if err == nil {
		t.Fatal("Expected an error from the failing fetch")
	}
	if analytics.TotalSent != 40 || analytics.ReadRate != 25 {
		t.Errorf("Expected the last loaded analytics, got %+v", analytics)
	}
}
