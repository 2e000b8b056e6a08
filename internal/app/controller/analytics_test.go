package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"quiz_admin_console/internal/domain/model"
)

func TestAnalyticsLoadValidatesRange(t *testing.T) {
	var gotRange string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotRange = r.URL.Query().Get("range")
		json.NewEncoder(w).Encode(model.Analytics{
			Overview: model.AnalyticsOverview{TotalUsers: 100, ActiveUsers: 25},
		})
	})

	c := NewAnalyticsController(client)

	testCases := []struct {
		in, want string
	}{
		{"7d", "7d"},
		{"30d", "30d"},
		{"", "7d"},
		{"1y", "7d"},
		{"90d", "90d"},
	}
	for _, tc := range testCases {
		view, err := c.Load(context.Background(), "tok", tc.in)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", tc.in, err)
		}
		if gotRange != tc.want {
			t.Errorf("Load(%q) requested range %q, want %q", tc.in, gotRange, tc.want)
		}
		if view.Range != tc.want {
			t.Errorf("Load(%q) view range %q, want %q", tc.in, view.Range, tc.want)
		}
	}
}

func TestActiveUserShare(t *testing.T) {
	a := model.Analytics{Overview: model.AnalyticsOverview{TotalUsers: 200, ActiveUsers: 50}}
	if got := a.ActiveUserShare(); got != 25 {
		t.Errorf("ActiveUserShare() = %v, want 25", got)
	}

	empty := model.Analytics{}
	if got := empty.ActiveUserShare(); got != 0 {
		t.Errorf("ActiveUserShare() on empty = %v, want 0", got)
	}
}
