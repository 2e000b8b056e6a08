package controller

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/upstream"
)

// UsersQuery is the users page filter state. Search and status are applied
// client-side over the fetched page, matching the original console.
type UsersQuery struct {
	Search string
	Status string // "", "active", "inactive"
	Page   int
}

type UsersView struct {
	Users      []model.User
	Pagination Pagination
	Query      UsersQuery
}

// Filtered returns the users matching the case-insensitive substring search
// (name or email) and the active/inactive filter.
func (v UsersView) Filtered() []model.User {
	out := make([]model.User, 0, len(v.Users))
	needle := strings.ToLower(v.Query.Search)
	for _, u := range v.Users {
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) {
			continue
		}
		switch v.Query.Status {
		case "active":
			if !u.IsActive {
				continue
			}
		case "inactive":
			if u.IsActive {
				continue
			}
		}
		out = append(out, u)
	}
	return out
}

type usersListResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Users      []model.User `json:"users"`
		Pagination Pagination   `json:"pagination"`
	} `json:"data"`
}

type UsersController struct {
	client   *upstream.Client
	pageSize int

	guard   fetchGuard
	mu      sync.Mutex
	last    UsersView
	hasLast bool
}

func NewUsersController(client *upstream.Client, pageSize int) *UsersController {
	return &UsersController{client: client, pageSize: pageSize}
}

// Load fetches the requested page. On failure the previously fetched data is
// returned alongside the error so the page renders stale rows instead of a
// blank table; the first-ever failure yields the empty view.
func (c *UsersController) Load(ctx context.Context, token string, q UsersQuery) (UsersView, error) {
	q.Page = clampPage(q.Page)
	seq := c.guard.begin()

	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(c.pageSize))

	var resp usersListResponse
	if err := c.client.Get(ctx, token, "/api/v1/admin/users?"+params.Encode(), &resp); err != nil {
		return c.snapshot(q), err
	}

	view := UsersView{Users: resp.Data.Users, Pagination: resp.Data.Pagination, Query: q}
	if view.Pagination.Current == 0 {
		view.Pagination = Pagination{Current: q.Page, Pages: 1, Total: len(resp.Data.Users)}
	}

	if !c.guard.tryApply(seq) {
		return c.snapshot(q), nil
	}
	c.mu.Lock()
	c.last = view
	c.hasLast = true
	c.mu.Unlock()
	return view, nil
}

func (c *UsersController) snapshot(q UsersQuery) UsersView {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasLast {
		return UsersView{Query: q, Pagination: Pagination{Current: 1, Pages: 1}}
	}
	view := c.last
	view.Query = q
	return view
}

func (c *UsersController) Create(ctx context.Context, token string, payload model.CreateUserPayload) error {
	if err := c.client.Post(ctx, token, "/api/v1/admin/users", payload, nil); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (c *UsersController) SetStatus(ctx context.Context, token, userID string, active bool) error {
	path := "/api/v1/admin/users/" + url.PathEscape(userID) + "/status"
	if err := c.client.Put(ctx, token, path, model.UserStatusPayload{IsActive: active}, nil); err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	return nil
}

func (c *UsersController) Delete(ctx context.Context, token, userID string) error {
	path := "/api/v1/admin/users/" + url.PathEscape(userID)
	if err := c.client.Delete(ctx, token, path); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Find returns one user from the current snapshot, used by the delete
// confirmation page to show who is about to be removed.
func (c *UsersController) Find(userID string) (model.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, u := range c.last.Users {
		if u.ID == userID {
			return u, true
		}
	}
	return model.User{}, false
}
