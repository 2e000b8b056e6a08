package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"quiz_admin_console/internal/common"
	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/session"
	"quiz_admin_console/internal/platform/upstream"

	"github.com/google/uuid"
)

const adminLoginPath = "/api/v1/admin/login"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool `json:"success"`
	User    struct {
		ID    string `json:"_id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	} `json:"user"`
	Token string `json:"token"`
}

// AuthController drives the session gate: anonymous -> authenticating on
// submit, authenticated on a 2xx admin response, rejected otherwise.
type AuthController struct {
	client   *upstream.Client
	sessions session.Store
	ttl      time.Duration
}

func NewAuthController(client *upstream.Client, sessions session.Store, ttl time.Duration) *AuthController {
	return &AuthController{client: client, sessions: sessions, ttl: ttl}
}

// Login validates credentials against the admin login endpoint and creates a
// server-side session. Any non-2xx answer, a response without success, and a
// non-admin role all land in the rejected state.
func (c *AuthController) Login(ctx context.Context, email, password string) (*model.Session, error) {
	if email == "" || password == "" {
		return nil, common.ErrBadRequest
	}

	var resp loginResponse
	err := c.client.Post(ctx, "", adminLoginPath, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			slog.Info("admin login rejected", "email", email, "status", apiErr.Status)
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	if !resp.Success || resp.Token == "" {
		return nil, common.ErrUnauthorized
	}
	if resp.User.Role != model.RoleAdmin {
		slog.Info("admin login denied for non-admin role", "email", email, "role", resp.User.Role)
		return nil, common.ErrForbidden
	}

	sess := &model.Session{
		ID:        uuid.NewString(),
		UserID:    resp.User.ID,
		Email:     resp.User.Email,
		Name:      resp.User.Name,
		Role:      resp.User.Role,
		Token:     resp.Token,
		CreatedAt: time.Now(),
	}
	if err := c.sessions.Save(ctx, sess, c.ttl); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return sess, nil
}

// Logout destroys the server-side session. Also invoked when any upstream
// call answers 401, treating the stored token as no longer valid.
func (c *AuthController) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return c.sessions.Delete(ctx, sessionID)
}
