package controller

import (
	"context"
	"fmt"
	"sync"

	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/upstream"
)

const (
	announcementPath          = "/api/v1/admin/notifications/announcement"
	targetedNotificationPath  = "/api/v1/admin/notifications/targeted"
	notificationAnalyticsPath = "/api/v1/admin/notifications/analytics"
)

type notificationAnalyticsResponse struct {
	Analytics model.NotificationAnalytics `json:"analytics"`
}

type NotificationsController struct {
	client *upstream.Client

	guard   fetchGuard
	mu      sync.Mutex
	last    model.NotificationAnalytics
	hasLast bool
}

func NewNotificationsController(client *upstream.Client) *NotificationsController {
	return &NotificationsController{client: client}
}

// Analytics fetches the dispatch aggregates for the analytics tab.
func (c *NotificationsController) Analytics(ctx context.Context, token string) (model.NotificationAnalytics, error) {
	seq := c.guard.begin()

	var resp notificationAnalyticsResponse
	if err := c.client.Get(ctx, token, notificationAnalyticsPath, &resp); err != nil {
		return c.snapshot(), err
	}

	if !c.guard.tryApply(seq) {
		return c.snapshot(), nil
	}
	c.mu.Lock()
	c.last = resp.Analytics
	c.hasLast = true
	c.mu.Unlock()
	return resp.Analytics, nil
}

func (c *NotificationsController) snapshot() model.NotificationAnalytics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// SendAnnouncement dispatches a broadcast. Fire and forget: success means the
// admin API accepted the payload.
func (c *NotificationsController) SendAnnouncement(ctx context.Context, token string, payload model.AnnouncementPayload) error {
	if err := c.client.Post(ctx, token, announcementPath, payload, nil); err != nil {
		return fmt.Errorf("failed to send announcement: %w", err)
	}
	return nil
}

func (c *NotificationsController) SendTargeted(ctx context.Context, token string, payload model.TargetedNotificationPayload) error {
	if err := c.client.Post(ctx, token, targetedNotificationPath, payload, nil); err != nil {
		return fmt.Errorf("failed to send targeted notification: %w", err)
	}
	return nil
}
