package controller

import (
	"context"
	"sync"

	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/upstream"
)

type AnalyticsView struct {
	Data  model.Analytics
	Range string
}

type AnalyticsController struct {
	client *upstream.Client

	guard   fetchGuard
	mu      sync.Mutex
	last    AnalyticsView
	hasLast bool
}

func NewAnalyticsController(client *upstream.Client) *AnalyticsController {
	return &AnalyticsController{client: client}
}

// Load fetches platform analytics for the given time range. An unknown range
// falls back to the default before the request is built.
func (c *AnalyticsController) Load(ctx context.Context, token, timeRange string) (AnalyticsView, error) {
	if !model.ValidAnalyticsRange(timeRange) {
		timeRange = model.DefaultAnalyticsRange
	}
	seq := c.guard.begin()

	var data model.Analytics
	if err := c.client.Get(ctx, token, "/api/v1/admin/analytics?range="+timeRange, &data); err != nil {
		return c.snapshot(timeRange), err
	}

	view := AnalyticsView{Data: data, Range: timeRange}
	if !c.guard.tryApply(seq) {
		return c.snapshot(timeRange), nil
	}
	c.mu.Lock()
	c.last = view
	c.hasLast = true
	c.mu.Unlock()
	return view, nil
}

func (c *AnalyticsController) snapshot(timeRange string) AnalyticsView {
	c.mu.Lock()
	defer c.mu.Unlock()
	view := c.last
	view.Range = timeRange
	return view
}
