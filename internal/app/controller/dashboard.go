package controller

import (
	"context"
	"sync"

	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/upstream"
)

const dashboardStatsPath = "/api/v1/admin/dashboard-stats"

type DashboardController struct {
	client *upstream.Client

	guard   fetchGuard
	mu      sync.Mutex
	last    model.DashboardStats
	hasLast bool
}

func NewDashboardController(client *upstream.Client) *DashboardController {
	return &DashboardController{client: client}
}

// Load fetches the aggregate counts for the four summary cards. Fields the
// server omits stay zero, which is exactly what the cards show.
func (c *DashboardController) Load(ctx context.Context, token string) (model.DashboardStats, error) {
	seq := c.guard.begin()

	var stats model.DashboardStats
	if err := c.client.Get(ctx, token, dashboardStatsPath, &stats); err != nil {
		return c.snapshot(), err
	}

	if !c.guard.tryApply(seq) {
		return c.snapshot(), nil
	}
	c.mu.Lock()
	c.last = stats
	c.hasLast = true
	c.mu.Unlock()
	return stats, nil
}

func (c *DashboardController) snapshot() model.DashboardStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
