package model

// DashboardStats are aggregate counts for the landing page cards. Absent
// fields decode to zero, which is also what the cards render.
type DashboardStats struct {
	TotalUsers         int     `json:"totalUsers"`
	TotalQuizzes       int     `json:"totalQuizzes"`
	TotalEarnings      float64 `json:"totalEarnings"`
	ActiveUsers        int     `json:"activeUsers"`
	TotalNotifications int     `json:"totalNotifications"`
}
