package model

// AnalyticsRanges are the accepted values of the analytics range selector.
var AnalyticsRanges = []string{"1d", "7d", "30d", "90d"}

const DefaultAnalyticsRange = "7d"

// ValidAnalyticsRange reports whether r is one of the accepted ranges.
func ValidAnalyticsRange(r string) bool {
	for _, v := range AnalyticsRanges {
		if v == r {
			return true
		}
	}
	return false
}

type AnalyticsOverview struct {
	TotalUsers      int     `json:"totalUsers"`
	ActiveUsers     int     `json:"activeUsers"`
	TotalQuizzes    int     `json:"totalQuizzes"`
	TotalEarnings   float64 `json:"totalEarnings"`
	UserGrowth      float64 `json:"userGrowth"`
	QuizCompletions int     `json:"quizCompletions"`
}

type UserStats struct {
	Daily   int `json:"daily"`
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type QuizStats struct {
	TotalQuestions    int             `json:"totalQuestions"`
	AverageScore      float64         `json:"averageScore"`
	PopularCategories []CategoryCount `json:"popularCategories"`
}

type EarningsStats struct {
	TotalPaid              float64 `json:"totalPaid"`
	PendingPayouts         float64 `json:"pendingPayouts"`
	AverageEarningsPerUser float64 `json:"averageEarningsPerUser"`
}

type Analytics struct {
	Overview      AnalyticsOverview `json:"overview"`
	UserStats     UserStats         `json:"userStats"`
	QuizStats     QuizStats         `json:"quizStats"`
	EarningsStats EarningsStats     `json:"earningsStats"`
}

// ActiveUserShare is the active/total percentage shown on the overview card.
func (a Analytics) ActiveUserShare() float64 {
	if a.Overview.TotalUsers == 0 {
		return 0
	}
	return float64(a.Overview.ActiveUsers) / float64(a.Overview.TotalUsers) * 100
}
