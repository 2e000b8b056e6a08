package model

import (
	"time"
)

// Notification vocabularies shared by the announcement and targeted forms.
var (
	NotificationTypes      = []string{"system", "quiz", "earning", "update"}
	NotificationPriorities = []string{"low", "normal", "high", "urgent"}
)

// AnnouncementPayload is the fire-and-forget broadcast dispatch body.
type AnnouncementPayload struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Type      string `json:"type"`
	Priority  string `json:"priority"`
	ImageURL  string `json:"imageUrl,omitempty"`
	ActionURL string `json:"actionUrl,omitempty"`
}

// TargetedNotificationPayload carries an explicit recipient list.
type TargetedNotificationPayload struct {
	UserIDs   []string `json:"userIds"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Type      string   `json:"type"`
	Priority  string   `json:"priority"`
	ImageURL  string   `json:"imageUrl,omitempty"`
	ActionURL string   `json:"actionUrl,omitempty"`
}

type NotificationCounters struct {
	Sent int `json:"sent"`
	Read int `json:"read"`
}

type RecentNotification struct {
	ID              string    `json:"_id"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	Priority        string    `json:"priority"`
	CreatedAt       time.Time `json:"createdAt"`
	ReadCount       int       `json:"readCount"`
	TotalRecipients int       `json:"totalRecipients"`
}

// NotificationAnalytics is the read-back aggregate for the analytics tab.
type NotificationAnalytics struct {
	TotalSent           int                             `json:"totalSent"`
	TotalRead           int                             `json:"totalRead"`
	ReadRate            float64                         `json:"readRate"`
	ByType              map[string]NotificationCounters `json:"byType"`
	ByPriority          map[string]NotificationCounters `json:"byPriority"`
	RecentNotifications []RecentNotification            `json:"recentNotifications"`
}
