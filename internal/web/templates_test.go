package web

import (
	"html/template"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quiz_admin_console/internal/app/controller"
	"quiz_admin_console/internal/app/form"
	"quiz_admin_console/internal/domain/model"
)

// Every page template is executed against the data shape its handler passes,
// so a renamed field or a typo in a template fails here instead of in
// production.
func TestRenderAllPages(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}

	user := model.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: "user", IsActive: true, CreatedAt: time.Now()}
	question := model.QuizQuestion{
		ID: "q1", Question: "2+2?", Options: []string{"1", "2", "3", "4"},
		CorrectAnswerIndex: 3, Category: "general", Difficulty: model.DifficultyEasy,
		Reward: 5, TimeLimit: 30, IsActive: true, CreatedAt: time.Now(),
	}
	transaction := model.Transaction{
		ID: "t1", User: model.TransactionUser{Name: "Alice", Email: "alice@example.com"},
		Type: "quiz_reward", Amount: 2.5, Status: model.TransactionCompleted, CreatedAt: time.Now(),
	}

	pages := []struct {
		page string
		data interface{}
		want string
	}{
		{
			page: "login.html",
			data: struct{ Email string }{Email: "admin@example.com"},
			want: "admin@example.com",
		},
		{
			page: "dashboard.html",
			data: model.DashboardStats{TotalUsers: 1234, TotalQuizzes: 56, TotalEarnings: 789.5, ActiveUsers: 321},
			want: "1234",
		},
		{
			page: "users.html",
			data: struct {
				View     controller.UsersView
				Filtered []model.User
			}{
				View: controller.UsersView{
					Users:      []model.User{user},
					Pagination: controller.Pagination{Current: 1, Pages: 2, Total: 15},
					Query:      controller.UsersQuery{Search: "ali"},
				},
				Filtered: []model.User{user},
			},
			want: "alice@example.com",
		},
		{
			page: "user_form.html",
			data: struct {
				Form   form.UserForm
				Errors form.Errors
			}{Form: form.NewUserForm(), Errors: form.Errors{"email": "Email is invalid"}},
			want: "Email is invalid",
		},
		{
			page: "confirm_delete.html",
			data: struct {
				Heading     string
				Message     string
				ConfirmPath string
				CancelPath  string
			}{Heading: "Delete User", Message: "Delete Alice?", ConfirmPath: "/users/u1/delete", CancelPath: "/users"},
			want: "Delete Alice?",
		},
		{
			page: "quizzes.html",
			data: struct {
				View       controller.QuizzesView
				Categories []string
			}{
				View: controller.QuizzesView{
					Questions:  []model.QuizQuestion{question},
					Pagination: controller.Pagination{Current: 1, Pages: 1, Total: 1},
				},
				Categories: model.QuestionCategories,
			},
			want: "2+2?",
		},
		{
			page: "quiz_form.html",
			data: struct {
				Form       form.QuizForm
				Errors     form.Errors
				Categories []string
				ActionPath string
				Editing    bool
			}{
				Form:       form.QuizFormFromQuestion(question),
				Categories: model.QuestionCategories,
				ActionPath: "/quizzes/q1/edit",
				Editing:    true,
			},
			want: "/quizzes/q1/edit",
		},
		{
			page: "transactions.html",
			data: struct {
				View  controller.TransactionsView
				Types []string
			}{
				View: controller.TransactionsView{
					Transactions: []model.Transaction{transaction},
					Stats:        model.TransactionStats{TotalTransactions: 9, TotalAmount: 99.5},
					Pagination:   controller.Pagination{Current: 1, Pages: 1, Total: 9},
				},
				Types: model.TransactionTypes,
			},
			want: "Quiz Reward",
		},
		{
			page: "notifications.html",
			data: struct {
				Tab                string
				Stats              model.DashboardStats
				Analytics          model.NotificationAnalytics
				Announcement       form.AnnouncementForm
				AnnouncementErrors form.Errors
				Targeted           form.TargetedNotificationForm
				TargetedErrors     form.Errors
			}{
				Tab:          "announcement",
				Stats:        model.DashboardStats{TotalUsers: 10, ActiveUsers: 5, TotalNotifications: 3},
				Announcement: form.AnnouncementForm{Title: "Maintenance", Body: "**Downtime** tonight", Type: "system", Priority: "high"},
				Targeted:     form.NewTargetedNotificationForm(),
			},
			// The markdown preview renders bold text as HTML.
			want: "<strong>Downtime</strong>",
		},
		{
			page: "analytics.html",
			data: controller.AnalyticsView{
				Data: model.Analytics{
					Overview: model.AnalyticsOverview{TotalUsers: 100, ActiveUsers: 40},
				},
				Range: "7d",
			},
			want: "7 Days",
		},
		{
			page: "settings.html",
			data: struct {
				Settings model.AppSettings
				Tab      string
			}{Settings: model.DefaultSettings(), Tab: "general"},
			want: "TBG Quiz App",
		},
	}

	for _, tc := range pages {
		t.Run(tc.page, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			w := httptest.NewRecorder()
			renderer.Render(w, req, tc.page, PageData{Title: "Test", Data: tc.data})

			if w.Code != 200 {
				t.Fatalf("Render answered %d: %s", w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tc.want) {
				t.Errorf("Expected %q in the rendered page", tc.want)
			}
		})
	}
}

func TestRenderUnknownPage(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	renderer.Render(w, req, "nope.html", PageData{})
	if w.Code != 500 {
		t.Errorf("Expected 500 for an unknown template, got %d", w.Code)
	}
}

func TestRenderMarkdownEscapesRawHTML(t *testing.T) {
	render := funcMap["renderMarkdown"].(func(string) template.HTML)

	out := string(render("**bold** and <script>alert(1)</script>"))
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("Expected markdown emphasis, got %q", out)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("Raw HTML must stay escaped, got %q", out)
	}
}
