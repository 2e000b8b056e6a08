package api

import (
	"net/http"
	"time"

	"quiz_admin_console/internal/api/handler"
	"quiz_admin_console/internal/api/middleware"
	"quiz_admin_console/internal/app/controller"
	"quiz_admin_console/internal/common/security"
	"quiz_admin_console/internal/platform/config"
	"quiz_admin_console/internal/platform/metrics"
	"quiz_admin_console/internal/platform/session"
	"quiz_admin_console/internal/web"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/gorilla/csrf"
)

type Controllers struct {
	Auth          *controller.AuthController
	Dashboard     *controller.DashboardController
	Users         *controller.UsersController
	Quizzes       *controller.QuizzesController
	Transactions  *controller.TransactionsController
	Notifications *controller.NotificationsController
	Analytics     *controller.AnalyticsController
	Settings      *controller.SettingsController
}

func NewRouter(renderer *web.Renderer, sessions session.Store, c Controllers) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(metrics.Middleware)

	// The session cookie carries a signed reference to the server-side
	// session; the verifier decodes it and puts the claims in context.
	r.Use(jwtauth.Verify(security.TokenAuth, middleware.TokenFromSessionCookie))
	r.Use(csrf.Protect(
		config.AppConfig.CSRFKey,
		csrf.Secure(config.AppConfig.SecureMode),
		csrf.Path("/"),
	))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Handle("/static/*", web.StaticHandler())

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})

	authHandler := handler.NewAuthHandler(c.Auth, renderer)
	authHandler.RegisterPublicRoutes(r)

	// Every console page sits behind the session gate.
	r.Group(func(pr chi.Router) {
		gate := middleware.NewSessionGate(sessions)
		pr.Use(gate.Authenticator)

		authHandler.RegisterProtectedRoutes(pr)
		handler.NewDashboardHandler(c.Dashboard, c.Auth, renderer).RegisterRoutes(pr)
		handler.NewUsersHandler(c.Users, c.Auth, renderer).RegisterRoutes(pr)
		handler.NewQuizHandler(c.Quizzes, c.Auth, renderer).RegisterRoutes(pr)
		handler.NewTransactionsHandler(c.Transactions, c.Auth, renderer).RegisterRoutes(pr)
		handler.NewNotificationsHandler(c.Notifications, c.Dashboard, c.Auth, renderer).RegisterRoutes(pr)
		handler.NewAnalyticsHandler(c.Analytics, c.Auth, renderer).RegisterRoutes(pr)
		handler.NewSettingsHandler(c.Settings, c.Auth, renderer).RegisterRoutes(pr)
	})

	return r
}
