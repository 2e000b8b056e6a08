package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"quiz_admin_console/internal/app/controller"
	"quiz_admin_console/internal/common"
	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/upstream"
	"quiz_admin_console/internal/web"

	"github.com/go-chi/chi/v5"
)

type SettingsHandler struct {
	settings *controller.SettingsController
	auth     *controller.AuthController
	renderer *web.Renderer
}

func NewSettingsHandler(settings *controller.SettingsController, auth *controller.AuthController, renderer *web.Renderer) *SettingsHandler {
	return &SettingsHandler{settings: settings, auth: auth, renderer: renderer}
}

func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/settings", h.show)
	r.Post("/settings", h.save)
}

type settingsPage struct {
	Settings model.AppSettings
	Tab      string
}

func settingsTab(r *http.Request) string {
	switch tab := r.URL.Query().Get("tab"); tab {
	case "quiz", "notifications", "payments", "security":
		return tab
	default:
		return "general"
	}
}

func (h *SettingsHandler) show(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var errMsg string
	settings, err := h.settings.Load(r.Context(), sess.Token)
	if err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		errMsg = "Failed to load settings. Showing defaults."
	}

	h.renderer.Render(w, r, "settings.html", web.PageData{
		Title:  "Settings",
		Active: "settings",
		Error:  errMsg,
		Data:   settingsPage{Settings: settings, Tab: settingsTab(r)},
	})
}

// save patches the active tab's group onto the current settings document and
// persists the document whole.
func (h *SettingsHandler) save(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}
	tab := settingsTab(r)
	backPath := "/settings?tab=" + tab

	settings, err := h.settings.Load(r.Context(), sess.Token)
	if err != nil && upstream.IsAuthFailure(err) {
		expireSession(w, r, h.auth)
		return
	}
	applySettingsForm(&settings, tab, r.PostForm)

	if err := h.settings.Save(r.Context(), sess.Token, settings); err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		common.RedirectWithError(w, r, backPath, "Failed to save settings")
		return
	}
	common.Redirect(w, r, backPath, "Settings saved successfully")
}

func applySettingsForm(s *model.AppSettings, tab string, values url.Values) {
	switch tab {
	case "general":
		s.General.AppName = values.Get("general.appName")
		s.General.AppDescription = values.Get("general.appDescription")
		s.General.SupportEmail = values.Get("general.supportEmail")
		s.General.MaintenanceMode = formBool(values, "general.maintenanceMode")
		s.General.RegistrationEnabled = formBool(values, "general.registrationEnabled")
	case "quiz":
		s.Quiz.DefaultTimeLimit = formInt(values, "quiz.defaultTimeLimit", s.Quiz.DefaultTimeLimit)
		s.Quiz.MaxQuestionsPerQuiz = formInt(values, "quiz.maxQuestionsPerQuiz", s.Quiz.MaxQuestionsPerQuiz)
		s.Quiz.MinQuestionsPerQuiz = formInt(values, "quiz.minQuestionsPerQuiz", s.Quiz.MinQuestionsPerQuiz)
		s.Quiz.DefaultReward = formFloat(values, "quiz.defaultReward", s.Quiz.DefaultReward)
		s.Quiz.EnableDailyQuiz = formBool(values, "quiz.enableDailyQuiz")
	case "notifications":
		s.Notifications.EnablePushNotifications = formBool(values, "notifications.enablePushNotifications")
		s.Notifications.EnableEmailNotifications = formBool(values, "notifications.enableEmailNotifications")
		s.Notifications.WelcomeMessageEnabled = formBool(values, "notifications.welcomeMessageEnabled")
		s.Notifications.WelcomeMessage = values.Get("notifications.welcomeMessage")
	case "payments":
		s.Payments.MinimumWithdrawal = formFloat(values, "payments.minimumWithdrawal", s.Payments.MinimumWithdrawal)
		s.Payments.WithdrawalFee = formFloat(values, "payments.withdrawalFee", s.Payments.WithdrawalFee)
		s.Payments.ReferralBonus = formFloat(values, "payments.referralBonus", s.Payments.ReferralBonus)
		s.Payments.EnableReferrals = formBool(values, "payments.enableReferrals")
	case "security":
		s.Security.SessionTimeout = formInt(values, "security.sessionTimeout", s.Security.SessionTimeout)
		s.Security.MaxLoginAttempts = formInt(values, "security.maxLoginAttempts", s.Security.MaxLoginAttempts)
		s.Security.PasswordMinLength = formInt(values, "security.passwordMinLength", s.Security.PasswordMinLength)
		s.Security.EnableTwoFactor = formBool(values, "security.enableTwoFactor")
	}
}

// formBool reads a checkbox; an absent key means unchecked.
func formBool(values url.Values, key string) bool {
	return values.Get(key) == "true"
}

// formInt keeps the current value when the input does not parse.
func formInt(values url.Values, key string, current int) int {
	n, err := strconv.Atoi(values.Get(key))
	if err != nil {
		return current
	}
	return n
}

func formFloat(values url.Values, key string, current float64) float64 {
	f, err := strconv.ParseFloat(values.Get(key), 64)
	if err != nil {
		return current
	}
	return f
}
