package model

// AppSettings is fetched whole, edited field-by-field, and persisted whole.
type AppSettings struct {
	General       GeneralSettings      `json:"general"`
	Quiz          QuizSettings         `json:"quiz"`
	Notifications NotificationSettings `json:"notifications"`
	Payments      PaymentSettings      `json:"payments"`
	Security      SecuritySettings     `json:"security"`
}

type GeneralSettings struct {
	AppName             string `json:"appName"`
	AppDescription      string `json:"appDescription"`
	SupportEmail        string `json:"supportEmail"`
	MaintenanceMode     bool   `json:"maintenanceMode"`
	RegistrationEnabled bool   `json:"registrationEnabled"`
}

type QuizSettings struct {
	DefaultTimeLimit    int     `json:"defaultTimeLimit"`
	MaxQuestionsPerQuiz int     `json:"maxQuestionsPerQuiz"`
	MinQuestionsPerQuiz int     `json:"minQuestionsPerQuiz"`
	DefaultReward       float64 `json:"defaultReward"`
	EnableDailyQuiz     bool    `json:"enableDailyQuiz"`
}

type NotificationSettings struct {
	EnablePushNotifications  bool   `json:"enablePushNotifications"`
	EnableEmailNotifications bool   `json:"enableEmailNotifications"`
	WelcomeMessageEnabled    bool   `json:"welcomeMessageEnabled"`
	WelcomeMessage           string `json:"welcomeMessage"`
}

type PaymentSettings struct {
	MinimumWithdrawal float64 `json:"minimumWithdrawal"`
	WithdrawalFee     float64 `json:"withdrawalFee"`
	ReferralBonus     float64 `json:"referralBonus"`
	EnableReferrals   bool    `json:"enableReferrals"`
}

type SecuritySettings struct {
	SessionTimeout    int  `json:"sessionTimeout"`
	MaxLoginAttempts  int  `json:"maxLoginAttempts"`
	EnableTwoFactor   bool `json:"enableTwoFactor"`
	PasswordMinLength int  `json:"passwordMinLength"`
}

// DefaultSettings is rendered when the settings fetch fails, so the form
// still comes up editable instead of blank.
func DefaultSettings() AppSettings {
	return AppSettings{
		General: GeneralSettings{
			AppName:             "TBG Quiz App",
			AppDescription:      "Earn money by playing quizzes",
			SupportEmail:        "support@tbgquiz.com",
			MaintenanceMode:     false,
			RegistrationEnabled: true,
		},
		Quiz: QuizSettings{
			DefaultTimeLimit:    30,
			MaxQuestionsPerQuiz: 20,
			MinQuestionsPerQuiz: 5,
			DefaultReward:       1.0,
			EnableDailyQuiz:     true,
		},
		Notifications: NotificationSettings{
			EnablePushNotifications:  true,
			EnableEmailNotifications: true,
			WelcomeMessageEnabled:    true,
			WelcomeMessage:           "Welcome to TBG Quiz! Start earning by playing quizzes.",
		},
		Payments: PaymentSettings{
			MinimumWithdrawal: 10.0,
			WithdrawalFee:     0.5,
			ReferralBonus:     5.0,
			EnableReferrals:   true,
		},
		Security: SecuritySettings{
			SessionTimeout:    24,
			MaxLoginAttempts:  5,
			EnableTwoFactor:   false,
			PasswordMinLength: 8,
		},
	}
}
