package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort string
	JWTKey     []byte
	SessionTTL time.Duration

	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CSRFKey    []byte
	CookieName string
	SecureMode bool

	UsersPageSize        int
	QuestionsPageSize    int
	TransactionsPageSize int
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		ListenPort: getEnv("CONSOLE_PORT", "8090"),
		JWTKey:     []byte(getEnv("SESSION_JWT_SECRET", "defaultsecret")),
		SessionTTL: time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 24)) * time.Hour,

		UpstreamBaseURL: getEnv("UPSTREAM_API_URL", "http://localhost:8080"),
		UpstreamTimeout: time.Duration(getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 30)) * time.Second,

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		CSRFKey:    []byte(getEnv("CSRF_KEY", "0123456789abcdef0123456789abcdef")),
		CookieName: getEnv("SESSION_COOKIE_NAME", "admin_session"),
		SecureMode: getEnvAsBool("SECURE_COOKIES", false),

		UsersPageSize:        getEnvAsInt("USERS_PAGE_SIZE", 10),
		QuestionsPageSize:    getEnvAsInt("QUESTIONS_PAGE_SIZE", 20),
		TransactionsPageSize: getEnvAsInt("TRANSACTIONS_PAGE_SIZE", 20),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
