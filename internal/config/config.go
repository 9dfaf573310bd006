// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvDevelopment 本地開發模式，允許使用開發用簽章密鑰
const EnvDevelopment = "development"

// devJWTSecret 僅供 development 模式使用，非 development 模式禁止啟動
const devJWTSecret = "dev-only-insecure-secret"

// Config 服務啟動所需的全部設定，由環境變數（可搭配 .env）注入
type Config struct {
	Environment string
	HTTPAddr    string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret       string
	SessionTokenTTL time.Duration
	ResetTokenTTL   time.Duration

	WorkerCount int

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	FrontendBaseURL string
	AllowedOrigins  []string
}

// godotenvLoad 測試可覆寫此變數
var godotenvLoad = godotenv.Load

// Load 讀取環境變數組成 Config，缺少必要值或密鑰不合法時回傳錯誤
func Load() (*Config, error) {
	// .env 不存在時忽略錯誤
	_ = godotenvLoad()

	cfg := &Config{
		Environment:     getEnv("ENVIRONMENT", EnvDevelopment),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		SMTPHost:        getEnv("SMTP_HOST", "localhost"),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASSWORD"),
		MailFrom:        getEnv("MAIL_FROM", "no-reply@dracarys.local"),
		FrontendBaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:3000"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.SMTPPort, err = getEnvInt("SMTP_PORT", 25); err != nil {
		return nil, err
	}
	if cfg.WorkerCount, err = getEnvInt("WORKER_COUNT", 1); err != nil {
		return nil, err
	}
	if cfg.WorkerCount <= 0 {
		return nil, fmt.Errorf("無效的 WORKER_COUNT: %d", cfg.WorkerCount)
	}

	sessionMinutes, err := getEnvInt("SESSION_TOKEN_TTL_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	resetMinutes, err := getEnvInt("RESET_TOKEN_TTL_MINUTES", 15)
	if err != nil {
		return nil, err
	}
	cfg.SessionTokenTTL = time.Duration(sessionMinutes) * time.Minute
	cfg.ResetTokenTTL = time.Duration(resetMinutes) * time.Minute

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitAndTrim(origins)
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}

	// 簽章密鑰不可缺省；僅 development 模式允許退回開發密鑰
	if cfg.JWTSecret == "" || cfg.JWTSecret == devJWTSecret {
		if cfg.Environment != EnvDevelopment {
			return nil, fmt.Errorf("環境變數 JWT_SECRET 未設定或為開發用預設值，%s 模式禁止啟動", cfg.Environment)
		}
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return n, nil
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
