package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	BackendURL     string
	SessionSecret  string
	SessionExpiry  string
	RazorpayKeyID  string
	CheckoutExpiry time.Duration
	StoreBackend   string
	RedisURL       string
	RedisAddr      string
	RedisPassword  string
	DatabaseURL    string
	UploadDir      string
	MaxUploadSize  int64
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	SMTPFrom       string
	StoreName      string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}

	// CHECKOUT_EXPIRY bounds how long a pending payment stays claimable after the
	// hosted widget opens. Zero keeps it claimable until the session itself expires.
	checkoutExpiry, _ := time.ParseDuration(getEnv("CHECKOUT_EXPIRY", "0"))

	AppConfig = &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("APP_PORT", getEnv("PORT", "8082")),
		BackendURL:     getEnv("BACKEND_URL", "http://localhost:8000"),
		SessionSecret:  getEnv("SESSION_SECRET", "secret"),
		SessionExpiry:  getEnv("SESSION_EXPIRY", "720h"),
		RazorpayKeyID:  getEnv("RAZORPAY_KEY_ID", "rzp_test_demo"),
		CheckoutExpiry: checkoutExpiry,
		StoreBackend:   getEnv("STORE_BACKEND", "redis"),
		RedisURL:       os.Getenv("REDIS_URL"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize:  maxUploadSize,
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       smtpPort,
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		SMTPFrom:       os.Getenv("SMTP_FROM"),
		StoreName:      getEnv("STORE_NAME", "Mfrida Fragrance"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Backend API: %s", AppConfig.BackendURL)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
