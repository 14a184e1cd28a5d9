package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type ENV struct {
	AppEnv string
	AppURL string
	Port   string

	DBDriver   string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret         string
	JWTIssuer         string
	JWTAudience       string
	JWTExpiresMinutes int

	UploadDir          string
	CORSAllowedOrigins []string
	CurrencySymbol     string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CatalogCacheTTL int

	KafkaBrokers []string

	MIDTRANS_SERVER_KEY string
	MIDTRANS_CLIENT_KEY string

	AdminEmail    string
	AdminPassword string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		AppEnv: getEnv("APP_ENV", "development"),
		AppURL: getEnv("APP_URL", "http://localhost:8080"),
		Port:   ":" + strings.TrimPrefix(getEnv("APP_PORT", "8080"), ":"),

		DBDriver:   getEnv("DB_DRIVER", "mysql"),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "marketplace"),
		DBPort:     os.Getenv("DB_PORT"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTIssuer:         getEnv("JWT_ISSUER", "go-marketplace"),
		JWTAudience:       getEnv("JWT_AUDIENCE", "go-marketplace-web"),
		JWTExpiresMinutes: getEnvInt("JWT_EXPIRES_MINUTES", 60),

		UploadDir:          getEnv("UPLOAD_DIR", "upload"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		CurrencySymbol:     getEnv("CURRENCY_SYMBOL", "$"),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		CatalogCacheTTL: getEnvInt("CATALOG_CACHE_TTL_SECONDS", 300),

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),

		MIDTRANS_SERVER_KEY: os.Getenv("MIDTRANS_SERVER_KEY"),
		MIDTRANS_CLIENT_KEY: os.Getenv("MIDTRANS_CLIENT_KEY"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@marketplace.local"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

}

var LoadENV = LoadEnv()

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("LoadEnv: %s is not a number (%q), using %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
