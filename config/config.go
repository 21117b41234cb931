package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// PhonePe payment gateway
	MerchantID string
	SaltKey    string
	SaltIndex  int
	GatewayURL string

	// Public base URL used to build redirect/callback URLs
	AppBaseURL string

	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	EmailFrom string

	// Kafka
	KafkaBrokers string
	KafkaTopic   string
}

var AppConfig Config

func LoadConfig() {
	// Try loading .env from different locations
	envLocations := []string{
		".env",              // project root
		"config/.env",       // config subdirectory
		"../config/.env",    // one level up
		"../../config/.env", // two levels up
	}

	envLoaded := false
	for _, location := range envLocations {
		if err := godotenv.Load(location); err == nil {
			envLoaded = true
			break
		}
	}

	if !envLoaded {
		log.Println("No .env file found, using environment variables")
	}

	saltIndex, err := strconv.Atoi(getEnvWithDefault("PHONEPE_SALT_INDEX", "1"))
	if err != nil {
		log.Println("Invalid PHONEPE_SALT_INDEX, defaulting to 1")
		saltIndex = 1
	}

	AppConfig = Config{
		DBHost:     getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     getEnvWithDefault("DB_PORT", "5432"),
		DBUser:     getEnvWithDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnvWithDefault("DB_NAME", "postgres"),

		MerchantID: os.Getenv("PHONEPE_MERCHANT_ID"),
		SaltKey:    os.Getenv("PHONEPE_SALT_KEY"),
		SaltIndex:  saltIndex,
		GatewayURL: os.Getenv("PHONEPE_HOST_URL"),

		AppBaseURL: getEnvWithDefault("APP_BASE_URL", "http://localhost:8080"),

		SMTPHost:  getEnvWithDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:  getEnvWithDefault("SMTP_PORT", "587"),
		SMTPUser:  os.Getenv("SMTP_USER"),
		SMTPPass:  os.Getenv("SMTP_PASS"),
		EmailFrom: os.Getenv("EMAIL_FROM"),

		// Kafka settings (comma-separated brokers, empty disables events)
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   getEnvWithDefault("KAFKA_TOPIC", "registrations.payments"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// PaymentConfigured reports whether the gateway credentials needed to sign
// or verify a payment are present. Their absence fails individual payment
// requests but is not fatal at startup.
func PaymentConfigured() bool {
	return AppConfig.MerchantID != "" && AppConfig.SaltKey != "" && AppConfig.GatewayURL != ""
}

func GetDBConnString() string {
	return "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=disable"
}
