package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	DatabaseName    string
	JWTSecret       string
	StripeSecretKey string
	Origin          string
	Timeout         time.Duration
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		if os.IsNotExist(err) {
			// .env file not found, proceed with environment values
		} else {
			panic("Error loading .env file")
		}
	}
	return Config{
		Port:            getEnv("PORT", "5000"),
		MongoURI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName:    getEnv("DATABASE_NAME", "maxCoachDb"),
		JWTSecret:       getEnv("ACCESS_TOKEN_SECRET", "change-me"),
		StripeSecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
		Origin:          getEnv("ORIGIN", "*"),
		Timeout:         10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
