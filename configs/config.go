package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBSource string

	// Catalog provider ภายนอก — ถ้าไม่มี key ใช้ fallback list
	CatalogAPIURL  string
	CatalogAPIKey  string
	CatalogTimeout time.Duration

	DefaultLocation string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port: getEnv("PORT", "8000"),
		// in-memory เท่านั้น — state หายเมื่อปิดโปรเซส
		DBSource:        getEnv("DB_SOURCE", "file::memory:?cache=shared"),
		CatalogAPIURL:   getEnv("CATALOG_API_URL", ""),
		CatalogAPIKey:   os.Getenv("CATALOG_API_KEY"),
		CatalogTimeout:  getDuration("CATALOG_TIMEOUT", 8*time.Second),
		DefaultLocation: getEnv("DEFAULT_LOCATION", "Banjara Hills, Hyderabad"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
