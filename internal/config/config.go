package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	Port        int

	OTLPEndpoint string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	MongoURI        string
	MongoDatabase   string
	MongoCheckouts  string
	MongoListings   string
	MongoTimeoutSec int

	SpaceEndpoint   string
	SpaceRegion     string
	SpaceAccessKey  string
	SpaceSecretKey  string
	SpaceBucket     string
	SpaceFolder     string
	SpaceTimeoutSec int

	UploadTmpDir string
}

var Module = fx.Provide(Load)

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "soundshelf"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		Port:        getenvInt("APP_PORT", getenvInt("PORT", 3000)),

		OTLPEndpoint: getenv("OTLP_ENDPOINT", "localhost:4317"),

		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "soundshelf"),
		DBUser:            getenv("DATABASE_USER", "postgres"),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 20),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 1800),

		MongoURI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getenv("MONGO_DATABASE", "music"),
		MongoCheckouts:  getenv("MONGO_CHECKOUTS_COLLECTION", "checkouts"),
		MongoListings:   getenv("MONGO_LISTINGS_COLLECTION", "listings"),
		MongoTimeoutSec: getenvInt("MONGO_TIMEOUT_SECONDS", 5),

		SpaceEndpoint:   getenv("SPACE_ENDPOINT", ""),
		SpaceRegion:     getenv("SPACE_REGION", "sgp1"),
		SpaceAccessKey:  getenv("SPACE_ACCESS_KEY", ""),
		SpaceSecretKey:  getenv("SPACE_SECRET_KEY", ""),
		SpaceBucket:     getenv("SPACE_BUCKET", "soundshelf"),
		SpaceFolder:     getenv("SPACE_FOLDER", "songs"),
		SpaceTimeoutSec: getenvInt("SPACE_TIMEOUT_SECONDS", 30),

		UploadTmpDir: getenv("UPLOAD_TMP_DIR", os.TempDir()),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
