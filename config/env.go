package config

import (
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppConfig holds everything read from the environment at startup.
type AppConfig struct {
	Port        string   `env:"PORT" envDefault:"8081"`
	Env         string   `env:"APP_ENV" envDefault:"development"`
	FrontendURL string   `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:3001"`

	JWTSecret      string        `env:"JWT_SECRET"`
	AdminJWTSecret string        `env:"ADMIN_JWT_SECRET"`
	JWTExpiry      time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`

	// Checkout
	OrderTimeout     time.Duration `env:"ORDER_TIMEOUT" envDefault:"15m"`
	ExpirySweep      string        `env:"ORDER_EXPIRY_SWEEP" envDefault:"@every 1m"`
	TaxRate          float64       `env:"TAX_RATE" envDefault:"0.21"`
	ShippingFlat     float64       `env:"SHIPPING_FLAT" envDefault:"4.95"`
	FreeShippingOver float64       `env:"FREE_SHIPPING_OVER" envDefault:"60"`

	// Faceted search
	WeightSpecKey     string `env:"WEIGHT_SPEC_KEY" envDefault:"weight"`
	WeightLegacyMatch bool   `env:"WEIGHT_LEGACY_MATCH" envDefault:"false"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL" envDefault:"http://localhost:8081/api/v1/auth/google/callback"`
}

// App is the loaded configuration. Defaults apply until Load runs, so
// packages and tests can read it without touching the environment.
var App = Defaults()

// Defaults returns the configuration with every envDefault applied.
func Defaults() AppConfig {
	var cfg AppConfig
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// Load reads .env (when present) and the environment into App.
func Load() {
	_ = godotenv.Load()
	cfg, err := env.ParseAs[AppConfig]()
	if err != nil {
		log.Fatalf("❌ invalid environment: %v", err)
	}
	App = cfg
}

// IsProduction reports whether the app runs with APP_ENV=production.
func IsProduction() bool {
	return App.Env == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
