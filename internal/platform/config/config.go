package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Campaign
	CampaignName  string
	CampaignGoal  decimal.Decimal
	PixKey        string
	ProofRequired bool
	MaxProofBytes int64
	HistoryLimit  int

	// OpeningBalance is written once as a seed record into an empty ledger.
	OpeningBalance decimal.Decimal

	// Asset storage for payment proofs
	AssetStorageDir    string
	AssetBucket        string
	PublicBaseURL      string
	AssetSigningSecret string
	SignedURLTTL       time.Duration

	AdminGateCacheTTL time.Duration
	DonationRateLimit string
	LoginRateLimit    string

	CORSAllowedOrigins []string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	PosthogAPIKey string
}

const defaultGoal = "5000"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "turma62-fundraiser")
	viper.SetDefault("CAMPAIGN_NAME", "Turma 62 Solidária")
	viper.SetDefault("CAMPAIGN_GOAL", defaultGoal)
	viper.SetDefault("OPENING_BALANCE", "0")
	viper.SetDefault("PIX_KEY", "62comissaolxii@gmail.com")
	viper.SetDefault("PROOF_REQUIRED", true)
	viper.SetDefault("MAX_PROOF_BYTES", 5*1024*1024)
	viper.SetDefault("HISTORY_LIMIT", 5)
	viper.SetDefault("ASSET_STORAGE_DIR", "./data/assets")
	viper.SetDefault("ASSET_BUCKET", "comprovantes")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	viper.SetDefault("ASSET_SIGNING_SECRET", "")
	viper.SetDefault("SIGNED_URL_TTL", "1h")
	viper.SetDefault("ADMIN_GATE_CACHE_TTL", "1m")
	viper.SetDefault("DONATION_RATE_LIMIT", "10-M")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:5173")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", 12*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.CampaignName = viper.GetString("CAMPAIGN_NAME")
	goal, err := decimal.NewFromString(viper.GetString("CAMPAIGN_GOAL"))
	if err != nil || !goal.IsPositive() {
		log.Printf("Warning: Invalid value for CAMPAIGN_GOAL ('%s'). Defaulting to %s.\n", viper.GetString("CAMPAIGN_GOAL"), defaultGoal)
		goal = decimal.RequireFromString(defaultGoal)
	}
	cfg.CampaignGoal = goal
	opening, err := decimal.NewFromString(viper.GetString("OPENING_BALANCE"))
	if err != nil || opening.IsNegative() {
		log.Printf("Warning: Invalid value for OPENING_BALANCE ('%s'). No seed record will be written.\n", viper.GetString("OPENING_BALANCE"))
		opening = decimal.Zero
	}
	cfg.OpeningBalance = opening.Round(2)
	cfg.PixKey = viper.GetString("PIX_KEY")
	cfg.ProofRequired = viper.GetBool("PROOF_REQUIRED")
	cfg.MaxProofBytes = viper.GetInt64("MAX_PROOF_BYTES")
	if cfg.MaxProofBytes <= 0 {
		cfg.MaxProofBytes = 5 * 1024 * 1024
	}
	cfg.HistoryLimit = viper.GetInt("HISTORY_LIMIT")
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 5
	}

	cfg.AssetStorageDir = viper.GetString("ASSET_STORAGE_DIR")
	cfg.AssetBucket = viper.GetString("ASSET_BUCKET")
	cfg.PublicBaseURL = strings.TrimRight(viper.GetString("PUBLIC_BASE_URL"), "/")
	cfg.AssetSigningSecret = viper.GetString("ASSET_SIGNING_SECRET")
	if cfg.AssetSigningSecret == "" {
		// signed proof URLs fall back to the session secret
		cfg.AssetSigningSecret = cfg.JWTSecret
	}
	cfg.SignedURLTTL = durationOrDefault("SIGNED_URL_TTL", time.Hour)
	cfg.AdminGateCacheTTL = durationOrDefault("ADMIN_GATE_CACHE_TTL", time.Minute)
	cfg.DonationRateLimit = viper.GetString("DONATION_RATE_LIMIT")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

// GoogleEnabled reports whether the Google sign-in flow is configured.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
