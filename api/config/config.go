package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/plan"
)

// EnvDevelopment is the APP_ENV value that exposes error details to clients.
const EnvDevelopment = "development"

// Config holds the application configuration. It is built once at process
// start and handed to constructors; nothing reads the environment mid-request.
type Config struct {
	DatabaseURL     string
	StripeSecretKey string
	SendGridAPIKey  string
	// Public base URL of the site, used for Stripe redirects and email links.
	SiteURL       string
	EmailFrom     string
	EmailFromName string
	Environment   string
	// Stripe price ids for each plan tier
	StripePriceStarter  string
	StripePricePro      string
	StripePriceLifetime string
	// Optional: base URL for running remote HTTP integration tests (e.g., https://api.example.com)
	IntegrationBaseURL string
	// Server ports
	HTTPPort string
	GRPCPort string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" && currentDir != "." {
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err = godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		currentDir = filepath.Dir(currentDir)
	}

	vars := []struct {
		name     string
		envVar   string
		display  string
		required bool
		def      string
	}{
		{"DatabaseURL", "DATABASE_URL", "Database URL", true, ""},
		{"StripeSecretKey", "STRIPE_SECRET_KEY", "Stripe Secret Key", true, ""},
		{"SendGridAPIKey", "SENDGRID_API_KEY", "SendGrid API Key", true, ""},
		{"SiteURL", "SITE_URL", "Site URL", true, ""},
		{"EmailFrom", "EMAIL_FROM", "Email From Address", true, ""},
		{"EmailFromName", "EMAIL_FROM_NAME", "Email From Name", false, "StartupStack"},
		{"Environment", "APP_ENV", "Application Environment", false, "production"},
		{"StripePriceStarter", "STRIPE_PRICE_STARTER", "Stripe Starter Price", false, "price_1RYhAlE92IbV5FBUCtOmXIow"},
		{"StripePricePro", "STRIPE_PRICE_PRO", "Stripe Pro Price", false, "price_1RSdrmE92IbV5FBUV1zE2VhD"},
		{"StripePriceLifetime", "STRIPE_PRICE_LIFETIME", "Stripe Lifetime Price", false, "price_1RYhFGE92IbV5FBUqiKOcIqX"},
		{"IntegrationBaseURL", "INTEGRATION_BASE_URL", "Integration Base URL", false, ""},
		{"HTTPPort", "PORT", "HTTP Port", false, "8080"},
		{"GRPCPort", "GRPC_PORT", "gRPC Port", false, "50051"},
	}

	for _, v := range vars {
		value := strings.TrimSpace(os.Getenv(v.envVar))
		if value == "" {
			if v.required {
				return nil, fmt.Errorf("missing required environment variable: %s", v.display)
			}
			value = v.def
		}
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	config.SiteURL = strings.TrimRight(config.SiteURL, "/")
	if _, err := config.Catalog(); err != nil {
		return nil, err
	}
	return config, nil
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, EnvDevelopment)
}

// Catalog builds the plan catalog from the configured Stripe price ids.
func (c *Config) Catalog() (plan.Catalog, error) {
	catalog, err := plan.NewCatalog(
		plan.Entry{PriceID: c.StripePriceStarter, Tier: plan.Starter},
		plan.Entry{PriceID: c.StripePricePro, Tier: plan.Pro},
		plan.Entry{PriceID: c.StripePriceLifetime, Tier: plan.Lifetime},
	)
	if err != nil {
		return plan.Catalog{}, fmt.Errorf("invalid price configuration: %w", err)
	}
	return catalog, nil
}

// SuccessURL is where Stripe sends the customer after a completed checkout.
func (c *Config) SuccessURL() string {
	return c.SiteURL + "/success.html?session_id={CHECKOUT_SESSION_ID}"
}

// CancelURL is where Stripe sends the customer after an abandoned checkout.
func (c *Config) CancelURL() string {
	return c.SiteURL + "/?checkout=cancelled"
}

// DashboardURL is linked from the welcome email.
func (c *Config) DashboardURL() string {
	return c.SiteURL + "/dashboard.html"
}
