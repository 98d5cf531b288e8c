package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"

	"github.com/xenking/classics-showroom/internal/domain/delivery"
)

const defaultAddr = "0.0.0.0:8080"

// Config holds the complete application configuration, loadable from
// environment variables (SHOWROOM_ prefix), flags, or YAML config files.
type Config struct {
	Addr        string `default:"0.0.0.0:8080" usage:"API server listen address"`
	DatabaseURL string `usage:"PostgreSQL connection URL (SHOWROOM_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	RedisURL    string `default:"redis://localhost:6379/0" usage:"Redis URL for carts (SHOWROOM_REDIS_URL or REDIS_URL)" flag:"redis-url"`
	Currency    string `default:"gbp" usage:"ISO currency payments are taken in"`
	PageSize    int    `default:"10" usage:"Orders per order history page" flag:"page-size"`

	Database  DatabaseConfig
	Cart      CartConfig
	Stripe    StripeConfig
	Delivery  delivery.Config
	Mail      MailConfig
	SMTP      SMTPConfig
	SNS       SNSConfig
	JWT       JWTConfig
	URLs      URLConfig
	RateLimit RateLimitConfig
	Graceful  GracefulConfig
}

// DatabaseConfig tunes the Postgres pool.
type DatabaseConfig struct {
	MaxConns       int32         `default:"10" usage:"Maximum pool connections"`
	ConnectTimeout time.Duration `default:"5s" usage:"Initial connection timeout"`
}

// CartConfig controls cart storage.
type CartConfig struct {
	TTL time.Duration `default:"720h" usage:"Idle cart expiry (0 disables)"`
}

// StripeConfig holds payment provider credentials.
type StripeConfig struct {
	SecretKey        string        `usage:"Stripe secret key" flag:"stripe-secret-key"`
	PublishableKey   string        `usage:"Stripe publishable key handed to the browser" flag:"stripe-publishable-key"`
	WebhookSecret    string        `usage:"Stripe webhook signing secret" flag:"stripe-webhook-secret"`
	APIURL           string        `usage:"Override the Stripe API base URL (stripe-mock)" flag:"stripe-api-url"`
	WebhookTolerance time.Duration `default:"5m" usage:"Maximum age of a signed webhook"`
	MaxRetries       int64         `default:"2" usage:"Network retries for Stripe API calls"`
}

// MailConfig controls confirmation emails.
type MailConfig struct {
	From            string `default:"orders@modernclassics.test" usage:"Sender address for confirmation emails"`
	ContactEmail    string `usage:"Contact address shown in confirmation emails (defaults to From)"`
	SubjectTemplate string `usage:"text/template for the subject line"`
	BodyTemplate    string `usage:"text/template for the body"`
}

// SMTPConfig holds the outgoing mail relay. An empty Host logs emails instead
// of sending them.
type SMTPConfig struct {
	Host     string `usage:"SMTP host"`
	Port     int    `default:"587" usage:"SMTP port"`
	Username string `usage:"SMTP username"`
	Password string `usage:"SMTP password"`
}

// SNSConfig selects where payment events are published. An empty TopicARN
// disables publishing.
type SNSConfig struct {
	TopicARN string `usage:"SNS topic ARN for order payment events" flag:"sns-topic-arn"`
	Region   string `default:"eu-west-2" usage:"AWS region"`
	Endpoint string `usage:"Override the SNS endpoint (LocalStack)"`
}

// JWTConfig holds the secret shared with the storefront's account service.
type JWTConfig struct {
	Secret string `usage:"HS256 secret for API bearer tokens" flag:"jwt-secret"`
}

// URLConfig holds storefront pages the API redirects to. {number} is
// replaced with the order number.
type URLConfig struct {
	Cart     string `default:"/cart/" usage:"Cart page"`
	Checkout string `default:"/checkout/{number}/" usage:"Checkout page"`
	Success  string `default:"/checkout/{number}/success/" usage:"Order confirmation page"`
}

// RateLimitConfig controls the per-client limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads a local .env file if present, then environment
// variables, YAML config files and flags, and applies platform defaults.
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "SHOWROOM",
		Files:     []string{"config.yaml", "/etc/showroom/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.DatabaseURL == "":
		return errors.New("database URL is required: set SHOWROOM_DATABASE_URL or DATABASE_URL")
	case c.Stripe.SecretKey == "":
		return errors.New("stripe secret key is required: set SHOWROOM_STRIPE_SECRET_KEY")
	case c.Stripe.WebhookSecret == "":
		return errors.New("stripe webhook secret is required: set SHOWROOM_STRIPE_WEBHOOK_SECRET")
	case c.JWT.Secret == "":
		return errors.New("jwt secret is required: set SHOWROOM_JWT_SECRET")
	}
	return nil
}

// applyPlatformDefaults maps platform-provided variables such as
// DATABASE_URL, REDIS_URL and PORT onto the SHOWROOM_-prefixed settings.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if v := os.Getenv("REDIS_URL"); v != "" && os.Getenv("SHOWROOM_REDIS_URL") == "" {
		c.RedisURL = v
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == defaultAddr {
		c.Addr = "0.0.0.0:" + port
	}
}
