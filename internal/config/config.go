package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Required values are enforced by must();
// optional integrations (SMTP, RabbitMQ, Google Business) fall back to
// empty strings and the owning component degrades gracefully.
type Config struct {
	Env          string // application environment ("dev", "prod")
	Port         string // HTTP port to listen on
	DBUser       string // database username
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name
	JWTSecret    string // secret used to sign admin access tokens
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing
	UploadDir    string // directory for uploaded menu images

	AMQPURL string // RabbitMQ URL for the notification queue (optional)

	SMTPHost string // SMTP relay host (optional; mail disabled when empty)
	SMTPPort string // SMTP relay port
	SMTPUser string // SMTP auth user
	SMTPPass string // SMTP auth password
	OpsEmail string // operations address copied on new reservations
	MailFrom string // From header, e.g. `"LunaBrew" <info@lunabrew.com>`

	GoogleAPIToken   string // bearer token for the Business reviews API (optional)
	GoogleAccountID  string // Google Business account id
	GoogleLocationID string // Google Business location id
	GoogleAPIBase    string // override for the reviews API base URL (tests)
}

// Load reads configuration values from environment variables and returns
// a Config. Missing required variables cause the program to exit with a
// fatal log message.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),
		Port:         must("APP_PORT"),
		DBUser:       must("DB_USER"),
		DBPass:       os.Getenv("DB_PASS"),
		DBHost:       must("DB_HOST"),
		DBPort:       must("DB_PORT"),
		DBName:       must("DB_NAME"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"),
		BcryptCost:   mustInt("BCRYPT_COST"),
		UploadDir:    getenv("UPLOAD_DIR", "uploads"),

		AMQPURL: os.Getenv("RABBITMQ_URL"),

		SMTPHost: os.Getenv("EMAIL_HOST"),
		SMTPPort: getenv("EMAIL_PORT", "587"),
		SMTPUser: os.Getenv("EMAIL_USER"),
		SMTPPass: os.Getenv("EMAIL_PASS"),
		OpsEmail: os.Getenv("OPS_EMAIL"),
		MailFrom: getenv("EMAIL_FROM", "LunaBrew <info@lunabrew.com>"),

		GoogleAPIToken:   os.Getenv("GOOGLE_API_TOKEN"),
		GoogleAccountID:  os.Getenv("GOOGLE_BUSINESS_ACCOUNT_ID"),
		GoogleLocationID: os.Getenv("GOOGLE_LOCATION_ID"),
		GoogleAPIBase:    os.Getenv("GOOGLE_API_BASE"),
	}
}

// IsProd reports whether the app runs in production mode. Outside prod,
// 500 responses may carry the underlying error detail.
func (c Config) IsProd() bool { return c.Env == "prod" }

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
