package devbackend

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/gommon/log"

	"driverapp/internal/pkg/errs"
)

// DefaultHTTPPort is the port the driver client expects for the development environment.
const DefaultHTTPPort = "8765"

// Config of the development backend.
type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	JWTSecret         string
	TokenTTLMinutes   string
	AMQPURL           string
	OrderChangedQueue string
	SeedSchedule      string
	LogLevel          string
}

// ConfigFromEnv reads the backend variables through lookup (usually
// os.LookupEnv) and fills in defaults.
func ConfigFromEnv(lookup func(string) (string, bool)) Config {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}
	return Config{
		HTTPPort:          get("HTTP_PORT", DefaultHTTPPort),
		DBHost:            get("DB_HOST", "localhost"),
		DBPort:            get("DB_PORT", "5432"),
		DBUser:            get("DB_USER", "postgres"),
		DBPassword:        get("DB_PASSWORD", ""),
		DBName:            get("DB_NAME", "driverapp"),
		DBSslMode:         get("DB_SSLMODE", "disable"),
		JWTSecret:         get("JWT_SECRET", ""),
		TokenTTLMinutes:   get("TOKEN_TTL_MIN", "1440"),
		AMQPURL:           get("AMQP_URL", ""),
		OrderChangedQueue: get("ORDER_CHANGED_QUEUE", "order.status.changed"),
		SeedSchedule:      get("SEED_SCHEDULE", "*/30 * * * * *"),
		LogLevel:          get("LOG_LEVEL", "info"),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var portErr, secretErr, ttlErr, levelErr error
	if p, err := strconv.Atoi(c.HTTPPort); err != nil || p <= 0 || p > 65535 {
		portErr = errs.NewValueIsInvalidError("HTTP_PORT")
	}
	if c.JWTSecret == "" {
		secretErr = errs.NewValueIsRequiredError("JWT_SECRET")
	}
	if _, err := c.TokenTTL(); err != nil {
		ttlErr = err
	}
	if _, err := c.EchoLogLevel(); err != nil {
		levelErr = err
	}
	return errors.Join(portErr, secretErr, ttlErr, levelErr)
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// TokenTTL parses TOKEN_TTL_MIN.
func (c Config) TokenTTL() (time.Duration, error) {
	minutes, err := strconv.Atoi(c.TokenTTLMinutes)
	if err != nil || minutes <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("TOKEN_TTL_MIN",
			fmt.Errorf("%q is not a positive number of minutes", c.TokenTTLMinutes))
	}
	return time.Duration(minutes) * time.Minute, nil
}

// EchoLogLevel maps LOG_LEVEL onto the gommon levels used by the server logger.
func (c Config) EchoLogLevel() (log.Lvl, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return log.INFO, errs.NewValueIsInvalidError("LOG_LEVEL")
}
