package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"foodorder/internal/jobs"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/logging"
)

const (
	defaultHTTPPort              = "8080"
	defaultDBSslMode             = "disable"
	defaultKafkaOrderChangeTopic = "order.changed"
	defaultPendingTimeout        = 30 * time.Minute
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	LogLevel               slog.Level

	// StrictTransitions enforces the usual order lifecycle on status updates.
	StrictTransitions bool
	// PendingTimeout is how long an untouched order may stay pending. Zero
	// disables expiration.
	PendingTimeout     time.Duration
	ExpirationSchedule string
}

// LoadConfig reads the configuration through getenv, applying defaults for
// optional keys. All problems are reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:               withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 getenv("DB_PORT"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              withDefault(getenv("DB_SSLMODE"), defaultDBSslMode),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: withDefault(getenv("KAFKA_ORDER_CHANGED_TOPIC"), defaultKafkaOrderChangeTopic),
		ExpirationSchedule:     withDefault(getenv("ORDER_EXPIRATION_SCHEDULE"), jobs.DefaultExpirationSchedule),
		PendingTimeout:         defaultPendingTimeout,
	}

	var errList []error
	required := []struct{ key, value string }{
		{"DB_HOST", config.DBHost},
		{"DB_PORT", config.DBPort},
		{"DB_USER", config.DBUser},
		{"DB_NAME", config.DBName},
	}
	for _, r := range required {
		if r.value == "" {
			errList = append(errList, errs.NewValueIsRequiredError(r.key))
		}
	}

	if port, err := strconv.Atoi(config.HTTPPort); err != nil || port <= 0 || port > 65535 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("HTTP_PORT", config.HTTPPort, 1, 65535))
	}

	level, err := logging.ParseLevel(getenv("LOG_LEVEL"))
	if err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}
	config.LogLevel = level

	if raw := getenv("ORDER_STRICT_TRANSITIONS"); raw != "" {
		strict, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("ORDER_STRICT_TRANSITIONS", parseErr))
		}
		config.StrictTransitions = strict
	}

	if raw := getenv("ORDER_PENDING_TIMEOUT"); raw != "" {
		timeout, parseErr := parseTimeout(raw)
		if parseErr != nil {
			errList = append(errList, parseErr)
		}
		config.PendingTimeout = timeout
	}

	if len(errList) > 0 {
		return Config{}, errors.Join(errList...)
	}

	return config, nil
}

// DSN builds the Postgres connection string for DBName.
func (c Config) DSN() string {
	return c.dsn(c.DBName)
}

// MaintenanceDSN connects to the postgres database, used to create DBName.
func (c Config) MaintenanceDSN() string {
	return c.dsn("postgres")
}

func (c Config) dsn(dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, dbName, c.DBSslMode)
}

func parseTimeout(raw string) (time.Duration, error) {
	if raw == "0" {
		return 0, nil
	}

	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("ORDER_PENDING_TIMEOUT", err)
	}
	if timeout < 0 {
		return 0, errs.NewValueIsOutOfRangeError("ORDER_PENDING_TIMEOUT", raw, 0, nil)
	}
	return timeout, nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
