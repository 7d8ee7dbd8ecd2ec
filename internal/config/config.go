package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port          int
	LogLevel      string
	DB            DB
	Kafka         Kafka
	OrdersGateway OrdersGateway
	RateLimit     RateLimit
	Pprof         Pprof
	Delivery      Delivery
}

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection URL.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Kafka stores broker and topic settings.
type Kafka struct {
	Brokers         []string
	GroupID         string
	OrdersTopic     string
	DeliveriesTopic string
}

// Enabled reports whether any broker is configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// OrdersGateway stores the orders service client settings.
type OrdersGateway struct {
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RateLimit stores HTTP rate limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores debug server settings.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Delivery stores assignment settings. The slot fields are the fallback used when
// the configurations table has no delivery_time row.
type Delivery struct {
	SlotStart        int
	SlotEnd          int
	SlotSplit        int
	OperationTimeout time.Duration
	Timezone         string
}

// Location resolves Timezone, defaulting to UTC.
func (d Delivery) Location() (*time.Location, error) {
	if d.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(d.Timezone)
}

// Load reads .env (if present), then the environment, then flags. Later sources win.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := defaults()
	if err := fromEnv(cfg); err != nil {
		return nil, err
	}

	fs := pflag.CommandLine
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.IntVar(&cfg.Delivery.SlotStart, "slot-start", cfg.Delivery.SlotStart, "first delivery hour")
	fs.IntVar(&cfg.Delivery.SlotEnd, "slot-end", cfg.Delivery.SlotEnd, "last delivery hour")
	fs.IntVar(&cfg.Delivery.SlotSplit, "slot-split", cfg.Delivery.SlotSplit, "delivery window length in hours")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Port:          DefaultPort(),
		LogLevel:      "info",
		DB:            DefaultDB(),
		Kafka:         DefaultKafka(),
		OrdersGateway: DefaultOrdersGateway(),
		RateLimit:     DefaultRateLimit(),
		Pprof:         DefaultPprof(),
		Delivery:      DefaultDelivery(),
	}
}

func fromEnv(cfg *Config) error {
	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return err
	}
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)

	cfg.DB.Host = envString("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envString("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envString("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envString("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envString("POSTGRES_DB", cfg.DB.Name)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}

	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	cfg.Kafka.GroupID = envString("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.OrdersTopic = envString("KAFKA_ORDERS_TOPIC", cfg.Kafka.OrdersTopic)
	cfg.Kafka.DeliveriesTopic = envString("KAFKA_DELIVERIES_TOPIC", cfg.Kafka.DeliveriesTopic)

	gw := &cfg.OrdersGateway
	gw.BaseURL = envString("ORDERS_SERVICE_URL", gw.BaseURL)
	if gw.Timeout, err = envDuration("ORDERS_SERVICE_TIMEOUT", gw.Timeout); err != nil {
		return err
	}
	if gw.MaxAttempts, err = envInt("ORDERS_RETRY_MAX_ATTEMPTS", gw.MaxAttempts); err != nil {
		return err
	}
	if gw.BaseDelay, err = envDuration("ORDERS_RETRY_BASE_DELAY", gw.BaseDelay); err != nil {
		return err
	}
	if gw.MaxDelay, err = envDuration("ORDERS_RETRY_MAX_DELAY", gw.MaxDelay); err != nil {
		return err
	}

	rl := &cfg.RateLimit
	if rl.Enabled, err = envBool("RATE_LIMIT_ENABLED", rl.Enabled); err != nil {
		return err
	}
	if rl.Rate, err = envFloat("RATE_LIMIT_RATE", rl.Rate); err != nil {
		return err
	}
	if rl.Burst, err = envInt("RATE_LIMIT_BURST", rl.Burst); err != nil {
		return err
	}
	if rl.TTL, err = envDuration("RATE_LIMIT_TTL", rl.TTL); err != nil {
		return err
	}
	if rl.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets); err != nil {
		return err
	}

	if cfg.Pprof.Enabled, err = envBool("PPROF_ENABLED", cfg.Pprof.Enabled); err != nil {
		return err
	}
	cfg.Pprof.Addr = envString("PPROF_ADDR", cfg.Pprof.Addr)
	cfg.Pprof.User = envString("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = envString("PPROF_PASS", cfg.Pprof.Pass)

	d := &cfg.Delivery
	if d.SlotStart, err = envInt("DELIVERY_SLOT_START", d.SlotStart); err != nil {
		return err
	}
	if d.SlotEnd, err = envInt("DELIVERY_SLOT_END", d.SlotEnd); err != nil {
		return err
	}
	if d.SlotSplit, err = envInt("DELIVERY_SLOT_SPLIT", d.SlotSplit); err != nil {
		return err
	}
	if d.OperationTimeout, err = envDuration("DELIVERY_OPERATION_TIMEOUT", d.OperationTimeout); err != nil {
		return err
	}
	d.Timezone = envString("DELIVERY_TIMEZONE", d.Timezone)
	return nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.OrdersGateway.MaxAttempts < 1 {
		return fmt.Errorf("invalid ORDERS_RETRY_MAX_ATTEMPTS: %d", c.OrdersGateway.MaxAttempts)
	}
	if c.Delivery.OperationTimeout <= 0 {
		return fmt.Errorf("invalid DELIVERY_OPERATION_TIMEOUT: %s", c.Delivery.OperationTimeout)
	}
	if _, err := c.Delivery.Location(); err != nil {
		return fmt.Errorf("invalid DELIVERY_TIMEZONE %q: %w", c.Delivery.Timezone, err)
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
