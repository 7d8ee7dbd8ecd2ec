package config

import "time"

const defaultPort = 8080

var defaultOrdersGateway = OrdersGateway{
	BaseURL:     "",
	Timeout:     2 * time.Second,
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    200 * time.Millisecond,
}

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "zistino",
}

var defaultKafka = Kafka{
	GroupID:         "zistino-dispatch",
	OrdersTopic:     "orders",
	DeliveriesTopic: "deliveries",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       5,
	Burst:      10,
	TTL:        5 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = Pprof{
	Addr: "127.0.0.1:6060",
}

var defaultDelivery = Delivery{
	SlotStart:        8,
	SlotEnd:          20,
	SlotSplit:        4,
	OperationTimeout: 3 * time.Second,
	Timezone:         "UTC",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultOrdersGateway returns the default orders gateway settings.
func DefaultOrdersGateway() OrdersGateway {
	return defaultOrdersGateway
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default Kafka settings. No brokers are set, which disables Kafka.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultPprof returns the default pprof settings.
func DefaultPprof() Pprof {
	return defaultPprof
}

// DefaultDelivery returns the default delivery settings.
func DefaultDelivery() Delivery {
	return defaultDelivery
}
