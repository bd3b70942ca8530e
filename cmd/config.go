package cmd

import "time"

// Config carries the environment-driven settings of the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StaleOrderTTL is how long an order may sit in pending before the
	// background job cancels it.
	StaleOrderTTL time.Duration
}
