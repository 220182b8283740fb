package redis

import "time"

// Config describes the Redis connection used to publish transition events.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                             // e.g. "redis://:password@localhost:6379/0"; empty disables publishing
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`   // connection attempts before giving up
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"1s"`  // delay between attempts
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"5s"` // overall deadline for Connect
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
