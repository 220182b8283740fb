package main

import (
	"github.com/dmitrymomot/statusguard/pkg/redis"
)

type settings struct {
	RulesFile          string `env:"RULES_FILE"`
	AppEnv             string `env:"APP_ENV" envDefault:"development"`
	LogLevel           string `env:"LOG_LEVEL"`
	LogFormat          string `env:"LOG_FORMAT"`
	NotifyChannel      string `env:"NOTIFY_CHANNEL" envDefault:"statusguard:transitions"`
	NotifyStream       string `env:"NOTIFY_STREAM"`
	NotifyStreamMaxLen int64  `env:"NOTIFY_STREAM_MAXLEN" envDefault:"10000"` // approximate; 0 keeps every event
	Redis              redis.Config
}
