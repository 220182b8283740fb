package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/statusguard/pkg/logger"
	"github.com/dmitrymomot/statusguard/pkg/notify"
	"github.com/dmitrymomot/statusguard/pkg/redis"
	"github.com/dmitrymomot/statusguard/pkg/ruleset"
	"github.com/dmitrymomot/statusguard/pkg/transition"
)

var errNoRulesFile = errors.New("no rules file: set RULES_FILE or pass --rules")

type app struct {
	log       *slog.Logger
	def       *ruleset.Definition
	validator *transition.Validator
	client    *goredis.Client
}

func newLogger(s settings, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(s.AppEnv, "statusguard"),
		logger.WithOutput(w),
	}
	if s.LogLevel != "" {
		level, err := logger.ParseLevel(s.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if s.LogFormat != "" {
		f := logger.Format(s.LogFormat)
		if f != logger.FormatJSON && f != logger.FormatText {
			return nil, fmt.Errorf("invalid log format %q", s.LogFormat)
		}
		opts = append(opts, logger.WithFormat(f))
	}
	return logger.New(opts...), nil
}

// newApp loads the rule file and wires callbacks. When Redis is configured
// every transition is also published as an event.
func newApp(ctx context.Context, s settings, stderr io.Writer) (*app, error) {
	if s.RulesFile == "" {
		return nil, errNoRulesFile
	}

	log, err := newLogger(s, stderr)
	if err != nil {
		return nil, err
	}
	logger.SetAsDefault(log)

	reg := ruleset.NewRegistry().
		MustRegister("log", transition.LogCallback(log))

	def, err := ruleset.LoadFile(s.RulesFile, reg)
	if err != nil {
		return nil, err
	}

	a := &app{log: log, def: def}

	if s.Redis.Enabled() {
		client, err := redis.Connect(ctx, s.Redis)
		if err != nil {
			return nil, err
		}
		var opts []notify.Option
		opts = append(opts, notify.WithLogger(log))
		if s.NotifyStream != "" {
			opts = append(opts, notify.WithStream(s.NotifyStream, s.NotifyStreamMaxLen))
		}
		pub, err := notify.NewRedisPublisher(client, s.NotifyChannel, opts...)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		def.Attach(pub.Callback())
		a.client = client
	}

	a.validator, err = def.Validator(transition.WithLogger(log))
	if err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *app) Close() {
	if a.client != nil {
		if err := a.client.Close(); err != nil {
			a.log.Error("close redis client", logger.Error(err))
		}
	}
}
