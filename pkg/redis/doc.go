// Package redis connects to the Redis server that receives transition
// events. Config is populated from the environment (REDIS_URL and friends)
// through pkg/config; Connect retries the initial ping and Healthcheck
// returns a probe suitable for readiness checks.
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
package redis
