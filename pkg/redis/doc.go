// Package redis connects to Redis with retries and exposes a readiness
// check for the connection.
//
// Configuration comes from the environment through Config:
//
//	REDIS_URL=redis://localhost:6379/0
//	REDIS_RETRY_ATTEMPTS=3
//	REDIS_RETRY_INTERVAL=2s
//	REDIS_CONNECT_TIMEOUT=10s
//
// Usage:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	router := api.Router(h, redis.Healthcheck(client))
//
// Errors are joined with the sentinels in this package (ErrNotReady,
// ErrInvalidURL, ErrHealthcheckFailed) for errors.Is checks.
package redis
