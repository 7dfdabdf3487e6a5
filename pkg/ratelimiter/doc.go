// Package ratelimiter implements token bucket limiting with an in-memory
// store.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. AllowN spends n tokens at once, so callers can charge
// requests by the amount of work they carry. A request that does not fit is
// denied without spending anything.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, cfg)
//	if err != nil {
//		return err
//	}
//
//	res, err := limiter.AllowN(ctx, clientIP, len(items))
//	if err != nil {
//		return err
//	}
//	ratelimiter.WriteHeaders(w, res)
//	if !res.Allowed() {
//		// respond 429
//	}
package ratelimiter
