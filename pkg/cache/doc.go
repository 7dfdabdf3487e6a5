// Package cache provides a generic, thread-safe LRU cache.
//
// The cache keeps a bounded number of entries and evicts the least recently
// used one when a new key is added to a full cache. It is used to keep
// classification results for user agents that repeat across requests.
//
// # Usage
//
//	c := cache.NewLRU[string, int](128)
//	c.Put("a", 1)
//	v, ok := c.Get("a")
//
//	// Compute on miss and store the result.
//	v = c.GetOrLoad("b", func() int { return expensive("b") })
//
//	fmt.Printf("%+v\n", c.Stats()) // hits, misses, evictions, size, capacity
//
// NewLRU panics when capacity is not positive, since a zero-sized cache is a
// configuration bug rather than a runtime condition.
package cache
