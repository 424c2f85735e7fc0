// Package cache provides a bounded, insertion-ordered key/value store with
// per-entry expiry.
//
// Entries expire lazily: an expired entry is only removed when it is touched
// by Get or Has, or when an insert finds the cache at capacity. There is no
// background sweeper, so Len reports the number of physically stored entries
// and may include entries that are already expired.
//
// When an insert finds the cache full, expired entries are swept first. Only
// if that does not free a slot is the oldest-inserted live entry evicted.
// Overwriting a key moves it to the newest position.
//
// # Usage
//
//	c := cache.New[[]byte](100, 5*time.Minute)
//	c.Set("movie:550", body)
//	c.SetWithTTL("movie:popular", body, 30*time.Minute)
//
//	if v, ok := c.Get("movie:550"); ok {
//		// use v
//	}
//
// Tests can swap the time source with WithClock and a clock.Mock from
// github.com/benbjohnson/clock.
package cache
