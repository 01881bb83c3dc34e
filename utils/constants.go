// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// DraftTTL is how long an abandoned enrollment draft survives in Redis.
const DraftTTL = 30 * time.Minute

// ListingCacheKey and ListingCacheTTL cover the wholesale teacher-listing cache.
const (
	ListingCacheKey = "listings:teachers"
	ListingCacheTTL = 2 * time.Minute
)
