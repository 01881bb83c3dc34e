package middleware

import (
	"context"
	"net/http"
	"strings"

	"teacherdekho/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// bearerToken pulls the raw token out of the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return token, token != ""
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
		"code":  0,
	})
}

// verifyPinnedToken checks the token hash against the auth cache, falling
// back to the account document via lookup on a miss. lookup returns the
// pinned hash for the account.
func verifyPinnedToken(ctx context.Context, accountID, computedHash string, lookup func(id string) (string, error)) bool {
	cacheKey := utils.AuthCachePrefix + accountID
	authCache := utils.GetAuthCacheClient()

	if authCache != nil {
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash == computedHash {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				return true
			}
			return false
		} else if err != redis.Nil {
			utils.GetLogger().Warn("auth cache lookup failed, falling back to DB")
		}
	}

	pinnedHash, err := lookup(accountID)
	if err != nil || pinnedHash == "" || pinnedHash != computedHash {
		return false
	}
	if authCache != nil {
		_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
	}
	return true
}
