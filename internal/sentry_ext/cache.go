package sentry_ext

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

const (
	recentErrorDuration = time.Minute * 5
	defaultCacheSize    = 100
)

// recentCache remembers when each distinct message was last captured.
type recentCache struct {
	entries *lru.Cache
	now     func() time.Time
}

func newRecentCache(size int) (*recentCache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}

	entries, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &recentCache{entries: entries, now: time.Now}, nil
}

// shouldCapture reports whether a message should be sent to Sentry.
//
// A message that was captured less than recentErrorDuration ago is
// dropped. Otherwise its timestamp is refreshed and it is captured.
func (c *recentCache) shouldCapture(msg string) bool {
	sum := md5.Sum([]byte(msg))
	key := hex.EncodeToString(sum[:])

	now := c.now()
	if lastSent, ok := c.entries.Get(key); ok {
		if now.Sub(lastSent.(time.Time)) < recentErrorDuration {
			return false
		}
	}

	c.entries.Add(key, now)
	return true
}
