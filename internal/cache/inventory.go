package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	GroupKeyPrefix = "group:%s"
	// IndexPagePrefix keys the cached home listing; the full request URI is
	// appended so each page of the listing caches independently.
	IndexPagePrefix = "index_page"
)

const (
	GroupTTL = 10 * time.Minute
	// IndexPageTTL bounds how stale the home listing may be. Within the window
	// repeated requests replay byte-identical responses even if posts changed.
	IndexPageTTL = 20 * time.Second
)

func GroupKey(slug string) string {
	return fmt.Sprintf(GroupKeyPrefix, slug)
}

func PageKey(prefix, requestURI string) string {
	return prefix + ":" + requestURI
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateGroup(ctx context.Context, slug string) {
	Invalidate(ctx, GroupKey(slug))
}

// ClearPagePrefix deletes every cached page under the given prefix. Used by
// tests and operational tooling; the page cache otherwise relies on TTL expiry
// alone.
func ClearPagePrefix(ctx context.Context, prefix string) error {
	if client == nil {
		return nil
	}
	iter := client.Scan(ctx, 0, prefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
