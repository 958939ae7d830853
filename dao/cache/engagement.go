package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// EngagementCache 互动计数的读穿缓存
// 键按 (articleID, kind) 维度划分，翻转前先失效
// 只做加速，任何未命中或出错都回源到记录集聚合
type EngagementCache struct {
	redis *redis.Client
}

func NewEngagementCache(redis *redis.Client) *EngagementCache {
	return &EngagementCache{redis: redis}
}

const countTTL = 30 * time.Second

func (c *EngagementCache) countKey(articleID uint64, kind uint8) string {
	return fmt.Sprintf("engagement:count:%d:%d", articleID, kind)
}

// GetCount 读取缓存计数，未命中返回 ok=false
func (c *EngagementCache) GetCount(ctx context.Context, articleID uint64, kind uint8) (int64, bool) {
	val, err := c.redis.Get(ctx, c.countKey(articleID, kind)).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

// SetCount 回填计数
func (c *EngagementCache) SetCount(ctx context.Context, articleID uint64, kind uint8, count int64) {
	c.redis.Set(ctx, c.countKey(articleID, kind), count, countTTL)
}

// Invalidate 失效计数，翻转提交前调用
func (c *EngagementCache) Invalidate(ctx context.Context, articleID uint64, kind uint8) {
	c.redis.Del(ctx, c.countKey(articleID, kind))
}
