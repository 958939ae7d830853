package types

import "time"

// 推送事件类型
const (
	EventArticleCreated    = "article:created"
	EventArticleUpdated    = "article:updated"
	EventCommentAdded      = "comment:added"
	EventEngagementChanged = "engagement:changed"
)

// Event 状态变更事件，提交后单向广播给在线观众
// 尽力送达，送达失败直接丢弃，绝不回滚源操作
type Event struct {
	Type      string    `json:"type"`
	ArticleID uint64    `json:"news_id"`
	UserID    uint64    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}
