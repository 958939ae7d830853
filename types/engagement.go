package types

// 互动类型
const (
	EngagementUpvote   uint8 = 1 // 点赞
	EngagementBookmark uint8 = 2 // 收藏
)

// EngagementKindFromName 互动类型名转编码，未知返回 0
func EngagementKindFromName(name string) uint8 {
	switch name {
	case "upvote":
		return EngagementUpvote
	case "bookmark":
		return EngagementBookmark
	}
	return 0
}

// ToggleRequest 点赞/收藏开关请求
type ToggleRequest struct {
	ArticleID uint64 `json:"news_id" binding:"required"`
	Kind      string `json:"kind" binding:"required,oneof=upvote bookmark"`
}

// ToggleResponse 开关后的最新状态
type ToggleResponse struct {
	Active bool  `json:"active"` // 本次操作后是否生效
	Count  int64 `json:"count"`  // 该文章此类互动的总数，实时聚合
}

// EngagementState 单篇文章面向某个观众的互动投影
type EngagementState struct {
	UpvoteCount   int64 `json:"upvotes"`
	BookmarkCount int64 `json:"bookmarks"`
	CommentCount  int64 `json:"comment_count"`
	HasUpvoted    bool  `json:"has_upvoted"`
	HasBookmarked bool  `json:"has_bookmarked"`
}
