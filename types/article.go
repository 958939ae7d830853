package types

import "time"

// FeedLimit 列表查询上限
const FeedLimit = 100

// CreateArticleRequest 发布文章请求
type CreateArticleRequest struct {
	Title     string    `json:"title" binding:"required,max=200"` // 标题，全局唯一
	Content   string    `json:"content" binding:"required"`       // 正文
	ReleaseAt time.Time `json:"release_at"`                       // 发布时间，缺省为当前时间
	Thumbnail string    `json:"thumbnail"`                        // 缩略图 URL，可选
	TagIDs    []uint64  `json:"tag_ids"`                          // 关联标签
}

// CreateArticleResponse 发布文章响应
type CreateArticleResponse struct {
	ArticleID uint64 `json:"news_id"`
}

// UpdateArticleRequest 编辑文章请求，标签关联整体替换
type UpdateArticleRequest struct {
	ArticleID uint64    `json:"news_id" binding:"required"`
	Title     string    `json:"title" binding:"required,max=200"`
	Content   string    `json:"content" binding:"required"`
	ReleaseAt time.Time `json:"release_at"` // 零值保留原发布时间
	Thumbnail string    `json:"thumbnail"`
	TagIDs    []uint64  `json:"tag_ids"`
}

// DeleteArticleRequest 删除文章请求
type DeleteArticleRequest struct {
	ArticleID uint64 `json:"news_id" binding:"required"`
}

// FeedRequest 列表查询请求
type FeedRequest struct {
	Query  string   `form:"q"`       // 自由文本，可选
	TagIDs []uint64 `form:"tag_ids"` // 标签过滤，可选
}

// FeedArticle 带互动状态的文章视图
type FeedArticle struct {
	ID            uint64    `json:"news_id"`
	UserID        uint64    `json:"user_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Thumbnail     string    `json:"thumbnail,omitempty"`
	ReleaseAt     time.Time `json:"release_at"`
	Tags          []string  `json:"tags"`
	UpvoteCount   int64     `json:"upvotes"`
	BookmarkCount int64     `json:"bookmarks"`
	CommentCount  int64     `json:"comment_count"`
	HasUpvoted    bool      `json:"has_upvoted"`
	HasBookmarked bool      `json:"has_bookmarked"`
}

// FeedResponse 列表查询响应
type FeedResponse struct {
	News []*FeedArticle `json:"news"`
}
