package types

import "time"

// CreateCommentRequest 发表评论请求
type CreateCommentRequest struct {
	ArticleID uint64 `json:"news_id" binding:"required"`
	Content   string `json:"content" binding:"required,max=2000"`
}

// CommentItem 评论视图
type CommentItem struct {
	ID        uint64    `json:"id"`
	ArticleID uint64    `json:"news_id"`
	UserID    uint64    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentListResponse 评论列表响应
type CommentListResponse struct {
	Comments []*CommentItem `json:"comments"`
	Total    int64          `json:"total"`
}
