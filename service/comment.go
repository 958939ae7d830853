package service

import (
	"Newsline/dao"
	"Newsline/models"
	"Newsline/pkg/log"
	"Newsline/socket"
	"Newsline/types"
	"context"
	"strings"

	"go.uber.org/zap"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	AddComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*types.CommentItem, error)
	ListComments(ctx context.Context, articleID uint64) (*types.CommentListResponse, error)
}

type CommentService struct {
	CommentDAO *dao.CommentDAO
	ArticleDAO *dao.ArticleDAO
	Hub        *socket.Hub
}

// AddComment 发表评论，只追加
func (s *CommentService) AddComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*types.CommentItem, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrValidation
	}

	exist, err := s.ArticleDAO.IsExist(ctx, "id = ?", req.ArticleID)
	if err != nil {
		log.L.Error("comment precheck failed", zap.Error(err), zap.Uint64("article_id", req.ArticleID))
		return nil, ErrStorage
	}
	if !exist {
		return nil, ErrArticleNotFound
	}

	comment := &models.Comment{
		ArticleID: req.ArticleID,
		UserID:    userID,
		Content:   req.Content,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		log.L.Error("create comment failed", zap.Error(err), zap.Uint64("article_id", req.ArticleID))
		return nil, ErrStorage
	}

	s.Hub.Publish(&types.Event{
		Type:      types.EventCommentAdded,
		ArticleID: req.ArticleID,
		UserID:    userID,
	})
	return &types.CommentItem{
		ID:        comment.ID,
		ArticleID: comment.ArticleID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}, nil
}

// ListComments 获取文章的评论列表（按时间正序）
func (s *CommentService) ListComments(ctx context.Context, articleID uint64) (*types.CommentListResponse, error) {
	comments, err := s.CommentDAO.ListByArticle(ctx, articleID)
	if err != nil {
		log.L.Error("list comments failed", zap.Error(err), zap.Uint64("article_id", articleID))
		return nil, ErrStorage
	}

	items := make([]*types.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, &types.CommentItem{
			ID:        comment.ID,
			ArticleID: comment.ArticleID,
			UserID:    comment.UserID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		})
	}
	return &types.CommentListResponse{Comments: items, Total: int64(len(items))}, nil
}
