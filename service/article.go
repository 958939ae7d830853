package service

import (
	"Newsline/dao"
	"Newsline/models"
	"Newsline/pkg/log"
	"Newsline/pkg/snowflake"
	"Newsline/socket"
	"Newsline/types"
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IArticleService = (*ArticleService)(nil)

type IArticleService interface {
	CreateArticle(ctx context.Context, userID uint64, req *types.CreateArticleRequest) (uint64, error)
	GetArticle(ctx context.Context, articleID uint64) (*models.Article, error)
	UpdateArticle(ctx context.Context, requesterID uint64, req *types.UpdateArticleRequest) error
	DeleteArticle(ctx context.Context, articleID, requesterID uint64) error
}

type ArticleService struct {
	ArticleDAO *dao.ArticleDAO
	Hub        *socket.Hub
}

// CreateArticle 发布文章
// 校验在写之前完成；文章和标签关联一个事务落库，失败不留半成品
// 事件推送严格在提交之后
func (s *ArticleService) CreateArticle(ctx context.Context, userID uint64, req *types.CreateArticleRequest) (uint64, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return 0, ErrValidation
	}

	releaseAt := req.ReleaseAt
	if releaseAt.IsZero() {
		releaseAt = time.Now()
	}

	article := &models.Article{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Thumbnail: req.Thumbnail,
		ReleaseAt: releaseAt,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.ArticleDAO.CreateWithTags(ctx, article, req.TagIDs); err != nil {
		switch {
		case dao.IsDuplicateErr(err):
			return 0, ErrDuplicateTitle
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return 0, ErrInvalidTag
		}
		log.L.Error("create article failed", zap.Error(err), zap.Uint64("user_id", userID))
		return 0, ErrStorage
	}

	s.Hub.Publish(&types.Event{
		Type:      types.EventArticleCreated,
		ArticleID: article.ID,
		UserID:    userID,
	})
	return article.ID, nil
}

// GetArticle 查询文章
func (s *ArticleService) GetArticle(ctx context.Context, articleID uint64) (*models.Article, error) {
	article, err := s.ArticleDAO.GetByID(ctx, articleID)
	if err != nil {
		log.L.Error("get article failed", zap.Error(err), zap.Uint64("article_id", articleID))
		return nil, ErrStorage
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// UpdateArticle 编辑文章，仅作者可改
// 标签关联整体替换；标题唯一约束与发布时一致
func (s *ArticleService) UpdateArticle(ctx context.Context, requesterID uint64, req *types.UpdateArticleRequest) error {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return ErrValidation
	}

	article, err := s.GetArticle(ctx, req.ArticleID)
	if err != nil {
		return err
	}
	if article.UserID != requesterID {
		return ErrForbidden
	}

	article.Title = req.Title
	article.Content = req.Content
	article.Thumbnail = req.Thumbnail
	if !req.ReleaseAt.IsZero() {
		article.ReleaseAt = req.ReleaseAt
	}
	article.UpdatedAt = time.Now()

	if err := s.ArticleDAO.UpdateWithTags(ctx, article, req.TagIDs); err != nil {
		switch {
		case dao.IsDuplicateErr(err):
			return ErrDuplicateTitle
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return ErrInvalidTag
		}
		log.L.Error("update article failed", zap.Error(err), zap.Uint64("article_id", req.ArticleID))
		return ErrStorage
	}

	s.Hub.Publish(&types.Event{
		Type:      types.EventArticleUpdated,
		ArticleID: article.ID,
		UserID:    requesterID,
	})
	return nil
}

// DeleteArticle 删除文章，仅作者可删
// 标签关联、互动记录、评论随文章一并清理，不留孤儿行
func (s *ArticleService) DeleteArticle(ctx context.Context, articleID, requesterID uint64) error {
	article, err := s.GetArticle(ctx, articleID)
	if err != nil {
		return err
	}
	if article.UserID != requesterID {
		return ErrForbidden
	}

	if err := s.ArticleDAO.DeleteCascade(ctx, articleID); err != nil {
		log.L.Error("delete article failed", zap.Error(err), zap.Uint64("article_id", articleID))
		return ErrStorage
	}
	return nil
}
