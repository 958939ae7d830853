package dao

import (
	"Newsline/models"
	"context"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

// Create 创建评论
func (d *CommentDAO) Create(ctx context.Context, comment *models.Comment) error {
	return d.Db.WithContext(ctx).Create(comment).Error
}

// ListByArticle 获取文章的评论列表（按时间正序）
func (d *CommentDAO) ListByArticle(ctx context.Context, articleID uint64) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0)
	err := d.Db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// CountByArticle 获取文章的评论总数
func (d *CommentDAO) CountByArticle(ctx context.Context, articleID uint64) (int64, error) {
	return d.CountByWhere(ctx, "article_id = ?", articleID)
}
