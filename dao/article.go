package dao

import (
	"Newsline/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ArticleDAO struct {
	Repo[models.Article]
}

func NewArticleDAO(db *gorm.DB) *ArticleDAO {
	return &ArticleDAO{Repo: NewRepo[models.Article](db)}
}

// GetByID 根据ID查询文章，不存在返回 nil
func (d *ArticleDAO) GetByID(ctx context.Context, articleID uint64) (*models.Article, error) {
	return d.FindByWhere(ctx, "id = ?", articleID)
}

// CreateWithTags 创建文章并关联标签，单事务提交
// 任一标签不存在则整体回滚，不留半成品
func (d *ArticleDAO) CreateWithTags(ctx context.Context, article *models.Article, tagIDs []uint64) error {
	tagIDs = uniqueIDs(tagIDs)
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(tagIDs) > 0 {
			var count int64
			if err := tx.Model(&models.Tag{}).Where("id IN ?", tagIDs).Count(&count).Error; err != nil {
				return err
			}
			if count != int64(len(tagIDs)) {
				return gorm.ErrForeignKeyViolated
			}
		}

		if err := tx.Create(article).Error; err != nil {
			return err
		}

		if len(tagIDs) == 0 {
			return nil
		}
		links := make([]*models.ArticleTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			links = append(links, &models.ArticleTag{ArticleID: article.ID, TagID: tagID})
		}
		return tx.Create(&links).Error
	})
}

// FindFiltered 过滤查询文章列表
// 文本对标题或正文做大小写不敏感的子串匹配，空串不过滤
// restrictIDs 非 nil 时仅返回集合内的文章（标签过滤结果）
// 按发布时间倒序，上限 limit 条
func (d *ArticleDAO) FindFiltered(ctx context.Context, textQuery string, restrictIDs []uint64, limit int) ([]*models.Article, error) {
	articles := make([]*models.Article, 0)

	query := d.Db.WithContext(ctx).Model(&models.Article{})
	if textQuery != "" {
		pattern := "%" + textQuery + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)", pattern, pattern)
	}
	if restrictIDs != nil {
		if len(restrictIDs) == 0 {
			return articles, nil
		}
		query = query.Where("id IN ?", restrictIDs)
	}

	err := query.
		Order("release_at DESC").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

// FindByAuthor 查询指定作者的文章，按发布时间倒序
func (d *ArticleDAO) FindByAuthor(ctx context.Context, userID uint64, limit int) ([]*models.Article, error) {
	articles := make([]*models.Article, 0)
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("release_at DESC").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

// UpdateWithTags 更新文章并整体替换标签关联，单事务提交
// 任一标签不存在则整体回滚，原关联保持不动
func (d *ArticleDAO) UpdateWithTags(ctx context.Context, article *models.Article, tagIDs []uint64) error {
	tagIDs = uniqueIDs(tagIDs)
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(tagIDs) > 0 {
			var count int64
			if err := tx.Model(&models.Tag{}).Where("id IN ?", tagIDs).Count(&count).Error; err != nil {
				return err
			}
			if count != int64(len(tagIDs)) {
				return gorm.ErrForeignKeyViolated
			}
		}

		err := tx.Model(&models.Article{}).
			Where("id = ?", article.ID).
			Select("title", "content", "thumbnail", "release_at", "updated_at").
			Updates(article).Error
		if err != nil {
			return err
		}

		if err := tx.Where("article_id = ?", article.ID).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
		if len(tagIDs) == 0 {
			return nil
		}
		links := make([]*models.ArticleTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			links = append(links, &models.ArticleTag{ArticleID: article.ID, TagID: tagID})
		}
		return tx.Create(&links).Error
	})
}

// DeleteCascade 删除文章并级联清理标签关联、互动记录和评论，单事务提交
func (d *ArticleDAO) DeleteCascade(ctx context.Context, articleID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", articleID).Delete(&models.Engagement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", articleID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", articleID).Delete(&models.Article{}).Error
	})
}

// IsDuplicateErr 是否唯一键冲突
func IsDuplicateErr(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
