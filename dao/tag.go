package dao

import (
	"Newsline/models"
	"context"

	"gorm.io/gorm"
)

type TagDAO struct {
	Repo[models.Tag]
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{Repo: NewRepo[models.Tag](db)}
}

// Create 创建标签
func (d *TagDAO) Create(ctx context.Context, tag *models.Tag) error {
	return d.Db.WithContext(ctx).Create(tag).Error
}

// FindByIDs 根据 ID 列表查询标签
func (d *TagDAO) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Tag, error) {
	tags := make([]*models.Tag, 0)
	if len(ids) == 0 {
		return tags, nil
	}
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&tags).Error
	return tags, err
}

// FindByName - 按名称模糊搜索标签（大小写不敏感），按名称排序
func (d *TagDAO) FindByName(ctx context.Context, keyword string, limit int) ([]*models.Tag, error) {
	tags := make([]*models.Tag, 0)
	query := d.Db.WithContext(ctx).Model(&models.Tag{})
	if keyword != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+keyword+"%")
	}
	err := query.
		Order("name ASC").
		Limit(limit).
		Find(&tags).Error
	return tags, err
}

// ResolveArticleIDs 把一组标签解析为命中的文章ID集合
// matchAll=true 要求文章带齐全部标签（AND），否则任一命中即可（OR）
// 不存在的标签ID天然无法命中，不报错
func (d *TagDAO) ResolveArticleIDs(ctx context.Context, tagIDs []uint64, matchAll bool) ([]uint64, error) {
	articleIDs := make([]uint64, 0)
	tagIDs = uniqueIDs(tagIDs)
	if len(tagIDs) == 0 {
		return articleIDs, nil
	}

	query := d.Db.WithContext(ctx).
		Model(&models.ArticleTag{}).
		Where("tag_id IN ?", tagIDs).
		Group("article_id")
	if matchAll {
		query = query.Having("COUNT(DISTINCT tag_id) = ?", len(tagIDs))
	}

	err := query.Pluck("article_id", &articleIDs).Error
	return articleIDs, err
}

// GetTagIDsByArticle 获取文章关联的所有标签ID
func (d *TagDAO) GetTagIDsByArticle(ctx context.Context, articleID uint64) ([]uint64, error) {
	tagIDs := make([]uint64, 0)
	err := d.Db.WithContext(ctx).
		Model(&models.ArticleTag{}).
		Where("article_id = ?", articleID).
		Pluck("tag_id", &tagIDs).Error
	return tagIDs, err
}

// GetNamesByArticle 获取文章关联的标签名
func (d *TagDAO) GetNamesByArticle(ctx context.Context, articleID uint64) ([]string, error) {
	names := make([]string, 0)
	err := d.Db.WithContext(ctx).
		Model(&models.Tag{}).
		Joins("INNER JOIN article_tags ON article_tags.tag_id = tags.id").
		Where("article_tags.article_id = ?", articleID).
		Order("tags.name ASC").
		Pluck("tags.name", &names).Error
	return names, err
}
