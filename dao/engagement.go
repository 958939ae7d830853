package dao

import (
	"Newsline/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type EngagementDAO struct {
	Repo[models.Engagement]
}

func NewEngagementDAO(db *gorm.DB) *EngagementDAO {
	return &EngagementDAO{Repo: NewRepo[models.Engagement](db)}
}

// Toggle 翻转一条互动记录的存在性
// 先尝试删除：删到了说明之前生效，本次取消
// 删不到则插入；插入撞唯一键说明并发下别人先翻成了生效，顺势再删一次
// 同一 (article, user, kind) 上的并发翻转最终只会落在 {存在, 不存在} 之一
func (d *EngagementDAO) Toggle(ctx context.Context, articleID, userID uint64, kind uint8) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("article_id = ? AND user_id = ? AND kind = ?", articleID, userID, kind).
		Delete(&models.Engagement{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	record := &models.Engagement{ArticleID: articleID, UserID: userID, Kind: kind}
	err := d.Db.WithContext(ctx).Create(record).Error
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, err
	}

	// 并发激活，翻转为取消
	res = d.Db.WithContext(ctx).
		Where("article_id = ? AND user_id = ? AND kind = ?", articleID, userID, kind).
		Delete(&models.Engagement{})
	if res.Error != nil {
		return false, res.Error
	}
	return false, nil
}

// Count 统计某篇文章某类互动的生效数量，实时聚合
func (d *EngagementDAO) Count(ctx context.Context, articleID uint64, kind uint8) (int64, error) {
	return d.CountByWhere(ctx, "article_id = ? AND kind = ?", articleID, kind)
}

// Exists 某个用户对某篇文章的某类互动是否生效
func (d *EngagementDAO) Exists(ctx context.Context, articleID, userID uint64, kind uint8) (bool, error) {
	return d.IsExist(ctx, "article_id = ? AND user_id = ? AND kind = ?", articleID, userID, kind)
}
