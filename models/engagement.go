package models

import "time"

// Engagement 互动记录（点赞/收藏）
// 对应表 engagements
// 唯一键: article_id + user_id + kind
// 记录存在即生效，取消即删除行，不用状态位
type Engagement struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ArticleID uint64    `gorm:"column:article_id;not null;uniqueIndex:uk_article_user_kind,priority:1" json:"article_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_article_user_kind,priority:2" json:"user_id"`
	Kind      uint8     `gorm:"column:kind;not null;uniqueIndex:uk_article_user_kind,priority:3" json:"kind"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Engagement) TableName() string { return "engagements" }
