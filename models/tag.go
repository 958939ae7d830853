package models

import "time"

// Tag 标签表，创建后不可变
type Tag struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(64);not null;uniqueIndex:uk_tags_name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Tag) TableName() string {
	return "tags"
}

// ArticleTag 文章与标签的中间表
// 联合唯一索引保证 (article_id, tag_id) 组合唯一
type ArticleTag struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ArticleID uint64    `gorm:"column:article_id;not null;uniqueIndex:uk_article_tag,priority:1" json:"article_id"`
	TagID     uint64    `gorm:"column:tag_id;not null;uniqueIndex:uk_article_tag,priority:2;index:idx_tag_id" json:"tag_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ArticleTag) TableName() string {
	return "article_tags"
}
