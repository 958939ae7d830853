package models

import "time"

// Article 新闻文章主表
// 标题全局唯一（精确匹配），由唯一索引保证
type Article struct {
	// 雪花算法ID，关闭自增
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Title     string    `gorm:"column:title;type:varchar(200);not null;uniqueIndex:uk_articles_title" json:"title"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	Thumbnail string    `gorm:"column:thumbnail;type:varchar(500);default:''" json:"thumbnail"` // 缩略图 URL，不做解析
	ReleaseAt time.Time `gorm:"column:release_at;index:idx_release_at" json:"release_at"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Article) TableName() string {
	return "articles"
}
