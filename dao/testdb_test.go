package dao

import (
	"Newsline/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 内存库，单连接串行化并发写
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Article{},
		&models.Tag{},
		&models.ArticleTag{},
		&models.Engagement{},
		&models.Comment{},
	))
	return db
}

func mustCreateArticle(t *testing.T, db *gorm.DB, id, userID uint64, title string, releaseAt time.Time) *models.Article {
	t.Helper()
	article := &models.Article{
		ID:        id,
		UserID:    userID,
		Title:     title,
		Content:   "content of " + title,
		ReleaseAt: releaseAt,
	}
	require.NoError(t, db.Create(article).Error)
	return article
}

func mustCreateTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name}
	require.NoError(t, NewTagDAO(db).Create(context.Background(), tag))
	return tag
}

func mustLinkTag(t *testing.T, db *gorm.DB, articleID, tagID uint64) {
	t.Helper()
	require.NoError(t, db.Create(&models.ArticleTag{ArticleID: articleID, TagID: tagID}).Error)
}
