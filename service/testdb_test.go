package service

import (
	"Newsline/config"
	"Newsline/dao"
	"Newsline/models"
	"Newsline/socket"
	"Newsline/types"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testStack struct {
	db         *gorm.DB
	config     *config.Config
	articles   *ArticleService
	tags       *TagService
	engagement *EngagementService
	comments   *CommentService
	feed       *FeedService
}

// newTestStack 内存库上的完整服务栈，缓存留空走回源路径
func newTestStack(t *testing.T) *testStack {
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

	cfg := &config.Config{Feed: &config.Feed{TagMatch: types.TagMatchAll}}
	hub := socket.NewHub()

	articleDAO := dao.NewArticleDAO(db)
	tagDAO := dao.NewTagDAO(db)
	engagementDAO := dao.NewEngagementDAO(db)
	commentDAO := dao.NewCommentDAO(db)

	tags := &TagService{TagDAO: tagDAO, Config: cfg}
	articles := &ArticleService{ArticleDAO: articleDAO, Hub: hub}
	engagement := &EngagementService{
		EngagementDAO: engagementDAO,
		CommentDAO:    commentDAO,
		ArticleDAO:    articleDAO,
		Hub:           hub,
	}
	comments := &CommentService{CommentDAO: commentDAO, ArticleDAO: articleDAO, Hub: hub}
	feed := &FeedService{ArticleDAO: articleDAO, TagService: tags, EngagementService: engagement}

	return &testStack{
		db:         db,
		config:     cfg,
		articles:   articles,
		tags:       tags,
		engagement: engagement,
		comments:   comments,
		feed:       feed,
	}
}

func (s *testStack) mustCreateTag(t *testing.T, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name}
	require.NoError(t, dao.NewTagDAO(s.db).Create(context.Background(), tag))
	return tag
}
