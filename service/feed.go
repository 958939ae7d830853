package service

import (
	"Newsline/dao"
	"Newsline/models"
	"Newsline/pkg/log"
	"Newsline/types"
	"context"

	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
)

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	ComposeFeed(ctx context.Context, textQuery string, tagIDs []uint64, viewerID uint64) ([]*types.FeedArticle, error)
	ComposeMine(ctx context.Context, authorID uint64) ([]*types.FeedArticle, error)
	ComposeSingle(ctx context.Context, articleID, viewerID uint64) (*types.FeedArticle, error)
}

type FeedService struct {
	ArticleDAO        *dao.ArticleDAO
	TagService        ITagService
	EngagementService IEngagementService
}

// ComposeFeed 组装列表：解析标签 → 过滤文章 → 按发布时间倒序 → 逐篇补互动投影
// 观众未登录时个人状态恒为 false，不报错
func (s *FeedService) ComposeFeed(ctx context.Context, textQuery string, tagIDs []uint64, viewerID uint64) ([]*types.FeedArticle, error) {
	// 空标签集不做标签过滤
	var restrictIDs []uint64
	if len(tagIDs) > 0 {
		ids, err := s.TagService.Resolve(ctx, tagIDs)
		if err != nil {
			log.L.Error("resolve tags failed", zap.Error(err))
			return nil, ErrStorage
		}
		if len(ids) == 0 {
			return []*types.FeedArticle{}, nil
		}
		restrictIDs = ids
	}

	articles, err := s.ArticleDAO.FindFiltered(ctx, textQuery, restrictIDs, types.FeedLimit)
	if err != nil {
		log.L.Error("filter articles failed", zap.Error(err))
		return nil, ErrStorage
	}

	// 逐篇并发补投影，iter.MapErr 保持输入顺序
	annotated, err := iter.MapErr(articles, func(article **models.Article) (*types.FeedArticle, error) {
		return s.annotate(ctx, *article, viewerID)
	})
	if err != nil {
		return nil, err
	}
	return annotated, nil
}

// ComposeMine 组装作者自己的文章列表，观众即作者本人
func (s *FeedService) ComposeMine(ctx context.Context, authorID uint64) ([]*types.FeedArticle, error) {
	articles, err := s.ArticleDAO.FindByAuthor(ctx, authorID, types.FeedLimit)
	if err != nil {
		log.L.Error("find by author failed", zap.Error(err), zap.Uint64("user_id", authorID))
		return nil, ErrStorage
	}

	annotated, err := iter.MapErr(articles, func(article **models.Article) (*types.FeedArticle, error) {
		return s.annotate(ctx, *article, authorID)
	})
	if err != nil {
		return nil, err
	}
	return annotated, nil
}

// ComposeSingle 组装单篇
func (s *FeedService) ComposeSingle(ctx context.Context, articleID, viewerID uint64) (*types.FeedArticle, error) {
	article, err := s.ArticleDAO.GetByID(ctx, articleID)
	if err != nil {
		log.L.Error("get article failed", zap.Error(err), zap.Uint64("article_id", articleID))
		return nil, ErrStorage
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return s.annotate(ctx, article, viewerID)
}

// annotate 给文章附上互动投影和标签名
func (s *FeedService) annotate(ctx context.Context, article *models.Article, viewerID uint64) (*types.FeedArticle, error) {
	state, err := s.EngagementService.ProjectState(ctx, article.ID, viewerID)
	if err != nil {
		return nil, err
	}
	names, err := s.TagService.NamesByArticle(ctx, article.ID)
	if err != nil {
		log.L.Error("resolve tag names failed", zap.Error(err), zap.Uint64("article_id", article.ID))
		return nil, ErrStorage
	}

	return &types.FeedArticle{
		ID:            article.ID,
		UserID:        article.UserID,
		Title:         article.Title,
		Content:       article.Content,
		Thumbnail:     article.Thumbnail,
		ReleaseAt:     article.ReleaseAt,
		Tags:          names,
		UpvoteCount:   state.UpvoteCount,
		BookmarkCount: state.BookmarkCount,
		CommentCount:  state.CommentCount,
		HasUpvoted:    state.HasUpvoted,
		HasBookmarked: state.HasBookmarked,
	}, nil
}
