package service

import (
	"Newsline/config"
	"Newsline/dao"
	"Newsline/types"
	"context"
)

var _ ITagService = (*TagService)(nil)

type ITagService interface {
	Resolve(ctx context.Context, tagIDs []uint64) ([]uint64, error)
	Search(ctx context.Context, keyword string) (*types.TagSearchResponse, error)
	NamesByArticle(ctx context.Context, articleID uint64) ([]string, error)
}

type TagService struct {
	TagDAO *dao.TagDAO
	Config *config.Config
}

// Resolve 把所选标签解析为命中的文章ID集合
// 多标签语义由配置决定，默认 AND（必须带齐全部标签）
// 空标签集不构成过滤，调用方不应再拿结果做交集
func (s *TagService) Resolve(ctx context.Context, tagIDs []uint64) ([]uint64, error) {
	matchAll := true
	if s.Config.Feed != nil && s.Config.Feed.TagMatch == types.TagMatchAny {
		matchAll = false
	}
	return s.TagDAO.ResolveArticleIDs(ctx, tagIDs, matchAll)
}

// Search 标签名模糊搜索，最多返回 18 条
// 多查一条用来区分“还有更多”和“没有更多”
func (s *TagService) Search(ctx context.Context, keyword string) (*types.TagSearchResponse, error) {
	tags, err := s.TagDAO.FindByName(ctx, keyword, types.TagSearchLimit+1)
	if err != nil {
		return nil, err
	}

	hasMore := len(tags) > types.TagSearchLimit
	if hasMore {
		tags = tags[:types.TagSearchLimit]
	}

	items := make([]*types.TagItem, 0, len(tags))
	for _, tag := range tags {
		items = append(items, &types.TagItem{ID: tag.ID, Name: tag.Name})
	}
	return &types.TagSearchResponse{Tags: items, HasMore: hasMore}, nil
}

// NamesByArticle 文章的标签名列表，用于展示
func (s *TagService) NamesByArticle(ctx context.Context, articleID uint64) ([]string, error) {
	return s.TagDAO.GetNamesByArticle(ctx, articleID)
}
