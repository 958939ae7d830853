package service

import (
	"Newsline/dao"
	"Newsline/pkg/log"
	"Newsline/socket"
	"Newsline/types"
	"context"

	"go.uber.org/zap"
)

var _ IEngagementService = (*EngagementService)(nil)

type IEngagementService interface {
	Toggle(ctx context.Context, userID, articleID uint64, kind uint8) (*types.ToggleResponse, error)
	ProjectState(ctx context.Context, articleID, viewerID uint64) (*types.EngagementState, error)
}

// IEngagementCache 计数缓存
// 只做加速：未命中或出错一律回源聚合，缓存不作数
type IEngagementCache interface {
	GetCount(ctx context.Context, articleID uint64, kind uint8) (int64, bool)
	SetCount(ctx context.Context, articleID uint64, kind uint8, count int64)
	Invalidate(ctx context.Context, articleID uint64, kind uint8)
}

type EngagementService struct {
	EngagementDAO *dao.EngagementDAO
	CommentDAO    *dao.CommentDAO
	ArticleDAO    *dao.ArticleDAO
	Cache         IEngagementCache
	Hub           *socket.Hub
}

// Toggle 翻转点赞/收藏状态
// 返回的计数永远从记录集实时聚合，不取缓存
func (s *EngagementService) Toggle(ctx context.Context, userID, articleID uint64, kind uint8) (*types.ToggleResponse, error) {
	exist, err := s.ArticleDAO.IsExist(ctx, "id = ?", articleID)
	if err != nil {
		log.L.Error("toggle precheck failed", zap.Error(err), zap.Uint64("article_id", articleID))
		return nil, ErrStorage
	}
	if !exist {
		return nil, ErrArticleNotFound
	}

	active, err := s.EngagementDAO.Toggle(ctx, articleID, userID, kind)
	if err != nil {
		log.L.Error("toggle failed", zap.Error(err),
			zap.Uint64("article_id", articleID), zap.Uint64("user_id", userID))
		return nil, ErrStorage
	}

	if s.Cache != nil {
		s.Cache.Invalidate(ctx, articleID, kind)
	}

	count, err := s.EngagementDAO.Count(ctx, articleID, kind)
	if err != nil {
		log.L.Error("toggle recount failed", zap.Error(err), zap.Uint64("article_id", articleID))
		return nil, ErrStorage
	}
	if s.Cache != nil {
		s.Cache.SetCount(ctx, articleID, kind, count)
	}

	s.Hub.Publish(&types.Event{
		Type:      types.EventEngagementChanged,
		ArticleID: articleID,
		UserID:    userID,
	})
	return &types.ToggleResponse{Active: active, Count: count}, nil
}

// ProjectState 面向单个观众的互动投影，只读
// 观众未登录（viewerID=0）时个人状态恒为 false
func (s *EngagementService) ProjectState(ctx context.Context, articleID, viewerID uint64) (*types.EngagementState, error) {
	state := &types.EngagementState{}

	var err error
	if state.UpvoteCount, err = s.countThrough(ctx, articleID, types.EngagementUpvote); err != nil {
		return nil, ErrStorage
	}
	if state.BookmarkCount, err = s.countThrough(ctx, articleID, types.EngagementBookmark); err != nil {
		return nil, ErrStorage
	}
	if state.CommentCount, err = s.CommentDAO.CountByArticle(ctx, articleID); err != nil {
		return nil, ErrStorage
	}

	if viewerID == 0 {
		return state, nil
	}

	if state.HasUpvoted, err = s.EngagementDAO.Exists(ctx, articleID, viewerID, types.EngagementUpvote); err != nil {
		return nil, ErrStorage
	}
	if state.HasBookmarked, err = s.EngagementDAO.Exists(ctx, articleID, viewerID, types.EngagementBookmark); err != nil {
		return nil, ErrStorage
	}
	return state, nil
}

// countThrough 读穿缓存取计数，未命中回源聚合再回填
func (s *EngagementService) countThrough(ctx context.Context, articleID uint64, kind uint8) (int64, error) {
	if s.Cache != nil {
		if count, ok := s.Cache.GetCount(ctx, articleID, kind); ok {
			return count, nil
		}
	}
	count, err := s.EngagementDAO.Count(ctx, articleID, kind)
	if err != nil {
		return 0, err
	}
	if s.Cache != nil {
		s.Cache.SetCount(ctx, articleID, kind, count)
	}
	return count, nil
}
