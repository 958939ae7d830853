package service

import (
	"Newsline/types"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeFeed_OrderingNewestFirst(t *testing.T) {
	s := newTestStack(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		_, err := s.articles.CreateArticle(ctx, 10, &types.CreateArticleRequest{
			Title:     title,
			Content:   "body",
			ReleaseAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	feed, err := s.feed.ComposeFeed(ctx, "", nil, 0)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "newest", feed[0].Title)
	assert.Equal(t, "middle", feed[1].Title)
	assert.Equal(t, "oldest", feed[2].Title)
}

func TestComposeFeed_TagFilterAndSemantics(t *testing.T) {
	s := newTestStack(t)
	ctx := context.Background()

	tagA := s.mustCreateTag(t, "economy")
	tagB := s.mustCreateTag(t, "europe")
	tagC := s.mustCreateTag(t, "asia")

	both, err := s.articles.CreateArticle(ctx, 10, &types.CreateArticleRequest{
		Title: "both tags", Content: "body", TagIDs: []uint64{tagA.ID, tagB.ID},
	})
	require.NoError(t, err)
	_, err = s.articles.CreateArticle(ctx, 10, &types.CreateArticleRequest{
		Title: "only a", Content: "body", TagIDs: []uint64{tagA.ID},
	})
	require.NoError(t, err)

	// {A,B} 只命中带齐两个标签的文章
	feed, err := s.feed.ComposeFeed(ctx, "", []uint64{tagA.ID, tagB.ID}, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, both, feed[0].ID)
	assert.ElementsMatch(t, []string{"economy", "europe"}, feed[0].Tags)

	// {A} 命中两篇
	feed, err = s.feed.ComposeFeed(ctx, "", []uint64{tagA.ID}, 0)
	require.NoError(t, err)
	assert.Len(t, feed, 2)

	// {A,C} 拉空
	feed, err = s.feed.ComposeFeed(ctx, "", []uint64{tagA.ID, tagC.ID}, 0)
	require.NoError(t, err)
	assert.Empty(t, feed)

	// 空过滤命中全部
	feed, err = s.feed.ComposeFeed(ctx, "", nil, 0)
	require.NoError(t, err)
	assert.Len(t, feed, 2)
}

func TestComposeFeed_OrSemanticsFlag(t *testing.T) {
	s := newTestStack(t)
	s.config.Feed.TagMatch = types.TagMatchAny
	ctx := context.Background()

	tagA := s.mustCreateTag(t, "tech")
	tagB := s.mustCreateTag(t, "science")

	_, err := s.articles.CreateArticle(ctx, 10, &types.CreateArticleRequest{
		Title: "only a", Content: "body", TagIDs: []uint64{tagA.ID},
	})
	require.NoError(t, err)
	_, err = s.articles.CreateArticle(ctx, 10, &types.CreateArticleRequest{
		Title: "only b", Content: "body", TagIDs: []uint64{tagB.ID},
	})
	require.NoError(t, err)

	feed, err := s.feed.ComposeFeed(ctx, "", []uint64{tagA.ID, tagB.ID}, 0)
	require.NoError(t, err)
	assert.Len(t, feed, 2)
}

func TestComposeFeed_TextAndTagsIntersect(t *testing.T) {
	s := newTestStack(t)
	ctx := context.Background()

	tag := s.mustCreateTag(t, "finance")
	want, err := s.articles.CreateArticle(ctx, 10, &types.CreateArticleRequest{
		Title: "markets rally", Content: "body", TagIDs: []uint64{tag.ID},
	})
	require.NoError(t, err)
	_, err = s.articles.CreateArticle(ctx, 10, &types.CreateArticleRequest{
		Title: "markets slump", Content: "body",
	})
	require.NoError(t, err)

	feed, err := s.feed.ComposeFeed(ctx, "markets", []uint64{tag.ID}, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, want, feed[0].ID)
}

func TestComposeFeed_ViewerAnnotation(t *testing.T) {
	s := newTestStack(t)
	ctx := context.Background()

	articleID, err := s.articles.CreateArticle(ctx, 10, &types.CreateArticleRequest{Title: "annotated", Content: "body"})
	require.NoError(t, err)
	_, err = s.engagement.Toggle(ctx, 100, articleID, types.EngagementUpvote)
	require.NoError(t, err)

	// 匿名观众：计数可见，个人状态为 false
	feed, err := s.feed.ComposeFeed(ctx, "", nil, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.EqualValues(t, 1, feed[0].UpvoteCount)
	assert.False(t, feed[0].HasUpvoted)

	// 点过赞的观众
	feed, err = s.feed.ComposeFeed(ctx, "", nil, 100)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.True(t, feed[0].HasUpvoted)
}

func TestComposeSingle(t *testing.T) {
	s := newTestStack(t)
	ctx := context.Background()

	articleID, err := s.articles.CreateArticle(ctx, 10, &types.CreateArticleRequest{Title: "single", Content: "body"})
	require.NoError(t, err)

	news, err := s.feed.ComposeSingle(ctx, articleID, 0)
	require.NoError(t, err)
	assert.Equal(t, "single", news.Title)

	_, err = s.feed.ComposeSingle(ctx, 9999, 0)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestComposeMine_AuthorScoped(t *testing.T) {
	s := newTestStack(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	oldID, err := s.articles.CreateArticle(ctx, 10, &types.CreateArticleRequest{
		Title: "mine old", Content: "body", ReleaseAt: base,
	})
	require.NoError(t, err)
	newID, err := s.articles.CreateArticle(ctx, 10, &types.CreateArticleRequest{
		Title: "mine new", Content: "body", ReleaseAt: base.Add(time.Hour),
	})
	require.NoError(t, err)
	_, err = s.articles.CreateArticle(ctx, 11, &types.CreateArticleRequest{
		Title: "theirs", Content: "body", ReleaseAt: base.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	_, err = s.engagement.Toggle(ctx, 10, oldID, types.EngagementBookmark)
	require.NoError(t, err)

	// 只列自己的，按发布时间倒序，观众即作者本人
	mine, err := s.feed.ComposeMine(ctx, 10)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, newID, mine[0].ID)
	assert.Equal(t, oldID, mine[1].ID)
	assert.True(t, mine[1].HasBookmarked)

	mine, err = s.feed.ComposeMine(ctx, 11)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "theirs", mine[0].Title)
}
