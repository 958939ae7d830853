package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveArticleIDs_AndSemantics(t *testing.T) {
	db := newTestDB(t)
	d := NewTagDAO(db)
	ctx := context.Background()

	tagA := mustCreateTag(t, db, "economy")
	tagB := mustCreateTag(t, db, "europe")
	now := time.Now()

	// X 带 {A,B}，Y 只带 {A}
	mustCreateArticle(t, db, 1, 10, "x", now)
	mustLinkTag(t, db, 1, tagA.ID)
	mustLinkTag(t, db, 1, tagB.ID)
	mustCreateArticle(t, db, 2, 10, "y", now)
	mustLinkTag(t, db, 2, tagA.ID)

	ids, err := d.ResolveArticleIDs(ctx, []uint64{tagA.ID, tagB.ID}, true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{1}, ids)

	ids, err = d.ResolveArticleIDs(ctx, []uint64{tagA.ID}, true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{1, 2}, ids)

	// 未知标签ID不报错，AND 语义下拉空整个结果
	ids, err = d.ResolveArticleIDs(ctx, []uint64{tagA.ID, 9999}, true)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// 空标签集不构成过滤条件
	ids, err = d.ResolveArticleIDs(ctx, nil, true)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestResolveArticleIDs_DuplicateTagIDs(t *testing.T) {
	db := newTestDB(t)
	d := NewTagDAO(db)
	ctx := context.Background()

	tag := mustCreateTag(t, db, "economy")
	mustCreateArticle(t, db, 1, 10, "x", time.Now())
	mustLinkTag(t, db, 1, tag.ID)

	// 过滤条件是集合语义，重复ID不抬高 AND 阈值
	ids, err := d.ResolveArticleIDs(ctx, []uint64{tag.ID, tag.ID}, true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{1}, ids)
}

func TestResolveArticleIDs_OrSemantics(t *testing.T) {
	db := newTestDB(t)
	d := NewTagDAO(db)
	ctx := context.Background()

	tagA := mustCreateTag(t, db, "tech")
	tagB := mustCreateTag(t, db, "science")
	now := time.Now()

	mustCreateArticle(t, db, 1, 10, "only a", now)
	mustLinkTag(t, db, 1, tagA.ID)
	mustCreateArticle(t, db, 2, 10, "only b", now)
	mustLinkTag(t, db, 2, tagB.ID)
	mustCreateArticle(t, db, 3, 10, "untagged", now)

	ids, err := d.ResolveArticleIDs(ctx, []uint64{tagA.ID, tagB.ID}, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{1, 2}, ids)
}

func TestFindByName_SubstringCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	d := NewTagDAO(db)
	ctx := context.Background()

	mustCreateTag(t, db, "World Politics")
	mustCreateTag(t, db, "politics")
	mustCreateTag(t, db, "sports")

	tags, err := d.FindByName(ctx, "POLIT", 10)
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	// 空关键字列出全部
	tags, err = d.FindByName(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, tags, 3)
}

func TestFindByName_Bounded(t *testing.T) {
	db := newTestDB(t)
	d := NewTagDAO(db)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		mustCreateTag(t, db, fmt.Sprintf("topic-%02d", i))
	}

	tags, err := d.FindByName(ctx, "topic", 19)
	require.NoError(t, err)
	assert.Len(t, tags, 19)
}

func TestGetNamesByArticle(t *testing.T) {
	db := newTestDB(t)
	d := NewTagDAO(db)
	ctx := context.Background()

	tagA := mustCreateTag(t, db, "bravo")
	tagB := mustCreateTag(t, db, "alpha")
	mustCreateArticle(t, db, 1, 10, "named", time.Now())
	mustLinkTag(t, db, 1, tagA.ID)
	mustLinkTag(t, db, 1, tagB.ID)

	names, err := d.GetNamesByArticle(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo"}, names)

	names, err = d.GetNamesByArticle(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, names)
}
