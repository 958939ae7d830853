package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagSearch_HasMoreProbe(t *testing.T) {
	s := newTestStack(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		s.mustCreateTag(t, fmt.Sprintf("topic-%02d", i))
	}

	resp, err := s.tags.Search(ctx, "topic")
	require.NoError(t, err)
	assert.Len(t, resp.Tags, 18)
	assert.True(t, resp.HasMore)

	// 恰好等于上限时不报 HasMore
	resp, err = s.tags.Search(ctx, "topic-0")
	require.NoError(t, err)
	assert.Len(t, resp.Tags, 10)
	assert.False(t, resp.HasMore)
}

func TestTagSearch_EmptyKeywordListsAll(t *testing.T) {
	s := newTestStack(t)
	ctx := context.Background()

	s.mustCreateTag(t, "beta")
	s.mustCreateTag(t, "alpha")

	resp, err := s.tags.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, resp.Tags, 2)
	assert.Equal(t, "alpha", resp.Tags[0].Name)
	assert.Equal(t, "beta", resp.Tags[1].Name)
	assert.False(t, resp.HasMore)
}
