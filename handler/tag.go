package handler

import (
	"Newsline/pkg/context"
	"Newsline/pkg/response"
	"Newsline/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	TagService service.ITagService
}

func (h *TagHandler) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/tags")
	g.GET("", context.Wrap(h.SearchTags))
}

// SearchTags 标签搜索，q 为空时列出全部（仍受展示上限约束）
func (h *TagHandler) SearchTags(c *gin.Context) error {
	result, err := h.TagService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}
