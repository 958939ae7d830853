package handler

import (
	"Newsline/config"
	"Newsline/middleware"
	"Newsline/pkg/context"
	"Newsline/pkg/response"
	"Newsline/service"
	"Newsline/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type News struct {
	Config            *config.Config
	FeedService       service.IFeedService
	ArticleService    service.IArticleService
	EngagementService service.IEngagementService
}

func (h *News) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	viewer := middleware.OptionalAuth(secret)

	g := r.Group("/v1/news")
	g.GET("", viewer, context.Wrap(h.ListNews))
	g.GET("/mine", authorize, context.Wrap(h.MyNews))
	g.GET("/:news_id", viewer, context.Wrap(h.GetNews))
	g.POST("/create", authorize, context.Wrap(h.CreateNews))
	g.POST("/update", authorize, context.Wrap(h.UpdateNews))
	g.POST("/delete", authorize, context.Wrap(h.DeleteNews))
	g.POST("/toggle", authorize, context.Wrap(h.Toggle))
}

// ListNews 新闻列表，支持自由文本和多标签过滤
func (h *News) ListNews(c *gin.Context) error {
	var req types.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	news, err := h.FeedService.ComposeFeed(c.Request.Context(), req.Query, req.TagIDs, context.ViewerID(c))
	if err != nil {
		return err
	}

	response.Success(c, types.FeedResponse{News: news})
	return nil
}

// MyNews 我的文章列表
func (h *News) MyNews(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	news, err := h.FeedService.ComposeMine(c.Request.Context(), uint64(userID))
	if err != nil {
		return err
	}

	response.Success(c, types.FeedResponse{News: news})
	return nil
}

// GetNews 单篇新闻
func (h *News) GetNews(c *gin.Context) error {
	articleID, err := strconv.ParseUint(c.Param("news_id"), 10, 64)
	if err != nil || articleID == 0 {
		return response.NewError(http.StatusBadRequest, "news_id 参数错误")
	}

	news, err := h.FeedService.ComposeSingle(c.Request.Context(), articleID, context.ViewerID(c))
	if err != nil {
		return err
	}

	response.Success(c, news)
	return nil
}

// CreateNews 发布新闻
func (h *News) CreateNews(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	articleID, err := h.ArticleService.CreateArticle(c.Request.Context(), uint64(userID), &req)
	if err != nil {
		return err
	}

	response.Success(c, types.CreateArticleResponse{ArticleID: articleID})
	return nil
}

// UpdateNews 编辑新闻，仅作者可改
func (h *News) UpdateNews(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.ArticleService.UpdateArticle(c.Request.Context(), uint64(userID), &req); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}

// DeleteNews 删除新闻，仅作者可删
func (h *News) DeleteNews(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.DeleteArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.ArticleService.DeleteArticle(c.Request.Context(), req.ArticleID, uint64(userID)); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}

// Toggle 点赞/收藏开关
func (h *News) Toggle(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	kind := types.EngagementKindFromName(req.Kind)
	if kind == 0 {
		return response.NewError(http.StatusBadRequest, "kind 参数错误")
	}

	result, err := h.EngagementService.Toggle(c.Request.Context(), uint64(userID), req.ArticleID, kind)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}
