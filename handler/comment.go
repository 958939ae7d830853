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

type CommentHandler struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *CommentHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/comments")
	g.POST("/create", authorize, context.Wrap(h.CreateComment))
	g.GET("/list/:news_id", context.Wrap(h.ListComments))
}

// CreateComment 发表评论
func (h *CommentHandler) CreateComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	comment, err := h.CommentService.AddComment(c.Request.Context(), uint64(userID), &req)
	if err != nil {
		return err
	}

	response.Success(c, comment)
	return nil
}

// ListComments 获取评论列表
func (h *CommentHandler) ListComments(c *gin.Context) error {
	articleID, err := strconv.ParseUint(c.Param("news_id"), 10, 64)
	if err != nil || articleID == 0 {
		return response.NewError(http.StatusBadRequest, "news_id 参数错误")
	}

	result, err := h.CommentService.ListComments(c.Request.Context(), articleID)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}
