package service

import (
	"Newsline/pkg/response"
	"net/http"
)

// 业务错误，错误码稳定，存储层细节不外漏
var (
	ErrArticleNotFound = response.NewError(http.StatusNotFound, "文章不存在")
	ErrDuplicateTitle  = response.NewError(http.StatusConflict, "标题已存在，请换一个标题")
	ErrInvalidTag      = response.NewError(http.StatusUnprocessableEntity, "引用了不存在的标签")
	ErrForbidden       = response.NewError(http.StatusForbidden, "无权限操作他人的文章")
	ErrValidation      = response.NewError(http.StatusBadRequest, "缺少必填字段")
	ErrStorage         = response.NewError(http.StatusInternalServerError, "操作失败，请稍后重试")
)
