package types

// TagSearchLimit 标签搜索展示上限
const TagSearchLimit = 18

// 多标签过滤语义
const (
	TagMatchAll = "and" // 必须包含全部所选标签
	TagMatchAny = "or"  // 包含任意一个即可
)

// TagItem 标签视图
type TagItem struct {
	ID   uint64 `json:"tag_id"`
	Name string `json:"tag"`
}

// TagSearchResponse 标签搜索响应
// HasMore 表示真实匹配数超出返回的切片
type TagSearchResponse struct {
	Tags    []*TagItem `json:"tags"`
	HasMore bool       `json:"has_more"`
}
