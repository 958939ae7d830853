package config

// Feed 列表查询行为配置
type Feed struct {
	// TagMatch 多标签过滤语义: and=必须全部命中(默认), or=任一命中
	TagMatch string `json:"tag_match" yaml:"tag_match"`
}
