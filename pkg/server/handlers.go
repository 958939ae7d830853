package server

import "Newsline/handler"

// Handlers 所有注册到引擎的处理器
type Handlers struct {
	News     *handler.News
	Tags     *handler.TagHandler
	Comments *handler.CommentHandler
	WS       *handler.WSHandler
}
