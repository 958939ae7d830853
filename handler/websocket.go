package handler

import (
	"Newsline/config"
	"Newsline/pkg/jwt"
	"Newsline/socket"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler 通知接入点
// 连接只接收广播，客户端上行仅用于心跳保活
type WSHandler struct {
	Config *config.Config
	Hub    *socket.Hub
}

func (h *WSHandler) RegisterRouter(r gin.IRouter) {
	r.GET("/ws", h.HandleWS)
}

func (h *WSHandler) HandleWS(c *gin.Context) {
	// 浏览器 WebSocket 不能带自定义头，Token 走查询参数，没带按匿名观众接入
	userID := uint64(0)
	if token := c.Query("token"); token != "" {
		if claims, err := jwt.ParseToken([]byte(h.Config.Jwt.Secret), "access", token); err == nil {
			userID = uint64(claims.UserID)
		}
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := h.Hub.Register(userID, conn)
	defer h.Hub.Unregister(client.ID)

	for {
		// 读到任何消息都当作心跳
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		client.Touch()
	}
}
