package socket

import (
	"Newsline/pkg/log"
	"Newsline/types"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
)

const (
	writeTimeout  = 5 * time.Second
	sweepInterval = 30 * time.Second
	idleTimeout   = 60 * time.Second
)

// Client 一条在线观众连接
type Client struct {
	ID       string
	UserID   uint64
	conn     *websocket.Conn
	mu       sync.Mutex // gorilla 连接写不并发安全
	lastPing int64      // Unix 秒
}

// Touch 刷新活跃时间
func (c *Client) Touch() {
	c.mu.Lock()
	c.lastPing = time.Now().Unix()
	c.mu.Unlock()
}

func (c *Client) write(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(v)
}

// Hub 通知广播中心
// 只做单向扇出：事件在源操作提交后进来，尽力推给每个在线连接
// 推送失败直接断开该连接并丢弃，不重试也不影响源操作
type Hub struct {
	clients cmap.ConcurrentMap[string, *Client]
}

func NewHub() *Hub {
	h := &Hub{clients: cmap.New[*Client]()}
	go h.sweep()
	return h
}

// Register 观众上线
func (h *Hub) Register(userID uint64, conn *websocket.Conn) *Client {
	client := &Client{
		ID:       uuid.NewString(),
		UserID:   userID,
		conn:     conn,
		lastPing: time.Now().Unix(),
	}
	h.clients.Set(client.ID, client)
	log.L.Info("observer connected",
		zap.String("client_id", client.ID),
		zap.Uint64("user_id", userID),
		zap.Int("online", h.clients.Count()),
	)
	return client
}

// Unregister 观众下线
func (h *Hub) Unregister(id string) {
	if client, ok := h.clients.Get(id); ok {
		h.clients.Remove(id)
		_ = client.conn.Close()
	}
}

// Online 当前在线连接数
func (h *Hub) Online() int {
	return h.clients.Count()
}

// Publish 广播状态变更事件，至多一次送达
func (h *Hub) Publish(event *types.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	for item := range h.clients.IterBuffered() {
		client := item.Val
		if err := client.write(event); err != nil {
			// 送不到就丢，连接一并清掉
			h.Unregister(client.ID)
		}
	}
}

// 清理假在线
func (h *Hub) sweep() {
	for {
		time.Sleep(sweepInterval)
		now := time.Now().Unix()

		for item := range h.clients.IterBuffered() {
			client := item.Val
			client.mu.Lock()
			idle := now - client.lastPing
			client.mu.Unlock()
			if idle > int64(idleTimeout/time.Second) {
				h.Unregister(client.ID)
			}
		}
	}
}
