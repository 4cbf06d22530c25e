package sse

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Event 推送给前端的SSE事件
type Event struct {
	EventType string `json:"event"`
	Data      string `json:"data"`
}

// Client 一条活跃的SSE连接
type Client struct {
	ID     string
	UserID string
	Events chan Event
}

// Hub 管理所有SSE连接。同一用户可以有多条连接（多标签页）
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		logger:  logger,
	}
}

// Register 注册新连接
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	h.logger.Debug("SSE连接注册",
		zap.String("client_id", client.ID),
		zap.String("user_id", client.UserID),
		zap.Int("total", len(h.clients)))
}

// Unregister 注销连接并关闭其事件通道
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.Events)
		delete(h.clients, clientID)
		h.logger.Debug("SSE连接注销",
			zap.String("client_id", clientID),
			zap.Int("total", len(h.clients)))
	}
}

// SendToUser 给某个用户的全部连接投递事件，缓冲满则丢弃
func (h *Hub) SendToUser(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		if client.UserID != userID {
			continue
		}
		select {
		case client.Events <- event:
		default:
			h.logger.Warn("SSE客户端缓冲已满，丢弃事件",
				zap.String("client_id", client.ID),
				zap.String("event", event.EventType))
		}
	}
}

// PublishChatMessage 向房间成员推送新消息事件
func (h *Hub) PublishChatMessage(memberIDs []string, roomID, messageID, senderID string) {
	payload, _ := json.Marshal(map[string]string{
		"room_id":    roomID,
		"message_id": messageID,
		"sender_id":  senderID,
	})
	event := Event{EventType: "chat_message", Data: string(payload)}
	for _, memberID := range memberIDs {
		h.SendToUser(memberID, event)
	}
}
