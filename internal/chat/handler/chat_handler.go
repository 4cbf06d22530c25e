package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MrSingh0729/transs-flow-final/internal/chat/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/chat/service"
	"github.com/MrSingh0729/transs-flow-final/internal/chat/sse"
)

// ChatHandler 聊天处理器，含SSE实时推送端点
type ChatHandler struct {
	svc *service.ChatService
	hub *sse.Hub
}

func NewChatHandler(svc *service.ChatService, hub *sse.Hub) *ChatHandler {
	return &ChatHandler{svc: svc, hub: hub}
}

// Response 通用响应结构，与accounts包保持一致
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{Code: 0, Message: "success", Data: data})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(400, Response{Code: 40000, Message: message})
}

func forbidden(c *gin.Context, message string) {
	c.JSON(403, Response{Code: 40300, Message: message})
}

func notFound(c *gin.Context, message string) {
	c.JSON(404, Response{Code: 40400, Message: message})
}

func internalError(c *gin.Context, message string) {
	c.JSON(500, Response{Code: 50000, Message: message})
}

func getUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

func getUserName(c *gin.Context) string {
	name, _ := c.Get("user_name")
	if n, ok := name.(string); ok {
		return n
	}
	return ""
}

// ListRooms 我的房间列表，带未读数
// GET /api/v1/chat/rooms
func (h *ChatHandler) ListRooms(c *gin.Context) {
	summaries, err := h.svc.ListRooms(c.Request.Context(), getUserID(c))
	if err != nil {
		internalError(c, "获取房间列表失败: "+err.Error())
		return
	}
	success(c, summaries)
}

// OpenPrivateRoomRequest 打开私聊请求
type OpenPrivateRoomRequest struct {
	PeerID string `json:"peer_id" binding:"required"`
}

// OpenPrivateRoom 打开与某员工的私聊，同一对成员只会有一个房间
// POST /api/v1/chat/rooms/private
func (h *ChatHandler) OpenPrivateRoom(c *gin.Context) {
	var req OpenPrivateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	room, err := h.svc.OpenPrivateRoom(c.Request.Context(), getUserID(c), req.PeerID)
	if err != nil {
		if errors.Is(err, service.ErrSelfChat) {
			badRequest(c, "不能和自己建私聊")
			return
		}
		internalError(c, "打开私聊失败: "+err.Error())
		return
	}
	success(c, room)
}

// CreateGroupRoomRequest 创建群聊请求
type CreateGroupRoomRequest struct {
	Name      string   `json:"name" binding:"required"`
	MemberIDs []string `json:"member_ids"`
}

// CreateGroupRoom 创建群聊
// POST /api/v1/chat/rooms/group
func (h *ChatHandler) CreateGroupRoom(c *gin.Context) {
	var req CreateGroupRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	room, err := h.svc.CreateGroupRoom(c.Request.Context(), getUserID(c), req.Name, req.MemberIDs)
	if err != nil {
		internalError(c, "创建群聊失败: "+err.Error())
		return
	}
	success(c, room)
}

// GetMessages 房间消息，按时间升序，读取后未读数清零
// GET /api/v1/chat/rooms/:id/messages
func (h *ChatHandler) GetMessages(c *gin.Context) {
	page := 1
	pageSize := 50
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 200 {
			pageSize = v
		}
	}

	messages, total, err := h.svc.GetMessages(c.Request.Context(), c.Param("id"), getUserID(c), page, pageSize)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c, "房间不存在")
			return
		}
		if errors.Is(err, service.ErrNotMember) {
			forbidden(c, "不是该房间成员")
			return
		}
		internalError(c, "获取消息失败: "+err.Error())
		return
	}
	success(c, gin.H{"items": messages, "total": total, "page": page, "page_size": pageSize})
}

// PostMessageRequest 发送消息请求
type PostMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// PostMessage 发送消息
// POST /api/v1/chat/rooms/:id/messages
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	msg, err := h.svc.PostMessage(c.Request.Context(), c.Param("id"), getUserID(c), getUserName(c), req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c, "房间不存在")
			return
		}
		if errors.Is(err, service.ErrNotMember) {
			forbidden(c, "不是该房间成员")
			return
		}
		if errors.Is(err, service.ErrEmptyContent) {
			badRequest(c, "消息内容不能为空")
			return
		}
		internalError(c, "发送消息失败: "+err.Error())
		return
	}
	c.JSON(201, Response{Code: 0, Message: "success", Data: msg})
}

// Stream SSE连接端点，认证走?token=查询参数
// GET /api/v1/chat/stream?token=xxx
func (h *ChatHandler) Stream(c *gin.Context) {
	userID := getUserID(c)
	clientID := fmt.Sprintf("%s_%d", userID, time.Now().UnixNano())

	client := &sse.Client{
		ID:     clientID,
		UserID: userID,
		Events: make(chan sse.Event, 64),
	}

	h.hub.Register(client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	c.Writer.WriteString("event: connected\ndata: {\"client_id\":\"" + clientID + "\"}\n\n")
	c.Writer.Flush()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()

	for {
		select {
		case <-clientGone:
			h.hub.Unregister(clientID)
			return
		case event, ok := <-client.Events:
			if !ok {
				return
			}
			c.Writer.WriteString(fmt.Sprintf("event: %s\ndata: %s\n\n", event.EventType, event.Data))
			c.Writer.Flush()
		case <-heartbeat.C:
			c.Writer.WriteString(": keepalive\n\n")
			c.Writer.Flush()
		}
	}
}
