package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/MrSingh0729/transs-flow-final/internal/chat/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/chat/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/chat/sse"
)

// 业务校验错误
var (
	// ErrNotMember 非房间成员
	ErrNotMember = errors.New("not a member of this room")
	// ErrSelfChat 不能和自己建私聊
	ErrSelfChat = errors.New("cannot open a private chat with yourself")
	// ErrEmptyContent 消息内容为空
	ErrEmptyContent = errors.New("message content is empty")
)

// ChatService 聊天业务逻辑
// 未读计数存Redis，Redis不可用时未读数退化为0
type ChatService struct {
	repo   *repository.ChatRepository
	hub    *sse.Hub
	rdb    *redis.Client
	logger *zap.Logger
}

func NewChatService(repo *repository.ChatRepository, hub *sse.Hub, rdb *redis.Client, logger *zap.Logger) *ChatService {
	return &ChatService{repo: repo, hub: hub, rdb: rdb, logger: logger}
}

func newID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func unreadKey(employeeID, roomID string) string {
	return fmt.Sprintf("chat:unread:%s:%s", employeeID, roomID)
}

// OpenPrivateRoom 打开与另一员工的私聊，已存在则直接返回
func (s *ChatService) OpenPrivateRoom(ctx context.Context, userID, peerID string) (*entity.ChatRoom, error) {
	if userID == peerID {
		return nil, ErrSelfChat
	}

	existing, err := s.repo.FindPrivateRoom(ctx, userID, peerID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	room := &entity.ChatRoom{
		ID:          newID(),
		IsGroup:     false,
		CreatedByID: userID,
	}
	members := []entity.ChatRoomMember{
		{ID: newID(), EmployeeID: userID},
		{ID: newID(), EmployeeID: peerID},
	}
	if err := s.repo.CreateRoom(ctx, room, members); err != nil {
		return nil, err
	}
	room.Members = members
	s.logger.Info("私聊房间已创建",
		zap.String("room_id", room.ID),
		zap.String("user", userID),
		zap.String("peer", peerID))
	return room, nil
}

// CreateGroupRoom 创建群聊，创建者自动加入
func (s *ChatService) CreateGroupRoom(ctx context.Context, userID, name string, memberIDs []string) (*entity.ChatRoom, error) {
	room := &entity.ChatRoom{
		ID:          newID(),
		Name:        name,
		IsGroup:     true,
		CreatedByID: userID,
	}

	seen := map[string]bool{userID: true}
	members := []entity.ChatRoomMember{{ID: newID(), EmployeeID: userID}}
	for _, id := range memberIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		members = append(members, entity.ChatRoomMember{ID: newID(), EmployeeID: id})
	}

	if err := s.repo.CreateRoom(ctx, room, members); err != nil {
		return nil, err
	}
	room.Members = members
	s.logger.Info("群聊房间已创建",
		zap.String("room_id", room.ID),
		zap.String("name", name),
		zap.Int("members", len(members)))
	return room, nil
}

// ListRooms 用户的房间列表，附带Redis未读数
func (s *ChatService) ListRooms(ctx context.Context, userID string) ([]entity.RoomSummary, error) {
	rooms, err := s.repo.FindRoomsByMember(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]entity.RoomSummary, 0, len(rooms))
	for i := range rooms {
		summaries = append(summaries, entity.RoomSummary{
			Room:        &rooms[i],
			UnreadCount: s.unreadCount(ctx, userID, rooms[i].ID),
		})
	}
	return summaries, nil
}

// PostMessage 发送消息：落库、SSE推送、给其他成员加未读
func (s *ChatService) PostMessage(ctx context.Context, roomID, senderID, senderName, content string) (*entity.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	room, err := s.repo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !s.containsMember(room, senderID) {
		return nil, ErrNotMember
	}

	msg := &entity.ChatMessage{
		ID:         newID(),
		RoomID:     roomID,
		SenderID:   senderID,
		SenderName: senderName,
		Content:    content,
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	memberIDs := make([]string, 0, len(room.Members))
	for _, m := range room.Members {
		if m.EmployeeID == senderID {
			continue
		}
		memberIDs = append(memberIDs, m.EmployeeID)
		s.incrUnread(ctx, m.EmployeeID, roomID)
	}
	s.hub.PublishChatMessage(memberIDs, roomID, msg.ID, senderID)

	return msg, nil
}

// GetMessages 读取房间消息并清零自己的未读数
func (s *ChatService) GetMessages(ctx context.Context, roomID, userID string, page, pageSize int) ([]entity.ChatMessage, int64, error) {
	ok, err := s.repo.IsMember(ctx, roomID, userID)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, ErrNotMember
	}

	messages, total, err := s.repo.FindMessages(ctx, roomID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	s.clearUnread(ctx, userID, roomID)
	return messages, total, nil
}

func (s *ChatService) containsMember(room *entity.ChatRoom, employeeID string) bool {
	for _, m := range room.Members {
		if m.EmployeeID == employeeID {
			return true
		}
	}
	return false
}

func (s *ChatService) unreadCount(ctx context.Context, employeeID, roomID string) int64 {
	if s.rdb == nil {
		return 0
	}
	n, err := s.rdb.Get(ctx, unreadKey(employeeID, roomID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		s.logger.Warn("读取未读计数失败", zap.Error(err))
	}
	return n
}

func (s *ChatService) incrUnread(ctx context.Context, employeeID, roomID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(ctx, unreadKey(employeeID, roomID)).Err(); err != nil {
		s.logger.Warn("递增未读计数失败", zap.Error(err))
	}
}

func (s *ChatService) clearUnread(ctx context.Context, employeeID, roomID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, unreadKey(employeeID, roomID)).Err(); err != nil {
		s.logger.Warn("清除未读计数失败", zap.Error(err))
	}
}
