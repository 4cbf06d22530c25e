package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MrSingh0729/transs-flow-final/internal/chat/entity"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// ChatRepository 聊天数据访问层
type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// CreateRoom 在事务中创建房间及其成员
func (r *ChatRepository) CreateRoom(ctx context.Context, room *entity.ChatRoom, members []entity.ChatRoomMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return fmt.Errorf("create chat room: %w", err)
		}
		for i := range members {
			members[i].RoomID = room.ID
		}
		if len(members) > 0 {
			if err := tx.Create(&members).Error; err != nil {
				return fmt.Errorf("create room members: %w", err)
			}
		}
		return nil
	})
}

// FindPrivateRoom 查找两人之间已存在的私聊房间，用于去重
func (r *ChatRepository) FindPrivateRoom(ctx context.Context, empA, empB string) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := r.db.WithContext(ctx).
		Joins("JOIN chat_room_members m1 ON m1.room_id = chat_rooms.id AND m1.employee_id = ?", empA).
		Joins("JOIN chat_room_members m2 ON m2.room_id = chat_rooms.id AND m2.employee_id = ?", empB).
		Where("chat_rooms.is_group = ? AND chat_rooms.deleted_at IS NULL", false).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find private room: %w", err)
	}
	return &room, nil
}

// FindRoomByID 房间详情，含成员
func (r *ChatRepository) FindRoomByID(ctx context.Context, id string) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find chat room: %w", err)
	}
	return &room, nil
}

// FindRoomsByMember 某员工参与的全部房间，最近更新的在前
func (r *ChatRepository) FindRoomsByMember(ctx context.Context, employeeID string) ([]entity.ChatRoom, error) {
	var rooms []entity.ChatRoom
	err := r.db.WithContext(ctx).
		Preload("Members").
		Joins("JOIN chat_room_members m ON m.room_id = chat_rooms.id AND m.employee_id = ?", employeeID).
		Where("chat_rooms.deleted_at IS NULL").
		Order("chat_rooms.updated_at DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("find rooms by member: %w", err)
	}
	return rooms, nil
}

// IsMember 员工是否为房间成员
func (r *ChatRepository) IsMember(ctx context.Context, roomID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.ChatRoomMember{}).
		Where("room_id = ? AND employee_id = ?", roomID, employeeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}
	return count > 0, nil
}

// CreateMessage 保存消息并刷新房间updated_at
func (r *ChatRepository) CreateMessage(ctx context.Context, msg *entity.ChatMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return fmt.Errorf("create chat message: %w", err)
		}
		if err := tx.Model(&entity.ChatRoom{}).
			Where("id = ?", msg.RoomID).
			Update("updated_at", msg.CreatedAt).Error; err != nil {
			return fmt.Errorf("touch chat room: %w", err)
		}
		return nil
	})
}

// FindMessages 房间消息，按时间升序分页
func (r *ChatRepository) FindMessages(ctx context.Context, roomID string, page, pageSize int) ([]entity.ChatMessage, int64, error) {
	var messages []entity.ChatMessage
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entity.ChatMessage{}).
		Where("room_id = ?", roomID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count messages: %w", err)
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&messages).Error
	if err != nil {
		return nil, 0, fmt.Errorf("find messages: %w", err)
	}
	return messages, total, nil
}
