package entity

import (
	"time"
)

// =============================================================================
// 聊天实体 — 房间、成员、消息
// 私聊房间按成员对去重，群聊允许任意成员数
// =============================================================================

// ChatRoom 聊天房间
type ChatRoom struct {
	ID          string     `gorm:"primaryKey;size:32" json:"id"`
	Name        string     `gorm:"size:200" json:"name"`
	IsGroup     bool       `gorm:"default:false;index" json:"is_group"`
	CreatedByID string     `gorm:"size:32;index" json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `gorm:"index" json:"-"`

	Members []ChatRoomMember `gorm:"foreignKey:RoomID" json:"members,omitempty"`
}

func (ChatRoom) TableName() string {
	return "chat_rooms"
}

// ChatRoomMember 房间成员
type ChatRoomMember struct {
	ID         string    `gorm:"primaryKey;size:32" json:"id"`
	RoomID     string    `gorm:"size:32;index;not null" json:"room_id"`
	EmployeeID string    `gorm:"size:32;index;not null" json:"employee_id"`
	JoinedAt   time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

func (ChatRoomMember) TableName() string {
	return "chat_room_members"
}

// ChatMessage 聊天消息，列表按created_at升序返回
type ChatMessage struct {
	ID         string    `gorm:"primaryKey;size:32" json:"id"`
	RoomID     string    `gorm:"size:32;index;not null" json:"room_id"`
	SenderID   string    `gorm:"size:32;index;not null" json:"sender_id"`
	SenderName string    `gorm:"size:100" json:"sender_name"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// RoomSummary 房间列表条目，附带未读数
type RoomSummary struct {
	Room        *ChatRoom `json:"room"`
	UnreadCount int64     `json:"unread_count"`
}
