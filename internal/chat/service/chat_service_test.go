package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/MrSingh0729/transs-flow-final/internal/chat/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/chat/sse"
	"github.com/MrSingh0729/transs-flow-final/internal/testutil"
)

func setupChatService(t *testing.T) *ChatService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := repository.NewChatRepository(db)
	hub := sse.NewHub(zap.NewNop())
	return NewChatService(repo, hub, nil, zap.NewNop())
}

func TestOpenPrivateRoomDeduplicates(t *testing.T) {
	svc := setupChatService(t)
	ctx := context.Background()

	first, err := svc.OpenPrivateRoom(ctx, "alice", "bob")
	if err != nil {
		t.Fatalf("OpenPrivateRoom: %v", err)
	}
	if len(first.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(first.Members))
	}

	// 同一对用户再次打开，无论方向都返回同一个房间
	again, err := svc.OpenPrivateRoom(ctx, "alice", "bob")
	if err != nil {
		t.Fatalf("OpenPrivateRoom again: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("expected same room, got %q vs %q", again.ID, first.ID)
	}

	reversed, err := svc.OpenPrivateRoom(ctx, "bob", "alice")
	if err != nil {
		t.Fatalf("OpenPrivateRoom reversed: %v", err)
	}
	if reversed.ID != first.ID {
		t.Errorf("expected same room for reversed pair, got %q vs %q", reversed.ID, first.ID)
	}
}

func TestOpenPrivateRoomRejectsSelf(t *testing.T) {
	svc := setupChatService(t)
	if _, err := svc.OpenPrivateRoom(context.Background(), "alice", "alice"); !errors.Is(err, ErrSelfChat) {
		t.Fatalf("expected ErrSelfChat, got %v", err)
	}
}

func TestPostMessageRequiresMembership(t *testing.T) {
	svc := setupChatService(t)
	ctx := context.Background()

	room, err := svc.OpenPrivateRoom(ctx, "alice", "bob")
	if err != nil {
		t.Fatalf("OpenPrivateRoom: %v", err)
	}

	if _, err := svc.PostMessage(ctx, room.ID, "mallory", "Mallory", "hi"); !errors.Is(err, ErrNotMember) {
		t.Fatalf("expected ErrNotMember, got %v", err)
	}

	if _, err := svc.PostMessage(ctx, room.ID, "alice", "Alice", "   "); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}

	msg, err := svc.PostMessage(ctx, room.ID, "alice", "Alice", "产线L3的BTB压合数据已更新")
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	if msg.SenderID != "alice" || msg.RoomID != room.ID {
		t.Errorf("unexpected message: %+v", msg)
	}
}

func TestGetMessagesOrderAndAccess(t *testing.T) {
	svc := setupChatService(t)
	ctx := context.Background()

	room, err := svc.OpenPrivateRoom(ctx, "alice", "bob")
	if err != nil {
		t.Fatalf("OpenPrivateRoom: %v", err)
	}
	for _, content := range []string{"first", "second", "third"} {
		if _, err := svc.PostMessage(ctx, room.ID, "alice", "Alice", content); err != nil {
			t.Fatalf("PostMessage %q: %v", content, err)
		}
	}

	msgs, total, err := svc.GetMessages(ctx, room.ID, "bob", 1, 50)
	if err != nil {
		t.Fatalf("GetMessages: %v", err)
	}
	if total != 3 || len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got total=%d len=%d", total, len(msgs))
	}
	if msgs[0].Content != "first" || msgs[2].Content != "third" {
		t.Errorf("messages out of order: %v, %v", msgs[0].Content, msgs[2].Content)
	}

	// 非成员不可读
	if _, _, err := svc.GetMessages(ctx, room.ID, "mallory", 1, 50); !errors.Is(err, ErrNotMember) {
		t.Fatalf("expected ErrNotMember, got %v", err)
	}
}

func TestCreateGroupRoomIncludesCreator(t *testing.T) {
	svc := setupChatService(t)
	ctx := context.Background()

	room, err := svc.CreateGroupRoom(ctx, "alice", "IPQC早班", []string{"bob", "carol", "alice"})
	if err != nil {
		t.Fatalf("CreateGroupRoom: %v", err)
	}
	if !room.IsGroup {
		t.Error("expected group room")
	}
	if len(room.Members) != 3 {
		t.Fatalf("expected 3 deduplicated members, got %d", len(room.Members))
	}

	rooms, err := svc.ListRooms(ctx, "carol")
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Room.ID != room.ID {
		t.Errorf("expected carol to see the group room, got %+v", rooms)
	}
}
