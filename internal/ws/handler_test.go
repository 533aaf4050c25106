package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/service"
)

type stubValidator struct {
	userID uuid.UUID
	err    error
}

func (v *stubValidator) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	if v.err != nil {
		return uuid.Nil, v.err
	}
	return v.userID, nil
}

type stubChatService struct {
	canJoinErr error
	sent       []string
}

func (s *stubChatService) SendMessage(ctx context.Context, userID, boardID uuid.UUID, text string) (*dto.ChatMessageResponse, error) {
	s.sent = append(s.sent, text)
	return &dto.ChatMessageResponse{ID: uuid.New(), BoardID: boardID, UserID: userID, Text: text}, nil
}

func (s *stubChatService) GetHistory(ctx context.Context, userID, boardID uuid.UUID, limit, offset int) ([]*dto.ChatMessageResponse, error) {
	return nil, nil
}

func (s *stubChatService) CanJoin(ctx context.Context, userID, boardID uuid.UUID) error {
	return s.canJoinErr
}

func TestHandler_HandleWebSocket_RejectsBadHandshake(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		valid *stubValidator
	}{
		{"토큰 없음", "", &stubValidator{}},
		{"잘못된 토큰", "?token=bad", &stubValidator{err: errors.New("invalid")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := NewHub(nil, zap.NewNop())
			h := NewHandler(hub, &stubChatService{}, tt.valid, nil, zap.NewNop())

			r := gin.New()
			r.GET("/ws", h.HandleWebSocket)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("GET", "/ws"+tt.query, nil))

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestHandler_HandleMessage_JoinBoard(t *testing.T) {
	hub := NewHub(nil, zap.NewNop())
	chat := &stubChatService{}
	h := NewHandler(hub, chat, &stubValidator{}, nil, zap.NewNop())
	client := testClient(hub)
	boardID := uuid.New()

	raw, _ := json.Marshal(ClientMessage{Type: MessageJoinBoard, BoardID: boardID})
	h.handleMessage(client, raw)

	if hub.RoomSize(boardID) != 1 {
		t.Error("join did not place the client in the room")
	}
	select {
	case frame := <-client.send:
		var event Event
		if err := json.Unmarshal(frame, &event); err != nil {
			t.Fatalf("frame decode: %v", err)
		}
		if event.Type != service.EventJoinedBoard {
			t.Errorf("ack type = %v, want %v", event.Type, service.EventJoinedBoard)
		}
	case <-time.After(time.Second):
		t.Fatal("no join acknowledgement")
	}
}

func TestHandler_HandleMessage_JoinDeniedForNonMember(t *testing.T) {
	hub := NewHub(nil, zap.NewNop())
	chat := &stubChatService{canJoinErr: errors.New("forbidden")}
	h := NewHandler(hub, chat, &stubValidator{}, nil, zap.NewNop())
	client := testClient(hub)
	boardID := uuid.New()

	raw, _ := json.Marshal(ClientMessage{Type: MessageJoinBoard, BoardID: boardID})
	h.handleMessage(client, raw)

	if hub.RoomSize(boardID) != 0 {
		t.Error("denied join must not place the client in the room")
	}
	select {
	case frame := <-client.send:
		var event Event
		json.Unmarshal(frame, &event)
		if event.Type != "error" {
			t.Errorf("frame type = %v, want error", event.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("no error frame")
	}
}

func TestHandler_HandleMessage_SendMessage(t *testing.T) {
	hub := NewHub(nil, zap.NewNop())
	chat := &stubChatService{}
	h := NewHandler(hub, chat, &stubValidator{}, nil, zap.NewNop())
	client := testClient(hub)

	raw, _ := json.Marshal(ClientMessage{Type: MessageSendMessage, BoardID: uuid.New(), Text: "hello"})
	h.handleMessage(client, raw)

	if len(chat.sent) != 1 || chat.sent[0] != "hello" {
		t.Errorf("sent = %v, want [hello]", chat.sent)
	}
}

func TestHandler_HandleMessage_RequiresBoardID(t *testing.T) {
	hub := NewHub(nil, zap.NewNop())
	h := NewHandler(hub, &stubChatService{}, &stubValidator{}, nil, zap.NewNop())
	client := testClient(hub)

	raw, _ := json.Marshal(ClientMessage{Type: MessageJoinBoard})
	h.handleMessage(client, raw)

	select {
	case frame := <-client.send:
		var event Event
		json.Unmarshal(frame, &event)
		if event.Type != "error" {
			t.Errorf("frame type = %v, want error", event.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("no error frame for missing boardId")
	}
}
