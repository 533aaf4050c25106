package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"warroom-board-api/internal/metrics"
	"warroom-board-api/internal/middleware"
	"warroom-board-api/internal/service"
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ClientMessage is the inbound frame format
type ClientMessage struct {
	Type    string    `json:"type"`
	BoardID uuid.UUID `json:"boardId"`
	Text    string    `json:"text,omitempty"`
}

// Client-initiated message types
const (
	MessageJoinBoard   = "joinBoard"
	MessageLeaveBoard  = "leaveBoard"
	MessageSendMessage = "sendMessage"
)

// Handler upgrades connections and dispatches inbound frames. The token is
// checked once at handshake; board membership is checked on every join.
type Handler struct {
	hub         *Hub
	chatService service.ChatService
	validator   middleware.TokenValidator
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewHandler creates a websocket handler on top of a running hub
func NewHandler(
	hub *Hub,
	chatService service.ChatService,
	validator middleware.TokenValidator,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		hub:         hub,
		chatService: chatService,
		validator:   validator,
		metrics:     m,
		logger:      logger,
	}
}

// HandleWebSocket godoc
// @Summary      WebSocket 연결
// @Description  실시간 보드 이벤트와 채팅을 위한 WebSocket에 연결합니다
// @Tags         websocket
// @Param        token query string true "JWT Access Token"
// @Success      101 {string} string "Switching Protocols"
// @Failure      401 {object} map[string]string
// @Router       /ws [get]
func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	userID, err := h.validator.ValidateToken(ctx, token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection", zap.Error(err))
		return
	}

	client := newClient(conn, userID, h.hub)
	h.hub.register <- client

	if h.metrics != nil {
		h.metrics.IncrementWSConnections()
		defer h.metrics.DecrementWSConnections()
	}

	go client.writePump()
	client.readPump(h.handleMessage)
}

func (h *Handler) handleMessage(client *Client, raw []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		h.logger.Warn("Failed to parse message", zap.Error(err))
		return
	}
	if msg.BoardID == uuid.Nil {
		h.sendError(client, "boardId required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch msg.Type {
	case MessageJoinBoard:
		if err := h.chatService.CanJoin(ctx, client.userID, msg.BoardID); err != nil {
			h.sendError(client, "Not a board member")
			return
		}
		h.hub.JoinBoard(client, msg.BoardID)
		h.sendEvent(client, Event{
			Type:    service.EventJoinedBoard,
			BoardID: msg.BoardID,
		})

	case MessageLeaveBoard:
		h.hub.LeaveBoard(client, msg.BoardID)

	case MessageSendMessage:
		// SendMessage persists and broadcasts newMessage to the whole room
		if _, err := h.chatService.SendMessage(ctx, client.userID, msg.BoardID, msg.Text); err != nil {
			h.logger.Warn("Failed to handle chat message",
				zap.String("boardId", msg.BoardID.String()),
				zap.Error(err))
			h.sendError(client, "Failed to send message")
		}

	default:
		h.logger.Warn("Unknown message type", zap.String("type", msg.Type))
	}
}

func (h *Handler) sendEvent(client *Client, event Event) {
	frame, err := json.Marshal(event)
	if err != nil {
		return
	}
	select {
	case client.send <- frame:
	default:
	}
}

func (h *Handler) sendError(client *Client, message string) {
	h.sendEvent(client, Event{
		Type:    "error",
		Payload: map[string]interface{}{"message": message},
	})
}
