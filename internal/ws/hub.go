package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event is the envelope for every frame pushed to clients
type Event struct {
	Type    string      `json:"type"`
	BoardID uuid.UUID   `json:"boardId"`
	Payload interface{} `json:"payload,omitempty"`
}

// Hub routes events to the clients joined to each board room. One connection
// may be joined to any number of rooms; membership is checked at join time,
// not per frame.
type Hub struct {
	rooms map[uuid.UUID]map[*Client]bool
	// clients holds every connection the hub may close. dropClient is
	// idempotent against it: the slow-consumer drop and the read pump's exit
	// can both unregister the same client.
	clients map[*Client]bool
	roomsMu sync.RWMutex

	register   chan *Client
	unregister chan *Client

	redisClient *redis.Client
	logger      *zap.Logger
}

// NewHub creates a hub. redisClient may be nil; presence tracking is then
// skipped.
func NewHub(redisClient *redis.Client, logger *zap.Logger) *Hub {
	return &Hub{
		rooms:       make(map[uuid.UUID]map[*Client]bool),
		clients:     make(map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		redisClient: redisClient,
		logger:      logger,
	}
}

// Run processes connect/disconnect events. Call once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.roomsMu.Lock()
			h.clients[client] = true
			h.roomsMu.Unlock()
			h.logger.Info("Client connected",
				zap.String("userId", client.userID.String()))

		case client := <-h.unregister:
			h.dropClient(client)
		}
	}
}

// JoinBoard adds the client to the board's room. Permission is the caller's
// responsibility.
func (h *Hub) JoinBoard(client *Client, boardID uuid.UUID) {
	h.roomsMu.Lock()
	if h.rooms[boardID] == nil {
		h.rooms[boardID] = make(map[*Client]bool)
	}
	h.rooms[boardID][client] = true
	h.clients[client] = true
	client.rooms[boardID] = true
	h.roomsMu.Unlock()

	h.trackPresence(boardID, client.userID, true)

	h.logger.Info("Client joined board room",
		zap.String("boardId", boardID.String()),
		zap.String("userId", client.userID.String()))
}

// LeaveBoard removes the client from one room
func (h *Hub) LeaveBoard(client *Client, boardID uuid.UUID) {
	h.roomsMu.Lock()
	h.removeFromRoom(client, boardID)
	h.roomsMu.Unlock()

	h.trackPresence(boardID, client.userID, false)
}

// must hold roomsMu
func (h *Hub) removeFromRoom(client *Client, boardID uuid.UUID) {
	if room, ok := h.rooms[boardID]; ok {
		delete(room, client)
		if len(room) == 0 {
			delete(h.rooms, boardID)
		}
	}
	delete(client.rooms, boardID)
}

// dropClient removes a disconnected client from every room it joined and
// closes its send channel. A client the hub no longer tracks is a no-op, so a
// second unregister for the same connection cannot close a closed channel.
func (h *Hub) dropClient(client *Client) {
	h.roomsMu.Lock()
	if !h.clients[client] {
		h.roomsMu.Unlock()
		return
	}
	delete(h.clients, client)
	joined := make([]uuid.UUID, 0, len(client.rooms))
	for boardID := range client.rooms {
		joined = append(joined, boardID)
		h.removeFromRoom(client, boardID)
	}
	close(client.send)
	h.roomsMu.Unlock()

	for _, boardID := range joined {
		h.trackPresence(boardID, client.userID, false)
	}

	h.logger.Info("Client disconnected",
		zap.String("userId", client.userID.String()),
		zap.Int("rooms", len(joined)))
}

// BroadcastToBoard pushes an event to every client in the board's room.
// Slow consumers are disconnected rather than allowed to block the fan-out.
func (h *Hub) BroadcastToBoard(boardID uuid.UUID, event string, payload interface{}) {
	frame, err := json.Marshal(Event{Type: event, BoardID: boardID, Payload: payload})
	if err != nil {
		h.logger.Error("Failed to encode event",
			zap.String("event", event),
			zap.Error(err))
		return
	}

	// Sends are non-blocking and stay under the read lock, so dropClient
	// cannot close a send channel in the middle of the fan-out.
	h.roomsMu.RLock()
	for client := range h.rooms[boardID] {
		select {
		case client.send <- frame:
		default:
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
	h.roomsMu.RUnlock()
}

// RoomSize reports how many clients are currently in a board's room
func (h *Hub) RoomSize(boardID uuid.UUID) int {
	h.roomsMu.RLock()
	defer h.roomsMu.RUnlock()
	return len(h.rooms[boardID])
}

// trackPresence mirrors room membership into a redis set per board so other
// instances can read who is online. Best-effort.
func (h *Hub) trackPresence(boardID, userID uuid.UUID, online bool) {
	if h.redisClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := "board:presence:" + boardID.String()
	var err error
	if online {
		err = h.redisClient.SAdd(ctx, key, userID.String()).Err()
	} else {
		err = h.redisClient.SRem(ctx, key, userID.String()).Err()
	}
	if err != nil {
		h.logger.Warn("Failed to update presence set",
			zap.String("boardId", boardID.String()),
			zap.Error(err))
	}
}

// OnlineUsers lists the user ids present in a board's room per redis.
// Returns nil without error when redis is not configured.
func (h *Hub) OnlineUsers(ctx context.Context, boardID uuid.UUID) ([]string, error) {
	if h.redisClient == nil {
		return nil, nil
	}
	return h.redisClient.SMembers(ctx, "board:presence:"+boardID.String()).Result()
}
