package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mindmeal/mindmeal-cli/internal/chat"
	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/storage"
)

const DefaultChatHistoryLimit = 100

// ChatService wraps the stateless responder with a persisted transcript.
type ChatService struct {
	mu        sync.Mutex
	store     storage.Store
	now       func() time.Time
	responder *chat.Responder
	limit     int
	history   []model.ChatMessage
}

func loadChat(ctx context.Context, store storage.Store, now func() time.Time, responder *chat.Responder, limit int) *ChatService {
	if limit <= 0 {
		limit = DefaultChatHistoryLimit
	}
	c := &ChatService{store: store, now: now, responder: responder, limit: limit}
	var history []model.ChatMessage
	if storage.LoadJSON(ctx, store, storage.KeyChatHistory, &history) {
		c.history = history
	}
	return c
}

// Ask answers message and records both sides of the exchange, keeping only
// the most recent messages up to the limit.
func (c *ChatService) Ask(ctx context.Context, message string) (model.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return model.ChatMessage{}, apperrors.NewValidationError([]apperrors.FieldError{{Field: "message", Message: "is required"}})
	}
	asked := model.ChatMessage{ID: uuid.NewString(), Content: message, Sender: model.SenderUser, Timestamp: c.now()}
	reply := model.ChatMessage{ID: uuid.NewString(), Content: c.responder.Reply(message), Sender: model.SenderAI, Timestamp: c.now()}

	c.mu.Lock()
	defer c.mu.Unlock()
	next := append(append([]model.ChatMessage(nil), c.history...), asked, reply)
	if len(next) > c.limit {
		next = next[len(next)-c.limit:]
	}
	if err := storage.SaveJSON(ctx, c.store, storage.KeyChatHistory, next); err != nil {
		return model.ChatMessage{}, err
	}
	c.history = next
	return reply, nil
}

func (c *ChatService) History() []model.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.ChatMessage(nil), c.history...)
}

func (c *ChatService) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Remove(ctx, storage.KeyChatHistory); err != nil {
		return apperrors.NewStorageError(err, "remove "+storage.KeyChatHistory)
	}
	c.history = nil
	return nil
}

func (c *ChatService) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
}
