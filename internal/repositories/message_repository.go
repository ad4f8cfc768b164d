package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/storage"
)

// MessageRepository is the contact inbox under contactMessages, newest first.
type MessageRepository interface {
	Add(ctx context.Context, msg models.ContactMessage) error
	List(ctx context.Context) ([]models.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

type KVMessageRepository struct {
	gw *storage.Gateway
	mu sync.Mutex
}

func NewMessageRepository(gw *storage.Gateway) *KVMessageRepository {
	return &KVMessageRepository{gw: gw}
}

func (r *KVMessageRepository) Add(ctx context.Context, msg models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages, err := r.List(ctx)
	if err != nil {
		return err
	}

	messages = append([]models.ContactMessage{msg}, messages...)
	if len(messages) > models.MaxContactMessages {
		messages = messages[:models.MaxContactMessages]
	}

	if err := r.gw.Write(ctx, storage.KeyMessages, messages); err != nil {
		return fmt.Errorf("failed to save contact messages: %w", err)
	}
	return nil
}

func (r *KVMessageRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if _, err := r.gw.Read(ctx, storage.KeyMessages, &messages); err != nil {
		return nil, fmt.Errorf("failed to load contact messages: %w", err)
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	return messages, nil
}

func (r *KVMessageRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.ContactMessage, 0, len(messages))
	for _, m := range messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(messages) {
		return fmt.Errorf("message with ID %s not found for deletion: %w", id, ErrNotFound)
	}

	if err := r.gw.Write(ctx, storage.KeyMessages, kept); err != nil {
		return fmt.Errorf("failed to save contact messages: %w", err)
	}
	return nil
}
