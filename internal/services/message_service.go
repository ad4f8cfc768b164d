package services

import (
	"context"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// notifyTimeout bounds one background owner notification.
const notifyTimeout = 30 * time.Second

// Notifier tells the site owner about a new contact message.
type Notifier interface {
	NotifyContact(ctx context.Context, msg models.ContactMessage) error
}

type MessageInput struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// MessageService handles the public contact form and the admin inbox.
type MessageService struct {
	repo      repositories.MessageRepository
	analytics *AnalyticsService
	notifier  Notifier
	delay     time.Duration
	log       *zap.SugaredLogger
	now       func() time.Time
	pending   sync.WaitGroup
}

func NewMessageService(
	repo repositories.MessageRepository,
	analytics *AnalyticsService,
	notifier Notifier,
	delay time.Duration,
	log *zap.SugaredLogger,
) *MessageService {
	return &MessageService{
		repo:      repo,
		analytics: analytics,
		notifier:  notifier,
		delay:     delay,
		log:       log,
		now:       time.Now,
	}
}

// Send stores a contact message and notifies the owner in the background.
func (s *MessageService) Send(ctx context.Context, in MessageInput) (notify.Notification, error) {
	trim(&in.Name, &in.Email, &in.Message)
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return notify.New(notify.Error, "Please fill in all fields"), nil
	}
	if !IsValidEmail(in.Email) {
		return notify.New(notify.Error, "Please enter a valid email address"), nil
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return notify.Notification{}, ctx.Err()
		}
	}

	msg := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		Timestamp: s.now().UTC(),
	}
	if err := s.repo.Add(ctx, msg); err != nil {
		return notify.Notification{}, err
	}

	if s.notifier != nil {
		s.pending.Add(1)
		go func() {
			defer s.pending.Done()
			ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if err := s.notifier.NotifyContact(ctx, msg); err != nil {
				s.log.Warnw("failed to notify owner of contact message", "id", msg.ID, "error", err)
			}
		}()
	}

	s.analytics.Track(ctx, "contact_message", CategoryPublic, "")
	return notify.New(notify.Success, "Message sent successfully! I will get back to you soon."), nil
}

// Wait blocks until background notifications have finished, including
// sends the notifier kept running past their timeout.
func (s *MessageService) Wait() {
	s.pending.Wait()
	if w, ok := s.notifier.(interface{ Wait() }); ok {
		w.Wait()
	}
}

// List returns the inbox, newest first.
func (s *MessageService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *MessageService) Delete(ctx context.Context, id string) (notify.Notification, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return notify.New(notify.Warning, "Message no longer exists"), nil
		}
		return notify.Notification{}, err
	}
	s.analytics.Track(ctx, "message_deleted", CategoryAdmin, "")
	return notify.New(notify.Success, "Message deleted successfully!"), nil
}
