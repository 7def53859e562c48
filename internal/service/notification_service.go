package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/auth"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// NotificationInput carries an admin-created notification.
type NotificationInput struct {
	UserID uuid.UUID
	Title  string
	Body   string
	Data   map[string]string
}

// NotificationService handles in-app notifications. Listing is scoped to the
// recipient; marking read is recipient-or-admin; creation is admin-only.
type NotificationService interface {
	ListForActor(ctx context.Context, actor auth.Actor) ([]model.Notification, error)
	MarkRead(ctx context.Context, actor auth.Actor, id uuid.UUID) (*model.Notification, error)
	Create(ctx context.Context, actor auth.Actor, input NotificationInput) (*model.Notification, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// ListForActor lists the acting user's own notifications, newest first.
func (s *notificationService) ListForActor(ctx context.Context, actor auth.Actor) ([]model.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead sets the read flag. Only the recipient or an admin may do so.
func (s *notificationService) MarkRead(ctx context.Context, actor auth.Actor, id uuid.UUID) (*model.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("notification not found")
		}
		return nil, fmt.Errorf("find notification: %w", err)
	}

	if err := auth.AuthorizeSelf(actor, notification.UserID); err != nil {
		return nil, err
	}

	notification.Read = true
	if err := s.notificationRepo.Update(ctx, notification); err != nil {
		return nil, fmt.Errorf("update notification: %w", err)
	}
	return notification, nil
}

// Create creates a notification for a user. Admin only.
func (s *notificationService) Create(ctx context.Context, actor auth.Actor, input NotificationInput) (*model.Notification, error) {
	if err := auth.Authorize(actor, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if input.UserID == uuid.Nil || input.Title == "" {
		return nil, apperrors.InvalidInput("userId and title required")
	}

	notification := &model.Notification{
		UserID: input.UserID,
		Title:  input.Title,
		Body:   input.Body,
		Data:   input.Data,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return notification, nil
}
