package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/templui/foldervault/internal/model"
	"github.com/templui/foldervault/internal/repository"
	"github.com/templui/foldervault/internal/validation"
)

type MessageService struct {
	repo repository.MessageRepository
	now  func() time.Time
}

func NewMessageService(repo repository.MessageRepository) *MessageService {
	return &MessageService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *MessageService) Add(ctx context.Context, folder AuthorizedFolder, content string) (*model.Message, error) {
	if !folder.valid() {
		return nil, ErrBadPassword
	}

	err := validation.ValidateContent(content)
	if err != nil {
		return nil, validationError(err)
	}

	now := s.now().Unix()
	message := &model.Message{
		ID:        uuid.New().String(),
		FolderID:  folder.ID(),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repo.Create(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return message, nil
}

// List returns the folder's messages, newest first.
func (s *MessageService) List(ctx context.Context, folder AuthorizedFolder) ([]*model.Message, error) {
	if !folder.valid() {
		return nil, ErrBadPassword
	}
	return s.messages(ctx, folder.ID())
}

func (s *MessageService) messages(ctx context.Context, folderID string) ([]*model.Message, error) {
	messages, err := s.repo.Messages(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// Update replaces the content of a message in the folder and returns the new updated_at.
func (s *MessageService) Update(ctx context.Context, folder AuthorizedFolder, messageID, content string) (int64, error) {
	if !folder.valid() {
		return 0, ErrBadPassword
	}

	err := validation.ValidateContent(content)
	if err != nil {
		return 0, validationError(err)
	}

	updatedAt := s.now().Unix()
	err = s.repo.UpdateContent(ctx, folder.ID(), messageID, content, updatedAt)
	if errors.Is(err, repository.ErrMessageNotFound) {
		return 0, ErrMessageNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update message: %w", err)
	}

	return updatedAt, nil
}

func (s *MessageService) Delete(ctx context.Context, folder AuthorizedFolder, messageID string) error {
	if !folder.valid() {
		return ErrBadPassword
	}

	err := s.repo.Delete(ctx, folder.ID(), messageID)
	if errors.Is(err, repository.ErrMessageNotFound) {
		return ErrMessageNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
