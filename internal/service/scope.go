package service

import (
	"context"

	"github.com/google/uuid"

	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/pkg/apperror"
	"workflow-data-be/internal/repository/specification"
	"workflow-data-be/internal/repository/unitofwork"
)

// loadChatScope resolves the access scope a chat-owned record inherits.
// Returns nil when the chat no longer exists, which the policy treats as a
// denial for non-admins.
func loadChatScope(ctx context.Context, uow unitofwork.UnitOfWork, chatId uuid.UUID) (*entity.AccessScope, error) {
	chat, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: chatId})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	return chat.Scope(), nil
}

// accessibleChatIDs collects the ids of every chat the user owns or has been
// granted access to. List calls on chat-owned collections are scoped to
// these ids.
func accessibleChatIDs(ctx context.Context, uow unitofwork.UnitOfWork, userId string) ([]uuid.UUID, error) {
	chats, err := uow.ChatRepository().FindAll(ctx, specification.AccessibleBy{UserId: userId})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	ids := make([]uuid.UUID, 0, len(chats))
	for _, c := range chats {
		ids = append(ids, c.Id)
	}
	return ids, nil
}
