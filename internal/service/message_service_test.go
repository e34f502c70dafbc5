package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/pkg/apperror"
)

func newMessageService(uow *fakeUnitOfWork) IMessageService {
	return NewMessageService(&fakeFactory{uow: uow}, NewAccessService(), nopLogger{})
}

func messageFixture() (*fakeUnitOfWork, uuid.UUID, uuid.UUID) {
	chatId := uuid.New()
	sessionId := uuid.New()
	uow := &fakeUnitOfWork{}
	uow.chats.findOneFn = func() (*entity.Chat, error) {
		return &entity.Chat{Id: chatId, UserId: "alice", AccessUsers: []string{"bob"}}, nil
	}
	uow.sessions.findOneFn = func() (*entity.Session, error) {
		return &entity.Session{Id: sessionId, ChatId: chatId, UserId: "alice"}, nil
	}
	return uow, chatId, sessionId
}

func TestMessageCreatePayloadContract(t *testing.T) {
	uow, chatId, sessionId := messageFixture()
	svc := newMessageService(uow)
	ctx := context.Background()
	alice := entity.Principal{UserId: "alice"}
	text := "hello"
	url := "https://cdn.example.com/a.png"

	_, err := svc.Create(ctx, alice, &dto.CreateMessageRequest{
		SenderId: "alice", ChatId: chatId, SessionId: sessionId,
		Type: string(entity.MessageTypeText), Text: &text, Url: &url,
	})
	require.Error(t, err, "two payload slots must be rejected")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.Create(ctx, alice, &dto.CreateMessageRequest{
		SenderId: "alice", ChatId: chatId, SessionId: sessionId,
		Type: string(entity.MessageTypeJson), Text: &text,
	})
	require.Error(t, err, "payload slot must match the declared type")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Empty(t, uow.messages.created)

	res, err := svc.Create(ctx, alice, &dto.CreateMessageRequest{
		SenderId: "alice", ChatId: chatId, SessionId: sessionId,
		Type: string(entity.MessageTypeText), Text: &text,
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.MessageTypeText), res.Type)
	assert.Len(t, uow.messages.created, 1)
	assert.False(t, res.Timestamp.IsZero())
}

func TestMessageCreateSessionMustBelongToChat(t *testing.T) {
	uow, chatId, sessionId := messageFixture()
	uow.sessions.findOneFn = func() (*entity.Session, error) {
		return &entity.Session{Id: sessionId, ChatId: uuid.New(), UserId: "alice"}, nil
	}
	svc := newMessageService(uow)
	text := "hello"

	_, err := svc.Create(context.Background(), entity.Principal{UserId: "alice"}, &dto.CreateMessageRequest{
		SenderId: "alice", ChatId: chatId, SessionId: sessionId,
		Type: string(entity.MessageTypeText), Text: &text,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Empty(t, uow.messages.created)
}

func TestMessageCreateIntoMissingChat(t *testing.T) {
	uow := &fakeUnitOfWork{}
	svc := newMessageService(uow)
	ctx := context.Background()
	text := "hello"
	req := &dto.CreateMessageRequest{
		SenderId: "alice", ChatId: uuid.New(), SessionId: uuid.New(),
		Type: string(entity.MessageTypeText), Text: &text,
	}

	_, err := svc.Create(ctx, entity.Principal{UserId: "alice"}, req)
	assert.True(t, apperror.IsDenied(err), "missing chat is indistinguishable from a forbidden one")

	req.SenderId = "admin"
	_, err = svc.Create(ctx, entity.Principal{UserId: "admin", Admin: true}, req)
	assert.True(t, apperror.IsNotFound(err))
}

func TestMessageGetInheritsChatScope(t *testing.T) {
	uow, chatId, sessionId := messageFixture()
	text := "hello"
	uow.messages.findOneFn = func() (*entity.Message, error) {
		return &entity.Message{
			Id: uuid.New(), SenderId: "alice", ChatId: chatId, SessionId: sessionId,
			Type: entity.MessageTypeText, Text: &text,
		}, nil
	}
	svc := newMessageService(uow)
	ctx := context.Background()

	_, err := svc.Get(ctx, entity.Principal{UserId: "bob"}, uuid.New())
	assert.NoError(t, err, "access set member reads via the chat scope")

	_, err = svc.Get(ctx, entity.Principal{UserId: "mallory"}, uuid.New())
	assert.True(t, apperror.IsDenied(err))
}
