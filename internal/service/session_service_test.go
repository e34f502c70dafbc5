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

func newSessionService(uow *fakeUnitOfWork) ISessionService {
	return NewSessionService(&fakeFactory{uow: uow}, NewAccessService(), nopLogger{})
}

func TestSessionCreateOnSomeoneElsesChatDenied(t *testing.T) {
	chat := &entity.Chat{Id: uuid.New(), UserId: "alice"}
	uow := &fakeUnitOfWork{}
	uow.chats.findOneFn = func() (*entity.Chat, error) { return chat, nil }
	svc := newSessionService(uow)

	_, err := svc.Create(context.Background(), entity.Principal{UserId: "mallory"}, &dto.CreateSessionRequest{
		ChatId:   chat.Id,
		UserId:   "mallory",
		DeviceId: "dev-1",
		Ip:       "10.0.0.1",
	})
	assert.True(t, apperror.IsDenied(err))
	assert.Empty(t, uow.sessions.created)
}

func TestSessionCreateStartsActive(t *testing.T) {
	chat := &entity.Chat{Id: uuid.New(), UserId: "alice", AccessUsers: []string{"bob"}}
	uow := &fakeUnitOfWork{}
	uow.chats.findOneFn = func() (*entity.Chat, error) { return chat, nil }
	svc := newSessionService(uow)

	// an access set member may attach their own session to a shared chat
	res, err := svc.Create(context.Background(), entity.Principal{UserId: "bob"}, &dto.CreateSessionRequest{
		ChatId:   chat.Id,
		UserId:   "bob",
		DeviceId: "dev-1",
		Ip:       "10.0.0.1",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.SessionStatusActive), res.Status)
	assert.False(t, res.Timestamp.IsZero())
}

func TestSessionGetInheritsChatScope(t *testing.T) {
	chat := &entity.Chat{Id: uuid.New(), UserId: "alice", AccessUsers: []string{"bob"}}
	session := &entity.Session{Id: uuid.New(), ChatId: chat.Id, UserId: "alice", Status: entity.SessionStatusActive}

	uow := &fakeUnitOfWork{}
	uow.chats.findOneFn = func() (*entity.Chat, error) { return chat, nil }
	uow.sessions.findOneFn = func() (*entity.Session, error) { return session, nil }
	svc := newSessionService(uow)
	ctx := context.Background()

	_, err := svc.Get(ctx, entity.Principal{UserId: "bob"}, session.Id)
	assert.NoError(t, err, "chat access set member reads the chat's sessions")

	_, err = svc.Get(ctx, entity.Principal{UserId: "mallory"}, session.Id)
	assert.True(t, apperror.IsDenied(err))
}

func TestSessionGetOrphanedDeniesNonAdmin(t *testing.T) {
	session := &entity.Session{Id: uuid.New(), ChatId: uuid.New(), UserId: "alice"}
	uow := &fakeUnitOfWork{}
	uow.chats.findOneFn = func() (*entity.Chat, error) { return nil, nil }
	uow.sessions.findOneFn = func() (*entity.Session, error) { return session, nil }
	svc := newSessionService(uow)

	// the parent chat was swept, so ownership can no longer be established
	_, err := svc.Get(context.Background(), entity.Principal{UserId: "alice"}, session.Id)
	assert.True(t, apperror.IsDenied(err))

	_, err = svc.Get(context.Background(), entity.Principal{UserId: "admin", Admin: true}, session.Id)
	assert.NoError(t, err)
}

func TestSessionUpdateRejectsReactivation(t *testing.T) {
	session := &entity.Session{Id: uuid.New(), ChatId: uuid.New(), UserId: "alice", Status: entity.SessionStatusInactive}
	uow := &fakeUnitOfWork{}
	uow.sessions.findOneFn = func() (*entity.Session, error) { return session, nil }
	svc := newSessionService(uow)

	active := string(entity.SessionStatusActive)
	_, err := svc.Update(context.Background(), entity.Principal{UserId: "alice"}, session.Id, &dto.UpdateSessionRequest{Status: &active})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Empty(t, uow.sessions.updated)
}

func TestSessionUpdateDeactivates(t *testing.T) {
	session := &entity.Session{Id: uuid.New(), ChatId: uuid.New(), UserId: "alice", Status: entity.SessionStatusActive}
	uow := &fakeUnitOfWork{}
	uow.sessions.findOneFn = func() (*entity.Session, error) { return session, nil }
	svc := newSessionService(uow)

	inactive := string(entity.SessionStatusInactive)
	res, err := svc.Update(context.Background(), entity.Principal{UserId: "alice"}, session.Id, &dto.UpdateSessionRequest{Status: &inactive})
	require.NoError(t, err)
	assert.Equal(t, inactive, res.Status)
}
