package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/pkg/apperror"
)

func newUserService(uow *fakeUnitOfWork) IUserService {
	return NewUserService(&fakeFactory{uow: uow}, nopLogger{})
}

func createUserRequest() *dto.CreateUserRequest {
	return &dto.CreateUserRequest{
		UserId:   "alice",
		Email:    "alice@example.com",
		Name:     "Alice",
		Nickname: "alice",
	}
}

func TestUserCreateSelfOrAdmin(t *testing.T) {
	ctx := context.Background()

	uow := &fakeUnitOfWork{}
	_, err := newUserService(uow).Create(ctx, entity.Principal{UserId: "alice"}, createUserRequest())
	require.NoError(t, err)
	assert.Len(t, uow.users.created, 1)

	uow = &fakeUnitOfWork{}
	_, err = newUserService(uow).Create(ctx, entity.Principal{UserId: "bob"}, createUserRequest())
	assert.True(t, apperror.IsDenied(err), "only the subject or an admin may create the record")
	assert.Empty(t, uow.users.created)

	uow = &fakeUnitOfWork{}
	_, err = newUserService(uow).Create(ctx, entity.Principal{UserId: "root", Admin: true}, createUserRequest())
	assert.NoError(t, err)
}

func TestUserCreateDuplicatesRejected(t *testing.T) {
	ctx := context.Background()
	alice := entity.Principal{UserId: "alice"}

	uow := &fakeUnitOfWork{}
	uow.users.findOneFn = func() (*entity.User, error) {
		return &entity.User{UserId: "alice"}, nil
	}
	_, err := newUserService(uow).Create(ctx, alice, createUserRequest())
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Empty(t, uow.users.created)

	// same user_id free, but the email is already registered
	uow = &fakeUnitOfWork{}
	calls := 0
	uow.users.findOneFn = func() (*entity.User, error) {
		calls++
		if calls == 1 {
			return nil, nil
		}
		return &entity.User{UserId: "someone-else", Email: "alice@example.com"}, nil
	}
	_, err = newUserService(uow).Create(ctx, alice, createUserRequest())
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Empty(t, uow.users.created)
}

func TestUserCreateRunsInTransaction(t *testing.T) {
	ctx := context.Background()
	alice := entity.Principal{UserId: "alice"}

	uow := &fakeUnitOfWork{}
	_, err := newUserService(uow).Create(ctx, alice, createUserRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, uow.begun, "uniqueness checks and insert share a transaction")
	assert.Equal(t, 1, uow.committed)

	// a failed uniqueness check rolls back instead of committing
	uow = &fakeUnitOfWork{}
	uow.users.findOneFn = func() (*entity.User, error) {
		return &entity.User{UserId: "alice"}, nil
	}
	_, err = newUserService(uow).Create(ctx, alice, createUserRequest())
	require.Error(t, err)
	assert.Equal(t, 1, uow.begun)
	assert.Zero(t, uow.committed)
	assert.Equal(t, 1, uow.rolledBack)
}

func TestUserGetSelfOrAdmin(t *testing.T) {
	ctx := context.Background()

	uow := &fakeUnitOfWork{}
	uow.users.findOneFn = func() (*entity.User, error) {
		return &entity.User{UserId: "alice", Email: "alice@example.com"}, nil
	}
	svc := newUserService(uow)

	res, err := svc.Get(ctx, entity.Principal{UserId: "alice"}, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.UserId)

	_, err = svc.Get(ctx, entity.Principal{UserId: "bob"}, "alice")
	assert.True(t, apperror.IsDenied(err))

	uow = &fakeUnitOfWork{}
	_, err = newUserService(uow).Get(ctx, entity.Principal{UserId: "root", Admin: true}, "ghost")
	assert.True(t, apperror.IsNotFound(err))
}
