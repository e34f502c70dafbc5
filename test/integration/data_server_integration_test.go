package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/model"
	"workflow-data-be/internal/pkg/apperror"
	"workflow-data-be/internal/repository/specification"
	"workflow-data-be/internal/repository/unitofwork"
	"workflow-data-be/internal/service"
	"workflow-data-be/pkg/database"

	"gorm.io/gorm"
)

type quietLogger struct{}

func (quietLogger) Debug(module, message string, details map[string]interface{}) {}
func (quietLogger) Info(module, message string, details map[string]interface{})  {}
func (quietLogger) Warn(module, message string, details map[string]interface{})  {}
func (quietLogger) Error(module, message string, details map[string]interface{}) {}
func (quietLogger) Sync() error                                                  { return nil }

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	err = gormDB.AutoMigrate(
		&model.User{}, &model.Chat{}, &model.Session{}, &model.Message{},
		&model.Workflow{}, &model.Agent{}, &model.APIKey{},
	)
	require.NoError(t, err)
	return gormDB
}

func TestChatAccessFlow(t *testing.T) {
	gormDB := setupDB(t)
	factory := unitofwork.NewRepositoryFactory(gormDB)
	access := service.NewAccessService()
	chats := service.NewChatService(factory, access, quietLogger{})
	ctx := context.Background()

	suffix := uuid.NewString()
	owner := entity.Principal{UserId: "owner-" + suffix}
	member := entity.Principal{UserId: "member-" + suffix}
	stranger := entity.Principal{UserId: "stranger-" + suffix}
	admin := entity.Principal{UserId: "admin", Admin: true}

	created, err := chats.Create(ctx, owner, &dto.CreateChatRequest{
		UserId:      owner.UserId,
		SessionId:   "sess-" + suffix,
		Title:       "shared planning chat",
		AccessUsers: []string{member.UserId},
	})
	require.NoError(t, err)

	t.Run("owner and access set member can read", func(t *testing.T) {
		_, err := chats.Get(ctx, owner, created.Id)
		assert.NoError(t, err)
		_, err = chats.Get(ctx, member, created.Id)
		assert.NoError(t, err)
	})

	t.Run("stranger gets the no-leak denial", func(t *testing.T) {
		_, err := chats.Get(ctx, stranger, created.Id)
		assert.True(t, apperror.IsDenied(err))

		_, err = chats.Get(ctx, stranger, uuid.New())
		assert.True(t, apperror.IsDenied(err), "missing record must be indistinguishable")
	})

	t.Run("admin sees everything and learns about missing records", func(t *testing.T) {
		_, err := chats.Get(ctx, admin, created.Id)
		assert.NoError(t, err)
		_, err = chats.Get(ctx, admin, uuid.New())
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("member cannot write", func(t *testing.T) {
		title := "hijacked"
		_, err := chats.Update(ctx, member, created.Id, &dto.UpdateChatRequest{Title: &title})
		assert.True(t, apperror.IsDenied(err))
	})

	t.Run("list is newest first and scoped", func(t *testing.T) {
		_, err := chats.Create(ctx, owner, &dto.CreateChatRequest{
			UserId:    owner.UserId,
			SessionId: "sess2-" + suffix,
			Title:     "second chat",
		})
		require.NoError(t, err)

		listed, err := chats.List(ctx, owner, &dto.ListChatsQuery{})
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(listed), 2)
		for i := 1; i < len(listed); i++ {
			assert.False(t, listed[i].CreatedAt.After(listed[i-1].CreatedAt), "ordering must be created_at desc")
		}

		memberView, err := chats.List(ctx, member, &dto.ListChatsQuery{})
		require.NoError(t, err)
		for _, c := range memberView {
			visible := c.UserId == member.UserId
			for _, u := range c.AccessUsers {
				if u == member.UserId {
					visible = true
				}
			}
			assert.True(t, visible, "member must only see accessible chats")
		}
	})
}

func TestUserUniqueness(t *testing.T) {
	gormDB := setupDB(t)
	factory := unitofwork.NewRepositoryFactory(gormDB)
	users := service.NewUserService(factory, quietLogger{})
	ctx := context.Background()
	admin := entity.Principal{UserId: "admin", Admin: true}

	req := &dto.CreateUserRequest{
		UserId:   "dup-" + uuid.NewString(),
		Email:    "dup-" + uuid.NewString() + "@example.com",
		Name:     "Dup User",
		Nickname: "dup",
	}

	_, err := users.Create(ctx, admin, req)
	require.NoError(t, err)

	_, err = users.Create(ctx, admin, req)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestRetentionSweepBoundary(t *testing.T) {
	gormDB := setupDB(t)
	factory := unitofwork.NewRepositoryFactory(gormDB)
	access := service.NewAccessService()
	chats := service.NewChatService(factory, access, quietLogger{})
	retention := service.NewRetentionService(factory, quietLogger{})
	ctx := context.Background()

	suffix := uuid.NewString()
	owner := entity.Principal{UserId: "sweep-owner-" + suffix}
	admin := entity.Principal{UserId: "admin", Admin: true}

	old, err := chats.Create(ctx, owner, &dto.CreateChatRequest{UserId: owner.UserId, SessionId: "old-" + suffix})
	require.NoError(t, err)
	fresh, err := chats.Create(ctx, owner, &dto.CreateChatRequest{UserId: owner.UserId, SessionId: "fresh-" + suffix})
	require.NoError(t, err)

	// backdate one chat past the cutoff
	err = gormDB.Exec(
		"UPDATE chats SET created_at = ? WHERE id = ?",
		time.Now().UTC().AddDate(0, 0, -31), old.Id,
	).Error
	require.NoError(t, err)

	res, err := retention.Sweep(ctx, 30)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Deleted["chats"], int64(1))

	_, err = chats.Get(ctx, admin, old.Id)
	assert.True(t, apperror.IsNotFound(err), "backdated chat must be swept")

	_, err = chats.Get(ctx, admin, fresh.Id)
	assert.NoError(t, err, "recent chat must survive")

	// repeating the sweep is a no-op for already removed data
	again, err := retention.Sweep(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(0), again.Deleted["chats"])
}

func TestDeleteOlderThanStrictBoundary(t *testing.T) {
	gormDB := setupDB(t)
	factory := unitofwork.NewRepositoryFactory(gormDB)
	ctx := context.Background()
	repo := factory.NewUnitOfWork(ctx).ChatRepository()

	suffix := uuid.NewString()
	// Postgres stores timestamps with microsecond precision.
	threshold := time.Now().UTC().AddDate(0, 0, -30).Truncate(time.Microsecond)

	atCutoff := &entity.Chat{UserId: "boundary-" + suffix, SessionId: "at-" + suffix}
	require.NoError(t, repo.Create(ctx, atCutoff))
	pastCutoff := &entity.Chat{UserId: "boundary-" + suffix, SessionId: "past-" + suffix}
	require.NoError(t, repo.Create(ctx, pastCutoff))

	require.NoError(t, gormDB.Exec(
		"UPDATE chats SET created_at = ? WHERE id = ?", threshold, atCutoff.Id,
	).Error)
	require.NoError(t, gormDB.Exec(
		"UPDATE chats SET created_at = ? WHERE id = ?", threshold.Add(-time.Microsecond), pastCutoff.Id,
	).Error)

	_, err := repo.DeleteOlderThan(ctx, threshold)
	require.NoError(t, err)

	kept, err := repo.FindOne(ctx, specification.ByID{ID: atCutoff.Id})
	require.NoError(t, err)
	assert.NotNil(t, kept, "a record created exactly at the cutoff survives")

	gone, err := repo.FindOne(ctx, specification.ByID{ID: pastCutoff.Id})
	require.NoError(t, err)
	assert.Nil(t, gone, "a record strictly older than the cutoff is deleted")
}
