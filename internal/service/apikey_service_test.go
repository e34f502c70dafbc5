package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workflow-data-be/internal/config"
	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/pkg/apperror"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			AdminUserId:     "admin",
			BootstrapAPIKey: "bootstrap-secret",
		},
	}
}

func TestHashAPIKeyIsStable(t *testing.T) {
	a := HashAPIKey("wds_abc")
	b := HashAPIKey("wds_abc")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // hex sha256
	assert.NotEqual(t, a, HashAPIKey("wds_abd"))
}

func TestGenerateAPIKeyShape(t *testing.T) {
	key, err := generateAPIKey()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, keyPrefix))
	assert.Len(t, key, len(keyPrefix)+2*keyByteLength)

	other, err := generateAPIKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestResolveBootstrapKey(t *testing.T) {
	svc := NewAPIKeyService(&fakeFactory{uow: &fakeUnitOfWork{}}, testAuthConfig(), nopLogger{})

	principal, err := svc.Resolve(context.Background(), "bootstrap-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", principal.UserId)
	assert.True(t, principal.Admin)
}

func TestResolveUnknownKeyDenied(t *testing.T) {
	uow := &fakeUnitOfWork{}
	uow.apiKeys.findOneFn = func() (*entity.APIKey, error) { return nil, nil }
	svc := NewAPIKeyService(&fakeFactory{uow: uow}, testAuthConfig(), nopLogger{})

	_, err := svc.Resolve(context.Background(), "wds_nope")
	assert.True(t, apperror.IsDenied(err))

	_, err = svc.Resolve(context.Background(), "")
	assert.True(t, apperror.IsDenied(err))
}

func TestResolveStoredKey(t *testing.T) {
	plain := "wds_stored"
	stored := &entity.APIKey{UserId: "alice", KeyHash: HashAPIKey(plain)}
	uow := &fakeUnitOfWork{}
	uow.apiKeys.findOneFn = func() (*entity.APIKey, error) { return stored, nil }
	svc := NewAPIKeyService(&fakeFactory{uow: uow}, testAuthConfig(), nopLogger{})

	principal, err := svc.Resolve(context.Background(), plain)
	require.NoError(t, err)
	assert.Equal(t, "alice", principal.UserId)
	assert.False(t, principal.Admin)

	// usage is recorded
	require.Len(t, uow.apiKeys.updated, 1)
	assert.NotNil(t, uow.apiKeys.updated[0].LastUsedAt)
}

func TestIssueRequiresAdmin(t *testing.T) {
	uow := &fakeUnitOfWork{}
	svc := NewAPIKeyService(&fakeFactory{uow: uow}, testAuthConfig(), nopLogger{})

	_, err := svc.Issue(context.Background(), entity.Principal{UserId: "alice"}, &dto.IssueAPIKeyRequest{UserId: "alice", Name: "ci"})
	assert.True(t, apperror.IsDenied(err))
	assert.Empty(t, uow.apiKeys.created)
}

func TestIssueStoresOnlyTheHash(t *testing.T) {
	uow := &fakeUnitOfWork{}
	svc := NewAPIKeyService(&fakeFactory{uow: uow}, testAuthConfig(), nopLogger{})

	res, err := svc.Issue(context.Background(), entity.Principal{UserId: "admin", Admin: true}, &dto.IssueAPIKeyRequest{
		UserId: "alice",
		Name:   "ci",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.APIKey, keyPrefix))

	require.Len(t, uow.apiKeys.created, 1)
	stored := uow.apiKeys.created[0]
	assert.NotEqual(t, res.APIKey, stored.KeyHash)
	assert.Equal(t, HashAPIKey(res.APIKey), stored.KeyHash)
	assert.True(t, strings.HasPrefix(res.APIKey, stored.KeyPrefix))
}
