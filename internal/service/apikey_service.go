package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"workflow-data-be/internal/config"
	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/pkg/apperror"
	"workflow-data-be/internal/pkg/logger"
	"workflow-data-be/internal/repository/specification"
	"workflow-data-be/internal/repository/unitofwork"
)

const (
	keyPrefix         = "wds_"
	keyByteLength     = 32
	principalCacheTTL = time.Minute
)

type IAPIKeyService interface {
	Issue(ctx context.Context, principal entity.Principal, request *dto.IssueAPIKeyRequest) (*dto.IssueAPIKeyResponse, error)
	Revoke(ctx context.Context, principal entity.Principal, id uuid.UUID) error
	List(ctx context.Context, principal entity.Principal) ([]dto.APIKeyResponse, error)
	Resolve(ctx context.Context, apiKey string) (*entity.Principal, error)
}

type apiKeyService struct {
	factory    unitofwork.RepositoryFactory
	cfg        *config.Config
	log        logger.ILogger
	principals *cache.Cache
}

func NewAPIKeyService(factory unitofwork.RepositoryFactory, cfg *config.Config, log logger.ILogger) IAPIKeyService {
	return &apiKeyService{
		factory:    factory,
		cfg:        cfg,
		log:        log,
		principals: cache.New(principalCacheTTL, 5*time.Minute),
	}
}

// HashAPIKey returns the hex SHA-256 digest of a plain key. Only digests are
// persisted; the plain key leaves the server once, at issuance.
func HashAPIKey(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

func generateAPIKey() (string, error) {
	buf := make([]byte, keyByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", apperror.NewStore(err)
	}
	return keyPrefix + hex.EncodeToString(buf), nil
}

func (s *apiKeyService) Issue(ctx context.Context, principal entity.Principal, request *dto.IssueAPIKeyRequest) (*dto.IssueAPIKeyResponse, error) {
	if !principal.Admin {
		return nil, apperror.NewDenied()
	}

	plain, err := generateAPIKey()
	if err != nil {
		return nil, err
	}

	key := &entity.APIKey{
		UserId:    request.UserId,
		Name:      request.Name,
		KeyHash:   HashAPIKey(plain),
		KeyPrefix: plain[:len(keyPrefix)+8],
		Admin:     request.Admin,
	}

	uow := s.factory.NewUnitOfWork(ctx)
	if err := uow.APIKeyRepository().Create(ctx, key); err != nil {
		return nil, apperror.NewStore(err)
	}

	s.log.Info("apikey", "api key issued", map[string]interface{}{
		"user_id": key.UserId,
		"prefix":  key.KeyPrefix,
		"admin":   key.Admin,
	})

	return &dto.IssueAPIKeyResponse{
		Id:        key.Id,
		UserId:    key.UserId,
		Name:      key.Name,
		KeyPrefix: key.KeyPrefix,
		APIKey:    plain,
		Admin:     key.Admin,
		CreatedAt: key.CreatedAt,
	}, nil
}

func (s *apiKeyService) Revoke(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	if !principal.Admin {
		return apperror.NewDenied()
	}

	uow := s.factory.NewUnitOfWork(ctx)
	repo := uow.APIKeyRepository()

	key, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperror.NewStore(err)
	}
	if key == nil {
		return apperror.NewNotFound("api key")
	}
	if key.Revoked {
		return nil
	}

	key.Revoked = true
	if err := repo.Update(ctx, key); err != nil {
		return apperror.NewStore(err)
	}

	s.principals.Delete(key.KeyHash)
	s.log.Info("apikey", "api key revoked", map[string]interface{}{"id": id.String()})
	return nil
}

func (s *apiKeyService) List(ctx context.Context, principal entity.Principal) ([]dto.APIKeyResponse, error) {
	if !principal.Admin {
		return nil, apperror.NewDenied()
	}

	uow := s.factory.NewUnitOfWork(ctx)
	keys, err := uow.APIKeyRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	responses := make([]dto.APIKeyResponse, 0, len(keys))
	for _, k := range keys {
		responses = append(responses, dto.APIKeyResponse{
			Id:         k.Id,
			UserId:     k.UserId,
			Name:       k.Name,
			KeyPrefix:  k.KeyPrefix,
			Admin:      k.Admin,
			Revoked:    k.Revoked,
			LastUsedAt: k.LastUsedAt,
			CreatedAt:  k.CreatedAt,
		})
	}
	return responses, nil
}

// Resolve maps a presented key to a principal. The bootstrap key from the
// environment always resolves to the configured admin, so a fresh deployment
// can issue its first database-backed keys.
func (s *apiKeyService) Resolve(ctx context.Context, apiKey string) (*entity.Principal, error) {
	if apiKey == "" {
		return nil, apperror.NewDenied()
	}

	if s.cfg.Auth.BootstrapAPIKey != "" &&
		subtle.ConstantTimeCompare([]byte(apiKey), []byte(s.cfg.Auth.BootstrapAPIKey)) == 1 {
		return &entity.Principal{UserId: s.cfg.Auth.AdminUserId, Admin: true}, nil
	}

	hash := HashAPIKey(apiKey)
	if cached, found := s.principals.Get(hash); found {
		p := cached.(entity.Principal)
		return &p, nil
	}

	uow := s.factory.NewUnitOfWork(ctx)
	key, err := uow.APIKeyRepository().FindOne(ctx, specification.ByKeyHash{Hash: hash}, specification.NotRevoked{})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	if key == nil {
		return nil, apperror.NewDenied()
	}

	principal := entity.Principal{
		UserId: key.UserId,
		Admin:  key.Admin || key.UserId == s.cfg.Auth.AdminUserId,
	}
	s.principals.Set(hash, principal, cache.DefaultExpiration)

	s.touchLastUsed(ctx, key)
	return &principal, nil
}

func (s *apiKeyService) touchLastUsed(ctx context.Context, key *entity.APIKey) {
	now := time.Now().UTC()
	key.LastUsedAt = &now
	uow := s.factory.NewUnitOfWork(ctx)
	if err := uow.APIKeyRepository().Update(ctx, key); err != nil {
		s.log.Warn("apikey", "failed to record key usage", map[string]interface{}{"error": err.Error()})
	}
}
