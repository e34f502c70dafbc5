package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/pkg/apperror"
	"workflow-data-be/internal/pkg/logger"
	"workflow-data-be/internal/repository/specification"
	"workflow-data-be/internal/repository/unitofwork"
)

type ISessionService interface {
	Create(ctx context.Context, principal entity.Principal, request *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.SessionResponse, error)
	List(ctx context.Context, principal entity.Principal, query *dto.ListSessionsQuery) ([]dto.SessionResponse, error)
	Update(ctx context.Context, principal entity.Principal, id uuid.UUID, request *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
}

type sessionService struct {
	factory unitofwork.RepositoryFactory
	access  IAccessService
	log     logger.ILogger
}

func NewSessionService(factory unitofwork.RepositoryFactory, access IAccessService, log logger.ILogger) ISessionService {
	return &sessionService{factory: factory, access: access, log: log}
}

func (s *sessionService) Create(ctx context.Context, principal entity.Principal, request *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	if err := s.access.Authorize(principal, OpWrite, &entity.AccessScope{OwnerId: request.UserId}); err != nil {
		return nil, err
	}

	uow := s.factory.NewUnitOfWork(ctx)

	// the parent chat must exist and be readable; a missing chat yields the
	// same denial as a forbidden one
	scope, err := loadChatScope(ctx, uow, request.ChatId)
	if err != nil {
		return nil, err
	}
	if err := s.access.Authorize(principal, OpRead, scope); err != nil {
		return nil, err
	}
	if scope == nil {
		return nil, apperror.NewNotFound("chat")
	}

	session := &entity.Session{
		ChatId:    request.ChatId,
		UserId:    request.UserId,
		Timestamp: time.Now().UTC(),
		DeviceId:  request.DeviceId,
		Ip:        request.Ip,
		Status:    entity.SessionStatusActive,
		Metadata:  request.Metadata,
	}
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, apperror.NewStore(err)
	}

	s.log.Info("session", "session created", map[string]interface{}{
		"id":      session.Id.String(),
		"chat_id": session.ChatId.String(),
		"user_id": session.UserId,
	})
	return toSessionResponse(session), nil
}

func (s *sessionService) Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	if session == nil {
		if principal.Admin {
			return nil, apperror.NewNotFound("session")
		}
		return nil, apperror.NewDenied()
	}

	scope, err := loadChatScope(ctx, uow, session.ChatId)
	if err != nil {
		return nil, err
	}
	if err := s.access.Authorize(principal, OpRead, scope); err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

func (s *sessionService) List(ctx context.Context, principal entity.Principal, query *dto.ListSessionsQuery) ([]dto.SessionResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "timestamp", Desc: true},
		paginate(query.Limit, query.Offset),
	}
	if !principal.Admin {
		ids, err := accessibleChatIDs(ctx, uow, principal.UserId)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []dto.SessionResponse{}, nil
		}
		specs = append(specs, specification.ByChatIDs{ChatIDs: ids})
	}
	if query.UserId != "" {
		specs = append(specs, specification.OwnedBy{UserId: query.UserId})
	}
	if query.ChatId != "" {
		chatId, err := uuid.Parse(query.ChatId)
		if err != nil {
			return nil, apperror.NewValidation("chat_id must be a uuid")
		}
		specs = append(specs, specification.ByChatID{ChatID: chatId})
	}
	if query.Status != "" {
		if !entity.SessionStatus(query.Status).Valid() {
			return nil, apperror.NewValidationf("unknown session status %q", query.Status)
		}
		specs = append(specs, specification.ByStatus{Status: query.Status})
	}
	from, to, err := parseTimeRange(query.From, query.To)
	if err != nil {
		return nil, err
	}
	if !from.IsZero() || !to.IsZero() {
		specs = append(specs, specification.TimestampBetween{Field: "timestamp", From: from, To: to})
	}

	sessions, err := uow.SessionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	responses := make([]dto.SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		responses = append(responses, *toSessionResponse(sess))
	}
	return responses, nil
}

func (s *sessionService) Update(ctx context.Context, principal entity.Principal, id uuid.UUID, request *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)
	repo := uow.SessionRepository()

	session, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	if session == nil {
		if principal.Admin {
			return nil, apperror.NewNotFound("session")
		}
		return nil, apperror.NewDenied()
	}
	if err := s.access.Authorize(principal, OpWrite, &entity.AccessScope{OwnerId: session.UserId}); err != nil {
		return nil, err
	}

	if request.Status != nil {
		next := entity.SessionStatus(*request.Status)
		if !session.Status.CanTransition(next) {
			return nil, apperror.NewValidationf("cannot transition session from %s to %s", session.Status, next)
		}
		session.Status = next
	}
	if request.Metadata != nil {
		session.Metadata = request.Metadata
	}

	if err := repo.Update(ctx, session); err != nil {
		return nil, apperror.NewStore(err)
	}
	return toSessionResponse(session), nil
}

func toSessionResponse(s *entity.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:        s.Id,
		ChatId:    s.ChatId,
		UserId:    s.UserId,
		Timestamp: s.Timestamp,
		DeviceId:  s.DeviceId,
		Ip:        s.Ip,
		Status:    string(s.Status),
		Metadata:  s.Metadata,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
