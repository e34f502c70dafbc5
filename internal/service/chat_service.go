package service

import (
	"context"

	"github.com/google/uuid"

	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/pkg/apperror"
	"workflow-data-be/internal/pkg/logger"
	"workflow-data-be/internal/repository/specification"
	"workflow-data-be/internal/repository/unitofwork"
)

type IChatService interface {
	Create(ctx context.Context, principal entity.Principal, request *dto.CreateChatRequest) (*dto.ChatResponse, error)
	Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.ChatResponse, error)
	List(ctx context.Context, principal entity.Principal, query *dto.ListChatsQuery) ([]dto.ChatResponse, error)
	Update(ctx context.Context, principal entity.Principal, id uuid.UUID, request *dto.UpdateChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	factory unitofwork.RepositoryFactory
	access  IAccessService
	log     logger.ILogger
}

func NewChatService(factory unitofwork.RepositoryFactory, access IAccessService, log logger.ILogger) IChatService {
	return &chatService{factory: factory, access: access, log: log}
}

func (s *chatService) Create(ctx context.Context, principal entity.Principal, request *dto.CreateChatRequest) (*dto.ChatResponse, error) {
	if err := s.access.Authorize(principal, OpWrite, &entity.AccessScope{OwnerId: request.UserId}); err != nil {
		return nil, err
	}

	chat := &entity.Chat{
		UserId:      request.UserId,
		SessionId:   request.SessionId,
		Title:       request.Title,
		AccessUsers: request.AccessUsers,
		Metadata:    request.Metadata,
	}
	chat.NormalizeAccessUsers()

	uow := s.factory.NewUnitOfWork(ctx)
	if err := uow.ChatRepository().Create(ctx, chat); err != nil {
		return nil, apperror.NewStore(err)
	}

	s.log.Info("chat", "chat created", map[string]interface{}{
		"id":      chat.Id.String(),
		"user_id": chat.UserId,
	})
	return toChatResponse(chat), nil
}

func (s *chatService) Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.ChatResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)
	chat, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	if chat == nil {
		// only admins learn a record does not exist
		if principal.Admin {
			return nil, apperror.NewNotFound("chat")
		}
		return nil, apperror.NewDenied()
	}
	if err := s.access.Authorize(principal, OpRead, chat.Scope()); err != nil {
		return nil, err
	}
	return toChatResponse(chat), nil
}

func (s *chatService) List(ctx context.Context, principal entity.Principal, query *dto.ListChatsQuery) ([]dto.ChatResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		paginate(query.Limit, query.Offset),
	}
	if !principal.Admin {
		specs = append(specs, specification.AccessibleBy{UserId: principal.UserId})
	}
	if query.UserId != "" {
		specs = append(specs, specification.OwnedBy{UserId: query.UserId})
	}
	if query.SessionId != "" {
		specs = append(specs, specification.Filter("session_id", query.SessionId))
	}
	from, to, err := parseTimeRange(query.From, query.To)
	if err != nil {
		return nil, err
	}
	if !from.IsZero() || !to.IsZero() {
		specs = append(specs, specification.TimestampBetween{Field: "created_at", From: from, To: to})
	}

	uow := s.factory.NewUnitOfWork(ctx)
	chats, err := uow.ChatRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	responses := make([]dto.ChatResponse, 0, len(chats))
	for _, c := range chats {
		responses = append(responses, *toChatResponse(c))
	}
	return responses, nil
}

func (s *chatService) Update(ctx context.Context, principal entity.Principal, id uuid.UUID, request *dto.UpdateChatRequest) (*dto.ChatResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)
	repo := uow.ChatRepository()

	chat, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	if chat == nil {
		if principal.Admin {
			return nil, apperror.NewNotFound("chat")
		}
		return nil, apperror.NewDenied()
	}
	if err := s.access.Authorize(principal, OpWrite, chat.Scope()); err != nil {
		return nil, err
	}

	if request.Title != nil {
		chat.Title = *request.Title
	}
	if request.AccessUsers != nil {
		chat.AccessUsers = *request.AccessUsers
		chat.NormalizeAccessUsers()
	}
	if request.Metadata != nil {
		chat.Metadata = request.Metadata
	}

	if err := repo.Update(ctx, chat); err != nil {
		return nil, apperror.NewStore(err)
	}
	return toChatResponse(chat), nil
}

func toChatResponse(c *entity.Chat) *dto.ChatResponse {
	access := c.AccessUsers
	if access == nil {
		access = []string{}
	}
	return &dto.ChatResponse{
		Id:          c.Id,
		UserId:      c.UserId,
		SessionId:   c.SessionId,
		Title:       c.Title,
		AccessUsers: access,
		Metadata:    c.Metadata,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
