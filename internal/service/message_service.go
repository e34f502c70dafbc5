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

type IMessageService interface {
	Create(ctx context.Context, principal entity.Principal, request *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.MessageResponse, error)
	List(ctx context.Context, principal entity.Principal, query *dto.ListMessagesQuery) ([]dto.MessageResponse, error)
}

type messageService struct {
	factory unitofwork.RepositoryFactory
	access  IAccessService
	log     logger.ILogger
}

func NewMessageService(factory unitofwork.RepositoryFactory, access IAccessService, log logger.ILogger) IMessageService {
	return &messageService{factory: factory, access: access, log: log}
}

func (s *messageService) Create(ctx context.Context, principal entity.Principal, request *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	if err := s.access.Authorize(principal, OpWrite, &entity.AccessScope{OwnerId: request.SenderId}); err != nil {
		return nil, err
	}

	uow := s.factory.NewUnitOfWork(ctx)

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

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: request.SessionId})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	if session == nil || session.ChatId != request.ChatId {
		return nil, apperror.NewValidation("session does not belong to chat")
	}

	message := &entity.Message{
		SenderId:  request.SenderId,
		ChatId:    request.ChatId,
		SessionId: request.SessionId,
		Timestamp: time.Now().UTC(),
		Type:      entity.MessageType(request.Type),
		Text:      request.Text,
		Url:       request.Url,
		Json:      request.Json,
		Metadata:  request.Metadata,
	}
	if err := message.ValidatePayload(); err != nil {
		return nil, apperror.NewValidation(err.Error())
	}

	if err := uow.MessageRepository().Create(ctx, message); err != nil {
		return nil, apperror.NewStore(err)
	}

	s.log.Info("message", "message created", map[string]interface{}{
		"id":      message.Id.String(),
		"chat_id": message.ChatId.String(),
		"type":    string(message.Type),
	})
	return toMessageResponse(message), nil
}

func (s *messageService) Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.MessageResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)
	message, err := uow.MessageRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	if message == nil {
		if principal.Admin {
			return nil, apperror.NewNotFound("message")
		}
		return nil, apperror.NewDenied()
	}

	scope, err := loadChatScope(ctx, uow, message.ChatId)
	if err != nil {
		return nil, err
	}
	if err := s.access.Authorize(principal, OpRead, scope); err != nil {
		return nil, err
	}
	return toMessageResponse(message), nil
}

func (s *messageService) List(ctx context.Context, principal entity.Principal, query *dto.ListMessagesQuery) ([]dto.MessageResponse, error) {
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
			return []dto.MessageResponse{}, nil
		}
		specs = append(specs, specification.ByChatIDs{ChatIDs: ids})
	}
	if query.ChatId != "" {
		chatId, err := uuid.Parse(query.ChatId)
		if err != nil {
			return nil, apperror.NewValidation("chat_id must be a uuid")
		}
		specs = append(specs, specification.ByChatID{ChatID: chatId})
	}
	if query.SessionId != "" {
		sessionId, err := uuid.Parse(query.SessionId)
		if err != nil {
			return nil, apperror.NewValidation("session_id must be a uuid")
		}
		specs = append(specs, specification.BySessionID{SessionID: sessionId})
	}
	if query.SenderId != "" {
		specs = append(specs, specification.BySenderID{SenderId: query.SenderId})
	}
	if query.Type != "" {
		if !entity.MessageType(query.Type).Valid() {
			return nil, apperror.NewValidationf("unknown message type %q", query.Type)
		}
		specs = append(specs, specification.Filter("type", query.Type))
	}
	from, to, err := parseTimeRange(query.From, query.To)
	if err != nil {
		return nil, err
	}
	if !from.IsZero() || !to.IsZero() {
		specs = append(specs, specification.TimestampBetween{Field: "timestamp", From: from, To: to})
	}

	messages, err := uow.MessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, *toMessageResponse(m))
	}
	return responses, nil
}

func toMessageResponse(m *entity.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		Id:        m.Id,
		SenderId:  m.SenderId,
		ChatId:    m.ChatId,
		SessionId: m.SessionId,
		Timestamp: m.Timestamp,
		Type:      string(m.Type),
		Text:      m.Text,
		Url:       m.Url,
		Json:      m.Json,
		Metadata:  m.Metadata,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
