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

type IWorkflowService interface {
	Create(ctx context.Context, principal entity.Principal, request *dto.CreateWorkflowRequest) (*dto.WorkflowResponse, error)
	Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.WorkflowResponse, error)
	List(ctx context.Context, principal entity.Principal, query *dto.ListWorkflowsQuery) ([]dto.WorkflowResponse, error)
	Update(ctx context.Context, principal entity.Principal, id uuid.UUID, request *dto.UpdateWorkflowRequest) (*dto.WorkflowResponse, error)
}

type workflowService struct {
	factory unitofwork.RepositoryFactory
	access  IAccessService
	log     logger.ILogger
}

func NewWorkflowService(factory unitofwork.RepositoryFactory, access IAccessService, log logger.ILogger) IWorkflowService {
	return &workflowService{factory: factory, access: access, log: log}
}

func (s *workflowService) Create(ctx context.Context, principal entity.Principal, request *dto.CreateWorkflowRequest) (*dto.WorkflowResponse, error) {
	if err := s.access.Authorize(principal, OpWrite, &entity.AccessScope{OwnerId: request.UserId}); err != nil {
		return nil, err
	}
	if !entity.ValidSemver(request.Version) {
		return nil, apperror.NewValidationf("version %q is not a MAJOR.MINOR.PATCH semver", request.Version)
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

	workflow := &entity.Workflow{
		UserId:      request.UserId,
		ChatId:      request.ChatId,
		Name:        request.Name,
		Version:     request.Version,
		Description: request.Description,
		Graph:       request.Graph,
		TechSpec:    request.TechSpec,
		Status:      entity.WorkflowStatusDraft,
		Timestamp:   time.Now().UTC(),
		Metadata:    request.Metadata,
	}
	if err := uow.WorkflowRepository().Create(ctx, workflow); err != nil {
		return nil, apperror.NewStore(err)
	}

	s.log.Info("workflow", "workflow created", map[string]interface{}{
		"id":      workflow.Id.String(),
		"user_id": workflow.UserId,
		"name":    workflow.Name,
	})
	return toWorkflowResponse(workflow), nil
}

func (s *workflowService) Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.WorkflowResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)
	workflow, err := uow.WorkflowRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	if workflow == nil {
		if principal.Admin {
			return nil, apperror.NewNotFound("workflow")
		}
		return nil, apperror.NewDenied()
	}

	scope, err := loadChatScope(ctx, uow, workflow.ChatId)
	if err != nil {
		return nil, err
	}
	if err := s.access.Authorize(principal, OpRead, scope); err != nil {
		return nil, err
	}
	return toWorkflowResponse(workflow), nil
}

func (s *workflowService) List(ctx context.Context, principal entity.Principal, query *dto.ListWorkflowsQuery) ([]dto.WorkflowResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		paginate(query.Limit, query.Offset),
	}
	if !principal.Admin {
		ids, err := accessibleChatIDs(ctx, uow, principal.UserId)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []dto.WorkflowResponse{}, nil
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
		if !entity.WorkflowStatus(query.Status).Valid() {
			return nil, apperror.NewValidationf("unknown workflow status %q", query.Status)
		}
		specs = append(specs, specification.ByStatus{Status: query.Status})
	}
	from, to, err := parseTimeRange(query.From, query.To)
	if err != nil {
		return nil, err
	}
	if !from.IsZero() || !to.IsZero() {
		specs = append(specs, specification.TimestampBetween{Field: "created_at", From: from, To: to})
	}

	workflows, err := uow.WorkflowRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	responses := make([]dto.WorkflowResponse, 0, len(workflows))
	for _, w := range workflows {
		responses = append(responses, *toWorkflowResponse(w))
	}
	return responses, nil
}

func (s *workflowService) Update(ctx context.Context, principal entity.Principal, id uuid.UUID, request *dto.UpdateWorkflowRequest) (*dto.WorkflowResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)
	repo := uow.WorkflowRepository()

	workflow, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	if workflow == nil {
		if principal.Admin {
			return nil, apperror.NewNotFound("workflow")
		}
		return nil, apperror.NewDenied()
	}
	if err := s.access.Authorize(principal, OpWrite, &entity.AccessScope{OwnerId: workflow.UserId}); err != nil {
		return nil, err
	}

	if request.Version != nil {
		if !entity.ValidSemver(*request.Version) {
			return nil, apperror.NewValidationf("version %q is not a MAJOR.MINOR.PATCH semver", *request.Version)
		}
		workflow.Version = *request.Version
	}
	if request.Status != nil {
		next := entity.WorkflowStatus(*request.Status)
		if !workflow.Status.CanTransition(next) {
			return nil, apperror.NewValidationf("cannot transition workflow from %s to %s", workflow.Status, next)
		}
		workflow.Status = next
	}
	if request.Name != nil {
		workflow.Name = *request.Name
	}
	if request.Description != nil {
		workflow.Description = request.Description
	}
	if request.Graph != nil {
		workflow.Graph = request.Graph
	}
	if request.TechSpec != nil {
		workflow.TechSpec = request.TechSpec
	}
	if request.Metadata != nil {
		workflow.Metadata = request.Metadata
	}

	if err := repo.Update(ctx, workflow); err != nil {
		return nil, apperror.NewStore(err)
	}
	return toWorkflowResponse(workflow), nil
}

func toWorkflowResponse(w *entity.Workflow) *dto.WorkflowResponse {
	return &dto.WorkflowResponse{
		Id:          w.Id,
		UserId:      w.UserId,
		ChatId:      w.ChatId,
		Name:        w.Name,
		Version:     w.Version,
		Description: w.Description,
		Graph:       w.Graph,
		TechSpec:    w.TechSpec,
		Status:      string(w.Status),
		Timestamp:   w.Timestamp,
		Metadata:    w.Metadata,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
