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

type IAgentService interface {
	Create(ctx context.Context, principal entity.Principal, request *dto.CreateAgentRequest) (*dto.AgentResponse, error)
	Register(ctx context.Context, principal entity.Principal, request *dto.RegisterAgentRequest) (*dto.AgentResponse, error)
	Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.AgentResponse, error)
	List(ctx context.Context, principal entity.Principal, query *dto.ListAgentsQuery) ([]dto.AgentResponse, error)
	Update(ctx context.Context, principal entity.Principal, id uuid.UUID, request *dto.UpdateAgentRequest) (*dto.AgentResponse, error)
}

type agentService struct {
	factory unitofwork.RepositoryFactory
	access  IAccessService
	log     logger.ILogger
}

func NewAgentService(factory unitofwork.RepositoryFactory, access IAccessService, log logger.ILogger) IAgentService {
	return &agentService{factory: factory, access: access, log: log}
}

func (s *agentService) Create(ctx context.Context, principal entity.Principal, request *dto.CreateAgentRequest) (*dto.AgentResponse, error) {
	if err := s.access.Authorize(principal, OpWrite, &entity.AccessScope{OwnerId: request.UserId}); err != nil {
		return nil, err
	}
	if !entity.AgentType(request.Type).Valid() {
		return nil, apperror.NewValidationf("unknown agent type %q", request.Type)
	}
	if !entity.ValidSemver(request.Version) {
		return nil, apperror.NewValidationf("version %q is not a MAJOR.MINOR.PATCH semver", request.Version)
	}

	agent := buildAgent(request)

	uow := s.factory.NewUnitOfWork(ctx)
	if err := uow.AgentRepository().Create(ctx, agent); err != nil {
		return nil, apperror.NewStore(err)
	}

	s.log.Info("agent", "agent created", map[string]interface{}{
		"id":      agent.Id.String(),
		"user_id": agent.UserId,
		"type":    string(agent.Type),
	})
	return toAgentResponse(agent), nil
}

// Register upserts an agent keyed by (user_id, name, type): a known agent is
// refreshed in place and reactivated, an unknown one is created. The lookup
// and the write run in one transaction so concurrent registrations cannot
// both take the create path.
func (s *agentService) Register(ctx context.Context, principal entity.Principal, request *dto.RegisterAgentRequest) (*dto.AgentResponse, error) {
	if err := s.access.Authorize(principal, OpWrite, &entity.AccessScope{OwnerId: request.UserId}); err != nil {
		return nil, err
	}
	if !entity.AgentType(request.Type).Valid() {
		return nil, apperror.NewValidationf("unknown agent type %q", request.Type)
	}
	if !entity.ValidSemver(request.Version) {
		return nil, apperror.NewValidationf("version %q is not a MAJOR.MINOR.PATCH semver", request.Version)
	}

	uow := s.factory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.NewStore(err)
	}
	defer uow.Rollback()
	repo := uow.AgentRepository()

	existing, err := repo.FindOne(ctx, specification.ByRegistration{
		UserId: request.UserId,
		Name:   request.Name,
		Type:   request.Type,
	})
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	if existing == nil {
		agent := buildAgent(&dto.CreateAgentRequest{
			UserId:        request.UserId,
			Name:          request.Name,
			Description:   request.Description,
			Type:          request.Type,
			Version:       request.Version,
			Config:        request.Config,
			SystemMessage: request.SystemMessage,
			Src:           request.Src,
			Command:       request.Command,
			Capabilities:  request.Capabilities,
			Metadata:      request.Metadata,
		})
		if err := repo.Create(ctx, agent); err != nil {
			return nil, apperror.NewStore(err)
		}
		if err := uow.Commit(); err != nil {
			return nil, apperror.NewStore(err)
		}

		s.log.Info("agent", "agent registered", map[string]interface{}{
			"id":      agent.Id.String(),
			"user_id": agent.UserId,
			"type":    string(agent.Type),
		})
		return toAgentResponse(agent), nil
	}

	if existing.Status == entity.AgentStatusArchived {
		return nil, apperror.NewValidation("cannot re-register an archived agent")
	}

	existing.Version = request.Version
	existing.Config = request.Config
	existing.SystemMessage = request.SystemMessage
	existing.Src = request.Src
	existing.Command = request.Command
	existing.Description = request.Description
	existing.Capabilities = request.Capabilities
	if request.Metadata != nil {
		existing.Metadata = request.Metadata
	}
	existing.Status = entity.AgentStatusActive
	existing.LastActive = time.Now().UTC()

	if err := repo.Update(ctx, existing); err != nil {
		return nil, apperror.NewStore(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.NewStore(err)
	}

	s.log.Info("agent", "agent re-registered", map[string]interface{}{
		"id":      existing.Id.String(),
		"user_id": existing.UserId,
	})
	return toAgentResponse(existing), nil
}

func (s *agentService) Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.AgentResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)
	agent, err := uow.AgentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	if agent == nil {
		if principal.Admin {
			return nil, apperror.NewNotFound("agent")
		}
		return nil, apperror.NewDenied()
	}
	if err := s.access.Authorize(principal, OpRead, &entity.AccessScope{OwnerId: agent.UserId}); err != nil {
		return nil, err
	}
	return toAgentResponse(agent), nil
}

func (s *agentService) List(ctx context.Context, principal entity.Principal, query *dto.ListAgentsQuery) ([]dto.AgentResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "last_active", Desc: true},
		paginate(query.Limit, query.Offset),
	}
	if !principal.Admin {
		specs = append(specs, specification.OwnedBy{UserId: principal.UserId})
	}
	if query.UserId != "" {
		specs = append(specs, specification.OwnedBy{UserId: query.UserId})
	}
	if query.Type != "" {
		if !entity.AgentType(query.Type).Valid() {
			return nil, apperror.NewValidationf("unknown agent type %q", query.Type)
		}
		specs = append(specs, specification.ByAgentType{Type: query.Type})
	}
	if query.Status != "" {
		if !entity.AgentStatus(query.Status).Valid() {
			return nil, apperror.NewValidationf("unknown agent status %q", query.Status)
		}
		specs = append(specs, specification.ByStatus{Status: query.Status})
	}
	from, to, err := parseTimeRange(query.From, query.To)
	if err != nil {
		return nil, err
	}
	if !from.IsZero() || !to.IsZero() {
		specs = append(specs, specification.TimestampBetween{Field: "last_active", From: from, To: to})
	}

	uow := s.factory.NewUnitOfWork(ctx)
	agents, err := uow.AgentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	responses := make([]dto.AgentResponse, 0, len(agents))
	for _, a := range agents {
		responses = append(responses, *toAgentResponse(a))
	}
	return responses, nil
}

func (s *agentService) Update(ctx context.Context, principal entity.Principal, id uuid.UUID, request *dto.UpdateAgentRequest) (*dto.AgentResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)
	repo := uow.AgentRepository()

	agent, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	if agent == nil {
		if principal.Admin {
			return nil, apperror.NewNotFound("agent")
		}
		return nil, apperror.NewDenied()
	}
	if err := s.access.Authorize(principal, OpWrite, &entity.AccessScope{OwnerId: agent.UserId}); err != nil {
		return nil, err
	}

	if request.Version != nil {
		if !entity.ValidSemver(*request.Version) {
			return nil, apperror.NewValidationf("version %q is not a MAJOR.MINOR.PATCH semver", *request.Version)
		}
		agent.Version = *request.Version
	}
	if request.Status != nil {
		next := entity.AgentStatus(*request.Status)
		if !agent.Status.CanTransition(next) {
			return nil, apperror.NewValidationf("cannot transition agent from %s to %s", agent.Status, next)
		}
		agent.Status = next
	}
	if request.Name != nil {
		agent.Name = *request.Name
	}
	if request.Description != nil {
		agent.Description = request.Description
	}
	if request.Config != nil {
		agent.Config = request.Config
	}
	if request.SystemMessage != nil {
		agent.SystemMessage = *request.SystemMessage
	}
	if request.Src != nil {
		agent.Src = *request.Src
	}
	if request.Command != nil {
		agent.Command = *request.Command
	}
	if request.Capabilities != nil {
		agent.Capabilities = *request.Capabilities
	}
	if request.PerformanceMetrics != nil {
		agent.PerformanceMetrics = request.PerformanceMetrics
	}
	if request.Metadata != nil {
		agent.Metadata = request.Metadata
	}
	agent.LastActive = time.Now().UTC()

	if err := repo.Update(ctx, agent); err != nil {
		return nil, apperror.NewStore(err)
	}
	return toAgentResponse(agent), nil
}

func buildAgent(request *dto.CreateAgentRequest) *entity.Agent {
	return &entity.Agent{
		UserId:        request.UserId,
		Name:          request.Name,
		Description:   request.Description,
		Type:          entity.AgentType(request.Type),
		Version:       request.Version,
		Config:        request.Config,
		SystemMessage: request.SystemMessage,
		Src:           request.Src,
		Command:       request.Command,
		Status:        entity.AgentStatusActive,
		Capabilities:  request.Capabilities,
		Metadata:      request.Metadata,
		LastActive:    time.Now().UTC(),
	}
}

func toAgentResponse(a *entity.Agent) *dto.AgentResponse {
	caps := a.Capabilities
	if caps == nil {
		caps = []string{}
	}
	return &dto.AgentResponse{
		Id:                 a.Id,
		UserId:             a.UserId,
		Name:               a.Name,
		Description:        a.Description,
		Type:               string(a.Type),
		Version:            a.Version,
		Config:             a.Config,
		SystemMessage:      a.SystemMessage,
		Src:                a.Src,
		Command:            a.Command,
		Status:             string(a.Status),
		Capabilities:       caps,
		PerformanceMetrics: a.PerformanceMetrics,
		Metadata:           a.Metadata,
		LastActive:         a.LastActive,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
