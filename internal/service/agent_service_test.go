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

func newAgentService(uow *fakeUnitOfWork) IAgentService {
	return NewAgentService(&fakeFactory{uow: uow}, NewAccessService(), nopLogger{})
}

func registerRequest() *dto.RegisterAgentRequest {
	return &dto.RegisterAgentRequest{
		UserId:        "alice",
		Name:          "planner",
		Type:          string(entity.AgentTypeWorkflowCreator),
		Version:       "1.2.0",
		Config:        map[string]interface{}{"model": "large"},
		SystemMessage: "you plan workflows",
		Src:           "registry/planner",
		Command:       "run",
	}
}

func TestRegisterCreatesUnknownAgent(t *testing.T) {
	uow := &fakeUnitOfWork{}
	svc := newAgentService(uow)

	res, err := svc.Register(context.Background(), entity.Principal{UserId: "alice"}, registerRequest())
	require.NoError(t, err)
	assert.Equal(t, string(entity.AgentStatusActive), res.Status)
	assert.Len(t, uow.agents.created, 1)
	assert.Empty(t, uow.agents.updated)
}

func TestRegisterRefreshesKnownAgent(t *testing.T) {
	existing := &entity.Agent{
		Id:      uuid.New(),
		UserId:  "alice",
		Name:    "planner",
		Type:    entity.AgentTypeWorkflowCreator,
		Version: "1.0.0",
		Status:  entity.AgentStatusInactive,
	}
	uow := &fakeUnitOfWork{}
	uow.agents.findOneFn = func() (*entity.Agent, error) { return existing, nil }
	svc := newAgentService(uow)

	res, err := svc.Register(context.Background(), entity.Principal{UserId: "alice"}, registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", res.Version)
	assert.Equal(t, string(entity.AgentStatusActive), res.Status, "re-registration reactivates")
	assert.Empty(t, uow.agents.created)
	assert.Len(t, uow.agents.updated, 1)
}

func TestRegisterArchivedAgentRejected(t *testing.T) {
	existing := &entity.Agent{
		Id:     uuid.New(),
		UserId: "alice",
		Name:   "planner",
		Type:   entity.AgentTypeWorkflowCreator,
		Status: entity.AgentStatusArchived,
	}
	uow := &fakeUnitOfWork{}
	uow.agents.findOneFn = func() (*entity.Agent, error) { return existing, nil }
	svc := newAgentService(uow)

	_, err := svc.Register(context.Background(), entity.Principal{UserId: "alice"}, registerRequest())
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestRegisterRunsInTransaction(t *testing.T) {
	uow := &fakeUnitOfWork{}
	svc := newAgentService(uow)

	_, err := svc.Register(context.Background(), entity.Principal{UserId: "alice"}, registerRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, uow.begun, "lookup and create share a transaction")
	assert.Equal(t, 1, uow.committed)

	// The archived rejection path rolls back instead of committing.
	uow = &fakeUnitOfWork{}
	uow.agents.findOneFn = func() (*entity.Agent, error) {
		return &entity.Agent{Id: uuid.New(), UserId: "alice", Status: entity.AgentStatusArchived}, nil
	}
	svc = newAgentService(uow)
	_, err = svc.Register(context.Background(), entity.Principal{UserId: "alice"}, registerRequest())
	require.Error(t, err)
	assert.Equal(t, 1, uow.begun)
	assert.Zero(t, uow.committed)
	assert.Equal(t, 1, uow.rolledBack)
}

func TestRegisterValidatesTypeAndVersion(t *testing.T) {
	svc := newAgentService(&fakeUnitOfWork{})
	ctx := context.Background()
	principal := entity.Principal{UserId: "alice"}

	req := registerRequest()
	req.Type = "mystery"
	_, err := svc.Register(ctx, principal, req)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	req = registerRequest()
	req.Version = "v1"
	_, err = svc.Register(ctx, principal, req)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestAgentUpdateArchivedIsTerminal(t *testing.T) {
	existing := &entity.Agent{Id: uuid.New(), UserId: "alice", Status: entity.AgentStatusArchived}
	uow := &fakeUnitOfWork{}
	uow.agents.findOneFn = func() (*entity.Agent, error) { return existing, nil }
	svc := newAgentService(uow)

	active := string(entity.AgentStatusActive)
	_, err := svc.Update(context.Background(), entity.Principal{UserId: "alice"}, existing.Id, &dto.UpdateAgentRequest{Status: &active})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Empty(t, uow.agents.updated)
}
