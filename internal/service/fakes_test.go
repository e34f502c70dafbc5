package service

import (
	"context"
	"time"

	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/repository/contract"
	"workflow-data-be/internal/repository/specification"
	"workflow-data-be/internal/repository/unitofwork"
)

// In-memory fakes wired through a fake unit of work, so service behavior can
// be tested without a database.

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUnitOfWork struct {
	users     fakeUserRepo
	chats     fakeChatRepo
	sessions  fakeSessionRepo
	messages  fakeMessageRepo
	workflows fakeWorkflowRepo
	agents    fakeAgentRepo
	apiKeys   fakeAPIKeyRepo

	begun      int
	committed  int
	rolledBack int
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { u.begun++; return nil }
func (u *fakeUnitOfWork) Commit() error                   { u.committed++; return nil }
func (u *fakeUnitOfWork) Rollback() error                 { u.rolledBack++; return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository         { return &u.users }
func (u *fakeUnitOfWork) ChatRepository() contract.ChatRepository         { return &u.chats }
func (u *fakeUnitOfWork) SessionRepository() contract.SessionRepository   { return &u.sessions }
func (u *fakeUnitOfWork) MessageRepository() contract.MessageRepository   { return &u.messages }
func (u *fakeUnitOfWork) WorkflowRepository() contract.WorkflowRepository { return &u.workflows }
func (u *fakeUnitOfWork) AgentRepository() contract.AgentRepository       { return &u.agents }
func (u *fakeUnitOfWork) APIKeyRepository() contract.APIKeyRepository     { return &u.apiKeys }

type fakeUserRepo struct {
	findOneFn func() (*entity.User, error)
	created   []*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.created = append(r.created, u)
	return nil
}
func (r *fakeUserRepo) Update(ctx context.Context, u *entity.User) error { return nil }
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	if r.findOneFn != nil {
		return r.findOneFn()
	}
	return nil, nil
}
func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeChatRepo struct {
	findOneFn func() (*entity.Chat, error)
	findAllFn func() ([]*entity.Chat, error)
	deleteFn  func(threshold time.Time) (int64, error)
	created   []*entity.Chat
	updated   []*entity.Chat
}

func (r *fakeChatRepo) Create(ctx context.Context, c *entity.Chat) error {
	r.created = append(r.created, c)
	return nil
}
func (r *fakeChatRepo) Update(ctx context.Context, c *entity.Chat) error {
	r.updated = append(r.updated, c)
	return nil
}
func (r *fakeChatRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error) {
	if r.findOneFn != nil {
		return r.findOneFn()
	}
	return nil, nil
}
func (r *fakeChatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error) {
	if r.findAllFn != nil {
		return r.findAllFn()
	}
	return nil, nil
}
func (r *fakeChatRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (r *fakeChatRepo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	if r.deleteFn != nil {
		return r.deleteFn(threshold)
	}
	return 0, nil
}

type fakeSessionRepo struct {
	findOneFn func() (*entity.Session, error)
	deleteFn  func(threshold time.Time) (int64, error)
	created   []*entity.Session
	updated   []*entity.Session
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *entity.Session) error {
	r.created = append(r.created, s)
	return nil
}
func (r *fakeSessionRepo) Update(ctx context.Context, s *entity.Session) error {
	r.updated = append(r.updated, s)
	return nil
}
func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	if r.findOneFn != nil {
		return r.findOneFn()
	}
	return nil, nil
}
func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	return nil, nil
}
func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (r *fakeSessionRepo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	if r.deleteFn != nil {
		return r.deleteFn(threshold)
	}
	return 0, nil
}

type fakeMessageRepo struct {
	findOneFn func() (*entity.Message, error)
	deleteFn  func(threshold time.Time) (int64, error)
	created   []*entity.Message
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *entity.Message) error {
	r.created = append(r.created, m)
	return nil
}
func (r *fakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error) {
	if r.findOneFn != nil {
		return r.findOneFn()
	}
	return nil, nil
}
func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	return nil, nil
}
func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (r *fakeMessageRepo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	if r.deleteFn != nil {
		return r.deleteFn(threshold)
	}
	return 0, nil
}

type fakeWorkflowRepo struct {
	findOneFn func() (*entity.Workflow, error)
	deleteFn  func(threshold time.Time) (int64, error)
	updated   []*entity.Workflow
}

func (r *fakeWorkflowRepo) Create(ctx context.Context, w *entity.Workflow) error { return nil }
func (r *fakeWorkflowRepo) Update(ctx context.Context, w *entity.Workflow) error {
	r.updated = append(r.updated, w)
	return nil
}
func (r *fakeWorkflowRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Workflow, error) {
	if r.findOneFn != nil {
		return r.findOneFn()
	}
	return nil, nil
}
func (r *fakeWorkflowRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Workflow, error) {
	return nil, nil
}
func (r *fakeWorkflowRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (r *fakeWorkflowRepo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	if r.deleteFn != nil {
		return r.deleteFn(threshold)
	}
	return 0, nil
}

type fakeAgentRepo struct {
	findOneFn func() (*entity.Agent, error)
	deleteFn  func(threshold time.Time) (int64, error)
	created   []*entity.Agent
	updated   []*entity.Agent
}

func (r *fakeAgentRepo) Create(ctx context.Context, a *entity.Agent) error {
	r.created = append(r.created, a)
	return nil
}
func (r *fakeAgentRepo) Update(ctx context.Context, a *entity.Agent) error {
	r.updated = append(r.updated, a)
	return nil
}
func (r *fakeAgentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Agent, error) {
	if r.findOneFn != nil {
		return r.findOneFn()
	}
	return nil, nil
}
func (r *fakeAgentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Agent, error) {
	return nil, nil
}
func (r *fakeAgentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (r *fakeAgentRepo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	if r.deleteFn != nil {
		return r.deleteFn(threshold)
	}
	return 0, nil
}

type fakeAPIKeyRepo struct {
	findOneFn func() (*entity.APIKey, error)
	created   []*entity.APIKey
	updated   []*entity.APIKey
}

func (r *fakeAPIKeyRepo) Create(ctx context.Context, k *entity.APIKey) error {
	r.created = append(r.created, k)
	return nil
}
func (r *fakeAPIKeyRepo) Update(ctx context.Context, k *entity.APIKey) error {
	r.updated = append(r.updated, k)
	return nil
}
func (r *fakeAPIKeyRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.APIKey, error) {
	if r.findOneFn != nil {
		return r.findOneFn()
	}
	return nil, nil
}
func (r *fakeAPIKeyRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.APIKey, error) {
	return nil, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
