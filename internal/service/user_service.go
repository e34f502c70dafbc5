package service

import (
	"context"

	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/pkg/apperror"
	"workflow-data-be/internal/pkg/logger"
	"workflow-data-be/internal/repository/specification"
	"workflow-data-be/internal/repository/unitofwork"
)

type IUserService interface {
	Create(ctx context.Context, principal entity.Principal, request *dto.CreateUserRequest) (*dto.UserResponse, error)
	Get(ctx context.Context, principal entity.Principal, userId string) (*dto.UserResponse, error)
	List(ctx context.Context, principal entity.Principal, limit, offset int) ([]dto.UserResponse, error)
}

type userService struct {
	factory unitofwork.RepositoryFactory
	log     logger.ILogger
}

func NewUserService(factory unitofwork.RepositoryFactory, log logger.ILogger) IUserService {
	return &userService{factory: factory, log: log}
}

func (s *userService) Create(ctx context.Context, principal entity.Principal, request *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !principal.Admin && principal.UserId != request.UserId {
		return nil, apperror.NewDenied()
	}

	// The uniqueness checks and the insert share a transaction so two
	// concurrent creates for the same user cannot both pass the checks.
	uow := s.factory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.NewStore(err)
	}
	defer uow.Rollback()
	repo := uow.UserRepository()

	existing, err := repo.FindOne(ctx, specification.ByExternalUserId{UserId: request.UserId})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	if existing != nil {
		return nil, apperror.NewValidationf("user %s already exists", request.UserId)
	}
	existing, err = repo.FindOne(ctx, specification.ByEmail{Email: request.Email})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	if existing != nil {
		return nil, apperror.NewValidationf("email %s is already registered", request.Email)
	}

	user := &entity.User{
		UserId:   request.UserId,
		Email:    request.Email,
		Name:     request.Name,
		Nickname: request.Nickname,
		Picture:  request.Picture,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, apperror.NewStore(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.NewStore(err)
	}

	s.log.Info("user", "user created", map[string]interface{}{"user_id": user.UserId})
	return toUserResponse(user), nil
}

func (s *userService) Get(ctx context.Context, principal entity.Principal, userId string) (*dto.UserResponse, error) {
	if !principal.Admin && principal.UserId != userId {
		return nil, apperror.NewDenied()
	}

	uow := s.factory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByExternalUserId{UserId: userId})
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	if user == nil {
		return nil, apperror.NewNotFound("user")
	}
	return toUserResponse(user), nil
}

func (s *userService) List(ctx context.Context, principal entity.Principal, limit, offset int) ([]dto.UserResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		paginate(limit, offset),
	}
	if !principal.Admin {
		specs = append(specs, specification.ByExternalUserId{UserId: principal.UserId})
	}

	uow := s.factory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, *toUserResponse(u))
	}
	return responses, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:            u.Id,
		UserId:        u.UserId,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		Name:          u.Name,
		Nickname:      u.Nickname,
		Picture:       u.Picture,
		LastLogin:     u.LastLogin,
		LoginsCount:   u.LoginsCount,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
