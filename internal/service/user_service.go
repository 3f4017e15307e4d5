package service

import (
	"context"
	"errors"
	"fmt"

	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/mapper"
	"mindfulme-be/internal/pkg/logger"
	"mindfulme-be/internal/pkg/serverutils"
	"mindfulme-be/internal/repository/contract"
	"mindfulme-be/internal/repository/unitofwork"
	"mindfulme-be/pkg/events"

	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetById(ctx context.Context, id int64) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	mapper     *mapper.UserMapper
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		publisher:  publisher,
		mapper:     mapper.NewUserMapper(),
		logger:     log,
	}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.Conflict("Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Email:        req.Email,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same name.
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, serverutils.Conflict("Username already exists")
		}
		return nil, err
	}

	publishQuietly(ctx, s.publisher, s.logger, events.UserCreated(user.Id, user.Username, user.Name, user.Email))

	return s.mapper.ToResponse(user), nil
}

func (s *userService) GetById(ctx context.Context, id int64) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := requireUser(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(user), nil
}
