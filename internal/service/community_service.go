package service

import (
	"context"

	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/mapper"
	"mindfulme-be/internal/pkg/logger"
	"mindfulme-be/internal/pkg/serverutils"
	"mindfulme-be/internal/repository/unitofwork"
	"mindfulme-be/pkg/events"
)

type ICommunityService interface {
	Create(ctx context.Context, req *dto.CreateCommunityPostRequest) (*dto.CommunityPostResponse, error)
	List(ctx context.Context, limit int) ([]*dto.CommunityPostResponse, error)
	Like(ctx context.Context, postId int64) (*dto.CommunityPostResponse, error)
}

type communityService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	mapper     *mapper.CommunityPostMapper
	logger     logger.ILogger
}

func NewCommunityService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) ICommunityService {
	return &communityService{
		uowFactory: uowFactory,
		publisher:  publisher,
		mapper:     mapper.NewCommunityPostMapper(),
		logger:     log,
	}
}

func (s *communityService) Create(ctx context.Context, req *dto.CreateCommunityPostRequest) (*dto.CommunityPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := requireUser(ctx, uow, req.UserId); err != nil {
		return nil, err
	}

	post := &entity.CommunityPost{
		Content: req.Content,
		UserId:  req.UserId,
	}
	if err := uow.CommunityPostRepository().Create(ctx, post); err != nil {
		return nil, err
	}

	res := s.mapper.ToResponse(post)
	publishQuietly(ctx, s.publisher, s.logger, events.CommunityPostCreated(res))
	return res, nil
}

func (s *communityService) List(ctx context.Context, limit int) ([]*dto.CommunityPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	posts, err := uow.CommunityPostRepository().FindAll(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponses(posts), nil
}

func (s *communityService) Like(ctx context.Context, postId int64) (*dto.CommunityPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	post, err := uow.CommunityPostRepository().IncrementLikes(ctx, postId)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, serverutils.NotFound("Post not found")
	}
	return s.mapper.ToResponse(post), nil
}
