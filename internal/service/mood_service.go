package service

import (
	"context"

	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/mapper"
	"mindfulme-be/internal/pkg/logger"
	"mindfulme-be/internal/repository/unitofwork"
	"mindfulme-be/pkg/events"
)

type IMoodService interface {
	Create(ctx context.Context, req *dto.CreateMoodRequest) (*dto.MoodResponse, error)
	ListByUser(ctx context.Context, userId int64, limit int) ([]*dto.MoodResponse, error)
}

type moodService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	mapper     *mapper.MoodMapper
	logger     logger.ILogger
}

func NewMoodService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) IMoodService {
	return &moodService{
		uowFactory: uowFactory,
		publisher:  publisher,
		mapper:     mapper.NewMoodMapper(),
		logger:     log,
	}
}

func (s *moodService) Create(ctx context.Context, req *dto.CreateMoodRequest) (*dto.MoodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := requireUser(ctx, uow, req.UserId); err != nil {
		return nil, err
	}

	mood := &entity.MoodEntry{
		UserId: req.UserId,
		Mood:   entity.MoodType(req.Mood),
		Value:  *req.Value,
		Note:   emptyToNil(req.Note),
	}
	if err := uow.MoodRepository().Create(ctx, mood); err != nil {
		return nil, err
	}

	publishQuietly(ctx, s.publisher, s.logger, events.MoodLogged(mood.UserId, mood.Id, string(mood.Mood), mood.Value))

	return s.mapper.ToResponse(mood), nil
}

func (s *moodService) ListByUser(ctx context.Context, userId int64, limit int) ([]*dto.MoodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := requireUser(ctx, uow, userId); err != nil {
		return nil, err
	}

	moods, err := uow.MoodRepository().FindAllByUser(ctx, userId, limit)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponses(moods), nil
}
