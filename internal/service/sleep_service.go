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

type ISleepService interface {
	Create(ctx context.Context, req *dto.CreateSleepRequest) (*dto.SleepResponse, error)
	ListByUser(ctx context.Context, userId int64, limit int) ([]*dto.SleepResponse, error)
}

type sleepService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	mapper     *mapper.SleepMapper
	logger     logger.ILogger
}

func NewSleepService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) ISleepService {
	return &sleepService{
		uowFactory: uowFactory,
		publisher:  publisher,
		mapper:     mapper.NewSleepMapper(),
		logger:     log,
	}
}

func (s *sleepService) Create(ctx context.Context, req *dto.CreateSleepRequest) (*dto.SleepResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := requireUser(ctx, uow, req.UserId); err != nil {
		return nil, err
	}

	var quality *entity.SleepQuality
	if q := emptyToNil(req.Quality); q != nil {
		v := entity.SleepQuality(*q)
		quality = &v
	}

	record := &entity.SleepEntry{
		UserId:  req.UserId,
		Hours:   *req.Hours,
		Quality: quality,
		Note:    emptyToNil(req.Note),
	}
	if err := uow.SleepRepository().Create(ctx, record); err != nil {
		return nil, err
	}

	publishQuietly(ctx, s.publisher, s.logger, events.SleepLogged(record.UserId, record.Id, record.Hours))

	return s.mapper.ToResponse(record), nil
}

func (s *sleepService) ListByUser(ctx context.Context, userId int64, limit int) ([]*dto.SleepResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := requireUser(ctx, uow, userId); err != nil {
		return nil, err
	}

	records, err := uow.SleepRepository().FindAllByUser(ctx, userId, limit)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponses(records), nil
}
