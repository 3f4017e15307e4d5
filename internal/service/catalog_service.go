package service

import (
	"context"

	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/mapper"
	"mindfulme-be/internal/pkg/serverutils"
	"mindfulme-be/internal/repository/unitofwork"
)

type IMeditationService interface {
	List(ctx context.Context) ([]*dto.MeditationResponse, error)
	GetById(ctx context.Context, id int64) (*dto.MeditationResponse, error)
}

type ICalmingSoundService interface {
	List(ctx context.Context) ([]*dto.CalmingSoundResponse, error)
	GetById(ctx context.Context, id int64) (*dto.CalmingSoundResponse, error)
}

type meditationService struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.CatalogMapper
}

func NewMeditationService(uowFactory unitofwork.RepositoryFactory) IMeditationService {
	return &meditationService{
		uowFactory: uowFactory,
		mapper:     mapper.NewCatalogMapper(),
	}
}

func (s *meditationService) List(ctx context.Context) ([]*dto.MeditationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	meditations, err := uow.MeditationRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.MeditationResponse, len(meditations))
	for i, m := range meditations {
		res[i] = s.mapper.MeditationToResponse(m)
	}
	return res, nil
}

func (s *meditationService) GetById(ctx context.Context, id int64) (*dto.MeditationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	meditation, err := uow.MeditationRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if meditation == nil {
		return nil, serverutils.NotFound("Meditation not found")
	}
	return s.mapper.MeditationToResponse(meditation), nil
}

type calmingSoundService struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.CatalogMapper
}

func NewCalmingSoundService(uowFactory unitofwork.RepositoryFactory) ICalmingSoundService {
	return &calmingSoundService{
		uowFactory: uowFactory,
		mapper:     mapper.NewCatalogMapper(),
	}
}

func (s *calmingSoundService) List(ctx context.Context) ([]*dto.CalmingSoundResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sounds, err := uow.CalmingSoundRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CalmingSoundResponse, len(sounds))
	for i, sound := range sounds {
		res[i] = s.mapper.SoundToResponse(sound)
	}
	return res, nil
}

func (s *calmingSoundService) GetById(ctx context.Context, id int64) (*dto.CalmingSoundResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sound, err := uow.CalmingSoundRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if sound == nil {
		return nil, serverutils.NotFound("Sound not found")
	}
	return s.mapper.SoundToResponse(sound), nil
}
