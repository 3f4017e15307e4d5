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
	"mindfulme-be/pkg/llm"
)

// Companion produces the reply to a user's chat message. It must not fail.
type Companion interface {
	Reply(ctx context.Context, history []llm.Message, message string) string
}

type IChatService interface {
	GetHistory(ctx context.Context, userId int64) (*dto.ChatHistoryResponse, error)
	SaveHistory(ctx context.Context, req *dto.SaveChatHistoryRequest) (*dto.ChatHistoryResponse, error)
	AiChat(ctx context.Context, req *dto.AiChatRequest) (*dto.AiChatResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	companion  Companion
	publisher  IPublisherService
	mapper     *mapper.ChatMapper
	logger     logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	companion Companion,
	publisher IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		companion:  companion,
		publisher:  publisher,
		mapper:     mapper.NewChatMapper(),
		logger:     log,
	}
}

func (s *chatService) GetHistory(ctx context.Context, userId int64) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := requireUser(ctx, uow, userId); err != nil {
		return nil, err
	}

	history, err := uow.ChatHistoryRepository().FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if history == nil {
		return nil, serverutils.NotFound("No chat history found")
	}
	return s.mapper.ToResponse(history), nil
}

func (s *chatService) SaveHistory(ctx context.Context, req *dto.SaveChatHistoryRequest) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := requireUser(ctx, uow, req.UserId); err != nil {
		return nil, err
	}

	history, err := uow.ChatHistoryRepository().Upsert(ctx, req.UserId, s.mapper.MessagesFromRequest(req.Messages))
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(history), nil
}

func (s *chatService) AiChat(ctx context.Context, req *dto.AiChatRequest) (*dto.AiChatResponse, error) {
	if req.Message == "" || req.UserId == 0 {
		return nil, serverutils.BadRequest("Message and userId are required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := requireUser(ctx, uow, req.UserId); err != nil {
		return nil, err
	}

	existing, err := uow.ChatHistoryRepository().FindByUser(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	var previous []llm.Message
	if existing != nil {
		previous = make([]llm.Message, len(existing.Messages))
		for i, m := range existing.Messages {
			previous[i] = llm.Message{Role: m.Role, Content: m.Content}
		}
	}

	reply := s.companion.Reply(ctx, previous, req.Message)

	history, err := uow.ChatHistoryRepository().Append(ctx, req.UserId,
		entity.ChatMessage{Role: entity.ChatRoleUser, Content: req.Message},
		entity.ChatMessage{Role: entity.ChatRoleSystem, Content: reply},
	)
	if err != nil {
		return nil, err
	}

	publishQuietly(ctx, s.publisher, s.logger, events.ChatMessageSent(req.UserId, len(history.Messages)))

	return &dto.AiChatResponse{Response: reply}, nil
}
