package mapper

import (
	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/model"
)

type CommunityPostMapper struct{}

func NewCommunityPostMapper() *CommunityPostMapper {
	return &CommunityPostMapper{}
}

func (m *CommunityPostMapper) ToEntity(p *model.CommunityPost) *entity.CommunityPost {
	if p == nil {
		return nil
	}
	return &entity.CommunityPost{
		Id:        p.Id,
		Content:   p.Content,
		UserId:    p.UserId,
		Likes:     p.Likes,
		Comments:  p.Comments,
		CreatedAt: p.CreatedAt,
	}
}

func (m *CommunityPostMapper) ToEntities(posts []*model.CommunityPost) []*entity.CommunityPost {
	entities := make([]*entity.CommunityPost, len(posts))
	for i, p := range posts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *CommunityPostMapper) ToModel(p *entity.CommunityPost) *model.CommunityPost {
	return &model.CommunityPost{
		Id:        p.Id,
		Content:   p.Content,
		UserId:    p.UserId,
		Likes:     p.Likes,
		Comments:  p.Comments,
		CreatedAt: p.CreatedAt,
	}
}

func (m *CommunityPostMapper) ToResponse(p *entity.CommunityPost) *dto.CommunityPostResponse {
	return &dto.CommunityPostResponse{
		Id:        p.Id,
		Content:   p.Content,
		UserId:    p.UserId,
		Likes:     p.Likes,
		Comments:  p.Comments,
		CreatedAt: p.CreatedAt,
	}
}

func (m *CommunityPostMapper) ToResponses(posts []*entity.CommunityPost) []*dto.CommunityPostResponse {
	res := make([]*dto.CommunityPostResponse, len(posts))
	for i, p := range posts {
		res[i] = m.ToResponse(p)
	}
	return res
}
