package memory

import (
	"context"
	"sort"

	"mindfulme-be/internal/entity"
)

type communityPostRepository struct {
	s *Store
}

func (r *communityPostRepository) Create(ctx context.Context, post *entity.CommunityPost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	post.Id = r.s.currentPostId
	r.s.currentPostId++
	post.CreatedAt = r.s.stamp(post.CreatedAt)

	stored := *post
	r.s.communityPosts[post.Id] = &stored
	return nil
}

func (r *communityPostRepository) FindAll(ctx context.Context, limit int) ([]*entity.CommunityPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*entity.CommunityPost, 0, len(r.s.communityPosts))
	for _, post := range r.s.communityPosts {
		out := *post
		result = append(result, &out)
	}
	sort.Slice(result, func(i, j int) bool {
		return newestFirst(result[i].Id, result[j].Id, result[i].CreatedAt, result[j].CreatedAt)
	})
	return truncate(result, limit), nil
}

func (r *communityPostRepository) FindById(ctx context.Context, id int64) (*entity.CommunityPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	post, ok := r.s.communityPosts[id]
	if !ok {
		return nil, nil
	}
	out := *post
	return &out, nil
}

func (r *communityPostRepository) IncrementLikes(ctx context.Context, id int64) (*entity.CommunityPost, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	post, ok := r.s.communityPosts[id]
	if !ok {
		return nil, nil
	}
	post.Likes++
	out := *post
	return &out, nil
}
